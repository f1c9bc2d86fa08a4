package taylorfields

import "github.com/san-kum/taylorint/internal/taylor"

// Names are the field identities the taylor.Registry and the CLI
// look fields up by.
const (
	NameLogistic  = "logistic"
	NameHarmonic  = "harmonic"
	NamePendulum  = "pendulum"
	NameLorenz    = "lorenz"
)

// Dims gives each registered field's state dimension.
var Dims = map[string]int{
	NameLogistic: 1,
	NameHarmonic: 2,
	NamePendulum: 2,
	NameLorenz:   3,
}

// Fields maps a field name to its taylor.VectorField.
var Fields = map[string]taylor.VectorField[float64]{
	NameLogistic: LogisticVectorField,
	NameHarmonic: HarmonicOscillatorVectorField,
	NamePendulum: PendulumVectorField,
	NameLorenz:   LorenzVectorField,
}

// NewRegistry returns a taylor.Registry[float64] with every field
// that has a hand-specialized builder pre-registered under parse_eqs.
func NewRegistry() *taylor.Registry[float64] {
	r := taylor.NewRegistry[float64]()
	r.Register(NameLogistic, LogisticSpecialized)
	return r
}
