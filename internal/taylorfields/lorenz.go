package taylorfields

import (
	"github.com/san-kum/taylorint/internal/series"
	"github.com/san-kum/taylorint/internal/taylor"
)

// LorenzParams mirrors physics.Lorenz's unexported sigma/rho/beta
// fields, exposed here since the Taylor field is a free function
// rather than a method on a configured struct.
type LorenzParams struct {
	Sigma float64
	Rho   float64
	Beta  float64
}

// DefaultLorenzParams matches physics.NewLorenz's defaults.
func DefaultLorenzParams() LorenzParams {
	return LorenzParams{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0}
}

// Lorenz is the Lorenz attractor's three-component vector field,
// series-typed. Every term is a sum of products of components, so it
// needs nothing from the series algebra beyond Add/Sub/Mul/ScaleConst.
func Lorenz(dx, x []series.Series[float64], p any, t series.Series[float64]) {
	params, ok := p.(LorenzParams)
	if !ok {
		params = DefaultLorenzParams()
	}

	xs, ys, zs := x[0], x[1], x[2]

	dx[0] = ys.Sub(xs).ScaleConst(params.Sigma)
	dx[1] = xs.ScaleConst(params.Rho).Sub(xs.Mul(zs)).Sub(ys)
	dx[2] = xs.Mul(ys).Sub(zs.ScaleConst(params.Beta))
}

var LorenzVectorField = taylor.VectorField[float64](Lorenz)
