package control

import "github.com/san-kum/taylorint/internal/dynamo"

// None is the zero controller used when a model's Derive doesn't need
// an actuation channel driven — every taylorfields run effectively
// behaves this way, since the Taylor engine's vector-field contract
// has no control argument at all.
type None struct {
	dim int
}

func NewNone(dim int) *None {
	return &None{
		dim: dim,
	}
}

func (n *None) Compute(x dynamo.State, t float64) dynamo.Control {
	return make(dynamo.Control, n.dim)
}
