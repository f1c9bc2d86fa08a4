package taylor

import "github.com/san-kum/taylorint/internal/series"

// JetBuilder is the shape of both the generic builder ([BuildJetInPlace])
// and any specialized replacement registered for a particular field.
type JetBuilder[U series.Numeric] func(t series.Series[float64], x, dx, xaux []series.Series[U], p any)

// Registry holds specialized jet builders keyed by field name, modeled
// on experiment.Registry's name-to-constructor map. A specialization
// is a pure performance lever (spec.md §4.4): it must reproduce the
// generic builder's coefficients bit-for-bit, and the registry never
// substitutes one without first dry-running it once.
type Registry[U series.Numeric] struct {
	specialized map[string]JetBuilder[U]
}

// NewRegistry returns an empty specialization registry.
func NewRegistry[U series.Numeric]() *Registry[U] {
	return &Registry[U]{specialized: make(map[string]JetBuilder[U])}
}

// Register associates a specialized builder with a field name.
func (r *Registry[U]) Register(name string, b JetBuilder[U]) {
	r.specialized[name] = b
}

// Has reports whether a specialization is registered for name.
func (r *Registry[U]) Has(name string) bool {
	_, ok := r.specialized[name]
	return ok
}

// Resolve probes the specialization registered for name (if any) by
// dry-running it once against clones of the initial jet. If no
// specialization exists, or the probe panics, it returns the generic
// builder and, in the probe-failure case, a non-empty warning.
func (r *Registry[U]) Resolve(name string, generic JetBuilder[U], t series.Series[float64], x, dx, xaux []series.Series[U], p any) (builder JetBuilder[U], warning string) {
	specialized, ok := r.specialized[name]
	if !ok {
		return generic, ""
	}
	if probe(specialized, t, x, dx, xaux, p) {
		return specialized, ""
	}
	return generic, "parse_eqs: specialization for " + name + " failed its probe run, falling back to the generic builder"
}

func probe[U series.Numeric](b JetBuilder[U], t series.Series[float64], x, dx, xaux []series.Series[U], p any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	b(t.Clone(), cloneJets(x), cloneJets(dx), cloneJets(xaux), p)
	return true
}

func cloneJets[U series.Numeric](s []series.Series[U]) []series.Series[U] {
	out := make([]series.Series[U], len(s))
	for i, v := range s {
		out[i] = v.Clone()
	}
	return out
}
