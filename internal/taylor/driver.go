package taylor

import (
	"math"

	"github.com/san-kum/taylorint/internal/series"
)

// Config collects the driver's per-call parameters, mirroring
// dynamo.Config's role for the classical integrators.
type Config struct {
	T0       float64
	TMax     float64
	Order    int
	AbsTol   float64
	MaxSteps int
	ParseEqs bool
	Dense    bool
}

// DefaultConfig returns the driver defaults from spec.md §6's
// parameter table (max_steps 500, parse_eqs true, dense false).
func DefaultConfig() Config {
	return Config{
		Order:    20,
		AbsTol:   1e-20,
		MaxSteps: 500,
		ParseEqs: true,
		Dense:    false,
	}
}

func (c Config) validate() error {
	if c.Order <= 0 {
		return &ValidationError{Field: "order", Wrapped: ErrInvalidOrder}
	}
	if !(c.AbsTol > 0) || math.IsInf(c.AbsTol, 0) {
		return &ValidationError{Field: "abstol", Wrapped: ErrInvalidTolerance}
	}
	if c.MaxSteps <= 0 {
		return &ValidationError{Field: "max_steps", Wrapped: ErrInvalidMaxSteps}
	}
	return nil
}

const maxStepsWarning = "maximum number of integration steps reached"

// Result is the steps-mode output: nsteps+1 recorded times and
// states, plus an optional warning (spec.md §6's single warning kind,
// or the parse_eqs probe-failure warning).
type Result[U series.Numeric] struct {
	Times   []float64
	States  [][]U
	Warning string
}

// stepHook is invoked once per accepted step with the jet that was
// valid over [tPrev, tNext), before that jet's backing storage is
// reset for the next step. Implementations must not retain jet past
// the call.
type stepHook[U series.Numeric] func(jet []series.Series[U], tPrev, tNext float64, step int)

// Steps runs the driver in steps mode: every accepted (t, x) pair is
// recorded and returned.
func Steps[U series.Numeric](field VectorField[U], fieldName string, registry *Registry[U], dim int, x0 []U, cfg Config, p any) (Result[U], error) {
	if err := cfg.validate(); err != nil {
		return Result[U]{}, err
	}
	tv, xv, warning := run(field, fieldName, registry, dim, x0, cfg, p, nil)
	return Result[U]{Times: tv, States: xv, Warning: warning}, nil
}

// Dense runs the driver in dense mode, additionally preserving one
// jet per accepted step so the solution can be evaluated anywhere
// within a step via the returned [Interpolant].
func Dense[U series.Numeric](field VectorField[U], fieldName string, registry *Registry[U], dim int, x0 []U, cfg Config, p any) (Result[U], *Interpolant[U], error) {
	if err := cfg.validate(); err != nil {
		return Result[U]{}, nil, err
	}
	interp := &Interpolant[U]{sign: sign(cfg.TMax - cfg.T0)}
	hook := func(jet []series.Series[U], tPrev, tNext float64, step int) {
		interp.jets = append(interp.jets, cloneJets(jet))
	}
	tv, xv, warning := run(field, fieldName, registry, dim, x0, cfg, p, hook)
	interp.times = tv
	return Result[U]{Times: tv, States: xv, Warning: warning}, interp, nil
}

// Range runs the driver, sampling the solution at each point of
// trange rather than at the accepted-step knots. trange must be
// strictly monotone in the direction of integration, start at cfg.T0,
// and end at cfg.TMax.
func Range[U series.Numeric](field VectorField[U], fieldName string, registry *Registry[U], dim int, x0 []U, trange []float64, cfg Config, p any) ([][]U, string, error) {
	if err := cfg.validate(); err != nil {
		return nil, "", err
	}
	sgn := sign(cfg.TMax - cfg.T0)
	if err := validateRange(trange, cfg.T0, cfg.TMax, sgn); err != nil {
		return nil, "", err
	}

	out := make([][]U, len(trange))
	out[0] = append([]U(nil), x0...)
	idx := 1

	hook := func(jet []series.Series[U], tPrev, tNext float64, step int) {
		for idx < len(trange) && inHalfOpenInterval(trange[idx], tPrev, tNext, sgn) {
			offset := trange[idx] - tPrev
			state := make([]U, dim)
			for j, s := range jet {
				state[j] = s.Evaluate(series.FromFloat64[U](offset))
			}
			out[idx] = state
			idx++
		}
	}

	tv, xv, warning := run(field, fieldName, registry, dim, x0, cfg, p, hook)
	final := xv[len(xv)-1]
	finalT := tv[len(tv)-1]
	if idx < len(trange) && trange[idx] == finalT {
		out[idx] = final
		idx++
	}
	return out, warning, nil
}

func validateRange(trange []float64, t0, tmax, sgn float64) error {
	if len(trange) == 0 || trange[0] != t0 || trange[len(trange)-1] != tmax {
		return &ValidationError{Field: "trange", Wrapped: ErrRangeEndpointMismatch}
	}
	for i := 1; i < len(trange); i++ {
		if sgn*(trange[i]-trange[i-1]) <= 0 {
			return &ValidationError{Field: "trange", Wrapped: ErrNonMonotoneRange}
		}
	}
	return nil
}

func inHalfOpenInterval(point, a, b, sgn float64) bool {
	if sgn >= 0 {
		return point >= a && point < b
	}
	return point <= a && point > b
}

// run is the common loop shared by all three modes (spec.md §4.3).
func run[U series.Numeric](field VectorField[U], fieldName string, registry *Registry[U], dim int, x0 []U, cfg Config, p any, hook stepHook[U]) (tv []float64, xv [][]U, warning string) {
	n := cfg.Order
	sgn := sign(cfg.TMax - cfg.T0)

	tv = make([]float64, 1, cfg.MaxSteps+1)
	xv = make([][]U, 1, cfg.MaxSteps+1)
	tv[0] = cfg.T0
	xv[0] = append([]U(nil), x0...)

	if sgn == 0 {
		return tv, xv, ""
	}

	t := series.New[float64](n)
	t.SetCoeff(0, cfg.T0)
	if n >= 1 {
		t.SetCoeff(1, 1)
	}

	x := make([]series.Series[U], dim)
	dx := make([]series.Series[U], dim)
	xaux := make([]series.Series[U], dim)
	for j := 0; j < dim; j++ {
		x[j] = series.New[U](n)
		x[j].SetCoeff(0, x0[j])
		dx[j] = series.New[U](n)
		xaux[j] = series.New[U](n)
	}

	generic := JetBuilder[U](func(t series.Series[float64], x, dx, xaux []series.Series[U], p any) {
		BuildJetInPlace(field, t, x, dx, xaux, p)
	})

	builder := generic
	if cfg.ParseEqs && registry != nil && fieldName != "" {
		var probeWarning string
		builder, probeWarning = registry.Resolve(fieldName, generic, t, x, dx, xaux, p)
		if probeWarning != "" {
			warning = probeWarning
		}
	}

	tCurrent := cfg.T0
	nsteps := 0

	for sgn*tCurrent < sgn*cfg.TMax && nsteps <= cfg.MaxSteps {
		builder(t, x, dx, xaux, p)

		h := StepSize(cfg.AbsTol, x...)
		if !(h > 0) || math.IsInf(h, 0) {
			break
		}

		remaining := sgn * (cfg.TMax - tCurrent)
		step := math.Min(h, remaining)
		if step < 0 {
			step = 0
		}
		dt := sgn * step
		tNext := tCurrent + dt

		if hook != nil {
			hook(x, tCurrent, tNext, nsteps)
		}

		xNew := make([]U, dim)
		for j := 0; j < dim; j++ {
			xNew[j] = x[j].Evaluate(series.FromFloat64[U](dt))
		}

		for j := 0; j < dim; j++ {
			x[j].SetCoeff(0, xNew[j])
			dx[j] = series.New[U](n)
		}
		tCurrent = tNext
		t.SetCoeff(0, tCurrent)

		nsteps++
		tv = append(tv, tCurrent)
		xv = append(xv, xNew)

		if nsteps >= cfg.MaxSteps && sgn*tCurrent < sgn*cfg.TMax {
			warning = maxStepsWarning
			break
		}
	}

	return tv, xv, warning
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
