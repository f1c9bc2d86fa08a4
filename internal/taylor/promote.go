package taylor

import (
	"fmt"

	"github.com/san-kum/taylorint/internal/series"
)

// PromoteReal converts a loosely-typed scalar (int, int64, float32,
// float64) into the float64 representation the time/tolerance side of
// the driver's inputs always uses. This is the frontend concern
// spec.md §4.5 describes: mixed integer and floating constants are
// unified once, before the hot loop ever runs.
func PromoteReal(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("taylor: cannot promote %T to a real-valued parameter", v)
	}
}

// PromoteState converts a slice of loosely-typed initial-condition
// values into the coefficient ring U, the quartet-plus-state
// promotion spec.md §4.5 requires before dispatch.
func PromoteState[U series.Numeric](values []any) ([]U, error) {
	out := make([]U, len(values))
	for i, v := range values {
		u, err := promoteOne[U](v)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

func promoteOne[U series.Numeric](v any) (U, error) {
	var zero U
	switch any(zero).(type) {
	case float64:
		f, err := PromoteReal(v)
		if err != nil {
			return zero, err
		}
		return any(f).(U), nil
	case complex128:
		if c, ok := v.(complex128); ok {
			return any(c).(U), nil
		}
		f, err := PromoteReal(v)
		if err != nil {
			return zero, err
		}
		return any(complex(f, 0)).(U), nil
	default:
		return zero, fmt.Errorf("taylor: unsupported coefficient type")
	}
}
