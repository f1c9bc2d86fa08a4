package taylor

import "github.com/san-kum/taylorint/internal/series"

// ScalarField is the value-returning vector-field shape for a
// one-dimensional state: f(x, p, t) -> series.Series[U].
type ScalarField[U series.Numeric] func(x series.Series[U], p any, t series.Series[float64]) series.Series[U]

// VectorField is the in-place vector-field shape for a D-dimensional
// state: f(dx, x, p, t) writes the field's value into dx, one series
// per component. The return value is ignored.
type VectorField[U series.Numeric] func(dx, x []series.Series[U], p any, t series.Series[float64])

// AsVectorField adapts a ScalarField into a one-component VectorField
// so the driver only needs a single internal code path.
func AsVectorField[U series.Numeric](f ScalarField[U]) VectorField[U] {
	return func(dx, x []series.Series[U], p any, t series.Series[float64]) {
		dx[0] = f(x[0], p, t)
	}
}
