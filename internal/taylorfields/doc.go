// Package taylorfields adapts internal/physics's float64 models into
// series-typed vector fields the driver in internal/taylor can build
// jets from: the same equations of motion, expressed with
// series.Series arithmetic in place of plain float64 arithmetic.
package taylorfields
