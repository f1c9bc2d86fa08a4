// Package series provides the truncated power-series algebra the
// Taylor integrator builds its jets from. See [Series] for the value
// type and the arithmetic it supports.
package series
