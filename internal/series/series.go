// Package series implements truncated power series (jets) over a small
// ring of numeric coefficient types, and the arithmetic the Taylor
// integrator needs to build them: addition, multiplication by Cauchy
// convolution, and division by a positive integer.
package series

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Numeric is the set of coefficient types a Series can carry. Real
// (float64) and complex (complex128) coefficients cover spec.md's
// real/complex numeric-type requirement; a caller wanting interval or
// perturbation-series coefficients extends this union.
type Numeric interface {
	~float64 | ~complex128
}

// Series is a truncated power series sum_{k=0}^{Order} coeffs[k] * t^k.
// The zero value is not usable; construct with New or FromCoeffs.
type Series[U Numeric] struct {
	coeffs []U
}

// New returns the zero series of the given order (order+1 coefficients,
// all zero).
func New[U Numeric](order int) Series[U] {
	if order < 0 {
		panic("series: negative order")
	}
	return Series[U]{coeffs: make([]U, order+1)}
}

// FromCoeffs wraps c as a series, taking ownership of the slice.
func FromCoeffs[U Numeric](c []U) Series[U] {
	if len(c) == 0 {
		panic("series: empty coefficient slice")
	}
	return Series[U]{coeffs: c}
}

// Constant returns the order-N series equal to the constant v.
func Constant[U Numeric](v U, order int) Series[U] {
	s := New[U](order)
	s.coeffs[0] = v
	return s
}

// Order returns the series' truncation order (one less than its
// coefficient count).
func (s Series[U]) Order() int {
	return len(s.coeffs) - 1
}

// Coeff returns the k-th coefficient, or the zero value if k exceeds
// the series' order.
func (s Series[U]) Coeff(k int) U {
	if k < 0 || k >= len(s.coeffs) {
		var zero U
		return zero
	}
	return s.coeffs[k]
}

// SetCoeff assigns the k-th coefficient. It panics if k is out of range,
// matching the package's programmer-error convention for order mismatches.
func (s Series[U]) SetCoeff(k int, v U) {
	s.coeffs[k] = v
}

// Coeffs returns the backing coefficient slice. Callers must not retain
// it across a Series they don't own.
func (s Series[U]) Coeffs() []U {
	return s.coeffs
}

// Clone returns a deep copy of s.
func (s Series[U]) Clone() Series[U] {
	c := make([]U, len(s.coeffs))
	copy(c, s.coeffs)
	return Series[U]{coeffs: c}
}

func (s Series[U]) requireSameOrder(other Series[U]) {
	if len(s.coeffs) != len(other.coeffs) {
		panic(fmt.Sprintf("series: order mismatch (%d vs %d)", s.Order(), other.Order()))
	}
}

// Add returns s + other, truncated at the shared order.
func (s Series[U]) Add(other Series[U]) Series[U] {
	s.requireSameOrder(other)
	out := make([]U, len(s.coeffs))
	for k := range out {
		out[k] = s.coeffs[k] + other.coeffs[k]
	}
	return Series[U]{coeffs: out}
}

// Sub returns s - other, truncated at the shared order.
func (s Series[U]) Sub(other Series[U]) Series[U] {
	s.requireSameOrder(other)
	out := make([]U, len(s.coeffs))
	for k := range out {
		out[k] = s.coeffs[k] - other.coeffs[k]
	}
	return Series[U]{coeffs: out}
}

// Neg returns -s.
func (s Series[U]) Neg() Series[U] {
	out := make([]U, len(s.coeffs))
	for k := range out {
		out[k] = -s.coeffs[k]
	}
	return Series[U]{coeffs: out}
}

// ScaleConst returns c*s.
func (s Series[U]) ScaleConst(c U) Series[U] {
	out := make([]U, len(s.coeffs))
	for k := range out {
		out[k] = c * s.coeffs[k]
	}
	return Series[U]{coeffs: out}
}

// Mul returns the Cauchy product of s and other, truncated at the
// shared order N: (s*other)[k] = sum_{j=0}^{k} s[j]*other[k-j].
func (s Series[U]) Mul(other Series[U]) Series[U] {
	s.requireSameOrder(other)
	n := len(s.coeffs)
	out := make([]U, n)
	for k := 0; k < n; k++ {
		var acc U
		for j := 0; j <= k; j++ {
			acc += s.coeffs[j] * other.coeffs[k-j]
		}
		out[k] = acc
	}
	return Series[U]{coeffs: out}
}

// DivInt returns the series with every coefficient divided by the
// positive integer n. This is the operation the Picard recursion uses
// to turn a derivative coefficient into the next jet coefficient:
// x_{k+1} = f_k / (k+1).
func (s Series[U]) DivInt(n int) Series[U] {
	if n <= 0 {
		panic("series: DivInt requires a positive divisor")
	}
	out := make([]U, len(s.coeffs))
	for k := range out {
		out[k] = divByInt(s.coeffs[k], n)
	}
	return Series[U]{coeffs: out}
}

// DivByInt divides a single coefficient value by the positive integer n.
func DivByInt[U Numeric](v U, n int) U {
	return divByInt(v, n)
}

// FromFloat64 lifts a real scalar into the coefficient ring U, the
// conversion the driver needs whenever it applies a real time offset
// (a step size or an evaluation argument) to a Series[U].
func FromFloat64[U Numeric](v float64) U {
	var zero U
	switch any(zero).(type) {
	case float64:
		return any(v).(U)
	case complex128:
		return any(complex(v, 0)).(U)
	default:
		panic("series: unsupported coefficient type")
	}
}

// Truncate returns a copy of s holding only coefficients 0..order,
// clamped to s's own order if order is larger.
func (s Series[U]) Truncate(order int) Series[U] {
	if order < 0 {
		order = 0
	}
	if order > s.Order() {
		order = s.Order()
	}
	out := make([]U, order+1)
	copy(out, s.coeffs[:order+1])
	return Series[U]{coeffs: out}
}

func divByInt[U Numeric](v U, n int) U {
	switch x := any(v).(type) {
	case float64:
		return any(x / float64(n)).(U)
	case complex128:
		return any(x / complex(float64(n), 0)).(U)
	default:
		panic("series: unsupported coefficient type")
	}
}

// Evaluate computes s(dt) by Horner's method.
func (s Series[U]) Evaluate(dt U) U {
	n := len(s.coeffs)
	acc := s.coeffs[n-1]
	for k := n - 2; k >= 0; k-- {
		acc = acc*dt + s.coeffs[k]
	}
	return acc
}

// Abs returns the magnitude of a coefficient value, real or complex.
func Abs[U Numeric](v U) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	default:
		panic("series: unsupported coefficient type")
	}
}

// TailNorm returns the magnitude of the highest-order coefficient,
// the quantity spec.md's step-size selector uses as the leading
// truncation-error estimate.
func (s Series[U]) TailNorm() float64 {
	return Abs(s.coeffs[len(s.coeffs)-1])
}

// PenultimateNorm returns the magnitude of the second-highest-order
// coefficient, the k = N-1 term of the step-size selector's primary
// rule alongside TailNorm's k = N term.
func (s Series[U]) PenultimateNorm() float64 {
	if len(s.coeffs) < 2 {
		return 0
	}
	return Abs(s.coeffs[len(s.coeffs)-2])
}
