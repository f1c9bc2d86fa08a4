package series

import (
	"math"
	"math/cmplx"
)

// SinCos returns sin(u) and cos(u) as order-N series, computed
// together because each one's recursion needs the other's lower-order
// coefficients (the standard Taylor-series composition identity for a
// pair of functions related by differentiation).
func SinCos[U Numeric](u Series[U]) (sin, cos Series[U]) {
	n := u.Order()
	sin = New[U](n)
	cos = New[U](n)
	sin.SetCoeff(0, elemSin(u.Coeff(0)))
	cos.SetCoeff(0, elemCos(u.Coeff(0)))

	for k := 1; k <= n; k++ {
		var sAcc, cAcc U
		for j := 1; j <= k; j++ {
			jU := FromFloat64[U](float64(j))
			sAcc += jU * u.Coeff(j) * cos.Coeff(k-j)
			cAcc += jU * u.Coeff(j) * sin.Coeff(k-j)
		}
		sin.SetCoeff(k, divByInt(sAcc, k))
		cos.SetCoeff(k, divByInt(-cAcc, k))
	}
	return sin, cos
}

// Sin returns sin(u) as an order-N series.
func Sin[U Numeric](u Series[U]) Series[U] {
	s, _ := SinCos(u)
	return s
}

// Cos returns cos(u) as an order-N series.
func Cos[U Numeric](u Series[U]) Series[U] {
	_, c := SinCos(u)
	return c
}

func elemSin[U Numeric](v U) U {
	switch x := any(v).(type) {
	case float64:
		return any(math.Sin(x)).(U)
	case complex128:
		return any(cmplx.Sin(x)).(U)
	default:
		panic("series: unsupported coefficient type")
	}
}

func elemCos[U Numeric](v U) U {
	switch x := any(v).(type) {
	case float64:
		return any(math.Cos(x)).(U)
	case complex128:
		return any(cmplx.Cos(x)).(U)
	default:
		panic("series: unsupported coefficient type")
	}
}
