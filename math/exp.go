package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

// Exp sets z to e**x rounded to z's precision, and returns z. If z's
// precision is 0, it is changed to x's precision before the operation.
//
// Special cases are:
//
//	Exp(±0)   = 1
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = +0
//	Exp(NaN)  = NaN
//
// Very large values overflow to +Inf, very small ones underflow to +0,
// according to z's rounding mode.
func Exp(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	if expSpecial(z, x) {
		return z
	}
	if tiny(x, guardBits(z, x)) {
		return nudge(z, one, x.Sign())
	}
	if c := expRange(x, math.Log2E); c != 0 {
		return outOfRange(z, c)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return expK(t, x)
	})
}

// Exp2 sets z to 2**x rounded to z's precision, and returns z. Special cases
// are as for Exp. The result is exact when x is an integer within the
// exponent range.
func Exp2(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	if expSpecial(z, x) {
		return z
	}
	if x.IsInt() {
		if n, acc := x.Int64(); acc == mpf.Exact {
			return z.SetInt64Exp2(1, n)
		}
		return outOfRange(z, x.Sign())
	}
	if tiny(x, guardBits(z, x)) {
		return nudge(z, one, x.Sign())
	}
	if c := expRange(x, 1); c != 0 {
		return outOfRange(z, c)
	}
	f := alloc(2)
	n, _ := reduceInt(f, x)
	return ziv(z, 0, func(t *mpf.Float) uint {
		// 2**x = 2**n × e**(f ln 2)
		r := alloc(t.Prec() + 8)
		cLog2.approx(r)
		r.Mul(r, f)
		return expScaled(t, r, n) + 1
	})
}

// Exp10 sets z to 10**x rounded to z's precision, and returns z. Special
// cases are as for Exp. The result is exact when x is a non-negative integer
// and 10**x is representable at z's precision.
func Exp10(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	if expSpecial(z, x) {
		return z
	}
	if x.IsInt() {
		if n, acc := x.Int64(); acc == mpf.Exact {
			return z.PowInt64(ten, n)
		}
		return outOfRange(z, x.Sign())
	}
	if tiny(x, guardBits(z, x)) {
		return nudge(z, one, x.Sign())
	}
	if c := expRange(x, math.Log2(10)); c != 0 {
		return outOfRange(z, c)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		a := alloc(t.Prec() + uint(max(x.Exponent(), 0)) + 8)
		cLog10.approx(a)
		return expK(t, a.Mul(a, x)) + 1
	})
}

// Expm1 sets z to e**x - 1 rounded to z's precision, and returns z. The result
// is accurate even for x close to 0.
//
// Special cases are:
//
//	Expm1(±0)   = ±0
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN)  = NaN
func Expm1(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		if x.Signbit() {
			return z.SetInt64(-1)
		}
		return z.SetInf(false)
	case x.IsZero():
		return z.Set(x)
	}
	q := guardBits(z, x)
	if tiny(x, q) {
		return nudge(z, x, 1)
	}
	if x.CmpInt64(-int64(q)-2) < 0 {
		return nudge(z, mpf.NewFloat(-1), 1)
	}
	if expRange(x, math.Log2E) > 0 {
		return overflow(z, false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return expm1K(t, x)
	})
}

// expSpecial handles the special cases of Exp, Exp2 and Exp10 and reports
// whether z has been set.
func expSpecial(z, x *mpf.Float) bool {
	switch {
	case x.IsNaN():
		z.SetNaN()
	case x.IsInf():
		if x.Signbit() {
			z.SetZero(false)
		} else {
			z.SetInf(false)
		}
	case x.IsZero():
		z.SetInt64(1)
	default:
		return false
	}
	return true
}

// expRange returns 1 if 2**(x×scale) certainly overflows, -1 if it certainly
// underflows, and 0 otherwise.
func expRange(x *mpf.Float, scale float64) int {
	f, _ := x.Float64()
	return rangeOf(f * scale)
}

// rangeOf returns 1 if 2**e certainly overflows, -1 if it certainly
// underflows, and 0 otherwise.
func rangeOf(e float64) int {
	switch {
	case e > mpf.MaxExp+2:
		return 1
	case e < mpf.MinExp-3:
		return -1
	}
	return 0
}

// outOfRange sets z to an overflowed +Inf if c > 0 or an underflowed +0 if
// c < 0.
func outOfRange(z *mpf.Float, c int) *mpf.Float {
	if c > 0 {
		return overflow(z, false)
	}
	return underflow(z, false)
}

// expK sets z to an approximation of e**x and returns the number of lost bits.
// x must be finite and e**x within a few bits of the exponent range.
func expK(z, x *mpf.Float) uint {
	p := z.Prec()
	// n = round(x / ln 2)
	xe := uint(max(x.Exponent(), 0))
	q := alloc(xe + 16)
	cLog2.approx(q)
	q.Quo(x, q)
	n, _ := q.RoundEven(q).Int64()

	// r = x - n ln 2
	pp := p + uint(bits.Len64(abs64(n))) + 8
	r := alloc(pp)
	cLog2.approx(r)
	r.Sub(x, r.MulInt64(r, n))
	return expScaled(z, r, n) + 1
}

// expScaled sets z to an approximation of 2**n × e**r for |r| < 1 and returns
// the number of lost bits.
func expScaled(z, r *mpf.Float, n int64) uint {
	lost := expm1S(z, r)
	z.AddUint64(z, 1)
	z.SetMantExp(z, n)
	return lost + 1
}

// expm1K sets z to an approximation of e**x - 1 for a finite nonzero x and
// returns the number of lost bits.
func expm1K(z, x *mpf.Float) uint {
	if x.CmpAbs(half) < 0 {
		return expm1S(z, x)
	}
	e := alloc(z.Prec() + 2)
	lost := expK(e, x)
	z.Sub(e, one)
	return lostBits(e.Exponent(), z.Exponent(), lost+1)
}

// expm1S sets z to an approximation of e**r - 1 for |r| < 1 and returns the
// number of lost bits. r is divided by 2**k before summing the Taylor series,
// and the result is squared back k times with e**2x - 1 = (e**x - 1)(e**x + 1).
func expm1S(z, r *mpf.Float) uint {
	if r.IsZero() {
		z.Set(r)
		return 0
	}
	p := z.Prec()
	k := int64(math.Sqrt(float64(p))) / 2
	k = max(k+r.Exponent(), 0)
	var (
		x = alloc(p).Mul2Exp(r, -k)
		t = alloc(p).Set(x)
		s = alloc(p).Set(x)
		i uint64
	)
	for i = 2; ; i++ {
		t.Mul(t, x)
		t.QuoUint64(t, i)
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < s.Exponent()-int64(p)-2 {
			break
		}
	}
	for j := k; j > 0; j-- {
		t.AddUint64(s, 2)
		s.Mul(s, t)
	}
	z.Set(s)
	return uint(bits.Len64(2*i+3*uint64(k)+8)) + 1
}
