package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

// Atan sets z to the arctangent of x rounded to z's precision, and returns z.
// The result is in [-π/2, π/2].
//
// Special cases are:
//
//	Atan(±0)   = ±0
//	Atan(±Inf) = ±π/2
//	Atan(NaN)  = NaN
func Atan(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.Set(x)
	case x.IsInf():
		return piMul2Exp(z, -1, x.Signbit())
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, -x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return atanK(t, x)
	})
}

// Asin sets z to the arcsine of x rounded to z's precision, and returns z.
// The result is in [-π/2, π/2].
//
// Special cases are:
//
//	Asin(±0)     = ±0
//	Asin(±1)     = ±π/2
//	Asin(|x| > 1) = NaN
//	Asin(NaN)    = NaN
func Asin(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.Set(x)
	}
	switch c := x.CmpAbs(one); {
	case c > 0:
		return z.SetNaN()
	case c == 0:
		return piMul2Exp(z, -1, x.Signbit())
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		// asin x = atan(x / √((1-x)(1+x)))
		p := t.Prec()
		u := alloc(p).Int64Sub(1, x)
		v := alloc(p).AddUint64(x, 1)
		u.Sqrt(u.Mul(u, v))
		return atanK(t, u.Quo(x, u)) + 3
	})
}

// Acos sets z to the arccosine of x rounded to z's precision, and returns z.
// The result is in [0, π].
//
// Special cases are:
//
//	Acos(1)       = +0
//	Acos(-1)      = π
//	Acos(±0)      = π/2
//	Acos(|x| > 1) = NaN
//	Acos(NaN)     = NaN
func Acos(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return piMul2Exp(z, -1, false)
	}
	switch c := x.CmpAbs(one); {
	case c > 0:
		return z.SetNaN()
	case c == 0:
		if x.Signbit() {
			return Pi(z)
		}
		return z.SetZero(false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		// acos x = 2 atan(√((1-x)/(1+x)))
		p := t.Prec()
		u := alloc(p).Int64Sub(1, x)
		v := alloc(p).AddUint64(x, 1)
		u.Sqrt(u.Quo(u, v))
		lost := atanK(t, u)
		t.Mul2Exp(t, 1)
		return lost + 3
	})
}

// Atan2 sets z to the arctangent of y/x, using the signs of the two to
// determine the quadrant of the result, and returns z. The result is in
// [-π, π].
//
// Special cases are (in order):
//
//	Atan2(y, NaN)       = NaN
//	Atan2(NaN, x)       = NaN
//	Atan2(±0, x>=+0)    = ±0
//	Atan2(±0, x<=-0)    = ±π
//	Atan2(y>0, ±0)      = +π/2
//	Atan2(y<0, ±0)      = -π/2
//	Atan2(±Inf, +Inf)   = ±π/4
//	Atan2(±Inf, -Inf)   = ±3π/4
//	Atan2(y, +Inf)      = ±0
//	Atan2(y, -Inf)      = ±π
//	Atan2(±Inf, x)      = ±π/2
func Atan2(z, y, x *mpf.Float) *mpf.Float {
	prepare(z, y, x)
	neg := y.Signbit()
	switch {
	case y.IsNaN() || x.IsNaN():
		return z.SetNaN()
	case y.IsZero():
		if x.Signbit() {
			return piMul2Exp(z, 0, neg)
		}
		return z.SetZero(neg)
	case x.IsZero():
		return piMul2Exp(z, -1, neg)
	case x.IsInf():
		if y.IsInf() {
			if x.Signbit() {
				return ziv(z, 0, func(t *mpf.Float) uint {
					lost := cPi.approx(t)
					t.MulInt64(t, 3)
					t.Mul2Exp(t, -2)
					if neg {
						t.Neg(t)
					}
					return lost + 1
				})
			}
			return piMul2Exp(z, -2, neg)
		}
		if x.Signbit() {
			return piMul2Exp(z, 0, neg)
		}
		return z.SetZero(neg)
	case y.IsInf():
		return piMul2Exp(z, -1, neg)
	}

	if x.Sign() > 0 {
		// atan(y/x) = y/x - (y/x)**3/3 + …
		q := alloc(guardBits(z, y)).Quo(y, x)
		if q.Acc() == mpf.Exact && (q.IsZero() || tiny(q, guardBits(z, q)/2+1)) {
			if q.IsZero() {
				return underflow(z, neg)
			}
			return nudge(z, q, -q.Sign())
		}
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		q := alloc(t.Prec()).Quo(y, x)
		var lost uint
		switch {
		case q.IsZero():
			if !x.Signbit() {
				t.Set(q)
				return 0
			}
		case q.IsInf():
			lost = cPi.approx(t)
			t.Mul2Exp(t, -1)
			if q.Signbit() {
				t.Neg(t)
			}
		default:
			lost = atanK(t, q) + 1
		}
		if x.Signbit() {
			// atan(y/x) ± π
			h := alloc(t.Prec())
			cPi.approx(h)
			if neg {
				t.Sub(t, h)
			} else {
				t.Add(t, h)
			}
			lost += 3
		}
		return lost
	})
}

// piMul2Exp sets z to ±π × 2**n rounded to z's precision.
func piMul2Exp(z *mpf.Float, n int64, neg bool) *mpf.Float {
	if z.Prec() == 0 {
		z.SetPrec(mpf.DefaultPrec)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := cPi.approx(t)
		t.Mul2Exp(t, n)
		if neg {
			t.Neg(t)
		}
		return lost
	})
}

// atanK sets z to an approximation of atan x for a finite nonzero x and
// returns the number of lost bits.
func atanK(z, x *mpf.Float) uint {
	p := z.Prec()
	a := alloc(p).Abs(x)
	inv := a.CmpInt64(1) > 0
	if inv {
		// atan x = π/2 - atan(1/x)
		a.Quo(one, a)
	}
	// atan a = 2 atan(a / (1 + √(1+a²)))
	k := int64(math.Sqrt(float64(p))) / 2
	k = max(k+a.Exponent(), 0)
	t := alloc(p)
	for j := k; j > 0; j-- {
		t.Sqr(a)
		t.Sqrt(t.AddUint64(t, 1))
		a.Quo(a, t.AddUint64(t, 1))
	}
	var (
		a2 = alloc(p).Sqr(a)
		u  = alloc(p).Set(a)
		s  = alloc(p).Set(a)
		i  uint64
	)
	for i = 1; ; i++ {
		u.Mul(u, a2)
		u.Neg(u)
		t.QuoUint64(u, 2*i+1)
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < s.Exponent()-int64(p)-2 {
			break
		}
	}
	s.Mul2Exp(s, k)
	if inv {
		cPi.approx(t)
		t.Mul2Exp(t, -1)
		s.Sub(t, s)
	}
	if x.Signbit() {
		s.Neg(s)
	}
	z.Set(s)
	return uint(bits.Len64(i+4*uint64(k)+8)) + 2
}
