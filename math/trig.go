package math

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/db47h/mpf"
)

// Sin sets z to the sine of x (in radians) rounded to z's precision, and
// returns z. If z's precision is 0, it is changed to x's precision before the
// operation.
//
// Special cases are:
//
//	Sin(±0)   = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN)  = NaN
func Sin(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf():
		return z.SetNaN()
	case x.IsZero():
		return z.Set(x)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, -x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return sincosK(t, nil, x)
	})
}

// Cos sets z to the cosine of x (in radians) rounded to z's precision, and
// returns z.
//
// Special cases are:
//
//	Cos(±0)   = 1
//	Cos(±Inf) = NaN
//	Cos(NaN)  = NaN
func Cos(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInt64(1)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, one, -1)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return sincosK(nil, t, x)
	})
}

// SinCos sets s and c to the sine and cosine of x, each rounded to its own
// precision, and returns them. If a precision is 0, it is changed to x's.
// Special cases are as for Sin and Cos.
func SinCos(s, c, x *mpf.Float) (*mpf.Float, *mpf.Float) {
	if s == x || c == x {
		x = new(mpf.Float).Set(x)
	}
	return Sin(s, x), Cos(c, x)
}

// Tan sets z to the tangent of x (in radians) rounded to z's precision, and
// returns z.
//
// Special cases are:
//
//	Tan(±0)   = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN)  = NaN
func Tan(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf():
		return z.SetNaN()
	case x.IsZero():
		return z.Set(x)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		c := alloc(t.Prec())
		lost := sincosK(t, c, x)
		t.Quo(t, c)
		return lost + 2
	})
}

// Sec sets z to the secant 1/cos(x) rounded to z's precision, and returns z.
//
// Special cases are:
//
//	Sec(±0)   = 1
//	Sec(±Inf) = NaN
//	Sec(NaN)  = NaN
func Sec(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInt64(1)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, one, 1)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := sincosK(nil, t, x)
		t.Quo(one, t)
		return lost + 1
	})
}

// Csc sets z to the cosecant 1/sin(x) rounded to z's precision, and returns z.
//
// Special cases are:
//
//	Csc(±0)   = ±Inf
//	Csc(±Inf) = NaN
//	Csc(NaN)  = NaN
func Csc(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInf(x.Signbit())
	}
	// csc x = 1/x + x/6 + …
	if inv, ok := tinyInverse(x, guardBits(z, x)/2+1); ok {
		if inv.IsInf() {
			return overflow(z, x.Signbit())
		}
		return nudge(z, inv, x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := sincosK(t, nil, x)
		t.Quo(one, t)
		return lost + 1
	})
}

// Cot sets z to the cotangent 1/tan(x) rounded to z's precision, and returns
// z.
//
// Special cases are:
//
//	Cot(±0)   = ±Inf
//	Cot(±Inf) = NaN
//	Cot(NaN)  = NaN
func Cot(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInf(x.Signbit())
	}
	// cot x = 1/x - x/3 - …
	if inv, ok := tinyInverse(x, guardBits(z, x)/2+1); ok {
		if inv.IsInf() {
			return overflow(z, x.Signbit())
		}
		return nudge(z, inv, -x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		s := alloc(t.Prec())
		lost := sincosK(s, t, x)
		t.Quo(t, s)
		return lost + 2
	})
}

// tinyInverse returns 1/x if x is a power of two with |x| < 2**-n. For a
// suitable n, a function f(x) = 1/x + O(x**k) then lies strictly between 1/x
// and its neighbour.
func tinyInverse(x *mpf.Float, n uint) (*mpf.Float, bool) {
	if x.MinPrec() != 1 || !tiny(x, n) {
		return nil, false
	}
	return alloc(2).Quo(one, x), true
}

// reduce sets r to x - nπ/2, where n is the integer nearest to 2x/π, and
// returns n mod 4. The relative error on r is below 2**-(prec+4).
func reduce(r, x *mpf.Float, prec uint) int {
	xe := uint(max(x.Exponent(), 0))
	extra := uint(16)
	for {
		pp := prec + xe + extra
		h := alloc(pp)
		cPi.approx(h)
		h.Mul2Exp(h, -1)
		q := alloc(xe + 16).Quo(x, h)
		n, _ := q.RoundEven(q).Int(nil)
		// |error| <= 2**(xe+3-pp)
		r.SetPrec(pp).Sub(x, h.MulInt(h, n))
		if !r.IsZero() && r.Exponent() >= 7-int64(extra) {
			return int(new(big.Int).And(n, big.NewInt(3)).Int64())
		}
		if r.IsZero() {
			extra *= 2
		} else {
			extra = uint(23 - r.Exponent())
		}
	}
}

// sincosK sets s and c (either may be nil) to approximations of sin x and
// cos x at their respective precisions, and returns the number of lost bits.
// x must be finite and nonzero.
func sincosK(s, c, x *mpf.Float) uint {
	var p uint
	if s != nil {
		p = s.Prec()
	}
	if c != nil {
		p = max(p, c.Prec())
	}
	r := new(mpf.Float)
	n := reduce(r, x, p)
	sr, cr := alloc(p), alloc(p)
	lost := sincosS(sr, cr, r)
	if n&1 != 0 {
		sr, cr = cr, sr.Neg(sr)
	}
	if n&2 != 0 {
		sr.Neg(sr)
		cr.Neg(cr)
	}
	if s != nil {
		s.Set(sr)
	}
	if c != nil {
		c.Set(cr)
	}
	return lost + 1
}

// sincosS sets s and c to approximations of sin r and cos r for |r| < 1 and
// returns the number of lost bits. It evaluates the versine v = 1 - cos r of
// r/2**k from its Taylor series and doubles the angle k times with
// 1 - cos 2a = 2v(2-v).
func sincosS(s, c, r *mpf.Float) uint {
	p := max(s.Prec(), c.Prec())
	k := int64(math.Sqrt(float64(p))) / 2
	k = max(k+r.Exponent(), 0)
	var (
		x  = alloc(p).Mul2Exp(r, -k)
		x2 = alloc(p).Sqr(x)
		t  = alloc(p).Mul2Exp(x2, -1)
		v  = alloc(p).Set(t)
		i  uint64
	)
	for i = 2; ; i++ {
		t.Mul(t, x2)
		t.QuoUint64(t, (2*i-1)*(2*i))
		t.Neg(t)
		v.Add(v, t)
		if t.IsZero() || t.Exponent() < v.Exponent()-int64(p)-2 {
			break
		}
	}
	for j := k; j > 0; j-- {
		t.Int64Sub(2, v)
		v.Mul(v, t)
		v.Mul2Exp(v, 1)
	}
	c.Int64Sub(1, v)
	t.Int64Sub(2, v)
	s.Sqrt(t.Mul(t, v))
	if r.Signbit() {
		s.Neg(s)
	}
	return uint(bits.Len64(i+3*uint64(k)+8)) + 1
}
