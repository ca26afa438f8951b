package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

// Pow sets z to x**y rounded to z's precision, and returns z. If z's
// precision is 0, it is changed to the larger of x's or y's precision before
// the operation. The result is exact whenever x**y is representable at z's
// precision.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, y) = NaN if x or y is NaN
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer, or y = -Inf
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for finite y > 0 and not an odd integer, or y = +Inf
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1, +0 for |x| < 1
//	Pow(x, -Inf) = +0 for |x| > 1, +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0, +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
func Pow(z, x, y *mpf.Float) *mpf.Float {
	prepare(z, x, y)
	switch {
	case y.IsZero(), !x.IsNaN() && x.CmpInt64(1) == 0:
		return z.SetInt64(1)
	case x.IsNaN(), y.IsNaN():
		return z.SetNaN()
	}
	odd := isOddInt(y)
	switch {
	case x.IsZero():
		if y.Signbit() {
			return z.SetInf(odd && x.Signbit())
		}
		return z.SetZero(odd && x.Signbit())
	case y.IsInf():
		switch c := x.CmpAbs(one); {
		case c == 0:
			return z.SetInt64(1)
		case (c < 0) == y.Signbit():
			return z.SetInf(false)
		}
		return z.SetZero(false)
	case x.IsInf():
		neg := odd && x.Signbit()
		if y.Signbit() {
			return z.SetZero(neg)
		}
		return z.SetInf(neg)
	}

	if y.IsInt() {
		if y.Exponent() <= 64 {
			n, _ := y.Int(nil)
			return z.PowInt(x, n)
		}
		if x.CmpAbs(one) == 0 {
			return z.SetInt64(sign(odd && x.Signbit()))
		}
	} else if x.Signbit() {
		return z.SetNaN()
	}
	neg := odd && x.Signbit()
	ax := new(mpf.Float).Abs(x)
	if powExact(z, ax, y) {
		return z
	}

	// estimate y log2|x|
	l := alloc(64)
	logK(l, ax)
	ev := y.Exponent() + l.Exponent()
	c := y.Sign() * l.Sign()
	if ev <= 64 {
		lf, _ := l.Float64()
		yf, _ := y.Float64()
		c = rangeOf(lf * yf * math.Log2E)
	}
	if c != 0 {
		if c > 0 {
			return overflow(z, neg)
		}
		return underflow(z, neg)
	}

	return ziv(z, 0, func(t *mpf.Float) uint {
		// the absolute error on y ln|x| is below 2**(lost-p-6)
		pp := t.Prec() + uint(max(ev, 0)) + 8
		l := alloc(pp)
		lost := logK(l, ax)
		lost = expK(t, l.Mul(l, y)) + 1 + max(lost, 6) - 6
		if neg {
			t.Neg(t)
		}
		return lost
	})
}

// PowFloat64 is like Pow with y given as a float64.
func PowFloat64(z, x *mpf.Float, y float64) *mpf.Float {
	return Pow(z, x, mpf.NewFloat(y))
}

// powExact sets z to x**y and returns true if the result is exact for a
// positive finite x and a non-integral y = m/2**k: this is the case when x
// has an exact 2**k-th root.
func powExact(z, x, y *mpf.Float) bool {
	k := int64(y.MinPrec()) - y.Exponent()
	if k <= 0 || k > 1<<16 {
		return false
	}
	r := x
	for ; k > 0; k-- {
		s := alloc(max(r.Prec(), 2)).Sqrt(r)
		if s.Acc() != mpf.Exact {
			return false
		}
		r = s
	}
	m, _ := alloc(y.Prec()).Mul2Exp(y, int64(y.MinPrec())-y.Exponent()).Int(nil)
	z.PowInt(r, m)
	return true
}

// Hypot sets z to √(x²+y²) rounded to z's precision, avoiding unnecessary
// overflow and underflow, and returns z. If z's precision is 0, it is changed
// to the larger of x's or y's precision before the operation.
//
// Special cases are:
//
//	Hypot(±Inf, y) = +Inf, even if y is NaN
//	Hypot(x, ±Inf) = +Inf, even if x is NaN
//	Hypot(NaN, y)  = NaN
//	Hypot(x, NaN)  = NaN
//	Hypot(±0, y)   = |y|
func Hypot(z, x, y *mpf.Float) *mpf.Float {
	prepare(z, x, y)
	switch {
	case x.IsInf() || y.IsInf():
		return z.SetInf(false)
	case x.IsNaN() || y.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.Abs(y)
	case y.IsZero():
		return z.Abs(x)
	}
	a := new(mpf.Float).Abs(x)
	b := new(mpf.Float).Abs(y)
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	ea, d := a.Exponent(), a.Exponent()-b.Exponent()
	q := max(guardBits(z, x), guardBits(z, y))
	// hypot = a(1 + (b/a)²/2 - …)
	if d > int64(q/2)+1 {
		return nudge(z, a, 1)
	}
	// a² + b² is computed exactly after scaling by 2**-ea
	p := max(a.Prec(), b.Prec())
	a2 := alloc(2 * p).SetMantExp(a, -ea)
	b2 := alloc(2 * p).SetMantExp(b, -ea)
	a2.Sqr(a2)
	b2.Sqr(b2)
	s := alloc(2*p + 2*uint(d) + 2).Add(a2, b2)
	if ea > -1<<60 && ea < 1<<60 {
		return z.Sqrt(s.SetMantExp(s, 2*ea))
	}
	z.Sqrt(s)
	return z.SetMantExp(z, ea)
}

// Agm sets z to the arithmetic-geometric mean of x and y rounded to z's
// precision, and returns z.
//
// Special cases are:
//
//	Agm(x, y) = NaN if x or y is NaN or negative
//	Agm(±0, y) = Agm(x, ±0) = +0
//	Agm(+Inf, y) = Agm(x, +Inf) = +Inf
func Agm(z, x, y *mpf.Float) *mpf.Float {
	prepare(z, x, y)
	switch {
	case x.IsNaN() || y.IsNaN():
		return z.SetNaN()
	case x.Sign() < 0 || y.Sign() < 0:
		return z.SetNaN()
	case x.IsZero() || y.IsZero():
		return z.SetZero(false)
	case x.IsInf() || y.IsInf():
		return z.SetInf(false)
	case x.Cmp(y) == 0:
		return z.Set(x)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		p := t.Prec()
		var (
			a = alloc(p).Set(x)
			b = alloc(p).Set(y)
			u = alloc(p)
			n uint64
		)
		for n = 1; ; n++ {
			u.Add(a, b)
			u.Mul2Exp(u, -1)
			b.Sqrt(b.Mul(a, b))
			a, u = u, a
			if u.Sub(a, b); u.IsZero() || u.Exponent() < a.Exponent()-int64(p)+2 {
				break
			}
		}
		t.Set(a)
		return uint(bits.Len64(n)) + 3
	})
}
