package math

import (
	"math/bits"

	"github.com/db47h/mpf"
)

// Li2 sets z to the real part of the dilogarithm Li2(x) = -∫_0^x ln(1-t)/t dt
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
//
// Special cases are:
//
//	Li2(±Inf) = -Inf
//	Li2(±0)   = ±0
//	Li2(NaN)  = NaN
func Li2(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		return z.SetInf(true)
	case x.IsZero():
		return z.Set(x)
	}
	// Li2(x) = x + x²/4 + O(x³)
	if tiny(x, guardBits(z, x)) {
		return nudge(z, x, 1)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return li2K(t, x)
	})
}

// li2K sets z to an approximation of Re Li2(x) for a finite nonzero x and
// returns the number of lost bits. x is mapped to [-1, 1/2] with
//
//	Li2(x) = π²/6 - ln x ln|1-x| - Li2(1-x)   for 1/2 < x <= 2
//	Li2(x) = π²/3 - ln²x / 2 - Li2(1/x)       for x > 2
//	Li2(x) = -π²/6 - ln²(-x) / 2 - Li2(1/x)   for x < -1
func li2K(z, x *mpf.Float) uint {
	p := z.Prec()
	if x.CmpInt64(-1) >= 0 && x.CmpFloat64(0.5) <= 0 {
		return li2S(z, x)
	}
	pp := p + 8
	var (
		y   = alloc(pp)
		a   = alloc(pp)
		l   = alloc(pp)
		c   = alloc(pp)
		ax  = new(mpf.Float).Abs(x)
		inv = x.CmpInt64(2) > 0 || x.CmpInt64(-1) < 0
	)
	// c = π²/6
	cPi.approx(c)
	c.Sqr(c)
	c.QuoUint64(c, 6)
	if x.CmpInt64(1) == 0 {
		z.Set(c)
		return 4
	}
	if inv {
		y.Quo(one, x)
		lost := li2S(a, y)
		logK(l, ax)
		l.Sqr(l)
		l.Mul2Exp(l, -1)
		if x.Sign() > 0 {
			c.Mul2Exp(c, 1)
		} else {
			c.Neg(c)
		}
		e := maxExp(a, l, c)
		c.Sub(c, l)
		c.Sub(c, a)
		lost = lostBits(e, c.Exponent(), lost+4)
		z.Set(c)
		return shed(lost, pp, p) + 1
	}
	y = oneMinus(x, pp)
	lost := li2S(a, y)
	logK(l, x)
	u := alloc(pp).Abs(y)
	logK(u, u)
	l.Mul(l, u)
	e := maxExp(a, l, c)
	c.Sub(c, l)
	c.Sub(c, a)
	lost = lostBits(e, c.Exponent(), lost+4)
	z.Set(c)
	return shed(lost, pp, p) + 1
}

// li2S sets z to an approximation of Li2(x) for -1 <= x <= 1/2 and returns
// the number of lost bits. With u = -ln(1-x), |u| <= ln 2 and
//
//	Li2(x) = u - u²/4 + Σ B_2k u**(2k+1) / (2k+1)!
func li2S(z, x *mpf.Float) uint {
	if x.IsZero() {
		z.Set(x)
		return 0
	}
	p := z.Prec()
	pp := p + 4
	u := alloc(pp)
	lost := log1pK(u, alloc(max(x.Prec(), 2)).Neg(x))
	u.Neg(u)
	var (
		u2 = alloc(pp).Sqr(u)
		c  = alloc(pp).Set(u)
		t  = alloc(pp)
		s  = alloc(pp).Mul2Exp(u2, -2)
		k  int
	)
	s.Sub(u, s)
	for k = 1; ; k++ {
		c.Mul(c, u2)
		c.QuoUint64(c, uint64(2*k*(2*k+1)))
		t.MulRat(c, bernoulli(k))
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < s.Exponent()-int64(pp)-2 {
			break
		}
	}
	z.Set(s)
	return max(lost, 2) + uint(bits.Len(uint(k))) + 2
}
