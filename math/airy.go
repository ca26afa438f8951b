package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

var (
	// Ai(0) = Γ(1/3) / (2π 3**(1/6))
	cAi0 = &constant{eval: func(z *mpf.Float) {
		ziv(z, 0, func(t *mpf.Float) uint {
			p := t.Prec()
			g := alloc(p).Uint64Quo(1, alloc(p).SetUint64(3))
			lost := gammaPosK(t, g)
			g.SqrtUint64(3)
			g.Root(g, 3)
			t.Quo(t, g)
			cPi.approx(g)
			t.Quo(t, g.Mul2Exp(g, 1))
			return lost + 4
		})
	}}
	// -Ai'(0) = 1 / (3**(1/3) Γ(1/3))
	cAi1 = &constant{eval: func(z *mpf.Float) {
		ziv(z, 0, func(t *mpf.Float) uint {
			p := t.Prec()
			g := alloc(p).Uint64Quo(1, alloc(p).SetUint64(3))
			lost := gammaPosK(t, g)
			g.SetUint64(3)
			g.Root(g, 3)
			t.Mul(t, g)
			t.Uint64Quo(1, t)
			return lost + 3
		})
	}}
)

// Ai sets z to the Airy function Ai(x) rounded to z's precision, and returns
// z. If z's precision is 0, it is changed to x's precision before the
// operation.
//
// Special cases are:
//
//	Ai(±Inf) = +0
//	Ai(NaN)  = NaN
func Ai(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		return z.SetZero(false)
	case x.IsZero():
		return cAi0.set(z)
	}
	// Ai(x) ~ e**-ζ / (2√π x**(1/4)), ζ = 2/3 x**(3/2)
	if x.Sign() > 0 && (x.Exponent() > 64 || rangeOf(-airyZeta(x)*math.Log2E) < 0) {
		return underflow(z, false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return aiK(t, x)
	})
}

// airyZeta returns 2/3 |x|**(3/2) as a float64.
func airyZeta(x *mpf.Float) float64 {
	f, _ := x.Float64()
	return 2. / 3. * math.Pow(math.Abs(f), 1.5)
}

// aiK sets z to an approximation of Ai(x) for a finite nonzero x and returns
// the number of lost bits.
func aiK(z, x *mpf.Float) uint {
	p := z.Prec()
	e := 2 * airyZeta(x) * math.Log2E
	if x.Exponent() > 64 || e > float64(p+16) {
		if lost, ok := aiAsymK(z, x); ok {
			return lost
		}
	}
	return aiS(z, x, uint(e))
}

// aiS sets z to an approximation of Ai(x) from the power series
//
//	Ai(x) = Ai(0) f(x) + Ai'(0) g(x)
//	f(x) = Σ 3**k (1/3)_k x**3k / (3k)!
//	g(x) = Σ 3**k (2/3)_k x**(3k+1) / (3k+1)!
//
// computed with extra bits for the cancellation between f and g, and returns
// the number of lost bits.
func aiS(z, x *mpf.Float, extra uint) uint {
	p := z.Prec()
	pp := p + extra + 8
	var (
		x3 = alloc(pp).Sqr(x)
		a  = alloc(pp).SetInt64(1)
		f  = alloc(pp).SetInt64(1)
		b  = alloc(pp).Set(x)
		g  = alloc(pp).Set(x)
		ef = int64(1)
		eg = x.Exponent()
		k  uint64
	)
	x3.Mul(x3, x)
	xf, _ := x.Float64()
	xf = math.Abs(xf * xf * xf)
	for k = 1; ; k++ {
		a.Mul(a, x3)
		a.QuoUint64(a, (3*k-1)*(3*k))
		b.Mul(b, x3)
		b.QuoUint64(b, (3*k)*(3*k+1))
		f.Add(f, a)
		g.Add(g, b)
		if a.IsZero() {
			break
		}
		ef = max(ef, a.Exponent())
		eg = max(eg, b.Exponent())
		if float64(9*k*k) > xf && a.Exponent() < ef-int64(pp)-2 && b.Exponent() < eg-int64(pp)-2 {
			break
		}
	}
	c := alloc(pp)
	cAi0.approx(c)
	f.Mul(f, c)
	ef += c.Exponent()
	cAi1.approx(c)
	g.Mul(g, c)
	eg += c.Exponent()
	f.Sub(f, g)
	lost := lostBits(max(ef, eg), f.Exponent(), uint(bits.Len64(k))+4)
	z.Set(f)
	return shed(lost, pp, p) + 1
}

// aiAsymK sets z to an approximation of Ai(x) for a large |x| from its
// asymptotic expansion with u_k = (2k+1)(2k+3)…(6k-1) / (216**k k!):
//
//	Ai(x)  = e**-ζ / (2√π x**(1/4)) Σ (-1)**k u_k / ζ**k
//	Ai(-x) = ((sin ζ + cos ζ) P - (cos ζ - sin ζ) Q) / (√(2π) x**(1/4))
//
// where ζ = 2/3 x**(3/2), and P and Q are the even and odd parts of
// Σ (-1)**⌊k/2⌋ u_k / ζ**k. It returns false if |x| is too small for the
// expansion to reach z's precision.
func aiAsymK(z, x *mpf.Float) (uint, bool) {
	p := z.Prec()
	pp := p + 8
	ax := new(mpf.Float).Abs(x)
	// ζ to pp fractional bits
	ze := uint(max(ax.Exponent(), 0))*3/2 + 2
	zeta := alloc(pp + ze).Sqrt(ax)
	zeta.Mul(zeta, ax)
	zeta.Mul2Exp(zeta, 1)
	zeta.QuoUint64(zeta, 3)
	zf, _ := zeta.Float64()

	var (
		t   = alloc(pp).SetInt64(1)
		u   = alloc(pp)
		P   = alloc(pp).SetInt64(1)
		Q   = alloc(pp)
		pos = x.Sign() > 0
		k   uint64
	)
	for k = 1; ; k++ {
		t.MulUint64(t, (6*k-5)*(6*k-3))
		t.MulUint64(t, 6*k-1)
		t.QuoUint64(t, 216*k*(2*k-1))
		t.Quo(t, zeta)
		u.Set(t)
		if pos {
			if k&1 != 0 {
				u.Neg(u)
			}
			P.Add(P, u)
		} else {
			if k&2 != 0 {
				u.Neg(u)
			}
			if k&1 != 0 {
				Q.Add(Q, u)
			} else {
				P.Add(P, u)
			}
		}
		if t.IsZero() || t.Exponent() < -int64(pp)-2 {
			break
		}
		if float64(k) > 2*zf {
			return 0, false
		}
	}

	// x**(1/4) √π
	r := alloc(pp).Sqrt(ax)
	r.Sqrt(r)
	c := alloc(pp)
	cPi.approx(c)
	r.Mul(r, c.Sqrt(c))

	var lost uint
	if pos {
		lost = expK(c, zeta.Neg(zeta))
		z.Mul(P, c)
		z.Quo(z, r.Mul2Exp(r, 1))
		return lost + uint(bits.Len64(k)) + 4, true
	}
	s := alloc(pp)
	lost = sincosK(s, c, zeta)
	sc := alloc(pp).Add(s, c)
	cs := alloc(pp).Sub(c, s)
	P.Mul(P, sc)
	Q.Mul(Q, cs)
	P.Sub(P, Q)
	l := lostBits(1, P.Exponent(), lost+uint(bits.Len64(k))+4)
	r.Mul(r, c.SqrtUint64(2))
	z.Quo(P, r)
	return shed(l, pp, p) + 3, true
}
