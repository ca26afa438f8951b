package math

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/db47h/mpf"
)

// maxZetaExact is the largest n for which ζ(-n) is computed from the
// Bernoulli numbers.
const maxZetaExact = 511

// Zeta sets z to the Riemann zeta function of s rounded to z's precision, and
// returns z. If z's precision is 0, it is changed to s's precision before the
// operation.
//
// Special cases are:
//
//	Zeta(+Inf) = 1
//	Zeta(-Inf) = NaN
//	Zeta(±0)   = -1/2
//	Zeta(1)    = +Inf
//	Zeta(s)    = +0 for even integer s < 0
//	Zeta(NaN)  = NaN
func Zeta(z, s *mpf.Float) *mpf.Float {
	prepare(z, s)
	switch {
	case s.IsNaN(), s.IsInf() && s.Signbit():
		return z.SetNaN()
	case s.IsInf():
		return z.SetInt64(1)
	case s.IsZero():
		return z.SetFloat64(-0.5)
	case s.CmpInt64(1) == 0:
		return z.SetInf(false)
	}
	q := guardBits(z, s)
	// ζ(s) = -1/2 - s ln(2π)/2 + O(s²)
	if tiny(s, q+1) {
		return nudge(z, alloc(2).Neg(half), -s.Sign())
	}
	// ζ(s) = 1 + 2**-s + 3**-s + …
	if s.CmpUint64(uint64(q)) > 0 {
		return nudge(z, one, 1)
	}
	if s.Signbit() && s.IsInt() {
		if !isOddInt(s) {
			return z.SetZero(false)
		}
		if n, acc := s.Int64(); acc == mpf.Exact && n >= -maxZetaExact {
			// ζ(-n) = -B_(n+1) / (n+1)
			b := new(big.Rat).Set(bernoulli(int(1-n) / 2))
			return z.SetRat(b.Quo(b, big.NewRat(n-1, 1)))
		}
	}
	if s.CmpFloat64(0.5) >= 0 {
		return ziv(z, 0, func(t *mpf.Float) uint {
			return zetaPosK(t, s)
		})
	}

	// ζ(s) = 2**s π**(s-1) sin(πs/2) Γ(1-s) ζ(1-s)
	if c := zetaRange(s); c != 0 {
		neg := zetaNeg(s)
		if c > 0 {
			return overflow(z, neg)
		}
		return underflow(z, neg)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return zetaReflK(t, s)
	})
}

// ZetaUint64 is like Zeta with s given as a uint64.
func ZetaUint64(z *mpf.Float, s uint64) *mpf.Float {
	prepare(z)
	return Zeta(z, new(mpf.Float).SetUint64(s))
}

// zetaRange returns 1 if ζ(s) certainly overflows for s < 1/2, -1 if it
// certainly underflows, and 0 otherwise.
func zetaRange(s *mpf.Float) int {
	f, _ := s.Float64()
	if f > -16 {
		return 0
	}
	// |ζ(s)| ~ 2 Γ(1-s) / (2π)**(1-s)
	lg, _ := math.Lgamma(1 - f)
	return rangeOf(lg*math.Log2E + (1-f)*-math.Log2(2*math.Pi) + 1)
}

// zetaNeg reports whether ζ(s) < 0 for s < 0, that is whether sin(πs/2) < 0.
func zetaNeg(s *mpf.Float) bool {
	h := alloc(max(s.Prec(), 2)).Mul2Exp(s, -1)
	f := alloc(2)
	_, odd := reduceInt(f, h)
	return f.Signbit() != odd
}

// zetaPosK sets z to an approximation of ζ(s) for s >= 1/2, s != 1 and
// returns the number of lost bits. It uses Borwein's algorithm for the
// alternating series η(s) = (1 - 2**(1-s)) ζ(s).
func zetaPosK(z, s *mpf.Float) uint {
	p := z.Prec()

	// d = 1 - 2**(1-s)
	d := alloc(p + 8)
	cLog2.approx(d)
	d.Mul(d, oneMinus(s, p))
	expm1K(d, d)
	d.Neg(d)

	// the truncation error is below 3 / ((3+√8)**n |d|)
	n := int64(float64(int64(p)+4-d.Exponent())*0.3934) + 2

	// b_i = n (n+i-1)! 4**i / ((n-i)! (2i)!), dk = Σ_{i<=k} b_i
	dk := make([]*big.Int, n+1)
	b := big.NewInt(1)
	var acc, t big.Int
	for i := int64(0); i <= n; i++ {
		acc.Add(&acc, b)
		dk[i] = new(big.Int).Set(&acc)
		t.SetInt64(4 * (n + i) * (n - i))
		b.Mul(b, &t)
		b.Quo(b, t.SetInt64((2*i+1)*(2*i+2)))
	}

	// η(s) = Σ (-1)**k (d_n - d_k) / (k+1)**s / d_n
	var (
		sum = alloc(p)
		u   = alloc(p)
		e   = int64(mpf.MinExp)
	)
	for k := int64(0); k < n; k++ {
		powNeg(u, uint64(k+1), s)
		u.MulInt(u, t.Sub(dk[n], dk[k]))
		e = max(e, u.Exponent())
		if k&1 != 0 {
			u.Neg(u)
		}
		sum.Add(sum, u)
	}
	lost := lostBits(e, sum.Exponent(), uint(bits.Len64(uint64(n)))+4)
	sum.QuoInt(sum, dk[n])
	z.Quo(sum, d)
	return lost + 2
}

// powNeg sets z to an approximation of a**-s with a relative error below
// 2**(4-z.Prec()). a must be positive.
func powNeg(z *mpf.Float, a uint64, s *mpf.Float) {
	if a == 1 {
		z.SetInt64(1)
		return
	}
	if n, acc := s.Int64(); acc == mpf.Exact && n < 1<<32 {
		z.SetUint64(a)
		z.PowInt64(z, -n)
		return
	}
	p := z.Prec()
	l := alloc(p + uint(max(s.Exponent(), 0)) + 8).SetUint64(a)
	logK(l, l)
	l.Mul(l, s)
	expK(z, l.Neg(l))
}

// zetaReflK sets z to an approximation of ζ(s) for s < 1/2 and returns the
// number of lost bits.
func zetaReflK(z, s *mpf.Float) uint {
	p := z.Prec()
	y := oneMinus(s, p)

	// L = s ln 2 + (s-1) ln π + ln Γ(1-s)
	ye := max(y.Exponent(), 0)
	pe := p + uint(ye) + uint(bits.Len64(uint64(ye))) + 8
	l, t := alloc(pe), alloc(pe)
	l1 := lngammaK(l, y)
	cLog2.approx(t)
	l.Add(l, t.Mul(t, s))
	cPi.approx(t)
	logK(t, t)
	l.Sub(l, t.Mul(t, y))
	l2 := expK(z, l)

	h := alloc(p)
	l3 := sinPi(h, alloc(max(s.Prec(), 2)).Mul2Exp(s, -1))
	z.Mul(z, h)
	l4 := zetaPosK(h, y)
	z.Mul(z, h)
	return max(l1, l2, l3, l4) + 5
}
