package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

// Eint sets z to the exponential integral Ei(x) = -∫_{-x}^∞ e**-t/t dt rounded
// to z's precision, and returns z. For x < 0, Ei(x) = -E1(-x). If z's
// precision is 0, it is changed to x's precision before the operation.
//
// Special cases are:
//
//	Eint(+Inf) = +Inf
//	Eint(-Inf) = -0
//	Eint(±0)   = -Inf
//	Eint(NaN)  = NaN
func Eint(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		if x.Signbit() {
			return z.SetZero(true)
		}
		return z.SetInf(false)
	case x.IsZero():
		return z.SetInf(true)
	}
	// |Ei(x)| ~ e**x / |x|
	if x.Exponent() > 64 {
		if x.Signbit() {
			return underflow(z, true)
		}
		return overflow(z, false)
	}
	f, _ := x.Float64()
	if c := rangeOf(f*math.Log2E - math.Log2(math.Abs(f))); c != 0 {
		if c > 0 {
			return overflow(z, false)
		}
		return underflow(z, true)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return eintK(t, x)
	})
}

// eintK sets z to an approximation of Ei(x) for a finite nonzero x and
// returns the number of lost bits.
func eintK(z, x *mpf.Float) uint {
	p := z.Prec()
	f, _ := x.Float64()
	e := math.Abs(f) * math.Log2E
	if e > float64(p+16) {
		if lost, ok := eintAsymK(z, x); ok {
			return lost
		}
	}

	// Ei(x) = γ + ln|x| + Σ x**k / (k k!)
	var extra uint
	if x.Signbit() {
		extra = uint(2 * e)
	}
	pp := p + extra + 8
	var (
		t  = alloc(pp).Set(x)
		s  = alloc(pp).Set(x)
		es = x.Exponent()
		k  uint64
	)
	for k = 2; ; k++ {
		t.Mul(t, x)
		t.MulUint64(t, k-1)
		t.QuoUint64(t, k*k)
		s.Add(s, t)
		if t.IsZero() {
			break
		}
		es = max(es, t.Exponent())
		if float64(k) > math.Abs(f) && t.Exponent() < es-int64(pp)-2 {
			break
		}
	}
	l := alloc(pp)
	logK(l, new(mpf.Float).Abs(x))
	g := alloc(pp)
	cEuler.approx(g)
	em := max(es, maxExp(l, g))
	s.Add(s, l)
	s.Add(s, g)
	lost := lostBits(em, s.Exponent(), uint(bits.Len64(k))+4)
	z.Set(s)
	return shed(lost, pp, p) + 1
}

// eintAsymK sets z to an approximation of Ei(x) for a large |x| from
//
//	Ei(x) ~ e**x / x Σ k! / x**k
//
// and returns the number of lost bits. It returns false if the smallest term
// of the expansion is too large for z's precision.
func eintAsymK(z, x *mpf.Float) (uint, bool) {
	p := z.Prec()
	pp := p + 8
	xf, _ := x.Float64()
	var (
		t = alloc(pp).SetInt64(1)
		s = alloc(pp).SetInt64(1)
		k uint64
	)
	for k = 1; ; k++ {
		t.MulUint64(t, k)
		t.Quo(t, x)
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < -int64(pp)-2 {
			break
		}
		if float64(k) > math.Abs(xf) {
			return 0, false
		}
	}
	e := alloc(pp)
	lost := expK(e, x)
	z.Mul(s, e)
	z.Quo(z, x)
	return lost + uint(bits.Len64(k)) + 4, true
}
