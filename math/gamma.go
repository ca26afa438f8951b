package math

import (
	"math"
	"math/big"
	"math/bits"
	"sync"

	"github.com/db47h/mpf"
)

// maxFacExact is the largest n for which n! is computed exactly before
// rounding.
const maxFacExact = 1 << 14

// Gamma sets z to the Gamma function of x rounded to z's precision, and
// returns z. If z's precision is 0, it is changed to x's precision before the
// operation.
//
// Special cases are:
//
//	Gamma(+Inf) = +Inf
//	Gamma(±0)   = ±Inf
//	Gamma(x)    = NaN for integer x < 0
//	Gamma(-Inf) = NaN
//	Gamma(NaN)  = NaN
func Gamma(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf() && x.Signbit():
		return z.SetNaN()
	case x.IsInf():
		return z.SetInf(false)
	case x.IsZero():
		return z.SetInf(x.Signbit())
	case x.IsInt():
		if x.Signbit() {
			return z.SetNaN()
		}
		if n, acc := x.Uint64(); acc == mpf.Exact && n <= maxFacExact {
			return Fac(z, n-1)
		}
	}
	// Γ(x) = 1/x - γ + O(x)
	if inv, ok := tinyInverse(x, guardBits(z, x)); ok {
		if inv.IsInf() {
			return overflow(z, x.Signbit())
		}
		return nudge(z, inv, -1)
	}
	if tiny(x, guardBits(z, x)) {
		return ziv(z, 0, func(t *mpf.Float) uint {
			return gammaTinyK(t, x)
		})
	}
	if x.Sign() > 0 {
		if gammaRange(x) > 0 {
			return overflow(z, false)
		}
		return ziv(z, 0, func(t *mpf.Float) uint {
			return gammaPosK(t, x)
		})
	}

	// Γ(x) = π / (sin(πx) Γ(1-x))
	y := oneMinus(x, z.Prec())
	if gammaRange(y) > 0 {
		return underflow(z, gammaNeg(x))
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		p := t.Prec()
		y := oneMinus(x, p)
		s := alloc(p)
		l1 := sinPi(s, x)
		g := alloc(p)
		l2 := gammaPosK(g, y)
		if g.IsInf() {
			t.SetZero(s.Signbit())
			return 0
		}
		cPi.approx(t)
		t.Quo(t, s.Mul(s, g))
		return max(l1, l2) + 3
	})
}

// Lngamma sets z to the natural logarithm of Gamma(x) rounded to z's
// precision, and returns z. The result is NaN where Gamma(x) < 0.
//
// Special cases are:
//
//	Lngamma(±Inf) = +Inf
//	Lngamma(±0)   = +Inf
//	Lngamma(x)    = +Inf for integer x < 0
//	Lngamma(1)    = Lngamma(2) = +0
//	Lngamma(NaN)  = NaN
func Lngamma(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf(), x.IsZero(), x.Signbit() && x.IsInt():
		return z.SetInf(false)
	case x.Signbit() && gammaNeg(x):
		return z.SetNaN()
	}
	return lgamma(z, x)
}

// Lgamma sets z to the natural logarithm of |Gamma(x)| rounded to z's
// precision, and returns z and the sign of Gamma(x), -1 or +1.
//
// Special cases are:
//
//	Lgamma(±Inf) = +Inf, 1
//	Lgamma(±0)   = +Inf, ±1
//	Lgamma(x)    = +Inf, 1 for integer x < 0
//	Lgamma(NaN)  = NaN, 1
func Lgamma(z, x *mpf.Float) (*mpf.Float, int) {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN(), 1
	case x.IsInf():
		return z.SetInf(false), 1
	case x.IsZero():
		return z.SetInf(false), int(sign(x.Signbit()))
	case x.Signbit() && x.IsInt():
		return z.SetInf(false), 1
	}
	s := 1
	if x.Signbit() && gammaNeg(x) {
		s = -1
	}
	return lgamma(z, x), s
}

func lgamma(z, x *mpf.Float) *mpf.Float {
	if x.CmpInt64(1) == 0 || x.CmpInt64(2) == 0 {
		return z.SetZero(false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return lgammaK(t, x)
	})
}

// Digamma sets z to the Digamma function ψ(x) = Γ'(x)/Γ(x) rounded to z's
// precision, and returns z.
//
// Special cases are:
//
//	Digamma(+Inf) = +Inf
//	Digamma(±0)   = ∓Inf
//	Digamma(x)    = NaN for integer x < 0
//	Digamma(-Inf) = NaN
//	Digamma(NaN)  = NaN
func Digamma(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN(), x.IsInf() && x.Signbit(), x.Signbit() && x.IsInt() && !x.IsZero():
		return z.SetNaN()
	case x.IsInf():
		return z.SetInf(false)
	case x.IsZero():
		return z.SetInf(!x.Signbit())
	}
	// ψ(x) = -1/x - γ + O(x)
	if inv, ok := tinyInverse(x, guardBits(z, x)); ok {
		if inv.IsInf() {
			return overflow(z, !x.Signbit())
		}
		return nudge(z, inv.Neg(inv), -1)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return digammaK(t, x)
	})
}

// Fac sets z to n! rounded to z's precision, and returns z. If z's precision
// is 0, it is changed to mpf.DefaultPrec.
func Fac(z *mpf.Float, n uint64) *mpf.Float {
	prepare(z)
	if n <= maxFacExact {
		return z.SetInt(new(big.Int).MulRange(1, int64(n)))
	}
	x := new(mpf.Float).SetUint64(n)
	x.AddUint64(x, 1)
	if gammaRange(x) > 0 {
		return overflow(z, false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return gammaPosK(t, x)
	})
}

// gammaRange returns 1 if Γ(x) certainly overflows, and 0 otherwise.
func gammaRange(x *mpf.Float) int {
	if e := x.Exponent(); e < -64 {
		// Γ(x) ~ 1/x
		return max(rangeOf(float64(-e)), 0)
	}
	f, _ := x.Float64()
	lg, _ := math.Lgamma(f)
	return max(rangeOf(lg*math.Log2E), 0)
}

// gammaNeg reports whether Γ(x) < 0 for a negative non-integer x, that is
// whether ⌊x⌋ is odd.
func gammaNeg(x *mpf.Float) bool {
	return isOddInt(alloc(max(x.Prec(), 64)).Floor(x))
}

// oneMinus returns 1-x for a finite x. The result is exact unless
// |x| < 2**-(prec+6), in which case it is rounded to about prec+8 bits.
func oneMinus(x *mpf.Float, prec uint) *mpf.Float {
	p := x.Prec() + 2
	if x.Exponent() < 0 {
		p += min(uint(-x.Exponent()), prec+6)
	}
	return alloc(p).Int64Sub(1, x)
}

// gammaTinyK sets z to an approximation of Γ(x) = 1/x - γ + O(x) for a tiny
// x and returns the number of lost bits.
func gammaTinyK(z, x *mpf.Float) uint {
	g := alloc(z.Prec())
	cEuler.approx(g)
	z.Quo(one, x)
	if z.IsInf() {
		return 0
	}
	z.Sub(z, g)
	// the remainder is bounded by 2|x|
	lost := uint(2)
	if d := int64(z.Prec()) + x.Exponent() + 1 - z.Exponent(); d > 0 {
		lost += uint(d)
	}
	return lost
}

// sinPi sets z to an approximation of sin(πx) for a finite non-integer x and
// returns the number of lost bits.
func sinPi(z, x *mpf.Float) uint {
	f := alloc(2)
	_, odd := reduceInt(f, x)
	a := alloc(z.Prec())
	cPi.approx(a)
	lost := sincosK(z, nil, a.Mul(a, f))
	if odd {
		z.Neg(z)
	}
	return lost + 2
}

var bern struct {
	mu sync.Mutex
	b  []*big.Rat // B_0, B_2, B_4, …
}

// bernoulli returns the Bernoulli number B_2k. The result must not be
// modified.
func bernoulli(k int) *big.Rat {
	bern.mu.Lock()
	defer bern.mu.Unlock()
	if len(bern.b) == 0 {
		bern.b = append(bern.b, big.NewRat(1, 1))
	}
	var c big.Int
	var t big.Rat
	for n := int64(len(bern.b)); n <= int64(k); n++ {
		// Σ_{j=0..2n} C(2n+1, j) B_j = 0, with B_1 = -1/2 and odd B_j = 0 above
		s := big.NewRat(-(2*n + 1), 2)
		for i, b := range bern.b {
			c.Binomial(2*n+1, 2*int64(i))
			s.Add(s, t.Mul(t.SetInt(&c), b))
		}
		s.Quo(s, t.SetInt64(-(2*n + 1)))
		bern.b = append(bern.b, s)
	}
	return bern.b[k]
}

// stirlingShift returns the number m of terms of the Stirling series and the
// shift n such that the series evaluated at x+n is accurate to prec bits.
func stirlingShift(x *mpf.Float, prec uint) (m int, n uint64) {
	m = int(prec/10) + 2
	N := float64(m)/(math.Pi*math.E)*math.Exp2(float64(prec)/float64(2*m)) + 1
	if f, _ := x.Float64(); f < N {
		n = uint64(math.Ceil(N - f))
	}
	return m, n
}

// stirling sets z to an approximation of ln Γ(x) for a large x using m terms
// of the Stirling series, and returns the largest exponent of the summands.
func stirling(z, x *mpf.Float, m int) int64 {
	p := z.Prec()
	var (
		s = alloc(p).Sub(x, half)
		l = alloc(p)
		t = alloc(p)
	)
	logK(l, x)
	s.Mul(s, l)
	e := s.Exponent()
	s.Sub(s, x)

	// ln(2π)/2
	cPi.approx(t)
	logK(l, t.Mul2Exp(t, 1))
	s.Add(s, l.Mul2Exp(l, -1))

	inv := alloc(p).Quo(one, x)
	inv2 := alloc(p).Sqr(inv)
	for k := 1; k <= m; k++ {
		t.SetRat(bernoulli(k))
		t.QuoUint64(t, uint64(2*k*(2*k-1)))
		t.Mul(t, inv)
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < s.Exponent()-int64(p)-2 {
			break
		}
		inv.Mul(inv, inv2)
	}
	z.Set(s)
	return e
}

// shiftProd sets z to x(x+1)…(x+n-1) and returns the number of lost bits.
func shiftProd(z, x *mpf.Float, n uint64) uint {
	t := alloc(z.Prec())
	z.Set(x)
	for i := uint64(1); i < n; i++ {
		z.Mul(z, t.AddUint64(x, i))
	}
	return uint(bits.Len64(2*n)) + 1
}

// lngammaK sets z to an approximation of ln Γ(x) for x > 0 and returns the
// number of lost bits.
func lngammaK(z, x *mpf.Float) uint {
	p := z.Prec()
	m, n := stirlingShift(x, p+16)
	xs := alloc(p + 8).AddUint64(x, n)
	s := alloc(p)
	e := stirling(s, xs, m)
	if n > 0 {
		pr := alloc(p)
		shiftProd(pr, x, n)
		logK(pr, pr)
		e = max(e, pr.Exponent())
		s.Sub(s, pr)
	}
	z.Set(s)
	return lostBits(e, z.Exponent(), uint(bits.Len64(n+uint64(m)))+6)
}

// gammaPosK sets z to an approximation of Γ(x) for x > 0 and returns the
// number of lost bits. Γ(x) must not overflow.
func gammaPosK(z, x *mpf.Float) uint {
	p := z.Prec()
	m, n := stirlingShift(x, p+16)
	xs := alloc(p + 8).AddUint64(x, n)
	// ln Γ(xs) has about xe integer bits
	xe := max(xs.Exponent(), 0)
	pe := p + uint(xe) + uint(bits.Len64(uint64(xe))) + 8
	s := alloc(pe)
	stirling(s, xs, m)
	lost := expK(z, s) + uint(bits.Len64(uint64(m))) + 4
	if n > 0 {
		pr := alloc(p)
		lost += shiftProd(pr, x, n)
		z.Quo(z, pr)
	}
	return lost
}

// lgammaK sets z to an approximation of ln |Γ(x)| for a finite x that is not
// a pole, and returns the number of lost bits.
func lgammaK(z, x *mpf.Float) uint {
	if x.Sign() > 0 {
		return lngammaK(z, x)
	}
	// ln |Γ(x)| = ln π - ln |sin πx| - ln Γ(1-x)
	p := z.Prec()
	a := alloc(p)
	l1 := lngammaK(a, oneMinus(x, p))
	s := alloc(p)
	l2 := sinPi(s, x)
	logK(s, s.Abs(s))
	c := alloc(p)
	cPi.approx(c)
	logK(c, c)
	e := maxExp(a, s, c)
	z.Sub(c, s)
	z.Sub(z, a)
	return lostBits(e, z.Exponent(), max(l1, l2)+4)
}

// digammaK sets z to an approximation of ψ(x) for a finite x that is not a
// pole, and returns the number of lost bits.
func digammaK(z, x *mpf.Float) uint {
	if x.Sign() > 0 {
		return digammaPosK(z, x)
	}
	// ψ(x) = ψ(1-x) - π/tan(πx)
	p := z.Prec()
	a := alloc(p)
	l1 := digammaPosK(a, oneMinus(x, p))
	f := alloc(2)
	reduceInt(f, x)
	c := alloc(p)
	cPi.approx(c)
	s, co := alloc(p), alloc(p)
	l2 := sincosK(s, co, c.Mul(c, f))
	cPi.approx(c)
	c.Mul(c, co)
	c.Quo(c, s)
	e := maxExp(a, c)
	z.Sub(a, c)
	return lostBits(e, z.Exponent(), max(l1, l2)+4)
}

// digammaPosK sets z to an approximation of ψ(x) for x > 0 and returns the
// number of lost bits.
func digammaPosK(z, x *mpf.Float) uint {
	p := z.Prec()
	m, n := stirlingShift(x, p+16)
	xs := alloc(p + 8).AddUint64(x, n)
	// ψ(xs) = ln xs - 1/2xs - Σ B_2k/(2k xs**2k)
	var (
		s    = alloc(p)
		t    = alloc(p)
		inv  = alloc(p).Quo(one, xs)
		inv2 = alloc(p).Sqr(inv)
		pw   = alloc(p).Set(inv2)
	)
	logK(s, xs)
	s.Sub(s, t.Mul2Exp(inv, -1))
	for k := 1; k <= m; k++ {
		t.SetRat(bernoulli(k))
		t.QuoUint64(t, uint64(2*k))
		t.Mul(t, pw)
		s.Sub(s, t)
		if t.IsZero() || t.Exponent() < s.Exponent()-int64(p)-2 {
			break
		}
		pw.Mul(pw, inv2)
	}
	// ψ(x) = ψ(x+n) - Σ 1/(x+i)
	h := alloc(p)
	for i := uint64(0); i < n; i++ {
		t.AddUint64(x, i)
		h.Add(h, t.Quo(one, t))
	}
	e := maxExp(s, h)
	z.Sub(s, h)
	return lostBits(e, z.Exponent(), uint(bits.Len64(n+uint64(m)))+5)
}
