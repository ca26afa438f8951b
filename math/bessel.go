package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

// J0 sets z to the Bessel function of the first kind of order 0 of x,
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
func J0(z, x *mpf.Float) *mpf.Float { return Jn(z, 0, x) }

// J1 sets z to the Bessel function of the first kind of order 1 of x,
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
func J1(z, x *mpf.Float) *mpf.Float { return Jn(z, 1, x) }

// Jn sets z to the Bessel function of the first kind of order n of x,
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
//
// Special cases are:
//
//	Jn(n, ±Inf) = +0
//	Jn(0, ±0)   = 1
//	Jn(n, ±0)   = (±1)**n × 0 for n != 0
//	Jn(n, NaN)  = NaN
func Jn(z *mpf.Float, n int64, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		return z.SetZero(false)
	}
	// J(-n, x) = (-1)**n J(n, x) = J(n, -x)
	m := abs64(n)
	neg := (n < 0) != x.Signbit() && m&1 != 0
	if x.IsZero() {
		if m == 0 {
			return z.SetInt64(1)
		}
		return z.SetZero(neg)
	}
	ax := new(mpf.Float).Abs(x)
	if v := besselTiny(z, m, ax); v != nil {
		if neg {
			v.Neg(v)
		}
		return nudge(z, v, -v.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := besselJK(t, m, ax)
		if neg {
			t.Neg(t)
		}
		return lost
	})
}

// Y0 sets z to the Bessel function of the second kind of order 0 of x,
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
func Y0(z, x *mpf.Float) *mpf.Float { return Yn(z, 0, x) }

// Y1 sets z to the Bessel function of the second kind of order 1 of x,
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
func Y1(z, x *mpf.Float) *mpf.Float { return Yn(z, 1, x) }

// Yn sets z to the Bessel function of the second kind of order n of x,
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to x's precision before the operation.
//
// Special cases are:
//
//	Yn(n, +Inf) = +0
//	Yn(n, ±0)   = -Inf for n >= 0 or n even, +Inf otherwise
//	Yn(n, x)    = NaN for x < 0
//	Yn(n, NaN)  = NaN
func Yn(z *mpf.Float, n int64, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	m := abs64(n)
	// Y(-n, x) = (-1)**n Y(n, x)
	neg := n < 0 && m&1 != 0
	switch {
	case x.IsNaN(), x.Signbit() && !x.IsZero():
		return z.SetNaN()
	case x.IsInf():
		return z.SetZero(false)
	case x.IsZero():
		return z.SetInf(!neg)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := besselYK(t, m, x)
		if neg {
			t.Neg(t)
		}
		return lost
	})
}

// besselTiny returns the exact leading term of Jn(x) for n <= 2 and x > 0
// small enough that the next term cannot change the rounding beyond a nudge
// toward zero. Otherwise it returns nil.
func besselTiny(z *mpf.Float, n uint64, x *mpf.Float) *mpf.Float {
	var v *mpf.Float
	switch n {
	case 0:
		v = alloc(2).SetInt64(1)
	case 1:
		v = alloc(max(x.Prec(), 2)).Mul2Exp(x, -1)
	case 2:
		// x²/8
		v = alloc(max(2*x.Prec(), 2)).Sqr(x)
		v.Mul2Exp(v, -3)
	default:
		return nil
	}
	// the relative size of the next term is x²/4(n+1)
	p := max(v.MinPrec(), z.Prec()) + 3
	if !tiny(x, p/2+1) {
		return nil
	}
	return v
}

// shed converts a number of bits lost at precision pp into the number of bits
// lost at precision p <= pp.
func shed(lost, pp, p uint) uint {
	if lost > pp-p {
		return lost - (pp - p)
	}
	return 0
}

// besselJK sets z to an approximation of Jn(x) for x > 0 and returns the
// number of lost bits.
func besselJK(z *mpf.Float, n uint64, x *mpf.Float) uint {
	if lost, ok := hankelK(z, nil, n, x); ok {
		return lost
	}
	return besselJS(z, n, x)
}

// besselYK sets z to an approximation of Yn(x) for x > 0 and returns the
// number of lost bits.
func besselYK(z *mpf.Float, n uint64, x *mpf.Float) uint {
	if lost, ok := hankelK(nil, z, n, x); ok {
		return lost
	}
	return besselYS(z, n, x)
}

// besselExtra returns the number of bits lost to cancellation in the power
// series of Jn(x) and Yn(x): the largest term is about e**x.
func besselExtra(x *mpf.Float) uint {
	if x.Exponent() <= 0 {
		return 0
	}
	f, _ := x.Float64()
	return uint(f * math.Log2E)
}

// besselPref sets z to (x/2)**n / n! where h = x/2.
func besselPref(z *mpf.Float, n uint64, h *mpf.Float) {
	z.PowUint64(h, n)
	f := alloc(z.Prec())
	Fac(f, n)
	z.Quo(z, f)
}

// besselJS sets z to an approximation of Jn(x) for x > 0 from its power
// series
//
//	Jn(x) = (x/2)**n / n! Σ (-x²/4)**k n! / (k! (n+k)!)
//
// and returns the number of lost bits.
func besselJS(z *mpf.Float, n uint64, x *mpf.Float) uint {
	p := z.Prec()
	pp := p + besselExtra(x) + 8
	var (
		h = alloc(max(x.Prec(), 2)).Mul2Exp(x, -1)
		y = alloc(pp).Sqr(h)
		t = alloc(pp).SetInt64(1)
		s = alloc(pp).SetInt64(1)
		e = int64(1)
		k uint64
	)
	yf, _ := y.Float64()
	for k = 1; ; k++ {
		t.Mul(t, y)
		t.QuoUint64(t, k)
		t.QuoUint64(t, n+k)
		t.Neg(t)
		s.Add(s, t)
		if t.IsZero() {
			break
		}
		e = max(e, t.Exponent())
		if float64(k)*float64(n+k) > yf && t.Exponent() < s.Exponent()-int64(pp)-2 {
			break
		}
	}
	lost := lostBits(e, s.Exponent(), uint(bits.Len64(k))+2)
	f := alloc(pp)
	besselPref(f, n, h)
	z.Mul(s, f)
	return shed(lost, pp, p) + 4
}

// harmonic sets z to an approximation of the harmonic number H_n with a
// relative error below 2**(bits.Len(n)+4-z.Prec()).
func harmonic(z *mpf.Float, n uint64) {
	if n > 1<<12 {
		// H_n = ψ(n+1) + γ
		x := new(mpf.Float).SetUint64(n)
		digammaPosK(z, x.AddUint64(x, 1))
		g := alloc(z.Prec())
		cEuler.approx(g)
		z.Add(z, g)
		return
	}
	t := alloc(z.Prec())
	z.SetInt64(0)
	for i := uint64(1); i <= n; i++ {
		z.Add(z, t.Uint64Quo(1, t.SetUint64(i)))
	}
}

// besselYS sets z to an approximation of Yn(x) for x > 0 from
//
//	π Yn(x) = -(x/2)**-n Σ_{k<n} (n-k-1)!/k! (x²/4)**k
//	        + (x/2)**n / n! (2 (ln(x/2) + γ) S - T)
//
// where S = Σ c_k, T = Σ (H_k + H_(n+k)) c_k and c_k = (-x²/4)**k n!/(k! (n+k)!).
// It returns the number of lost bits.
func besselYS(z *mpf.Float, n uint64, x *mpf.Float) uint {
	p := z.Prec()
	pp := p + besselExtra(x) + uint(bits.Len64(n)) + 8
	var (
		h = alloc(max(x.Prec(), 2)).Mul2Exp(x, -1)
		y = alloc(pp).Sqr(h)
		a = alloc(pp)
		t = alloc(pp)
	)
	if n > 0 {
		Fac(t, n-1)
		a.Set(t)
		for k := uint64(1); k < n; k++ {
			t.Mul(t, y)
			t.QuoUint64(t, k)
			t.QuoUint64(t, n-k)
			a.Add(a, t)
		}
		a.Quo(a, t.PowUint64(h, n))
	}

	var (
		c   = alloc(pp).SetInt64(1)
		s   = alloc(pp).SetInt64(1)
		hk  = alloc(pp)
		hnk = alloc(pp)
		u   = alloc(pp)
		tt  = alloc(pp)
		es  = int64(1)
		k   uint64
	)
	harmonic(hnk, n)
	tt.Set(hnk)
	et := maxExp(tt)
	yf, _ := y.Float64()
	for k = 1; ; k++ {
		c.Mul(c, y)
		c.QuoUint64(c, k)
		c.QuoUint64(c, n+k)
		c.Neg(c)
		hk.Add(hk, u.Uint64Quo(1, u.SetUint64(k)))
		hnk.Add(hnk, u.Uint64Quo(1, u.SetUint64(n+k)))
		s.Add(s, c)
		u.Add(hk, hnk)
		u.Mul(u, c)
		tt.Add(tt, u)
		if c.IsZero() {
			break
		}
		es = max(es, c.Exponent())
		et = max(et, u.Exponent())
		if float64(k)*float64(n+k) > yf && u.Exponent() < tt.Exponent()-int64(pp)-2 &&
			c.Exponent() < s.Exponent()-int64(pp)-2 {
			break
		}
	}

	l := alloc(pp)
	logK(l, h)
	t.SetPrec(pp)
	cEuler.approx(t)
	ei := max(maxExp(l, t), 0) + es + 2
	l.Add(l, t)
	l.Mul2Exp(l, 1)
	l.Mul(l, s)
	l.Sub(l, tt)
	f := alloc(pp)
	besselPref(f, n, h)
	l.Mul(l, f)
	e := max(maxExp(a), max(ei, et)+f.Exponent())
	l.Sub(l, a)
	lost := lostBits(e, l.Exponent(), uint(bits.Len64(n+k))+6)
	cPi.approx(t)
	z.Quo(l, t)
	return shed(lost, pp, p) + 2
}

// hankelK sets j and y (either may be nil) to approximations of Jn(x) and
// Yn(x) from Hankel's asymptotic expansion, and returns the number of lost
// bits. It returns false if x is too small for the expansion to reach the
// target precision.
//
//	Jn(x) = √(2/πx) (P cos χ - Q sin χ)
//	Yn(x) = √(2/πx) (P sin χ + Q cos χ)
//
// with χ = x - (2n+1)π/4 and P, Q the even and odd parts of
// Σ (-1)**⌊k/2⌋ a_k(n) / x**k.
func hankelK(j, y *mpf.Float, n uint64, x *mpf.Float) (uint, bool) {
	dst := j
	if dst == nil {
		dst = y
	}
	p := dst.Prec()
	if x.Exponent() <= 2 {
		return 0, false
	}
	xf, _ := x.Float64()
	nf := float64(n)
	// the smallest term is about e**-2x
	if xf <= nf*nf || 2*xf*math.Log2E <= float64(p+16) {
		return 0, false
	}
	pp := p + 8
	var (
		mu = alloc(max(pp, 132)).SetUint64(n)
		d  = alloc(max(pp, 132))
		x8 = alloc(pp).Mul2Exp(x, 3)
		t  = alloc(pp).SetInt64(1)
		u  = alloc(pp)
		P  = alloc(pp).SetInt64(1)
		Q  = alloc(pp)
		k  uint64
	)
	// μ = 4n²
	mu.Sqr(mu)
	mu.Mul2Exp(mu, 2)
	for k = 1; ; k++ {
		d.SetUint64(2*k - 1)
		d.Sqr(d)
		t.Mul(t, d.Sub(mu, d))
		t.Quo(t, x8)
		t.QuoUint64(t, k)
		u.Set(t)
		if k&2 != 0 {
			u.Neg(u)
		}
		if k&1 != 0 {
			Q.Add(Q, u)
		} else {
			P.Add(P, u)
		}
		if t.IsZero() || t.Exponent() < -int64(pp)-2 {
			break
		}
		if float64(k) > 2*xf {
			return 0, false
		}
	}

	s, c := alloc(pp), alloc(pp)
	lost := sincosK(s, c, x)
	// √2 cos χ and √2 sin χ
	cc, sc := alloc(pp), alloc(pp)
	switch (2*n + 1) % 8 {
	case 1:
		cc.Add(c, s)
		sc.Sub(s, c)
	case 3:
		cc.Sub(s, c)
		sc.Add(s, c)
		sc.Neg(sc)
	case 5:
		cc.Add(c, s)
		cc.Neg(cc)
		sc.Sub(c, s)
	case 7:
		cc.Sub(c, s)
		sc.Add(s, c)
	}

	// √(πx)
	f := alloc(pp)
	cPi.approx(f)
	f.Mul(f, x)
	f.Sqrt(f)

	r := alloc(pp)
	if j != nil {
		r.Mul(P, cc)
		u.Mul(Q, sc)
		r.Sub(r, u)
		l := lostBits(2, r.Exponent(), lost+uint(bits.Len64(k))+4)
		j.Quo(r, f)
		lost = shed(l, pp, p) + 2
	}
	if y != nil {
		r.Mul(P, sc)
		u.Mul(Q, cc)
		r.Add(r, u)
		l := lostBits(2, r.Exponent(), lost+uint(bits.Len64(k))+4)
		y.Quo(r, f)
		lost = shed(l, pp, p) + 2
	}
	return lost, true
}
