package math

import (
	"math"
	"math/bits"

	"github.com/db47h/mpf"
)

// Erf sets z to the error function of x rounded to z's precision, and returns
// z. If z's precision is 0, it is changed to x's precision before the
// operation.
//
// Special cases are:
//
//	Erf(±Inf) = ±1
//	Erf(±0)   = ±0
//	Erf(NaN)  = NaN
func Erf(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		return z.SetInt64(sign(x.Signbit()))
	case x.IsZero():
		return z.Set(x)
	}
	// erf(x) = ±(1 - erfc|x|) with erfc|x| < e**-x²
	if erfcSmall(x, guardBits(z, x)+1) {
		return nudge(z, alloc(2).SetInt64(sign(x.Signbit())), -x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return erfK(t, x)
	})
}

// Erfc sets z to the complementary error function 1 - erf(x) rounded to z's
// precision, and returns z. If z's precision is 0, it is changed to x's
// precision before the operation.
//
// Special cases are:
//
//	Erfc(+Inf) = +0
//	Erfc(-Inf) = 2
//	Erfc(±0)   = 1
//	Erfc(NaN)  = NaN
func Erfc(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsInf():
		if x.Signbit() {
			return z.SetInt64(2)
		}
		return z.SetZero(false)
	case x.IsZero():
		return z.SetInt64(1)
	}
	q := guardBits(z, x)
	// erfc(x) = 1 - 2x/√π + O(x³)
	if tiny(x, q+2) {
		return nudge(z, one, -x.Sign())
	}
	if x.Signbit() {
		if erfcSmall(x, q+2) {
			return nudge(z, two, -1)
		}
		a := new(mpf.Float).Neg(x)
		return ziv(z, 0, func(t *mpf.Float) uint {
			lost := erfK(t, a)
			t.AddUint64(t, 1)
			return lost + 1
		})
	}
	// erfc(x) < e**-x² / (x√π)
	f, _ := x.Float64()
	if rangeOf(-f*f*math.Log2E-math.Log2(f*math.SqrtPi)) < 0 {
		return underflow(z, false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return erfcK(t, x)
	})
}

// erfcSmall reports whether erfc|x| < 2**-n.
func erfcSmall(x *mpf.Float, n uint) bool {
	if x.Exponent() > 32 {
		return true
	}
	f, _ := x.Float64()
	return f*f*math.Log2E > float64(n)
}

// sqr returns x² with an absolute error below 2**-prec.
func sqr(x *mpf.Float, prec uint) *mpf.Float {
	return alloc(prec + 2*uint(max(x.Exponent(), 0)) + 4).Sqr(x)
}

// erfK sets z to an approximation of erf x for a finite nonzero x and returns
// the number of lost bits. It sums
//
//	erf x = 2/√π e**-x² Σ 2**n x**(2n+1) / (1·3·…·(2n+1))
//
// whose terms are all of the sign of x.
func erfK(z, x *mpf.Float) uint {
	p := z.Prec()
	var (
		x2  = sqr(x, p+8)
		t   = alloc(p).Set(x)
		s   = alloc(p).Set(x)
		tx2 = alloc(p).Mul2Exp(x2, 1)
		n   uint64
	)
	for n = 1; ; n++ {
		t.Mul(t, tx2)
		t.QuoUint64(t, 2*n+1)
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < s.Exponent()-int64(p)-2 {
			break
		}
	}
	lost := expK(t, x2.Neg(x2))
	z.Mul(s, t)
	cPi.approx(t)
	t.Sqrt(t)
	z.Quo(z, t)
	z.Mul2Exp(z, 1)
	return lost + uint(bits.Len64(3*n+8)) + 4
}

// erfcK sets z to an approximation of erfc x for x > 0 and returns the number
// of lost bits.
func erfcK(z, x *mpf.Float) uint {
	p := z.Prec()
	f, _ := x.Float64()
	e := f * f * math.Log2E
	if x.Exponent() <= 32 && e < float64(p+8) {
		// erfc x = 1 - erf x, losing about x² log2(e) bits
		ue := int64(e) + 8
		t := alloc(p + uint(ue))
		lost := erfK(t, x)
		z.Sub(one, t)
		return lostBits(-ue, z.Exponent(), lost+1)
	}

	// erfc x = e**-x² / (x√π) Σ (-1)**n (2n-1)!! / (2x²)**n
	var (
		x2  = sqr(x, p+8)
		tx2 = alloc(p).Mul2Exp(x2, 1)
		t   = alloc(p).SetInt64(1)
		s   = alloc(p).SetInt64(1)
		n   uint64
	)
	for n = 1; ; n++ {
		t.MulUint64(t, 2*n-1)
		t.Quo(t, tx2)
		t.Neg(t)
		s.Add(s, t)
		if t.IsZero() || t.Exponent() < -int64(p)-2 {
			break
		}
	}
	lost := expK(t, x2.Neg(x2))
	z.Mul(s, t)
	cPi.approx(t)
	t.Sqrt(t)
	z.Quo(z, t.Mul(t, x))
	return lost + uint(bits.Len64(3*n+8)) + 4
}
