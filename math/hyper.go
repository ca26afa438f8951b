package math

import (
	"math"

	"github.com/db47h/mpf"
)

// Sinh sets z to the hyperbolic sine of x rounded to z's precision, and
// returns z. If z's precision is 0, it is changed to x's precision before the
// operation.
//
// Special cases are:
//
//	Sinh(±0)   = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN)  = NaN
func Sinh(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero(), x.IsInf():
		return z.Set(x)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, x.Sign())
	}
	if expRange(x, math.Log2E) != 0 {
		return overflow(z, x.Signbit())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return sinhK(t, x)
	})
}

// Cosh sets z to the hyperbolic cosine of x rounded to z's precision, and
// returns z.
//
// Special cases are:
//
//	Cosh(±0)   = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN)  = NaN
func Cosh(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInt64(1)
	case x.IsInf():
		return z.SetInf(false)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, one, 1)
	}
	if expRange(x, math.Log2E) != 0 {
		return overflow(z, false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return coshK(t, x)
	})
}

// SinhCosh sets s and c to the hyperbolic sine and cosine of x, each rounded
// to its own precision, and returns them.
func SinhCosh(s, c, x *mpf.Float) (*mpf.Float, *mpf.Float) {
	if s == x || c == x {
		x = new(mpf.Float).Set(x)
	}
	return Sinh(s, x), Cosh(c, x)
}

// Tanh sets z to the hyperbolic tangent of x rounded to z's precision, and
// returns z.
//
// Special cases are:
//
//	Tanh(±0)   = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN)  = NaN
func Tanh(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.Set(x)
	case x.IsInf():
		return z.SetInt64(sign(x.Signbit()))
	}
	q := guardBits(z, x)
	if tiny(x, q/2+1) {
		return nudge(z, x, -x.Sign())
	}
	// tanh x = 1 - 2e**-2x + …
	if x.CmpAbs(alloc(64).SetUint64(uint64(q))) > 0 {
		return nudge(z, alloc(2).SetInt64(sign(x.Signbit())), -x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return tanhK(t, x)
	})
}

// Sech sets z to the hyperbolic secant 1/cosh(x) rounded to z's precision, and
// returns z.
//
// Special cases are:
//
//	Sech(±0)   = 1
//	Sech(±Inf) = +0
//	Sech(NaN)  = NaN
func Sech(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInt64(1)
	case x.IsInf():
		return z.SetZero(false)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, one, -1)
	}
	if expRange(x, math.Log2E) != 0 {
		return underflow(z, false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := coshK(t, x)
		t.Quo(one, t)
		return lost + 1
	})
}

// Csch sets z to the hyperbolic cosecant 1/sinh(x) rounded to z's precision,
// and returns z.
//
// Special cases are:
//
//	Csch(±0)   = ±Inf
//	Csch(±Inf) = ±0
//	Csch(NaN)  = NaN
func Csch(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInf(x.Signbit())
	case x.IsInf():
		return z.SetZero(x.Signbit())
	}
	// csch x = 1/x - x/6 + …
	if inv, ok := tinyInverse(x, guardBits(z, x)/2+1); ok {
		if inv.IsInf() {
			return overflow(z, x.Signbit())
		}
		return nudge(z, inv, -x.Sign())
	}
	if expRange(x, math.Log2E) != 0 {
		return underflow(z, x.Signbit())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := sinhK(t, x)
		t.Quo(one, t)
		return lost + 1
	})
}

// Coth sets z to the hyperbolic cotangent 1/tanh(x) rounded to z's precision,
// and returns z.
//
// Special cases are:
//
//	Coth(±0)   = ±Inf
//	Coth(±Inf) = ±1
//	Coth(NaN)  = NaN
func Coth(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero():
		return z.SetInf(x.Signbit())
	case x.IsInf():
		return z.SetInt64(sign(x.Signbit()))
	}
	// coth x = 1/x + x/3 - …
	if inv, ok := tinyInverse(x, guardBits(z, x)/2+1); ok {
		if inv.IsInf() {
			return overflow(z, x.Signbit())
		}
		return nudge(z, inv, x.Sign())
	}
	// coth x = 1 + 2e**-2x + …
	q := guardBits(z, x)
	if x.CmpAbs(alloc(64).SetUint64(uint64(q))) > 0 {
		return nudge(z, alloc(2).SetInt64(sign(x.Signbit())), x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := tanhK(t, x)
		t.Quo(one, t)
		return lost + 1
	})
}

// Asinh sets z to the inverse hyperbolic sine of x rounded to z's precision,
// and returns z.
//
// Special cases are:
//
//	Asinh(±0)   = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN)  = NaN
func Asinh(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero(), x.IsInf():
		return z.Set(x)
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, -x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		p := t.Prec()
		a := alloc(p).Abs(x)
		var lost uint
		if a.Exponent() > int64(p/2)+2 {
			// asinh a = ln 2a + 1/4a² - …
			lost = lnTwice(t, a) + 1
		} else {
			// asinh a = ln(1 + a + a²/(1 + √(1+a²)))
			u := alloc(p).Sqr(a)
			v := alloc(p).AddUint64(u, 1)
			v.Sqrt(v)
			u.Quo(u, v.AddUint64(v, 1))
			lost = log1pK(t, u.Add(u, a)) + 3
		}
		if x.Signbit() {
			t.Neg(t)
		}
		return lost
	})
}

// Acosh sets z to the inverse hyperbolic cosine of x rounded to z's precision,
// and returns z.
//
// Special cases are:
//
//	Acosh(1)     = +0
//	Acosh(x < 1) = NaN
//	Acosh(+Inf)  = +Inf
//	Acosh(NaN)   = NaN
func Acosh(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch c := x.CmpInt64(1); {
	case x.IsNaN(), c < 0:
		return z.SetNaN()
	case c == 0:
		return z.SetZero(false)
	case x.IsInf():
		return z.SetInf(false)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		p := t.Prec()
		if x.Exponent() > int64(p/2)+2 {
			// acosh x = ln 2x - 1/4x² - …
			return lnTwice(t, x) + 1
		}
		// acosh x = ln(1 + u + √(u(u+2))), u = x-1
		u := alloc(p).SubUint64(x, 1)
		v := alloc(p).AddUint64(u, 2)
		v.Sqrt(v.Mul(v, u))
		return log1pK(t, u.Add(u, v)) + 3
	})
}

// Atanh sets z to the inverse hyperbolic tangent of x rounded to z's
// precision, and returns z.
//
// Special cases are:
//
//	Atanh(±0)      = ±0
//	Atanh(±1)      = ±Inf
//	Atanh(|x| > 1) = NaN
//	Atanh(NaN)     = NaN
func Atanh(z, x *mpf.Float) *mpf.Float {
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
		return z.SetInf(x.Signbit())
	}
	if tiny(x, guardBits(z, x)/2+1) {
		return nudge(z, x, x.Sign())
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		// atanh a = ln(1 + 2a/(1-a)) / 2
		p := t.Prec()
		a := alloc(p).Abs(x)
		u := alloc(p).Int64Sub(1, a)
		u.Quo(a, u)
		lost := log1pK(t, u.Mul2Exp(u, 1))
		t.Mul2Exp(t, -1)
		if x.Signbit() {
			t.Neg(t)
		}
		return lost + 3
	})
}

// lnTwice sets z to an approximation of ln 2a for a large positive a and
// returns the number of lost bits.
func lnTwice(z, a *mpf.Float) uint {
	lost := logK(z, a)
	l := alloc(z.Prec())
	cLog2.approx(l)
	z.Add(z, l)
	return lost + 1
}

// sinhK sets z to an approximation of sinh x for a finite nonzero x and
// returns the number of lost bits.
func sinhK(z, x *mpf.Float) uint {
	// sinh a = (e + e/(e+1))/2, e = e**a - 1
	p := z.Prec()
	a := alloc(max(x.Prec(), 2)).Abs(x)
	e := alloc(p)
	lost := expm1K(e, a)
	if e.IsInf() {
		z.SetInf(x.Signbit())
		return 0
	}
	d := alloc(p).AddUint64(e, 1)
	d.Quo(e, d)
	z.Add(e, d)
	z.Mul2Exp(z, -1)
	if x.Signbit() {
		z.Neg(z)
	}
	return lost + 3
}

// coshK sets z to an approximation of cosh x for a finite x and returns the
// number of lost bits.
func coshK(z, x *mpf.Float) uint {
	// cosh a = (e**a + e**-a)/2
	p := z.Prec()
	a := alloc(max(x.Prec(), 2)).Abs(x)
	e := alloc(p)
	lost := expK(e, a)
	if e.IsInf() {
		z.SetInf(false)
		return 0
	}
	d := alloc(p).Quo(one, e)
	z.Add(e, d)
	z.Mul2Exp(z, -1)
	return lost + 2
}

// tanhK sets z to an approximation of tanh x for a finite nonzero x and
// returns the number of lost bits.
func tanhK(z, x *mpf.Float) uint {
	// tanh a = e/(e+2), e = e**2a - 1
	p := z.Prec()
	a := alloc(max(x.Prec(), 2)).Abs(x)
	e := alloc(p)
	lost := expm1K(e, a.Mul2Exp(a, 1))
	if e.IsInf() {
		z.SetInt64(sign(x.Signbit()))
		return 0
	}
	d := alloc(p).AddUint64(e, 2)
	z.Quo(e, d)
	if x.Signbit() {
		z.Neg(z)
	}
	return lost + 3
}
