// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"github.com/db47h/mpf"
	"github.com/db47h/mpf/math"
)


// Pi sets z to π rounded using c's precision and mode, and returns z.
func (c *Context) Pi(z *mpf.Float) *mpf.Float {
	return c.op0("Pi", z, math.Pi)
}

// Ln2 sets z to ln 2 rounded using c's precision and mode, and returns z.
func (c *Context) Ln2(z *mpf.Float) *mpf.Float {
	return c.op0("Ln2", z, math.Ln2)
}

// Euler sets z to Euler's constant γ rounded using c's precision and mode, and returns z.
func (c *Context) Euler(z *mpf.Float) *mpf.Float {
	return c.op0("Euler", z, math.Euler)
}

// Catalan sets z to Catalan's constant rounded using c's precision and mode, and returns z.
func (c *Context) Catalan(z *mpf.Float) *mpf.Float {
	return c.op0("Catalan", z, math.Catalan)
}

// Exp sets z to the rounded value of the exponential e**x, and returns z.
func (c *Context) Exp(z, x *mpf.Float) *mpf.Float {
	return c.op1("Exp", z, x, math.Exp)
}

// Exp2 sets z to the rounded value of 2**x, and returns z.
func (c *Context) Exp2(z, x *mpf.Float) *mpf.Float {
	return c.op1("Exp2", z, x, math.Exp2)
}

// Exp10 sets z to the rounded value of 10**x, and returns z.
func (c *Context) Exp10(z, x *mpf.Float) *mpf.Float {
	return c.op1("Exp10", z, x, math.Exp10)
}

// Expm1 sets z to the rounded value of e**x - 1, and returns z.
func (c *Context) Expm1(z, x *mpf.Float) *mpf.Float {
	return c.op1("Expm1", z, x, math.Expm1)
}

// Log sets z to the rounded value of the natural logarithm of x, and returns z.
func (c *Context) Log(z, x *mpf.Float) *mpf.Float {
	return c.op1("Log", z, x, math.Log)
}

// Log2 sets z to the rounded value of the base 2 logarithm of x, and returns z.
func (c *Context) Log2(z, x *mpf.Float) *mpf.Float {
	return c.op1("Log2", z, x, math.Log2)
}

// Log10 sets z to the rounded value of the base 10 logarithm of x, and returns z.
func (c *Context) Log10(z, x *mpf.Float) *mpf.Float {
	return c.op1("Log10", z, x, math.Log10)
}

// Log1p sets z to the rounded value of the natural logarithm of 1+x, and returns z.
func (c *Context) Log1p(z, x *mpf.Float) *mpf.Float {
	return c.op1("Log1p", z, x, math.Log1p)
}

// Sin sets z to the rounded value of the sine of x, and returns z.
func (c *Context) Sin(z, x *mpf.Float) *mpf.Float {
	return c.op1("Sin", z, x, math.Sin)
}

// Cos sets z to the rounded value of the cosine of x, and returns z.
func (c *Context) Cos(z, x *mpf.Float) *mpf.Float {
	return c.op1("Cos", z, x, math.Cos)
}

// Tan sets z to the rounded value of the tangent of x, and returns z.
func (c *Context) Tan(z, x *mpf.Float) *mpf.Float {
	return c.op1("Tan", z, x, math.Tan)
}

// Sec sets z to the rounded value of the secant of x, and returns z.
func (c *Context) Sec(z, x *mpf.Float) *mpf.Float {
	return c.op1("Sec", z, x, math.Sec)
}

// Csc sets z to the rounded value of the cosecant of x, and returns z.
func (c *Context) Csc(z, x *mpf.Float) *mpf.Float {
	return c.op1("Csc", z, x, math.Csc)
}

// Cot sets z to the rounded value of the cotangent of x, and returns z.
func (c *Context) Cot(z, x *mpf.Float) *mpf.Float {
	return c.op1("Cot", z, x, math.Cot)
}

// Asin sets z to the rounded value of the arcsine of x, and returns z.
func (c *Context) Asin(z, x *mpf.Float) *mpf.Float {
	return c.op1("Asin", z, x, math.Asin)
}

// Acos sets z to the rounded value of the arccosine of x, and returns z.
func (c *Context) Acos(z, x *mpf.Float) *mpf.Float {
	return c.op1("Acos", z, x, math.Acos)
}

// Atan sets z to the rounded value of the arctangent of x, and returns z.
func (c *Context) Atan(z, x *mpf.Float) *mpf.Float {
	return c.op1("Atan", z, x, math.Atan)
}

// Sinh sets z to the rounded value of the hyperbolic sine of x, and returns z.
func (c *Context) Sinh(z, x *mpf.Float) *mpf.Float {
	return c.op1("Sinh", z, x, math.Sinh)
}

// Cosh sets z to the rounded value of the hyperbolic cosine of x, and returns z.
func (c *Context) Cosh(z, x *mpf.Float) *mpf.Float {
	return c.op1("Cosh", z, x, math.Cosh)
}

// Tanh sets z to the rounded value of the hyperbolic tangent of x, and returns z.
func (c *Context) Tanh(z, x *mpf.Float) *mpf.Float {
	return c.op1("Tanh", z, x, math.Tanh)
}

// Sech sets z to the rounded value of the hyperbolic secant of x, and returns z.
func (c *Context) Sech(z, x *mpf.Float) *mpf.Float {
	return c.op1("Sech", z, x, math.Sech)
}

// Csch sets z to the rounded value of the hyperbolic cosecant of x, and returns z.
func (c *Context) Csch(z, x *mpf.Float) *mpf.Float {
	return c.op1("Csch", z, x, math.Csch)
}

// Coth sets z to the rounded value of the hyperbolic cotangent of x, and returns z.
func (c *Context) Coth(z, x *mpf.Float) *mpf.Float {
	return c.op1("Coth", z, x, math.Coth)
}

// Asinh sets z to the rounded value of the inverse hyperbolic sine of x, and returns z.
func (c *Context) Asinh(z, x *mpf.Float) *mpf.Float {
	return c.op1("Asinh", z, x, math.Asinh)
}

// Acosh sets z to the rounded value of the inverse hyperbolic cosine of x, and returns z.
func (c *Context) Acosh(z, x *mpf.Float) *mpf.Float {
	return c.op1("Acosh", z, x, math.Acosh)
}

// Atanh sets z to the rounded value of the inverse hyperbolic tangent of x, and returns z.
func (c *Context) Atanh(z, x *mpf.Float) *mpf.Float {
	return c.op1("Atanh", z, x, math.Atanh)
}

// Gamma sets z to the rounded value of Γ(x), and returns z.
func (c *Context) Gamma(z, x *mpf.Float) *mpf.Float {
	return c.op1("Gamma", z, x, math.Gamma)
}

// Lngamma sets z to the rounded value of ln Γ(x), and returns z.
func (c *Context) Lngamma(z, x *mpf.Float) *mpf.Float {
	return c.op1("Lngamma", z, x, math.Lngamma)
}

// Digamma sets z to the rounded value of ψ(x), and returns z.
func (c *Context) Digamma(z, x *mpf.Float) *mpf.Float {
	return c.op1("Digamma", z, x, math.Digamma)
}

// Zeta sets z to the rounded value of ζ(x), and returns z.
func (c *Context) Zeta(z, x *mpf.Float) *mpf.Float {
	return c.op1("Zeta", z, x, math.Zeta)
}

// Erf sets z to the rounded value of the error function of x, and returns z.
func (c *Context) Erf(z, x *mpf.Float) *mpf.Float {
	return c.op1("Erf", z, x, math.Erf)
}

// Erfc sets z to the rounded value of the complementary error function of x, and returns z.
func (c *Context) Erfc(z, x *mpf.Float) *mpf.Float {
	return c.op1("Erfc", z, x, math.Erfc)
}

// J0 sets z to the rounded value of the order 0 Bessel function of the first kind of x, and returns z.
func (c *Context) J0(z, x *mpf.Float) *mpf.Float {
	return c.op1("J0", z, x, math.J0)
}

// J1 sets z to the rounded value of the order 1 Bessel function of the first kind of x, and returns z.
func (c *Context) J1(z, x *mpf.Float) *mpf.Float {
	return c.op1("J1", z, x, math.J1)
}

// Y0 sets z to the rounded value of the order 0 Bessel function of the second kind of x, and returns z.
func (c *Context) Y0(z, x *mpf.Float) *mpf.Float {
	return c.op1("Y0", z, x, math.Y0)
}

// Y1 sets z to the rounded value of the order 1 Bessel function of the second kind of x, and returns z.
func (c *Context) Y1(z, x *mpf.Float) *mpf.Float {
	return c.op1("Y1", z, x, math.Y1)
}

// Ai sets z to the rounded value of the Airy function Ai(x), and returns z.
func (c *Context) Ai(z, x *mpf.Float) *mpf.Float {
	return c.op1("Ai", z, x, math.Ai)
}

// Eint sets z to the rounded value of the exponential integral Ei(x), and returns z.
func (c *Context) Eint(z, x *mpf.Float) *mpf.Float {
	return c.op1("Eint", z, x, math.Eint)
}

// Li2 sets z to the rounded value of the dilogarithm of x, and returns z.
func (c *Context) Li2(z, x *mpf.Float) *mpf.Float {
	return c.op1("Li2", z, x, math.Li2)
}

// Atan2 sets z to the rounded value of the arctangent of y/x using the signs of both to find the quadrant, and returns z.
func (c *Context) Atan2(z, y, x *mpf.Float) *mpf.Float {
	return c.op2("Atan2", z, y, x, math.Atan2)
}

// Pow sets z to the rounded value of x**y, and returns z.
func (c *Context) Pow(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Pow", z, x, y, math.Pow)
}

// Hypot sets z to the rounded value of √(x²+y²), and returns z.
func (c *Context) Hypot(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Hypot", z, x, y, math.Hypot)
}

// Agm sets z to the rounded value of the arithmetic-geometric mean of x and y, and returns z.
func (c *Context) Agm(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Agm", z, x, y, math.Agm)
}

// Lgamma sets z to the rounded value of ln |Γ(x)|, and returns z and the sign
// of Γ(x).
func (c *Context) Lgamma(z, x *mpf.Float) (*mpf.Float, int) {
	sign := 1
	c.op1("Lgamma", z, x, func(z, x *mpf.Float) *mpf.Float {
		_, sign = math.Lgamma(z, x)
		return z
	})
	return z, sign
}

// Jn sets z to the rounded value of the order n Bessel function of the first
// kind of x, and returns z.
func (c *Context) Jn(z *mpf.Float, n int64, x *mpf.Float) *mpf.Float {
	return c.op1("Jn", z, x, func(z, x *mpf.Float) *mpf.Float { return math.Jn(z, n, x) })
}

// Yn sets z to the rounded value of the order n Bessel function of the second
// kind of x, and returns z.
func (c *Context) Yn(z *mpf.Float, n int64, x *mpf.Float) *mpf.Float {
	return c.op1("Yn", z, x, func(z, x *mpf.Float) *mpf.Float { return math.Yn(z, n, x) })
}

// Fac sets z to the rounded value of n!, and returns z.
func (c *Context) Fac(z *mpf.Float, n uint64) *mpf.Float {
	return c.op0("Fac", z, func(z *mpf.Float) *mpf.Float { return math.Fac(z, n) })
}

// ZetaUint64 sets z to the rounded value of ζ(s), and returns z.
func (c *Context) ZetaUint64(z *mpf.Float, s uint64) *mpf.Float {
	return c.op0("ZetaUint64", z, func(z *mpf.Float) *mpf.Float { return math.ZetaUint64(z, s) })
}

// PowFloat64 sets z to the rounded value of x**y, and returns z.
func (c *Context) PowFloat64(z, x *mpf.Float, y float64) *mpf.Float {
	return c.op1("PowFloat64", z, x, func(z, x *mpf.Float) *mpf.Float { return math.PowFloat64(z, x, y) })
}

// SinCos sets sin and cos to the sine and cosine of x rounded using c's
// precision and mode, and returns them.
func (c *Context) SinCos(sin, cos, x *mpf.Float) (*mpf.Float, *mpf.Float) {
	if sin == x || cos == x {
		x = new(mpf.Float).Copy(x)
	}
	return c.Sin(sin, x), c.Cos(cos, x)
}

// SinhCosh sets sinh and cosh to the hyperbolic sine and cosine of x rounded
// using c's precision and mode, and returns them.
func (c *Context) SinhCosh(sinh, cosh, x *mpf.Float) (*mpf.Float, *mpf.Float) {
	if sinh == x || cosh == x {
		x = new(mpf.Float).Copy(x)
	}
	return c.Sinh(sinh, x), c.Cosh(cosh, x)
}

// GRandom sets z to a normally distributed random value rounded using c's
// precision and mode, and returns z.
func (c *Context) GRandom(z *mpf.Float, src mpf.Source) *mpf.Float {
	return c.op0("GRandom", z, func(z *mpf.Float) *mpf.Float { return math.GRandom(z, src) })
}

// ERandom sets z to an exponentially distributed random value rounded using
// c's precision and mode, and returns z.
func (c *Context) ERandom(z *mpf.Float, src mpf.Source) *mpf.Float {
	return c.op0("ERandom", z, func(z *mpf.Float) *mpf.Float { return math.ERandom(z, src) })
}
