// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"math"
	"math/big"

	"github.com/db47h/mpf"
)

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Add", z, x, y, (*mpf.Float).Add)
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Sub", z, x, y, (*mpf.Float).Sub)
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Mul", z, x, y, (*mpf.Float).Mul)
}

// Sqr sets z to the rounded square x² and returns z.
func (c *Context) Sqr(z, x *mpf.Float) *mpf.Float {
	return c.op1("Sqr", z, x, (*mpf.Float).Sqr)
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Quo", z, x, y, (*mpf.Float).Quo)
}

// FMA sets z to x × y + u, computed with only one rounding. That is, FMA
// performs the fused multiply-add of x, y, and u.
func (c *Context) FMA(z, x, y, u *mpf.Float) *mpf.Float {
	return c.op3("FMA", z, x, y, u, (*mpf.Float).FMA)
}

// FMS sets z to x × y - u, computed with only one rounding.
func (c *Context) FMS(z, x, y, u *mpf.Float) *mpf.Float {
	return c.op3("FMS", z, x, y, u, (*mpf.Float).FMS)
}

// Dim sets z to the positive difference max(x-y, 0) and returns z.
func (c *Context) Dim(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Dim", z, x, y, (*mpf.Float).Dim)
}

// Sum sets z to the rounded sum of xs and returns z.
func (c *Context) Sum(z *mpf.Float, xs ...*mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	ops := make([]*mpf.Float, len(xs))
	for i, x := range xs {
		ops[i] = c.operand(z, x)
	}
	fin := finite(ops...)
	c.apply(z).Sum(ops)
	c.raise("Sum", c.check(z, fin))
	return z
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *mpf.Float) *mpf.Float {
	return c.op1("Neg", z, x, (*mpf.Float).Neg)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *mpf.Float) *mpf.Float {
	return c.op1("Abs", z, x, (*mpf.Float).Abs)
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *mpf.Float) *mpf.Float {
	return c.op1("Sqrt", z, x, (*mpf.Float).Sqrt)
}

// RecSqrt sets z to the rounded reciprocal square root of x, and returns z.
func (c *Context) RecSqrt(z, x *mpf.Float) *mpf.Float {
	return c.op1("RecSqrt", z, x, (*mpf.Float).RecSqrt)
}

// Cbrt sets z to the rounded cube root of x, and returns z.
func (c *Context) Cbrt(z, x *mpf.Float) *mpf.Float {
	return c.op1("Cbrt", z, x, (*mpf.Float).Cbrt)
}

// Root sets z to the rounded k-th root of x, and returns z.
func (c *Context) Root(z, x *mpf.Float, k uint64) *mpf.Float {
	return c.op1("Root", z, x, func(z, x *mpf.Float) *mpf.Float { return z.Root(x, k) })
}

// PowInt64 sets z to the rounded value of x**n, and returns z.
func (c *Context) PowInt64(z, x *mpf.Float, n int64) *mpf.Float {
	return c.op1("PowInt64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.PowInt64(x, n) })
}

// PowInt sets z to the rounded value of x**n, and returns z.
func (c *Context) PowInt(z, x *mpf.Float, n *big.Int) *mpf.Float {
	return c.op1("PowInt", z, x, func(z, x *mpf.Float) *mpf.Float { return z.PowInt(x, n) })
}

// Mul2Exp sets z to the rounded value of x × 2**n, and returns z.
func (c *Context) Mul2Exp(z, x *mpf.Float, n int64) *mpf.Float {
	return c.op1("Mul2Exp", z, x, func(z, x *mpf.Float) *mpf.Float { return z.Mul2Exp(x, n) })
}

// AddInt64 sets z to the rounded sum x+y and returns z.
func (c *Context) AddInt64(z, x *mpf.Float, y int64) *mpf.Float {
	return c.op1("AddInt64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.AddInt64(x, y) })
}

// AddRat sets z to the rounded sum x+y and returns z.
func (c *Context) AddRat(z, x *mpf.Float, y *big.Rat) *mpf.Float {
	return c.op1("AddRat", z, x, func(z, x *mpf.Float) *mpf.Float { return z.AddRat(x, y) })
}

// MulInt64 sets z to the rounded product x×y and returns z.
func (c *Context) MulInt64(z, x *mpf.Float, y int64) *mpf.Float {
	return c.op1("MulInt64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.MulInt64(x, y) })
}

// QuoInt64 sets z to the rounded quotient x/y and returns z.
func (c *Context) QuoInt64(z, x *mpf.Float, y int64) *mpf.Float {
	return c.op1("QuoInt64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.QuoInt64(x, y) })
}

// Int64Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Int64Quo(z *mpf.Float, x int64, y *mpf.Float) *mpf.Float {
	return c.op1("Int64Quo", z, y, func(z, y *mpf.Float) *mpf.Float { return z.Int64Quo(x, y) })
}

// AddUint64 sets z to the rounded sum x+y and returns z.
func (c *Context) AddUint64(z, x *mpf.Float, y uint64) *mpf.Float {
	return c.op1("AddUint64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.AddUint64(x, y) })
}

// AddFloat64 sets z to the rounded sum x+y and returns z.
func (c *Context) AddFloat64(z, x *mpf.Float, y float64) *mpf.Float {
	return c.op1("AddFloat64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.AddFloat64(x, y) })
}

// AddInt sets z to the rounded sum x+y and returns z.
func (c *Context) AddInt(z, x *mpf.Float, y *big.Int) *mpf.Float {
	return c.op1("AddInt", z, x, func(z, x *mpf.Float) *mpf.Float { return z.AddInt(x, y) })
}

// SubInt64 sets z to the rounded difference x-y and returns z.
func (c *Context) SubInt64(z, x *mpf.Float, y int64) *mpf.Float {
	return c.op1("SubInt64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.SubInt64(x, y) })
}

// SubUint64 sets z to the rounded difference x-y and returns z.
func (c *Context) SubUint64(z, x *mpf.Float, y uint64) *mpf.Float {
	return c.op1("SubUint64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.SubUint64(x, y) })
}

// SubFloat64 sets z to the rounded difference x-y and returns z.
func (c *Context) SubFloat64(z, x *mpf.Float, y float64) *mpf.Float {
	return c.op1("SubFloat64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.SubFloat64(x, y) })
}

// SubInt sets z to the rounded difference x-y and returns z.
func (c *Context) SubInt(z, x *mpf.Float, y *big.Int) *mpf.Float {
	return c.op1("SubInt", z, x, func(z, x *mpf.Float) *mpf.Float { return z.SubInt(x, y) })
}

// SubRat sets z to the rounded difference x-y and returns z.
func (c *Context) SubRat(z, x *mpf.Float, y *big.Rat) *mpf.Float {
	return c.op1("SubRat", z, x, func(z, x *mpf.Float) *mpf.Float { return z.SubRat(x, y) })
}

// Int64Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Int64Sub(z *mpf.Float, x int64, y *mpf.Float) *mpf.Float {
	return c.op1("Int64Sub", z, y, func(z, y *mpf.Float) *mpf.Float { return z.Int64Sub(x, y) })
}

// Uint64Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Uint64Sub(z *mpf.Float, x uint64, y *mpf.Float) *mpf.Float {
	return c.op1("Uint64Sub", z, y, func(z, y *mpf.Float) *mpf.Float { return z.Uint64Sub(x, y) })
}

// Float64Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Float64Sub(z *mpf.Float, x float64, y *mpf.Float) *mpf.Float {
	return c.op1("Float64Sub", z, y, func(z, y *mpf.Float) *mpf.Float { return z.Float64Sub(x, y) })
}

// IntSub sets z to the rounded difference x-y and returns z.
func (c *Context) IntSub(z *mpf.Float, x *big.Int, y *mpf.Float) *mpf.Float {
	return c.op1("IntSub", z, y, func(z, y *mpf.Float) *mpf.Float { return z.IntSub(x, y) })
}

// MulUint64 sets z to the rounded product x×y and returns z.
func (c *Context) MulUint64(z, x *mpf.Float, y uint64) *mpf.Float {
	return c.op1("MulUint64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.MulUint64(x, y) })
}

// MulFloat64 sets z to the rounded product x×y and returns z.
func (c *Context) MulFloat64(z, x *mpf.Float, y float64) *mpf.Float {
	return c.op1("MulFloat64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.MulFloat64(x, y) })
}

// MulInt sets z to the rounded product x×y and returns z.
func (c *Context) MulInt(z, x *mpf.Float, y *big.Int) *mpf.Float {
	return c.op1("MulInt", z, x, func(z, x *mpf.Float) *mpf.Float { return z.MulInt(x, y) })
}

// MulRat sets z to the rounded product x×y and returns z.
func (c *Context) MulRat(z, x *mpf.Float, y *big.Rat) *mpf.Float {
	return c.op1("MulRat", z, x, func(z, x *mpf.Float) *mpf.Float { return z.MulRat(x, y) })
}

// QuoUint64 sets z to the rounded quotient x/y and returns z.
func (c *Context) QuoUint64(z, x *mpf.Float, y uint64) *mpf.Float {
	return c.op1("QuoUint64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.QuoUint64(x, y) })
}

// QuoFloat64 sets z to the rounded quotient x/y and returns z.
func (c *Context) QuoFloat64(z, x *mpf.Float, y float64) *mpf.Float {
	return c.op1("QuoFloat64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.QuoFloat64(x, y) })
}

// QuoInt sets z to the rounded quotient x/y and returns z.
func (c *Context) QuoInt(z, x *mpf.Float, y *big.Int) *mpf.Float {
	return c.op1("QuoInt", z, x, func(z, x *mpf.Float) *mpf.Float { return z.QuoInt(x, y) })
}

// QuoRat sets z to the rounded quotient x/y and returns z.
func (c *Context) QuoRat(z, x *mpf.Float, y *big.Rat) *mpf.Float {
	return c.op1("QuoRat", z, x, func(z, x *mpf.Float) *mpf.Float { return z.QuoRat(x, y) })
}

// Uint64Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Uint64Quo(z *mpf.Float, x uint64, y *mpf.Float) *mpf.Float {
	return c.op1("Uint64Quo", z, y, func(z, y *mpf.Float) *mpf.Float { return z.Uint64Quo(x, y) })
}

// Float64Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Float64Quo(z *mpf.Float, x float64, y *mpf.Float) *mpf.Float {
	return c.op1("Float64Quo", z, y, func(z, y *mpf.Float) *mpf.Float { return z.Float64Quo(x, y) })
}

// Quo2Exp sets z to the rounded value of x / 2**n, and returns z.
func (c *Context) Quo2Exp(z, x *mpf.Float, n int64) *mpf.Float {
	return c.op1("Quo2Exp", z, x, func(z, x *mpf.Float) *mpf.Float { return z.Quo2Exp(x, n) })
}

// PowUint64 sets z to the rounded value of x**n, and returns z.
func (c *Context) PowUint64(z, x *mpf.Float, n uint64) *mpf.Float {
	return c.op1("PowUint64", z, x, func(z, x *mpf.Float) *mpf.Float { return z.PowUint64(x, n) })
}

// Uint64PowUint64 sets z to the rounded value of x**n, and returns z.
func (c *Context) Uint64PowUint64(z *mpf.Float, x, n uint64) *mpf.Float {
	return c.op0("Uint64PowUint64", z, func(z *mpf.Float) *mpf.Float { return z.Uint64PowUint64(x, n) })
}

// SqrtUint64 sets z to the rounded square root of x, and returns z.
func (c *Context) SqrtUint64(z *mpf.Float, x uint64) *mpf.Float {
	return c.op0("SqrtUint64", z, func(z *mpf.Float) *mpf.Float { return z.SqrtUint64(x) })
}

// Rint sets z to x rounded to an integer in c's rounding mode, and returns z.
func (c *Context) Rint(z, x *mpf.Float) *mpf.Float {
	return c.op1("Rint", z, x, (*mpf.Float).Rint)
}

// Ceil sets z to the smallest integer representable at c's precision that is
// not less than x, and returns z.
func (c *Context) Ceil(z, x *mpf.Float) *mpf.Float {
	return c.op1("Ceil", z, x, (*mpf.Float).Ceil)
}

// Floor sets z to the largest integer representable at c's precision that is
// not greater than x, and returns z.
func (c *Context) Floor(z, x *mpf.Float) *mpf.Float {
	return c.op1("Floor", z, x, (*mpf.Float).Floor)
}

// Trunc sets z to the integer representable at c's precision nearest to x
// toward zero, and returns z.
func (c *Context) Trunc(z, x *mpf.Float) *mpf.Float {
	return c.op1("Trunc", z, x, (*mpf.Float).Trunc)
}

// RoundEven sets z to the integer representable at c's precision nearest to
// x, with halfway cases rounded to even, and returns z.
func (c *Context) RoundEven(z, x *mpf.Float) *mpf.Float {
	return c.op1("RoundEven", z, x, (*mpf.Float).RoundEven)
}

// RintCeil sets z to the smallest integer not less than x, rounded in c's
// mode, and returns z.
func (c *Context) RintCeil(z, x *mpf.Float) *mpf.Float {
	return c.op1("RintCeil", z, x, (*mpf.Float).RintCeil)
}

// RintFloor sets z to the largest integer not greater than x, rounded in c's
// mode, and returns z.
func (c *Context) RintFloor(z, x *mpf.Float) *mpf.Float {
	return c.op1("RintFloor", z, x, (*mpf.Float).RintFloor)
}

// RintRound sets z to the integer nearest to x, halfway cases away from zero,
// rounded in c's mode, and returns z.
func (c *Context) RintRound(z, x *mpf.Float) *mpf.Float {
	return c.op1("RintRound", z, x, (*mpf.Float).RintRound)
}

// RintRoundEven sets z to the integer nearest to x, halfway cases to even,
// rounded in c's mode, and returns z.
func (c *Context) RintRoundEven(z, x *mpf.Float) *mpf.Float {
	return c.op1("RintRoundEven", z, x, (*mpf.Float).RintRoundEven)
}

// RintTrunc sets z to the integer part of x rounded in c's mode, and returns
// z.
func (c *Context) RintTrunc(z, x *mpf.Float) *mpf.Float {
	return c.op1("RintTrunc", z, x, (*mpf.Float).RintTrunc)
}

// Frac sets z to the fractional part of x, with the sign of x, and returns z.
func (c *Context) Frac(z, x *mpf.Float) *mpf.Float {
	return c.op1("Frac", z, x, (*mpf.Float).Frac)
}

// Modf sets z to the integer part of x toward zero and f to its fractional
// part, both rounded using c's precision and mode, and returns z. The flags
// of both results are raised.
func (c *Context) Modf(z, f, x *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	x = c.operand(f, c.operand(z, x))
	fin := finite(x)
	c.apply(z).Modf(c.apply(f), x)
	c.raise("Modf", c.check(z, fin)|c.check(f, fin))
	return z
}

// Fmod sets z to the remainder of x/y with the quotient rounded toward zero,
// and returns z.
func (c *Context) Fmod(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Fmod", z, x, y, (*mpf.Float).Fmod)
}

// Remainder sets z to the remainder of x/y with the quotient rounded to the
// nearest integer, and returns z.
func (c *Context) Remainder(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Remainder", z, x, y, (*mpf.Float).Remainder)
}

// Remquo sets z to the remainder of x/y as Remainder does, and returns z
// together with the low-order bits of the integer quotient, carrying the sign
// of x/y.
func (c *Context) Remquo(z, x, y *mpf.Float) (*mpf.Float, int64) {
	var q int64
	c.op2("Remquo", z, x, y, func(z, x, y *mpf.Float) *mpf.Float {
		z, q = z.Remquo(x, y)
		return z
	})
	return z, q
}

// Min sets z to the smaller of x and y, rounded using c's precision and mode,
// and returns z. A NaN operand is ignored unless both are NaN.
func (c *Context) Min(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Min", z, x, y, (*mpf.Float).Min)
}

// Max sets z to the larger of x and y, rounded using c's precision and mode,
// and returns z. A NaN operand is ignored unless both are NaN.
func (c *Context) Max(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("Max", z, x, y, (*mpf.Float).Max)
}

// RelDiff sets z to |x-y|/x and returns z.
func (c *Context) RelDiff(z, x, y *mpf.Float) *mpf.Float {
	return c.op2("RelDiff", z, x, y, (*mpf.Float).RelDiff)
}

// NextAbove sets z to the next value above z in c's exponent range and returns
// z.
func (c *Context) NextAbove(z *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	return z.NextAboveIn(c.emin, c.emax)
}

// NextBelow sets z to the next value below z in c's exponent range and returns
// z.
func (c *Context) NextBelow(z *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	return z.NextBelowIn(c.emin, c.emax)
}

// NextToward sets z to the next value toward y in c's exponent range and
// returns z. If z or y is a NaN, z becomes a NaN and the Invalid flag is
// raised.
func (c *Context) NextToward(z, y *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	if z.NextTowardIn(y, c.emin, c.emax).IsNaN() {
		c.raise("NextToward", mpf.Invalid)
	}
	return z
}

// URandom sets z to a uniform random value in [0, 1) rounded in c's mode, and
// returns z.
func (c *Context) URandom(z *mpf.Float, src mpf.Source) *mpf.Float {
	return c.op0("URandom", z, func(z *mpf.Float) *mpf.Float { return z.URandom(src) })
}

// Cmp compares x and y as x.Cmp(y) does. If x or y is a NaN, Cmp raises the
// Invalid flag and returns 0.
func (c *Context) Cmp(x, y *mpf.Float) int {
	if x.IsNaN() || y.IsNaN() {
		c.raise("Cmp", mpf.Invalid)
		return 0
	}
	return x.Cmp(y)
}

// Less reports whether x < y. If x or y is a NaN, it raises the Invalid flag.
func (c *Context) Less(x, y *mpf.Float) bool {
	c.ordered("Less", x, y)
	return x.Less(y)
}

// LessEqual reports whether x <= y. If x or y is a NaN, it raises the Invalid
// flag.
func (c *Context) LessEqual(x, y *mpf.Float) bool {
	c.ordered("LessEqual", x, y)
	return x.LessEqual(y)
}

// Greater reports whether x > y. If x or y is a NaN, it raises the Invalid
// flag.
func (c *Context) Greater(x, y *mpf.Float) bool {
	c.ordered("Greater", x, y)
	return x.Greater(y)
}

// GreaterEqual reports whether x >= y. If x or y is a NaN, it raises the
// Invalid flag.
func (c *Context) GreaterEqual(x, y *mpf.Float) bool {
	c.ordered("GreaterEqual", x, y)
	return x.GreaterEqual(y)
}

// LessGreater reports whether x < y or x > y. If x or y is a NaN, it raises
// the Invalid flag.
func (c *Context) LessGreater(x, y *mpf.Float) bool {
	c.ordered("LessGreater", x, y)
	return x.LessGreater(y)
}

func (c *Context) ordered(op string, x, y *mpf.Float) {
	if x.IsNaN() || y.IsNaN() {
		c.raise(op, mpf.Invalid)
	}
}

// Int64 returns x rounded to an integer in c's rounding mode. If the result
// does not fit in an int64, it saturates and raises the Erange flag.
func (c *Context) Int64(x *mpf.Float) int64 {
	y := c.withMode(x)
	if !y.FitsInt64() {
		c.raise("Int64", mpf.Erange)
	}
	v, _ := y.Int64Mode()
	return v
}

// Uint64 returns x rounded to an integer in c's rounding mode. If the result
// does not fit in an uint64, it saturates and raises the Erange flag.
func (c *Context) Uint64(x *mpf.Float) uint64 {
	y := c.withMode(x)
	if !y.FitsUint64() {
		c.raise("Uint64", mpf.Erange)
	}
	v, _ := y.Uint64Mode()
	return v
}

// Float64 returns the float64 value nearest to x in c's rounding mode. It
// raises Overflow or Underflow if x is out of the float64 range, and Inexact
// if the result is not exact.
func (c *Context) Float64(x *mpf.Float) float64 {
	v, acc := c.withMode(x).Float64()
	var f mpf.Flags
	if acc != mpf.Exact {
		f |= mpf.Inexact
		switch {
		case math.IsInf(v, 0) || math.Abs(v) == math.MaxFloat64 && x.CmpAbs(maxFloat64) > 0:
			f |= mpf.Overflow
		case v == 0:
			f |= mpf.Underflow
		}
	}
	c.raise("Float64", f)
	return v
}

var maxFloat64 = mpf.NewFloat(math.MaxFloat64)

// withMode returns a copy of x with c's rounding mode.
func (c *Context) withMode(x *mpf.Float) *mpf.Float {
	return new(mpf.Float).Copy(x).SetMode(c.mode)
}
