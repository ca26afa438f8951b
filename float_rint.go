// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math/big"
)

// Rint sets z to x rounded to an integer representable at z's precision,
// using z's rounding mode, and returns z. This is a single rounding: the
// result is the representable integer nearest to x in the direction given by
// the rounding mode.
//
// If z's precision is 0, it is changed to x's precision. ±0, ±Inf and NaN are
// returned unchanged.
func (z *Float) Rint(x *Float) *Float {
	return z.rint(x, z.mode)
}

// Ceil sets z to the smallest representable integer not less than x.
func (z *Float) Ceil(x *Float) *Float {
	return z.rint(x, ToPositiveInf)
}

// Floor sets z to the largest representable integer not greater than x.
func (z *Float) Floor(x *Float) *Float {
	return z.rint(x, ToNegativeInf)
}

// Round sets z to the representable integer nearest to x, rounding halfway
// cases away from zero.
func (z *Float) Round(x *Float) *Float {
	return z.rint(x, ToNearestAway)
}

// RoundEven sets z to the representable integer nearest to x, rounding
// halfway cases to the even integer.
func (z *Float) RoundEven(x *Float) *Float {
	return z.rint(x, ToNearestEven)
}

// Trunc sets z to the representable integer nearest to x toward zero.
func (z *Float) Trunc(x *Float) *Float {
	return z.rint(x, ToZero)
}

func (z *Float) rint(x *Float, mode RoundingMode) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	if x.form != finite {
		return z.Set(x)
	}

	neg := x.neg
	if x.exp <= 0 {
		// 0 < |x| < 1
		var up bool
		switch mode {
		case ToNearestEven:
			up = x.exp == 0 && x.MinPrec() > 1 // |x| > 0.5
		case ToNearestAway:
			up = x.exp == 0 // |x| >= 0.5
		case AwayFromZero:
			up = true
		case ToNegativeInf:
			up = neg
		case ToPositiveInf:
			up = !neg
		}
		z.neg = neg
		if up {
			z.form = finite
			z.mant = z.mant.setWord(1 << (_W - 1))
			z.exp = 1
		} else {
			z.form = zero
		}
		z.acc = makeAcc(up != neg)
		return z
	}

	if z != x {
		z.form = finite
		z.neg = neg
		z.exp = x.exp
		z.mant = z.mant.set(x.mant)
	}
	prec, zmode := z.prec, z.mode
	if x.exp < int64(prec) {
		z.prec = uint32(x.exp)
	}
	z.mode = mode
	z.round(0)
	z.prec, z.mode = prec, zmode
	return z.checkRange()
}

// RintCeil sets z to the smallest integer not less than x, rounded to z's
// precision in z's rounding mode, and returns z. Unlike Ceil, the result is
// rounded twice.
func (z *Float) RintCeil(x *Float) *Float {
	return z.rint2(x, ToPositiveInf)
}

// RintFloor sets z to the largest integer not greater than x, rounded to z's
// precision in z's rounding mode, and returns z.
func (z *Float) RintFloor(x *Float) *Float {
	return z.rint2(x, ToNegativeInf)
}

// RintRound sets z to the integer nearest to x, halfway cases away from zero,
// rounded to z's precision in z's rounding mode, and returns z.
func (z *Float) RintRound(x *Float) *Float {
	return z.rint2(x, ToNearestAway)
}

// RintRoundEven sets z to the integer nearest to x, halfway cases to even,
// rounded to z's precision in z's rounding mode, and returns z.
func (z *Float) RintRoundEven(x *Float) *Float {
	return z.rint2(x, ToNearestEven)
}

// RintTrunc sets z to the integer part of x rounded to z's precision in z's
// rounding mode, and returns z.
func (z *Float) RintTrunc(x *Float) *Float {
	return z.rint2(x, ToZero)
}

func (z *Float) rint2(x *Float, mode RoundingMode) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	if x.form != finite {
		return z.Set(x)
	}
	// the integer fits in x's precision
	var i, u Float
	i.prec = x.prec
	i.rint(x, mode)
	u.prec, u.mode = z.prec, z.mode
	u.Set(&i).checkRange()
	acc := Exact
	if u.acc != Exact || i.acc != Exact {
		switch u.Cmp(x) {
		case -1:
			acc = Below
		case 1:
			acc = Above
		}
	}
	z.Swap(&u)
	z.acc = acc
	return z
}

// Frac sets z to the fractional part of x, that is x minus its integer part
// toward zero, with the sign of x, and returns z. Frac(±Inf) is NaN.
func (z *Float) Frac(x *Float) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	switch x.form {
	case nan, inf:
		return z.SetNaN()
	case zero:
		return z.SetZero(x.neg)
	}
	neg := x.neg
	if x.exp <= 0 {
		return z.Set(x)
	}
	n := int64(len(x.mant)) * _W
	if x.exp >= n {
		return z.SetZero(neg)
	}
	// clear the integer bits
	m := nat(nil).set(x.mant)
	ib := n - x.exp // index of the highest fractional bit + 1
	w := ib / _W
	m[w] &= 1<<(ib%_W) - 1
	clear(m[w+1:])
	z.neg = neg
	z.setBits(m, x.exp-n, 0)
	if z.form == zero {
		z.neg = neg
	}
	return z.checkRange()
}

// Modf sets z to the integer part of x toward zero, and f to its fractional
// part, both with the sign of x and rounded to their own precision, and
// returns z. For ±Inf x, z is ±Inf and f is ±0. If f's precision is 0, it is
// changed to x's precision.
func (z *Float) Modf(f, x *Float) *Float {
	var t Float
	t.prec, t.mode = f.prec, f.mode
	if t.prec == 0 {
		t.prec = x.prec
	}
	if x.form == inf {
		t.SetZero(x.neg)
	} else {
		t.Frac(x)
	}
	z.RintTrunc(x)
	f.Swap(&t)
	return z
}

// Fmod sets z to x - n*y, where n is the integer quotient x/y truncated
// toward zero, and returns z. The result has the sign of x and is rounded to
// z's precision. Fmod(±Inf, y), Fmod(x, ±0) and operations on NaN yield a
// NaN; Fmod(x, ±Inf) is x for finite x.
func (z *Float) Fmod(x, y *Float) *Float {
	z.rem(x, y, false)
	return z
}

// Remainder sets z to x - n*y, where n is the integer nearest to x/y, with
// halfway cases rounded to even, and returns z. Special cases are as for
// Fmod.
func (z *Float) Remainder(x, y *Float) *Float {
	z.rem(x, y, true)
	return z
}

// Remquo sets z to the remainder of x and y as Remainder does, and returns z
// together with the low-order bits of the integer quotient n, carrying the sign
// of x/y. At least the 62 low-order bits of |n| are returned.
func (z *Float) Remquo(x, y *Float) (*Float, int64) {
	q := z.rem(x, y, true)
	return z, q
}

func (z *Float) rem(x, y *Float, nearest bool) int64 {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	switch {
	case x.form == nan || y.form == nan || x.form == inf || y.form == zero:
		z.SetNaN()
		return 0
	case x.form == zero || y.form == inf:
		z.Set(x).checkRange()
		return 0
	}

	xneg := x.neg
	qneg := x.neg != y.neg
	mx, ex := x.intMant()
	my, ey := y.intMant()
	if ey > ex && uint64(ey-ex) > uint64(mx.bitLen())+1 {
		// 2|x| < |y|
		z.Set(x).checkRange()
		return 0
	}
	xi, yi := mx.int(), my.int()
	var M, R, Y, r big.Int

	// With M = Y·2**64, R = X mod M yields the low 64 bits of the quotient
	// together with the remainder.
	e := min(ex, ey)
	if ex >= ey {
		Y.Set(yi)
		d := big.NewInt(ex - ey)
		if ex-ey < 0 {
			// exponent difference overflows int64
			d.Sub(big.NewInt(ex), big.NewInt(ey))
		}
		M.Lsh(yi, 64)
		R.Exp(big.NewInt(2), d, &M)
		R.Mul(&R, xi)
		R.Mod(&R, &M)
	} else {
		Y.Lsh(yi, uint(ey-ex))
		M.Lsh(&Y, 64)
		R.Mod(xi, &M)
	}
	var q big.Int
	q.QuoRem(&R, &Y, &r)
	ql := q.Uint64()

	neg := xneg
	if nearest && r.Sign() != 0 {
		// compare 2r with Y
		var r2 big.Int
		r2.Lsh(&r, 1)
		if c := r2.Cmp(&Y); c > 0 || c == 0 && ql&1 == 1 {
			r.Sub(&Y, &r)
			neg = !neg
			ql++
		}
	}

	z.neg = neg
	z.setBits(nat(nil).setInt(&r), e, 0)
	if z.form == zero {
		z.neg = xneg
	}
	z.checkRange()

	n := int64(ql & (1<<62 - 1))
	if qneg {
		n = -n
	}
	return n
}
