// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/big"
)

// ucmp returns -1, 0, or +1, depending on whether
// |x| < |y|, |x| == |y|, or |x| > |y|.
// x and y must have a non-empty mantissa and valid exponent.
func (x *Float) ucmp(y *Float) int {
	if debugFloat {
		validateBinaryOperands(x, y)
	}

	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp

	// compare mantissas
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return +1
		}
	}

	return 0
}

func validateBinaryOperands(x, y *Float) {
	if !debugFloat {
		// avoid performance bugs
		panic("validateBinaryOperands called but debugFloat is not set")
	}
	if len(x.mant) == 0 {
		panic("empty mantissa for x")
	}
	if len(y.mant) == 0 {
		panic("empty mantissa for y")
	}
}

// uadd sets z to |x| + |y|, or to |x| - |y| if sub is set, rounded to z's
// precision. For a subtraction, |x| > |y| must hold. z.neg must be set.
func (z *Float) uadd(x, y *Float, sub bool) {
	if debugFloat {
		validateBinaryOperands(x, y)
	}
	if !sub && x.exp < y.exp {
		x, y = y, x
	}
	// x.exp >= y.exp

	// If y lies entirely below the lowest bit of x's mantissa extended past
	// z's precision, x followed by a sticky bit rounds like the exact result.
	n := max(len(x.mant), wordsFor(z.prec)+1)
	if y.exp <= x.exp-int64(n)*_W {
		exp := x.exp
		d := n - len(x.mant)
		m := z.mant.make(n)
		copy(m[d:], x.mant)
		clear(m[:d])
		if sub {
			// x - y lies in (x - ulp, x); the bits of x - ulp are exact
			// except for the lowest one once renormalized.
			subVW(m, m, 1)
			if m[n-1]&(1<<(_W-1)) == 0 {
				shlVU(m, m, 1)
				exp--
			}
		}
		z.mant = m
		z.setExpAndRound(exp, 1)
		return
	}

	ex := x.exp - int64(len(x.mant))*_W
	ey := y.exp - int64(len(y.mant))*_W

	al := alias(z.mant, x.mant) || alias(z.mant, y.mant)
	op := nat.add
	if sub {
		op = nat.sub
	}

	switch {
	case ex < ey:
		if al {
			t := nat(nil).shl(y.mant, uint(ey-ex))
			z.mant = op(z.mant, x.mant, t)
		} else {
			z.mant = z.mant.shl(y.mant, uint(ey-ex))
			z.mant = op(z.mant, x.mant, z.mant)
		}
	default:
		// ex == ey, no shift needed
		z.mant = op(z.mant, x.mant, y.mant)
	case ex > ey:
		if al {
			t := nat(nil).shl(x.mant, uint(ex-ey))
			z.mant = op(t, t, y.mant)
		} else {
			z.mant = z.mant.shl(x.mant, uint(ex-ey))
			z.mant = op(z.mant, z.mant, y.mant)
		}
		ex = ey
	}

	// operands may have canceled each other out
	if len(z.mant) == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = false
		return
	}
	// len(z.mant) > 0

	z.setExpAndRound(ex+int64(len(z.mant))*_W-fnorm(z.mant), 0)
}

// umul sets z to |x| * |y|, rounded to z's precision.
// x and y must have a non-empty mantissa and valid exponent.
func (z *Float) umul(x, y *Float) {
	if debugFloat {
		validateBinaryOperands(x, y)
	}

	// Note: This is doing too much work if the precision
	// of z is less than the sum of the precisions of x
	// and y which is often the case (e.g., if all floats
	// have the same precision).

	e := x.exp + y.exp
	z.mant = z.mant.mul(x.mant, y.mant)
	z.setExpAndRound(e-fnorm(z.mant), 0)
}

// uquo sets z to |x| / |y|, rounded to z's precision.
// x and y must have a non-empty mantissa and valid exponent.
func (z *Float) uquo(x, y *Float) {
	if debugFloat {
		validateBinaryOperands(x, y)
	}

	// mantissa length in words for desired result precision + 1
	// (at least one extra bit so we get the rounding bit after
	// the division)
	n := int(z.prec/_W) + 1

	// compute adjusted x.mant such that we get enough result precision
	xadj := x.mant
	if d := n - len(x.mant) + len(y.mant); d > 0 {
		// d extra words needed => add d "0 digits" to x
		xadj = make(nat, len(x.mant)+d)
		copy(xadj[d:], x.mant)
	}

	// Compute d before division since there may be aliasing of x.mant
	// (via xadj) or y.mant with z.mant.
	d := len(xadj) - len(y.mant)

	// divide
	var r nat
	z.mant, r = z.mant.div(nil, xadj, y.mant)
	e := x.exp - y.exp - int64(d-len(z.mant))*_W

	// The result is long enough to include (at least) the rounding bit.
	// If there's a non-zero remainder, the corresponding fractional part
	// (if it were computed), would have a non-zero sticky bit (if it were
	// zero, it couldn't have a non-zero remainder).
	var sbit uint
	if len(r) > 0 {
		sbit = 1
	}

	z.setExpAndRound(e-fnorm(z.mant), sbit)
}

// Add sets z to the rounded sum x+y and returns z. If z's precision is 0,
// it is changed to the larger of x's or y's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode; and z's accuracy reports the result error relative to the
// exact (not rounded) result.
//
// The sum of two infinities of opposite sign and any sum involving a NaN is
// a NaN. An exact zero sum is +0, or -0 if z's rounding mode is
// ToNegativeInf.
func (z *Float) Add(x, y *Float) *Float {
	return z.add(x, y, y.neg)
}

// Sub sets z to the rounded difference x-y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// The difference of two infinities of the same sign is a NaN.
func (z *Float) Sub(x, y *Float) *Float {
	return z.add(x, y, !y.neg)
}

// add sets z to x + y, where the sign of y is taken to be yneg.
func (z *Float) add(x, y *Float, yneg bool) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.form == finite && y.form == finite {
		// x + y (common case)

		// Below we set z.neg = x.neg, and when z aliases y this will
		// change the y operand's sign. This is fine, because if an
		// operand aliases the receiver it'll be overwritten, but we still
		// want the original x.neg and yneg values when we evaluate
		// x.neg != yneg, so we need to save them.
		xneg := x.neg
		z.neg = xneg
		if xneg == yneg {
			// x + y == x + y
			// (-x) + (-y) == -(x + y)
			z.uadd(x, y, false)
		} else {
			// x + (-y) == x - y == -(y - x)
			// (-x) + y == y - x == -(x - y)
			switch x.ucmp(y) {
			case 1:
				z.uadd(x, y, true)
			case -1:
				z.neg = !z.neg
				z.uadd(y, x, true)
			default:
				z.acc = Exact
				z.form = zero
				z.neg = false
			}
		}
		if z.form == zero && z.mode == ToNegativeInf && z.acc == Exact {
			z.neg = true
		}
		return z.checkRange()
	}

	if x.form == nan || y.form == nan {
		return z.SetNaN()
	}

	if x.form == inf && y.form == inf && x.neg != yneg {
		// +Inf + -Inf
		// -Inf + +Inf
		return z.SetNaN()
	}

	if x.form == zero && y.form == zero {
		// ±0 + ±0
		z.acc = Exact
		z.form = zero
		if z.mode == ToNegativeInf {
			z.neg = x.neg || yneg // -0 if either is negative
		} else {
			z.neg = x.neg && yneg // -0 only if both are negative
		}
		return z
	}

	if x.form == inf || y.form == zero {
		// ±Inf + y
		// x + ±0
		return z.Set(x).checkRange()
	}

	// ±0 + y
	// x + ±Inf
	return z.setSigned(y, yneg).checkRange()
}

// Mul sets z to the rounded product x*y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// The product of a zero and an infinity, or any product involving a NaN, is
// a NaN.
func (z *Float) Mul(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	neg := x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x * y (common case)
		z.neg = neg
		z.umul(x, y)
		return z.checkRange()
	}

	z.acc = Exact
	switch {
	case x.form == nan || y.form == nan:
		return z.SetNaN()
	case x.form == zero && y.form == inf || x.form == inf && y.form == zero:
		// ±0 * ±Inf
		// ±Inf * ±0
		return z.SetNaN()
	case x.form == inf || y.form == inf:
		// ±Inf * y
		// x * ±Inf
		return z.SetInf(neg)
	}
	// ±0 * y
	// x * ±0
	return z.SetZero(neg)
}

// Sqr sets z to the rounded square of x and returns z.
func (z *Float) Sqr(x *Float) *Float {
	return z.Mul(x, x)
}

// Quo sets z to the rounded quotient x/y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// A nonzero x divided by a zero y is an infinity with the sign of the
// quotient; 0/0, Inf/Inf and any quotient involving a NaN are NaN.
func (z *Float) Quo(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	neg := x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x / y (common case)
		z.neg = neg
		z.uquo(x, y)
		return z.checkRange()
	}

	z.acc = Exact
	switch {
	case x.form == nan || y.form == nan:
		return z.SetNaN()
	case x.form == zero && y.form == zero || x.form == inf && y.form == inf:
		// ±0 / ±0
		// ±Inf / ±Inf
		return z.SetNaN()
	case x.form == zero || y.form == inf:
		// ±0 / y
		// x / ±Inf
		return z.SetZero(neg)
	}
	// x / ±0
	// ±Inf / y
	return z.SetInf(neg)
}

// mulExact returns the exact product |x| * |y| of two nonzero finite Floats
// as a new Float with a sign of neg.
func mulExact(x, y *Float, neg bool) *Float {
	t := &Float{form: finite, neg: neg}
	t.mant = t.mant.mul(x.mant, y.mant)
	t.exp = x.exp + y.exp - fnorm(t.mant)
	t.prec = uint32(min(uint64(len(t.mant))*_W, MaxPrec))
	return t
}

// FMA sets z to x*y + u, computed with a single rounding, and returns z.
// If z's precision is 0, it is changed to the largest precision of x, y and
// u.
func (z *Float) FMA(x, y, u *Float) *Float {
	return z.fma(x, y, u, u.neg)
}

// FMS sets z to x*y - u, computed with a single rounding, and returns z.
// If z's precision is 0, it is changed to the largest precision of x, y and
// u.
func (z *Float) FMS(x, y, u *Float) *Float {
	return z.fma(x, y, u, !u.neg)
}

// fma sets z to x*y + u, where the sign of u is taken to be uneg.
func (z *Float) fma(x, y, u *Float, uneg bool) *Float {
	if z.prec == 0 {
		z.prec = umax32(umax32(x.prec, y.prec), u.prec)
	}
	neg := x.neg != y.neg
	switch {
	case x.form == nan || y.form == nan || u.form == nan:
		return z.SetNaN()
	case x.form == zero && y.form == inf || x.form == inf && y.form == zero:
		return z.SetNaN()
	case x.form == inf || y.form == inf:
		if u.form == inf && uneg != neg {
			return z.SetNaN()
		}
		return z.SetInf(neg)
	case x.form == zero || y.form == zero:
		p := Float{form: zero, neg: neg}
		return z.add(&p, u, uneg)
	}
	return z.add(mulExact(x, y, neg), u, uneg)
}

// Dim sets z to the positive difference x-y if x > y, and to +0 otherwise,
// and returns z. The result is a NaN if x or y is a NaN.
func (z *Float) Dim(x, y *Float) *Float {
	if x.form == nan || y.form == nan {
		if z.prec == 0 {
			z.prec = umax32(x.prec, y.prec)
		}
		return z.SetNaN()
	}
	if x.Cmp(y) > 0 {
		return z.Sub(x, y)
	}
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	return z.SetZero(false)
}

// Mul2Exp sets z to the (possibly rounded) value of x × 2**n and returns z.
func (z *Float) Mul2Exp(x *Float, n int64) *Float {
	z.Set(x)
	if z.form == finite {
		z.exp = satAdd(z.exp, n)
	}
	return z.checkRange()
}

// Quo2Exp sets z to the (possibly rounded) value of x / 2**n and returns z.
func (z *Float) Quo2Exp(x *Float, n int64) *Float {
	return z.Mul2Exp(x, -max(n, -math.MaxInt64))
}

// mixed operands

func (z *Float) AddInt64(x *Float, y int64) *Float {
	var t Float
	return z.Add(x, t.SetInt64(y))
}

func (z *Float) AddUint64(x *Float, y uint64) *Float {
	var t Float
	return z.Add(x, t.SetUint64(y))
}

func (z *Float) AddFloat64(x *Float, y float64) *Float {
	var t Float
	return z.Add(x, t.SetFloat64(y))
}

func (z *Float) AddInt(x *Float, y *big.Int) *Float {
	var t Float
	return z.Add(x, t.SetInt(y))
}

// AddRat sets z to the rounded sum x+y and returns z. The result is
// correctly rounded.
func (z *Float) AddRat(x *Float, y *big.Rat) *Float {
	return z.addRat(x, y.Num(), y.Denom())
}

func (z *Float) SubInt64(x *Float, y int64) *Float {
	var t Float
	return z.Sub(x, t.SetInt64(y))
}

func (z *Float) SubUint64(x *Float, y uint64) *Float {
	var t Float
	return z.Sub(x, t.SetUint64(y))
}

func (z *Float) Int64Sub(x int64, y *Float) *Float {
	var t Float
	return z.Sub(t.SetInt64(x), y)
}

func (z *Float) Uint64Sub(x uint64, y *Float) *Float {
	var t Float
	return z.Sub(t.SetUint64(x), y)
}

func (z *Float) SubFloat64(x *Float, y float64) *Float {
	var t Float
	return z.Sub(x, t.SetFloat64(y))
}

func (z *Float) Float64Sub(x float64, y *Float) *Float {
	var t Float
	return z.Sub(t.SetFloat64(x), y)
}

func (z *Float) SubInt(x *Float, y *big.Int) *Float {
	var t Float
	return z.Sub(x, t.SetInt(y))
}

func (z *Float) IntSub(x *big.Int, y *Float) *Float {
	var t Float
	return z.Sub(t.SetInt(x), y)
}

// SubRat sets z to the rounded difference x-y and returns z. The result is
// correctly rounded.
func (z *Float) SubRat(x *Float, y *big.Rat) *Float {
	var a big.Int
	return z.addRat(x, a.Neg(y.Num()), y.Denom())
}

func (z *Float) MulInt64(x *Float, y int64) *Float {
	var t Float
	return z.Mul(x, t.SetInt64(y))
}

func (z *Float) MulUint64(x *Float, y uint64) *Float {
	var t Float
	return z.Mul(x, t.SetUint64(y))
}

func (z *Float) MulFloat64(x *Float, y float64) *Float {
	var t Float
	return z.Mul(x, t.SetFloat64(y))
}

func (z *Float) MulInt(x *Float, y *big.Int) *Float {
	var t Float
	return z.Mul(x, t.SetInt(y))
}

// MulRat sets z to the rounded product x*y and returns z.
func (z *Float) MulRat(x *Float, y *big.Rat) *Float {
	var a, b Float
	a.SetInt(y.Num())
	b.SetInt(y.Denom())
	return z.mulQuo(x, &a, &b)
}

func (z *Float) QuoInt64(x *Float, y int64) *Float {
	var t Float
	return z.Quo(x, t.SetInt64(y))
}

func (z *Float) QuoUint64(x *Float, y uint64) *Float {
	var t Float
	return z.Quo(x, t.SetUint64(y))
}

func (z *Float) Int64Quo(x int64, y *Float) *Float {
	var t Float
	return z.Quo(t.SetInt64(x), y)
}

func (z *Float) Uint64Quo(x uint64, y *Float) *Float {
	var t Float
	return z.Quo(t.SetUint64(x), y)
}

func (z *Float) QuoFloat64(x *Float, y float64) *Float {
	var t Float
	return z.Quo(x, t.SetFloat64(y))
}

func (z *Float) Float64Quo(x float64, y *Float) *Float {
	var t Float
	return z.Quo(t.SetFloat64(x), y)
}

func (z *Float) QuoInt(x *Float, y *big.Int) *Float {
	var t Float
	return z.Quo(x, t.SetInt(y))
}

// QuoRat sets z to the rounded quotient x/y and returns z. A zero y yields a
// signed infinity, or NaN if x is zero.
func (z *Float) QuoRat(x *Float, y *big.Rat) *Float {
	var a, b Float
	a.SetInt(y.Num())
	b.SetInt(y.Denom())
	return z.mulQuo(x, &b, &a)
}

// mulQuo sets z to x*a/b rounded once, for integer valued a > 0 and b.
func (z *Float) mulQuo(x, a, b *Float) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	if x.form != finite || a.form != finite {
		var t Float
		t.prec = z.prec
		t.Mul(x, a)
		return z.Quo(&t, b)
	}
	return z.Quo(mulExact(x, a, x.neg != a.neg), b)
}

// addRat sets z to x + a/b, rounded once, for b > 0.
func (z *Float) addRat(x *Float, a, b *big.Int) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	var fa, fb Float
	fa.SetInt(a)
	fb.SetInt(b)
	if x.form != finite {
		if x.form == zero && fa.form != zero {
			return z.Quo(&fa, &fb)
		}
		// NaN, ±Inf, or ±0 + 0: only the sign and kind of a matter
		return z.Add(x, &fa)
	}
	// x + a/b = (x*b + a) / b; x*b is exact.
	xb := mulExact(x, &fb, x.neg)
	w := z.prec + 32
	for {
		var s, q Float
		s.prec = w
		s.mode = z.mode
		s.Add(xb, &fa)
		if s.acc == Exact || s.form != finite {
			return z.Quo(&s, &fb)
		}
		q.prec = w
		q.Quo(&s, &fb)
		if q.form == finite && q.CanRound(uint(w-3), uint(z.prec), z.mode) {
			return z.Set(&q).checkRange()
		}
		if w >= MaxPrec/2 {
			return z.Set(&q).checkRange()
		}
		w += w / 2
	}
}

// Sum sets z to the sum of the values in x, rounded once, and returns z. If
// z's precision is 0, it is changed to the largest precision in x. The sum of
// an empty slice is +0.
func (z *Float) Sum(x []*Float) *Float {
	if z.prec == 0 {
		for _, v := range x {
			z.prec = umax32(z.prec, v.prec)
		}
	}
	var (
		hasNaN, posInf, negInf bool
		anyNeg                 bool
		allNeg                 = len(x) > 0
		n                      int
		maxExp, minBit         int64
	)
	for _, v := range x {
		anyNeg = anyNeg || v.neg
		allNeg = allNeg && v.neg
		switch v.form {
		case nan:
			hasNaN = true
		case inf:
			if v.neg {
				negInf = true
			} else {
				posInf = true
			}
		case finite:
			lo := v.exp - int64(len(v.mant))*_W
			if n == 0 || v.exp > maxExp {
				maxExp = v.exp
			}
			if n == 0 || lo < minBit {
				minBit = lo
			}
			n++
		}
	}
	switch {
	case hasNaN || posInf && negInf:
		return z.SetNaN()
	case posInf || negInf:
		return z.SetInf(negInf)
	case n == 0:
		// only zeros: -0 if all are negative, or any in ToNegativeInf
		if z.mode == ToNegativeInf {
			return z.SetZero(anyNeg)
		}
		return z.SetZero(allNeg)
	}

	// Bits needed to hold every partial sum exactly.
	lg := int64(1)
	for k := n; k > 1; k >>= 1 {
		lg++
	}
	span := maxExp - minBit + lg + 1
	if span <= 1<<26 {
		t := Float{prec: uint32(span), mode: z.mode}
		for _, v := range x {
			if v.form == finite {
				t.Add(&t, v)
			}
		}
		if t.form == zero {
			return z.SetZero(z.mode == ToNegativeInf)
		}
		return z.Set(&t).checkRange()
	}

	// Ziv loop: n roundings at w bits add at most n ulps at the largest
	// partial sum exponent.
	w := z.prec + uint32(2*lg) + 32
	for {
		t := Float{prec: w, mode: z.mode}
		for _, v := range x {
			if v.form == finite {
				t.Add(&t, v)
			}
		}
		if t.form == finite {
			err := int64(w) - (maxExp + lg - t.exp) - lg - 1
			if err > 0 && t.CanRound(uint(err), uint(z.prec), z.mode) {
				return z.Set(&t).checkRange()
			}
		}
		if uint64(w) >= uint64(span) || w > MaxPrec/2 {
			return z.Set(&t).checkRange()
		}
		w += w / 2
	}
}

// RelDiff sets z to |x-y|/x and returns z. Only the final division is
// correctly rounded.
func (z *Float) RelDiff(x, y *Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	var d Float
	d.prec = z.prec
	d.mode = z.mode
	d.Sub(x, y)
	d.neg = false
	return z.Quo(&d, x)
}

// Min sets z to the (possibly rounded) smaller of x and y and returns z. If
// one of the operands is a NaN, the other one is returned; -0 is considered
// smaller than +0.
func (z *Float) Min(x, y *Float) *Float {
	return z.minMax(x, y, -1)
}

// Max sets z to the (possibly rounded) larger of x and y and returns z. If
// one of the operands is a NaN, the other one is returned; +0 is considered
// larger than -0.
func (z *Float) Max(x, y *Float) *Float {
	return z.minMax(x, y, 1)
}

func (z *Float) minMax(x, y *Float, sel int) *Float {
	switch {
	case x.form == nan:
		return z.Set(y)
	case y.form == nan:
		return z.Set(x)
	case x.form == zero && y.form == zero:
		if (sel < 0) == x.neg {
			return z.Set(x)
		}
		return z.Set(y)
	}
	if x.Cmp(y)*sel >= 0 {
		return z.Set(x).checkRange()
	}
	return z.Set(y).checkRange()
}
