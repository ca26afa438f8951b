// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/bits"
)

// intMant returns the mantissa of a nonzero finite x as an integer m, without
// trailing zero words, together with the exponent e such that |x| = m × 2**e.
func (x *Float) intMant() (m nat, e int64) {
	i := 0
	for x.mant[i] == 0 {
		i++
	}
	m = x.mant[i:]
	return m, x.exp - int64(len(m))*_W
}

// Sqrt sets z to the rounded square root of x, and returns it.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and rounding
// mode.
//
// The result is NaN if x < 0 or x is a NaN; Sqrt(±0) = ±0 and Sqrt(+Inf) =
// +Inf.
func (z *Float) Sqrt(x *Float) *Float {
	if debugFloat {
		x.validate()
	}

	if z.prec == 0 {
		z.prec = x.prec
	}

	switch {
	case x.form == nan || x.neg && x.form != zero:
		return z.SetNaN()
	case x.form != finite:
		return z.setSigned(x, x.neg)
	}
	z.neg = false
	z.uroot(x, 2)
	return z.checkRange()
}

// SqrtUint64 sets z to the rounded square root of x, and returns it. If z's
// precision is 0, it is changed to 64.
func (z *Float) SqrtUint64(x uint64) *Float {
	var t Float
	return z.Sqrt(t.SetUint64(x))
}

// Cbrt sets z to the rounded cube root of x, and returns it.
func (z *Float) Cbrt(x *Float) *Float {
	return z.Root(x, 3)
}

// Root sets z to the rounded k-th root of x, and returns it.
//
// For odd k, the root of a negative x is negative. For even k, the root of a
// negative x is NaN. Root(x, 0) is NaN, Root(±0, k) is +0 for even k and ±0
// for odd k, and Root(-Inf, k) is -Inf for odd k.
func (z *Float) Root(x *Float, k uint64) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	odd := k&1 != 0
	switch {
	case k == 0 || x.form == nan || x.neg && x.form != zero && !odd:
		return z.SetNaN()
	case k == 1:
		return z.Set(x).checkRange()
	case x.form == zero:
		return z.SetZero(x.neg && odd)
	case x.form == inf:
		return z.SetInf(x.neg)
	}
	z.neg = x.neg
	z.uroot(x, k)
	return z.checkRange()
}

// rootBitsMax bounds the size in bits of the integer whose k-th root is taken
// to compute an exactly truncated root.
const rootBitsMax = 1 << 22

// uroot sets z to the k-th root of |x| rounded to z's precision, for a
// nonzero finite x and k >= 2. z.neg must be set.
func (z *Float) uroot(x *Float, k uint64) {
	p := uint64(z.prec)
	if hi, lo := bits.Mul64(k, p+2); hi != 0 || lo > rootBitsMax {
		z.rootNewton(x, k)
		return
	}
	m, e := x.intMant()

	// Shift m left by s so that (e - s) is a multiple of k and the root has
	// at least p+2 bits, the last of which are followed by a sticky bit.
	var s uint64
	if need := k*(p+2) + k; uint64(m.bitLen()) < need {
		s = need - uint64(m.bitLen())
	}
	ki := int64(k)
	if r := (e - int64(s)) % ki; r != 0 {
		if r < 0 {
			r += ki
		}
		s += uint64(r)
	}
	// for large x.prec, m.bitLen() >= need and s < k

	t := nat(nil).shl(m, uint(s))
	r := nat(nil).root(t, k)
	var sbit uint
	check := getNat(0)
	defer putNat(check)
	if k == 2 {
		*check = check.mul(r, r)
	} else {
		*check = check.expNN(r, k)
	}
	if check.cmp(t) != 0 {
		sbit = 1
	}
	z.setBits(r, (e-int64(s))/ki, sbit)
}

// rootNewton sets z to an approximation of the k-th root of |x| rounded to
// z's precision, for a k large enough that exact integer roots are too
// expensive. The iteration
//
//	y' = y + y(|x|/y**k - 1)/k
//
// starts from a float64 estimate and runs until the correction vanishes at
// the working precision.
func (z *Float) rootNewton(x *Float, k uint64) {
	neg := z.neg
	ax := new(Float).Abs(x)
	kb := uint32(bits.Len64(k))

	// log2|x| / k = fq + frac
	m, _ := new(Float).SetMantExp(ax, -ax.exp).Float64()
	var (
		fq int64
		fr float64
		e  = ax.exp
	)
	if k <= math.MaxInt64 {
		ki := int64(k)
		fq = e / ki
		rem := e % ki
		if rem < 0 {
			rem += ki
			fq--
		}
		fr = float64(rem)
	} else if e >= 0 {
		fr = float64(e)
	} else {
		fq = -1
		fr = float64(e) + float64(k)
	}
	frac := (fr + math.Log2(m)) / float64(k)

	w := z.prec + kb + 32
	for i := 0; ; i++ {
		y := New(uint(w)).SetFloat64(math.Exp2(frac))
		y.exp += fq
		var t, q Float
		t.prec, q.prec = w, w
		for j := 0; j < 512; j++ {
			t.PowUint64(y, k)
			q.Quo(ax, &t)
			q.Sub(&q, one)
			q.QuoUint64(&q, k)
			q.Mul(&q, y)
			y.Add(y, &q)
			if q.form != finite || q.exp <= y.exp-int64(w)+2 {
				break
			}
		}
		y.neg = neg
		if y.CanRound(uint(w-kb-6), uint(z.prec), z.mode) || i == 8 {
			z.Set(y)
			return
		}
		w += w / 2
	}
}

// one is 1. Its initializer must not call NewFloat, which reaches pow.
var one = &Float{prec: 2, form: finite, mant: nat{1 << (_W - 1)}, exp: 1}

// RecSqrt sets z to the rounded reciprocal square root of x, and returns it.
//
// RecSqrt(±0) = +Inf, RecSqrt(+Inf) = +0, and the result is NaN for x < 0 or
// a NaN x.
func (z *Float) RecSqrt(x *Float) *Float {
	if z.prec == 0 {
		z.prec = x.prec
	}
	switch {
	case x.form == nan || x.neg && x.form != zero:
		return z.SetNaN()
	case x.form == zero:
		return z.SetInf(false)
	case x.form == inf:
		return z.SetZero(false)
	}
	z.neg = false
	m, e := x.intMant()
	if e&1 != 0 {
		m = nat(nil).shl(m, 1)
		e--
	}
	// 1/sqrt(m 2**e) = 2**(-e/2) / sqrt(m), and
	// s = ⌊sqrt(⌊2**(2n)/m⌋)⌋ = ⌊2**n / sqrt(m)⌋ has at least p+2 bits.
	n := uint(z.prec) + 3 + uint(m.bitLen()+1)/2
	num := nat(nil).shl(nat{1}, 2*n)
	q, _ := nat(nil).div(nil, num, m)
	s := nat(nil).sqrt(q)
	var sbit uint
	if check := nat(nil).mul(s, s); nat(nil).mul(check, m).cmp(num) != 0 {
		sbit = 1
	}
	z.setBits(s, -int64(n)-e/2, sbit)
	return z.checkRange()
}
