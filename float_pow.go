// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math/big"
	"math/bits"
)

// maxZivIter bounds the number of precision increases in approximation loops.
// After the last attempt, the current approximation is returned.
const maxZivIter = 10

// PowUint64 sets z to the rounded value of x**n and returns z.
// If z's precision is 0, it is changed to x's precision, or DefaultPrec if x
// has no precision.
//
// Special cases are:
//
//	z.PowUint64(x, 0)     = 1 for any x, even a NaN
//	z.PowUint64(±0, n)    = ±0 for odd n, +0 for even n
//	z.PowUint64(±Inf, n)  = ±Inf for odd n, +Inf for even n
func (z *Float) PowUint64(x *Float, n uint64) *Float {
	var nb big.Int
	return z.pow(x, nb.SetUint64(n))
}

// PowInt64 sets z to the rounded value of x**n and returns z.
//
// Special cases for n < 0 are:
//
//	z.PowInt64(±0, n)    = ±Inf for odd n, +Inf for even n
//	z.PowInt64(±Inf, n)  = ±0 for odd n, +0 for even n
//
// Other cases are as for PowUint64.
func (z *Float) PowInt64(x *Float, n int64) *Float {
	var nb big.Int
	return z.pow(x, nb.SetInt64(n))
}

// PowInt sets z to the rounded value of x**n and returns z. Special cases are
// as for PowInt64.
func (z *Float) PowInt(x *Float, n *big.Int) *Float {
	return z.pow(x, n)
}

// Uint64PowUint64 sets z to the rounded value of x**n and returns z. If z's
// precision is 0, it is changed to 64.
func (z *Float) Uint64PowUint64(x, n uint64) *Float {
	var t Float
	return z.PowUint64(t.SetUint64(x), n)
}

func (z *Float) pow(x *Float, n *big.Int) *Float {
	if z.prec == 0 {
		z.prec = x.prec
		if z.prec == 0 {
			z.prec = DefaultPrec
		}
	}
	if n.Sign() == 0 {
		return z.SetInt64(1)
	}
	negn := n.Sign() < 0
	neg := x.neg && n.Bit(0) == 1

	switch x.form {
	case nan:
		return z.SetNaN()
	case zero:
		if negn {
			return z.SetInf(neg)
		}
		return z.SetZero(neg)
	case inf:
		if negn {
			return z.SetZero(neg)
		}
		return z.SetInf(neg)
	}

	var an big.Int
	an.Abs(n)

	b := uint64(x.MinPrec())
	if b == 1 {
		// |x| = 2**(x.exp-1)
		var eb big.Int
		eb.SetInt64(x.exp - 1)
		eb.Mul(&eb, n)
		e := clampExp(bigExp(&eb))
		z.acc = Exact
		z.form = finite
		z.neg = neg
		z.mant = z.mant.setWord(1 << (_W - 1))
		z.exp = e + 1
		return z.checkRange()
	}

	// exact result if small enough
	if an.IsUint64() {
		k := an.Uint64()
		if hi, lo := bits.Mul64(k, b); hi == 0 && lo <= max(2*uint64(z.prec)+64, 4096) {
			m, e := x.intMant()
			t := Float{neg: neg}
			pm := nat(nil).expNN(m, k)
			t.prec = uint32(len(pm)) * _W
			t.setBits(pm, satMul(e, int64(k)), 0)
			if negn {
				return z.Quo(one, &t)
			}
			return z.Set(&t).checkRange()
		}
	}

	w := z.prec + uint32(an.BitLen()) + 16
	for i := 0; ; i++ {
		t := Float{prec: w}
		out := t.powApprox(x, &an)
		if negn {
			out = -out
		}
		switch out {
		case 1:
			return z.setOutOfRange(neg, MaxExp+1)
		case -1:
			return z.setOutOfRange(neg, MinExp-2)
		}
		t.neg = neg
		err := int64(w) - int64(an.BitLen()) - 3
		if negn {
			var q Float
			q.prec = w
			q.Quo(one, &t)
			t.Swap(&q)
			err--
		}
		if err > 0 && t.CanRound(uint(err), uint(z.prec), z.mode) || i == maxZivIter {
			return z.Set(&t).checkRange()
		}
		w += w / 2
	}
}

// powApprox sets z to an approximation of |x|**n at z's precision computed by
// left-to-right binary powering, for a nonzero finite x and n > 0. The
// relative error is less than 2**(n.BitLen()+2-z.prec).
//
// It stops as soon as the intermediate exponent shows that the result
// overflows (returns 1) or underflows (returns -1) the platform exponent
// range, and returns 0 otherwise.
func (z *Float) powApprox(x *Float, n *big.Int) int {
	var ax Float
	ax.prec = z.prec
	ax.Abs(x)
	z.Set(&ax)
	for i := n.BitLen() - 2; i >= 0; i-- {
		z.umul(z, z)
		if out := z.expOut(); out != 0 {
			return out
		}
		if n.Bit(i) == 1 {
			z.umul(z, &ax)
			if out := z.expOut(); out != 0 {
				return out
			}
		}
	}
	return 0
}

// expOut reports whether z's exponent is above (1) or well below (-1) the
// platform exponent range.
func (z *Float) expOut() int {
	switch {
	case z.exp > MaxExp:
		return 1
	case z.exp < MinExp-1:
		return -1
	}
	return 0
}

// setOutOfRange sets z to a magnitude 2**(e-1) with the given sign, where e
// is outside the platform exponent range, and brings it back into range.
func (z *Float) setOutOfRange(neg bool, e int64) *Float {
	z.acc = Exact
	z.form = finite
	z.neg = neg
	z.mant = z.mant.setWord(1 << (_W - 1))
	z.exp = e
	return z.checkRange()
}

// bigExp returns x clamped to the int64 range.
func bigExp(x *big.Int) int64 {
	if x.IsInt64() {
		return x.Int64()
	}
	if x.Sign() < 0 {
		return -1 << 63
	}
	return 1<<63 - 1
}
