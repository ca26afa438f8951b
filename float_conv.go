// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/big"
)

// Uint64 returns the unsigned integer resulting from truncating x
// towards zero. If 0 <= x <= math.MaxUint64, the result is Exact
// if x is an integer and Below otherwise.
// The result is (0, Above) for x < 0, and (math.MaxUint64, Below)
// for x > math.MaxUint64. A NaN x yields (0, Exact); use FitsUint64 to detect
// it.
func (x *Float) Uint64() (uint64, Accuracy) {
	if debugFloat {
		x.validate()
	}

	switch x.form {
	case finite:
		if x.neg {
			return 0, Above
		}
		// 0 < x < +Inf
		if x.exp <= 0 {
			// 0 < x < 1
			return 0, Below
		}
		// 1 <= x < Inf
		if x.exp <= 64 {
			// u = trunc(x) fits into a uint64
			u := msb64(x.mant) >> (64 - uint32(x.exp))
			if x.MinPrec() <= uint(x.exp) {
				return u, Exact
			}
			return u, Below // x truncated
		}
		// x too large
		return math.MaxUint64, Below

	case zero, nan:
		return 0, Exact

	case inf:
		if x.neg {
			return 0, Above
		}
		return math.MaxUint64, Below
	}

	panic("unreachable")
}

// Int64 returns the integer resulting from truncating x towards zero.
// If math.MinInt64 <= x <= math.MaxInt64, the result is Exact if x is
// an integer, and Above (x < 0) or Below (x > 0) otherwise.
// The result is (math.MinInt64, Above) for x < math.MinInt64,
// and (math.MaxInt64, Below) for x > math.MaxInt64. A NaN x yields (0, Exact).
func (x *Float) Int64() (int64, Accuracy) {
	if debugFloat {
		x.validate()
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf
		acc := makeAcc(x.neg)
		if x.exp <= 0 {
			// 0 < |x| < 1
			return 0, acc
		}
		// x.exp > 0

		// 1 <= |x| < +Inf
		if x.exp <= 63 {
			// i = trunc(x) fits into an int64 (excluding math.MinInt64)
			i := int64(msb64(x.mant) >> (64 - uint32(x.exp)))
			if x.neg {
				i = -i
			}
			if x.MinPrec() <= uint(x.exp) {
				return i, Exact
			}
			return i, acc // x truncated
		}
		if x.neg {
			// check for special case x == math.MinInt64 (i.e., x == -(0.5 << 64))
			if x.exp == 64 && x.MinPrec() == 1 {
				acc = Exact
			}
			return math.MinInt64, acc
		}
		// x too large
		return math.MaxInt64, Below

	case zero, nan:
		return 0, Exact

	case inf:
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}

	panic("unreachable")
}

// roundedInt returns x rounded to an integer in x's rounding mode, with
// enough precision for any 64-bit integer.
func (x *Float) roundedInt() *Float {
	var t Float
	t.prec = umax32(x.prec, 64)
	return t.rint(x, x.mode)
}

// Int64Mode is like Int64 but rounds x to an integer in x's rounding mode
// instead of truncating it.
func (x *Float) Int64Mode() (int64, Accuracy) {
	t := x.roundedInt()
	i, acc := t.Int64()
	if acc == Exact {
		acc = t.acc
	}
	return i, acc
}

// Uint64Mode is like Uint64 but rounds x to an integer in x's rounding mode
// instead of truncating it.
func (x *Float) Uint64Mode() (uint64, Accuracy) {
	t := x.roundedInt()
	u, acc := t.Uint64()
	if acc == Exact {
		acc = t.acc
	}
	return u, acc
}

// FitsInt64 reports whether x, rounded to an integer in x's rounding mode,
// fits in an int64.
func (x *Float) FitsInt64() bool { return x.fitsInt(math.MinInt64, math.MaxInt64) }

// FitsInt32 reports whether x, rounded to an integer in x's rounding mode,
// fits in an int32.
func (x *Float) FitsInt32() bool { return x.fitsInt(math.MinInt32, math.MaxInt32) }

// FitsInt16 reports whether x, rounded to an integer in x's rounding mode,
// fits in an int16.
func (x *Float) FitsInt16() bool { return x.fitsInt(math.MinInt16, math.MaxInt16) }

// FitsUint64 reports whether x, rounded to an integer in x's rounding mode,
// fits in a uint64.
func (x *Float) FitsUint64() bool { return x.fitsUint(math.MaxUint64) }

// FitsUint32 reports whether x, rounded to an integer in x's rounding mode,
// fits in a uint32.
func (x *Float) FitsUint32() bool { return x.fitsUint(math.MaxUint32) }

// FitsUint16 reports whether x, rounded to an integer in x's rounding mode,
// fits in a uint16.
func (x *Float) FitsUint16() bool { return x.fitsUint(math.MaxUint16) }

func (x *Float) fitsInt(lo, hi int64) bool {
	switch x.form {
	case zero:
		return true
	case nan, inf:
		return false
	}
	t := x.roundedInt()
	return t.CmpInt64(lo) >= 0 && t.CmpInt64(hi) <= 0
}

func (x *Float) fitsUint(hi uint64) bool {
	switch x.form {
	case zero:
		return true
	case nan, inf:
		return false
	}
	t := x.roundedInt()
	// -0 fits
	return t.Sign() >= 0 && t.CmpUint64(hi) <= 0
}

// ieee returns the bits of the IEEE 754 binary value with mbits explicit
// mantissa bits and ebits exponent bits nearest to x in x's rounding mode,
// together with the accuracy of the conversion. Denormal results are
// supported; values out of range overflow to ±Inf or the largest finite value,
// or underflow to ±0 or the smallest denormal, following the rounding mode.
func (x *Float) ieee(mbits, ebits int) (uint64, Accuracy) {
	var (
		bias  = 1<<(ebits-1) - 1 // exponent bias
		emin  = 1 - bias         // smallest unbiased exponent (normal)
		emax  = bias             // largest unbiased exponent (normal)
		sbit  = uint64(1) << (mbits + ebits)
		ibits = uint64(1<<ebits-1) << mbits
	)

	var sign uint64
	if x.neg {
		sign = sbit
	}

	switch x.form {
	case zero:
		return sign, Exact
	case inf:
		return sign | ibits, Exact
	case nan:
		return sign | ibits | 1<<(mbits-1), Exact
	}

	// x's mantissa m is 0.5 <= m < 1.0; compute exponent e for an IEEE
	// mantissa 1.0 <= m < 2.0.
	e := x.exp - 1

	// precision p of the IEEE mantissa; denormals have fewer bits
	p := int64(mbits + 1)
	if e < int64(emin) {
		p = int64(mbits+1-emin) + e
		if p <= 0 {
			// |x| < 2**dmin: the result is ±0 or the smallest denormal
			var up bool
			switch x.mode {
			case ToNearestEven, ToNearestAway:
				// the midpoint 2**(dmin-1) has p == 0
				up = p == 0 && (x.MinPrec() > 1 || x.mode == ToNearestAway)
			case AwayFromZero:
				up = true
			default:
				up = !x.roundsTowardZero()
			}
			if up {
				return sign | 1, makeAcc(!x.neg)
			}
			return sign, makeAcc(x.neg)
		}
	}
	// p > 0

	var r Float
	r.prec = uint32(p)
	r.mode = x.mode
	r.Set(x)
	e = r.exp - 1

	if e > int64(emax) {
		// overflow
		if x.roundsTowardZero() {
			return sign | (ibits - 1), makeAcc(x.neg)
		}
		return sign | ibits, makeAcc(!x.neg)
	}

	var bexp, mant uint64
	if e < int64(emin) {
		// denormal: rounding did not make the number normal
		p = int64(mbits+1-emin) + e
		mant = msb64(r.mant) >> uint(64-p)
	} else {
		bexp = uint64(e+int64(bias)) << mbits
		mant = msb64(r.mant) >> uint(64-1-mbits) & (1<<mbits - 1) // cut off msb (implicit 1 bit)
	}
	return sign | bexp | mant, r.acc
}

// Float64 returns the float64 value nearest to x in x's rounding mode and
// the accuracy of the conversion. Values too small or too large for a float64
// underflow or overflow according to the rounding mode; denormal float64
// values are produced where needed. A NaN x yields a float64 NaN.
func (x *Float) Float64() (float64, Accuracy) {
	b, acc := x.ieee(52, 11)
	return math.Float64frombits(b), acc
}

// Float32 returns the float32 value nearest to x in x's rounding mode and
// the accuracy of the conversion. See Float64.
func (x *Float) Float32() (float32, Accuracy) {
	b, acc := x.ieee(23, 8)
	return math.Float32frombits(uint32(b)), acc
}

// Float64Exp2 returns d and exp such that x ≈ d × 2**exp with 0.5 <= |d| < 1,
// d being the mantissa of x rounded to 53 bits in x's rounding mode. For
// zero, infinite and NaN values, d is the corresponding float64 and exp is 0.
func (x *Float) Float64Exp2() (d float64, exp int64) {
	if x.form != finite {
		d, _ = x.Float64()
		return d, 0
	}
	var m Float
	m.prec = 53
	m.mode = x.mode
	m.Set(x)
	exp = m.exp
	m.exp = 0
	d, _ = m.Float64()
	return d, exp
}

// Int returns the result of truncating x towards zero;
// or nil if x is an infinity or a NaN.
// The result is Exact if x.IsInt(); otherwise it is Below
// for x > 0, and Above for x < 0.
// If a non-nil *big.Int argument z is provided, Int stores
// the result in z instead of allocating a new Int.
func (x *Float) Int(z *big.Int) (*big.Int, Accuracy) {
	if debugFloat {
		x.validate()
	}

	if z == nil && x.form <= finite {
		z = new(big.Int)
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf
		acc := makeAcc(x.neg)
		if x.exp <= 0 {
			// 0 < |x| < 1
			return z.SetInt64(0), acc
		}
		// x.exp > 0

		// 1 <= |x| < +Inf
		// determine minimum required precision for x
		allBits := uint64(len(x.mant)) * _W
		exp := uint64(x.exp)
		if uint64(x.MinPrec()) <= exp {
			acc = Exact
		}
		// shift mantissa as needed
		m := nat(z.Bits())
		switch {
		case exp > allBits:
			m = m.shl(x.mant, uint(exp-allBits))
		default:
			m = m.set(x.mant)
		case exp < allBits:
			m = m.shr(x.mant, uint(allBits-exp))
		}
		z.SetBits(m)
		if x.neg {
			z.Neg(z)
		}
		return z, acc

	case zero:
		return z.SetInt64(0), Exact

	case inf:
		return nil, makeAcc(x.neg)
	}

	return nil, Exact
}

// IntExp2 returns an integer m holding the x.Prec() leading mantissa bits of
// x, and an exponent e such that x == m × 2**e exactly. The exponent may lie
// outside the exponent range. For ±0, m is 0 and e is 0; for ±Inf and NaN, m
// is nil. If a non-nil *big.Int argument z is provided, IntExp2 stores the
// result in z.
func (x *Float) IntExp2(z *big.Int) (*big.Int, int64) {
	switch x.form {
	case zero:
		if z == nil {
			z = new(big.Int)
		}
		return z.SetInt64(0), 0
	case inf, nan:
		return nil, 0
	}
	if z == nil {
		z = new(big.Int)
	}
	allBits := uint64(len(x.mant)) * _W
	m := nat(z.Bits())
	e := x.exp - int64(x.prec)
	if allBits >= uint64(x.prec) {
		m = m.shr(x.mant, uint(allBits-uint64(x.prec)))
	} else {
		m = m.shl(x.mant, uint(uint64(x.prec)-allBits))
	}
	z.SetBits(m)
	if x.neg {
		z.Neg(z)
	}
	return z, e
}

// Rat returns the rational number corresponding to x;
// or nil if x is an infinity or a NaN.
// The result is Exact if x is not an Inf or NaN.
// If a non-nil *big.Rat argument z is provided, Rat stores
// the result in z instead of allocating a new Rat.
func (x *Float) Rat(z *big.Rat) (*big.Rat, Accuracy) {
	if debugFloat {
		x.validate()
	}

	if z == nil && x.form <= finite {
		z = new(big.Rat)
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf
		allBits := int64(len(x.mant)) * _W
		var a, b big.Int
		a.SetBits(nat(nil).set(x.mant))
		if x.neg {
			a.Neg(&a)
		}
		switch {
		case x.exp > allBits:
			a.Lsh(&a, uint(x.exp-allBits))
			z.SetInt(&a)
		default:
			z.SetInt(&a)
		case x.exp < allBits:
			b.Lsh(big.NewInt(1), uint(allBits-x.exp))
			z.SetFrac(&a, &b)
		}
		return z, Exact

	case zero:
		return z.SetInt64(0), Exact

	case inf:
		return nil, makeAcc(x.neg)
	}

	return nil, Exact
}

// BigFloat returns x converted to a *big.Float rounded in z's rounding mode,
// or nil if x is a NaN. If z's precision is 0, it is changed to x's precision.
// Values outside the exponent range of big.Float overflow to ±Inf or underflow
// to ±0. If a non-nil z is provided, BigFloat stores the result in z.
func (x *Float) BigFloat(z *big.Float) (*big.Float, big.Accuracy) {
	if x.form == nan {
		return nil, big.Exact
	}
	if z == nil {
		z = new(big.Float)
	}
	if z.Prec() == 0 {
		z.SetPrec(uint(umax32(x.prec, MinPrec)))
	}
	switch x.form {
	case zero:
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
		return z, big.Exact
	case inf:
		return z.SetInf(x.neg), big.Exact
	}
	m, e := x.intMant()
	var i big.Int
	i.SetBits(m)
	if x.neg {
		i.Neg(&i)
	}
	z.SetInt(&i)
	acc := z.Acc()
	const lim = 1 << 40
	// SetMantExp resets the accuracy unless the exponent is out of range
	if z.SetMantExp(z, int(max(min(e, lim), -lim))).Acc() != big.Exact {
		acc = z.Acc()
	}
	return z, acc
}
