// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math/big"
)

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// Cmp returns 0 if x or y is a NaN; use Unordered to tell such results
// apart.
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		return 0
	}

	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
func (x *Float) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1. It
// returns 0 if x or y is a NaN.
func (x *Float) CmpAbs(y *Float) int {
	if x.form == nan || y.form == nan {
		return 0
	}
	if x.form != y.form {
		if x.form < y.form {
			return -1
		}
		return 1
	}
	if x.form == finite {
		return x.ucmp(y)
	}
	return 0
}

// CmpInt64 compares x and y as Cmp does.
func (x *Float) CmpInt64(y int64) int {
	var t Float
	return x.Cmp(t.SetInt64(y))
}

// CmpUint64 compares x and y as Cmp does.
func (x *Float) CmpUint64(y uint64) int {
	var t Float
	return x.Cmp(t.SetUint64(y))
}

// CmpFloat64 compares x and y as Cmp does. A NaN y compares as 0.
func (x *Float) CmpFloat64(y float64) int {
	var t Float
	return x.Cmp(t.SetFloat64(y))
}

// CmpInt compares x and y as Cmp does.
func (x *Float) CmpInt(y *big.Int) int {
	var t Float
	return x.Cmp(t.SetInt(y))
}

// CmpRat compares x and the exact rational value y as Cmp does.
func (x *Float) CmpRat(y *big.Rat) int {
	switch x.form {
	case nan:
		return 0
	case inf:
		if x.neg {
			return -1
		}
		return 1
	}
	// compare x*b with a, both exact
	var a, b Float
	a.SetInt(y.Num())
	b.SetInt(y.Denom())
	if x.form == zero {
		return -a.Sign()
	}
	return mulExact(x, &b, x.neg).Cmp(&a)
}

// CmpInt64Exp2 compares x and y × 2**e as Cmp does.
func (x *Float) CmpInt64Exp2(y int64, e int64) int {
	var t Float
	t.SetInt64(y)
	if t.form == finite {
		t.exp = clampExp(satAdd(t.exp, e))
	}
	return x.Cmp(&t)
}

// CmpUint64Exp2 compares x and y × 2**e as Cmp does.
func (x *Float) CmpUint64Exp2(y uint64, e int64) int {
	var t Float
	t.SetUint64(y)
	if t.form == finite {
		t.exp = clampExp(satAdd(t.exp, e))
	}
	return x.Cmp(&t)
}

// Equal reports whether x == y. It is false if x or y is a NaN.
func (x *Float) Equal(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) == 0
}

// Less reports whether x < y. It is false if x or y is a NaN.
func (x *Float) Less(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) < 0
}

// LessEqual reports whether x <= y. It is false if x or y is a NaN.
func (x *Float) LessEqual(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) <= 0
}

// Greater reports whether x > y. It is false if x or y is a NaN.
func (x *Float) Greater(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) > 0
}

// GreaterEqual reports whether x >= y. It is false if x or y is a NaN.
func (x *Float) GreaterEqual(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) >= 0
}

// LessGreater reports whether x < y or x > y. It is false if x or y is a NaN.
func (x *Float) LessGreater(y *Float) bool {
	return !x.Unordered(y) && x.Cmp(y) != 0
}

// Unordered reports whether x or y is a NaN.
func (x *Float) Unordered(y *Float) bool {
	return x.form == nan || y.form == nan
}

// Eq reports whether the n leading mantissa bits of x and y are equal, x and y
// being nonzero finite numbers of same sign and exponent. Eq also returns true
// if both are zeros, or infinities of the same sign. It returns false
// otherwise, in particular if x or y is a NaN.
func (x *Float) Eq(y *Float, n uint) bool {
	switch {
	case x.form == nan || y.form == nan || x.form != y.form:
		return false
	case x.form == zero:
		return true
	case x.form == inf:
		return x.neg == y.neg
	case x.neg != y.neg || x.exp != y.exp:
		return false
	}
	n = min(n, uint(max(len(x.mant), len(y.mant)))*_W)
	for i := uint(0); i < n; i++ {
		if x.topBit(i) != y.topBit(i) {
			return false
		}
	}
	return true
}

// topBit returns the i-th mantissa bit of x, counting from the msb at 0.
func (x *Float) topBit(i uint) uint {
	bits := uint(len(x.mant)) * _W
	if i >= bits {
		return 0
	}
	return x.mant.bit(bits - 1 - i)
}
