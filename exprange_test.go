// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRangeOverflow(t *testing.T) {
	for _, test := range []struct {
		mode RoundingMode
		x    float64
		inf  bool
		acc  Accuracy
	}{
		{ToNearestEven, 2000, true, Above},
		{ToNearestAway, 2000, true, Above},
		{AwayFromZero, 2000, true, Above},
		{ToPositiveInf, 2000, true, Above},
		{ToZero, 2000, false, Below},
		{Faithful, 2000, false, Below},
		{ToNegativeInf, 2000, false, Below},
		{ToNegativeInf, -2000, true, Below},
		{ToPositiveInf, -2000, false, Above},
	} {
		z := new(Float).SetMode(test.mode).SetFloat64(test.x)
		f := z.CheckRange(-10, 10)
		assert.Equal(t, Overflow|Inexact, f, "%s", test.mode)
		assert.Equal(t, test.inf, z.IsInf(), "%g in %s", test.x, test.mode)
		assert.Equal(t, test.acc, z.Acc(), "%g in %s", test.x, test.mode)
		assert.Equal(t, test.x < 0, z.Signbit())
		if !test.inf {
			want := 1024 - 0x1p-43
			if test.x < 0 {
				want = -want
			}
			assert.Equal(t, want, must64(z), "%g in %s", test.x, test.mode)
		}
	}

	// overflow after an operation
	z := new(Float).SetMode(ToZero)
	z.Mul(NewFloat(1000), NewFloat(2))
	require.Equal(t, Exact, z.Acc())
	f := z.CheckRange(-10, 10)
	assert.Equal(t, Overflow|Inexact, f)
	assert.Equal(t, 1024-0x1p-43, must64(z))
	assert.Equal(t, Below, z.Acc())
}

func TestCheckRangeUnderflow(t *testing.T) {
	for _, test := range []struct {
		mode RoundingMode
		x    float64
		acc  Accuracy // input accuracy
		want float64
	}{
		{ToNearestEven, 3 * 0x1p-13, Exact, 0x1p-11},
		{ToNearestEven, 0x1p-12, Exact, 0},       // midpoint
		{ToNearestEven, 0x1p-12, Below, 0x1p-11}, // exact value was larger
		{ToNearestEven, 0x1p-12, Above, 0},
		{ToNearestAway, 0x1p-12, Exact, 0x1p-11},
		{ToNearestAway, 0x1p-12, Above, 0},
		{ToNearestEven, 0x1p-13, Exact, 0},
		{ToZero, 3 * 0x1p-13, Exact, 0},
		{AwayFromZero, 0x1p-100, Exact, 0x1p-11},
		{ToPositiveInf, -0x1p-100, Exact, -0},
		{ToNegativeInf, -0x1p-100, Exact, -0x1p-11},
	} {
		z := new(Float).SetMode(test.mode).SetFloat64(test.x)
		z.acc = test.acc
		f := z.CheckRange(-10, 10)
		assert.Equal(t, Underflow|Inexact, f, "%g in %s", test.x, test.mode)
		assert.Equal(t, test.want, must64(z), "%g (%s) in %s", test.x, test.acc, test.mode)
		assert.Equal(t, math.Signbit(test.x), z.Signbit())
		if z.Sign() == 0 {
			assert.Equal(t, makeAcc(test.x < 0), z.Acc())
		} else {
			assert.Equal(t, makeAcc(test.x > 0), z.Acc())
		}
	}

	// in range
	z := NewFloat(0x1p-10)
	assert.Equal(t, Flags(0), z.CheckRange(-10, 10))
	assert.Equal(t, Flags(0), new(Float).SetInf(false).CheckRange(-10, 10))
}

func TestSubnormalize(t *testing.T) {
	// IEEE double: denormals are multiples of 2**-1074
	const emin = -1073
	for _, test := range []struct {
		x    *Float
		acc  Accuracy
		mode RoundingMode
		want float64
		flag Flags
	}{
		{new(Float).SetInt64Exp2(3, -1075), Exact, ToNearestEven, 0x1p-1073, Underflow | Inexact},
		{new(Float).SetInt64Exp2(3, -1075), Above, ToNearestEven, 0x1p-1074, Underflow | Inexact},
		{new(Float).SetInt64Exp2(3, -1075), Exact, ToZero, 0x1p-1074, Underflow | Inexact},
		{new(Float).SetInt64Exp2(5, -1076), Exact, ToNearestEven, 0x1p-1074, Underflow | Inexact},
		{new(Float).SetInt64Exp2(5, -1074), Exact, ToNearestEven, 5 * 0x1p-1074, 0},
		{new(Float).SetInt64Exp2(1, -1022), Exact, ToNearestEven, 0x1p-1022, 0},
		{new(Float).SetInt64Exp2(1, -1074), Below, ToNearestEven, 0x1p-1074, Underflow | Inexact},
	} {
		z := new(Float).SetPrec(53).SetMode(test.mode).Set(test.x)
		z.acc = test.acc
		f := z.Subnormalize(emin)
		assert.Equal(t, test.flag, f, "%s (%s) in %s", test.x.Text('p', 0), test.acc, test.mode)
		assert.Equal(t, test.want, must64(z), "%s (%s) in %s", test.x.Text('p', 0), test.acc, test.mode)
	}

	// agrees with float64 denormal arithmetic
	for _, test := range []struct{ x, y float64 }{
		{0x1p-1000, 0x1.8p-70},
		{0x1.123456789p-1030, 0x1.fp-30},
		{math.SmallestNonzeroFloat64, 0.75},
		{3 * math.SmallestNonzeroFloat64, 0.5},
	} {
		z := new(Float).SetPrec(53)
		z.Mul(NewFloat(test.x), NewFloat(test.y))
		z.Subnormalize(emin)
		assert.Equal(t, test.x*test.y, must64(z), "%g × %g", test.x, test.y)
	}
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "overflow|inexact", (Overflow | Inexact).String())
	assert.True(t, (Underflow | Inexact).Has(Inexact))
	assert.False(t, Inexact.Has(Underflow|Inexact))
}
