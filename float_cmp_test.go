// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatCmp(t *testing.T) {
	vals := []float64{math.Inf(-1), -1e300, -1, -0x1p-1074, 0, 0x1p-1074, 0.5, 1, 1e300, math.Inf(1)}
	for i, a := range vals {
		for j, b := range vals {
			x, y := NewFloat(a), NewFloat(b)
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, x.Cmp(y), "Cmp(%g, %g)", a, b)
			assert.Equal(t, a < b, x.Less(y))
			assert.Equal(t, a <= b, x.LessEqual(y))
			assert.Equal(t, a > b, x.Greater(y))
			assert.Equal(t, a >= b, x.GreaterEqual(y))
			assert.Equal(t, a == b, x.Equal(y))
			assert.Equal(t, a != b, x.LessGreater(y))
			assert.Equal(t, want, x.CmpFloat64(b))
		}
	}

	// signed zeros compare equal
	assert.Equal(t, 0, new(Float).SetZero(true).Cmp(new(Float)))

	nan := new(Float).SetNaN()
	x := NewFloat(1)
	assert.Equal(t, 0, nan.Cmp(x))
	assert.True(t, nan.Unordered(x))
	assert.True(t, x.Unordered(nan))
	assert.False(t, x.Unordered(x))
	assert.False(t, nan.Equal(nan))
	assert.False(t, nan.Less(x))
	assert.False(t, x.GreaterEqual(nan))
	assert.False(t, nan.LessGreater(x))
}

func TestFloatCmpAbs(t *testing.T) {
	for _, test := range []struct {
		x, y float64
		want int
	}{
		{-2, 1, 1},
		{1, -2, -1},
		{-3, 3, 0},
		{0, math.Copysign(0, -1), 0},
		{0, -1e-300, -1},
		{math.Inf(-1), 1e300, 1},
		{math.Inf(-1), math.Inf(1), 0},
	} {
		assert.Equal(t, test.want, NewFloat(test.x).CmpAbs(NewFloat(test.y)), "CmpAbs(%g, %g)", test.x, test.y)
	}
	assert.Equal(t, 0, new(Float).SetNaN().CmpAbs(NewFloat(1)))
}

func TestFloatCmpMixed(t *testing.T) {
	third := new(Float).Quo(NewFloat(1), NewFloat(3))
	assert.Equal(t, -1, third.CmpRat(big.NewRat(1, 3)))
	assert.Equal(t, 1, new(Float).SetMode(AwayFromZero).Quo(NewFloat(1), NewFloat(3)).CmpRat(big.NewRat(1, 3)))
	assert.Equal(t, 0, NewFloat(-0.375).CmpRat(big.NewRat(-3, 8)))
	assert.Equal(t, 1, new(Float).CmpRat(big.NewRat(-1, 7)))
	assert.Equal(t, -1, new(Float).SetInf(true).CmpRat(big.NewRat(-1, 7)))

	x := new(Float).SetPrec(200).SetInt64Exp2(3, 500)
	assert.Equal(t, 0, x.CmpInt64Exp2(3, 500))
	assert.Equal(t, 0, x.CmpInt64Exp2(6, 499))
	assert.Equal(t, 1, x.CmpInt64Exp2(5, 499))
	assert.Equal(t, -1, x.CmpUint64Exp2(1, 502))

	i, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	y := makeFloat("123456789012345678901234567890", 100)
	assert.Equal(t, 0, y.CmpInt(i))
	assert.Equal(t, 1, y.CmpInt64(math.MaxInt64))
	assert.Equal(t, 1, y.CmpUint64(math.MaxUint64))
	assert.Equal(t, -1, NewFloat(-1).CmpUint64(0))
}

func TestFloatEq(t *testing.T) {
	x := makeFloat("0x1.fffff0p0", 64)
	y := makeFloat("0x1.ffffffp0", 64)
	assert.True(t, x.Eq(y, 21))
	assert.False(t, x.Eq(y, 22))
	assert.True(t, x.Eq(x, 1000))
	assert.False(t, x.Eq(new(Float).Neg(x), 1))
	assert.False(t, NewFloat(1).Eq(NewFloat(2), 1))
	assert.True(t, new(Float).Eq(new(Float).SetZero(true), 10))
	assert.True(t, new(Float).SetInf(true).Eq(new(Float).SetInf(true), 10))
	assert.False(t, new(Float).SetInf(true).Eq(new(Float).SetInf(false), 10))
	nan := new(Float).SetNaN()
	assert.False(t, nan.Eq(nan, 1))
}
