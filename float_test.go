// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"encoding"
	"encoding/gob"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// required implemented interfaces
	_ fmt.Stringer             = &floatZero
	_ fmt.Scanner              = &floatZero
	_ fmt.Formatter            = &floatZero
	_ encoding.TextMarshaler   = &floatZero
	_ encoding.TextUnmarshaler = &floatZero
	_ gob.GobEncoder           = &floatZero
	_ gob.GobDecoder           = &floatZero
)

// makeFloat parses s at the given precision or panics.
func makeFloat(s string, prec uint) *Float {
	x, _, err := new(Float).SetPrec(prec).Parse(s, 0)
	if err != nil {
		panic(err)
	}
	return x
}

func (x *Float) int64() int64 {
	i, acc := x.Int64()
	if acc != Exact {
		panic(fmt.Sprintf("%s is not an int64", x.Text('g', 10)))
	}
	return i
}

// alike reports whether x and y have the same kind, sign and value.
func alike(x, y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return x.IsNaN() && y.IsNaN()
	}
	return x.Cmp(y) == 0 && x.Signbit() == y.Signbit()
}

func TestFloatZeroValue(t *testing.T) {
	// zero (uninitialized) value is a ready-to-use +0
	var x Float
	assert.Equal(t, "0.0", x.Text('f', 1))
	assert.Equal(t, uint(0), x.Prec())
	assert.False(t, x.Signbit())

	// zero value can be used in any and all positions of binary operations
	make := func(x int) *Float {
		var f Float
		if x != 0 {
			f.SetInt64(int64(x))
		}
		// x == 0 translates into the zero value
		return &f
	}
	for _, test := range []struct {
		z, x, y, want int
		opname        rune
		op            func(z, x, y *Float) *Float
	}{
		{0, 0, 0, 0, '+', (*Float).Add},
		{0, 1, 2, 3, '+', (*Float).Add},
		{1, 2, 0, 2, '+', (*Float).Add},
		{2, 0, 1, 1, '+', (*Float).Add},

		{0, 0, 0, 0, '-', (*Float).Sub},
		{0, 1, 2, -1, '-', (*Float).Sub},
		{1, 2, 0, 2, '-', (*Float).Sub},
		{2, 0, 1, -1, '-', (*Float).Sub},

		{0, 0, 0, 0, '*', (*Float).Mul},
		{0, 1, 2, 2, '*', (*Float).Mul},
		{1, 2, 0, 0, '*', (*Float).Mul},
		{2, 0, 1, 0, '*', (*Float).Mul},

		{0, 2, 1, 2, '/', (*Float).Quo},
		{1, 2, 0, 0, '/', (*Float).Quo}, // 2/0 = +Inf, checked below
		{2, 0, 1, 0, '/', (*Float).Quo},
	} {
		z := make(test.z)
		test.op(z, make(test.x), make(test.y))
		if test.opname == '/' && test.y == 0 {
			assert.True(t, z.IsInf(), "%d %c %d", test.x, test.opname, test.y)
			continue
		}
		assert.Equal(t, int64(test.want), z.int64(), "%d %c %d", test.x, test.opname, test.y)
	}
}

func TestFloatNew(t *testing.T) {
	x := New(100)
	assert.True(t, x.IsNaN())
	assert.Equal(t, uint(100), x.Prec())
	require.Panics(t, func() { New(1) })
	require.Panics(t, func() { New(0) })
}

func TestFloatSetPrec(t *testing.T) {
	for _, test := range []struct {
		x    float64
		prec uint
		mode RoundingMode
		want float64
		acc  Accuracy
	}{
		{0, 0, ToNearestEven, 0, Exact},
		{1.5, 0, ToNearestEven, 0, Below},
		{-1.5, 0, ToNearestEven, 0, Above},
		{1.5, 2, ToNearestEven, 1.5, Exact},
		{1.25, 2, ToNearestEven, 1, Below},
		{1.75, 2, ToNearestEven, 2, Above},
		{1.25, 2, AwayFromZero, 1.5, Above},
		{-1.25, 2, ToPositiveInf, -1, Above},
		{-1.25, 2, ToNegativeInf, -1.5, Below},
		{1.75, 2, Faithful, 1.5, Below},
		{2.5, 2, ToNearestAway, 3, Above},
	} {
		x := new(Float).SetMode(test.mode).SetFloat64(test.x)
		x.SetPrec(test.prec)
		got, _ := x.Float64()
		assert.Equal(t, test.want, got, "%g at prec %d %s", test.x, test.prec, test.mode)
		assert.Equal(t, test.acc, x.Acc(), "%g at prec %d %s", test.x, test.prec, test.mode)
	}
	require.Panics(t, func() { new(Float).SetPrec(1) })
}

func TestFloatMantExp(t *testing.T) {
	for _, test := range []struct {
		x    string
		mant string
		exp  int64
	}{
		{"0", "0", 0},
		{"+0", "0", 0},
		{"-0", "-0", 0},
		{"Inf", "+Inf", 0},
		{"+Inf", "+Inf", 0},
		{"-Inf", "-Inf", 0},
		{"1.5", "0.75", 1},
		{"1.024e3", "0.5", 11},
		{"-0.125", "-0.5", -2},
	} {
		x := makeFloat(test.x, 53)
		mant := makeFloat(test.mant, 53)
		m := new(Float)
		e := x.MantExp(m)
		assert.True(t, alike(m, mant), "%s.MantExp() = %s, want %s", test.x, m, mant)
		assert.Equal(t, test.exp, e, "%s.MantExp()", test.x)

		// round-trip
		z := new(Float).SetMantExp(m, e)
		assert.True(t, alike(z, x), "SetMantExp(%s, %d) = %s", m, e, z)
	}
}

func TestFloatSetMantExpRange(t *testing.T) {
	one := NewFloat(1)
	z := new(Float).SetMantExp(one, MaxExp)
	assert.True(t, z.IsInf())
	assert.Equal(t, Above, z.Acc())

	z = new(Float).SetMode(ToZero).SetMantExp(one, MaxExp)
	assert.True(t, z.IsRegular())
	assert.Equal(t, int64(MaxExp), z.Exponent())
	assert.Equal(t, Below, z.Acc())

	z = new(Float).SetMantExp(one, MinExp-10)
	assert.True(t, z.IsZero())
	assert.Equal(t, Below, z.Acc())

	z = new(Float).SetMode(ToPositiveInf).SetMantExp(one, MinExp-10)
	assert.True(t, z.IsRegular())
	assert.Equal(t, int64(MinExp), z.Exponent())
}

func TestFloatExponent(t *testing.T) {
	x := NewFloat(12)
	assert.Equal(t, int64(4), x.Exponent())
	require.True(t, x.SetExponent(0))
	assert.Equal(t, 0.75, must64(x))
	assert.False(t, x.SetExponent(MaxExp+1))
	assert.False(t, new(Float).SetExponent(0))
	assert.Equal(t, int64(0), new(Float).SetInf(false).Exponent())
}

func must64(x *Float) float64 {
	f, _ := x.Float64()
	return f
}

func TestFloatPredicates(t *testing.T) {
	for _, test := range []struct {
		x                                           string
		sign                                        int
		signbit, nan, inf, zero, regular, num, isInt bool
	}{
		{"-Inf", -1, true, false, true, false, false, false, false},
		{"-1", -1, true, false, false, false, true, true, true},
		{"-0", 0, true, false, false, true, false, true, true},
		{"0", 0, false, false, false, true, false, true, true},
		{"0.5", 1, false, false, false, false, true, true, false},
		{"1e100", 1, false, false, false, false, true, true, true},
		{"+Inf", 1, false, false, true, false, false, false, false},
		{"NaN", 0, false, true, false, false, false, false, false},
	} {
		x := makeFloat(test.x, 53)
		assert.Equal(t, test.sign, x.Sign(), "%s.Sign()", test.x)
		assert.Equal(t, test.signbit, x.Signbit(), "%s.Signbit()", test.x)
		assert.Equal(t, test.nan, x.IsNaN(), "%s.IsNaN()", test.x)
		assert.Equal(t, test.inf, x.IsInf(), "%s.IsInf()", test.x)
		assert.Equal(t, test.zero, x.IsZero(), "%s.IsZero()", test.x)
		assert.Equal(t, test.regular, x.IsRegular(), "%s.IsRegular()", test.x)
		assert.Equal(t, test.num, x.IsNumber(), "%s.IsNumber()", test.x)
		assert.Equal(t, test.isInt, x.IsInt(), "%s.IsInt()", test.x)
	}
}

func TestFloatSetInt64(t *testing.T) {
	for _, want := range []int64{
		0,
		1,
		2,
		10,
		100,
		1<<32 - 1,
		1 << 32,
		1<<63 - 1,
		-1 << 63,
	} {
		for i := range [2]int{} {
			if i&1 != 0 {
				want = -want
			}
			var f Float
			f.SetInt64(want)
			got, acc := f.Int64()
			assert.Equal(t, want, got)
			assert.Equal(t, Exact, acc)
		}
	}

	// rounding
	f := new(Float).SetPrec(10).SetInt64(0x123456789abcdef0)
	assert.Equal(t, Above, f.Acc())
	assert.Equal(t, "0x1.238p+60", f.Text('x', -1))
}

func TestFloatSetSign(t *testing.T) {
	x := NewFloat(2)
	y := NewFloat(-3)
	z := new(Float)
	assert.Equal(t, -2.0, must64(z.CopySign(x, y)))
	assert.Equal(t, 3.0, must64(z.Abs(y)))
	assert.Equal(t, 3.0, must64(z.Neg(y)))
	assert.Equal(t, -2.0, must64(z.SetSignbit(x, true)))
	n := new(Float).SetNaN()
	z.Neg(n)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Signbit())
}

func TestFloatSwap(t *testing.T) {
	x := new(Float).SetPrec(10).SetMode(ToZero).SetInt64(3)
	y := new(Float).SetPrec(200).SetInf(true)
	x.Swap(y)
	assert.True(t, x.IsInf())
	assert.Equal(t, uint(200), x.Prec())
	assert.Equal(t, int64(3), y.int64())
	assert.Equal(t, ToZero, y.Mode())
}

func TestFloatSetBigTypes(t *testing.T) {
	r := big.NewRat(1, 3)
	x := new(Float).SetPrec(53).SetRat(r)
	assert.Equal(t, 1.0/3, must64(x))
	assert.Equal(t, Below, x.Acc())

	i, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	x = new(Float).SetInt(i)
	assert.Equal(t, uint(97), x.Prec())
	got, acc := x.Int(nil)
	assert.Equal(t, Exact, acc)
	assert.Equal(t, 0, got.Cmp(i))

	bf := new(big.Float).SetPrec(100).SetFloat64(-0.15625)
	x = new(Float).SetBigFloat(bf)
	assert.Equal(t, uint(100), x.Prec())
	assert.Equal(t, -0.15625, must64(x))

	x = new(Float).SetIntExp2(big.NewInt(-3), -4)
	assert.Equal(t, -0.1875, must64(x))
	x = new(Float).SetInt64Exp2(5, 10)
	assert.Equal(t, 5120.0, must64(x))
	x = new(Float).SetUint64Exp2(1, -1)
	assert.Equal(t, 0.5, must64(x))
}
