// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatFloat64(t *testing.T) {
	const smallest = math.SmallestNonzeroFloat64
	for _, test := range []struct {
		x    string
		mode RoundingMode
		want float64
		acc  Accuracy
	}{
		{"0", ToNearestEven, 0, Exact},
		{"-0", ToNearestEven, math.Copysign(0, -1), Exact},
		{"1", ToNearestEven, 1, Exact},
		{"0.1", ToNearestEven, 0.1, Above},
		{"Inf", ToNearestEven, math.Inf(1), Exact},
		{"-Inf", ToNearestEven, math.Inf(-1), Exact},

		// 2**-1075 is halfway between 0 and the smallest denormal
		{"0x1p-1075", ToNearestEven, 0, Below},
		{"0x1p-1075", ToNearestAway, smallest, Above},
		{"0x1p-1075", AwayFromZero, smallest, Above},
		{"0x1p-1075", ToZero, 0, Below},
		{"-0x1p-1075", ToNearestEven, math.Copysign(0, -1), Above},
		{"-0x1p-1075", ToNegativeInf, -smallest, Below},
		{"0x1.8p-1075", ToNearestEven, smallest, Above},
		{"0x1p-2000", ToPositiveInf, smallest, Above},
		{"0x1p-2000", ToNearestEven, 0, Below},
		{"0x3p-1076", ToNearestEven, smallest, Above},
		{"0x3p-1075", ToNearestEven, 2 * smallest, Above},
		{"0x1.fffffffffffffp-1023", ToNearestEven, 0x1p-1022, Above},
		{"0x1.fffffffffffffp-1023", ToZero, 0x1.ffffffffffffep-1023, Below},

		// overflow
		{"0x1p1024", ToNearestEven, math.Inf(1), Above},
		{"0x1p1024", ToZero, math.MaxFloat64, Below},
		{"-0x1p1024", ToPositiveInf, -math.MaxFloat64, Above},
		{"-0x1p1024", ToNegativeInf, math.Inf(-1), Below},
		{"0x1.fffffffffffff8p1023", ToNearestEven, math.Inf(1), Above},
		{"0x1.fffffffffffff7p1023", ToNearestEven, math.MaxFloat64, Below},
	} {
		x := new(Float).SetPrec(100).SetMode(test.mode)
		_, _, err := x.Parse(test.x, 0)
		require.NoError(t, err, test.x)
		x.SetMode(test.mode)
		got, acc := x.Float64()
		assert.Equal(t, test.want, got, "%s in %s", test.x, test.mode)
		assert.Equal(t, math.Signbit(test.want), math.Signbit(got), "sign of %s in %s", test.x, test.mode)
		assert.Equal(t, test.acc, acc, "%s in %s", test.x, test.mode)
	}

	nan, acc := new(Float).SetNaN().Float64()
	assert.True(t, math.IsNaN(nan))
	assert.Equal(t, Exact, acc)
}

func TestFloatFloat32(t *testing.T) {
	for _, x := range []float64{0, 1, -1.5, 0.1, 1e-40, 1e-46, 3.4e38, math.Pi} {
		got, _ := NewFloat(x).Float32()
		assert.Equal(t, float32(x), got, "%g", x)
	}
	got, acc := new(Float).SetMode(ToZero).SetFloat64(3.5e38).Float32()
	assert.Equal(t, float32(math.MaxFloat32), got)
	assert.Equal(t, Below, acc)
}

func TestFloatFloat64Exp2(t *testing.T) {
	d, e := NewFloat(3).Float64Exp2()
	assert.Equal(t, 0.75, d)
	assert.Equal(t, int64(2), e)

	x := new(Float).SetPrec(100).SetInt64Exp2(3, 1<<40)
	d, e = x.Float64Exp2()
	assert.Equal(t, 0.75, d)
	assert.Equal(t, int64(1<<40+2), e)

	d, e = new(Float).SetInf(true).Float64Exp2()
	assert.True(t, math.IsInf(d, -1))
	assert.Equal(t, int64(0), e)
}

func TestFloatInt64(t *testing.T) {
	for _, test := range []struct {
		x    string
		want int64
		acc  Accuracy
	}{
		{"0", 0, Exact},
		{"2.5", 2, Below},
		{"-2.5", -2, Above},
		{"0.9", 0, Below},
		{"-0.9", 0, Above},
		{"9223372036854775807", math.MaxInt64, Exact},
		{"-9223372036854775808", math.MinInt64, Exact},
		{"1e19", math.MaxInt64, Below},
		{"-1e19", math.MinInt64, Above},
		{"Inf", math.MaxInt64, Below},
		{"-Inf", math.MinInt64, Above},
		{"NaN", 0, Exact},
	} {
		x := makeFloat(test.x, 100)
		got, acc := x.Int64()
		assert.Equal(t, test.want, got, test.x)
		assert.Equal(t, test.acc, acc, test.x)
	}

	for _, test := range []struct {
		x    string
		want uint64
		acc  Accuracy
	}{
		{"2.5", 2, Below},
		{"-2.5", 0, Above},
		{"18446744073709551615", math.MaxUint64, Exact},
		{"1e20", math.MaxUint64, Below},
	} {
		x := makeFloat(test.x, 100)
		got, acc := x.Uint64()
		assert.Equal(t, test.want, got, test.x)
		assert.Equal(t, test.acc, acc, test.x)
	}
}

func TestFloatIntMode(t *testing.T) {
	for _, test := range []struct {
		x    float64
		mode RoundingMode
		want int64
		acc  Accuracy
	}{
		{2.5, ToNearestEven, 2, Below},
		{2.5, ToNearestAway, 3, Above},
		{-2.5, ToNearestEven, -2, Above},
		{-2.5, AwayFromZero, -3, Below},
		{2.1, ToPositiveInf, 3, Above},
		{-2.1, ToPositiveInf, -2, Above},
		{7, ToZero, 7, Exact},
	} {
		x := new(Float).SetMode(test.mode).SetFloat64(test.x)
		got, acc := x.Int64Mode()
		assert.Equal(t, test.want, got, "%g in %s", test.x, test.mode)
		assert.Equal(t, test.acc, acc, "%g in %s", test.x, test.mode)
	}

	u, acc := new(Float).SetMode(ToPositiveInf).SetFloat64(0.5).Uint64Mode()
	assert.Equal(t, uint64(1), u)
	assert.Equal(t, Above, acc)
}

func TestFloatFits(t *testing.T) {
	for _, test := range []struct {
		x                            string
		mode                         RoundingMode
		i64, i32, i16, u64, u32, u16 bool
	}{
		{"0", ToNearestEven, true, true, true, true, true, true},
		{"-0", ToNearestEven, true, true, true, true, true, true},
		{"32767.6", ToNearestEven, true, true, false, true, true, true},
		{"32767.6", ToZero, true, true, true, true, true, true},
		{"-32768.4", ToNearestEven, true, true, true, false, false, false},
		{"-0.4", ToNearestEven, true, true, true, true, true, true},
		{"-0.6", ToNearestEven, true, true, true, false, false, false},
		{"65535.5", ToNearestEven, true, true, false, true, true, false},
		{"4294967295.4", ToNearestEven, true, false, false, true, true, false},
		{"9223372036854775807.5", ToZero, true, false, false, true, false, false},
		{"9223372036854775807.5", ToNearestEven, false, false, false, true, false, false},
		{"18446744073709551616", ToNearestEven, false, false, false, false, false, false},
		{"Inf", ToNearestEven, false, false, false, false, false, false},
		{"NaN", ToNearestEven, false, false, false, false, false, false},
	} {
		x := new(Float).SetPrec(100).SetMode(test.mode)
		_, _, err := x.Parse(test.x, 0)
		require.NoError(t, err)
		assert.Equal(t, test.i64, x.FitsInt64(), "FitsInt64(%s) in %s", test.x, test.mode)
		assert.Equal(t, test.i32, x.FitsInt32(), "FitsInt32(%s) in %s", test.x, test.mode)
		assert.Equal(t, test.i16, x.FitsInt16(), "FitsInt16(%s) in %s", test.x, test.mode)
		assert.Equal(t, test.u64, x.FitsUint64(), "FitsUint64(%s) in %s", test.x, test.mode)
		assert.Equal(t, test.u32, x.FitsUint32(), "FitsUint32(%s) in %s", test.x, test.mode)
		assert.Equal(t, test.u16, x.FitsUint16(), "FitsUint16(%s) in %s", test.x, test.mode)
	}
}

func TestFloatBigConversions(t *testing.T) {
	x := makeFloat("-12345678901234567890.75", 100)
	i, acc := x.Int(nil)
	assert.Equal(t, "-12345678901234567890", i.String())
	assert.Equal(t, Above, acc)

	// reuse of the destination
	z := big.NewInt(42)
	i, _ = makeFloat("1e30", 200).Int(z)
	assert.Same(t, z, i)
	assert.Equal(t, "1000000000000000000000000000000", i.String())
	i, acc = new(Float).SetInf(false).Int(nil)
	assert.Nil(t, i)
	assert.Equal(t, Below, acc)

	m, e := NewFloat(-0.375).IntExp2(nil)
	assert.Equal(t, int64(-52-2), e)
	assert.Equal(t, 0, m.Cmp(new(big.Int).Mul(big.NewInt(-3), new(big.Int).Lsh(big.NewInt(1), 51))))
	m, _ = new(Float).SetNaN().IntExp2(nil)
	assert.Nil(t, m)

	r, acc := NewFloat(-0.375).Rat(nil)
	assert.Equal(t, "-3/8", r.String())
	assert.Equal(t, Exact, acc)
	r, _ = NewFloat(1e20).Rat(nil)
	assert.Equal(t, "100000000000000000000/1", r.String())

	bf, bacc := NewFloat(0.1).BigFloat(nil)
	assert.Equal(t, big.Exact, bacc)
	assert.Equal(t, uint(53), bf.Prec())
	f64, _ := bf.Float64()
	assert.Equal(t, 0.1, f64)

	bf, bacc = NewFloat(0.1).BigFloat(new(big.Float).SetPrec(10))
	assert.Equal(t, big.Below, bacc)
	assert.Equal(t, "0.09998", bf.Text('g', 4))

	bf, _ = new(Float).SetZero(true).BigFloat(nil)
	assert.True(t, bf.Signbit())
	bf, _ = new(Float).SetNaN().BigFloat(nil)
	assert.Nil(t, bf)

	// round trip through big.Float
	assert.True(t, new(Float).SetBigFloat(new(big.Float)).IsZero())
	w := makeFloat("3.14159265358979323846264338327950288", 120)
	bf, _ = w.BigFloat(nil)
	assert.Equal(t, 0, new(Float).SetBigFloat(bf).Cmp(w))
}
