// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatPowInt(t *testing.T) {
	for _, test := range []struct {
		x    float64
		n    int64
		want float64
	}{
		{3, 5, 243},
		{2, -3, 0.125},
		{-2, 3, -8},
		{-2, -2, 0.25},
		{1.5, 2, 2.25},
		{10, 22, 1e22},
		{10, -1, 0.1},
		{0.1, 3, math.Pow(0.1, 3)},
		{math.Copysign(0, -1), -1, math.Inf(-1)},
		{math.Copysign(0, -1), -2, math.Inf(1)},
		{math.Copysign(0, -1), 3, math.Copysign(0, -1)},
		{math.Inf(-1), 3, math.Inf(-1)},
		{math.Inf(-1), -3, math.Copysign(0, -1)},
		{math.Inf(-1), 2, math.Inf(1)},
	} {
		z := new(Float).PowInt64(NewFloat(test.x), test.n)
		got := must64(z)
		assert.Equal(t, test.want, got, "%g**%d", test.x, test.n)
		assert.Equal(t, math.Signbit(test.want), z.Signbit(), "sign of %g**%d", test.x, test.n)
	}

	assert.Equal(t, 1.0, must64(new(Float).PowUint64(new(Float).SetNaN(), 0)))
	assert.Equal(t, 1.0, must64(new(Float).PowInt64(new(Float).SetInf(true), 0)))
	assert.True(t, new(Float).PowUint64(new(Float).SetNaN(), 1).IsNaN())
	assert.Equal(t, uint(DefaultPrec), new(Float).PowUint64(new(Float).SetNaN(), 0).Prec())
}

func TestFloatPowIntRounding(t *testing.T) {
	want, _, err := ParseFloat("1e400", 0, 53, ToNearestEven)
	require.NoError(t, err)
	z := new(Float).SetPrec(53).PowUint64(NewFloat(10), 400)
	assert.Equal(t, 0, z.Cmp(want), z.Text('x', -1))
	assert.Equal(t, want.Acc(), z.Acc())

	want, _, err = ParseFloat("1e-400", 0, 53, ToNearestEven)
	require.NoError(t, err)
	z.PowInt64(NewFloat(10), -400)
	assert.Equal(t, 0, z.Cmp(want), z.Text('x', -1))

	// exponents too large for the exact path
	x := new(Float).SetPrec(64).SetFloat64(1.0000001)
	z = new(Float).SetPrec(64).PowUint64(x, 1_000_000_007)
	ref := new(Float).SetPrec(256).SetFloat64(1.0000001)
	ref.PowUint64(ref, 1_000_000_007)
	assert.Equal(t, 0, z.Cmp(new(Float).SetPrec(64).Set(ref)), "%s vs %s", z.Text('g', 20), ref.Text('g', 20))

	n, _ := new(big.Int).SetString("1"+strings.Repeat("0", 40), 10)
	z = new(Float).PowInt(NewFloat(1+0x1p-52), n)
	assert.True(t, z.IsInf())
	z.PowInt(NewFloat(1+0x1p-52), n.Neg(n))
	assert.True(t, z.IsZero())
	assert.False(t, z.Signbit())
}

func TestFloatPowIntRange(t *testing.T) {
	z := new(Float).PowUint64(NewFloat(1.5), 1<<63)
	assert.True(t, z.IsInf())
	assert.False(t, z.Signbit())
	assert.Equal(t, Above, z.Acc())

	z = new(Float).PowUint64(NewFloat(-1.5), 1<<63+1)
	assert.True(t, z.IsInf())
	assert.True(t, z.Signbit())

	z = new(Float).SetMode(ToZero).PowUint64(NewFloat(1.5), 1<<63)
	assert.True(t, z.IsRegular())
	assert.Equal(t, int64(MaxExp), z.Exponent())

	// powers of two take a shortcut
	z = new(Float).PowInt64(NewFloat(0.5), 1<<62)
	assert.Equal(t, int64(MinExp), z.Exponent())
	z = new(Float).PowInt64(NewFloat(0.25), 1<<62)
	assert.True(t, z.IsZero())
	z = new(Float).PowInt64(NewFloat(4), 1<<40)
	assert.Equal(t, 0, z.CmpInt64Exp2(1, 1<<41))

	assert.Equal(t, 3486784401.0, must64(new(Float).Uint64PowUint64(3, 20)))
	assert.Equal(t, uint(64), new(Float).Uint64PowUint64(3, 20).Prec())
}
