// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestFloatURandomB(t *testing.T) {
	src := rand.NewPCG(1, 2)
	for _, prec := range []uint{2, 10, 53, 64, 65, 300} {
		z := new(Float).SetPrec(prec)
		for i := 0; i < 100; i++ {
			z.URandomB(src)
			assert.Equal(t, Exact, z.Acc())
			assert.True(t, z.Sign() >= 0 && z.CmpInt64(1) < 0, z.Text('p', 0))
			assert.False(t, z.Signbit())
			// z is a multiple of 2**-prec
			var s Float
			s.SetMantExp(z, int64(prec))
			assert.True(t, s.IsInt(), "%s at %d bits", z.Text('p', 0), prec)
		}
	}
	assert.Equal(t, uint(DefaultPrec), new(Float).URandomB(src).Prec())
}

func TestFloatURandom(t *testing.T) {
	src := rand.NewPCG(3, 4)
	for _, test := range []struct {
		mode RoundingMode
		acc  Accuracy
	}{
		{ToZero, Below},
		{ToNegativeInf, Below},
		{Faithful, Below},
		{AwayFromZero, Above},
		{ToPositiveInf, Above},
	} {
		z := new(Float).SetPrec(20).SetMode(test.mode)
		for i := 0; i < 100; i++ {
			z.URandom(src)
			assert.Equal(t, test.acc, z.Acc(), "%s", test.mode)
			assert.Equal(t, 1, z.Sign())
			assert.True(t, z.CmpInt64(1) <= 0)
			assert.True(t, z.MinPrec() <= 20)
		}
	}

	// at 2 bits the value 1 is reachable when rounding up
	z := new(Float).SetPrec(2).SetMode(AwayFromZero)
	ones := 0
	for i := 0; i < 200; i++ {
		if z.URandom(src).CmpInt64(1) == 0 {
			ones++
		}
	}
	assert.Positive(t, ones)
}

func TestFloatURandomDistribution(t *testing.T) {
	src := rand.NewPCG(5, 6)
	for _, random := range []func(z *Float) *Float{
		func(z *Float) *Float { return z.URandomB(src) },
		func(z *Float) *Float { return z.URandom(src) },
	} {
		samples := make([]float64, 20000)
		z := new(Float).SetPrec(64)
		for i := range samples {
			samples[i] = must64(random(z))
		}
		mean, std := stat.MeanStdDev(samples, nil)
		assert.InDelta(t, 0.5, mean, 0.01)
		// standard deviation of U(0, 1) is 1/sqrt(12)
		assert.InDelta(t, 0.288675, std, 0.01)
	}
}
