// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatParse(t *testing.T) {
	for _, test := range []struct {
		s    string
		base int
		want float64
		b    int
	}{
		{"0", 0, 0, 10},
		{"-0", 0, math.Copysign(0, -1), 10},
		{"+0.0e10", 0, 0, 10},
		{"1", 0, 1, 10},
		{"-1.5", 0, -1.5, 10},
		{".5", 0, 0.5, 10},
		{"5.", 0, 5, 10},
		{"1e3", 0, 1000, 10},
		{"1E-3", 0, 0.001, 10},
		{"1_000", 0, 1000, 10},
		{"1_000.000_1", 0, 1000.0001, 10},
		{"0b101", 0, 5, 2},
		{"0B1.1p1", 0, 3, 2},
		{"0o17", 0, 15, 8},
		{"0x1.8p1", 0, 3, 16},
		{"0X_ff", 0, 255, 16},
		{"0x.8", 0, 0.5, 16},
		{"0x1@1", 0, 16, 16},
		{"0x1.fffffffffffffp1023", 0, math.MaxFloat64, 16},
		{"101", 2, 5, 2},
		{"101e1", 2, 10, 2},
		{"101p1", 2, 10, 2},
		{"z@1", 36, 1260, 36},
		{"Z", 36, 35, 36},
		{"Z", 62, 61, 62},
		{"10@-1", 62, 1, 62},
		{"0.1", 0, 0.1, 10},
		{"4.9e-324", 0, 5e-324, 10},
		{"1.7976931348623157e308", 0, math.MaxFloat64, 10},
		{"inf", 0, math.Inf(1), 10},
		{"-Infinity", 0, math.Inf(-1), 10},
		{"+INF", 16, math.Inf(1), 16},
		{"@inf@", 36, math.Inf(1), 36},
		{"-@Inf@", 62, math.Inf(-1), 62},
	} {
		z := new(Float).SetPrec(53)
		f, b, err := z.Parse(test.s, test.base)
		if !assert.NoError(t, err, "Parse(%q, %d)", test.s, test.base) {
			continue
		}
		assert.Same(t, z, f)
		assert.Equal(t, test.b, b, "base of %q", test.s)
		got := must64(f)
		assert.Equal(t, test.want, got, "Parse(%q, %d)", test.s, test.base)
		assert.Equal(t, math.Signbit(test.want), f.Signbit(), "sign of %q", test.s)
	}
}

// Just below the smallest normal float64, a 53-bit Float rounds differently
// from a float64 subnormal, which only has 52 significant bits here.
func TestFloatParseSubnormalBoundary(t *testing.T) {
	const s = "2.2250738585072011e-308"
	r, ok := new(big.Rat).SetString(s)
	require.True(t, ok)

	z, _, err := new(Float).SetPrec(53).Parse(s, 0)
	require.NoError(t, err)
	want := new(Float).SetPrec(53).SetRat(r)
	assert.Equal(t, 0, z.Cmp(want), "got %s, want %s", z.Text('p', 0), want.Text('p', 0))
	assert.Equal(t, want.Acc(), z.Acc())

	z, _, err = new(Float).SetPrec(52).Parse(s, 0)
	require.NoError(t, err)
	f, acc := z.Float64()
	assert.Equal(t, Exact, acc)
	g, _ := strconv.ParseFloat(s, 64)
	assert.Equal(t, g, f)
}

func TestFloatParseNaN(t *testing.T) {
	for _, s := range []string{"nan", "NaN", "-nan", "nan(0x1_a)", "@NaN@", "@nan@"} {
		z, _, err := new(Float).Parse(s, 0)
		if assert.NoError(t, err, s) {
			assert.True(t, z.IsNaN(), s)
		}
	}
	// "nan" is a number in base 36
	z, _, err := new(Float).Parse("nan", 36)
	require.NoError(t, err)
	assert.Equal(t, float64(23*36*36+10*36+23), must64(z))
	_, _, err = new(Float).Parse("nan(a b)", 0)
	assert.Error(t, err)
}

func TestFloatParseErrors(t *testing.T) {
	for _, test := range []struct {
		s    string
		base int
	}{
		{"", 0},
		{"-", 0},
		{".", 0},
		{"1__0", 0},
		{"_1", 0},
		{"1_", 0},
		{"1._5", 0},
		{"0x_", 0},
		{"1e", 0},
		{"1e+", 0},
		{"1p1", 0},
		{"1.5.5", 0},
		{"12abc", 0},
		{"0x1g", 0},
		{"2", 2},
		{"1_0", 10},
		{"infinit", 0},
		{"1 ", 0},
	} {
		z := NewFloat(42)
		f, _, err := z.Parse(test.s, test.base)
		assert.Error(t, err, "Parse(%q, %d)", test.s, test.base)
		assert.Nil(t, f, "Parse(%q, %d)", test.s, test.base)
	}
	assert.Panics(t, func() { new(Float).Parse("1", 1) })
	assert.Panics(t, func() { new(Float).Parse("1", 63) })
}

func TestFloatParsePrefix(t *testing.T) {
	for _, test := range []struct {
		s    string
		base int
		n    int
		want float64
	}{
		{"12abc", 0, 2, 12},
		{"1.5e3xyz", 0, 5, 1500},
		{"0x10 ", 0, 4, 16},
		{"-inf!", 0, 4, math.Inf(-1)},
		{"nan(1)+1", 0, 6, math.NaN()},
		{"1e5", 0, 3, 1e5},
		{"1e", 0, 1, 1},
		{"1e+", 0, 1, 1},
		{"1E-x", 0, 1, 1},
		{"1e_5", 0, 1, 1},
		{"1@", 0, 1, 1},
		{"0x1p", 0, 3, 1},
		{"0x1p-", 0, 3, 1},
		{"0x", 0, 1, 0},
		{"0x.", 0, 1, 0},
		{"0b2", 0, 1, 0},
		{"101e", 2, 3, 5},
		{" 1", 0, 2, 1},
		{"\t\n-2.5e1 ", 0, 8, -25},
	} {
		z := new(Float)
		n, err := z.ParsePrefix(test.s, test.base)
		if !assert.NoError(t, err, test.s) {
			continue
		}
		assert.Equal(t, test.n, n, "ParsePrefix(%q)", test.s)
		if math.IsNaN(test.want) {
			assert.True(t, z.IsNaN())
			continue
		}
		assert.Equal(t, test.want, must64(z), "ParsePrefix(%q)", test.s)
	}

	// z is untouched on failure
	z := NewFloat(42)
	_, err := z.ParsePrefix("abc", 0)
	assert.Error(t, err)
	assert.Equal(t, 42.0, must64(z))
	n, err := z.ParsePrefix("  e5", 0)
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 42.0, must64(z))

	// a dangling prefix keeps the sign of the zero
	n, err = z.ParsePrefix("-0x", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, z.IsZero())
	assert.True(t, z.Signbit())

	// Parse still wants the whole string
	_, _, err = new(Float).Parse("1e", 0)
	assert.ErrorContains(t, err, "expected end of string")
}

func TestFloatParseRounding(t *testing.T) {
	for _, test := range []struct {
		s    string
		prec uint
		mode RoundingMode
		want string
		acc  Accuracy
	}{
		{"0.1", 53, ToNearestEven, "0x1.999999999999ap-04", Above},
		{"0.1", 53, ToZero, "0x1.9999999999999p-04", Below},
		{"-0.1", 53, ToZero, "-0x1.9999999999999p-04", Above},
		{"-0.1", 53, ToNegativeInf, "-0x1.999999999999ap-04", Below},
		{"5", 2, ToNearestEven, "0x1p+02", Below},
		{"7", 2, ToNearestEven, "0x1p+03", Above},
		{"0x1.8", 2, ToZero, "0x1.8p+00", Exact},
		{"0x1.c", 2, ToZero, "0x1.8p+00", Below},
		{"1e400", 53, ToNearestEven, "0x1.b4ec7f91973ffp+1328", Below},
		{"1e-400", 53, ToNearestEven, "0x1.2bfcfc0f923dfp-1329", Below},
	} {
		x, _, err := ParseFloat(test.s, 0, test.prec, test.mode)
		require.NoError(t, err)
		assert.Equal(t, test.want, x.Text('x', -1), "%q at %d bits in %s", test.s, test.prec, test.mode)
		assert.Equal(t, test.acc, x.Acc(), "%q at %d bits in %s", test.s, test.prec, test.mode)
	}

	// precision 0 selects DefaultPrec
	x, _, err := ParseFloat("1", 0, 0, ToNearestEven)
	require.NoError(t, err)
	assert.Equal(t, uint(DefaultPrec), x.Prec())

	// SetString
	y, ok := new(Float).SetString("0.1")
	require.True(t, ok)
	assert.Equal(t, 0, y.Cmp(NewFloat(0.1)))
	_, ok = new(Float).SetString("0.1x")
	assert.False(t, ok)
}

func TestFloatParseFloat64(t *testing.T) {
	for _, s := range []string{
		"3.14159265358979323846264338327950288419716939937510582097494459",
		"2.718281828459045",
		"1e23",
		"8.41e21",
		"4.940656458412465441765687928682213723651e-324",
		"2.4703282292062327208828439643411068618252990130716238221279284125033775363510437593264991818081799618989828234772285886546332835517796989819938739800539093906315035659515570226392290858392449105184435931802849936536152500319370457678249219365623669863658480757001585769269903706311928279558551332927834338409351978015531246597263579574622766465272827220056374006485499977096599470454020828166226237857393450736339007967761930577506740176324673600968951340535537458516661134223766678604162159680461914467291840300530057530849048765391711386591646239524912623653881879636239373280423891018672348497668235089863388587925628302755995657524455507255189313690836254779186948667994968324049705821028513185451396213837722826145437693412532098591327667236328125e-324",
		"1.7976931348623158e308",
		"-1e-320",
		"123456789012345678901234567890e-30",
	} {
		want, _ := strconv.ParseFloat(s, 64)
		x, _, err := ParseFloat(s, 0, 53, ToNearestEven)
		require.NoError(t, err, s)
		// values that are denormal in float64 are rounded again by Float64
		got, _ := x.Float64()
		if math.Abs(want) >= 0x1p-1022 || want == 0 {
			assert.Equal(t, want, got, s)
		}
		y := new(Float).SetPrec(53).SetFloat64(want)
		if math.Abs(want) >= 0x1p-1022 && !math.IsInf(want, 0) {
			assert.Equal(t, 0, x.Cmp(y), "%s: %s vs %s", s, x.Text('x', -1), y.Text('x', -1))
		}
	}
}

func TestFloatScan(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"1.5", "1.5"},
		{"  -2e3 rest", "-2000"},
		{"0x1p-2", "0.25"},
		{"Inf", "+Inf"},
		{"@nan@", "NaN"},
	} {
		var x Float
		_, err := fmt.Sscan(test.input, &x)
		if assert.NoError(t, err, test.input) {
			assert.Equal(t, test.want, x.Text('g', -1), test.input)
		}
	}

	var x, y Float
	n, err := fmt.Sscanf("1.25 3", "%f %v", &x, &y)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1.25, must64(&x))
	assert.Equal(t, 3.0, must64(&y))

	_, err = fmt.Sscanf("1", "%d", &x)
	assert.Error(t, err)
	_, err = fmt.Sscan("x", &x)
	assert.Error(t, err)
}
