package math

import (
	"math/bits"

	"github.com/db47h/mpf"
)

// maxZivIter bounds the number of precision increases in a Ziv loop. Past
// this, the last approximation is rounded as is.
const maxZivIter = 10

// constants
var (
	one  = mpf.NewFloat(1)
	two  = mpf.NewFloat(2)
	half = mpf.NewFloat(0.5)
)

// alloc returns a new +0 with precision prec.
func alloc(prec uint) *mpf.Float {
	return new(mpf.Float).SetPrec(prec)
}

// prepare sets z's precision to the largest of its arguments' if it is 0.
func prepare(z *mpf.Float, xs ...*mpf.Float) {
	if z.Prec() != 0 {
		return
	}
	var p uint
	for _, x := range xs {
		p = max(p, x.Prec())
	}
	if p == 0 {
		p = mpf.DefaultPrec
	}
	z.SetPrec(p)
}

// An approx sets t to an approximation of some value at t's precision and
// returns the number of lost bits: the absolute error must not exceed
// 2**(t.Exponent() - t.Prec() + lost).
type approx func(t *mpf.Float) (lost uint)

// ziv sets z to the value approximated by f, rounded to z's precision and mode.
// The first approximation is computed with guard extra bits. z's precision
// must be set. An infinite approximation overflows, a zero one underflows.
func ziv(z *mpf.Float, guard uint, f approx) *mpf.Float {
	prec := z.Prec()
	w := prec + guard + uint(bits.Len(prec)) + 8
	for i := 0; ; i++ {
		t := alloc(w)
		lost := f(t)
		switch {
		case t.IsNaN():
			return z.SetNaN()
		case t.IsInf():
			return overflow(z, t.Signbit())
		case t.IsZero():
			return underflow(z, t.Signbit())
		}
		if lost+2 < w && t.CanRound(w-lost, prec, z.Mode()) || i == maxZivIter {
			return z.Set(t)
		}
		w += max(w/2, lost)
	}
}

// overflow sets z to a value of the given sign that is too large for the
// exponent range, rounded according to z's mode.
func overflow(z *mpf.Float, neg bool) *mpf.Float {
	return z.SetInt64Exp2(sign(neg), mpf.MaxExp+1)
}

// underflow sets z to a nonzero value of the given sign that is too small for
// the exponent range, rounded according to z's mode.
func underflow(z *mpf.Float, neg bool) *mpf.Float {
	return z.SetInt64Exp2(sign(neg), mpf.MinExp-3)
}

func sign(neg bool) int64 {
	if neg {
		return -1
	}
	return 1
}

// nudge sets z to x moved by a tiny amount in the direction of dir (the sign
// of dir), rounded to z's precision. x must be nonzero and the exact result
// must lie strictly between x and its neighbour at precision
// max(x.MinPrec(), z.Prec()) + 2.
func nudge(z, x *mpf.Float, dir int) *mpf.Float {
	t := alloc(max(x.MinPrec(), z.Prec()) + 2).Set(x)
	if dir > 0 {
		t.NextAbove()
	} else {
		t.NextBelow()
	}
	return z.Set(t)
}

// tiny reports whether the finite x satisfies |x| < 2**-n.
func tiny(x *mpf.Float, n uint) bool {
	return !x.IsZero() && x.Exponent() <= -int64(n)
}

// guardBits returns the q used by tiny argument checks: two bits above the
// larger of z's and x's precision.
func guardBits(z, x *mpf.Float) uint {
	return max(z.Prec(), x.Prec()) + 2
}

// isOddInt reports whether x is an odd integer.
func isOddInt(x *mpf.Float) bool {
	if !x.IsInt() || x.IsZero() {
		return false
	}
	// x = 0.m × 2**e is odd iff its last significant bit is at position e
	return int64(x.MinPrec()) == x.Exponent()
}

// lostBits returns the number of bits lost when a value of exponent e is
// approximated and the result has exponent r, plus extra.
func lostBits(e, r int64, extra uint) uint {
	if e <= r {
		return extra
	}
	return uint(e-r) + extra
}

// reduceInt sets f = x - n exactly, where n is the integer nearest to x, and
// returns n saturated to the int64 range and whether n is odd. x must be
// finite.
func reduceInt(f, x *mpf.Float) (n int64, odd bool) {
	r := alloc(max(x.Prec(), 64)).RoundEven(x)
	n, _ = r.Int64()
	f.SetPrec(max(x.Prec(), 2)).Sub(x, r)
	return n, isOddInt(r)
}

// maxExp returns the largest exponent of the nonzero values in xs.
func maxExp(xs ...*mpf.Float) int64 {
	e := int64(mpf.MinExp)
	for _, x := range xs {
		if !x.IsZero() {
			e = max(e, x.Exponent())
		}
	}
	return e
}
