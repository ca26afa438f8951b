package math

import (
	"math/bits"
	"strings"

	"github.com/db47h/mpf"
)

// Log sets z to the natural logarithm of x rounded to z's precision, and
// returns z. If z's precision is 0, it is changed to x's precision before the
// operation.
//
// Special cases are:
//
//	Log(±0)    = -Inf
//	Log(x < 0) = NaN
//	Log(+Inf)  = +Inf
//	Log(1)     = +0
//	Log(NaN)   = NaN
func Log(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	if logSpecial(z, x) {
		return z
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return logK(t, x)
	})
}

// Log2 sets z to the base 2 logarithm of x rounded to z's precision, and
// returns z. Special cases are as for Log. The result is exact for powers of 2.
func Log2(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	if logSpecial(z, x) {
		return z
	}
	if x.MinPrec() == 1 {
		return z.SetInt64(x.Exponent() - 1)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := logK(t, x)
		l := alloc(t.Prec())
		cLog2.approx(l)
		t.Quo(t, l)
		return lost + 2
	})
}

// Log10 sets z to the base 10 logarithm of x rounded to z's precision, and
// returns z. Special cases are as for Log. The result is exact for integral
// powers of 10.
func Log10(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	if logSpecial(z, x) {
		return z
	}
	if k, ok := log10Exact(x); ok {
		return z.SetInt64(k)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		lost := logK(t, x)
		l := alloc(t.Prec())
		cLog10.approx(l)
		t.Quo(t, l)
		return lost + 2
	})
}

// Log1p sets z to the natural logarithm of 1+x rounded to z's precision, and
// returns z. The result is accurate even for x close to 0.
//
// Special cases are:
//
//	Log1p(±0)     = ±0
//	Log1p(-1)     = -Inf
//	Log1p(x < -1) = NaN
//	Log1p(+Inf)   = +Inf
//	Log1p(NaN)    = NaN
func Log1p(z, x *mpf.Float) *mpf.Float {
	prepare(z, x)
	switch {
	case x.IsNaN():
		return z.SetNaN()
	case x.IsZero(), x.IsInf() && !x.Signbit():
		return z.Set(x)
	}
	switch c := x.CmpInt64(-1); {
	case c < 0:
		return z.SetNaN()
	case c == 0:
		return z.SetInf(true)
	}
	if tiny(x, guardBits(z, x)) {
		return nudge(z, x, -1)
	}
	return ziv(z, 0, func(t *mpf.Float) uint {
		return log1pK(t, x)
	})
}

// logSpecial handles the special cases of Log and reports whether z has been
// set.
func logSpecial(z, x *mpf.Float) bool {
	switch {
	case x.IsNaN():
		z.SetNaN()
	case x.IsZero():
		z.SetInf(true)
	case x.Signbit():
		z.SetNaN()
	case x.IsInf():
		z.SetInf(false)
	case x.CmpInt64(1) == 0:
		z.SetZero(false)
	default:
		return false
	}
	return true
}

// log10Exact returns k if x == 10**k for some integer k >= 0.
func log10Exact(x *mpf.Float) (int64, bool) {
	if !x.IsInt() || x.Exponent() > 1<<16 {
		return 0, false
	}
	i, _ := x.Int(nil)
	s := i.String()
	if s[0] != '1' || strings.TrimLeft(s[1:], "0") != "" {
		return 0, false
	}
	return int64(len(s) - 1), true
}

// atanhS sets z to atanh(s) for |s| <= 1/3 from its Taylor series and returns
// the number of lost bits.
func atanhS(z, s *mpf.Float) uint {
	p := z.Prec()
	if s.IsZero() {
		z.Set(s)
		return 0
	}
	var (
		x2  = alloc(p).Sqr(s)
		t   = alloc(p).Set(s)
		u   = alloc(p)
		sum = alloc(p).Set(s)
		k   uint64
	)
	for k = 1; ; k++ {
		t.Mul(t, x2)
		u.QuoUint64(t, 2*k+1)
		sum.Add(sum, u)
		if u.IsZero() || u.Exponent() < sum.Exponent()-int64(p)-2 {
			break
		}
	}
	z.Set(sum)
	return uint(bits.Len64(3*k+8)) + 1
}

// logK sets z to an approximation of ln x for a positive finite x and returns
// the number of lost bits.
func logK(z, x *mpf.Float) uint {
	p := z.Prec()
	if x.CmpFloat64(0.5) >= 0 && x.CmpInt64(2) < 0 {
		// ln x = 2 atanh((x-1)/(x+1))
		s := alloc(p).Sub(x, one)
		d := alloc(p).Add(x, one)
		lost := atanhS(z, s.Quo(s, d))
		z.Mul2Exp(z, 1)
		return lost + 2
	}
	// x = m × 2**e, with 1 <= m < 2: ln x = ln m + e ln 2
	m := alloc(max(x.Prec(), 2))
	e := x.MantExp(m) - 1
	lost := logK(z, m.Mul2Exp(m, 1))
	l := alloc(p + uint(bits.Len64(abs64(e))))
	cLog2.approx(l)
	z.Add(z, l.MulInt64(l, e))
	return lost + 3
}

// log1pK sets z to an approximation of ln(1+x) for a finite nonzero x > -1
// and returns the number of lost bits.
func log1pK(z, x *mpf.Float) uint {
	p := z.Prec()
	if x.CmpAbs(half) < 0 {
		// ln(1+x) = 2 atanh(x/(2+x))
		d := alloc(p).AddUint64(x, 2)
		lost := atanhS(z, d.Quo(x, d))
		z.Mul2Exp(z, 1)
		return lost + 2
	}
	u := alloc(p + 2).AddUint64(x, 1)
	return logK(z, u) + 2
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
