package math

import (
	"github.com/db47h/mpf"
)

// GRandom sets z to a random value drawn from the standard normal
// distribution and rounded to z's precision, and returns z. It uses
// Marsaglia's polar method at a working precision of z.Prec()+16 bits, so the
// result is not correctly rounded. If z's precision is 0, it is changed to
// mpf.DefaultPrec.
func GRandom(z *mpf.Float, src mpf.Source) *mpf.Float {
	prepare(z)
	pp := z.Prec() + 16
	var (
		u = alloc(pp)
		v = alloc(pp)
		s = alloc(pp)
		t = alloc(pp)
	)
	for {
		// u, v uniform in (-1, 1)
		u.URandomB(src).Mul2Exp(u, 1).Sub(u, one)
		v.URandomB(src).Mul2Exp(v, 1).Sub(v, one)
		s.Sqr(u)
		s.Add(s, t.Sqr(v))
		if !s.IsZero() && s.CmpInt64(1) < 0 {
			break
		}
	}
	// u √(-2 ln s / s)
	logK(t, s)
	t.Quo(t, s)
	t.Mul2Exp(t, 1)
	t.Neg(t)
	t.Sqrt(t)
	return z.Set(t.Mul(t, u))
}

// ERandom sets z to a random value drawn from the exponential distribution of
// rate 1 and rounded to z's precision, and returns z. The value is computed
// as -ln u for u uniform in (0, 1] at a working precision of z.Prec()+16 bits.
// If z's precision is 0, it is changed to mpf.DefaultPrec.
func ERandom(z *mpf.Float, src mpf.Source) *mpf.Float {
	prepare(z)
	pp := z.Prec() + 16
	u := alloc(pp)
	for u.IsZero() {
		u.URandom(src)
	}
	if u.CmpInt64(1) == 0 {
		return z.SetZero(false)
	}
	t := alloc(pp)
	logK(t, u)
	return z.Set(t.Neg(t))
}
