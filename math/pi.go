package math

import (
	"math/bits"
	"sync"

	"github.com/db47h/mpf"
)

// A constant caches the value of a mathematical constant at the largest
// precision requested so far.
type constant struct {
	mu sync.Mutex
	v  *mpf.Float
	// eval sets z to the constant with an error below one ulp.
	eval func(z *mpf.Float)
}

var (
	cPi      = &constant{eval: pi}
	cLog2    = &constant{eval: log2}
	cEuler   = &constant{eval: euler}
	cCatalan = &constant{eval: catalan}
	cLog10   = &constant{eval: func(z *mpf.Float) {
		ziv(z, 0, func(t *mpf.Float) uint { return logK(t, ten) })
	}}
)

var ten = mpf.NewFloat(10)

// get returns the cached value of c with at least prec bits. The result must
// not be modified.
func (c *constant) get(prec uint) *mpf.Float {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.v == nil || c.v.Prec() < prec {
		if c.v != nil {
			prec = max(prec, c.v.Prec()+c.v.Prec()/2)
		}
		v := alloc(prec)
		c.eval(v)
		c.v = v
	}
	return c.v
}

// approx sets t to c with an error of at most one ulp and returns the number
// of lost bits.
func (c *constant) approx(t *mpf.Float) uint {
	t.Set(c.get(t.Prec() + 16))
	return 1
}

// set sets z to the correctly rounded value of c.
func (c *constant) set(z *mpf.Float) *mpf.Float {
	prepare(z)
	return ziv(z, 0, c.approx)
}

// Pi sets z to the value of π rounded to z's precision, and returns z. If z's
// precision is 0, it is changed to mpf.DefaultPrec.
func Pi(z *mpf.Float) *mpf.Float {
	return cPi.set(z)
}

// Ln2 sets z to the value of ln 2 rounded to z's precision, and returns z.
// If z's precision is 0, it is changed to mpf.DefaultPrec.
func Ln2(z *mpf.Float) *mpf.Float {
	return cLog2.set(z)
}

// Euler sets z to the value of the Euler–Mascheroni constant γ = 0.5772…
// rounded to z's precision, and returns z. If z's precision is 0, it is
// changed to mpf.DefaultPrec.
func Euler(z *mpf.Float) *mpf.Float {
	return cEuler.set(z)
}

// Catalan sets z to the value of Catalan's constant G = 0.9159… rounded to
// z's precision, and returns z. If z's precision is 0, it is changed to
// mpf.DefaultPrec.
func Catalan(z *mpf.Float) *mpf.Float {
	return cCatalan.set(z)
}

// pi computes π with the Gauss-Legendre algorithm.
func pi(z *mpf.Float) {
	var (
		pp = z.Prec() + 32
		a  = alloc(pp).SetInt64(1)
		u  = alloc(pp)
		b  = alloc(pp).RecSqrt(two)
		t  = alloc(pp).SetFloat64(0.25)
		d  = alloc(pp)
		p  int64
	)
	for {
		u.Set(a)                   // a_n
		a.Add(a, b).Mul2Exp(a, -1) // a_n+1
		b.Sqrt(b.Mul(u, b))        // b_n+1
		// t = t - 2**p × (a_n - a_n+1)**2
		d.Sub(u, a)
		t.Sub(t, d.Mul2Exp(d.Sqr(d), p))
		p++
		if d.Sub(a, b); d.IsZero() || d.Exponent() < -int64(pp/2+8) {
			break
		}
	}
	a.Add(a, b)
	z.Quo(a.Sqr(a), t.Mul2Exp(t, 2))
}

// log2 computes ln 2 = 2 atanh(1/3).
func log2(z *mpf.Float) {
	var (
		pp  = z.Prec() + 32
		t   = alloc(pp).SetInt64(1)
		s   = alloc(pp)
		tmp = alloc(pp)
	)
	t.QuoUint64(t, 3)
	s.Set(t)
	for k := uint64(1); ; k++ {
		t.QuoUint64(t, 9)
		s.Add(s, tmp.QuoUint64(t, 2*k+1))
		if t.Exponent() < s.Exponent()-int64(pp) {
			break
		}
	}
	z.Mul2Exp(s, 1)
}

// euler computes γ with the Brent-McMillan algorithm:
//
//	γ = U/V - ln n, with U = Σ A_k, V = Σ B_k
//	B_k = B_k-1 n²/k², A_k = (A_k-1 n²/k + B_k)/k
//
// where the sums run up to ⌈αn⌉ with α(ln α - 1) = 1.
func euler(z *mpf.Float) {
	n := uint64(float64(z.Prec())*0.17328679514+1) + 1 // ln 2 / 4
	N := uint64(3.5911*float64(n)) + 1
	var (
		pp = z.Prec() + 32 + uint(bits.Len64(N))
		nn = n * n
		a  = alloc(pp)
		b  = alloc(pp).SetInt64(1)
		u  = alloc(pp)
		v  = alloc(pp).SetInt64(1)
		t  = alloc(pp)
	)
	logK(a, t.SetUint64(n))
	a.Neg(a)
	u.Set(a)
	for k := uint64(1); k <= N; k++ {
		b.MulUint64(b, nn)
		b.QuoUint64(b, k*k)
		a.MulUint64(a, nn)
		a.QuoUint64(a, k)
		a.Add(a, b)
		a.QuoUint64(a, k)
		u.Add(u, a)
		v.Add(v, b)
	}
	z.Quo(u, v)
}

// catalan computes G with Ramanujan's series:
//
//	G = π/8 ln(2+√3) + 3/8 Σ (k!)²/((2k)!(2k+1)²)
func catalan(z *mpf.Float) {
	var (
		pp = z.Prec() + 32
		t  = alloc(pp).SetInt64(1)
		s  = alloc(pp).SetInt64(1)
		u  = alloc(pp)
	)
	for k := uint64(0); ; k++ {
		t.MulUint64(t, k+1)
		t.QuoUint64(t, 2*(2*k+1))
		d := 2*k + 3
		u.QuoUint64(t, d)
		s.Add(s, u.QuoUint64(u, d))
		if u.Exponent() < s.Exponent()-int64(pp) {
			break
		}
	}
	s.MulUint64(s, 3)
	s.Mul2Exp(s, -3)

	t.SqrtUint64(3)
	logK(u, t.AddUint64(t, 2))
	cPi.approx(t)
	u.Mul(u, t)
	u.Mul2Exp(u, -3)
	z.Add(u, s)
}
