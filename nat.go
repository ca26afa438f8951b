// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"math"
	"math/big"
	"math/bits"
	"sync"
)

const debugFloat = false // enable for debugging

// A Word represents a single digit of a multi-precision unsigned integer. It is
// the same type as big.Word so that mantissas can be handed over to big.Int
// without copying.
type Word = big.Word

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
//
// Multiplication, division and roots are delegated to big.Int, which shares
// the nat storage through SetBits and Bits.
type nat []Word

// wordsFor returns the number of words needed to hold prec bits.
func wordsFor(prec uint32) int {
	return int((uint64(prec) + _W - 1) / _W)
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	// single-word value
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	// 2-word value
	z = z.make(2)
	z[1] = Word(x >> 32)
	z[0] = Word(x)
	return z
}

func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// bitLen returns the length of x in bits.
// Unlike most methods, it works even if x is not normalized.
func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len(uint(x[i]))
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least significant zero
// bits of x.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + uint(bits.TrailingZeros(uint(w)))
		}
	}
	return 0
}

// bit returns the value of the i'th bit, with lsb == bit 0.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	// 0 <= j < len(x)
	return uint(x[j] >> (i % _W) & 1)
}

// sticky returns 1 if there's a 1 bit within the
// i least significant bits, otherwise it returns 0.
func (x nat) sticky(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		if len(x) == 0 {
			return 0
		}
		return 1
	}
	// 0 <= j < len(x)
	for _, x := range x[:j] {
		if x != 0 {
			return 1
		}
	}
	if x[j]<<(_W-i%_W) != 0 {
		return 1
	}
	return 0
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x-y. x must be >= y.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

// shl sets z to x<<s.
func (z nat) shl(x nat, s uint) nat {
	if s == 0 {
		return z.set(x)
	}

	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	n := m + int(s/_W)
	if alias(z, x) {
		// shlVU can handle an in-place shift but not
		// arbitrary overlaps
		z = nil
	}
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	clear(z[0 : n-m])

	return z.norm()
}

// shr sets z to x>>s.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	if alias(z, x) && !same(z, x) {
		z = nil
	}
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}

// int returns a big.Int sharing x's storage. The result must be treated as
// read-only.
func (x nat) int() *big.Int {
	return new(big.Int).SetBits(x)
}

// setInt sets z to |x| and returns z.
func (z nat) setInt(x *big.Int) nat {
	return z.set(x.Bits()).norm()
}

// mul sets z to x*y and returns z. z may alias x or y.
func (z nat) mul(x, y nat) nat {
	var zi big.Int
	zi.SetBits(z[:0])
	if same(x, y) && len(x) == len(y) {
		xi := x.int()
		zi.Mul(xi, xi)
	} else {
		zi.Mul(x.int(), y.int())
	}
	return nat(zi.Bits())
}

// div sets z to u/v and z2 to u%v and returns them. z and z2 must not alias
// each other.
func (z nat) div(z2, u, v nat) (q, r nat) {
	var qi, ri big.Int
	qi.SetBits(z[:0])
	ri.SetBits(z2[:0])
	qi.QuoRem(u.int(), v.int(), &ri)
	return nat(qi.Bits()), nat(ri.Bits())
}

// sqrt sets z to ⌊√x⌋.
func (z nat) sqrt(x nat) nat {
	var zi big.Int
	zi.SetBits(z[:0])
	zi.Sqrt(x.int())
	return nat(zi.Bits())
}

// root sets z to ⌊x^(1/k)⌋ for k >= 1 and returns z.
func (z nat) root(x nat, k uint64) nat {
	switch {
	case len(x) == 0 || k == 1:
		return z.set(x)
	case k == 2:
		return z.sqrt(x)
	}
	n := uint64(x.bitLen())
	if k >= n {
		// 1 <= x < 2^k
		return z.setWord(1)
	}
	a := x.int()

	// Start slightly above the root with an estimate computed from the
	// leading bits of x.
	var mf big.Float
	e := mf.SetInt(a).MantExp(&mf)
	m, _ := mf.Float64()
	f := (float64(e) + math.Log2(m)) / float64(k)
	fi := math.Floor(f)
	r := new(big.Int).SetUint64(uint64(math.Exp2(f-fi) * (1 + 0x1p-20) * (1 << 52)))
	if s := int64(fi) - 52; s >= 0 {
		r.Lsh(r, uint(s))
	} else {
		r.Rsh(r, uint(-s))
		r.Add(r, big.NewInt(1))
	}

	// Newton iteration from above: r' = ((k-1)r + a/r^(k-1))/k
	var (
		t  = new(big.Int)
		q  = new(big.Int)
		kk = new(big.Int).SetUint64(k)
		k1 = new(big.Int).SetUint64(k - 1)
	)
	for {
		t.Exp(r, k1, nil)
		q.Quo(a, t)
		t.Mul(r, k1)
		t.Add(t, q)
		t.Quo(t, kk)
		if t.Cmp(r) >= 0 {
			break
		}
		r, t = t, r
	}
	// r is the floor of the root unless the estimate was below it
	one := big.NewInt(1)
	for t.Exp(r, kk, nil).Cmp(a) > 0 {
		r.Sub(r, one)
	}
	for t.Exp(t.Add(r, one), kk, nil).Cmp(a) <= 0 {
		r.Add(r, one)
	}
	return z.setInt(r)
}

// expNN sets z to x**n and returns z.
func (z nat) expNN(x nat, n uint64) nat {
	var zi big.Int
	zi.Exp(x.int(), new(big.Int).SetUint64(n), nil)
	return z.setInt(&zi)
}

// bytes writes the value of z into buf using big-endian encoding.
// The value z is encoded in the slice buf[i:]. If the value of z
// cannot be represented in buf, bytes panics. The number i of unused
// bytes at the beginning of buf is returned as result.
func (z nat) bytes(buf []byte) (i int) {
	i = len(buf)
	for _, d := range z {
		for j := 0; j < _S; j++ {
			i--
			if i >= 0 {
				buf[i] = byte(d)
			} else if byte(d) != 0 {
				panic("mpf: buffer too small to fit value")
			}
			d >>= 8
		}
	}

	if i < 0 {
		i = 0
	}
	for i < len(buf) && buf[i] == 0 {
		i++
	}

	return
}

// setBytes interprets buf as the bytes of a big-endian unsigned
// integer, sets z to that value, and returns z.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)

	i := len(buf)
	for k := 0; i >= _S; k++ {
		z[k] = bigEndianWord(buf[i-_S : i])
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}

	return z.norm()
}

// bigEndianWord returns the contents of buf interpreted as a big-endian encoded Word value.
func bigEndianWord(buf []byte) Word {
	var d Word
	for _, b := range buf[:_S] {
		d = d<<8 | Word(b)
	}
	return d
}

// fnorm normalizes mantissa m by shifting it to the left
// such that the msb of the most-significant word (msw) is 1.
// It returns the shift amount. It assumes that len(m) != 0.
func fnorm(m nat) int64 {
	if debugFloat && (len(m) == 0 || m[len(m)-1] == 0) {
		panic("msw of mantissa is 0")
	}
	s := nlz(m[len(m)-1])
	if s > 0 {
		c := shlVU(m, m, s)
		if debugFloat && c != 0 {
			panic("nlz or shlVU incorrect")
		}
	}
	return int64(s)
}

// msb64 returns the 64 most significant bits of x.
func msb64(x nat) uint64 {
	i := len(x) - 1
	if i < 0 {
		return 0
	}
	if _W == 32 {
		v := uint64(x[i]) << 32
		if i > 0 {
			v |= uint64(x[i-1])
		}
		return v
	}
	return uint64(x[i])
}

// getNat returns a *nat of len n. The contents may not be zero.
// The pool holds *nat to avoid allocation when converting to interface{}.
func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
	}
	*z = z.make(n)
	return z
}

func putNat(x *nat) {
	natPool.Put(x)
}

var natPool sync.Pool
