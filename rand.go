// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import "math/bits"

// A Source is a source of uniformly distributed random 64-bit values. It is
// satisfied by the sources of math/rand/v2 and by *rand.Rand.
type Source interface {
	Uint64() uint64
}

func fillRandom(m nat, src Source) {
	for i := range m {
		m[i] = Word(src.Uint64())
	}
}

// URandomB sets z to a uniformly distributed random value in [0, 1) and
// returns z. The result is a multiple of 2**-z.Prec(), all of them being
// equally likely, and is always exact. If z's precision is 0, it is changed to
// DefaultPrec.
func (z *Float) URandomB(src Source) *Float {
	if z.prec == 0 {
		z.prec = DefaultPrec
	}
	n := wordsFor(z.prec)
	m := z.mant.make(n)
	fillRandom(m, src)
	m = m.shr(m, uint(n)*_W-uint(z.prec))
	z.neg = false
	z.setBits(m, -int64(z.prec), 0)
	return z.checkRange()
}

// URandom sets z to a random value drawn uniformly from the real interval
// [0, 1) and rounded to z's precision in z's rounding mode, and returns z.
// Rounding up may yield 1. The accuracy reports the rounding direction. If z's
// precision is 0, it is changed to DefaultPrec.
func (z *Float) URandom(src Source) *Float {
	if z.prec == 0 {
		z.prec = DefaultPrec
	}

	// the exponent follows the position of the first 1 bit of an infinite
	// random binary fraction
	var exp int64
	for {
		r := src.Uint64()
		if r != 0 {
			exp -= int64(bits.LeadingZeros64(r))
			break
		}
		exp -= 64
		if exp < MinExp-1 {
			break
		}
	}

	n := wordsFor(z.prec)
	m := z.mant.make(n)
	fillRandom(m, src)
	const msb = 1 << (_W - 1)
	m[n-1] |= msb
	lsb := Word(1) << (uint(n)*_W - uint(z.prec))
	m[0] &^= lsb - 1

	// the bits below the precision are random and almost surely not all
	// zero: the value is never exactly representable
	var up bool
	switch z.mode {
	case ToNearestEven, ToNearestAway:
		up = src.Uint64()>>63 != 0
	case AwayFromZero, ToPositiveInf:
		up = true
	}
	if up && addVW(m, m, lsb) != 0 {
		// mantissa overflow: m is 0
		m[n-1] = msb
		exp++
	}

	z.form = finite
	z.neg = false
	z.mant = m
	z.exp = exp
	z.acc = makeAcc(up)
	return z.checkRange()
}
