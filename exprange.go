// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

// CheckRange brings a nonzero finite z whose exponent lies outside [emin,
// emax] back into range and returns the raised flags.
//
// On overflow, z becomes ±Inf, or the finite value of largest magnitude with
// exponent emax if z's rounding mode rounds toward zero in the direction of
// z's sign. On underflow, z becomes ±0 or ±2**(emin-1), the smallest
// magnitude with exponent emin, following the rounding mode. In the nearest
// modes, values of magnitude in [2**(emin-2), 2**(emin-1)) round to the
// smallest magnitude, except that the midpoint 2**(emin-2) rounds to zero
// under ToNearestEven unless z's accuracy shows that the exact value was
// larger in magnitude.
//
// z's accuracy is updated. Values inside the range, zeros, infinities and NaN
// are left unchanged and CheckRange returns 0.
func (z *Float) CheckRange(emin, emax int64) Flags {
	if z.form != finite {
		return 0
	}
	switch {
	case z.exp > emax:
		if z.roundsTowardZero() {
			z.setMaxMag(emax)
			z.acc = makeAcc(z.neg)
		} else {
			z.form = inf
			z.acc = makeAcc(!z.neg)
		}
		return Overflow | Inexact
	case z.exp < emin:
		var toZero bool
		switch z.mode {
		case ToNearestEven, ToNearestAway:
			// z is in [2**(exp-1), 2**exp); the midpoint between 0 and
			// 2**(emin-1) is 2**(emin-2).
			toZero = z.exp < emin-1
			if !toZero && z.exp == emin-1 && z.MinPrec() == 1 {
				larger := z.acc == Above
				if z.neg {
					larger = z.acc == Below
				}
				toZero = larger || (z.mode == ToNearestEven && z.acc == Exact)
			}
		default:
			toZero = z.roundsTowardZero()
		}
		if toZero {
			z.form = zero
			z.acc = makeAcc(z.neg)
		} else {
			z.setMinMag(emin)
			z.acc = makeAcc(!z.neg)
		}
		return Underflow | Inexact
	}
	return 0
}

// roundsTowardZero reports whether directed rounding of z in its rounding
// mode decreases its magnitude.
func (z *Float) roundsTowardZero() bool {
	switch z.mode {
	case ToZero, Faithful:
		return true
	case ToNegativeInf:
		return !z.neg
	case ToPositiveInf:
		return z.neg
	}
	return false
}

// setMaxMag sets the magnitude of z to the largest value at z's precision
// with exponent e. The sign is unchanged.
func (z *Float) setMaxMag(e int64) {
	n := wordsFor(z.prec)
	z.mant = z.mant.make(n)
	for i := range z.mant {
		z.mant[i] = _M
	}
	z.mant[0] &^= Word(1)<<(uint(n)*_W-uint(z.prec)) - 1
	z.form = finite
	z.exp = e
}

// setMinMag sets the magnitude of z to 2**(e-1). The sign is unchanged.
func (z *Float) setMinMag(e int64) {
	z.mant = z.mant.setWord(1 << (_W - 1))
	z.form = finite
	z.exp = e
}

// Subnormalize emulates IEEE 754 gradual underflow for a format with z's
// precision and minimal exponent emin: a nonzero finite z with exponent in
// [emin, emin+prec-2] is rounded again, in z's rounding mode, to a multiple
// of 2**(emin-1), that is to exp-emin+1 bits.
//
// z's accuracy must be the accuracy of the rounding that produced z; it is
// used to resolve halfway cases so that the result is the correct rounding of
// the original exact value. Subnormalize returns Underflow|Inexact if the
// final result is inexact and 0 otherwise.
func (z *Float) Subnormalize(emin int64) Flags {
	if z.form != finite || z.exp < emin || z.exp-emin >= int64(z.prec)-1 {
		return 0
	}
	p := uint32(z.exp - emin + 1) // 1 <= p < z.prec
	old, mode, prec := z.acc, z.mode, z.prec

	if old != Exact && (mode == ToNearestEven || mode == ToNearestAway) && z.isHalfway(p) {
		// the exact value lies on the side of z given by old
		if (old == Below) != z.neg {
			z.mode = AwayFromZero
		} else {
			z.mode = ToZero
		}
	}
	z.prec = p
	z.round(0)
	z.prec, z.mode = prec, mode
	if z.acc == Exact {
		z.acc = old
	}
	if z.acc != Exact {
		return Underflow | Inexact
	}
	return 0
}

// isHalfway reports whether z lies exactly halfway between two consecutive
// values of p bits.
func (z *Float) isHalfway(p uint32) bool {
	bits := uint64(len(z.mant)) * _W
	if uint64(p) >= bits {
		return false
	}
	r := uint(bits - uint64(p) - 1)
	return z.mant.bit(r) == 1 && z.mant.sticky(r) == 0
}
