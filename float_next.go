// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

// NextAbove replaces z by the next representable value toward +Inf at z's
// precision and returns z. NaN and +Inf are left unchanged; -Inf becomes the
// finite value of largest magnitude. The result is exact.
func (z *Float) NextAbove() *Float {
	return z.NextAboveIn(MinExp, MaxExp)
}

// NextBelow replaces z by the next representable value toward -Inf at z's
// precision and returns z.
func (z *Float) NextBelow() *Float {
	return z.NextBelowIn(MinExp, MaxExp)
}

// NextToward replaces z by the next representable value toward y and returns
// z. z becomes a NaN if z or y is a NaN, and is left unchanged if z == y.
func (z *Float) NextToward(y *Float) *Float {
	return z.NextTowardIn(y, MinExp, MaxExp)
}

// NextAboveIn is like NextAbove for values whose exponents are restricted to
// [emin, emax].
func (z *Float) NextAboveIn(emin, emax int64) *Float {
	z.acc = Exact
	if z.form == nan || z.prec == 0 {
		return z
	}
	z.nextUp(emin, emax)
	return z
}

// NextBelowIn is like NextBelow for values whose exponents are restricted to
// [emin, emax].
func (z *Float) NextBelowIn(emin, emax int64) *Float {
	z.acc = Exact
	if z.form == nan || z.prec == 0 {
		return z
	}
	z.neg = !z.neg
	z.nextUp(emin, emax)
	z.neg = !z.neg
	return z
}

// NextTowardIn is like NextToward for values whose exponents are restricted
// to [emin, emax].
func (z *Float) NextTowardIn(y *Float, emin, emax int64) *Float {
	if z.form == nan || y.form == nan {
		return z.SetNaN()
	}
	switch z.Cmp(y) {
	case -1:
		return z.NextAboveIn(emin, emax)
	case 1:
		return z.NextBelowIn(emin, emax)
	}
	z.acc = Exact
	return z
}

// nextUp moves z one ulp toward +Inf.
func (z *Float) nextUp(emin, emax int64) {
	switch z.form {
	case inf:
		if z.neg {
			z.setMaxMag(emax)
		}
		return
	case zero:
		z.neg = false
		z.setMinMag(emin)
		return
	}

	// full-length mantissa
	n := wordsFor(z.prec)
	if d := n - len(z.mant); d > 0 {
		m := nat(nil).make(n)
		copy(m[d:], z.mant)
		clear(m[:d])
		z.mant = m
	}
	lsb := Word(1) << (uint(n)*_W - uint(z.prec))
	const msb = 1 << (_W - 1)

	if !z.neg {
		// increase magnitude
		if addVW(z.mant, z.mant, lsb) != 0 {
			z.exp++
			z.mant[n-1] = msb
			if z.exp > emax {
				z.form = inf
			}
		}
		return
	}

	// decrease magnitude
	if z.MinPrec() == 1 {
		// power of two: all ones below
		if z.exp-1 < emin {
			z.form = zero
			return
		}
		z.setMaxMag(z.exp - 1)
		return
	}
	subVW(z.mant, z.mant, lsb)
}
