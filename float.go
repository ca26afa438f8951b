// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// A nonzero finite Float represents a multi-precision floating point number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp.
// A Float may also be zero (+0, -0), infinite (+Inf, -Inf) or not-a-number
// (NaN). All Floats are ordered, except NaN, and the ordering of two Floats x
// and y is defined by x.Cmp(y).
//
// Each Float value also has a precision, rounding mode, and accuracy.
// The precision is the maximum number of mantissa bits available to
// represent the value. The rounding mode specifies how a result should
// be rounded to fit into the mantissa bits, and accuracy describes the
// rounding error with respect to the exact result.
//
// Unless specified otherwise, all operations (including setters) that
// specify a *Float variable for the result (usually via the receiver
// with the exception of MantExp), round the numeric result according
// to the precision and rounding mode of the result variable.
//
// If the provided result precision is 0 (see below), it is set to the
// precision of the argument with the largest precision value before any
// rounding takes place, and the rounding mode remains unchanged. Thus,
// uninitialized Floats provided as result arguments will have their
// precision set to a reasonable value determined by the operands, and
// their mode is the zero value for RoundingMode (ToNearestEven).
//
// By setting the desired precision to 24 or 53 and using matching rounding
// mode (typically ToNearestEven), Float operations produce the same results
// as the corresponding float32 or float64 IEEE-754 arithmetic for operands
// that correspond to normal (i.e., not denormal) float32 or float64 numbers.
//
// Operations never panic on invalid operands: they produce a NaN instead.
// Exponent overflow and underflow lead to a ±Inf, ±0 or the largest or
// smallest finite value, depending on the rounding mode. See CheckRange.
//
// The zero (uninitialized) value for a Float is ready to use and represents
// the number +0.0 exactly, with precision 0 and rounding mode ToNearestEven.
//
// Operations always take pointer arguments (*Float) rather
// than Float values, and each unique Float value requires
// its own unique *Float pointer. To "copy" a Float value,
// an existing (or newly allocated) Float must be set to
// a new value using the Float.Set method; shallow copies
// of Floats are not supported and may lead to errors.
type Float struct {
	prec uint32
	mode RoundingMode
	acc  Accuracy
	form form
	neg  bool
	mant nat
	exp  int64
}

// New returns a new Float with the given precision, set to NaN.
// New panics if prec is outside the range [MinPrec, MaxPrec].
func New(prec uint) *Float {
	if prec < MinPrec || prec > MaxPrec {
		panic(fmt.Sprintf("mpf: precision %d out of range [%d, %d]", prec, MinPrec, uint64(MaxPrec)))
	}
	return &Float{prec: uint32(prec), form: nan}
}

// NewFloat allocates and returns a new Float set to x,
// with precision 53 and rounding mode ToNearestEven.
func NewFloat(x float64) *Float {
	return new(Float).SetFloat64(x)
}

// SetPrec sets z's precision to prec and returns the (possibly) rounded
// value of z. Rounding occurs according to z's rounding mode if the mantissa
// cannot be represented in prec bits without loss of precision.
// SetPrec(0) maps all finite values to ±0; infinite and NaN values remain
// unchanged. A zero precision is adopted from the operands of the next
// operation. SetPrec panics if prec is 1 or larger than MaxPrec.
func (z *Float) SetPrec(prec uint) *Float {
	z.acc = Exact // optimistically assume no rounding is needed

	// special case
	if prec == 0 {
		z.prec = 0
		if z.form == finite {
			// truncate z to 0
			z.acc = makeAcc(z.neg)
			z.form = zero
		}
		return z
	}

	// general case
	if prec < MinPrec || prec > MaxPrec {
		panic(fmt.Sprintf("mpf: precision %d out of range [%d, %d]", prec, MinPrec, uint64(MaxPrec)))
	}
	old := z.prec
	z.prec = uint32(prec)
	if z.prec < old {
		z.round(0)
	}
	return z
}

// SetMode sets z's rounding mode to mode and returns an exact z.
// z remains unchanged otherwise.
// z.SetMode(z.Mode()) is a cheap way to set z's accuracy to Exact.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	z.acc = Exact
	return z
}

// Prec returns the mantissa precision of x in bits.
// The result may be 0 for |x| == 0 and |x| == Inf.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.SetPrec(prec) would start rounding x).
// The result is 0 for |x| == 0, |x| == Inf and NaN.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - x.mant.trailingZeroBits()
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode {
	return x.mode
}

// Acc returns the accuracy of x produced by the most recent operation, that is
// the ternary value of the operation: Below (-1) if the result is less than the
// exact value, Above (+1) if it is greater, and Exact (0) otherwise.
func (x *Float) Acc() Accuracy {
	return x.acc
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	if x.form == zero || x.form == nan {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero. The sign bit of a
// NaN is stored but carries no meaning.
func (x *Float) Signbit() bool {
	return x.neg
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsRegular reports whether x is a nonzero finite number.
func (x *Float) IsRegular() bool {
	return x.form == finite
}

// IsNumber reports whether x is neither NaN nor infinite.
func (x *Float) IsNumber() bool {
	return x.form <= finite
}

// IsInt reports whether x is an integer.
// ±Inf and NaN values are not integers.
func (x *Float) IsInt() bool {
	if debugFloat {
		x.validate()
	}
	// special cases
	if x.form != finite {
		return x.form == zero
	}
	// x.form == finite
	if x.exp <= 0 {
		return false
	}
	// x.exp > 0
	return uint64(x.exp) >= uint64(x.MinPrec())
}

// debugging support
func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	const msb = 1 << (_W - 1)
	if x.mant[m-1]&msb == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of %s", x.mant[m-1], x.Text('p', 0)))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
}

// setExpAndRound sets the exponent of z to exp and rounds z to its precision.
// The exponent is not checked against the exponent range, see checkRange.
func (z *Float) setExpAndRound(exp int64, sbit uint) {
	z.form = finite
	z.exp = exp
	z.round(sbit)
}

// setBits sets the magnitude of z to m × 2**e and rounds it, with sbit
// acting as a sticky bit for bits below m. z.neg must already be set. m
// must be owned by z; it is normalized in place.
func (z *Float) setBits(m nat, e int64, sbit uint) {
	m = m.norm()
	if len(m) == 0 {
		z.form = zero
		z.acc = Exact
		return
	}
	z.mant = m
	z.setExpAndRound(clampExp(satAdd(e, int64(len(m))*_W-fnorm(m))), sbit)
}

// clampExp limits e to a range wide enough for the exponent range checks
// while leaving room for rounding carries.
func clampExp(e int64) int64 {
	const lim = MaxExp + 1<<61
	return max(min(e, lim), -lim)
}

// checkRange brings z back into the platform exponent range.
func (z *Float) checkRange() *Float {
	if z.form == finite && (z.exp < MinExp || z.exp > MaxExp) {
		z.CheckRange(MinExp, MaxExp)
	}
	return z
}

// Set sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the precision of x
// before setting z (and rounding will have no effect).
// Rounding is performed according to z's precision and rounding
// mode; and z's accuracy reports the result error relative to the
// exact (not rounded) result.
func (z *Float) Set(x *Float) *Float {
	return z.setSigned(x, x.neg)
}

// setSigned sets z to the (possibly rounded) value of x with sign bit neg.
func (z *Float) setSigned(x *Float, neg bool) *Float {
	if debugFloat {
		x.validate()
	}
	z.acc = Exact
	if z == x {
		z.neg = neg
		return z
	}
	z.form = x.form
	z.neg = neg
	if x.form == finite {
		z.exp = x.exp
		z.mant = z.mant.set(x.mant)
	}
	if z.prec == 0 {
		z.prec = x.prec
	} else if z.prec < x.prec {
		z.round(0)
	}
	return z.checkRange()
}

// Copy sets z to x, with the same precision, rounding mode, and
// accuracy as x, and returns z. x is not changed even if z and
// x are the same.
func (z *Float) Copy(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.prec = x.prec
		z.mode = x.mode
		z.acc = x.acc
		z.form = x.form
		z.neg = x.neg
		if z.form == finite {
			z.mant = z.mant.set(x.mant)
			z.exp = x.exp
		}
	}
	return z
}

// Swap exchanges the values of z and x, including their precision, rounding
// mode, accuracy and mantissa storage, in O(1).
func (z *Float) Swap(x *Float) {
	*z, *x = *x, *z
}

// SetNaN sets z to a NaN and returns z. The precision of z is unchanged.
func (z *Float) SetNaN() *Float {
	z.acc = Exact
	z.form = nan
	return z
}

// SetInf sets z to the infinite Float -Inf if signbit is
// set, or +Inf if signbit is not set, and returns z. The
// precision of z is unchanged and the result is always
// Exact.
func (z *Float) SetInf(signbit bool) *Float {
	z.acc = Exact
	z.form = inf
	z.neg = signbit
	return z
}

// SetZero sets z to -0 if signbit is set, or +0 otherwise, and returns z. The
// precision of z is unchanged and the result is always Exact.
func (z *Float) SetZero(signbit bool) *Float {
	z.acc = Exact
	z.form = zero
	z.neg = signbit
	return z
}

func (z *Float) setBits64(neg bool, x uint64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	z.acc = Exact
	z.neg = neg
	if x == 0 {
		z.form = zero
		return z
	}
	// x != 0
	z.form = finite
	s := bits.LeadingZeros64(x)
	z.mant = z.mant.setUint64(x << uint(s))
	z.exp = int64(64 - s) // always fits
	if z.prec < 64 {
		z.round(0)
	}
	return z
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetUint64(x uint64) *Float {
	return z.setBits64(false, x)
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have
// no effect).
func (z *Float) SetInt64(x int64) *Float {
	u := x
	if u < 0 {
		u = -u
	}
	// We cannot simply call z.SetUint64(uint64(u)) and change
	// the sign afterwards because the sign affects rounding.
	return z.setBits64(x < 0, uint64(u))
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 53 (and rounding will have
// no effect). A NaN x sets z to NaN, keeping the sign bit of x.
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = 53
	}
	z.acc = Exact
	z.neg = math.Signbit(x) // handle -0, -Inf correctly
	if math.IsNaN(x) {
		z.form = nan
		return z
	}
	if x == 0 {
		z.form = zero
		return z
	}
	if math.IsInf(x, 0) {
		z.form = inf
		return z
	}
	// normalized x != 0
	z.form = finite
	fmant, exp := math.Frexp(x) // get normalized mantissa
	z.mant = z.mant.setUint64(1<<63 | math.Float64bits(fmant)<<11)
	z.exp = int64(exp) // always fits
	if z.prec < 53 {
		z.round(0)
	}
	return z
}

// SetFloat32 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 24 (and rounding will have
// no effect).
func (z *Float) SetFloat32(x float32) *Float {
	if z.prec == 0 {
		z.prec = 24
	}
	return z.SetFloat64(float64(x))
}

// SetInt sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the larger of x.BitLen()
// or 64 (and rounding will have no effect).
func (z *Float) SetInt(x *big.Int) *Float {
	// TODO(db47h) truncating x could be more efficient if z.prec > 0
	// but small compared to the size of x, or if there
	// are many trailing 0's.
	bits := int64(x.BitLen())
	if z.prec == 0 {
		z.prec = uint32(min(max(bits, 64), MaxPrec))
	}
	z.acc = Exact
	z.neg = x.Sign() < 0
	if bits == 0 {
		z.form = zero
		return z
	}
	// x != 0
	z.mant = z.mant.set(x.Bits())
	fnorm(z.mant)
	z.setExpAndRound(bits, 0)
	return z.checkRange()
}

// SetRat sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the largest of a.BitLen(),
// b.BitLen(), or 64; with x = a/b.
func (z *Float) SetRat(x *big.Rat) *Float {
	if x.IsInt() {
		return z.SetInt(x.Num())
	}
	var a, b Float
	a.SetInt(x.Num())
	b.SetInt(x.Denom())
	if z.prec == 0 {
		z.prec = umax32(a.prec, b.prec)
	}
	return z.Quo(&a, &b)
}

// SetBigFloat sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to the precision of x (or MinPrec if x
// has a smaller precision).
func (z *Float) SetBigFloat(x *big.Float) *Float {
	if z.prec == 0 {
		z.prec = umax32(uint32(x.Prec()), MinPrec)
	}
	switch {
	case x.IsInf():
		return z.SetInf(x.Signbit())
	case x.Sign() == 0:
		return z.SetZero(x.Signbit())
	}
	var m big.Float
	e := x.MantExp(&m)
	p := m.MinPrec()
	m.SetMantExp(&m, int(p))
	i, _ := m.Int(nil)
	return z.SetIntExp2(i, int64(e)-int64(p))
}

// SetMantExp sets z to mant × 2**exp and returns z.
// The result z has the same precision and rounding mode
// as mant. SetMantExp is an inverse of MantExp but does
// not require 0.5 <= |mant| < 1.0. Specifically, for a
// given x of type *Float, SetMantExp relates to MantExp
// as follows:
//
//	mant := new(Float)
//	new(Float).SetMantExp(mant, x.MantExp(mant)).Cmp(x) == 0
//
// Special cases are:
//
//	z.SetMantExp(  ±0, exp) =   ±0
//	z.SetMantExp(±Inf, exp) = ±Inf
//	z.SetMantExp( NaN, exp) =  NaN
//
// z and mant may be the same in which case z's exponent
// is set to exp. Results outside the exponent range overflow or
// underflow according to z's rounding mode.
func (z *Float) SetMantExp(mant *Float, exp int64) *Float {
	if debugFloat {
		z.validate()
		mant.validate()
	}
	z.Set(mant)

	if z.form != finite {
		return z
	}
	z.exp = satAdd(z.exp, exp)
	return z.checkRange()
}

// MantExp breaks x into its mantissa and exponent components
// and returns the exponent. If a non-nil mant argument is
// provided its value is set to the mantissa of x, with the
// same precision and rounding mode as x. The components
// satisfy x == mant × 2**exp, with 0.5 <= |mant| < 1.0.
// Calling MantExp with a nil argument is an efficient way to
// get the exponent of the receiver.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//	( NaN).MantExp(mant) = 0, with mant set to  NaN
//
// x and mant may be the same in which case x is set to its
// mantissa value.
func (x *Float) MantExp(mant *Float) (exp int64) {
	if debugFloat {
		x.validate()
	}
	if x.form == finite {
		exp = x.exp
	}
	if mant != nil {
		mant.Set(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// SetInt64Exp2 sets z to the (possibly rounded) value of x × 2**exp and
// returns z. If z's precision is 0, it is changed to 64.
func (z *Float) SetInt64Exp2(x int64, exp int64) *Float {
	z.SetInt64(x)
	if z.form == finite {
		z.exp = satAdd(z.exp, exp)
		z.checkRange()
	}
	return z
}

// SetUint64Exp2 sets z to the (possibly rounded) value of x × 2**exp and
// returns z. If z's precision is 0, it is changed to 64.
func (z *Float) SetUint64Exp2(x uint64, exp int64) *Float {
	z.SetUint64(x)
	if z.form == finite {
		z.exp = satAdd(z.exp, exp)
		z.checkRange()
	}
	return z
}

// SetIntExp2 sets z to the (possibly rounded) value of x × 2**exp and
// returns z. If z's precision is 0, it is changed to the larger of
// x.BitLen() or 64.
func (z *Float) SetIntExp2(x *big.Int, exp int64) *Float {
	z.SetInt(x)
	if z.form == finite {
		z.exp = satAdd(z.exp, exp)
		z.checkRange()
	}
	return z
}

// Exponent returns the exponent e of a nonzero finite x, such that
// x = m × 2**e with 0.5 <= |m| < 1. It returns 0 for zero, infinite and NaN
// values.
func (x *Float) Exponent() int64 {
	if x.form != finite {
		return 0
	}
	return x.exp
}

// SetExponent sets the exponent of a nonzero finite z to e and reports
// whether it succeeded. It fails, leaving z unchanged, if z is not a nonzero
// finite number or if e is outside [MinExp, MaxExp].
func (z *Float) SetExponent(e int64) bool {
	if z.form != finite || e < MinExp || e > MaxExp {
		return false
	}
	z.exp = e
	z.acc = Exact
	return true
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (z *Float) Neg(x *Float) *Float {
	return z.setSigned(x, !x.neg)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (z *Float) Abs(x *Float) *Float {
	return z.setSigned(x, false)
}

// SetSignbit sets z to the (possibly rounded) value of x with its sign bit set
// to signbit, and returns z.
func (z *Float) SetSignbit(x *Float, signbit bool) *Float {
	return z.setSigned(x, signbit)
}

// CopySign sets z to the (possibly rounded) value of x with the sign bit of y,
// and returns z.
func (z *Float) CopySign(x, y *Float) *Float {
	return z.setSigned(x, y.neg)
}
