// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Float-to-string conversion functions.

package mpf

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Digits returns the digits of x in the given base, rounded to n significant
// digits in x's rounding mode, and the exponent exp such that
//
//	x ≈ 0.digits × base**exp
//
// that is, with the radix point before the first digit. A negative x has a
// leading '-' sign. If n is 0, the number of digits is chosen so that parsing
// the result at x's precision and rounding to nearest gives back x:
// 1 + ceil((p-1)/k) for base = 2**k, and 1 + ceil(p × log(2)/log(base))
// otherwise, where p is the precision of x.
//
// Zeros yield n '0' digits and exp 0. Infinities and NaNs yield "@Inf@",
// "-@Inf@" and "@NaN@", with exp 0.
//
// Digits panics if base is not in the range [2, MaxBase] or if n < 0.
func (x *Float) Digits(base int, n int) (digits string, exp int64) {
	if base < 2 || base > MaxBase {
		panic(fmt.Sprintf("invalid number base %d", base))
	}
	if n < 0 {
		panic(fmt.Sprintf("invalid number of digits %d", n))
	}
	switch x.form {
	case nan:
		return "@NaN@", 0
	case inf:
		if x.neg {
			return "-@Inf@", 0
		}
		return "@Inf@", 0
	}
	if n == 0 {
		n = ndigits(umax32(x.prec, MinPrec), base)
	}
	var sign string
	if x.neg {
		sign = "-"
	}
	if x.form == zero {
		return sign + strings.Repeat("0", n), 0
	}
	digits, exp = x.digits(base, n, absMode(x.mode, x.neg))
	return sign + digits, exp
}

// ndigits returns the number of digits in base b needed to tell apart any
// two values of precision prec.
func ndigits(prec uint32, b int) int {
	if b&(b-1) == 0 {
		k := bits.TrailingZeros(uint(b))
		return 1 + (int(prec)-1+k-1)/k
	}
	return 1 + int(math.Ceil(float64(prec)*math.Ln2/math.Log(float64(b))))
}

// absMode returns the rounding mode that rounds the magnitude of a value of
// the given sign like mode rounds the value.
func absMode(mode RoundingMode, neg bool) RoundingMode {
	switch mode {
	case ToPositiveInf:
		if neg {
			return ToZero
		}
		return AwayFromZero
	case ToNegativeInf:
		if neg {
			return AwayFromZero
		}
		return ToZero
	case Faithful:
		return ToZero
	}
	return mode
}

// reverseMode returns the directed rounding mode opposite to mode. Nearest
// modes are returned unchanged.
func reverseMode(mode RoundingMode) RoundingMode {
	switch mode {
	case ToZero, Faithful:
		return AwayFromZero
	case AwayFromZero:
		return ToZero
	case ToNegativeInf:
		return ToPositiveInf
	case ToPositiveInf:
		return ToNegativeInf
	}
	return mode
}

// digits returns exactly n digits in base b of the magnitude of a nonzero
// finite x, rounded in the magnitude rounding mode, and the exponent exp such
// that |x| ≈ 0.digits × b**exp.
func (x *Float) digits(b, n int, mode RoundingMode) (string, int64) {
	e := x.ilogb(b) + 1
	for {
		d := x.scaledInt(b, satAdd(int64(n), -e), mode)
		s := d.Text(b)
		switch {
		case len(s) == n:
			return s, e
		case len(s) < n:
			e--
		case len(s) == n+1 && s[0] == '1' && strings.TrimRight(s[1:], "0") == "":
			// rounded up to b**n
			return s[:n], e + 1
		default:
			e++
		}
	}
}

// ilogb returns an estimate of ⌊log_b |x|⌋ for a nonzero finite x, within
// one of the exact value.
func (x *Float) ilogb(b int) int64 {
	if b&(b-1) == 0 {
		// |x| in [2**(exp-1), 2**exp)
		k := int64(bits.TrailingZeros(uint(b)))
		q := (x.exp - 1) / k
		if (x.exp-1)%k < 0 {
			q--
		}
		return q
	}
	lm := math.Log2(float64(msb64(x.mant))) - 64 // log2 of the mantissa, in [-1, 0]
	if -1<<50 < x.exp && x.exp < 1<<50 {
		return int64(math.Floor((float64(x.exp) + lm) / math.Log2(float64(b))))
	}
	var t, l Float
	t.prec, l.prec = 128, 128
	t.SetInt64(x.exp)
	t.AddFloat64(&t, lm)
	t.Quo(&t, l.log2Int(b))
	t.Floor(&t)
	e, _ := t.Int64()
	return e
}

// log2Int sets z to an approximation of log2(b) at z's precision and returns
// z. The result is computed bit by bit by repeated squaring.
func (z *Float) log2Int(b int) *Float {
	k := bits.Len(uint(b)) - 1
	var y, bit Float
	y.prec = z.prec + 16
	y.SetInt64(int64(b))
	y.exp -= int64(k) // 1 <= y < 2
	z.SetInt64(int64(k))
	bit.SetInt64(1)
	for i := uint32(0); i < z.prec+8; i++ {
		y.Mul(&y, &y)
		bit.exp--
		if y.exp > 1 {
			// y >= 2
			y.exp--
			z.Add(z, &bit)
		}
	}
	return z
}

var intOne = big.NewInt(1)

// scaledInt returns |x| × b**s rounded to an integer in the magnitude rounding
// mode, for a nonzero finite x.
func (x *Float) scaledInt(b int, s int64, mode RoundingMode) *big.Int {
	lb := math.Log2(float64(b))
	est := float64(x.exp) + float64(s)*lb // log2 of the result, within one
	if est < -64 {
		// 0 < |x| × b**s < 2**-63
		if mode == AwayFromZero {
			return big.NewInt(1)
		}
		return new(big.Int)
	}

	m, e := x.intMant()
	as := uint64(s)
	if s < 0 {
		as = uint64(-(s + 1)) + 1
	}
	size := float64(as)*lb + math.Abs(float64(e))
	if size <= float64(max(8*uint64(x.prec), scaleExactMax))+max(est, 0) {
		num := new(big.Int).Set(m.int())
		den := big.NewInt(1)
		if as > 0 {
			p := new(big.Int).Exp(big.NewInt(int64(b)), new(big.Int).SetUint64(as), nil)
			if s > 0 {
				num.Mul(num, p)
			} else {
				den = p
			}
		}
		if e > 0 {
			num.Lsh(num, uint(e))
		} else if e < 0 {
			den.Lsh(den, uint(-e))
		}
		var r big.Int
		q, _ := num.QuoRem(num, den, &r)
		if roundUp(q, &r, den, mode) {
			q.Add(q, intOne)
		}
		return q
	}

	w := uint32(max(est, 0)) + uint32(bits.Len64(as)) + 64
	for i := 0; ; i++ {
		var t, p Float
		t.prec, p.prec = w, w
		p.SetInt64(int64(b))
		p.PowUint64(&p, as)
		t.Abs(x)
		if s >= 0 {
			t.Mul(&t, &p)
		} else {
			t.Quo(&t, &p)
		}
		err := int64(w) - int64(bits.Len64(as)) - 5
		if t.form != finite || t.exp < 1 || t.CanRound(uint(err), uint(t.exp), mode) || i == maxZivIter {
			var r Float
			if t.exp >= 1 {
				r.prec = uint32(min(t.exp, MaxPrec))
			}
			r.rint(&t, mode)
			d, _ := r.Int(nil)
			if d == nil {
				d = new(big.Int)
			}
			return d
		}
		w += w / 2
	}
}

// roundUp reports whether the truncated quotient q with remainder r of a
// division by den must be incremented to round the magnitude in mode.
func roundUp(q, r, den *big.Int, mode RoundingMode) bool {
	if r.Sign() == 0 {
		return false
	}
	switch mode {
	case ToNearestEven, ToNearestAway:
		c := new(big.Int).Lsh(r, 1).Cmp(den)
		return c > 0 || c == 0 && (mode == ToNearestAway || q.Bit(0) == 1)
	case AwayFromZero:
		return true
	}
	return false
}

// Text converts the floating-point number x to a string according
// to the given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//	'x'	-0x1.dddddp±dd, hexadecimal mantissa, decimal power of two exponent
//	'X'	-0X1.dddddP±dd, hexadecimal mantissa, decimal power of two exponent
//	'p'	-0x.dddp±dd, hexadecimal mantissa, decimal power of two exponent (non-standard)
//	'b'	-ddddddp±dd, decimal mantissa, decimal power of two exponent (non-standard)
//
// For the power-of-two exponent formats, the mantissa is printed in normalized form:
//
//	'x'	hexadecimal mantissa in [1, 2), or 0
//	'p'	hexadecimal mantissa in [½, 1), or 0
//	'b'	decimal integer mantissa using x.Prec() bits, or 0
//
// If format is a different character, Text returns a "%" followed by the
// unrecognized format character.
//
// The precision prec controls the number of digits (excluding the exponent)
// printed by the 'e', 'E', 'f', 'g', 'G', 'x' and 'X' formats. For 'e', 'E',
// 'f', 'x' and 'X', it is the number of digits after the decimal point. For
// 'g' and 'G' it is the total number of digits. Digits are rounded in x's
// rounding mode. The prec value is ignored for the 'b' and 'p' formats.
//
// A negative precision selects a number of decimal digits that is enough to
// represent x uniquely at x.Prec() mantissa bits: parsing the result with the
// same precision and rounding mode yields x again. In that case the digits
// are rounded in the directed mode opposite to x's (nearest modes are kept),
// and trailing zeros are dropped.
//
// Infinities are printed as "+Inf" and "-Inf", NaNs as "NaN".
func (x *Float) Text(format byte, prec int) string {
	cap := 10
	if prec > 0 {
		cap += prec
	}
	return string(x.Append(make([]byte, 0, cap), format, prec))
}

// String formats x like x.Text('g', 10).
// (String must be called explicitly, Float.Format does not support %s verb.)
func (x *Float) String() string {
	return x.Text('g', 10)
}

// decimal holds the digits of a decimal number
//
//	0.mant × 10**exp
//
// without trailing zeros. A zero value has no digits.
type decimal struct {
	mant []byte
	exp  int64
}

// at returns the i'th mantissa digit, starting with the first digit.
func (d *decimal) at(i int64) byte {
	if 0 <= i && i < int64(len(d.mant)) {
		return d.mant[i]
	}
	return '0'
}

func newDecimal(s string, exp int64) decimal {
	s = strings.TrimRight(s, "0")
	if s == "" {
		return decimal{}
	}
	return decimal{mant: []byte(s), exp: exp}
}

// Append appends to buf the string form of the floating-point number x,
// as generated by x.Text, and returns the extended buffer.
func (x *Float) Append(buf []byte, fmt byte, prec int) []byte {
	if x.form == nan {
		return append(buf, "NaN"...)
	}

	// sign
	if x.neg {
		buf = append(buf, '-')
	}

	// Inf
	if x.form == inf {
		if !x.neg {
			buf = append(buf, '+')
		}
		return append(buf, "Inf"...)
	}

	// pick off easy formats
	switch fmt {
	case 'b':
		return x.fmtB(buf)
	case 'p':
		return x.fmtP(buf)
	case 'x', 'X':
		return x.fmtX(buf, prec, fmt == 'X')
	}

	var d decimal // == 0.0
	shortest := false
	switch fmt {
	case 'e', 'E', 'f', 'g', 'G':
		if prec < 0 {
			shortest = true
			if x.form == finite {
				n := ndigits(x.prec, 10)
				d = newDecimal(x.digits(10, n, absMode(reverseMode(x.mode), x.neg)))
			}
			// precision for shortest representation mode
			switch fmt {
			case 'e', 'E':
				prec = len(d.mant) - 1
			case 'f':
				prec = int(max(int64(len(d.mant))-d.exp, 0))
			case 'g', 'G':
				prec = len(d.mant)
			}
		} else if x.form == finite {
			mode := absMode(x.mode, x.neg)
			switch fmt {
			case 'e', 'E':
				// one digit before and prec digits after the decimal point
				d = newDecimal(x.digits(10, 1+prec, mode))
			case 'f':
				s := x.scaledInt(10, int64(prec), mode).String()
				d = newDecimal(s, int64(len(s)-prec))
			case 'g', 'G':
				if prec == 0 {
					prec = 1
				}
				d = newDecimal(x.digits(10, prec, mode))
			}
		}
	}

	switch fmt {
	case 'e', 'E':
		return fmtE(buf, fmt, prec, d)
	case 'f':
		return fmtF(buf, prec, d)
	case 'g', 'G':
		// trim trailing fractional zeros in %e format
		eprec := int64(prec)
		if eprec > int64(len(d.mant)) && int64(len(d.mant)) >= d.exp {
			eprec = int64(len(d.mant))
		}
		// %e is used if the exponent from the conversion
		// is less than -4 or greater than or equal to the precision.
		// If precision was the shortest possible, use eprec = 6 for
		// this decision.
		if shortest {
			eprec = 6
		}
		exp := d.exp - 1
		if exp < -4 || exp >= eprec {
			if prec > len(d.mant) {
				prec = len(d.mant)
			}
			return fmtE(buf, fmt+'e'-'g', prec-1, d)
		}
		if int64(prec) > d.exp {
			prec = len(d.mant)
		}
		return fmtF(buf, int(max(int64(prec)-d.exp, 0)), d)
	}

	// unknown format
	if x.neg {
		buf = buf[:len(buf)-1] // sign was added prematurely - remove it again
	}
	return append(buf, '%', fmt)
}

// %e: d.ddddde±dd
func fmtE(buf []byte, fmt byte, prec int, d decimal) []byte {
	// first digit
	ch := byte('0')
	if len(d.mant) > 0 {
		ch = d.mant[0]
	}
	buf = append(buf, ch)

	// .moredigits
	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(len(d.mant), prec+1)
		if i < m {
			buf = append(buf, d.mant[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	// e±
	buf = append(buf, fmt)
	var exp int64
	if len(d.mant) > 0 {
		exp = d.exp - 1 // -1 because first digit was printed before '.'
	}
	if exp < 0 {
		ch = '-'
		exp = -exp
	} else {
		ch = '+'
	}
	buf = append(buf, ch)

	// dd...d
	if exp < 10 {
		buf = append(buf, '0') // at least 2 exponent digits
	}
	return strconv.AppendInt(buf, exp, 10)
}

// %f: ddddddd.ddddd
func fmtF(buf []byte, prec int, d decimal) []byte {
	// integer, padded with zeros as needed
	if d.exp > 0 {
		m := min(int64(len(d.mant)), d.exp)
		buf = append(buf, d.mant[:m]...)
		for ; m < d.exp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	// fraction
	if prec > 0 {
		buf = append(buf, '.')
		for i := int64(0); i < int64(prec); i++ {
			buf = append(buf, d.at(d.exp+i))
		}
	}

	return buf
}

// fmtB appends the string of x in the format mantissa "p" exponent
// with a decimal mantissa and a binary exponent, or "0" if x is zero,
// and returns the extended buffer.
// The mantissa is normalized such that is uses x.Prec() bits in binary
// representation.
// The sign of x is ignored, and x must not be an Inf.
func (x *Float) fmtB(buf []byte) []byte {
	if x.form == zero {
		return append(buf, '0')
	}
	m, e := x.IntExp2(nil)
	buf = m.Abs(m).Append(buf, 10)
	buf = append(buf, 'p')
	if e >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, e, 10)
}

// fmtP appends the string of x in the format "0x." mantissa "p" exponent
// with a hexadecimal mantissa and a binary exponent, or "0" if x is zero,
// and returns the extended buffer.
// The mantissa is normalized such that 0.5 <= 0.mantissa < 1.0.
// The sign of x is ignored, and x must not be an Inf.
func (x *Float) fmtP(buf []byte) []byte {
	if x.form == zero {
		return append(buf, '0')
	}
	m, _ := x.intMant()
	buf = append(buf, "0x."...)
	// m has its msb set: the hex digits start at the first one
	buf = append(buf, strings.TrimRight(m.int().Text(16), "0")...)
	buf = append(buf, 'p')
	if x.exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, x.exp, 10)
}

// fmtX appends the string of x in the format "0x1." mantissa "p" exponent
// with a hexadecimal mantissa and a binary exponent, or "0x0p+00" if x is zero,
// and returns the extended buffer.
// A non-negative prec specifies the number of hexadecimal digits after the
// point, the mantissa being rounded in x's rounding mode. A negative prec
// prints as many digits as needed.
// The sign of x is ignored, and x must not be an Inf.
func (x *Float) fmtX(buf []byte, prec int, upper bool) []byte {
	start := len(buf)
	defer func() {
		if upper {
			for i := start; i < len(buf); i++ {
				if 'a' <= buf[i] && buf[i] <= 'z' {
					buf[i] -= 'a' - 'A'
				}
			}
		}
	}()

	if x.form == zero {
		buf = append(buf, "0x0"...)
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, "p+00"...)
		return buf
	}

	// round mantissa to n bits
	var n uint
	if prec < 0 {
		n = 1 + (x.MinPrec()-1+3)/4*4 // round MinPrec up to 1 mod 4
	} else {
		n = 1 + 4*uint(prec)
	}
	// n%4 == 1
	t := Float{prec: uint32(n), mode: x.mode, form: finite, neg: x.neg, exp: x.exp}
	t.mant = t.mant.set(x.mant)
	t.round(0)

	// adjust mantissa to use exactly n bits
	m := t.mant
	switch w := uint(len(t.mant)) * _W; {
	case w < n:
		m = nat(nil).shl(m, n-w)
	case w > n:
		m = nat(nil).shr(m, w-n)
	}
	exp64 := t.exp - 1

	hm := m.int().Text(16)
	buf = append(buf, "0x1"...)
	if len(hm) > 1 {
		buf = append(buf, '.')
		buf = append(buf, hm[1:]...)
	}

	buf = append(buf, 'p')
	if exp64 >= 0 {
		buf = append(buf, '+')
	} else {
		exp64 = -exp64
		buf = append(buf, '-')
	}
	// Force at least two exponent digits, to match fmt.
	if exp64 < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, exp64, 10)
}

var _ fmt.Formatter = &floatZero // *Float must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts all the regular
// formats for floating-point numbers ('b', 'e', 'E', 'f', 'F',
// 'g', 'G', 'x', 'X') as well as 'v', which is handled like 'g'. The 'p'
// format of (*Float).Text is not reachable through fmt, which prints the
// pointer value for %p.
// Format also supports the minimum precision in digits, the output
// field width, as well as the format flags '+' and ' ' for sign
// control, '0' for space or zero padding, and '-' for left or
// right justification. See the fmt package for details.
func (x *Float) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	switch format {
	case 'e', 'E', 'f', 'b', 'x', 'X':
		// nothing to do
	case 'F':
		// (*Float).Text doesn't support 'F'; handle like 'f'
		format = 'f'
	case 'v':
		// handle like 'g'
		format = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(*mpf.Float=%s)", format, x.String())
		return
	}
	var buf []byte
	buf = x.Append(buf, byte(format), prec)
	if buf == nil {
		buf = []byte("?") // should never happen, but don't crash
	}
	// len(buf) > 0

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case buf[0] == '+':
		// +Inf
		sign = "+"
		if s.Flag(' ') {
			sign = " "
		}
		buf = buf[1:]
	case s.Flag('+') && x.form != nan:
		sign = "+"
	case s.Flag(' ') && x.form != nan:
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x.IsNumber():
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

// write count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}
