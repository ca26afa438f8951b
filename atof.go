// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Float conversion functions.

package mpf

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"math/bits"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var floatZero Float

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by Parse, with base argument 0. The entire string (not just a prefix) must
// be valid for success. If the operation failed, the value of z is undefined
// but the returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	if f, _, err := z.Parse(s, 0); err == nil {
		return f, true
	}
	return nil, false
}

// Parse parses s which must contain a text representation of a floating-point
// number with a mantissa in the given conversion base (the exponent is always a
// decimal number), or a string representing an infinite value or a NaN.
//
// For base 0, an underscore character “_” may appear between a base prefix
// and an adjacent digit, and between successive digits; such underscores do
// not change the value of the number. Incorrect placement of underscores is
// reported as an error if there are no other errors. If base != 0, underscores
// are not recognized and thus terminate scanning like any other character that
// is not a valid radix point or digit.
//
// It sets z to the correctly rounded value of the corresponding floating-point
// value, and returns z, the actual base b, and an error err, if any. The
// entire string (not just a prefix) must be consumed for success. If z's
// precision is 0, it is changed to DefaultPrec before rounding takes effect.
// The number must be of the form:
//
//	number    = [ sign ] ( float | special ) .
//	sign      = "+" | "-" .
//	float     = ( mantissa | prefix pmantissa ) [ exponent ] .
//	prefix    = "0" ( "b" | "B" | "o" | "O" | "x" | "X" ) .
//	mantissa  = digits "." [ digits ] | digits | "." digits .
//	pmantissa = [ "_" ] digits "." [ digits ] | [ "_" ] digits | "." digits .
//	exponent  = ( "e" | "E" | "p" | "P" | "@" ) [ sign ] digits .
//	digits    = digit { [ "_" ] digit } .
//	digit     = "0" ... "9" | "a" ... "z" | "A" ... "Z" .
//	special   = "@inf@" | "@nan@" | "inf" | "infinity" | "nan" [ "(" chars ")" ] .
//
// The base argument must be 0 or in the range [2, MaxBase]. Providing an
// invalid base argument will lead to a run-time panic.
//
// For base 0, the number prefix determines the actual base: A prefix of “0b”
// or “0B” selects base 2, “0o” or “0O” selects base 8, and “0x” or “0X”
// selects base 16. Otherwise, the actual base is 10 and no prefix is accepted.
//
// Digits use the alphabet of math/big: for bases up to 36, letters are case
// insensitive and stand for the values 10 to 35; above 36, lower case letters
// are 10 to 35 and upper case letters are 36 to 61.
//
// An "e" or "E" exponent indicates a power of the base and is only accepted
// for bases up to 10. An "@" exponent indicates a power of the base in any
// base. A "p" or "P" exponent indicates a power of two and is only accepted
// for bases 2 and 16; for instance, "0x1.fffffffffffffp1023" (using base 0)
// represents the maximum float64 value.
//
// The words in special are case insensitive; apart from "@inf@" and "@nan@",
// they are only recognized for bases up to 16.
//
// The returned *Float f is nil and the value of z is valid but not defined if
// an error is reported.
func (z *Float) Parse(s string, base int) (f *Float, b int, err error) {
	n, b, err := z.parse(s, base)
	if err != nil {
		return nil, b, err
	}
	// entire string must have been consumed
	if n < len(s) {
		return nil, b, errors.Errorf("expected end of string, found %q", s[n])
	}
	return z, b, nil
}

// ParsePrefix is like Parse but skips leading white space and accepts any
// string starting with a valid number. It sets z to the longest such number
// and returns the number of bytes of s that were consumed, white space
// included: the rest of s starts at s[n]. An exponent marker or a base prefix
// that is not followed by digits is not consumed, so "1e+" and "0x" yield 1
// and 0 with n = 1. If no conversion could be performed, n is 0, z is left
// untouched and a non-nil error is returned.
func (z *Float) ParsePrefix(s string, base int) (n int, err error) {
	ws := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	if n, _, err = z.parse(s[ws:], base); err != nil {
		return 0, err
	}
	return ws + n, nil
}

// ParseFloat is like f.Parse(s, base) with f set to the given precision
// and rounding mode.
func ParseFloat(s string, base int, prec uint, mode RoundingMode) (f *Float, b int, err error) {
	return new(Float).SetPrec(prec).SetMode(mode).Parse(s, base)
}

func (z *Float) parse(s string, base int) (n, b int, err error) {
	if base != 0 && (base < 2 || base > MaxBase) {
		panic(fmt.Sprintf("invalid number base %d", base))
	}

	var t Float
	t.prec, t.mode = z.prec, z.mode
	if t.prec == 0 {
		t.prec = DefaultPrec
	}

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		t.neg = s[i] == '-'
		i++
	}

	b = base
	if b == 0 {
		b = 10
	}
	if w, f := specialWord(s[i:], base); w > 0 {
		t.form = f
		z.Swap(&t)
		return i + w, b, nil
	}

	r := &countingReader{r: strings.NewReader(s[i:])}
	if b, err = t.scan(r, base); err != nil {
		return 0, b, err
	}
	z.Swap(&t)
	return i + r.n, b, nil
}

// specialWord reports the length of the infinity or NaN word s starts with,
// and the corresponding form.
func specialWord(s string, base int) (int, form) {
	hasPrefix := func(p string) bool {
		return len(s) >= len(p) && strings.EqualFold(s[:len(p)], p)
	}
	switch {
	case hasPrefix("@inf@"):
		return 5, inf
	case hasPrefix("@nan@"):
		return 5, nan
	}
	if base > 16 {
		return 0, zero
	}
	switch {
	case hasPrefix("infinity"):
		return 8, inf
	case hasPrefix("inf"):
		return 3, inf
	case hasPrefix("nan"):
		// optional n-char-sequence
		if len(s) > 3 && s[3] == '(' {
			if j := strings.IndexByte(s[4:], ')'); j >= 0 && isAlnum(s[4:4+j]) {
				return 5 + j, nan
			}
		}
		return 3, nan
	}
	return 0, zero
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if digitVal(s[i]) > MaxBase && s[i] != '_' {
			return false
		}
	}
	return true
}

// digitVal returns the value of the digit ch in the math/big alphabet for
// bases above 36. For bases up to 36, callers fold upper case letters.
func digitVal(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'Z':
		return int(ch - 'A' + 36)
	}
	return MaxBase + 1
}

// scan sets z to the value of the number read from r, whose sign must have
// been set in z.neg. It returns the actual base. It does not recognize
// special values and does not expect EOF at the end.
func (z *Float) scan(r io.ByteScanner, base int) (b int, err error) {
	b = base
	prefix := 0
	prev := '.' // '_', '0' (a digit) or '.' (anything else)
	var digs []byte

	// base prefix
	if base == 0 {
		b = 10
		ch, err := r.ReadByte()
		if err == nil && ch == '0' {
			digs = append(digs, '0')
			prev = '0'
			if ch, err = r.ReadByte(); err == nil {
				switch ch {
				case 'b', 'B':
					b, prefix = 2, 'b'
				case 'o', 'O':
					b, prefix = 8, 'o'
				case 'x', 'X':
					b, prefix = 16, 'x'
				default:
					_ = r.UnreadByte()
				}
				if prefix != 0 {
					digs = digs[:0]
				}
			}
		} else if err == nil {
			_ = r.UnreadByte()
		}
	}

	// mantissa digits
	var (
		frac     int64
		dot      bool
		invalSep bool
		read     int // mantissa bytes consumed
	)
	ch, err := r.ReadByte()
loop:
	for err == nil {
		read++
		switch {
		case ch == '.' && !dot:
			dot = true
			prev = '.'
		case ch == '_' && base == 0:
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		default:
			d := digitVal(ch)
			if b <= 36 && 'A' <= ch && ch <= 'Z' {
				d = int(ch - 'A' + 10)
			}
			if d >= b {
				_ = r.UnreadByte()
				read--
				break loop
			}
			digs = append(digs, ch)
			prev = '0'
			if dot {
				frac++
			}
		}
		ch, err = r.ReadByte()
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return b, errors.Wrap(err, "scanning mantissa")
	}
	if len(digs) == 0 && prefix != 0 {
		// a prefix without digits: the number is the leading "0"
		for ; read >= 0; read-- {
			if err = r.UnreadByte(); err != nil {
				return b, errors.Wrap(err, "scanning mantissa")
			}
		}
		b, digs, frac, prev, invalSep = 10, append(digs, '0'), 0, '0', false
	}
	if len(digs) == 0 {
		return b, errNoDigits
	}
	if invalSep || prev == '_' {
		return b, errInvalSep
	}

	// exponent
	accept := expBase
	if b <= 10 {
		accept |= expDec
	}
	if b == 2 || b == 16 {
		accept |= expBin
	}
	exp, kind, err := scanExponent(r, accept, base == 0)
	if err != nil {
		return b, err
	}

	var m big.Int
	if _, ok := m.SetString(string(digs), b); !ok {
		return b, errors.Errorf("invalid mantissa %q in base %d", digs, b)
	}
	z.acc = Exact
	if m.Sign() == 0 {
		z.form = zero
		return b, nil
	}

	var d, e2 int64
	if kind == expBin {
		e2 = exp
	} else {
		d = exp
	}
	z.setScaled(&m, b, satAdd(d, -frac), e2)
	return b, nil
}

// scaleExactMax bounds the size in bits of the power of the base computed
// exactly by setScaled.
const scaleExactMax = 1 << 16

// setScaled sets z to the correctly rounded value of m × b**d × 2**e2, for a
// positive m. z.neg must be set.
func (z *Float) setScaled(m *big.Int, b int, d, e2 int64) {
	if b&(b-1) == 0 {
		k := int64(bits.TrailingZeros(uint(b)))
		z.setBits(nat(nil).setInt(m), satAdd(satMul(k, d), e2), 0)
		z.checkRange()
		return
	}

	neg := z.neg
	ad := uint64(d)
	if d < 0 {
		ad = uint64(-(d + 1)) + 1
	}
	if float64(ad)*math.Log2(float64(b)) <= float64(max(8*uint64(z.prec), scaleExactMax)) {
		var p big.Int
		p.Exp(big.NewInt(int64(b)), new(big.Int).SetUint64(ad), nil)
		if d >= 0 {
			p.Mul(&p, m)
			z.setBits(nat(nil).setInt(&p), e2, 0)
		} else {
			// quotient with at least prec+2 bits followed by a sticky bit
			s := max(int64(z.prec)+2+int64(p.BitLen())-int64(m.BitLen()), 0)
			var q, r big.Int
			q.Lsh(m, uint(s))
			q.QuoRem(&q, &p, &r)
			var sbit uint
			if r.Sign() != 0 {
				sbit = 1
			}
			z.setBits(nat(nil).setInt(&q), satAdd(e2, -s), sbit)
		}
		z.checkRange()
		return
	}

	w := z.prec + uint32(bits.Len64(ad)) + 32
	for i := 0; ; i++ {
		var t, p Float
		t.prec, p.prec = w, w
		p.SetInt64(int64(b))
		p.PowUint64(&p, ad)
		t.SetInt(m)
		if d >= 0 {
			t.Mul(&t, &p)
		} else {
			t.Quo(&t, &p)
		}
		t.Mul2Exp(&t, e2)
		t.neg = neg
		err := int64(w) - int64(bits.Len64(ad)) - 5
		if t.form != finite || err > 0 && t.CanRound(uint(err), uint(z.prec), z.mode) || i == maxZivIter {
			z.Set(&t)
			return
		}
		w += w / 2
	}
}

var _ fmt.Scanner = &floatZero // *Float must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts formats whose verbs are supported by
// fmt.Scan for floating point values, which are:
// 'b' (binary), 'e', 'E', 'f', 'F', 'g' and 'G', as well as 'v'. The number
// is parsed as by Parse with base 0.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'v':
	default:
		return errors.Errorf("bad verb '%%%c' for Float", ch)
	}
	s.SkipSpace()
	tok, err := s.Token(false, isNumberRune)
	if err != nil {
		return errors.Wrap(err, "scanning Float")
	}
	if _, _, err = z.Parse(string(tok), 0); err != nil {
		return err
	}
	return nil
}

func isNumberRune(r rune) bool {
	switch {
	case '0' <= r && r <= '9', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	}
	return strings.ContainsRune("+-._@()", r)
}
