// This file mirrors types and constants from math/big.

package mpf

import (
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 10 + ('z' - 'a' + 1) + ('Z' - 'A' + 1)

// Exponent and precision limits.
//
// MinExp and MaxExp bound the binary exponent of finite values. Exponents are
// tracked in 64 bits so that intermediate results may leave this range before
// the range guard brings them back in.
const (
	MaxExp  = 1<<62 - 1      // largest supported exponent
	MinExp  = 1 - 1<<62      // smallest supported exponent
	MaxPrec = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
	MinPrec = 2              // smallest supported precision
)

// DefaultPrec is the precision used by operations on a destination with zero
// precision when no operand provides one.
const DefaultPrec = 53

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a nat slice long enough to hold up to x.prec bits;
// the slice may (but doesn't have to) be shorter if the mantissa contains
// trailing 0 bits. x.mant is normalized if the msb of x.mant == 1 (i.e.,
// the msb is shifted all the way "to the left"). Thus, if the mantissa has
// trailing 0 bits or x.prec is not a multiple of the Word size _W,
// x.mant[0] has trailing zero bits. The msb of the mantissa corresponds
// to the value 0.5; the exponent x.exp shifts the binary point as needed.
//
// A zero, infinite or NaN Float x ignores x.mant and x.exp.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                zero      sign     -            -
// 0 < |x| < +Inf    finite    sign     mantissa     exponent
// ±Inf              inf       sign     -            -
// NaN               nan       sign     -            -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
)

// RoundingMode determines how a Float value is rounded to the
// desired precision. Rounding may change the Float value; the
// rounding error is described by the Float's Accuracy.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
	Faithful                          // one of the two neighbours; this implementation rounds toward zero
)

//go:generate stringer -type=RoundingMode

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Float value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Float.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// countingReader wraps an io.ByteScanner and keeps track of the number of
// bytes consumed.
type countingReader struct {
	r io.ByteScanner
	n int
}

func (r *countingReader) ReadByte() (byte, error) {
	ch, err := r.r.ReadByte()
	if err == nil {
		r.n++
	}
	return ch, err
}

func (r *countingReader) UnreadByte() error {
	err := r.r.UnreadByte()
	if err == nil {
		r.n--
	}
	return err
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

// same reports whether x and y start at the same address.
func same(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[:1][0] == &y[:1][0]
}

func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
	errInvalSep = errors.New("'_' must separate successive digits")
)

// exponent markers accepted by scanExponent
const (
	expBase = 1 << iota // '@': power of the mantissa base
	expDec              // 'e', 'E': power of the mantissa base, bases <= 10 only
	expBin              // 'p', 'P': power of two
)

// scanExponent scans an exponent marker among the accepted ones, followed by
// an optionally signed decimal integer. It returns the exponent value and the
// marker kind found (0 if there is no exponent). A marker that is not followed
// by a digit, after an optional sign, is not part of the number: it is unread
// together with the sign, so r must support unreading up to three bytes.
func scanExponent(r io.ByteScanner, accept int, sepOk bool) (exp int64, kind int, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, 0, err
	}

	// exponent char
	switch {
	case ch == '@' && accept&expBase != 0:
		kind = expBase
	case (ch == 'e' || ch == 'E') && accept&expDec != 0:
		kind = expDec
	case (ch == 'p' || ch == 'P') && accept&expBin != 0:
		kind = expBin
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, 0, nil
	}

	// sign
	var digits []byte
	read := 1 // bytes read since the marker, marker included
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		if ch == '-' {
			digits = append(digits, '-')
		}
		read++
		ch, err = r.ReadByte()
	}
	if err == nil {
		read++
	}
	if err != nil && err != io.EOF {
		return 0, 0, err
	}
	if err != nil || ch < '0' || '9' < ch {
		// a marker not followed by digits does not start an exponent
		for ; read > 0; read-- {
			if err := r.UnreadByte(); err != nil {
				return 0, 0, err
			}
		}
		return 0, 0, nil
	}

	// prev encodes the previously seen char: it is one
	// of '_', '0' (a digit), or '.' (anything else). A
	// valid separator '_' may only occur after a digit.
	prev := '.'
	invalSep := false

	// exponent value
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			digits = append(digits, ch)
			prev = '0'
			hasDigits = true
		} else if ch == '_' && sepOk {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errNoDigits
	}
	if err == nil {
		exp, err = strconv.ParseInt(string(digits), 10, 64)
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// saturate: the range guard turns this into an overflow or underflow
			err = nil
		}
	}
	// other errors take precedence over invalid separators
	if err == nil && (invalSep || prev == '_') {
		err = errInvalSep
	}

	return
}

// satAdd returns x+y, saturated to the int64 range.
func satAdd(x, y int64) int64 {
	s := x + y
	if (s > x) == (y > 0) {
		return s
	}
	if y > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

// satMul returns x*y, saturated to the int64 range.
func satMul(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	p := x * y
	if p/y == x && !(x == -1 && y == math.MinInt64) && !(y == -1 && x == math.MinInt64) {
		return p
	}
	if (x < 0) != (y < 0) {
		return math.MinInt64
	}
	return math.MaxInt64
}
