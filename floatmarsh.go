// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package mpf

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Float value and all its attributes (precision,
// rounding mode, accuracy) are marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// determine max. space (bytes) required for encoding
	sz := 1 + 1 + 4 // version + mode|acc|form|neg (3+2+2+1bit) + prec
	n := 0          // number of mantissa words
	if x.form == finite {
		// add space for mantissa and exponent
		n = wordsFor(x.prec)
		// the mantissa may be shorter (trailing 0's): only encode the
		// words present
		n = min(n, len(x.mant))
		sz += 8 + n*_S // exp + mant
	}
	buf := make([]byte, sz)

	buf[0] = floatGobVersion
	b := byte(x.mode&7)<<5 | byte((x.acc+1)&3)<<3 | byte(x.form&3)<<1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)

	if x.form == finite {
		binary.BigEndian.PutUint64(buf[6:], uint64(x.exp))
		x.mant[len(x.mant)-n:].bytes(buf[14:]) // cut off unused trailing words
	}

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// The result is rounded per the precision and rounding mode of
// z unless z's precision is 0, in which case z is set exactly
// to the decoded value.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if len(buf) < 6 {
		return errors.New("Float.GobDecode: buffer too small")
	}

	if buf[0] != floatGobVersion {
		return errors.Errorf("Float.GobDecode: encoding version %d not supported", buf[0])
	}

	oldPrec := z.prec
	oldMode := z.mode

	var t Float
	b := buf[1]
	t.mode = RoundingMode((b >> 5) & 7)
	t.acc = Accuracy((b>>3)&3) - 1
	t.form = form((b >> 1) & 3)
	t.neg = b&1 != 0
	t.prec = binary.BigEndian.Uint32(buf[2:])
	if t.mode > Faithful {
		return errors.Errorf("Float.GobDecode: invalid rounding mode %d", t.mode)
	}

	if t.form == finite {
		if len(buf) < 14 {
			return errors.New("Float.GobDecode: buffer too small for finite value")
		}
		t.exp = int64(binary.BigEndian.Uint64(buf[6:]))
		t.mant = t.mant.setBytes(buf[14:])
		if t.prec < MinPrec || len(t.mant) == 0 || t.mant[len(t.mant)-1]>>(_W-1) == 0 {
			return errors.New("Float.GobDecode: invalid mantissa")
		}
		if t.exp < MinExp || t.exp > MaxExp {
			return errors.Errorf("Float.GobDecode: exponent %d out of range", t.exp)
		}
	}

	*z = t
	if oldPrec != 0 {
		z.mode = oldMode
		z.SetPrec(uint(oldPrec))
	}

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Float value is marshaled (in full precision), other
// attributes such as precision or accuracy are ignored.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	var buf []byte
	return x.Append(buf, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is rounded per the precision and rounding mode of z.
// If z's precision is 0, it is changed to DefaultPrec before rounding takes
// effect.
func (z *Float) UnmarshalText(text []byte) error {
	_, _, err := z.Parse(string(text), 0)
	if err != nil {
		err = errors.Wrapf(err, "mpf: cannot unmarshal %q into a *mpf.Float", text)
	}
	return err
}
