// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpf

import "strings"

// Flags is a set of exception conditions raised by an operation. Operations of
// this package report range conditions through CheckRange; the context package
// accumulates them in a sticky registry.
type Flags uint8

// Exception flags.
const (
	Underflow Flags = 1 << iota // a nonzero result was rounded to zero or to the smallest representable magnitude
	Overflow                    // a finite result was too large and was rounded to infinity or the largest finite value
	DivByZero                   // an exact infinite result was produced from finite operands
	Invalid                     // the result is NaN, or an ordered comparison involved a NaN
	Inexact                     // the result differs from the exact value
	Erange                      // an integer conversion was out of range
)

var flagNames = [...]string{"underflow", "overflow", "divbyzero", "invalid", "inexact", "erange"}

// Has reports whether all flags in g are set in f.
func (f Flags) Has(g Flags) bool {
	return f&g == g
}

// String returns the names of the flags set in f joined with '|', or "none"
// if f is empty.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, n := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(n)
	}
	if rest := f &^ (1<<len(flagNames) - 1); rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString("unknown")
	}
	return sb.String()
}
