// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// A Context holds the state that operations on Floats would otherwise read
// from process-wide settings: a default precision, a default rounding mode,
// an exponent range and a set of sticky exception flags. One Context should
// be used per goroutine.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *mpf.Float
//
// create a new mpf.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other Float arguments like:
//
//	func (c *Context) UnaryOp(z, x *mpf.Float) *mpf.Float
//	func (c *Context) BinaryOp(z, x, y *mpf.Float) *mpf.Float
//
// set z to the result of Op(args), rounded using c's precision and rounding
// mode, bring it into c's exponent range and return z. The exception flags
// raised by the operation are added to c's flags.
//
// Flags that are also set in c's traps make the operation fail: the error is
// recorded, further operations with the context will be no-ops (they simply
// return the receiver z) until (*Context).Err is called to check for errors.
package context

import (
	"fmt"
	"math/big"

	"github.com/db47h/mpf"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// DefaultTraps is the set of flags trapped by a new Context.
const DefaultTraps = mpf.Invalid | mpf.DivByZero

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision, exponent range and error handling.
type Context struct {
	prec  uint32
	mode  mpf.RoundingMode
	emin  int64
	emax  int64
	flags mpf.Flags
	traps mpf.Flags
	err   error
}

// An Error describes the trapped flags raised by an operation.
type Error struct {
	Op    string
	Flags mpf.Flags
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s raised %v", e.Op, e.Flags)
}

// New creates a new context with the given precision and rounding mode, the
// full exponent range and DefaultTraps. If prec is 0, it will be set to
// mpf.DefaultPrec.
func New(prec uint, mode mpf.RoundingMode) *Context {
	c := &Context{emin: mpf.MinExp, emax: mpf.MaxExp, traps: DefaultTraps}
	return c.SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() mpf.RoundingMode {
	return c.mode
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode mpf.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec < MinPrec, it is set to
// mpf.DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	switch {
	case prec < mpf.MinPrec:
		prec = mpf.DefaultPrec
	case prec > mpf.MaxPrec:
		prec = mpf.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// Emin returns the smallest exponent allowed by c.
func (c *Context) Emin() int64 { return c.emin }

// Emax returns the largest exponent allowed by c.
func (c *Context) Emax() int64 { return c.emax }

// SetEmin sets the smallest exponent allowed by c. Existing Floats are not
// affected. It fails if e is outside [mpf.MinExp, mpf.MaxExp] or larger than
// c.Emax().
func (c *Context) SetEmin(e int64) error {
	if e < mpf.MinExp || e > mpf.MaxExp {
		return errors.Errorf("emin %d out of range [%d, %d]", e, int64(mpf.MinExp), int64(mpf.MaxExp))
	}
	if e > c.emax {
		return errors.Errorf("emin %d larger than emax %d", e, c.emax)
	}
	c.emin = e
	return nil
}

// SetEmax sets the largest exponent allowed by c. Existing Floats are not
// affected. It fails if e is outside [mpf.MinExp, mpf.MaxExp] or smaller
// than c.Emin().
func (c *Context) SetEmax(e int64) error {
	if e < mpf.MinExp || e > mpf.MaxExp {
		return errors.Errorf("emax %d out of range [%d, %d]", e, int64(mpf.MinExp), int64(mpf.MaxExp))
	}
	if e < c.emin {
		return errors.Errorf("emax %d smaller than emin %d", e, c.emin)
	}
	c.emax = e
	return nil
}

// Flags returns the exception flags raised since they were last cleared.
func (c *Context) Flags() mpf.Flags { return c.flags }

// SetFlags raises the flags f.
func (c *Context) SetFlags(f mpf.Flags) { c.flags |= f }

// ClearFlags clears the flags f. ClearFlags(c.Flags()) clears all flags.
func (c *Context) ClearFlags(f mpf.Flags) { c.flags &^= f }

// Underflow and the following methods query, raise and clear a single flag.
func (c *Context) Underflow() bool { return c.flags&mpf.Underflow != 0 }
func (c *Context) Overflow() bool { return c.flags&mpf.Overflow != 0 }
func (c *Context) DivByZero() bool { return c.flags&mpf.DivByZero != 0 }
func (c *Context) Invalid() bool { return c.flags&mpf.Invalid != 0 }
func (c *Context) Inexact() bool { return c.flags&mpf.Inexact != 0 }
func (c *Context) Erange() bool { return c.flags&mpf.Erange != 0 }
func (c *Context) SetUnderflow() { c.flags |= mpf.Underflow }
func (c *Context) SetOverflow() { c.flags |= mpf.Overflow }
func (c *Context) SetDivByZero() { c.flags |= mpf.DivByZero }
func (c *Context) SetInvalid() { c.flags |= mpf.Invalid }
func (c *Context) SetInexact() { c.flags |= mpf.Inexact }
func (c *Context) SetErange() { c.flags |= mpf.Erange }
func (c *Context) ClearUnderflow() { c.flags &^= mpf.Underflow }
func (c *Context) ClearOverflow() { c.flags &^= mpf.Overflow }
func (c *Context) ClearDivByZero() { c.flags &^= mpf.DivByZero }
func (c *Context) ClearInvalid() { c.flags &^= mpf.Invalid }
func (c *Context) ClearInexact() { c.flags &^= mpf.Inexact }
func (c *Context) ClearErange() { c.flags &^= mpf.Erange }

// Traps returns the flags that make operations fail.
func (c *Context) Traps() mpf.Flags { return c.traps }

// SetTraps sets the flags that make operations fail.
func (c *Context) SetTraps(f mpf.Flags) { c.traps = f }

// Err returns the first error encountered since the last call to Err and clears
// the error state. The error wraps an *Error.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// raise adds f to c's flags and records an error if any of them is trapped.
func (c *Context) raise(op string, f mpf.Flags) {
	c.flags |= f
	if t := f & c.traps; t != 0 && c.err == nil {
		c.err = errors.WithStack(&Error{Op: op, Flags: t})
	}
}

// New returns a new mpf.Float with value 0, precision and rounding mode set
// to c's precision and rounding mode.
func (c *Context) New() *mpf.Float {
	return new(mpf.Float).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt returns a new *mpf.Float set to the (possibly rounded) value of x.
func (c *Context) NewInt(x *big.Int) *mpf.Float {
	return c.set("NewInt", c.New().SetInt(x))
}

// NewInt64 returns a new *mpf.Float set to the (possibly rounded) value of x.
func (c *Context) NewInt64(x int64) *mpf.Float {
	return c.set("NewInt64", c.New().SetInt64(x))
}

// NewUint64 returns a new *mpf.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewUint64(x uint64) *mpf.Float {
	return c.set("NewUint64", c.New().SetUint64(x))
}

// NewInteger returns a new *mpf.Float set to the (possibly rounded) value of
// the integer x of any type.
func NewInteger[T constraints.Integer](c *Context, x T) *mpf.Float {
	z := c.New()
	if x < 0 {
		z.SetInt64(int64(x))
	} else {
		z.SetUint64(uint64(x))
	}
	return c.set("NewInteger", z)
}

// NewFloat returns a new *mpf.Float set to the (possibly rounded) value of x.
func (c *Context) NewFloat(x *mpf.Float) *mpf.Float {
	return c.Round(c.New(), x)
}

// NewBigFloat returns a new *mpf.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewBigFloat(x *big.Float) *mpf.Float {
	return c.set("NewBigFloat", c.New().SetBigFloat(x))
}

// NewFloat64 returns a new *mpf.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewFloat64(x float64) *mpf.Float {
	return c.set("NewFloat64", c.New().SetFloat64(x))
}

// NewRat returns a new *mpf.Float set to the (possibly rounded) value of x.
func (c *Context) NewRat(x *big.Rat) *mpf.Float {
	return c.set("NewRat", c.New().SetRat(x))
}

// NewString returns a new Float with the value of s and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by (*mpf.Float).Parse, with base argument 0. The entire string (not just a
// prefix) must be valid for success. If the operation failed, the returned
// value is nil.
func (c *Context) NewString(s string) (*mpf.Float, bool) {
	f, _, err := c.ParseFloat(s, 0)
	return f, err == nil
}

// ParseFloat is like f.Parse(s, base) with f set to c's precision and
// rounding mode. The result is brought into c's exponent range.
func (c *Context) ParseFloat(s string, base int) (f *mpf.Float, b int, err error) {
	f, b, err = mpf.ParseFloat(s, base, uint(c.prec), c.mode)
	if err != nil {
		return nil, b, errors.Wrapf(err, "parse %q", s)
	}
	return c.set("ParseFloat", f), b, nil
}

// set brings the freshly set z into c's exponent range and records the
// resulting flags.
func (c *Context) set(op string, z *mpf.Float) *mpf.Float {
	c.raise(op, c.check(z, false))
	return z
}

// check brings z into c's exponent range and returns the flags raised by the
// operation that produced it. finite reports whether all of its operands were
// finite.
func (c *Context) check(z *mpf.Float, finite bool) mpf.Flags {
	var f mpf.Flags
	switch {
	case z.IsNaN():
		return mpf.Invalid
	case z.IsInf():
		if z.Acc() != mpf.Exact {
			f |= mpf.Overflow
		} else if finite {
			f |= mpf.DivByZero
		}
	case z.IsZero():
		if z.Acc() != mpf.Exact {
			f |= mpf.Underflow
		}
	default:
		f |= z.CheckRange(c.emin, c.emax)
	}
	if z.Acc() != mpf.Exact {
		f |= mpf.Inexact
	}
	return f
}

// Round sets z's to the value of x and returns z rounded using c's precision
// and rounding mode.
func (c *Context) Round(z, x *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	if z != x {
		return c.set("Round", c.apply(z).Set(x))
	}
	t := new(mpf.Float).SetMode(c.mode).SetPrec(uint(c.prec)).Set(x)
	return c.set("Round", z.Copy(t))
}

// CheckRange brings z into c's exponent range, records the resulting flags
// and returns z. z's accuracy must be the accuracy of the operation that
// produced it.
func (c *Context) CheckRange(z *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	c.raise("CheckRange", z.CheckRange(c.emin, c.emax))
	return z
}

// Subnormalize rounds z again to emulate IEEE 754 gradual underflow with c's
// minimal exponent, records the resulting flags and returns z.
func (c *Context) Subnormalize(z *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	c.raise("Subnormalize", z.Subnormalize(c.emin))
	return z
}

// apply applies c's precision and rounding mode to z and returns z.
func (c *Context) apply(z *mpf.Float) *mpf.Float {
	z.SetMode(c.mode)
	if z.Prec() != uint(c.prec) {
		z.SetPrec(0).SetPrec(uint(c.prec))
	}
	return z
}

// operand returns x, or a copy of x if applying c to z would modify x.
func (c *Context) operand(z, x *mpf.Float) *mpf.Float {
	if z == x && z.Prec() != uint(c.prec) {
		return new(mpf.Float).Copy(x)
	}
	return x
}

func finite(xs ...*mpf.Float) bool {
	for _, x := range xs {
		if x.IsInf() || x.IsNaN() {
			return false
		}
	}
	return true
}

func (c *Context) op0(name string, z *mpf.Float, f func(z *mpf.Float) *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	f(c.apply(z))
	c.raise(name, c.check(z, true))
	return z
}

func (c *Context) op1(name string, z, x *mpf.Float, f func(z, x *mpf.Float) *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	x = c.operand(z, x)
	fin := finite(x)
	f(c.apply(z), x)
	c.raise(name, c.check(z, fin))
	return z
}

func (c *Context) op2(name string, z, x, y *mpf.Float, f func(z, x, y *mpf.Float) *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	x, y = c.operand(z, x), c.operand(z, y)
	fin := finite(x, y)
	f(c.apply(z), x, y)
	c.raise(name, c.check(z, fin))
	return z
}

func (c *Context) op3(name string, z, x, y, u *mpf.Float, f func(z, x, y, u *mpf.Float) *mpf.Float) *mpf.Float {
	if c.err != nil {
		return z
	}
	x, y, u = c.operand(z, x), c.operand(z, y), c.operand(z, u)
	fin := finite(x, y, u)
	f(c.apply(z), x, y, u)
	c.raise(name, c.check(z, fin))
	return z
}
