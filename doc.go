// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mpf implements multiple-precision binary floating-point arithmetic
with correct rounding.

The API follows that of *big.Float, extended with the features of IEEE 754
arithmetic that big.Float lacks: NaN values, signed zeros that propagate
through every operation, seven rounding modes, an exponent range with
overflow and underflow handling, gradual underflow emulation, and a richer set
of operations (fused multiply-add, roots, integer powers, remainders, integer
rounding, neighbours, random values).

The zero value for a Float corresponds to +0 with precision 0. Thus, new values
can be declared in the usual ways and denote 0 without further initialization:

	x := new(Float)  // x is a *Float of value 0

A destination with precision 0 adopts the largest precision of its operands,
or DefaultPrec if none has one. Floats created with New start out as NaN:

	x := New(200)    // x is a NaN with 200 bits of precision

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Float) SetV(v V) *Float             // z = v
	func (z *Float) Unary(x *Float) *Float       // z = unary x
	func (z *Float) Binary(x, y *Float) *Float   // z = x binary y
	func (x *Float) Pred() P                     // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten
(and its memory reused). For instance, given three *Float values a, b and c,
the invocation

	c.Add(a, b)

computes the sum a + b, rounds it to c's precision in c's rounding mode, and
stores the result in c. After each operation, c.Acc() tells whether the result
is Exact, or Below or Above the exact value.

Special values follow IEEE 754: invalid operations such as 0/0, Inf-Inf or
Sqrt(-1) produce a NaN instead of panicking, and division of a nonzero number
by zero produces an infinity. Results whose exponent falls outside
[MinExp, MaxExp] overflow to an infinity or to the largest finite value, or
underflow to zero or the smallest positive value, depending on the rounding
mode. CheckRange and Subnormalize apply narrower exponent ranges, as used by
the context package.

Transcendental and special functions are provided by the math subpackage.
The context subpackage carries defaults (precision, rounding mode, exponent
range) and sticky exception flags, and wraps all operations accordingly.

Finally, *Float satisfies the fmt package's Scanner interface for scanning and
the Formatter interface for formatted printing, and implements gob and text
marshalling.
*/
package mpf
