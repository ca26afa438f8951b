/*
Package math implements transcendental and special functions for mpf.Float
values.

Functions have the form

	func F(z, x *mpf.Float) *mpf.Float

and set z to the value of F(x) correctly rounded to z's precision in z's
rounding mode. If z's precision is 0, it is changed to the largest precision
of the arguments before the operation. After the call, z.Acc() reports the
direction of the rounding error, and is Exact only when the result is exactly
representable. z may be one of the arguments.

Results are computed at an increasing working precision until rounding can be
decided. Since the number of retries is bounded, results that are
pathologically close to a rounding boundary are returned faithfully rounded.

Invalid operations (for example Log of a negative number) return NaN, poles
return an infinity, and results outside the exponent range overflow or
underflow as for the mpf package. Special values follow C99 Annex F where it
applies.

The constants Pi, Ln2, Euler and Catalan are cached at the largest precision
requested so far. All functions are safe for concurrent use provided that the
arguments and destinations are not shared.
*/
package math
