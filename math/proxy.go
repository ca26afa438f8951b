package math

import "github.com/db47h/mpf"

// FMA sets z to x * y + u, computed with only one rounding, and returns z. If
// z's precision is 0, it is changed to the largest of x's, y's, or u's
// precision before the operation.
//
// This function is a proxy for z.FMA(x, y, u).
func FMA(z, x, y, u *mpf.Float) *mpf.Float {
	return z.FMA(x, y, u)
}

// FMS sets z to x * y - u, computed with only one rounding, and returns z.
//
// This function is a proxy for z.FMS(x, y, u).
func FMS(z, x, y, u *mpf.Float) *mpf.Float {
	return z.FMS(x, y, u)
}

// Sqrt sets z to the rounded square root of x, and returns it. If z's
// precision is 0, it is changed to x's precision before the operation. The
// result is NaN for x < 0.
//
// This function is a proxy for z.Sqrt(x).
func Sqrt(z, x *mpf.Float) *mpf.Float {
	return z.Sqrt(x)
}

// RecSqrt sets z to the rounded reciprocal square root of x, and returns it.
//
// This function is a proxy for z.RecSqrt(x).
func RecSqrt(z, x *mpf.Float) *mpf.Float {
	return z.RecSqrt(x)
}

// Cbrt sets z to the rounded cube root of x, and returns it.
//
// This function is a proxy for z.Cbrt(x).
func Cbrt(z, x *mpf.Float) *mpf.Float {
	return z.Cbrt(x)
}

// Root sets z to the rounded k-th root of x, and returns it.
//
// This function is a proxy for z.Root(x, k).
func Root(z, x *mpf.Float, k uint64) *mpf.Float {
	return z.Root(x, k)
}
