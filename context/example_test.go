package context_test

import (
	"fmt"

	"github.com/db47h/mpf"
	"github.com/db47h/mpf/context"
)

// binary16 returns a context for IEEE 754 half precision arithmetic: 11-bit
// significands, a largest finite value of 65504 and subnormals down to
// 2**-24. Results must go through Subnormalize to get gradual underflow.
func binary16() *context.Context {
	ctx := context.New(11, mpf.ToNearestEven)
	if err := ctx.SetEmin(-23); err != nil {
		panic(err)
	}
	if err := ctx.SetEmax(16); err != nil {
		panic(err)
	}
	return ctx
}

// Example emulates half precision arithmetic with a Context.
func Example() {
	ctx := binary16()
	x := ctx.NewInt64(65504)
	fmt.Printf("%.0f %v\n", x, ctx.Flags())
	// 65520 is halfway between 65504 and 2**16, and rounds to even
	ctx.AddInt64(x, x, 16)
	fmt.Printf("%.0f %v\n", x, ctx.Flags())

	ctx.ClearFlags(ctx.Flags())
	y := ctx.NewFloat64(0x1p-14) // smallest normal
	ctx.QuoInt64(y, y, 3)
	ctx.Subnormalize(y)
	fmt.Printf("%.0f×2**-24 %v\n", ctx.Mul2Exp(ctx.New(), y, 24), ctx.Flags())

	ctx.SetTraps(ctx.Traps() | mpf.Underflow)
	ctx.Mul(y, y, y)
	if err := ctx.Err(); err != nil {
		fmt.Printf("%v: %g\n", err, y)
	}
	// Output:
	// 65504 none
	// +Inf overflow|inexact
	// 341×2**-24 underflow|inexact
	// Mul raised underflow: 0
}

// Example_flags shows how sticky flags accumulate over a computation.
func Example_flags() {
	ctx := context.New(24, mpf.ToNearestEven)
	if err := ctx.SetEmax(20); err != nil {
		panic(err)
	}
	x := ctx.NewInt64(300)
	ctx.Mul(x, x, x) // 90000 is exact
	fmt.Println(ctx.Flags())
	ctx.Quo(x, x, ctx.NewInt64(7))
	fmt.Println(ctx.Flags())
	ctx.Mul(x, x, x)
	fmt.Printf("%g %v\n", x, ctx.Flags())
	// Output:
	// none
	// inexact
	// +Inf overflow|inexact
}
