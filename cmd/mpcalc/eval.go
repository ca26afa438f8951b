// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/db47h/mpf"
	"github.com/db47h/mpf/context"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// A function evaluates a named operation into z. args has exactly arity
// elements.
type function struct {
	arity int
	usage string
	eval  func(a *app, z *mpf.Float, args []string) error
}

func constant(f func(*context.Context, *mpf.Float) *mpf.Float) function {
	return function{0, "", func(a *app, z *mpf.Float, _ []string) error {
		f(a.ctx, z)
		return nil
	}}
}

func unary(f func(c *context.Context, z, x *mpf.Float) *mpf.Float) function {
	return function{1, "X", func(a *app, z *mpf.Float, args []string) error {
		x, err := a.parse(args[0])
		if err != nil {
			return err
		}
		f(a.ctx, z, x)
		return nil
	}}
}

func binary(usage string, f func(c *context.Context, z, x, y *mpf.Float) *mpf.Float) function {
	return function{2, usage, func(a *app, z *mpf.Float, args []string) error {
		x, err := a.parse(args[0])
		if err != nil {
			return err
		}
		y, err := a.parse(args[1])
		if err != nil {
			return err
		}
		f(a.ctx, z, x, y)
		return nil
	}}
}

func random(f func(c *context.Context, z *mpf.Float, src mpf.Source) *mpf.Float) function {
	return function{0, "", func(a *app, z *mpf.Float, _ []string) error {
		seed := a.v.GetUint64("seed")
		if seed == 0 {
			seed = rand.Uint64()
		}
		a.log.Debug("random source", "seed", seed)
		f(a.ctx, z, rand.New(rand.NewPCG(seed, seed>>32|seed<<32)))
		return nil
	}}
}

var functions = map[string]function{
	"pi":      constant((*context.Context).Pi),
	"ln2":     constant((*context.Context).Ln2),
	"euler":   constant((*context.Context).Euler),
	"catalan": constant((*context.Context).Catalan),

	"neg":     unary((*context.Context).Neg),
	"abs":     unary((*context.Context).Abs),
	"sqr":     unary((*context.Context).Sqr),
	"sqrt":    unary((*context.Context).Sqrt),
	"recsqrt": unary((*context.Context).RecSqrt),
	"cbrt":    unary((*context.Context).Cbrt),
	"rint":    unary((*context.Context).Rint),
	"ceil":    unary((*context.Context).Ceil),
	"floor":   unary((*context.Context).Floor),
	"trunc":   unary((*context.Context).Trunc),
	"frac":    unary((*context.Context).Frac),
	"exp":     unary((*context.Context).Exp),
	"exp2":    unary((*context.Context).Exp2),
	"exp10":   unary((*context.Context).Exp10),
	"expm1":   unary((*context.Context).Expm1),
	"log":     unary((*context.Context).Log),
	"log2":    unary((*context.Context).Log2),
	"log10":   unary((*context.Context).Log10),
	"log1p":   unary((*context.Context).Log1p),
	"sin":     unary((*context.Context).Sin),
	"cos":     unary((*context.Context).Cos),
	"tan":     unary((*context.Context).Tan),
	"sec":     unary((*context.Context).Sec),
	"csc":     unary((*context.Context).Csc),
	"cot":     unary((*context.Context).Cot),
	"asin":    unary((*context.Context).Asin),
	"acos":    unary((*context.Context).Acos),
	"atan":    unary((*context.Context).Atan),
	"sinh":    unary((*context.Context).Sinh),
	"cosh":    unary((*context.Context).Cosh),
	"tanh":    unary((*context.Context).Tanh),
	"sech":    unary((*context.Context).Sech),
	"csch":    unary((*context.Context).Csch),
	"coth":    unary((*context.Context).Coth),
	"asinh":   unary((*context.Context).Asinh),
	"acosh":   unary((*context.Context).Acosh),
	"atanh":   unary((*context.Context).Atanh),
	"gamma":   unary((*context.Context).Gamma),
	"lngamma": unary((*context.Context).Lngamma),
	"digamma": unary((*context.Context).Digamma),
	"zeta":    unary((*context.Context).Zeta),
	"erf":     unary((*context.Context).Erf),
	"erfc":    unary((*context.Context).Erfc),
	"j0":      unary((*context.Context).J0),
	"j1":      unary((*context.Context).J1),
	"y0":      unary((*context.Context).Y0),
	"y1":      unary((*context.Context).Y1),
	"ai":      unary((*context.Context).Ai),
	"eint":    unary((*context.Context).Eint),
	"li2":     unary((*context.Context).Li2),

	"add":       binary("X Y", (*context.Context).Add),
	"sub":       binary("X Y", (*context.Context).Sub),
	"mul":       binary("X Y", (*context.Context).Mul),
	"quo":       binary("X Y", (*context.Context).Quo),
	"dim":       binary("X Y", (*context.Context).Dim),
	"fmod":      binary("X Y", (*context.Context).Fmod),
	"remainder": binary("X Y", (*context.Context).Remainder),
	"pow":       binary("X Y", (*context.Context).Pow),
	"hypot":     binary("X Y", (*context.Context).Hypot),
	"agm":       binary("X Y", (*context.Context).Agm),
	"atan2":     binary("Y X", (*context.Context).Atan2),
	"min":       binary("X Y", (*context.Context).Min),
	"max":       binary("X Y", (*context.Context).Max),
	"reldiff":   binary("X Y", (*context.Context).RelDiff),

	"fma": {3, "X Y U", func(a *app, z *mpf.Float, args []string) error {
		xs, err := a.parseAll(args)
		if err != nil {
			return err
		}
		a.ctx.FMA(z, xs[0], xs[1], xs[2])
		return nil
	}},
	"fms": {3, "X Y U", func(a *app, z *mpf.Float, args []string) error {
		xs, err := a.parseAll(args)
		if err != nil {
			return err
		}
		a.ctx.FMS(z, xs[0], xs[1], xs[2])
		return nil
	}},
	"root": {2, "X K", func(a *app, z *mpf.Float, args []string) error {
		x, err := a.parse(args[0])
		if err != nil {
			return err
		}
		k, err := strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			return errors.Wrapf(err, "root index")
		}
		a.ctx.Root(z, x, k)
		return nil
	}},
	"fac": {1, "N", func(a *app, z *mpf.Float, args []string) error {
		n, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return errors.Wrapf(err, "factorial argument")
		}
		a.ctx.Fac(z, n)
		return nil
	}},
	"jn": {2, "N X", func(a *app, z *mpf.Float, args []string) error {
		return a.bessel(z, args, a.ctx.Jn)
	}},
	"yn": {2, "N X", func(a *app, z *mpf.Float, args []string) error {
		return a.bessel(z, args, a.ctx.Yn)
	}},

	"urandom": random((*context.Context).URandom),
	"grandom": random((*context.Context).GRandom),
	"erandom": random((*context.Context).ERandom),
}

func (a *app) parse(s string) (*mpf.Float, error) {
	x, _, err := a.ctx.ParseFloat(s, 0)
	return x, err
}

func (a *app) parseAll(args []string) ([]*mpf.Float, error) {
	xs := make([]*mpf.Float, len(args))
	for i, s := range args {
		x, err := a.parse(s)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

func (a *app) bessel(z *mpf.Float, args []string, f func(z *mpf.Float, n int64, x *mpf.Float) *mpf.Float) error {
	n, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		return errors.Wrapf(err, "bessel order")
	}
	x, err := a.parse(args[1])
	if err != nil {
		return err
	}
	f(z, n, x)
	return nil
}

// eval evaluates the function name on args and prints the result to w.
func (a *app) eval(w io.Writer, name string, args []string) error {
	fn, ok := functions[strings.ToLower(name)]
	if !ok {
		return errors.Errorf("unknown function %q, see mpcalc list", name)
	}
	if len(args) != fn.arity {
		return errors.Errorf("%s takes %d argument(s), got %d", name, fn.arity, len(args))
	}
	c := a.ctx
	z := c.New()
	if err := fn.eval(a, z, args); err != nil {
		return err
	}
	if a.v.GetBool("subnormal") {
		c.Subnormalize(z)
	}
	a.log.Debug("eval", "func", name, "args", args, "acc", z.Acc(), "flags", c.Flags())
	if err := c.Err(); err != nil {
		return errors.Wrap(err, name)
	}
	if _, err := fmt.Fprint(w, z.Text('g', a.v.GetInt("digits"))); err != nil {
		return errors.WithStack(err)
	}
	if a.v.GetBool("flags") {
		if _, err := fmt.Fprintf(w, " [%v]", c.Flags()); err != nil {
			return errors.WithStack(err)
		}
	}
	_, err := fmt.Fprintln(w)
	return errors.WithStack(err)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range slices.Sorted(maps.Keys(functions)) {
				if _, err := fmt.Fprintln(w, strings.TrimSpace(name+" "+functions[name].usage)); err != nil {
					return errors.WithStack(err)
				}
			}
			return nil
		},
	}
}
