// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/db47h/mpf"
	"github.com/db47h/mpf/context"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// build flags
var version = "devel"

const envPrefix = "MPCALC"

const rootLong = `mpcalc evaluates a function of the mpf library with correct rounding.

Numbers are parsed in base 10 by default; 0x, 0b and 0o prefixes select
other bases. Negative arguments must follow a "--" separator. Results are
printed with enough digits to read them back at the working precision unless
--digits is set.`

const rootExamples = `  mpcalc --prec 200 sin 1
  mpcalc --mode ToZero --digits 30 pi
  MPCALC_PREC=113 mpcalc pow 2 0.5
  mpcalc --trap invalid -- sqrt -1`

// app holds the state shared by mpcalc commands once the configuration is
// loaded.
type app struct {
	v   *viper.Viper
	ctx *context.Context
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	cmd := &cobra.Command{
		Use:           "mpcalc [flags] FUNC [ARGS...]",
		Short:         "Multiple precision calculator",
		Long:          rootLong,
		Example:       rootExamples,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd.OutOrStdout(), args[0], args[1:])
		},
	}

	addFlags(cmd.PersistentFlags())
	cmd.AddCommand(newListCmd(), newVersionCmd())
	return cmd
}

// addFlags declares the configuration flags. Each one can also be set from the
// environment or the config file.
func addFlags(f *pflag.FlagSet) {
	f.String("config", "", "config `file` (json, toml or yaml)")
	f.Uint("prec", mpf.DefaultPrec, "working precision in bits")
	f.String("mode", mpf.ToNearestEven.String(), "rounding `mode`")
	f.Int64("emin", mpf.MinExp, "smallest exponent")
	f.Int64("emax", mpf.MaxExp, "largest exponent")
	f.StringSlice("trap", nil, "`flags` that abort the computation (underflow, overflow, divbyzero, invalid, inexact, erange)")
	f.Bool("subnormal", false, "emulate subnormal numbers at the bottom of the exponent range")
	f.Int("digits", -1, "number of significant digits to print, negative for the shortest exact representation")
	f.Bool("flags", false, "print the raised flags after the result")
	f.Uint64("seed", 0, "seed for the random generators, 0 for a random seed")
	f.BoolP("verbose", "v", false, "log debug information")
}

// setup loads the configuration from flags, environment and config file and
// sets up the logger and arithmetic context.
func (a *app) setup(cmd *cobra.Command) error {
	v := a.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.WithStack(err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfg)
		}
	}

	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	mode, err := parseMode(v.GetString("mode"))
	if err != nil {
		return err
	}
	traps, err := parseFlags(v.GetStringSlice("trap"))
	if err != nil {
		return err
	}
	prec := v.GetUint("prec")
	if prec < mpf.MinPrec || prec > mpf.MaxPrec {
		return errors.Errorf("precision %d out of range [%d, %d]", prec, mpf.MinPrec, uint(mpf.MaxPrec))
	}
	ctx := context.New(prec, mode)
	ctx.SetTraps(traps)
	if err = ctx.SetEmax(v.GetInt64("emax")); err != nil {
		return err
	}
	if err = ctx.SetEmin(v.GetInt64("emin")); err != nil {
		return err
	}
	a.ctx = ctx
	if cfg := v.ConfigFileUsed(); cfg != "" {
		a.log.Debug("config loaded", "file", cfg)
	}
	a.log.Debug("context", "prec", ctx.Prec(), "mode", ctx.Mode(), "emin", ctx.Emin(), "emax", ctx.Emax(), "traps", ctx.Traps())
	return nil
}

var modeAliases = map[string]mpf.RoundingMode{
	"n":  mpf.ToNearestEven,
	"na": mpf.ToNearestAway,
	"z":  mpf.ToZero,
	"a":  mpf.AwayFromZero,
	"d":  mpf.ToNegativeInf,
	"u":  mpf.ToPositiveInf,
	"f":  mpf.Faithful,
}

// parseMode returns the rounding mode named s. It accepts the RoundingMode
// constant names in any case, and the one or two letter aliases n, na, z, a,
// d, u and f.
func parseMode(s string) (mpf.RoundingMode, error) {
	if m, ok := modeAliases[strings.ToLower(s)]; ok {
		return m, nil
	}
	for m := mpf.ToNearestEven; m <= mpf.Faithful; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown rounding mode %q", s)
}

// parseFlags returns the union of the flags named in names.
func parseFlags(names []string) (mpf.Flags, error) {
	var fs mpf.Flags
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || strings.EqualFold(n, "none") {
			continue
		}
		found := false
		for f := mpf.Underflow; f <= mpf.Erange; f <<= 1 {
			if strings.EqualFold(f.String(), n) {
				fs |= f
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Errorf("unknown flag %q", n)
		}
	}
	return fs, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			_, _ = io.WriteString(w, "mpcalc version "+version+"\n")
		},
	}
}
