// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mpcalc evaluates mpf functions from the command line.
//
// Usage:
//
//	mpcalc [flags] FUNC [ARGS...]
//	mpcalc list
//	mpcalc version
//
// The precision, rounding mode, exponent range and trapped flags are read
// from flags, from MPCALC_* environment variables, or from a config file
// given with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
