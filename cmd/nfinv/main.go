// SPDX-License-Identifier: MIT

// Command nfinv prints number-field invariants of a polynomial as YAML.
//
//	nfinv [-desc] [-targets list] [-workers n] [-timeout d] [-log-level lvl] c0 c1 … cn
//
// Coefficients are ascending (c0 + c1·x + …) unless -desc is given; each
// may be an integer or a fraction such as -3/4.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/poly"
	"github.com/katalvlaran/numfield/report"
)

var log = logging.Logger("nfinv")

const defaultTargets = "discriminant,signature,integral_basis,index,field_discriminant,class_number,class_group"

func main() {
	var (
		desc     = flag.Bool("desc", false, "Read coefficients in descending order")
		targets  = flag.String("targets", defaultTargets, "Comma-separated invariants, e.g. decomposition:7")
		workers  = flag.Int("workers", 0, "Parallel prime decompositions (0 = GOMAXPROCS)")
		timeout  = flag.Duration("timeout", 0, "Abort after this long (0 = no limit)")
		logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: nfinv [flags] c0 c1 … cn\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, using warn\n", *logLevel)
		level = logging.LevelWarn
	}
	logging.SetAllLoggers(level)

	if err := run(*desc, *targets, *workers, *timeout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", nferr.Kind(err), err)
		os.Exit(1)
	}
}

func run(desc bool, targets string, workers int, timeout time.Duration, args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return nferr.Invalid("no coefficients")
	}
	coeffs := make([]*big.Rat, len(args))
	for i, a := range args {
		c, ok := new(big.Rat).SetString(a)
		if !ok {
			return nferr.Invalid("coefficient %q is not a rational number", a)
		}
		coeffs[i] = c
	}
	if desc {
		for i, j := 0, len(coeffs)-1; i < j; i, j = i+1, j-1 {
			coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
		}
	}
	f := poly.New(coeffs...)
	log.Infof("polynomial %v", f)

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	var opts []report.Option
	if workers > 0 {
		opts = append(opts, report.WithWorkers(workers))
	}
	rep, err := report.Compute(ctx, f, strings.Split(targets, ","), opts...)
	if err != nil {
		return err
	}
	out, err := rep.YAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)

	return err
}
