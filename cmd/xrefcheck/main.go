// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	xrefcheck "github.com/sassoftware/pdf-xrefcheck"
	"github.com/sassoftware/pdf-xrefcheck/logger"
	"github.com/sassoftware/pdf-xrefcheck/tracer"
)

const usage = "Usage: xrefcheck [-json] [-debug] <pdf_file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xrefcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the full report as JSON")
	debug := fs.Bool("debug", false, "dump the analysis trace to stderr")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	path := fs.Arg(0)

	cfg := xrefcheck.NewDefaultConfig()
	cfg.MaxConcurrentFiles = 1
	cfg.DebugOn = *debug
	cfg.Logger = func(level logger.LogLevel, msg string, keyvals ...interface{}) {
		if level == logger.ErrorLevel && *debug {
			fmt.Fprintln(stderr, msg)
		}
	}
	if *debug {
		defer tracer.Flush(stderr)
	} else {
		defer tracer.Reset()
	}

	proc, err := xrefcheck.NewProcessor(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *asJSON {
		if err := proc.ReportJSON(ctx, path, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	rep, err := proc.Check(ctx, path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, rep.Verdict.StatusLine())
	return 0
}
