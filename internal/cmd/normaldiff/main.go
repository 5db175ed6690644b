// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// normaldiff compares two files and prints the differences in the normal format of diff(1).
//
// Usage:
//
//	normaldiff [flags] <lhs> <rhs>
//
// The exit status is 0 if the files are equal, 1 if they differ and 2 if an error occurred.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	myersdiff "github.com/wickedest/myers-diff"
	"github.com/wickedest/myers-diff/formats"
	"golang.org/x/term"
)

type config struct {
	compare string
	ws      bool
	icase   bool
	accents bool
	shift   bool
	color   string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.compare, "compare", "lines", "unit to compare: lines, words or chars")
	flag.BoolVar(&cfg.ws, "w", false, "ignore all whitespace")
	flag.BoolVar(&cfg.icase, "i", false, "ignore case")
	flag.BoolVar(&cfg.accents, "accents", false, "ignore accents")
	flag.BoolVar(&cfg.shift, "shift", false, "shift changes towards the end")
	flag.StringVar(&cfg.color, "color", "auto", "colorize the output: auto, always or never")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: normaldiff [flags] <lhs> <rhs>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	equal, err := run(&cfg, flag.Arg(0), flag.Arg(1), os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if !equal {
		os.Exit(1)
	}
}

// run writes the difference between the files lhs and rhs to w and reports whether they are
// equal.
func run(cfg *config, lhs, rhs string, w io.Writer, tty bool) (bool, error) {
	unit, err := myersdiff.UnitFromName(cfg.compare)
	if err != nil {
		return false, err
	}
	opts := []myersdiff.Option{myersdiff.Compare(unit)}
	if cfg.ws {
		opts = append(opts, myersdiff.IgnoreWhitespace())
	}
	if cfg.icase {
		opts = append(opts, myersdiff.IgnoreCase())
	}
	if cfg.accents {
		opts = append(opts, myersdiff.IgnoreAccents())
	}
	if cfg.shift {
		opts = append(opts, myersdiff.ShiftBoundaries())
	}

	var fopts []myersdiff.Option
	switch cfg.color {
	case "always":
		fopts = append(fopts, formats.TerminalColors())
	case "auto":
		if tty {
			fopts = append(fopts, formats.TerminalColors())
		}
	case "never":
	default:
		return false, fmt.Errorf("invalid value for -color: %q", cfg.color)
	}

	x, err := os.ReadFile(lhs)
	if err != nil {
		return false, fmt.Errorf("reading lhs: %w", err)
	}
	y, err := os.ReadFile(rhs)
	if err != nil {
		return false, fmt.Errorf("reading rhs: %w", err)
	}

	// os.ReadFile returns a non-nil slice for empty files.
	r, err := myersdiff.DiffBytes(x, y, opts...)
	if err != nil {
		return false, err
	}
	if r.Equal() {
		return true, nil
	}
	_, err = io.WriteString(w, formats.GnuNormalFormat(r.Changes, fopts...))
	return false, err
}
