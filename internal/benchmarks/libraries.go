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

// Package benchmarks compares myersdiff with other diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	myersdiff "github.com/wickedest/myers-diff"
	"github.com/wickedest/myers-diff/formats"
)

type Impl struct {
	Name string
	Diff func(x, y []byte) []byte

	// Prefixes of deleted and inserted lines in the output of Diff.
	Del, Ins string
}

// Edits counts the deleted and inserted lines in out, an output of impl.Diff.
func (impl *Impl) Edits(out []byte) int {
	edits := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte(impl.Del)) || bytes.HasPrefix(line, []byte(impl.Ins)) {
			edits++
		}
	}
	return edits
}

var Impls = []Impl{
	{
		Name: "myersdiff",
		Diff: func(x, y []byte) []byte {
			r, err := myersdiff.DiffBytes(x, y)
			if err != nil {
				panic(err)
			}
			return formats.GnuNormalFormatBytes(r.Changes)
		},
		Del: "< ",
		Ins: "> ",
	},
	{
		Name: "myersdiff-shift",
		Diff: func(x, y []byte) []byte {
			r, err := myersdiff.DiffBytes(x, y, myersdiff.ShiftBoundaries())
			if err != nil {
				panic(err)
			}
			return formats.GnuNormalFormatBytes(r.Changes)
		},
		Del: "< ",
		Ins: "> ",
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
		Del: "-",
		Ins: "+",
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, diff := range diffs {
				var prefix string
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}

			return buf.Bytes()
		},
		Del: "-",
		Ins: "+",
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return []byte(godebug.Diff(string(x), string(y)))
		},
		Del: "-",
		Ins: "+",
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a normal diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			for _, ch := range changes {
				for i := range ch.Del {
					buf.WriteString("< ")
					buf.Write(d.x[ch.A+i])
				}
				for i := range ch.Ins {
					buf.WriteString("> ")
					buf.Write(d.y[ch.B+i])
				}
			}
			return buf.Bytes()
		},
		Del: "< ",
		Ins: "> ",
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
		Del: "-",
		Ins: "+",
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
