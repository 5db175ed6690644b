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

package myersdiff

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// dmpRunes maps the tokens of both sequences to runes from the private use area, which lets
// diffmatchpatch compare them one rune per token.
func dmpRunes(x, y []string) ([]rune, []rune) {
	codes := make(map[string]rune)
	conv := func(toks []string) []rune {
		out := make([]rune, len(toks))
		for i, tok := range toks {
			r, ok := codes[tok]
			if !ok {
				r = 0xE000 + rune(len(codes))
				codes[tok] = r
			}
			out[i] = r
		}
		return out
	}
	return conv(x), conv(y)
}

// dmpEdits returns the number of deleted and inserted tokens diffmatchpatch finds.
func dmpEdits(x, y []string) int {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // No timeout, the result must be minimal
	rx, ry := dmpRunes(x, y)
	n := 0
	for _, d := range dmp.DiffMainRunes(rx, ry, false) {
		if d.Type != diffmatchpatch.DiffEqual {
			n += utf8.RuneCountInString(d.Text)
		}
	}
	return n
}

func TestDiffMatchPatchOracle(t *testing.T) {
	for _, unit := range []Unit{Lines, Words, Chars} {
		name := fmt.Sprintf("%v", unit)
		t.Run(name, func(t *testing.T) {
			rng := newRand("oracle/" + name)
			for range 200 {
				x := randText(rng, 200, unit)
				y := randText(rng, 200, unit)
				r := Diff(x, y, Compare(unit))
				got := 0
				for _, c := range r.Changes {
					got += c.Del() + c.Add()
				}
				if want := dmpEdits(tokens(r.LHS), tokens(r.RHS)); got != want {
					t.Errorf("Diff(%q, %q) has %d edits, diffmatchpatch finds %d", x, y, got, want)
				}
			}
		})
	}
}

func BenchmarkDiffMatchPatch(b *testing.B) {
	params := []struct {
		N, M int
		D    int
	}{
		{500, 500, 10},
		{500, 500, 100},
		{5000, 5500, 100},
	}

	for _, p := range params {
		name := fmt.Sprintf("N=%d_M=%d_D=%d", p.N, p.M, p.D)
		x, y := benchInputs(newRand(name), p.N, p.M, p.D)

		b.Run("myersdiff/"+name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Diff(x, y)
			}
		})

		b.Run("diffmatchpatch/"+name, func(b *testing.B) {
			b.ReportAllocs()
			dmp := diffmatchpatch.New()
			dmp.DiffTimeout = 0
			for b.Loop() {
				rx, ry, _ := dmp.DiffLinesToRunes(x, y)
				_ = dmp.DiffMainRunes(rx, ry, false)
			}
		})
	}
}
