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

// Package split breaks text into the tokens that are compared by the diff.
package split

import (
	"iter"
	"regexp"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/wickedest/myers-diff/internal/config"
)

// Part is a single token and its byte offset in the text it was taken from.
type Part struct {
	Text string
	Pos  int
}

// End returns the byte offset just after the part.
func (p Part) End() int { return p.Pos + len(p.Text) }

// Split returns the tokens of text for the given unit. If sep is not nil, it replaces the default
// separator for [config.Lines] and [config.Words]; it's ignored for [config.Chars].
//
// Empty text has no tokens. Otherwise, separators produce empty tokens where they are adjacent to
// each other or to the start or end of text, e.g. "a\n" consists of the lines "a" and "".
//
// The returned sequence can be iterated any number of times.
func Split(text string, unit config.Unit, sep *regexp.Regexp) iter.Seq[Part] {
	switch {
	case unit == config.Chars:
		return clusters(text)
	case sep != nil:
		return matches(text, sep)
	case unit == config.Words:
		return separated(text, " ")
	default:
		return separated(text, "\n")
	}
}

// Collect splits text and returns all tokens in a slice.
func Collect(text string, unit config.Unit, sep *regexp.Regexp) []Part {
	var parts []Part
	for p := range Split(text, unit, sep) {
		parts = append(parts, p)
	}
	return parts
}

func separated(text, sep string) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		if text == "" {
			return
		}
		pos := 0
		for {
			i := strings.Index(text[pos:], sep)
			if i < 0 {
				yield(Part{text[pos:], pos})
				return
			}
			if !yield(Part{text[pos : pos+i], pos}) {
				return
			}
			pos += i + len(sep)
		}
	}
}

func matches(text string, sep *regexp.Regexp) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		if text == "" {
			return
		}
		pos := 0
		for _, m := range sep.FindAllStringIndex(text, -1) {
			if m[0] == m[1] && (m[0] == 0 || m[0] == len(text)) {
				continue
			}
			if !yield(Part{text[pos:m[0]], pos}) {
				return
			}
			pos = m[1]
		}
		yield(Part{text[pos:], pos})
	}
}

// clusters yields one token per extended grapheme cluster, so that a base character and its
// combining marks are never separated.
func clusters(text string) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		g := graphemes.FromString(text)
		for g.Next() {
			if !yield(Part{g.Value(), g.Start()}) {
				return
			}
		}
	}
}
