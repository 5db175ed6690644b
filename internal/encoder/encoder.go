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

// Package encoder maps tokens to integer codes so that the diff algorithm can compare tokens
// with a single integer comparison.
//
// Both sides of a comparison must be encoded with the same [Encoder]: equal tokens receive equal
// codes only within one encoder.
package encoder

import (
	"iter"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/wickedest/myers-diff/internal/config"
	"github.com/wickedest/myers-diff/internal/split"
)

// Encoder assigns codes to tokens in the order they are first seen. Codes start at 1, the zero
// value is never assigned.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	codes map[string]int
	t     transform.Transformer // nil if tokens are compared as they are
}

// New returns an empty encoder that normalizes tokens as configured in cfg.
func New(cfg config.Config) *Encoder {
	var ts []transform.Transformer
	if cfg.IgnoreWhitespace {
		ts = append(ts, runes.Remove(runes.Predicate(unicode.IsSpace)))
	}
	if cfg.IgnoreCase {
		ts = append(ts, cases.Lower(language.Und))
	}
	if cfg.IgnoreAccents {
		ts = append(ts, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}

	e := &Encoder{codes: make(map[string]int)}
	switch len(ts) {
	case 0:
	case 1:
		e.t = ts[0]
	default:
		e.t = transform.Chain(ts...)
	}
	return e
}

// Normalize returns the form of v that is used for comparisons.
func (e *Encoder) Normalize(v string) string {
	if e.t == nil {
		return v
	}
	out, _, err := transform.String(e.t, v)
	if err != nil {
		return v
	}
	return out
}

// Code returns the code for v, assigning the next free code if v hasn't been seen before.
func (e *Encoder) Code(v string) int {
	k := e.Normalize(v)
	if c, ok := e.codes[k]; ok {
		return c
	}
	c := len(e.codes) + 1
	e.codes[k] = c
	return c
}

// Encode collects all parts from seq and returns them together with their codes.
func (e *Encoder) Encode(seq iter.Seq[split.Part]) (parts []split.Part, codes []int) {
	for p := range seq {
		parts = append(parts, p)
		codes = append(codes, e.Code(p.Text))
	}
	return parts, codes
}

// Len returns the number of distinct codes assigned so far.
func (e *Encoder) Len() int { return len(e.codes) }
