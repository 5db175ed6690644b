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
	"errors"
	"fmt"
	"iter"

	"github.com/wickedest/myers-diff/internal/byteview"
	"github.com/wickedest/myers-diff/internal/config"
	"github.com/wickedest/myers-diff/internal/encoder"
	"github.com/wickedest/myers-diff/internal/myers"
	"github.com/wickedest/myers-diff/internal/rvecs"
	"github.com/wickedest/myers-diff/internal/shift"
	"github.com/wickedest/myers-diff/internal/split"
)

var (
	// ErrIllegalArgument is returned if an input is missing.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrBinary is returned for inputs that contain binary content.
	ErrBinary = errors.New("binary content")
)

// Part is a single token of a text.
//
//   - Text is the original text of the token, without separators and before normalization.
//   - Pos is the byte offset of the token in the text it was taken from.
type Part = split.Part

// Sequence is the list of tokens a text was split into.
type Sequence struct {
	parts []Part
}

// Len returns the number of tokens.
func (s *Sequence) Len() int { return len(s.parts) }

// Part returns the token at index n. The result is false if n is out of range.
func (s *Sequence) Part(n int) (Part, bool) {
	if n < 0 || n >= len(s.parts) {
		return Part{}, false
	}
	return s.parts[n], true
}

// All returns an iterator over all tokens and their indices.
func (s *Sequence) All() iter.Seq2[int, Part] {
	return func(yield func(int, Part) bool) {
		for i, p := range s.parts {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Side describes one side of a [Change].
//
// At is the index of the first affected token. For a side without affected tokens, At is the
// index of the token the change is anchored at, clamped to the last token of the sequence. Pos and
// Text describe the token at At. If the sequence has no tokens at all, Pos is -1 and Text is
// empty.
//
// Length is the number of bytes from the start of the first to the end of the last affected token,
// or, when comparing [Chars], the number of affected characters.
type Side struct {
	At     int    // Index of the first affected token.
	Count  int    // Number of affected tokens.
	Pos    int    // Byte offset of the token at At, -1 if there is none.
	Text   string // Text of the token at At.
	Length int    // Extent of the affected tokens.

	seq *Sequence
}

func newSide(seq *Sequence, start, end int, unit Unit) Side {
	n := seq.Len()
	sd := Side{
		At:    min(start, max(n-1, 0)),
		Count: end - start,
		Pos:   -1,
		seq:   seq,
	}
	if n > 0 {
		p := seq.parts[sd.At]
		sd.Pos, sd.Text = p.Pos, p.Text
	}
	if sd.Count > 0 {
		if unit == Chars {
			sd.Length = sd.Count
		} else {
			sd.Length = seq.parts[end-1].End() - seq.parts[start].Pos
		}
	}
	return sd
}

// Changed reports whether any tokens are affected on this side.
func (sd Side) Changed() bool { return sd.Count > 0 }

// Part returns the token at index n of the sequence this side belongs to. The result is false if
// n is out of range.
func (sd Side) Part(n int) (Part, bool) {
	if sd.seq == nil {
		return Part{}, false
	}
	return sd.seq.Part(n)
}

// Parts returns an iterator over the affected tokens.
func (sd Side) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		if sd.Count == 0 {
			return
		}
		for _, p := range sd.seq.parts[sd.At : sd.At+sd.Count] {
			if !yield(p) {
				return
			}
		}
	}
}

// Change describes a block of consecutive modifications: LHS.Count tokens of the left text are
// replaced by RHS.Count tokens of the right text. At least one of them is not zero.
type Change struct {
	LHS, RHS Side
}

// Del returns the number of deleted tokens.
func (c Change) Del() int { return c.LHS.Count }

// Add returns the number of added tokens.
func (c Change) Add() int { return c.RHS.Count }

// Result is the result of a comparison.
type Result struct {
	// Changes lists all modifications in order. It's empty if both texts are equal.
	Changes []Change

	// LHS and RHS are the token sequences of the left and right text.
	LHS, RHS *Sequence

	rx, ry []bool
}

// Equal reports whether the compared texts are equal.
func (r *Result) Equal() bool { return len(r.Changes) == 0 }

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // A token that is part of both texts
	Delete           // A token that is only part of the left text
	Insert           // A token that is only part of the right text
)

// Edit describes what happens to a single token.
//
//   - For Match, LHS and RHS are the indices of the token in both sequences and Text is the left token.
//   - For Delete, LHS is the index of the deleted token and RHS is -1.
//   - For Insert, RHS is the index of the inserted token and LHS is -1.
type Edit struct {
	Op       Op
	LHS, RHS int
	Text     string
}

// Edits returns one edit for every token of both texts, in order. Deletions are listed before
// insertions within a block of modifications.
func (r *Result) Edits() []Edit {
	n, m := len(r.rx)-1, len(r.ry)-1
	if n <= 0 && m <= 0 {
		return nil
	}
	// Every token of y is either inserted or matched, only deletions come on top.
	eout := make([]Edit, 0, m+rvecs.Count(r.rx))
	for s, t := 0, 0; s < n || t < m; {
		for s < n && r.rx[s] {
			eout = append(eout, Edit{Delete, s, -1, r.LHS.parts[s].Text})
			s++
		}
		for t < m && r.ry[t] {
			eout = append(eout, Edit{Insert, -1, t, r.RHS.parts[t].Text})
			t++
		}
		for s < n && t < m && !r.rx[s] && !r.ry[t] {
			eout = append(eout, Edit{Match, s, t, r.LHS.parts[s].Text})
			s++
			t++
		}
	}
	return eout
}

// Diff compares the texts lhs and rhs and returns the changes necessary to convert one into the
// other.
//
// The following options are supported: [Compare], [Separator], [IgnoreWhitespace], [IgnoreCase],
// [IgnoreAccents], [ShiftBoundaries]
//
// Diff is safe for concurrent use, every call works on its own state.
func Diff(lhs, rhs string, opts ...Option) *Result {
	cfg := config.FromOptions(opts, config.DiffFlags)
	return diff(lhs, rhs, cfg)
}

// DiffBytes is like [Diff] but compares byte slices. A nil slice is a missing input and results
// in an error wrapping [ErrIllegalArgument]; an empty slice is an empty text. Inputs that contain
// binary content are rejected with an error wrapping [ErrBinary].
//
// The inputs are not copied. The text of the tokens in the result refers to the memory of lhs and
// rhs, which must not be modified while the result is in use.
//
// The following options are supported: [Compare], [Separator], [IgnoreWhitespace], [IgnoreCase],
// [IgnoreAccents], [ShiftBoundaries]
func DiffBytes(lhs, rhs []byte, opts ...Option) (*Result, error) {
	cfg := config.FromOptions(opts, config.DiffFlags)
	switch {
	case lhs == nil:
		return nil, fmt.Errorf("%w 'lhs'", ErrIllegalArgument)
	case rhs == nil:
		return nil, fmt.Errorf("%w 'rhs'", ErrIllegalArgument)
	case byteview.Binary(lhs):
		return nil, fmt.Errorf("%w in 'lhs'", ErrBinary)
	case byteview.Binary(rhs):
		return nil, fmt.Errorf("%w in 'rhs'", ErrBinary)
	}
	return diff(byteview.From(lhs), byteview.From(rhs), cfg), nil
}

func diff(lhs, rhs string, cfg config.Config) *Result {
	// Both sides must share an encoder, equal tokens only get equal codes within one encoder.
	enc := encoder.New(cfg)
	xparts, x := enc.Encode(split.Split(lhs, cfg.Unit, cfg.Separator))
	yparts, y := enc.Encode(split.Split(rhs, cfg.Unit, cfg.Separator))

	rx, ry := myers.Diff(x, y)
	if cfg.ShiftBoundaries {
		shift.Apply(x, rx)
		shift.Apply(y, ry)
	}

	r := &Result{
		LHS: &Sequence{xparts},
		RHS: &Sequence{yparts},
		rx:  rx,
		ry:  ry,
	}
	for rg := range rvecs.Changes(rx, ry) {
		r.Changes = append(r.Changes, Change{
			LHS: newSide(r.LHS, rg.S0, rg.S1, cfg.Unit),
			RHS: newSide(r.RHS, rg.T0, rg.T1, cfg.Unit),
		})
	}
	return r
}
