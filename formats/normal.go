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

// Package formats renders the result of a comparison as text.
package formats

import (
	"strconv"

	myersdiff "github.com/wickedest/myers-diff"
	"github.com/wickedest/myers-diff/internal/byteview"
	"github.com/wickedest/myers-diff/internal/config"
)

const (
	prefixDelete = "< "
	prefixInsert = "> "
	separator    = "---"
)

// GnuNormalFormat returns changes in the normal format of GNU diff, i.e. the output of diff(1)
// without any format options:
//
//	19,20c19,21
//	< j
//	< u
//	---
//	> s
//	> w
//	> a
//
// Every change starts with a header consisting of the affected range on the left, an operation
// and the affected range on the right. The operation is "a" if tokens are only added, "d" if they
// are only deleted and "c" if they are changed. Ranges are 1-based and inclusive; a range with a
// single token, or none, is printed as a single number. The header is followed by the deleted
// tokens prefixed with "< " and the added tokens prefixed with "> ". A line "---" separates them
// if both are present. Every line ends with a newline.
//
// Tokens are printed one per line, whatever the unit of the comparison was. If there are no
// changes, the result is empty.
//
// The following option is supported: [TerminalColors]
func GnuNormalFormat(changes []myersdiff.Change, opts ...myersdiff.Option) string {
	cfg := config.FromOptions(opts, config.Color)
	return normal[string](changes, cfg)
}

// GnuNormalFormatBytes is like [GnuNormalFormat] but returns a []byte.
//
// The following option is supported: [TerminalColors]
func GnuNormalFormatBytes(changes []myersdiff.Change, opts ...myersdiff.Option) []byte {
	cfg := config.FromOptions(opts, config.Color)
	return normal[[]byte](changes, cfg)
}

func normal[T string | []byte](changes []myersdiff.Change, cfg config.Config) T {
	var cc config.ColorConfig
	if cfg.Color != nil {
		cc = *cfg.Color
	}

	var b byteview.Builder[T]
	for _, c := range changes {
		var op byte
		switch {
		case c.Del() == 0:
			op = 'a'
		case c.Add() == 0:
			op = 'd'
		default:
			op = 'c'
		}

		b.WriteString(cc.Header)
		writeRange(&b, c.LHS)
		b.WriteByte(op)
		writeRange(&b, c.RHS)
		endLine(&b, cc.Header)

		for p := range c.LHS.Parts() {
			b.WriteString(cc.Delete)
			b.WriteString(prefixDelete)
			b.WriteString(p.Text)
			endLine(&b, cc.Delete)
		}
		if c.Del() > 0 && c.Add() > 0 {
			b.WriteString(cc.Separator)
			b.WriteString(separator)
			endLine(&b, cc.Separator)
		}
		for p := range c.RHS.Parts() {
			b.WriteString(cc.Insert)
			b.WriteString(prefixInsert)
			b.WriteString(p.Text)
			endLine(&b, cc.Insert)
		}
	}
	return b.Build()
}

// writeRange writes the 1-based range of sd, e.g. "3" or "3,5".
func writeRange[T string | []byte](b *byteview.Builder[T], sd myersdiff.Side) {
	b.WriteString(strconv.Itoa(sd.At + 1))
	if sd.Count > 1 {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(sd.At + sd.Count))
	}
}

func endLine[T string | []byte](b *byteview.Builder[T], code string) {
	if code != "" {
		b.WriteString(config.Reset)
	}
	b.WriteByte('\n')
}
