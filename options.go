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
	"regexp"
	"strings"

	"github.com/wickedest/myers-diff/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Unit is the granularity at which texts are compared.
type Unit = config.Unit

const (
	Lines = config.Lines // Tokens are lines, separated by "\n".
	Words = config.Words // Tokens are words, separated by a single space.
	Chars = config.Chars // Tokens are user-perceived characters (grapheme clusters).
)

// ErrUnknownUnit is returned by [UnitFromName] for names that don't denote a unit.
var ErrUnknownUnit = errors.New("unknown unit")

// UnitFromName returns the unit with the given name: "lines", "words" or "chars". The comparison
// ignores case.
func UnitFromName(name string) (Unit, error) {
	for _, u := range []Unit{Lines, Words, Chars} {
		if strings.EqualFold(name, u.String()) {
			return u, nil
		}
	}
	return Lines, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Compare sets the unit texts are split into before they are compared. The default is [Lines].
// Units other than [Lines], [Words] and [Chars] are ignored.
func Compare(u Unit) Option {
	return func(cfg *config.Config) config.Flag {
		if u.Valid() {
			cfg.Unit = u
		}
		return config.Compare
	}
}

// Separator replaces the separator that splits texts into [Lines] or [Words]. Every match of re
// separates two tokens; a match of zero length at the start or end of a text doesn't. Separator
// has no effect when comparing [Chars]. A nil re restores the default.
func Separator(re *regexp.Regexp) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Separator = re
		return config.Separator
	}
}

// IgnoreWhitespace removes all whitespace from tokens before they are compared.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// IgnoreCase compares tokens in lower case.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// IgnoreAccents removes diacritical marks from tokens before they are compared, e.g. "café" and
// "cafe" are considered equal.
func IgnoreAccents() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreAccents = true
		return config.IgnoreAccents
	}
}

// ShiftBoundaries moves every block of deletions or insertions as far towards the end of the
// text as possible without changing the size of the diff. Blocks on one side are moved
// independently of the other side, so a replacement can turn into a separate deletion and
// insertion.
func ShiftBoundaries() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShiftBoundaries = true
		return config.ShiftBoundaries
	}
}
