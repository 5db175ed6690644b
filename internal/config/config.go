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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// myersdiff.Option.
package config

import "regexp"

// Unit is the granularity at which inputs are compared.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Unit -linecomment
type Unit int

const (
	Lines Unit = iota // lines
	Words             // words
	Chars             // chars
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool { return u >= Lines && u <= Chars }

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Unit selects how inputs are split into tokens.
	Unit Unit

	// Separator overrides the default separator for Lines and Words. Nil means the default.
	Separator *regexp.Regexp

	// Normalizations applied to tokens before they are compared. The original token text is
	// always preserved for output.
	IgnoreWhitespace bool
	IgnoreCase       bool
	IgnoreAccents    bool

	// If set, modified runs are slid forward over equal tokens after the diff has been computed.
	ShiftBoundaries bool

	// Color is used by formatters. Nil disables colored output.
	Color *ColorConfig
}

// ColorConfig holds the ANSI escape sequences a formatter writes before each kind of line. An
// empty string leaves the line uncolored.
type ColorConfig struct {
	Header    string
	Delete    string
	Separator string
	Insert    string
}

// Reset ends a colored line.
const Reset = "\033[0m"

// DefaultColors are used when colored output is requested without custom colors.
var DefaultColors = ColorConfig{
	Header: "\033[36m",
	Delete: "\033[31m",
	Insert: "\033[32m",
}

// Default is the default configuration.
var Default = Config{
	Unit:             Lines,
	Separator:        nil,
	IgnoreWhitespace: false,
	IgnoreCase:       false,
	IgnoreAccents:    false,
	ShiftBoundaries:  false,
	Color:            nil,
}

// Flag describes a single config entry. This is used to detect if options are passed to
// functions that don't support them.
type Flag int

const (
	Compare Flag = 1 << iota
	Separator
	IgnoreWhitespace
	IgnoreCase
	IgnoreAccents
	ShiftBoundaries
	Color
)

// DiffFlags are all flags accepted by the diff functions.
const DiffFlags = Compare | Separator | IgnoreWhitespace | IgnoreCase | IgnoreAccents | ShiftBoundaries

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

// Normalizes reports whether any token normalization is enabled.
func (c Config) Normalizes() bool {
	return c.IgnoreWhitespace || c.IgnoreCase || c.IgnoreAccents
}

func printFlag(flag Flag) string {
	switch flag {
	case Compare:
		return "myersdiff.Compare"
	case Separator:
		return "myersdiff.Separator"
	case IgnoreWhitespace:
		return "myersdiff.IgnoreWhitespace"
	case IgnoreCase:
		return "myersdiff.IgnoreCase"
	case IgnoreAccents:
		return "myersdiff.IgnoreAccents"
	case ShiftBoundaries:
		return "myersdiff.ShiftBoundaries"
	case Color:
		return "formats.TerminalColors"
	default:
		panic("never reached")
	}
}
