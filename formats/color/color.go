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

// Package color provides options to configure the colors used by
// [github.com/wickedest/myers-diff/formats.TerminalColors].
//
// Colors are given as SGR parameters of ANSI escape sequences, e.g. 31 for a red foreground or 1
// for bold text.
package color

import (
	"fmt"
	"strings"

	"github.com/wickedest/myers-diff/internal/config"
)

// A Option makes it possible to configure custom colors in TerminalColors.
type Option func(*config.ColorConfig)

// Headers colors the change headers, e.g. the "19,20c19,21" part of the normal diff. The default
// is cyan.
func Headers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Header = code
	}
}

// Deletes colors deleted lines. The default is red.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Separators colors the "---" line between deleted and inserted lines. It's not colored by
// default.
func Separators(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Separator = code
	}
}

// Inserts colors inserted lines. The default is green.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// format returns the escape sequence for params. Without params, the line is not colored.
func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
