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

package encoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wickedest/myers-diff/internal/config"
	"github.com/wickedest/myers-diff/internal/split"
)

func TestEncode(t *testing.T) {
	e := New(config.Default)
	_, x := e.Encode(split.Split("the quick red fox\njumped\nthe quick red fox", config.Lines, nil))
	_, y := e.Encode(split.Split("jumped\nover\nthe quick red fox", config.Lines, nil))

	if diff := cmp.Diff([]int{1, 2, 1}, x); diff != "" {
		t.Errorf("lhs codes are different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3, 1}, y); diff != "" {
		t.Errorf("rhs codes are different [-want,+got]:\n%s", diff)
	}
	if got := e.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestEncodeEmpty(t *testing.T) {
	e := New(config.Default)
	parts, codes := e.Encode(split.Split("", config.Words, nil))
	if parts != nil || codes != nil {
		t.Errorf("Encode(<empty>) = %v, %v, want nil, nil", parts, codes)
	}
	if got := e.Code(""); got != 1 {
		t.Errorf("Code(\"\") = %d, want 1", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		a, b string
		same bool
	}{
		{
			name: "exact",
			cfg:  config.Default,
			a:    "The Quick",
			b:    "The Quick",
			same: true,
		},
		{
			name: "case-sensitive",
			cfg:  config.Default,
			a:    "The Quick",
			b:    "the quick",
			same: false,
		},
		{
			name: "ignore-case",
			cfg:  config.Config{IgnoreCase: true},
			a:    "The QUICK",
			b:    "the quick",
			same: true,
		},
		{
			name: "whitespace-sensitive",
			cfg:  config.Default,
			a:    "the  quick",
			b:    "the quick",
			same: false,
		},
		{
			name: "ignore-whitespace",
			cfg:  config.Config{IgnoreWhitespace: true},
			a:    "  the\tquick ",
			b:    "thequick",
			same: true,
		},
		{
			name: "ignore-whitespace-keeps-case",
			cfg:  config.Config{IgnoreWhitespace: true},
			a:    "The quick",
			b:    "the quick",
			same: false,
		},
		{
			name: "accent-sensitive",
			cfg:  config.Default,
			a:    "café",
			b:    "cafe",
			same: false,
		},
		{
			name: "ignore-accents",
			cfg:  config.Config{IgnoreAccents: true},
			a:    "café",
			b:    "cafe",
			same: true,
		},
		{
			name: "ignore-accents-decomposed",
			cfg:  config.Config{IgnoreAccents: true},
			a:    "caf\u00e9",
			b:    "cafe\u0301",
			same: true,
		},
		{
			name: "ignore-everything",
			cfg:  config.Config{IgnoreWhitespace: true, IgnoreCase: true, IgnoreAccents: true},
			a:    "  Crème Brûlée",
			b:    "cremebrulee",
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.cfg)
			a, b := e.Code(tt.a), e.Code(tt.b)
			if got := a == b; got != tt.same {
				t.Errorf("Code(%q) == Code(%q) is %v, want %v (normalized: %q, %q)", tt.a, tt.b, got, tt.same, e.Normalize(tt.a), e.Normalize(tt.b))
			}
		})
	}
}
