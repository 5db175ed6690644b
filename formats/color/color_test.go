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

package color

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wickedest/myers-diff/internal/config"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want config.ColorConfig
	}{
		{
			name: "none",
			want: config.ColorConfig{},
		},
		{
			name: "single-params",
			opts: []Option{Headers(36), Deletes(31), Separators(2), Inserts(32)},
			want: config.ColorConfig{
				Header:    "\033[36m",
				Delete:    "\033[31m",
				Separator: "\033[2m",
				Insert:    "\033[32m",
			},
		},
		{
			name: "multiple-params",
			opts: []Option{Deletes(1, 38, 5, 196)},
			want: config.ColorConfig{
				Delete: "\033[1;38;5;196m",
			},
		},
		{
			name: "no-params-disables",
			opts: []Option{Inserts(32), Inserts()},
			want: config.ColorConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got config.ColorConfig
			for _, opt := range tt.opts {
				opt(&got)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("options result in different colors [-want,+got]:\n%s", diff)
			}
		})
	}
}
