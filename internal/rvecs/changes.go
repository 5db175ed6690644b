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

package rvecs

import "iter"

// Range describes a block of consecutive modifications: x[S0:S1] is replaced by y[T0:T1]. One of
// the two ranges may be empty.
type Range struct {
	S0, S1 int // Start and end of the block in x.
	T0, T1 int // Start and end of the block in y.
}

// Changes walks both result vectors in lockstep and yields every maximal block of modifications
// in order.
//
// Unmodified elements pair up one to one. Once one side is exhausted, all remaining elements of
// the other side belong to the final block.
func Changes(rx, ry []bool) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		n, m := len(rx)-1, len(ry)-1
		s, t := 0, 0
		for s < n || t < m {
			if s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
				continue
			}
			s0, t0 := s, t
			for s < n && (t >= m || rx[s]) {
				s++
			}
			for t < m && (s >= n || ry[t]) {
				t++
			}
			if !yield(Range{s0, s, t0, t}) {
				return
			}
		}
	}
}
