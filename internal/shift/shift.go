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

// Package shift moves the boundaries of modified groups to a canonical position.
//
// A diff is usually not unique. If a group of deletions is followed by an element that equals the
// first element of the group, deleting the group is the same as deleting the group shifted by one
// towards the end:
//
//	x = a b a c        x = a b a c
//	    - -    ==          . - -
//
// Apply repeatedly uses this degree of freedom to push every group as far towards the end as
// possible. Groups that touch after sliding are merged. The number of modified elements and the
// sequence of unmodified elements don't change, so the result is still a minimal diff.
package shift

// Apply slides the modified groups in r over codes. It works on a single side of a diff and must
// be called once for each side. len(r) must be at least len(codes).
func Apply(codes []int, r []bool) {
	n := len(codes)
	start := 0
	for start < n {
		for start < n && !r[start] {
			start++
		}
		end := start
		for end < n && r[end] {
			end++
		}
		if end < n && codes[start] == codes[end] {
			// Slide the group down by one, the next iteration picks it up again.
			r[start], r[end] = false, true
		} else {
			start = end
		}
	}
}
