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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's used by the myers algorithm and is then translated to a user facing API.
//
// A pair of result vectors rx, ry marks the modified elements of both inputs: rx[s] is true if the
// element s of the left input was deleted, ry[t] is true if the element t of the right input was
// inserted. Each vector has one extra element at the end that is always false, which allows loops
// to test rx[s] without checking s < len(x) first.
package rvecs

// Make allocates result vectors for inputs of length n and m.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// Count returns the number of modified elements in r.
func Count(r []bool) int {
	n := 0
	for _, v := range r {
		if v {
			n++
		}
	}
	return n
}
