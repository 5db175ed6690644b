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

// Package myers computes a minimal diff between two sequences of token codes using the linear
// space variant of Myers' algorithm ("An O(ND) Difference Algorithm and Its Variations", section
// 4.2).
//
// # Edit graph
//
// The algorithm searches the edit graph of x and y for a path with the fewest non-diagonal edges.
// For x = "ABCABBA" and y = "CBABAC" the graph looks like this:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step to the right deletes an element of x, a step down inserts an element of y and a diagonal
// step is a match. Coordinates are (s, t) with s indexing x and t indexing y. Diagonal k contains
// all points with s - t = k.
//
// # Middle snake
//
// Instead of remembering every path, which needs O(ND) memory, the search runs from both corners
// of the graph at the same time: a forward search from the top left and a reverse search from the
// bottom right. For every number of differences d, each search extends its furthest reaching
// paths by one edit and then follows diagonals as far as possible. The searches meet in the
// middle of an optimal path. The range is then split at the meeting point and both halves are
// solved recursively.
//
// Which search detects the overlap depends on the parity of delta, the difference between the
// diagonals of the two corners. If delta is odd, the paths can only meet after a forward step,
// otherwise after a reverse step.
//
// Before every split, common prefixes and suffixes are removed. A range where one side is empty
// consists of insertions or deletions only and needs no search at all.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
