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

package myers

import "github.com/wickedest/myers-diff/internal/rvecs"

// Diff compares the codes in x and y and returns result vectors marking the elements that are not
// part of the longest common subsequence: rx[s] is true if x[s] is deleted and ry[t] is true if
// y[t] is inserted. Both vectors have one extra element at the end that is always false.
//
// The result is minimal, the number of true elements is len(x) + len(y) - 2*LCS(x, y).
func Diff(x, y []int) (rx, ry []bool) {
	rx, ry = rvecs.Make(len(x), len(y))
	m := myers{x: x, y: y, rx: rx, ry: ry}
	m.compare(0, len(x), 0, len(y))
	return rx, ry
}

type myers struct {
	x, y   []int
	rx, ry []bool

	// Furthest reaching s for every diagonal in the forward and reverse search. The diagonal k
	// relative to the diagonal d0 of the search origin is stored at v0+k-d0. Allocated on first
	// use and shared by all recursive calls.
	vf, vb []int
	v0     int
}

func (m *myers) alloc() {
	n := len(m.x) + len(m.y) + 1
	buf := make([]int, 2*(2*n+1))
	m.vf, m.vb = buf[:2*n+1], buf[2*n+1:]
	m.v0 = n
}

// compare marks all differences between x[smin:smax] and y[tmin:tmax].
func (m *myers) compare(smin, smax, tmin, tmax int) {
	x, y := m.x, m.y

	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smin < smax && tmin < tmax && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		if m.vf == nil {
			m.alloc()
		}
		s, t := m.middleSnake(smin, smax, tmin, tmax)
		m.compare(smin, s, tmin, t)
		m.compare(s, smax, t, tmax)
	}
}

// middleSnake finds a point (s, t) on an optimal path from (smin, tmin) to (smax, tmax). Both
// ranges must be non-empty.
func (m *myers) middleSnake(smin, smax, tmin, tmax int) (s, t int) {
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb

	fmid := smin - tmin // diagonal of the forward search origin
	bmid := smax - tmax // diagonal of the reverse search origin
	of := m.v0 - fmid
	ob := m.v0 - bmid
	odd := (bmid-fmid)&1 != 0

	vf[of+fmid+1] = smin
	vb[ob+bmid-1] = smax

	dmax := (smax-smin+tmax-tmin)/2 + 1
	for d := 0; d <= dmax; d++ {
		// Forward search.
		for k := fmid - d; k <= fmid+d; k += 2 {
			if k == fmid-d {
				s = vf[of+k+1] // vertical step from diagonal k+1
			} else {
				s = vf[of+k-1] + 1 // horizontal step from diagonal k-1
				if k < fmid+d && vf[of+k+1] >= s {
					s = vf[of+k+1]
				}
			}
			t = s - k
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[of+k] = s
			if odd && bmid-d < k && k < bmid+d && vb[ob+k] <= s {
				return s, s - k
			}
		}

		// Reverse search.
		for k := bmid - d; k <= bmid+d; k += 2 {
			if k == bmid+d {
				s = vb[ob+k-1] // vertical step from diagonal k-1
			} else {
				s = vb[ob+k+1] - 1 // horizontal step from diagonal k+1
				if k > bmid-d && vb[ob+k-1] < s {
					s = vb[ob+k-1]
				}
			}
			t = s - k
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[ob+k] = s
			if !odd && fmid-d <= k && k <= fmid+d && s <= vf[of+k] {
				return vf[of+k], vf[of+k] - k
			}
		}
	}

	// The searches must meet after at most dmax steps.
	panic("no middle snake found")
}
