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

// Package byteview provides zero-copy conversions between strings and []byte for inputs and
// outputs that are never modified.
package byteview

import (
	"bytes"
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// sniffLen is the number of leading bytes inspected by [Binary].
const sniffLen = 8000

// From returns a string view of in. If in is a []byte, the string shares its memory and the
// caller must not modify in while the string is in use.
func From[T string | []byte](in T) string {
	switch in := any(in).(type) {
	case string:
		return in
	case []byte:
		return unsafe.String(unsafe.SliceData(in), len(in))
	}
	panic("never reached")
}

// Binary reports whether v looks like binary content, i.e. contains a NUL byte within the first
// sniffLen bytes.
func Binary[T string | []byte](v T) bool {
	switch v := any(v).(type) {
	case string:
		return strings.IndexByte(v[:min(len(v), sniffLen)], 0) >= 0
	case []byte:
		return bytes.IndexByte(v[:min(len(v), sniffLen)], 0) >= 0
	}
	panic("never reached")
}

// Builder accumulates output and returns it as T without copying.
type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Len() int { return len(b.buf) }

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Build returns the accumulated output and resets the builder.
func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}
