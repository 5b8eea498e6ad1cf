// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sundown

import "fmt"

// maxBufferAlloc caps any single buffer growth request.
const maxBufferAlloc = 16 * 1024 * 1024

// A Buffer is a growable byte buffer.
// Growth happens in multiples of a reallocation unit
// chosen when the buffer is created.
// Appends are best-effort:
// when a growth request is refused
// (the 16 MiB cap, or a read-only view)
// the buffer's size simply does not advance.
//
// A Buffer with unit zero is a read-only view of someone else's bytes;
// callbacks receive some of their text as such views.
// No text a callback receives may be retained
// past the callback's return.
type Buffer struct {
	data []byte
	unit int
}

// NewBuffer returns an empty buffer that grows in unit-sized quanta.
func NewBuffer(unit int) *Buffer {
	if unit <= 0 {
		unit = 64
	}
	return &Buffer{unit: unit}
}

// textBuffer wraps data in a read-only view for handing to callbacks.
func textBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the number of bytes in the buffer.
// Calling Len on nil returns 0.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Cap returns the buffer's allocated capacity.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return cap(b.data)
}

// Bytes returns the buffer's contents.
// The slice aliases the buffer's storage
// and is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// String returns the buffer's contents as a string.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Grow ensures capacity for at least n total bytes.
// Requests past the allocation cap, or on a read-only view,
// are refused without growing.
func (b *Buffer) Grow(n int) {
	if b.unit == 0 || n > maxBufferAlloc || cap(b.data) >= n {
		return
	}
	alloc := cap(b.data) + b.unit
	for alloc < n {
		alloc += b.unit
	}
	data := make([]byte, len(b.data), alloc)
	copy(data, b.data)
	b.data = data
}

// Write appends p to the buffer.
// Writing to a read-only view is refused.
func (b *Buffer) Write(p []byte) {
	if len(p) == 0 || b.unit == 0 {
		return
	}
	if len(b.data)+len(p) > cap(b.data) {
		b.Grow(len(b.data) + len(p))
		if len(b.data)+len(p) > cap(b.data) {
			return
		}
	}
	b.data = append(b.data, p...)
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) {
	if len(s) == 0 || b.unit == 0 {
		return
	}
	if len(b.data)+len(s) > cap(b.data) {
		b.Grow(len(b.data) + len(s))
		if len(b.data)+len(s) > cap(b.data) {
			return
		}
	}
	b.data = append(b.data, s...)
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) {
	if b.unit == 0 {
		return
	}
	if len(b.data)+1 > cap(b.data) {
		b.Grow(len(b.data) + 1)
		if len(b.data)+1 > cap(b.data) {
			return
		}
	}
	b.data = append(b.data, c)
}

// Printf appends formatted text to the buffer.
func (b *Buffer) Printf(format string, args ...any) {
	b.Write(fmt.Appendf(nil, format, args...))
}

// Truncate shrinks the buffer to n bytes.
// It is a no-op if the buffer holds fewer than n bytes.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n >= len(b.data) {
		return
	}
	b.data = b.data[:n]
}

// Reset discards the buffer's contents and storage.
func (b *Buffer) Reset() {
	b.data = nil
}

// Slurp removes the first n bytes by moving the remainder forward.
func (b *Buffer) Slurp(n int) {
	if n >= len(b.data) {
		b.data = b.data[:0]
		return
	}
	rest := copy(b.data, b.data[n:])
	b.data = b.data[:rest]
}

// Prefix lexicographically compares the buffer's leading bytes
// against prefix.
// It returns 0 on equality over the shorter of the two,
// otherwise a value with the sign of the first differing byte.
func (b *Buffer) Prefix(prefix string) int {
	for i := 0; i < len(b.data); i++ {
		if i >= len(prefix) {
			return 0
		}
		if b.data[i] != prefix[i] {
			return int(b.data[i]) - int(prefix[i])
		}
	}
	return 0
}

// last returns the final byte of the buffer, or zero when empty.
func (b *Buffer) last() byte {
	if len(b.data) == 0 {
		return 0
	}
	return b.data[len(b.data)-1]
}
