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

// refTableSize is the number of buckets in the reference table.
const refTableSize = 8

// A linkRef is one collected link reference definition.
// Lookup compares fingerprints only, never the label bytes,
// so colliding labels alias each other.
type linkRef struct {
	id    uint32
	link  *Buffer
	title *Buffer
	next  *linkRef
}

// hashLinkRef fingerprints a label,
// folding ASCII letters to lower case byte by byte.
func hashLinkRef(name []byte) uint32 {
	var hash uint32
	for _, c := range name {
		hash = uint32(lower(c)) + (hash << 6) + (hash << 16) - hash
	}
	return hash
}

func addLinkRef(refs *[refTableSize]*linkRef, name []byte) *linkRef {
	ref := &linkRef{id: hashLinkRef(name)}
	ref.next = refs[ref.id%refTableSize]
	refs[ref.id%refTableSize] = ref
	return ref
}

func findLinkRef(refs *[refTableSize]*linkRef, name []byte) *linkRef {
	hash := hashLinkRef(name)
	for ref := refs[hash%refTableSize]; ref != nil; ref = ref.next {
		if ref.id == hash {
			return ref
		}
	}
	return nil
}

// isRef tries to parse one reference definition
// ([label]: url "optional title") starting at data[beg:].
// On a match the definition is inserted into refs
// and the offset one past the consumed line (or lines) is returned.
func isRef(data []byte, beg, end int, refs *[refTableSize]*linkRef) (last int, ok bool) {
	// Up to 3 optional leading spaces.
	if beg+3 >= end {
		return 0, false
	}
	i := 0
	for i < 3 && data[beg+i] == ' ' {
		i++
	}
	if i == 3 && data[beg+3] == ' ' {
		return 0, false
	}
	i += beg

	// Label: anything but a newline between brackets.
	if data[i] != '[' {
		return 0, false
	}
	i++
	idOffset := i
	for i < end && data[i] != '\n' && data[i] != '\r' && data[i] != ']' {
		i++
	}
	if i >= end || data[i] != ']' {
		return 0, false
	}
	idEnd := i

	// Spacer: colon (space)* newline? (space)*.
	i++
	if i >= end || data[i] != ':' {
		return 0, false
	}
	i++
	for i < end && data[i] == ' ' {
		i++
	}
	if i < end && (data[i] == '\n' || data[i] == '\r') {
		i++
		if i < end && data[i] == '\r' && data[i-1] == '\n' {
			i++
		}
	}
	for i < end && data[i] == ' ' {
		i++
	}
	if i >= end {
		return 0, false
	}

	// Link: whitespace-free sequence, optionally between angle brackets.
	if data[i] == '<' {
		i++
	}
	linkOffset := i
	for i < end && data[i] != ' ' && data[i] != '\n' && data[i] != '\r' {
		i++
	}
	linkEnd := i
	if data[i-1] == '>' {
		linkEnd = i - 1
	}

	// Optional spacer, then end of line or the start of a title.
	for i < end && data[i] == ' ' {
		i++
	}
	if i < end && data[i] != '\n' && data[i] != '\r' &&
		data[i] != '\'' && data[i] != '"' && data[i] != '(' {
		return 0, false
	}
	lineEnd := 0
	if i >= end || data[i] == '\r' || data[i] == '\n' {
		lineEnd = i
	}
	if i+1 < end && data[i] == '\n' && data[i+1] == '\r' {
		lineEnd = i + 1
	}

	// Optional spacer after a newline.
	if lineEnd > 0 {
		i = lineEnd + 1
		for i < end && data[i] == ' ' {
			i++
		}
	}

	// Optional title, alone on its line, enclosed in quotes or parens.
	titleOffset, titleEnd := 0, 0
	if i+1 < end && (data[i] == '\'' || data[i] == '"' || data[i] == '(') {
		i++
		titleOffset = i
		for i < end && data[i] != '\n' && data[i] != '\r' {
			i++
		}
		if i+1 < end && data[i] == '\n' && data[i+1] == '\r' {
			titleEnd = i + 1
		} else {
			titleEnd = i
		}
		i--
		for i > titleOffset && data[i] == ' ' {
			i--
		}
		if i > titleOffset && (data[i] == '\'' || data[i] == '"' || data[i] == ')') {
			lineEnd = titleEnd
			titleEnd = i
		}
	}

	if lineEnd == 0 || linkEnd == linkOffset {
		// Garbage after the link, or an empty link.
		return 0, false
	}

	if refs != nil {
		ref := addLinkRef(refs, data[idOffset:idEnd])
		ref.link = NewBuffer(linkEnd - linkOffset)
		ref.link.Write(data[linkOffset:linkEnd])
		if titleEnd > titleOffset {
			ref.title = NewBuffer(titleEnd - titleOffset)
			ref.title.Write(data[titleOffset:titleEnd])
		}
	}
	return lineEnd, true
}
