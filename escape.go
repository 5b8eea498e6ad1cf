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

// HTML entity escaping per the OWASP rules.
// The forward slash is only escaped in secure mode;
// it helps end an HTML entity.
var htmlEscapes = [...]string{
	0: "",
	1: "&quot;",
	2: "&amp;",
	3: "&#39;",
	4: "&#47;",
	5: "&lt;",
	6: "&gt;",
}

var htmlEscapeTable = [256]byte{
	'"':  1,
	'&':  2,
	'\'': 3,
	'/':  4,
	'<':  5,
	'>':  6,
}

func escapeHTML(ob *Buffer, src []byte, secure bool) {
	ob.Grow(len(src) * 12 / 10)

	i := 0
	for i < len(src) {
		org := i
		var esc byte
		for i < len(src) {
			if esc = htmlEscapeTable[src[i]]; esc != 0 {
				break
			}
			i++
		}
		if i > org {
			ob.Write(src[org:i])
		}
		if i >= len(src) {
			break
		}

		if src[i] == '/' && !secure {
			ob.WriteByte('/')
		} else {
			ob.WriteString(htmlEscapes[esc])
		}
		i++
	}
}

// hrefSafe marks the bytes that pass into an href attribute unescaped.
var hrefSafe = [256]bool{}

func init() {
	for c := '0'; c <= '9'; c++ {
		hrefSafe[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		hrefSafe[c] = true
		hrefSafe[c-'a'+'A'] = true
	}
	for _, c := range "!#$%()*+,-./:;=?@_" {
		hrefSafe[c] = true
	}
}

const hexChars = "0123456789ABCDEF"

func escapeHref(ob *Buffer, src []byte) {
	ob.Grow(len(src) * 12 / 10)

	i := 0
	for i < len(src) {
		org := i
		for i < len(src) && hrefSafe[src[i]] {
			i++
		}
		if i > org {
			ob.Write(src[org:i])
		}
		if i >= len(src) {
			break
		}

		switch src[i] {
		case '&':
			// The ampersand appears all the time in URLs,
			// but needs entity escaping to live inside an href.
			ob.WriteString("&amp;")
		case '\'':
			// A valid URL character that still needs entity escaping.
			ob.WriteString("&#x27;")
		default:
			ob.WriteByte('%')
			ob.WriteByte(hexChars[(src[i]>>4)&0xF])
			ob.WriteByte(hexChars[src[i]&0xF])
		}
		i++
	}
}
