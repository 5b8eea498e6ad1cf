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

// Package normhtml normalizes rendered HTML for test comparison:
// whitespace between block tags is insignificant,
// attribute order is insignificant,
// and text is re-escaped canonically.
// Bytes inside <pre> are preserved exactly.
package normhtml

import (
	"bytes"
	"sort"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

var textEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// blockish lists the tags around which whitespace carries no meaning
// in this renderer's output.
var blockish = map[string]bool{
	"blockquote": true,
	"div":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"hr":         true,
	"li":         true,
	"ol":         true,
	"p":          true,
	"pre":        true,
	"table":      true,
	"tbody":      true,
	"td":         true,
	"th":         true,
	"thead":      true,
	"tr":         true,
	"ul":         true,
}

// collapse squeezes every interior whitespace run in data down to one space
// and drops leading and trailing whitespace.
func collapse(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inRun := false
	for _, c := range data {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' {
			inRun = true
			continue
		}
		if inRun {
			if len(out) > 0 {
				out = append(out, ' ')
			}
			inRun = false
		}
		out = append(out, c)
	}
	return out
}

// Normalize renders b into a canonical form
// so that two HTML fragments compare equal
// exactly when a browser would treat them alike.
func Normalize(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var out []byte
	depthPre := 0

	flushText := func(data []byte) {
		if depthPre == 0 {
			data = collapse(data)
		}
		out = append(out, textEscaper.Replace(bytes.Clone(data))...)
	}

	for {
		switch tok.Next() {
		case html.ErrorToken:
			return bytes.TrimSpace(out)

		case html.TextToken:
			flushText(tok.Text())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tag := string(name)
			if blockish[tag] && depthPre == 0 {
				out = bytes.TrimRight(out, " \t\n")
			}
			if tag == "pre" {
				depthPre++
			}
			out = append(out, '<')
			out = append(out, tag...)
			if hasAttr {
				var attrs []string
				for {
					k, v, more := tok.TagAttr()
					attrs = append(attrs, string(k)+`="`+html.EscapeString(string(v))+`"`)
					if !more {
						break
					}
				}
				sort.Strings(attrs)
				for _, a := range attrs {
					out = append(out, ' ')
					out = append(out, a...)
				}
			}
			out = append(out, '>')

		case html.EndTagToken:
			name, _ := tok.TagName()
			tag := string(name)
			if tag == "pre" && depthPre > 0 {
				depthPre--
			} else if blockish[tag] && depthPre == 0 {
				out = bytes.TrimRight(out, " \t\n")
			}
			out = append(out, "</"...)
			out = append(out, tag...)
			out = append(out, '>')

		case html.CommentToken:
			out = append(out, tok.Raw()...)
		}
	}
}
