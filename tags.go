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

import "golang.org/x/net/html/atom"

// blockTags is the set of tag names that open an HTML block.
// Membership is keyed by [atom.Atom],
// whose lookup table serves as the perfect hash over tag names.
var blockTags = map[atom.Atom]struct{}{
	atom.Blockquote: {},
	atom.Del:        {},
	atom.Div:        {},
	atom.Dl:         {},
	atom.Fieldset:   {},
	atom.Figure:     {},
	atom.Form:       {},
	atom.H1:         {},
	atom.H2:         {},
	atom.H3:         {},
	atom.H4:         {},
	atom.H5:         {},
	atom.H6:         {},
	atom.Iframe:     {},
	atom.Ins:        {},
	atom.Math:       {},
	atom.Noscript:   {},
	atom.Ol:         {},
	atom.P:          {},
	atom.Pre:        {},
	atom.Script:     {},
	atom.Style:      {},
	atom.Table:      {},
	atom.Ul:         {},
}

const maxBlockTagLen = 10 // blockquote

// findBlockTag classifies name (matched case-insensitively)
// and returns its canonical lower-case form.
func findBlockTag(name []byte) (string, bool) {
	if len(name) == 0 || len(name) > maxBlockTagLen {
		return "", false
	}
	var buf [maxBlockTagLen]byte
	for i, c := range name {
		buf[i] = lower(c)
	}
	a := atom.Lookup(buf[:len(name)])
	if _, ok := blockTags[a]; !ok {
		return "", false
	}
	return a.String(), true
}
