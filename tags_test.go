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

import "testing"

func TestFindBlockTag(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"p", "p", true},
		{"div", "div", true},
		{"DIV", "div", true},
		{"BlockQuote", "blockquote", true},
		{"h1", "h1", true},
		{"h6", "h6", true},
		{"table", "table", true},
		{"ins", "ins", true},
		{"del", "del", true},
		{"math", "math", true},
		{"noscript", "noscript", true},
		{"span", "", false},
		{"em", "", false},
		{"figcaption", "", false},
		{"", "", false},
		{"verylongtagname", "", false},
	}
	for _, test := range tests {
		got, ok := findBlockTag([]byte(test.name))
		if got != test.want || ok != test.ok {
			t.Errorf("findBlockTag(%q) = %q, %t; want %q, %t",
				test.name, got, ok, test.want, test.ok)
		}
	}
}
