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

func smarty(input string) string {
	ob := NewBuffer(64)
	SmartyPants(ob, []byte(input))
	return ob.String()
}

func TestSmartyPants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"DoubleQuotes", `"hi"`, "&ldquo;hi&rdquo;"},
		{"SingleQuotes", "'hi'", "&lsquo;hi&rsquo;"},
		{"Contraction", "it's", "it&rsquo;s"},
		{"ContractionLong", "we're", "we&rsquo;re"},
		{"EnDash", "1-2 a--b", "1-2 a&ndash;b"},
		{"EmDash", "a---b", "a&mdash;b"},
		{"Ellipsis", "wait...", "wait&hellip;"},
		{"SpacedEllipsis", "wait. . .", "wait&hellip;"},
		{"Copyright", "(c) 2016", "&copy; 2016"},
		{"Registered", "(r)", "&reg;"},
		{"Trademark", "(tm)", "&trade;"},
		{"Half", "1/2 cup", "&frac12; cup"},
		{"Quarter", "1/4th", "&frac14;th"},
		{"ThreeQuarters", "3/4ths", "&frac34;ths"},
		{"FractionInsideWord", "a1/2", "a1/2"},
		{"QuotEntity", "&quot;x&quot;", "&ldquo;x&rdquo;"},
		{"Backticks", "``x''", "&ldquo;x&rdquo;"},
		{"EscapedQuote", `\"x`, `"x`},
		{"PreContentUntouched", `<pre>"as-is" -- ok</pre>`, `<pre>"as-is" -- ok</pre>`},
		{"CodeContentUntouched", `<code>'x'</code> 'y'`, `<code>'x'</code> &lsquo;y&rsquo;`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := smarty(test.input); got != test.want {
				t.Errorf("SmartyPants(%q) = %q; want %q", test.input, got, test.want)
			}
		})
	}
}
