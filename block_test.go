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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlockRendering(t *testing.T) {
	tests := []struct {
		name  string
		ext   Extensions
		input string
		want  string
	}{
		{
			name:  "HeaderLevels",
			input: "# a\n\n###### b\n",
			want:  "<h1>a</h1>\n\n<h6>b</h6>\n",
		},
		{
			name:  "HeaderTrailingHashes",
			input: "## b ##\n",
			want:  "<h2>b</h2>\n",
		},
		{
			name:  "SetextHeaders",
			input: "One\n===\n\nTwo\n---\n",
			want:  "<h1>One</h1>\n\n<h2>Two</h2>\n",
		},
		{
			name:  "SetextAfterParagraph",
			input: "para\ntext\nTitle\n-----\n",
			want:  "<p>para\ntext</p>\n\n<h2>Title</h2>\n",
		},
		{
			name:  "HorizontalRules",
			input: "***\n\n- - -\n\n___\n",
			want:  "<hr>\n\n<hr>\n\n<hr>\n",
		},
		{
			name:  "Blockquote",
			input: "> hi\n",
			want:  "<blockquote>\n<p>hi</p>\n</blockquote>\n",
		},
		{
			name:  "BlockquoteMultiline",
			input: "> a\n> b\n",
			want:  "<blockquote>\n<p>a\nb</p>\n</blockquote>\n",
		},
		{
			name:  "IndentedCode",
			input: "    x := 1\n    y := 2\n",
			want:  "<pre><code>x := 1\ny := 2\n</code></pre>\n",
		},
		{
			name:  "IndentedCodeTrimsTrailingBlanks",
			input: "    x\n\n\nafter\n",
			want:  "<pre><code>x\n</code></pre>\n\n<p>after</p>\n",
		},
		{
			name:  "FencedCodeTilde",
			ext:   FencedCode,
			input: "~~~\nplain\n~~~\n",
			want:  "<pre><code>plain\n</code></pre>\n",
		},
		{
			name:  "FencedCodeBraceLang",
			ext:   FencedCode,
			input: "``` { go }\nx\n```\n",
			want:  "<pre><code class=\"go\">x\n</code></pre>\n",
		},
		{
			name:  "FencedCodeEscapesContent",
			ext:   FencedCode,
			input: "```\n<b> & co\n```\n",
			want:  "<pre><code>&lt;b&gt; &amp; co\n</code></pre>\n",
		},
		{
			name:  "UnorderedList",
			input: "- a\n- b\n",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name:  "OrderedList",
			input: "1. a\n2. b\n",
			want:  "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			name:  "BlockModeList",
			input: "- a\n\n- b\n",
			want:  "<ul>\n<li><p>a</p></li>\n<li><p>b</p></li>\n</ul>\n",
		},
		{
			name:  "NestedList",
			input: "- a\n    - b\n",
			want:  "<ul>\n<li>a\n\n<ul>\n<li>b</li>\n</ul></li>\n</ul>\n",
		},
		{
			name:  "HTMLBlock",
			input: "<div>\nfoo\n</div>\n\nafter\n",
			want:  "<div>\nfoo\n</div>\n\n<p>after</p>\n",
		},
		{
			name:  "HTMLComment",
			input: "<!-- note -->\n\nafter\n",
			want:  "<!-- note -->\n\n<p>after</p>\n",
		},
		{
			name:  "TableAlignment",
			ext:   Tables,
			input: "| a | b | c |\n|:---|---:|:---:|\n| 1 | 2 | 3 |\n",
			want: "<table><thead>\n<tr>\n<th align=\"left\">a</th>\n<th align=\"right\">b</th>\n<th align=\"center\">c</th>\n</tr>\n</thead><tbody>\n" +
				"<tr>\n<td align=\"left\">1</td>\n<td align=\"right\">2</td>\n<td align=\"center\">3</td>\n</tr>\n</tbody></table>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := renderHTML(t, test.ext, 0, test.input)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("render(%q) (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestSpaceHeadersExtension(t *testing.T) {
	// Without the extension, #tag parses as a header.
	loose := renderHTML(t, 0, 0, "#tag\n")
	if want := "<h1>tag</h1>\n"; loose != want {
		t.Errorf("without SpaceHeaders: %q; want %q", loose, want)
	}

	strict := renderHTML(t, SpaceHeaders, 0, "#tag\n")
	if want := "<p>#tag</p>\n"; strict != want {
		t.Errorf("with SpaceHeaders: %q; want %q", strict, want)
	}
}

func TestLaxSpacingListInterruptsParagraph(t *testing.T) {
	input := "text\n- a\n- b\n"

	lax := renderHTML(t, LaxSpacing, 0, input)
	want := "<p>text</p>\n\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n"
	if lax != want {
		t.Errorf("with LaxSpacing: %q; want %q", lax, want)
	}

	// Without it, the marker lines stay in the paragraph.
	strict := renderHTML(t, 0, 0, input)
	if want := "<p>text\n- a\n- b</p>\n"; strict != want {
		t.Errorf("without LaxSpacing: %q; want %q", strict, want)
	}
}

func TestFenceSuppressesListMarkers(t *testing.T) {
	// The fence keeps its interior lines from opening new items;
	// the item stays in inline mode, so the run renders as a code span.
	input := "- item\n    ```\n    - not a marker\n    ```\n"
	got := renderHTML(t, FencedCode, 0, input)
	want := "<ul>\n<li>item\n<code>\n- not a marker\n</code></li>\n</ul>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render(%q) (-want +got):\n%s", input, diff)
	}
}

func TestListTypeSwitchTerminatesList(t *testing.T) {
	got := renderHTML(t, 0, 0, "- a\n\n1. b\n")
	want := "<ul>\n<li>a</li>\n</ul>\n\n<ol>\n<li>b</li>\n</ol>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestIsHRule(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"***\n", true},
		{"---\n", true},
		{"___\n", true},
		{"* * *\n", true},
		{"   ---\n", true},
		{"--\n", false},
		{"-*-\n", false},
		{"abc\n", false},
	}
	for _, test := range tests {
		if got := isHRule([]byte(test.line)); got != test.want {
			t.Errorf("isHRule(%q) = %t; want %t", test.line, got, test.want)
		}
	}
}

func TestIsCodefence(t *testing.T) {
	tests := []struct {
		line     string
		consumed bool
		syntax   string
	}{
		{"```\n", true, ""},
		{"```go\n", true, "go"},
		{"``` { go }\n", true, "go"},
		{"~~~ruby\n", true, "ruby"},
		{"``\n", false, ""},
		{"``` not a fence }\n", false, ""},
	}
	for _, test := range tests {
		n, syntax := isCodefence([]byte(test.line))
		if (n > 0) != test.consumed {
			t.Errorf("isCodefence(%q) consumed = %d; want consumed %t", test.line, n, test.consumed)
			continue
		}
		if test.consumed && string(syntax) != test.syntax {
			t.Errorf("isCodefence(%q) syntax = %q; want %q", test.line, syntax, test.syntax)
		}
	}
}
