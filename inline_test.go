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

func TestInlineRendering(t *testing.T) {
	tests := []struct {
		name  string
		ext   Extensions
		input string
		want  string
	}{
		{
			name:  "CodeSpan",
			input: "a `code` b\n",
			want:  "<p>a <code>code</code> b</p>\n",
		},
		{
			name:  "CodeSpanDoubleBacktick",
			input: "`` a`b ``\n",
			want:  "<p><code>a`b</code></p>\n",
		},
		{
			name:  "CodeSpanUnterminated",
			input: "a `b\n",
			want:  "<p>a `b</p>\n",
		},
		{
			name:  "OpeningDelimiterNeedsText",
			input: "a * b*\n",
			want:  "<p>a * b*</p>\n",
		},
		{
			name:  "Strikethrough",
			ext:   Strikethrough,
			input: "~~x~~\n",
			want:  "<p><del>x</del></p>\n",
		},
		{
			name:  "SingleTildeInert",
			ext:   Strikethrough,
			input: "~x~\n",
			want:  "<p>~x~</p>\n",
		},
		{
			name:  "InlineLink",
			input: "[text](http://a.com)\n",
			want:  "<p><a href=\"http://a.com\">text</a></p>\n",
		},
		{
			name:  "InlineLinkWithTitle",
			input: "[t](/u \"ti\")\n",
			want:  "<p><a href=\"/u\" title=\"ti\">t</a></p>\n",
		},
		{
			name:  "InlineLinkAngleURL",
			input: "[t](</u>)\n",
			want:  "<p><a href=\"/u\">t</a></p>\n",
		},
		{
			name:  "Image",
			input: "![alt](/img.png \"ti\")\n",
			want:  "<p><img src=\"/img.png\" alt=\"alt\" title=\"ti\"></p>\n",
		},
		{
			name:  "ShortcutReference",
			input: "[label]\n\n[label]: /url\n",
			want:  "<p><a href=\"/url\">label</a></p>\n",
		},
		{
			name:  "UnresolvedReferenceStaysText",
			input: "[nope][missing]\n",
			want:  "<p>[nope][missing]</p>\n",
		},
		{
			name:  "AngleAutolink",
			input: "<http://x.com/>\n",
			want:  "<p><a href=\"http://x.com/\">http://x.com/</a></p>\n",
		},
		{
			name:  "AngleEmailAutolink",
			input: "<me@example.com>\n",
			want:  "<p><a href=\"mailto:me@example.com\">me@example.com</a></p>\n",
		},
		{
			name:  "RawHTMLTag",
			input: "a <span class=\"x\">b</span>\n",
			want:  "<p>a <span class=\"x\">b</span></p>\n",
		},
		{
			name:  "EntityPassesThrough",
			input: "AT&amp;T &#169; &x\n",
			want:  "<p>AT&amp;T &#169; &amp;x</p>\n",
		},
		{
			name:  "BareURLAutolink",
			ext:   Autolink,
			input: "visit http://example.com now\n",
			want:  "<p>visit <a href=\"http://example.com\">http://example.com</a> now</p>\n",
		},
		{
			name:  "BareWWWAutolink",
			ext:   Autolink,
			input: "see www.example.com now\n",
			want:  "<p>see <a href=\"http://www.example.com\">www.example.com</a> now</p>\n",
		},
		{
			name:  "BareEmailAutolink",
			ext:   Autolink,
			input: "mail me@example.com ok\n",
			want:  "<p>mail <a href=\"mailto:me@example.com\">me@example.com</a> ok</p>\n",
		},
		{
			name:  "Superscript",
			ext:   Superscript,
			input: "2^10 and x^(a b)\n",
			want:  "<p>2<sup>10</sup> and x<sup>a b</sup></p>\n",
		},
		{
			name:  "EmphasisSkipsCodeSpan",
			input: "*a `*` b*\n",
			want:  "<p><em>a <code>*</code> b</em></p>\n",
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

func TestNoIntraEmphasis(t *testing.T) {
	input := "foo_bar_baz\n"

	plain := renderHTML(t, 0, 0, input)
	if want := "<p>foo<em>bar</em>baz</p>\n"; plain != want {
		t.Errorf("without NoIntraEmphasis: %q; want %q", plain, want)
	}

	strict := renderHTML(t, NoIntraEmphasis, 0, input)
	if want := "<p>foo_bar_baz</p>\n"; strict != want {
		t.Errorf("with NoIntraEmphasis: %q; want %q", strict, want)
	}
}

func TestAutolinkSuppressedInsideLinkBody(t *testing.T) {
	got := renderHTML(t, Autolink, 0, "[go to http://a.com](http://b.com)\n")
	want := "<p><a href=\"http://b.com\">go to http://a.com</a></p>\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestUnescapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a\*b`, "a*b"},
		{`a\\b`, `a\b`},
		{`trailing\`, `trailing`},
		{"plain", "plain"},
	}
	for _, test := range tests {
		src := NewBuffer(16)
		src.WriteString(test.in)
		ob := NewBuffer(16)
		unescapeText(ob, src)
		if got := ob.String(); got != test.want {
			t.Errorf("unescapeText(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestTagLength(t *testing.T) {
	tests := []struct {
		in     string
		length int
		kind   AutolinkKind
	}{
		{"<a>", 3, NotAutolink},
		{"</em>", 5, NotAutolink},
		{`<span class="x">`, 16, NotAutolink},
		{"<http://x.com/>", 15, NormalAutolink},
		{"<me@example.com>", 16, EmailAutolink},
		{"<>", 0, NotAutolink},
		{"<no end", 0, NotAutolink},
	}
	for _, test := range tests {
		length, kind := tagLength([]byte(test.in))
		if length != test.length || kind != test.kind {
			t.Errorf("tagLength(%q) = %d, %v; want %d, %v",
				test.in, length, kind, test.length, test.kind)
		}
	}
}
