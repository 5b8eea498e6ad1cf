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

// HTMLFlags adjust the behavior of the bundled HTML renderer.
type HTMLFlags uint32

const (
	// SkipHTML drops raw HTML blocks and spans from the output.
	SkipHTML HTMLFlags = 1 << 0
	// SkipStyle drops <style> spans.
	SkipStyle HTMLFlags = 1 << 1
	// SkipImages drops images.
	SkipImages HTMLFlags = 1 << 2
	// SkipLinks drops links and autolinks.
	SkipLinks HTMLFlags = 1 << 3
	// Safelink only renders links whose scheme passes [IsSafeLink].
	Safelink HTMLFlags = 1 << 5
	// TOC numbers headers with toc_N anchors.
	TOC HTMLFlags = 1 << 6
	// HardWrap turns every newline inside a paragraph into a break.
	HardWrap HTMLFlags = 1 << 7
	// UseXHTML emits self-closing <br/> and <hr/> forms.
	UseXHTML HTMLFlags = 1 << 8
	// EscapeHTML entity-escapes raw HTML spans instead of passing them.
	EscapeHTML HTMLFlags = 1 << 9
)

// htmlTagKind classifies a raw tag span for the skip flags.
type htmlTagKind int

const (
	htmlTagNone htmlTagKind = iota
	htmlTagOpen
	htmlTagClose
)

// isHTMLTag reports whether tag is an opening or closing tagname tag.
func isHTMLTag(tag []byte, tagname string) htmlTagKind {
	if len(tag) < 3 || tag[0] != '<' {
		return htmlTagNone
	}

	i := 1
	closed := false
	if tag[i] == '/' {
		closed = true
		i++
	}

	for j := 0; i < len(tag); i, j = i+1, j+1 {
		if j >= len(tagname) {
			break
		}
		if tag[i] != tagname[j] {
			return htmlTagNone
		}
	}
	if i == len(tag) {
		return htmlTagNone
	}

	if isSpace(tag[i]) || tag[i] == '>' {
		if closed {
			return htmlTagClose
		}
		return htmlTagOpen
	}
	return htmlTagNone
}

// HTMLRenderer supplies the standard HTML back-end as a callback table.
// The zero value renders plain HTML with no flags set.
type HTMLRenderer struct {
	// Flags adjust the produced markup.
	Flags HTMLFlags

	// LinkAttributes, when non-nil, may append extra attributes
	// to every <a> tag; it is called with the link's URL.
	LinkAttributes func(out *Buffer, link *Buffer)

	toc     bool
	tocData struct {
		headerCount  int
		currentLevel int
		levelOffset  int
	}
}

// NewHTMLRenderer returns a renderer for the given flag set.
func NewHTMLRenderer(flags HTMLFlags) *HTMLRenderer {
	return &HTMLRenderer{Flags: flags}
}

// NewTOCRenderer returns a renderer that emits only a table of contents
// whose entries anchor to the toc_N headers
// produced by an HTML renderer with the [TOC] flag.
func NewTOCRenderer() *HTMLRenderer {
	return &HTMLRenderer{Flags: TOC, toc: true}
}

// Callbacks assembles the renderer's callback table.
// SkipImages and SkipLinks leave those callbacks nil,
// SkipHTML and EscapeHTML leave BlockHTML nil;
// the raw-HTML span flags (SkipHTML, SkipStyle, and the tag checks
// of SkipLinks and SkipImages) are applied inside the RawHTMLTag callback.
func (r *HTMLRenderer) Callbacks() Callbacks {
	if r.toc {
		return Callbacks{
			Header:         r.tocHeader,
			CodeSpan:       r.codeSpan,
			DoubleEmphasis: r.doubleEmphasis,
			Emphasis:       r.emphasis,
			Link:           r.tocLink,
			TripleEmphasis: r.tripleEmphasis,
			Strikethrough:  r.strikethrough,
			Superscript:    r.superscript,
			DocumentFooter: r.tocFinalize,
		}
	}

	cb := Callbacks{
		BlockCode:  r.blockCode,
		BlockQuote: r.blockQuote,
		BlockHTML:  r.blockHTML,
		Header:     r.header,
		HRule:      r.hrule,
		List:       r.list,
		ListItem:   r.listItem,
		Paragraph:  r.paragraph,
		Table:      r.table,
		TableRow:   r.tableRow,
		TableCell:  r.tableCell,

		AutoLink:       r.autoLink,
		CodeSpan:       r.codeSpan,
		DoubleEmphasis: r.doubleEmphasis,
		Emphasis:       r.emphasis,
		Image:          r.image,
		LineBreak:      r.lineBreak,
		Link:           r.link,
		RawHTMLTag:     r.rawHTMLTag,
		TripleEmphasis: r.tripleEmphasis,
		Strikethrough:  r.strikethrough,
		Superscript:    r.superscript,

		NormalText: r.normalText,
	}

	if r.Flags&SkipImages != 0 {
		cb.Image = nil
	}
	if r.Flags&SkipLinks != 0 {
		cb.Link = nil
		cb.AutoLink = nil
	}
	if r.Flags&(SkipHTML|EscapeHTML) != 0 {
		cb.BlockHTML = nil
	}
	return cb
}

func (r *HTMLRenderer) xhtml() bool {
	return r.Flags&UseXHTML != 0
}

func (r *HTMLRenderer) autoLink(ob *Buffer, link *Buffer, kind AutolinkKind) bool {
	if link.Len() == 0 {
		return false
	}
	if r.Flags&Safelink != 0 && !IsSafeLink(link.Bytes()) && kind != EmailAutolink {
		return false
	}

	ob.WriteString(`<a href="`)
	if kind == EmailAutolink {
		ob.WriteString("mailto:")
	}
	escapeHref(ob, link.Bytes())

	if r.LinkAttributes != nil {
		ob.WriteByte('"')
		r.LinkAttributes(ob, link)
		ob.WriteByte('>')
	} else {
		ob.WriteString(`">`)
	}

	// Pretty printing: an explicit mailto: URI
	// renders without the mailto: prefix as its text.
	if link.Prefix("mailto:") == 0 && link.Len() >= 7 {
		escapeHTML(ob, link.Bytes()[7:], false)
	} else {
		escapeHTML(ob, link.Bytes(), false)
	}

	ob.WriteString("</a>")
	return true
}

func (r *HTMLRenderer) blockCode(ob *Buffer, text, lang *Buffer) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}

	if lang.Len() > 0 {
		ob.WriteString(`<pre><code class="`)

		data := lang.Bytes()
		cls := 0
		for i := 0; i < len(data); i, cls = i+1, cls+1 {
			for i < len(data) && isSpace(data[i]) {
				i++
			}
			if i < len(data) {
				org := i
				for i < len(data) && !isSpace(data[i]) {
					i++
				}
				if data[org] == '.' {
					org++
				}
				if cls > 0 {
					ob.WriteByte(' ')
				}
				escapeHTML(ob, data[org:i], false)
			}
		}

		ob.WriteString(`">`)
	} else {
		ob.WriteString("<pre><code>")
	}

	if text != nil {
		escapeHTML(ob, text.Bytes(), false)
	}
	ob.WriteString("</code></pre>\n")
}

func (r *HTMLRenderer) blockQuote(ob *Buffer, text *Buffer) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}
	ob.WriteString("<blockquote>\n")
	ob.Write(text.Bytes())
	ob.WriteString("</blockquote>\n")
}

func (r *HTMLRenderer) blockHTML(ob *Buffer, text *Buffer) {
	if text == nil {
		return
	}
	data := text.Bytes()
	sz := len(data)
	for sz > 0 && data[sz-1] == '\n' {
		sz--
	}
	org := 0
	for org < sz && data[org] == '\n' {
		org++
	}
	if org >= sz {
		return
	}
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}
	ob.Write(data[org:sz])
	ob.WriteByte('\n')
}

func (r *HTMLRenderer) header(ob *Buffer, text *Buffer, level int) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}

	if r.Flags&TOC != 0 {
		ob.Printf("<h%d id=\"toc_%d\">", level, r.tocData.headerCount)
		r.tocData.headerCount++
	} else {
		ob.Printf("<h%d>", level)
	}

	ob.Write(text.Bytes())
	ob.Printf("</h%d>\n", level)
}

func (r *HTMLRenderer) hrule(ob *Buffer) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}
	if r.xhtml() {
		ob.WriteString("<hr/>\n")
	} else {
		ob.WriteString("<hr>\n")
	}
}

func (r *HTMLRenderer) list(ob *Buffer, text *Buffer, flags ListFlags) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}
	if flags&ListOrdered != 0 {
		ob.WriteString("<ol>\n")
	} else {
		ob.WriteString("<ul>\n")
	}
	ob.Write(text.Bytes())
	if flags&ListOrdered != 0 {
		ob.WriteString("</ol>\n")
	} else {
		ob.WriteString("</ul>\n")
	}
}

func (r *HTMLRenderer) listItem(ob *Buffer, text *Buffer, flags ListFlags) {
	ob.WriteString("<li>")
	if text != nil {
		data := text.Bytes()
		size := len(data)
		for size > 0 && data[size-1] == '\n' {
			size--
		}
		ob.Write(data[:size])
	}
	ob.WriteString("</li>\n")
}

func (r *HTMLRenderer) paragraph(ob *Buffer, text *Buffer) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}
	if text.Len() == 0 {
		return
	}

	data := text.Bytes()
	i := 0
	for i < len(data) && isSpace(data[i]) {
		i++
	}
	if i == len(data) {
		return
	}

	ob.WriteString("<p>")
	if r.Flags&HardWrap != 0 {
		for i < len(data) {
			org := i
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i > org {
				ob.Write(data[org:i])
			}

			// No break when the newline closes the paragraph.
			if i >= len(data)-1 {
				break
			}
			r.lineBreak(ob)
			i++
		}
	} else {
		ob.Write(data[i:])
	}
	ob.WriteString("</p>\n")
}

func (r *HTMLRenderer) table(ob *Buffer, header, body *Buffer) {
	if ob.Len() > 0 {
		ob.WriteByte('\n')
	}
	ob.WriteString("<table><thead>\n")
	ob.Write(header.Bytes())
	ob.WriteString("</thead><tbody>\n")
	ob.Write(body.Bytes())
	ob.WriteString("</tbody></table>\n")
}

func (r *HTMLRenderer) tableRow(ob *Buffer, text *Buffer) {
	ob.WriteString("<tr>\n")
	ob.Write(text.Bytes())
	ob.WriteString("</tr>\n")
}

func (r *HTMLRenderer) tableCell(ob *Buffer, text *Buffer, flags CellFlags) {
	if flags&CellHeader != 0 {
		ob.WriteString("<th")
	} else {
		ob.WriteString("<td")
	}

	switch flags & cellAlignMask {
	case CellAlignCenter:
		ob.WriteString(` align="center">`)
	case CellAlignLeft:
		ob.WriteString(` align="left">`)
	case CellAlignRight:
		ob.WriteString(` align="right">`)
	default:
		ob.WriteByte('>')
	}

	ob.Write(text.Bytes())

	if flags&CellHeader != 0 {
		ob.WriteString("</th>\n")
	} else {
		ob.WriteString("</td>\n")
	}
}

func (r *HTMLRenderer) codeSpan(ob *Buffer, text *Buffer) bool {
	ob.WriteString("<code>")
	if text != nil {
		escapeHTML(ob, text.Bytes(), false)
	}
	ob.WriteString("</code>")
	return true
}

func (r *HTMLRenderer) emphasis(ob *Buffer, text *Buffer) bool {
	if text.Len() == 0 {
		return false
	}
	ob.WriteString("<em>")
	ob.Write(text.Bytes())
	ob.WriteString("</em>")
	return true
}

func (r *HTMLRenderer) doubleEmphasis(ob *Buffer, text *Buffer) bool {
	if text.Len() == 0 {
		return false
	}
	ob.WriteString("<strong>")
	ob.Write(text.Bytes())
	ob.WriteString("</strong>")
	return true
}

func (r *HTMLRenderer) tripleEmphasis(ob *Buffer, text *Buffer) bool {
	if text.Len() == 0 {
		return false
	}
	ob.WriteString("<strong><em>")
	ob.Write(text.Bytes())
	ob.WriteString("</em></strong>")
	return true
}

func (r *HTMLRenderer) strikethrough(ob *Buffer, text *Buffer) bool {
	if text.Len() == 0 {
		return false
	}
	ob.WriteString("<del>")
	ob.Write(text.Bytes())
	ob.WriteString("</del>")
	return true
}

func (r *HTMLRenderer) superscript(ob *Buffer, text *Buffer) bool {
	if text.Len() == 0 {
		return false
	}
	ob.WriteString("<sup>")
	ob.Write(text.Bytes())
	ob.WriteString("</sup>")
	return true
}

func (r *HTMLRenderer) lineBreak(ob *Buffer) bool {
	if r.xhtml() {
		ob.WriteString("<br/>\n")
	} else {
		ob.WriteString("<br>\n")
	}
	return true
}

func (r *HTMLRenderer) link(ob *Buffer, link, title, content *Buffer) bool {
	if link != nil && r.Flags&Safelink != 0 && !IsSafeLink(link.Bytes()) {
		return false
	}

	ob.WriteString(`<a href="`)
	if link.Len() > 0 {
		escapeHref(ob, link.Bytes())
	}
	if title.Len() > 0 {
		ob.WriteString(`" title="`)
		escapeHTML(ob, title.Bytes(), false)
	}

	if r.LinkAttributes != nil {
		ob.WriteByte('"')
		r.LinkAttributes(ob, link)
		ob.WriteByte('>')
	} else {
		ob.WriteString(`">`)
	}

	if content.Len() > 0 {
		ob.Write(content.Bytes())
	}
	ob.WriteString("</a>")
	return true
}

func (r *HTMLRenderer) image(ob *Buffer, link, title, alt *Buffer) bool {
	if link.Len() == 0 {
		return false
	}

	ob.WriteString(`<img src="`)
	escapeHref(ob, link.Bytes())
	ob.WriteString(`" alt="`)
	if alt.Len() > 0 {
		escapeHTML(ob, alt.Bytes(), false)
	}
	if title.Len() > 0 {
		ob.WriteString(`" title="`)
		escapeHTML(ob, title.Bytes(), false)
	}

	if r.xhtml() {
		ob.WriteString(`"/>`)
	} else {
		ob.WriteString(`">`)
	}
	return true
}

func (r *HTMLRenderer) rawHTMLTag(ob *Buffer, text *Buffer) bool {
	// EscapeHTML overrides the skip flags:
	// every tag is escaped without looking at it.
	if r.Flags&EscapeHTML != 0 {
		escapeHTML(ob, text.Bytes(), false)
		return true
	}
	if r.Flags&SkipHTML != 0 {
		return true
	}
	if r.Flags&SkipStyle != 0 && isHTMLTag(text.Bytes(), "style") != htmlTagNone {
		return true
	}
	if r.Flags&SkipLinks != 0 && isHTMLTag(text.Bytes(), "a") != htmlTagNone {
		return true
	}
	if r.Flags&SkipImages != 0 && isHTMLTag(text.Bytes(), "img") != htmlTagNone {
		return true
	}
	ob.Write(text.Bytes())
	return true
}

func (r *HTMLRenderer) normalText(ob *Buffer, text *Buffer) {
	if text != nil {
		escapeHTML(ob, text.Bytes(), false)
	}
}

func (r *HTMLRenderer) tocHeader(ob *Buffer, text *Buffer, level int) {
	// The first header decides the offset
	// so a document starting at h2 still nests from the top.
	if r.tocData.currentLevel == 0 {
		r.tocData.levelOffset = level - 1
	}
	level -= r.tocData.levelOffset

	if level > r.tocData.currentLevel {
		for level > r.tocData.currentLevel {
			ob.WriteString("<ul>\n<li>\n")
			r.tocData.currentLevel++
		}
	} else if level < r.tocData.currentLevel {
		ob.WriteString("</li>\n")
		for level < r.tocData.currentLevel {
			ob.WriteString("</ul>\n</li>\n")
			r.tocData.currentLevel--
		}
		ob.WriteString("<li>\n")
	} else {
		ob.WriteString("</li>\n<li>\n")
	}

	ob.Printf("<a href=\"#toc_%d\">", r.tocData.headerCount)
	r.tocData.headerCount++
	if text != nil {
		escapeHTML(ob, text.Bytes(), false)
	}
	ob.WriteString("</a>\n")
}

func (r *HTMLRenderer) tocLink(ob *Buffer, link, title, content *Buffer) bool {
	if content.Len() > 0 {
		ob.Write(content.Bytes())
	}
	return true
}

func (r *HTMLRenderer) tocFinalize(ob *Buffer) {
	for r.tocData.currentLevel > 0 {
		ob.WriteString("</li>\n</ul>\n")
		r.tocData.currentLevel--
	}
}
