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

// Package sundown parses the Sundown dialect of Markdown.
//
// The parser turns an untrusted byte stream into a sequence of
// rendering callbacks.
// It never reports errors:
// input that fails to parse as a given construct
// falls through to the next candidate
// and ultimately renders as plain text.
// The bundled [HTMLRenderer] is one set of callbacks;
// any back-end that fills in a [Callbacks] table works the same way.
//
//	out := sundown.NewBuffer(64)
//	p := sundown.New(sundown.CommonExtensions, 16,
//		sundown.NewHTMLRenderer(0).Callbacks())
//	p.Render(out, input)
package sundown

import "bytes"

// Version numbers of the dialect this package tracks.
const (
	versionMajor    = 1
	versionMinor    = 16
	versionRevision = 0
)

// Version returns the upstream dialect version this parser implements.
func Version() (major, minor, revision int) {
	return versionMajor, versionMinor, versionRevision
}

// Extensions is a bitmask of optional syntax the parser recognizes.
type Extensions uint32

const (
	// NoIntraEmphasis suppresses emphasis inside words.
	NoIntraEmphasis Extensions = 1 << 0
	// Tables enables pipe-and-dash tables.
	Tables Extensions = 1 << 1
	// FencedCode enables ``` and ~~~ code fences.
	FencedCode Extensions = 1 << 2
	// Autolink recognizes bare URLs, www. prefixes, and e-mail addresses.
	Autolink Extensions = 1 << 3
	// Strikethrough enables ~~text~~.
	Strikethrough Extensions = 1 << 4
	// SpaceHeaders requires a space between the # run and an ATX header's text.
	SpaceHeaders Extensions = 1 << 6
	// Superscript enables ^text and ^(text).
	Superscript Extensions = 1 << 7
	// LaxSpacing lets lists, HTML blocks, and fences interrupt a paragraph
	// when their line does not open with a letter or digit,
	// so an unindented "1." item does not interrupt one.
	LaxSpacing Extensions = 1 << 8

	// CommonExtensions is the set most renderers want.
	CommonExtensions = NoIntraEmphasis | Tables | FencedCode |
		Autolink | Strikethrough | LaxSpacing
)

// ListFlags qualify the List and ListItem callbacks.
type ListFlags int

const (
	// ListOrdered marks an ordered (numbered) list or item.
	ListOrdered ListFlags = 1 << 0
	// ListItemBlock marks an item whose contents were parsed as blocks.
	ListItemBlock ListFlags = 1 << 1
	// listItemEnd signals the item that terminated its list.
	listItemEnd ListFlags = 1 << 3
)

// CellFlags qualify the TableCell callback.
type CellFlags int

const (
	// CellAlignLeft through CellAlignCenter occupy the low two bits.
	CellAlignLeft   CellFlags = 1
	CellAlignRight  CellFlags = 2
	CellAlignCenter CellFlags = 3
	cellAlignMask   CellFlags = 3
	// CellHeader marks a cell in the table's header row.
	CellHeader CellFlags = 4
)

// Callbacks is the renderer's contribution to a parse.
//
// Block callbacks receive fully rendered child content in text
// and append their output to out.
// Span callbacks report whether they handled the span;
// false (like a nil callback) makes the parser
// emit the original source bytes instead.
// Text handed to a callback must be treated as read-only
// and is invalid once the callback returns.
type Callbacks struct {
	// Block-level callbacks. A nil callback skips the block,
	// except that with BlockHTML nil no HTML block is recognized
	// and its lines parse as ordinary paragraph text.
	BlockCode  func(out *Buffer, text, lang *Buffer)
	BlockQuote func(out *Buffer, text *Buffer)
	BlockHTML  func(out *Buffer, text *Buffer)
	Header     func(out *Buffer, text *Buffer, level int)
	HRule      func(out *Buffer)
	List       func(out *Buffer, text *Buffer, flags ListFlags)
	ListItem   func(out *Buffer, text *Buffer, flags ListFlags)
	Paragraph  func(out *Buffer, text *Buffer)
	Table      func(out *Buffer, header, body *Buffer)
	TableRow   func(out *Buffer, text *Buffer)
	TableCell  func(out *Buffer, text *Buffer, flags CellFlags)

	// Span-level callbacks.
	AutoLink       func(out *Buffer, link *Buffer, kind AutolinkKind) bool
	CodeSpan       func(out *Buffer, text *Buffer) bool
	DoubleEmphasis func(out *Buffer, text *Buffer) bool
	Emphasis       func(out *Buffer, text *Buffer) bool
	Image          func(out *Buffer, link, title, alt *Buffer) bool
	LineBreak      func(out *Buffer) bool
	Link           func(out *Buffer, link, title, content *Buffer) bool
	RawHTMLTag     func(out *Buffer, tag *Buffer) bool
	TripleEmphasis func(out *Buffer, text *Buffer) bool
	Strikethrough  func(out *Buffer, text *Buffer) bool
	Superscript    func(out *Buffer, text *Buffer) bool

	// Low-level callbacks. Nil copies the input through unchanged.
	Entity     func(out *Buffer, entity *Buffer)
	NormalText func(out *Buffer, text *Buffer)

	// Header and footer of the whole document.
	DocumentHeader func(out *Buffer)
	DocumentFooter func(out *Buffer)
}

// Parser holds the configuration and scratch state for rendering.
// A Parser may be reused for any number of sequential renders,
// but never concurrently;
// distinct Parsers are independent.
type Parser struct {
	cb         Callbacks
	refs       [refTableSize]*linkRef
	activeChar [256]inlineAction
	blockBufs  bufferPool
	spanBufs   bufferPool
	ext        Extensions
	maxNesting int
	inLinkBody bool
}

// New returns a parser for the given extension set and callback table.
// maxNesting bounds the recursion depth of nested blocks and spans;
// it must be positive.
func New(ext Extensions, maxNesting int, cb Callbacks) *Parser {
	if maxNesting <= 0 {
		panic("sundown: non-positive maximum nesting")
	}
	p := &Parser{
		cb:         cb,
		ext:        ext,
		maxNesting: maxNesting,
		blockBufs:  bufferPool{unit: 256},
		spanBufs:   bufferPool{unit: 64},
	}

	// The dispatch table only activates bytes the callback table
	// can do something with.
	if cb.Emphasis != nil || cb.DoubleEmphasis != nil || cb.TripleEmphasis != nil {
		p.activeChar['*'] = actionEmphasis
		p.activeChar['_'] = actionEmphasis
		if ext&Strikethrough != 0 {
			p.activeChar['~'] = actionEmphasis
		}
	}
	if cb.CodeSpan != nil {
		p.activeChar['`'] = actionCodeSpan
	}
	if cb.LineBreak != nil {
		p.activeChar['\n'] = actionLineBreak
	}
	if cb.Image != nil || cb.Link != nil {
		p.activeChar['['] = actionLink
	}
	p.activeChar['<'] = actionLAngle
	p.activeChar['\\'] = actionEscape
	p.activeChar['&'] = actionEntity
	if ext&Autolink != 0 {
		p.activeChar[':'] = actionAutolinkURL
		p.activeChar['@'] = actionAutolinkEmail
		p.activeChar['w'] = actionAutolinkWWW
	}
	if ext&Superscript != 0 {
		p.activeChar['^'] = actionSuperscript
	}
	return p
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Render parses document and appends the rendered result to out.
//
// The document is staged with tabs expanded to 4-column stops
// and line endings normalized to \n;
// link reference definitions are collected and dropped
// before any block is parsed,
// so references resolve regardless of document order.
func (p *Parser) Render(out *Buffer, document []byte) {
	text := NewBuffer(64)
	text.Grow(len(document))

	p.refs = [refTableSize]*linkRef{}

	beg := 0
	// A BOM is tolerated at offset 0 only.
	if bytes.HasPrefix(document, utf8BOM) {
		beg = 3
	}

	// First pass: collect references, stage everything else.
	for beg < len(document) {
		if last, ok := isRef(document, beg, len(document), &p.refs); ok {
			beg = last
			continue
		}
		end := beg
		for end < len(document) && document[end] != '\n' && document[end] != '\r' {
			end++
		}
		if end > beg {
			expandTabs(text, document[beg:end])
		}
		for end < len(document) && (document[end] == '\n' || document[end] == '\r') {
			// One \n per newline: \r\n collapses.
			if document[end] == '\n' || (end+1 < len(document) && document[end+1] != '\n') {
				text.WriteByte('\n')
			}
			end++
		}
		beg = end
	}

	// Pre-grow the output to keep reallocation out of the hot path.
	out.Grow(out.Len() + text.Len() + text.Len()/2)

	// Second pass: actual rendering.
	if p.cb.DocumentHeader != nil {
		p.cb.DocumentHeader(out)
	}
	if text.Len() > 0 {
		if c := text.last(); c != '\n' && c != '\r' {
			text.WriteByte('\n')
		}
		p.parseBlock(out, text.Bytes())
	}
	if p.cb.DocumentFooter != nil {
		p.cb.DocumentFooter(out)
	}

	p.refs = [refTableSize]*linkRef{}

	if p.spanBufs.live != 0 || p.blockBufs.live != 0 {
		panic("sundown: scratch buffer stack out of balance")
	}
}

// nesting is the combined depth of block and span scratch buffers in use.
func (p *Parser) nesting() int {
	return p.blockBufs.live + p.spanBufs.live
}

// expandTabs stages one line with tabs expanded to 4-column stops.
func expandTabs(out *Buffer, line []byte) {
	i, tab := 0, 0
	for i < len(line) {
		org := i
		for i < len(line) && line[i] != '\t' {
			i++
			tab++
		}
		if i > org {
			out.Write(line[org:i])
		}
		if i >= len(line) {
			break
		}
		for {
			out.WriteByte(' ')
			tab++
			if tab%4 == 0 {
				break
			}
		}
		i++
	}
}
