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

// parseBlock recognizes blocks at the start of data in a fixed order,
// consuming each match and recursing for nested content.
// Each recognizer leaves unrecognized input for the next candidate;
// the paragraph swallows whatever is left.
func (p *Parser) parseBlock(out *Buffer, data []byte) {
	if p.nesting() > p.maxNesting {
		return
	}

	beg := 0
	for beg < len(data) {
		txt := data[beg:]

		if p.isAtxHeader(txt) {
			beg += p.parseAtxHeader(out, txt)
		} else if i := p.tryHTMLBlock(out, txt); i != 0 {
			beg += i
		} else if i := isEmpty(txt); i != 0 {
			beg += i
		} else if isHRule(txt) {
			if p.cb.HRule != nil {
				p.cb.HRule(out)
			}
			for beg < len(data) && data[beg] != '\n' {
				beg++
			}
			beg++
		} else if i := p.tryFencedCode(out, txt); i != 0 {
			beg += i
		} else if i := p.tryTable(out, txt); i != 0 {
			beg += i
		} else if prefixQuote(txt) != 0 {
			beg += p.parseBlockquote(out, txt)
		} else if prefixCode(txt) != 0 {
			beg += p.parseBlockCode(out, txt)
		} else if prefixULI(txt) != 0 {
			beg += p.parseList(out, txt, 0)
		} else if prefixOLI(txt) != 0 {
			beg += p.parseList(out, txt, ListOrdered)
		} else {
			beg += p.parseParagraph(out, txt)
		}
	}
}

func (p *Parser) tryHTMLBlock(out *Buffer, data []byte) int {
	if data[0] != '<' || p.cb.BlockHTML == nil {
		return 0
	}
	return p.parseHTMLBlock(out, data, true)
}

func (p *Parser) tryFencedCode(out *Buffer, data []byte) int {
	if p.ext&FencedCode == 0 {
		return 0
	}
	return p.parseFencedCode(out, data)
}

func (p *Parser) tryTable(out *Buffer, data []byte) int {
	if p.ext&Tables == 0 {
		return 0
	}
	return p.parseTable(out, data)
}

// isEmpty returns the length of a blank line at the start of data,
// or 0 when the line has content.
func isEmpty(data []byte) int {
	var i int
	for i = 0; i < len(data) && data[i] != '\n'; i++ {
		if data[i] != ' ' {
			return 0
		}
	}
	return i + 1
}

// isHRule reports whether data opens with a horizontal rule:
// at least three of the same rule byte, possibly space-separated.
func isHRule(data []byte) bool {
	if len(data) < 3 {
		return false
	}
	i := 0
	for i < 3 && data[i] == ' ' {
		i++
	}

	if i+2 >= len(data) || (data[i] != '*' && data[i] != '-' && data[i] != '_') {
		return false
	}
	c := data[i]

	n := 0
	for i < len(data) && data[i] != '\n' {
		if data[i] == c {
			n++
		} else if data[i] != ' ' {
			return false
		}
		i++
	}
	return n >= 3
}

// prefixCodefence returns the width of a code fence opening at data,
// or 0.
func prefixCodefence(data []byte) int {
	if len(data) < 3 {
		return 0
	}
	i := 0
	for i < 3 && data[i] == ' ' {
		i++
	}

	if i+2 >= len(data) || (data[i] != '~' && data[i] != '`') {
		return 0
	}
	c := data[i]

	n := 0
	for i < len(data) && data[i] == c {
		n++
		i++
	}
	if n < 3 {
		return 0
	}
	return i
}

// isCodefence checks whether data opens with a whole fence line,
// returning the bytes consumed (through the newline)
// and the language token, which supports the { lang } wrapped form.
func isCodefence(data []byte) (consumed int, syntax []byte) {
	i := prefixCodefence(data)
	if i == 0 {
		return 0, nil
	}

	for i < len(data) && data[i] == ' ' {
		i++
	}

	synStart := i
	synLen := 0

	if i < len(data) && data[i] == '{' {
		i++
		synStart++

		for i < len(data) && data[i] != '}' && data[i] != '\n' {
			synLen++
			i++
		}
		if i == len(data) || data[i] != '}' {
			return 0, nil
		}

		// Strip whitespace inside the braces.
		for synLen > 0 && mdSpace(data[synStart]) {
			synStart++
			synLen--
		}
		for synLen > 0 && mdSpace(data[synStart+synLen-1]) {
			synLen--
		}
		i++
	} else {
		for i < len(data) && !mdSpace(data[i]) {
			synLen++
			i++
		}
	}

	syntax = data[synStart : synStart+synLen]

	for i < len(data) && data[i] != '\n' {
		if !mdSpace(data[i]) {
			return 0, nil
		}
		i++
	}
	return i + 1, syntax
}

// isAtxHeader reports whether data opens with a hash-prefixed header.
func (p *Parser) isAtxHeader(data []byte) bool {
	if data[0] != '#' {
		return false
	}
	if p.ext&SpaceHeaders != 0 {
		level := 0
		for level < len(data) && level < 6 && data[level] == '#' {
			level++
		}
		if level < len(data) && data[level] != ' ' {
			return false
		}
	}
	return true
}

// isHeaderline returns 1 or 2 when data opens with a setext underline,
// 0 otherwise.
func isHeaderline(data []byte) int {
	i := 0

	if data[i] == '=' {
		for i = 1; i < len(data) && data[i] == '='; i++ {
		}
		for i < len(data) && data[i] == ' ' {
			i++
		}
		if i >= len(data) || data[i] == '\n' {
			return 1
		}
		return 0
	}

	if data[i] == '-' {
		for i = 1; i < len(data) && data[i] == '-'; i++ {
		}
		for i < len(data) && data[i] == ' ' {
			i++
		}
		if i >= len(data) || data[i] == '\n' {
			return 2
		}
		return 0
	}

	return 0
}

func isNextHeaderline(data []byte) bool {
	i := 0
	for i < len(data) && data[i] != '\n' {
		i++
	}
	i++
	if i >= len(data) {
		return false
	}
	return isHeaderline(data[i:]) != 0
}

// prefixQuote returns the length of a blockquote prefix, or 0.
func prefixQuote(data []byte) int {
	i := 0
	for i < 3 && i < len(data) && data[i] == ' ' {
		i++
	}
	if i < len(data) && data[i] == '>' {
		if i+1 < len(data) && data[i+1] == ' ' {
			return i + 2
		}
		return i + 1
	}
	return 0
}

// prefixCode returns the length of an indented code prefix, or 0.
func prefixCode(data []byte) int {
	if len(data) > 3 && data[0] == ' ' && data[1] == ' ' && data[2] == ' ' && data[3] == ' ' {
		return 4
	}
	return 0
}

// prefixOLI returns the length of an ordered list item prefix, or 0.
func prefixOLI(data []byte) int {
	i := 0
	for i < 3 && i < len(data) && data[i] == ' ' {
		i++
	}
	if i >= len(data) || !isDigit(data[i]) {
		return 0
	}
	for i < len(data) && isDigit(data[i]) {
		i++
	}
	if i+1 >= len(data) || data[i] != '.' || data[i+1] != ' ' {
		return 0
	}
	if isNextHeaderline(data[i:]) {
		return 0
	}
	return i + 2
}

// prefixULI returns the length of an unordered list item prefix, or 0.
func prefixULI(data []byte) int {
	i := 0
	for i < 3 && i < len(data) && data[i] == ' ' {
		i++
	}
	if i+1 >= len(data) ||
		(data[i] != '*' && data[i] != '+' && data[i] != '-') ||
		data[i+1] != ' ' {
		return 0
	}
	if isNextHeaderline(data[i:]) {
		return 0
	}
	return i + 2
}

// parseBlockquote strips the quote prefix from each line
// and parses the interior as a block.
func (p *Parser) parseBlockquote(out *Buffer, data []byte) int {
	work := p.blockBufs.get()

	// The dequoted content is compacted in place inside data.
	workStart := -1
	workSize := 0

	beg, end := 0, 0
	for beg < len(data) {
		for end = beg + 1; end < len(data) && data[end-1] != '\n'; end++ {
		}

		if pre := prefixQuote(data[beg:end]); pre > 0 {
			beg += pre // skipping prefix
		} else if isEmpty(data[beg:]) > 0 &&
			(end >= len(data) || (prefixQuote(data[end:]) == 0 && isEmpty(data[end:]) == 0)) {
			// Empty line followed by a non-quote line ends the quote.
			break
		}

		if beg < end {
			if workStart < 0 {
				workStart = beg
			} else if beg != workStart+workSize {
				copy(data[workStart+workSize:], data[beg:end])
			}
			workSize += end - beg
		}
		beg = end
	}

	var inner []byte
	if workStart >= 0 {
		inner = data[workStart : workStart+workSize]
	}
	p.parseBlock(work, inner)
	if p.cb.BlockQuote != nil {
		p.cb.BlockQuote(out, work)
	}
	p.blockBufs.pop()
	return end
}

// parseParagraph consumes lines until something that ends a paragraph.
// A setext underline turns the trailing line into a header instead.
func (p *Parser) parseParagraph(out *Buffer, data []byte) int {
	i, end, level := 0, 0, 0

	for i < len(data) {
		for end = i + 1; end < len(data) && data[end-1] != '\n'; end++ {
		}

		if isEmpty(data[i:]) > 0 {
			break
		}
		if level = isHeaderline(data[i:]); level != 0 {
			break
		}

		if p.isAtxHeader(data[i:]) || isHRule(data[i:]) || prefixQuote(data[i:]) > 0 {
			end = i
			break
		}

		// With lax spacing, a non-alphanumeric byte opening a new line may start
		// another kind of block without an intervening blank.
		if p.ext&LaxSpacing != 0 && !isAlnum(data[i]) {
			if prefixOLI(data[i:]) > 0 || prefixULI(data[i:]) > 0 {
				end = i
				break
			}
			if data[i] == '<' && p.cb.BlockHTML != nil && p.parseHTMLBlock(out, data[i:], false) > 0 {
				end = i
				break
			}
			if p.ext&FencedCode != 0 {
				if n, _ := isCodefence(data[i:]); n > 0 {
					end = i
					break
				}
			}
		}

		i = end
	}

	workSize := i
	for workSize > 0 && data[workSize-1] == '\n' {
		workSize--
	}

	if level == 0 {
		tmp := p.blockBufs.get()
		p.parseInline(tmp, data[:workSize])
		if p.cb.Paragraph != nil {
			p.cb.Paragraph(out, tmp)
		}
		p.blockBufs.pop()
		return end
	}

	// A setext header closes the paragraph:
	// the final line becomes the header text,
	// whatever precedes it stays a paragraph.
	headerData := data
	if workSize > 0 {
		i = workSize
		workSize--
		for workSize > 0 && data[workSize] != '\n' {
			workSize--
		}
		beg := workSize + 1
		for workSize > 0 && data[workSize-1] == '\n' {
			workSize--
		}

		if workSize > 0 {
			tmp := p.blockBufs.get()
			p.parseInline(tmp, data[:workSize])
			if p.cb.Paragraph != nil {
				p.cb.Paragraph(out, tmp)
			}
			p.blockBufs.pop()
			headerData = data[beg:]
			workSize = i - beg
		} else {
			workSize = i
		}
	}

	headerWork := p.spanBufs.get()
	p.parseInline(headerWork, headerData[:workSize])
	if p.cb.Header != nil {
		p.cb.Header(out, headerWork, level)
	}
	p.spanBufs.pop()

	return end
}

// parseFencedCode copies fence content verbatim
// until a closing fence of the same character.
func (p *Parser) parseFencedCode(out *Buffer, data []byte) int {
	beg, lang := isCodefence(data)
	if beg == 0 {
		return 0
	}

	work := p.blockBufs.get()

	for beg < len(data) {
		fenceEnd, trail := isCodefence(data[beg:])
		if fenceEnd != 0 && len(trail) == 0 {
			beg += fenceEnd
			break
		}

		var end int
		for end = beg + 1; end < len(data) && data[end-1] != '\n'; end++ {
		}

		if beg < end {
			if isEmpty(data[beg:]) > 0 {
				work.WriteByte('\n')
			} else {
				work.Write(data[beg:end])
			}
		}
		beg = end
	}

	if work.Len() > 0 && work.last() != '\n' {
		work.WriteByte('\n')
	}

	if p.cb.BlockCode != nil {
		var langBuf *Buffer
		if len(lang) > 0 {
			langBuf = textBuffer(lang)
		}
		p.cb.BlockCode(out, work, langBuf)
	}

	p.blockBufs.pop()
	return beg
}

// parseBlockCode consumes 4-space indented code,
// trimming trailing blank lines and ensuring a final newline.
func (p *Parser) parseBlockCode(out *Buffer, data []byte) int {
	work := p.blockBufs.get()

	beg := 0
	for beg < len(data) {
		var end int
		for end = beg + 1; end < len(data) && data[end-1] != '\n'; end++ {
		}

		if pre := prefixCode(data[beg:end]); pre > 0 {
			beg += pre // skipping prefix
		} else if isEmpty(data[beg:]) == 0 {
			// Non-empty non-prefixed line breaks the pre.
			break
		}

		if beg < end {
			if isEmpty(data[beg:]) > 0 {
				work.WriteByte('\n')
			} else {
				work.Write(data[beg:end])
			}
		}
		beg = end
	}

	end := work.Len()
	for end > 0 && work.Bytes()[end-1] == '\n' {
		end--
	}
	work.Truncate(end)
	work.WriteByte('\n')

	if p.cb.BlockCode != nil {
		p.cb.BlockCode(out, work, nil)
	}

	p.blockBufs.pop()
	return beg
}

// parseListItem parses one item,
// assuming its marker prefix has not yet been removed.
// flags accumulates what the item learned about its list.
func (p *Parser) parseListItem(out *Buffer, data []byte, flags *ListFlags) int {
	// Keeping track of the first indentation prefix.
	orgpre := 0
	for orgpre < 3 && orgpre < len(data) && data[orgpre] == ' ' {
		orgpre++
	}

	beg := prefixULI(data)
	if beg == 0 {
		beg = prefixOLI(data)
	}
	if beg == 0 {
		return 0
	}

	// Skipping to the beginning of the following line.
	end := beg
	for end < len(data) && data[end-1] != '\n' {
		end++
	}

	work := p.spanBufs.get()
	inter := p.spanBufs.get()

	// Putting the first line into the working buffer.
	work.Write(data[beg:end])
	beg = end

	inEmpty, hasInsideEmpty, inFence := false, false, false
	sublist := 0

	for beg < len(data) {
		end++
		for end < len(data) && data[end-1] != '\n' {
			end++
		}

		if isEmpty(data[beg:end]) > 0 {
			inEmpty = true
			beg = end
			continue
		}

		// Calculating the indentation.
		i := 0
		for i < 4 && beg+i < end && data[beg+i] == ' ' {
			i++
		}
		pre := i

		if p.ext&FencedCode != 0 {
			if n, _ := isCodefence(data[beg+i : end]); n != 0 {
				inFence = !inFence
			}
		}

		// A fence suppresses list-marker recognition until it closes.
		hasNextULI, hasNextOLI := 0, 0
		if !inFence {
			hasNextULI = prefixULI(data[beg+i : end])
			hasNextOLI = prefixOLI(data[beg+i : end])
		}

		// A marker-type switch terminates the list.
		if inEmpty && ((*flags&ListOrdered != 0 && hasNextULI > 0) ||
			(*flags&ListOrdered == 0 && hasNextOLI > 0)) {
			*flags |= listItemEnd
			break
		}

		if (hasNextULI > 0 && !isHRule(data[beg+i:end])) || hasNextOLI > 0 {
			if inEmpty {
				hasInsideEmpty = true
			}

			if pre == orgpre {
				// The next item at the same indent ends this one.
				break
			}

			if sublist == 0 {
				sublist = work.Len()
			}
		} else if inEmpty && pre == 0 {
			// Non-indented content after an empty line ends the list.
			*flags |= listItemEnd
			break
		} else if inEmpty {
			work.WriteByte('\n')
			hasInsideEmpty = true
		}

		inEmpty = false

		// Adding the line without prefix into the working buffer.
		work.Write(data[beg+i : end])
		beg = end
	}

	if hasInsideEmpty {
		*flags |= ListItemBlock
	}

	workBytes := work.Bytes()
	if *flags&ListItemBlock != 0 {
		// Intermediate render of a block item.
		if sublist > 0 && sublist < len(workBytes) {
			p.parseBlock(inter, workBytes[:sublist])
			p.parseBlock(inter, workBytes[sublist:])
		} else {
			p.parseBlock(inter, workBytes)
		}
	} else {
		// Intermediate render of an inline item.
		if sublist > 0 && sublist < len(workBytes) {
			p.parseInline(inter, workBytes[:sublist])
			p.parseBlock(inter, workBytes[sublist:])
		} else {
			p.parseInline(inter, workBytes)
		}
	}

	if p.cb.ListItem != nil {
		p.cb.ListItem(out, inter, *flags)
	}
	p.spanBufs.pop()
	p.spanBufs.pop()
	return beg
}

// parseList renders an ordered or unordered list block item by item.
func (p *Parser) parseList(out *Buffer, data []byte, flags ListFlags) int {
	work := p.blockBufs.get()

	i := 0
	for i < len(data) {
		j := p.parseListItem(work, data[i:], &flags)
		i += j
		if j == 0 || flags&listItemEnd != 0 {
			break
		}
	}

	if p.cb.List != nil {
		p.cb.List(out, work, flags)
	}
	p.blockBufs.pop()
	return i
}

// parseAtxHeader renders a #-prefixed header,
// stripping trailing hashes and spaces.
func (p *Parser) parseAtxHeader(out *Buffer, data []byte) int {
	level := 0
	for level < len(data) && level < 6 && data[level] == '#' {
		level++
	}

	i := level
	for i < len(data) && data[i] == ' ' {
		i++
	}

	end := i
	for end < len(data) && data[end] != '\n' {
		end++
	}
	skip := end

	for end > 0 && data[end-1] == '#' {
		end--
	}
	for end > 0 && data[end-1] == ' ' {
		end--
	}

	if end > i {
		work := p.spanBufs.get()
		p.parseInline(work, data[i:end])
		if p.cb.Header != nil {
			p.cb.Header(out, work, level)
		}
		p.spanBufs.pop()
	}
	return skip
}

// htmlBlockEndTag checks for </tag> at data followed by blank lines,
// returning the bytes consumed on a match.
func htmlBlockEndTag(tag string, data []byte) int {
	// Checking if the tag closer is a match.
	if len(tag)+3 >= len(data) ||
		!equalFold(data[2:2+len(tag)], tag) ||
		data[len(tag)+2] != '>' {
		return 0
	}

	// Checking for blank lines.
	i := len(tag) + 3
	w := 0
	if i < len(data) {
		if w = isEmpty(data[i:]); w == 0 {
			return 0 // non-blank after tag
		}
	}
	i += w
	w = 0
	if i < len(data) {
		w = isEmpty(data[i:])
	}
	return i + w
}

// htmlBlockEnd hunts for the closing tag that terminates an HTML block.
// When startOfLine is set, only closers following a newline count
// (except on the block's first line).
func htmlBlockEnd(tag string, data []byte, startOfLine bool) int {
	i := 1
	blockLines := 0

	for i < len(data) {
		i++
		for i < len(data) && !(data[i-1] == '<' && data[i] == '/') {
			if data[i] == '\n' {
				blockLines++
			}
			i++
		}

		if startOfLine && blockLines > 0 && data[i-2] != '\n' {
			continue
		}
		if i+2+len(tag) >= len(data) {
			break
		}

		if end := htmlBlockEndTag(tag, data[i-1:]); end > 0 {
			return i + end - 1
		}
	}
	return 0
}

// parseHTMLBlock handles a block-level chunk of raw HTML,
// special-casing comments and <hr>-style self-closers.
func (p *Parser) parseHTMLBlock(out *Buffer, data []byte, doRender bool) int {
	if len(data) < 2 || data[0] != '<' {
		return 0
	}

	i := 1
	for i < len(data) && data[i] != '>' && data[i] != ' ' {
		i++
	}

	var curtag string
	if i < len(data) {
		curtag, _ = findBlockTag(data[1:i])
	}

	if curtag == "" {
		// HTML comment, laxist form.
		if len(data) > 5 && data[1] == '!' && data[2] == '-' && data[3] == '-' {
			i = 5
			for i < len(data) && !(data[i-2] == '-' && data[i-1] == '-' && data[i] == '>') {
				i++
			}
			i++
			if i < len(data) {
				if j := isEmpty(data[i:]); j > 0 {
					size := i + j
					if doRender && p.cb.BlockHTML != nil {
						p.cb.BlockHTML(out, textBuffer(data[:size]))
					}
					return size
				}
			}
		}

		// HR, the only self-closing block tag considered.
		if len(data) > 4 && (data[1] == 'h' || data[1] == 'H') && (data[2] == 'r' || data[2] == 'R') {
			i = 3
			for i < len(data) && data[i] != '>' {
				i++
			}
			if i+1 < len(data) {
				i++
				if j := isEmpty(data[i:]); j > 0 {
					size := i + j
					if doRender && p.cb.BlockHTML != nil {
						p.cb.BlockHTML(out, textBuffer(data[:size]))
					}
					return size
				}
			}
		}

		return 0
	}

	// Looking for an unindented matching closing tag
	// followed by a blank line.
	tagEnd := htmlBlockEnd(curtag, data, true)

	// A second pass allows an indented match,
	// but not for ins or del (following the original Markdown.pl).
	if tagEnd == 0 && curtag != "ins" && curtag != "del" {
		tagEnd = htmlBlockEnd(curtag, data, false)
	}
	if tagEnd == 0 {
		return 0
	}

	if doRender && p.cb.BlockHTML != nil {
		p.cb.BlockHTML(out, textBuffer(data[:tagEnd]))
	}
	return tagEnd
}

// parseTableRow renders the cells of one table row.
func (p *Parser) parseTableRow(out *Buffer, data []byte, colData []CellFlags, headerFlag CellFlags) {
	if p.cb.TableCell == nil || p.cb.TableRow == nil {
		return
	}

	rowWork := p.spanBufs.get()

	i := 0
	if i < len(data) && data[i] == '|' {
		i++
	}

	col := 0
	for ; col < len(colData) && i < len(data); col++ {
		cellWork := p.spanBufs.get()

		for i < len(data) && mdSpace(data[i]) {
			i++
		}
		cellStart := i

		for i < len(data) && data[i] != '|' {
			i++
		}
		cellEnd := i - 1
		for cellEnd > cellStart && mdSpace(data[cellEnd]) {
			cellEnd--
		}

		p.parseInline(cellWork, data[cellStart:cellEnd+1])
		p.cb.TableCell(rowWork, cellWork, colData[col]|headerFlag)

		p.spanBufs.pop()
		i++
	}

	for ; col < len(colData); col++ {
		p.cb.TableCell(rowWork, nil, colData[col]|headerFlag)
	}

	p.cb.TableRow(out, rowWork)
	p.spanBufs.pop()
}

// parseTableHeader validates the header line and its underline,
// accumulating per-column alignment flags.
// It renders the header row and returns the bytes consumed,
// or 0 when data does not open a table.
func (p *Parser) parseTableHeader(out *Buffer, data []byte) (consumed int, colData []CellFlags) {
	pipes, i := 0, 0
	for i < len(data) && data[i] != '\n' {
		if data[i] == '|' {
			pipes++
		}
		i++
	}
	if i == len(data) || pipes == 0 {
		return 0, nil
	}

	headerEnd := i
	for headerEnd > 0 && mdSpace(data[headerEnd-1]) {
		headerEnd--
	}

	if data[0] == '|' {
		pipes--
	}
	if headerEnd > 0 && data[headerEnd-1] == '|' {
		pipes--
	}

	colData = make([]CellFlags, pipes+1)

	// Parse the header underline.
	i++
	if i < len(data) && data[i] == '|' {
		i++
	}

	underEnd := i
	for underEnd < len(data) && data[underEnd] != '\n' {
		underEnd++
	}

	col := 0
	for ; col < len(colData) && i < underEnd; col++ {
		dashes := 0

		for i < underEnd && data[i] == ' ' {
			i++
		}
		if i < underEnd && data[i] == ':' {
			i++
			colData[col] |= CellAlignLeft
			dashes++
		}
		for i < underEnd && data[i] == '-' {
			i++
			dashes++
		}
		if i < underEnd && data[i] == ':' {
			i++
			colData[col] |= CellAlignRight
			dashes++
		}
		for i < underEnd && data[i] == ' ' {
			i++
		}
		if i < underEnd && data[i] != '|' {
			break
		}
		if dashes < 3 {
			break
		}
		i++
	}
	if col < len(colData) {
		return 0, nil
	}

	p.parseTableRow(out, data[:headerEnd], colData, CellHeader)
	return underEnd + 1, colData
}

// parseTable consumes a whole table:
// header, underline, and body rows until a line with no pipe.
func (p *Parser) parseTable(out *Buffer, data []byte) int {
	headerWork := p.spanBufs.get()
	bodyWork := p.blockBufs.get()

	i, colData := p.parseTableHeader(headerWork, data)
	if i > 0 {
		for i < len(data) {
			rowStart := i
			pipes := 0
			for i < len(data) && data[i] != '\n' {
				if data[i] == '|' {
					pipes++
				}
				i++
			}

			if pipes == 0 || i == len(data) {
				i = rowStart
				break
			}

			p.parseTableRow(bodyWork, data[rowStart:i], colData, 0)
			i++
		}

		if p.cb.Table != nil {
			p.cb.Table(out, headerWork, bodyWork)
		}
	}

	p.spanBufs.pop()
	p.blockBufs.pop()
	return i
}
