// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

// A rawLine is one physical line of the input, with the byte offset of
// its first byte in the original document. Line terminators are stripped
// and normalized away before block parsing ever sees a rawLine, per
// spec.md §4.1's "accept \n, \r\n, \r as a single newline".
type rawLine struct {
	text   string
	offset int
}

// parser threads the state a recursive-descent block parse needs:
// the line array currently being consumed (swapped out, via parseChild,
// whenever a container block recurses into its own body), the reference
// table being built up, and the accumulated diagnostics. It is the
// unexported analogue of the teacher's own parser struct.
type parser struct {
	fileName string
	input    string

	lines []rawLine
	pos   int

	links *ReferenceTable
	texts []*Text
	errs  []ParseError
	corner bool
}

// Parse implements spec.md §6's parse(file_name, input) entry point: it
// runs the block parser, then the inline parser over every deferred span,
// and returns the resulting document. A non-nil error is always a
// *ParseErrorBundle.
func Parse(fileName, input string) (MMark, error) {
	p := &parser{
		fileName: fileName,
		input:    input,
		links:    NewReferenceTable(),
	}
	p.lines = splitLines(input)

	yamlVal, bodyStart := p.parseFrontMatter()
	p.pos = bodyStart

	blocks := p.parseBlocks(0)

	for _, t := range p.texts {
		p.resolveText(t)
	}
	assignHeaderIDs(blocks)

	doc := MMark{
		YAML:          yamlVal,
		Blocks:        blocks,
		Links:         p.links,
		FileName:      fileName,
		HadCornerCase: p.corner,
	}
	if len(p.errs) > 0 {
		return doc, &ParseErrorBundle{FileName: fileName, Input: input, Errors: p.errs}
	}
	return doc, nil
}

// splitLines breaks input into rawLines, treating \n, \r\n, and \r alike
// as a single line terminator (spec.md §4.1).
func splitLines(input string) []rawLine {
	var lines []rawLine
	start := 0
	offset := 0
	for offset < len(input) {
		c := input[offset]
		if c == '\n' {
			lines = append(lines, rawLine{text: input[start:offset], offset: start})
			offset++
			start = offset
			continue
		}
		if c == '\r' {
			lines = append(lines, rawLine{text: input[start:offset], offset: start})
			offset++
			if offset < len(input) && input[offset] == '\n' {
				offset++
			}
			start = offset
			continue
		}
		offset++
	}
	if start < len(input) {
		lines = append(lines, rawLine{text: input[start:], offset: start})
	}
	return lines
}

// newText registers a new deferred inline span at the given source offset,
// to be resolved by the inline parser after the whole block phase
// completes. This is the ISP handoff spec.md §3 describes.
func (p *parser) newText(offset int, raw string) *Text {
	t := &Text{Offset: offset, Raw: raw}
	p.texts = append(p.texts, t)
	return t
}

// newErrorText registers a block-level recovery span: its Raw is unused,
// its Err records why the block was malformed, and its resolved Inline
// becomes a single empty Plain (spec.md §3's "Naked(IspError)").
func (p *parser) newErrorText(offset int, err MMarkErr) *Text {
	pe := ParseError{Offset: offset, Err: err}
	p.errs = append(p.errs, pe)
	t := &Text{Offset: offset, Err: &pe}
	p.texts = append(p.texts, t)
	return t
}

// parseChild parses childLines as an independent nested document (used
// for blockquote bodies and list-item bodies) and restores p's own line
// cursor afterward.
func (p *parser) parseChild(childLines []rawLine) []Block {
	savedLines, savedPos := p.lines, p.pos
	p.lines, p.pos = childLines, 0
	blocks := p.parseBlocks(0)
	p.lines, p.pos = savedLines, savedPos
	return blocks
}

// parseBlocks is spec.md §4.2's "top-level procedure" / "per-block
// dispatch", applied recursively: it consumes blocks from p.lines[p.pos:]
// until end of input or a line less indented than refLevel, which ends
// the enclosing container without being consumed.
func (p *parser) parseBlocks(refLevel int) []Block {
	var blocks []Block
	for {
		for p.pos < len(p.lines) && newLineCursor(p.lines[p.pos].text).isBlank() {
			p.pos++
		}
		if p.pos >= len(p.lines) {
			break
		}
		alevel := indentWidth(p.lines[p.pos].text)
		if alevel < refLevel {
			break
		}
		b, consumed := p.dispatchBlock(refLevel, alevel)
		if !consumed {
			break
		}
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// dispatchBlock tries each block recognizer in spec.md §4.2's order and
// returns the resulting block (nil for constructs, like reference
// definitions, that consume input but emit no block) along with whether
// anything was consumed at all.
func (p *parser) dispatchBlock(refLevel int, alevel int) (Block, bool) {
	if alevel >= refLevel+4 {
		return p.parseIndentedCode(refLevel), true
	}
	if b, ok := p.tryThematicBreak(); ok {
		return b, true
	}
	if b, ok := p.tryATXHeading(); ok {
		return b, true
	}
	if b, ok := p.tryFencedCode(refLevel); ok {
		return b, true
	}
	if b, ok := p.tryHTMLBlock(); ok {
		return b, true
	}
	if b, ok := p.tryPipeTable(refLevel); ok {
		return b, true
	}
	if b, ok := p.tryList(refLevel); ok {
		return b, true
	}
	if b, ok := p.tryBlockquote(refLevel); ok {
		return b, true
	}
	if ok := p.tryReferenceDefinition(); ok {
		return nil, true
	}
	return p.parseParagraph(refLevel), true
}

// looksLikeBlockStart reports whether s (a single line, indentation not
// yet stripped) would begin a block other than a paragraph, per the
// paragraph-interrupt rule spec.md §4.2 lists in its "Paragraph"
// recognizer bullet.
func looksLikeBlockStart(s string) bool {
	if trimThematicBreak(s) {
		return true
	}
	if _, _, ok := trimATX(s); ok {
		return true
	}
	if _, _, _, ok := trimFenceOpen(s); ok {
		return true
	}
	if _, ok := trimQuoteMarker(s); ok {
		return true
	}
	if _, _, _, _, ok := parseListMarker(s); ok {
		return true
	}
	return false
}
