// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// parseParagraph is spec.md §4.2's paragraph recognizer, the dispatch
// fallback of last resort: it accumulates consecutive non-blank lines
// that do not themselves interrupt the paragraph (per looksLikeBlockStart)
// until a blank line, EOF, or an interrupting line is reached. If, before
// adding a further line, the next line is a Setext underline, the
// accumulated lines instead become a Heading (spec.md §4.2's Setext
// alternative for the Heading recognizer).
//
// Every paragraph is built as a Paragraph node; list.go later rewrites a
// tight list item's top-level Paragraph into a Naked block once the
// list's looseness is known (spec.md §3's tight-list rendering rule).
func (p *parser) parseParagraph(refLevel int) Block {
	first := p.lines[p.pos]
	pos := newPos(first.offset, p.pos+1, 1)

	var lines []string
	startOffset := first.offset
	lines = append(lines, strings.TrimLeft(first.text, " \t"))
	p.pos++

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if newLineCursor(line.text).isBlank() {
			break
		}
		if indentWidth(line.text) < refLevel {
			break
		}
		if level, ok := trimSetextUnderline(line.text); ok {
			p.pos++
			raw := strings.Join(lines, "\n")
			t := p.newText(startOffset, raw)
			return &Heading{withPos{pos}, level, t, ""}
		}
		if looksLikeBlockStart(line.text) {
			break
		}
		lines = append(lines, strings.TrimLeft(line.text, " \t"))
		p.pos++
	}

	raw := strings.Join(lines, "\n")
	t := p.newText(startOffset, raw)
	return &Paragraph{withPos{pos}, t}
}
