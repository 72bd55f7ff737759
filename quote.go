// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

// trimQuoteMarker recognizes a blockquote marker: 0-3 leading spaces,
// '>', and an optional single following space, returning the
// remainder of the line.
func trimQuoteMarker(s string) (rest string, ok bool) {
	c := newLineCursor(s)
	if !c.trimSpace(0, 3, false) {
		return "", false
	}
	if !c.trim('>') {
		return "", false
	}
	c.trimSpace(0, 1, true)
	return c.string(), true
}

func (p *parser) tryBlockquote(refLevel int) (Block, bool) {
	first := p.lines[p.pos]
	_, ok := trimQuoteMarker(first.text)
	if !ok {
		return nil, false
	}
	pos := newPos(first.offset, p.pos+1, 1)

	var child []rawLine
	sawContent := false
	for p.pos < len(p.lines) {
		raw := p.lines[p.pos]
		if rest, ok := trimQuoteMarker(raw.text); ok {
			consumed := len(raw.text) - len(rest)
			child = append(child, rawLine{text: rest, offset: raw.offset + consumed})
			sawContent = !newLineCursor(rest).isBlank()
			p.pos++
			continue
		}
		if sawContent && !newLineCursor(raw.text).isBlank() && !looksLikeBlockStart(raw.text) {
			child = append(child, raw)
			p.pos++
			continue
		}
		break
	}

	blocks := p.parseChild(child)
	return &Blockquote{withPos{pos}, blocks}, true
}
