// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

// parseListMarker recognizes a list-item marker: 0-3 leading spaces, then
// either a bullet ('-', '+', '*') or an ordered-list index (up to 10
// digits followed by '.' or ')'), then either end of line or 1-4 spaces
// of separator. contentCol is the column (spec.md §4.2's "column_of(
// bullet)+1+width_of_trailing_space") at which the item's own content,
// and any continuation lines, must be indented to remain part of the
// item.
func parseListMarker(s string) (bullet byte, contentCol int, num int, ordered bool, ok bool) {
	i := 0
	for i < len(s) && i < 3 && s[i] == ' ' {
		i++
	}
	if i >= len(s) {
		return
	}
	switch c := s[i]; {
	case c == '-' || c == '+' || c == '*':
		bullet = c
		i++
	case isDigit(c):
		start := i
		for i < len(s) && isDigit(s[i]) && i-start < 10 {
			i++
		}
		if i >= len(s) || (s[i] != '.' && s[i] != ')') {
			return
		}
		digits := s[start:i]
		n := 0
		for k := 0; k < len(digits); k++ {
			n = n*10 + int(digits[k]-'0')
			if n > 1_000_000_000 {
				n = 1_000_000_000
			}
		}
		num = n
		ordered = true
		bullet = s[i]
		i++
	default:
		return
	}
	if i == len(s) {
		return bullet, i + 1, num, ordered, true
	}
	if s[i] != ' ' && s[i] != '\t' {
		return 0, 0, 0, false, false
	}
	j := i
	spaceCount := 0
	for j < len(s) && s[j] == ' ' && spaceCount < 4 {
		j++
		spaceCount++
	}
	if j == len(s) {
		return bullet, i + 1, num, ordered, true
	}
	if spaceCount >= 4 {
		return bullet, i + 1, num, ordered, true
	}
	return bullet, j, num, ordered, true
}

// gatherListItemLines collects the physical lines belonging to the list
// item whose marker line is at p.lines[p.pos], stripping contentCol
// columns of leading indentation from each (splitting the marker itself
// off the first line), and advances p.pos past them.
func (p *parser) gatherListItemLines(contentCol int) []rawLine {
	var out []rawLine
	first := p.lines[p.pos]
	stripped := ""
	if contentCol < len(first.text) {
		stripped = first.text[contentCol:]
	}
	out = append(out, rawLine{text: stripped, offset: first.offset + (len(first.text) - len(stripped))})
	p.pos++

	for p.pos < len(p.lines) {
		cur := p.lines[p.pos]
		if newLineCursor(cur.text).isBlank() {
			j := p.pos
			for j < len(p.lines) && newLineCursor(p.lines[j].text).isBlank() {
				j++
			}
			if j < len(p.lines) && indentWidth(p.lines[j].text) >= contentCol {
				for k := p.pos; k < j; k++ {
					out = append(out, rawLine{text: "", offset: p.lines[k].offset})
				}
				p.pos = j
				continue
			}
			break
		}
		if indentWidth(cur.text) < contentCol {
			break
		}
		stripped := stripIndent(cur.text, contentCol)
		out = append(out, rawLine{text: stripped, offset: cur.offset + (len(cur.text) - len(stripped))})
		p.pos++
	}
	return out
}

func (p *parser) tryList(refLevel int) (Block, bool) {
	first := p.lines[p.pos]
	bullet, _, _, ordered, ok := parseListMarker(first.text)
	if !ok {
		return nil, false
	}
	pos := newPos(first.offset, p.pos+1, 1)

	var items [][]Block
	start := 0
	expected := 0
	loose := false
	firstItem := true

	for {
		b, contentCol, num, ord, ok := parseListMarker(p.lines[p.pos].text)
		if !ok || ord != ordered || b != bullet {
			break
		}
		itemOffset := p.lines[p.pos].offset
		if firstItem {
			start = num
			expected = num
			firstItem = false
		} else if ordered && num != expected {
			p.errs = append(p.errs, ParseError{Offset: itemOffset, Err: ListIndexOutOfOrder{Actual: num, Expected: expected}})
		}
		if ordered && len(items) == 0 && num >= 1_000_000_000 {
			p.errs = append(p.errs, ParseError{Offset: itemOffset, Err: ListStartIndexTooBig{N: num}})
		}
		expected = num + 1

		childLines := p.gatherListItemLines(contentCol)
		itemHasBlankInterior := false
		for i := 1; i < len(childLines); i++ {
			if childLines[i].text == "" {
				itemHasBlankInterior = true
				break
			}
		}
		blocks := p.parseChild(childLines)
		items = append(items, blocks)
		if itemHasBlankInterior {
			loose = true
		}

		if p.pos >= len(p.lines) {
			break
		}
		save := p.pos
		blanksBetween := 0
		for p.pos < len(p.lines) && newLineCursor(p.lines[p.pos].text).isBlank() {
			p.pos++
			blanksBetween++
		}
		if p.pos >= len(p.lines) {
			p.pos = save
			break
		}
		if indentWidth(p.lines[p.pos].text) < refLevel {
			p.pos = save
			break
		}
		nb, _, _, nord, nok := parseListMarker(p.lines[p.pos].text)
		if !nok || nord != ordered || nb != bullet {
			p.pos = save
			break
		}
		if blanksBetween > 0 {
			loose = true
		}
	}

	if !ordered {
		start = 0
	}
	if !loose {
		for _, item := range items {
			unwrapTightItem(item)
		}
	}
	return &List{withPos{pos}, ordered, start, bullet, loose, items}, true
}

// unwrapTightItem rewrites item's top-level Paragraph blocks (but not
// paragraphs nested inside a child blockquote or sub-list) into Naked
// blocks, per spec.md §3's tight-list rendering rule: a tight list's
// items render their text with no <p> wrapper.
func unwrapTightItem(item []Block) {
	for i, b := range item {
		if para, ok := b.(*Paragraph); ok {
			item[i] = &Naked{para.withPos, para.Text}
		}
	}
}
