// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// splitTableRow splits a pipe-table row into its cell texts, honoring
// backslash-escaped pipes and stripping a single optional leading and
// trailing unescaped pipe.
func splitTableRow(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "|")
	if strings.HasSuffix(s, "|") && !strings.HasSuffix(s, `\|`) {
		s = s[:len(s)-1]
	}
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '|' {
			cur.WriteByte('|')
			i++
			continue
		}
		if s[i] == '|' {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(s[i])
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

// parseTableDelimiterRow recognizes the alignment row beneath a pipe
// table's header: cells containing only '-', optionally framed by a
// single leading and/or trailing ':'.
func parseTableDelimiterRow(s string) ([]CellAlign, bool) {
	c := newLineCursor(s)
	c.trimSpace(0, 3, false)
	if c.isBlank() {
		return nil, false
	}
	cells := splitTableRow(c.string())
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]CellAlign, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := strings.Trim(cell, ":")
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignDefault
		}
	}
	return aligns, true
}

// tryPipeTable recognizes spec.md §4.2's pipe-table construct: a header
// row, immediately followed by a delimiter row, followed by zero or more
// data rows (each padded or truncated to the header's column count).
func (p *parser) tryPipeTable(refLevel int) (Block, bool) {
	if p.pos+1 >= len(p.lines) {
		return nil, false
	}
	header := p.lines[p.pos]
	if newLineCursor(header.text).isBlank() || !strings.Contains(header.text, "|") {
		return nil, false
	}
	aligns, ok := parseTableDelimiterRow(p.lines[p.pos+1].text)
	if !ok {
		return nil, false
	}
	headerCells := splitTableRow(header.text)
	if len(headerCells) != len(aligns) {
		return nil, false
	}

	pos := newPos(header.offset, p.pos+1, 1)
	var rows [][]*Text
	rows = append(rows, p.newTableRow(header, headerCells, len(aligns)))
	p.pos += 2

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if newLineCursor(line.text).isBlank() || !strings.Contains(line.text, "|") {
			break
		}
		if indentWidth(line.text) < refLevel {
			break
		}
		cells := splitTableRow(line.text)
		rows = append(rows, p.newTableRow(line, cells, len(aligns)))
		p.pos++
	}
	return &Table{withPos{pos}, aligns, rows}, true
}

// newTableRow pads or truncates cells to width columns and registers each
// as a deferred inline span.
func (p *parser) newTableRow(line rawLine, cells []string, width int) []*Text {
	row := make([]*Text, width)
	for i := 0; i < width; i++ {
		if i < len(cells) {
			row[i] = p.newText(line.offset, cells[i])
		} else {
			row[i] = p.newText(line.offset, "")
		}
	}
	return row
}
