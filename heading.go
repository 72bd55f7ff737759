// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// trimATX recognizes an ATX heading marker: 0-3 leading spaces, 1-6 '#'
// characters, then either end of line or a single required space/tab. It
// returns the heading level and the byte index in s at which the content
// (possibly empty) begins.
func trimATX(s string) (level int, contentStart int, ok bool) {
	i := 0
	for i < len(s) && i < 3 && s[i] == ' ' {
		i++
	}
	n := 0
	for n < 7 && i < len(s) && s[i] == '#' {
		i++
		n++
	}
	if n == 0 || n > 6 {
		return 0, 0, false
	}
	if i == len(s) {
		return n, i, true
	}
	if s[i] != ' ' && s[i] != '\t' {
		return 0, 0, false
	}
	i++
	return n, i, true
}

// trimATXClosing strips an ATX heading's optional closing sequence of '#'
// characters (itself preceded by a space, or constituting the whole
// trimmed content) from the already right-trimmed content string.
func trimATXClosing(content string) string {
	trimmed := strings.TrimRight(content, "#")
	if trimmed == content {
		return content
	}
	if trimmed == "" || isSpace(trimmed[len(trimmed)-1]) {
		return trimRightSpaceTab(trimmed)
	}
	return content
}

func (p *parser) tryATXHeading() (Block, bool) {
	line := p.lines[p.pos]
	n, contentStart, ok := trimATX(line.text)
	if !ok {
		return nil, false
	}
	content := trimRightSpaceTab(line.text[contentStart:])
	content = trimATXClosing(content)
	content = strings.TrimLeft(content, " \t")

	contentOffset := line.offset + contentStart
	pos := newPos(line.offset, p.pos+1, 1)
	p.pos++
	t := p.newText(contentOffset, content)
	return &Heading{withPos{pos}, n, t, ""}, true
}

// trimSetextUnderline recognizes a Setext heading underline: 0-3 leading
// spaces, then a run of only '=' (level 1) or only '-' (level 2).
func trimSetextUnderline(s string) (level int, ok bool) {
	c := newLineCursor(s)
	if !c.trimSpace(0, 3, false) {
		return 0, false
	}
	if c.eof() {
		return 0, false
	}
	frame := c.peek()
	if frame != '=' && frame != '-' {
		return 0, false
	}
	for !c.eof() {
		if c.peek() != frame {
			return 0, false
		}
		c.trim(frame)
	}
	if frame == '=' {
		return 1, true
	}
	return 2, true
}
