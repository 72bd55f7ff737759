// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// parseIndentedCode consumes a run of lines indented at least refLevel+4,
// blank lines interleaved, stopping at the first line indented less than
// refLevel+4 (or EOF), and trimming trailing blank lines from the block.
func (p *parser) parseIndentedCode(refLevel int) Block {
	start := p.lines[p.pos]
	pos := newPos(start.offset, p.pos+1, 1)
	var lines []string
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if newLineCursor(line.text).isBlank() {
			lines = append(lines, "")
			p.pos++
			continue
		}
		if indentWidth(line.text) < refLevel+4 {
			break
		}
		lines = append(lines, stripIndent(line.text, refLevel+4))
		p.pos++
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
		p.pos--
	}
	return &CodeBlock{withPos{pos}, false, "", lines}
}

// trimFenceOpen recognizes a fenced-code opening line: 0-3 leading
// spaces, then 3 or more backticks or tildes, then an info string (for
// backtick fences, the info string may not itself contain a backtick).
func trimFenceOpen(s string) (frame byte, fenceLen int, info string, ok bool) {
	c := newLineCursor(s)
	if !c.trimSpace(0, 3, false) {
		return 0, 0, "", false
	}
	if c.eof() {
		return 0, 0, "", false
	}
	frame = c.peek()
	if frame != '`' && frame != '~' {
		return 0, 0, "", false
	}
	for c.trim(frame) {
		fenceLen++
	}
	if fenceLen < 3 {
		return 0, 0, "", false
	}
	rest := c.string()
	if frame == '`' && strings.IndexByte(rest, '`') >= 0 {
		return 0, 0, "", false
	}
	return frame, fenceLen, strings.TrimSpace(rest), true
}

// trimFenceClose reports whether s closes a fence opened with frame
// repeated at least fenceLen times (with only leading indentation and
// trailing whitespace otherwise).
func trimFenceClose(s string, frame byte, fenceLen int) bool {
	c := newLineCursor(s)
	if !c.trimSpace(0, 3, false) {
		return false
	}
	n := 0
	for c.trim(frame) {
		n++
	}
	if n < fenceLen {
		return false
	}
	return c.isBlank()
}

func (p *parser) tryFencedCode(refLevel int) (Block, bool) {
	openLine := p.lines[p.pos]
	frame, fenceLen, info, ok := trimFenceOpen(openLine.text)
	if !ok {
		return nil, false
	}
	fenceIndent := indentWidth(openLine.text) - refLevel
	if fenceIndent < 0 {
		fenceIndent = 0
	}
	pos := newPos(openLine.offset, p.pos+1, 1)
	p.pos++

	var lines []string
	closed := false
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if trimFenceClose(line.text, frame, fenceLen) {
			p.pos++
			closed = true
			break
		}
		lines = append(lines, stripIndent(line.text, fenceIndent))
		p.pos++
	}
	if !closed {
		p.corner = true
		p.errs = append(p.errs, ParseError{Offset: openLine.offset, Err: UnexpectedToken{Context: "fenced code block", Found: "end of input before closing fence"}})
	}
	return &CodeBlock{withPos{pos}, true, info, lines}, true
}
