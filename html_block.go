// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// htmlBlockTags are the block-level tag names whose opening or closing
// tag, at the start of a line (possibly indented up to 3 spaces), starts
// an HTML block that runs through the next blank line (spec.md §4.2's raw-HTML
// passthrough allowance, restricted to the common block-level set so a
// stray inline tag like <span> does not swallow a whole paragraph).
var htmlBlockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true,
	"blockquote": true, "body": true, "caption": true, "center": true,
	"col": true, "colgroup": true, "dd": true, "details": true,
	"dialog": true, "dir": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "frame": true, "frameset": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hr": true, "html": true, "legend": true, "li": true,
	"link": true, "main": true, "menu": true, "menuitem": true, "nav": true,
	"noframes": true, "ol": true, "optgroup": true, "option": true,
	"p": true, "param": true, "section": true, "summary": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "title": true, "tr": true, "track": true, "ul": true,
}

// htmlBlockTagAt reports whether s (after up to 3 leading spaces) opens
// or closes a known block-level HTML tag.
func htmlBlockTagAt(s string) bool {
	c := newLineCursor(s)
	if !c.trimSpace(0, 3, false) {
		return false
	}
	if !c.trim('<') {
		return false
	}
	c.trimAny("/")
	start := c.s
	i := 0
	for i < len(start) && (isLetterDigit(start[i]) || start[i] == '-') {
		i++
	}
	if i == 0 {
		return false
	}
	return htmlBlockTags[strings.ToLower(start[:i])]
}

// htmlCommentOrDeclAt reports whether s opens an HTML comment, CDATA
// section, processing instruction, or declaration at block level.
func htmlCommentOrDeclAt(s string) bool {
	c := newLineCursor(s)
	if !c.trimSpace(0, 3, false) {
		return false
	}
	rest := c.string()
	return strings.HasPrefix(rest, "<!--") || strings.HasPrefix(rest, "<?") ||
		strings.HasPrefix(rest, "<![CDATA[") || strings.HasPrefix(rest, "<!")
}

func (p *parser) tryHTMLBlock() (Block, bool) {
	first := p.lines[p.pos]
	if !htmlBlockTagAt(first.text) && !htmlCommentOrDeclAt(first.text) {
		return nil, false
	}
	pos := newPos(first.offset, p.pos+1, 1)
	var lines []string
	for p.pos < len(p.lines) && !newLineCursor(p.lines[p.pos].text).isBlank() {
		lines = append(lines, p.lines[p.pos].text)
		p.pos++
	}
	return &HTMLBlock{withPos{pos}, lines}, true
}
