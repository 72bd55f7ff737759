// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// tryReferenceDefinition recognizes spec.md §4.2's reference-link
// definition: [label]: dest "title", where dest and an optional title may
// continue onto the next line. On success it registers the definition
// (first definition for a label wins; later duplicates are reported but
// otherwise ignored) and consumes the lines involved.
func (p *parser) tryReferenceDefinition() bool {
	first := p.lines[p.pos]
	c := newLineCursor(first.text)
	if !c.trimSpace(0, 3, false) {
		return false
	}
	if !c.trim('[') {
		return false
	}
	labelStart := len(first.text) - len(c.string())
	label, rest, ok := scanLinkLabel(c.string())
	if !ok {
		return false
	}
	c = newLineCursor(rest)
	if !c.trim(':') {
		return false
	}
	c.skipSpace()

	text := c.string()
	// The destination/title may spill onto following non-blank lines; we
	// assemble a small window of candidate text and let scanLinkDestTitle
	// pick where it actually ends.
	window := text
	lastIdx := p.pos
	for lastIdx+1 < len(p.lines) && !newLineCursor(p.lines[lastIdx+1].text).isBlank() && !looksLikeBlockStart(p.lines[lastIdx+1].text) {
		lastIdx++
		window += "\n" + strings.TrimLeft(p.lines[lastIdx].text, " \t")
	}

	url, title, consumedLen, ok := scanLinkDestTitle(window)
	if !ok {
		return false
	}
	tail := window[consumedLen:]
	if nl := strings.IndexByte(tail, '\n'); nl >= 0 {
		tail = tail[:nl]
	}
	if strings.TrimSpace(tail) != "" {
		return false
	}

	// Figure out how many physical lines were actually consumed by
	// re-walking window up to consumedLen.
	consumedLines := 1 + strings.Count(window[:consumedLen], "\n")
	endIdx := p.pos + consumedLines - 1
	if endIdx > lastIdx {
		endIdx = lastIdx
	}

	if p.links.Define(label, &LinkRef{URL: url, Title: title}) {
		// defined
	} else {
		p.errs = append(p.errs, ParseError{Offset: first.offset + labelStart, Err: DuplicateReferenceDefinition{Label: label}})
	}
	p.pos = endIdx + 1
	return true
}

// scanLinkLabel scans a [label] starting just after the opening '[',
// returning the label text and the remainder of s after the closing ']'.
func scanLinkLabel(s string) (label, rest string, ok bool) {
	depth := 1
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				label = s[:i]
				if strings.TrimSpace(label) == "" {
					return "", "", false
				}
				return label, s[i+1:], true
			}
		}
		i++
	}
	return "", "", false
}
