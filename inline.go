// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"strings"
	"unicode/utf8"
)

// An inlineParser resolves one deferred [*Text] span into its final
// Inlines, given the document's reference table. It is created fresh per
// span (spec.md §4.3's inline phase runs independently over each ISP) but
// shares the parser's links table and error/corner-case sinks.
type inlineParser struct {
	s      string
	base   int // offset of s[0] in the original document
	links  *ReferenceTable
	errs   *[]ParseError
	corner *bool

	// linksDisallowed suppresses nested link parsing while resolving a
	// link's own text (CommonMark forbids links inside links).
	linksDisallowed bool
}

func (p *parser) resolveText(t *Text) {
	if t.Err != nil {
		t.Inline = Inlines{&Plain{Text: ""}}
		return
	}
	in := &inlineParser{s: t.Raw, base: t.Offset, links: p.links, errs: &p.errs, corner: &p.corner}
	t.Inline = in.parse()
}

func (in *inlineParser) errf(offset int, err MMarkErr) {
	*in.errs = append(*in.errs, ParseError{Offset: offset, Err: err})
}

// parse scans in.s to the end, producing the top-level Inlines sequence.
// It accumulates runs of plain text, emitting an accumulated *Plain node
// only when a markup construct interrupts the run.
func (in *inlineParser) parse() Inlines {
	return in.parseSpan(in.s, in.base)
}

// parseSpan parses s (a subrange of the original raw text, at byte offset
// base) as a self-contained inline sequence; it is also used to parse
// bracketed link/image text.
func (in *inlineParser) parseSpan(s string, base int) Inlines {
	var out Inlines
	var plain strings.Builder
	plainStart := 0

	flush := func(end int) {
		if plain.Len() > 0 {
			out = append(out, &Plain{Text: decodeEscapesAndEntities(plain.String(), base+plainStart, in.errs)})
			plain.Reset()
		}
		_ = end
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '\n':
			flush(i)
			out = append(out, &LineBreak{})
			i += 2
			continue
		case c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			// A backslash escape stays in the plain run with the character
			// it escapes, so that character is never dispatched as markup.
			if plain.Len() == 0 {
				plainStart = i
			}
			plain.WriteString(s[i : i+2])
			i += 2
			continue
		case c == '\n':
			// A trailing run of 2+ spaces before the newline is a hard
			// break; otherwise it is an ordinary soft break.
			trimmed := strings.TrimRight(plain.String(), " ")
			nSpaces := plain.Len() - len(trimmed)
			if nSpaces >= 2 {
				plain.Reset()
				plain.WriteString(trimmed)
				flush(i)
				out = append(out, &LineBreak{})
			} else {
				flush(i)
				out = append(out, &Plain{Text: "\n"})
			}
			i++
			continue
		case c == '`':
			if span, n, ok := scanCodeSpan(s[i:]); ok {
				flush(i)
				out = append(out, &CodeSpan{Text: span})
				i += n
				continue
			}
		case c == '<':
			if al, n, ok := scanAutoLink(s[i:]); ok {
				flush(i)
				out = append(out, al)
				i += n
				continue
			}
			if tag, n, ok := scanInlineHTML(s[i:]); ok {
				flush(i)
				out = append(out, tag)
				i += n
				continue
			}
		case c == '!' && i+1 < len(s) && s[i+1] == '[' && !in.linksDisallowed:
			if img, n, ok := in.scanImage(s[i:], base+i); ok {
				flush(i)
				out = append(out, img)
				i += n
				continue
			}
		case c == '[' && !in.linksDisallowed:
			if link, n, ok := in.scanLink(s[i:], base+i); ok {
				flush(i)
				out = append(out, link)
				i += n
				continue
			}
		case isFrameChar(c):
			if n, nodes, ok := in.scanEmphasisRun(s, i, base); ok {
				flush(i)
				out = append(out, nodes...)
				i += n
				continue
			}
		}
		if plain.Len() == 0 {
			plainStart = i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		plain.WriteString(s[i : i+size])
		i += size
	}
	flush(len(s))
	return resolveDelimiters(out)
}

// scanCodeSpan recognizes a backtick code span: a run of N backticks,
// content, and a closing run of exactly N backticks. Its content has every
// whitespace run (line endings included) collapsed to a single space and
// both ends trimmed, but is never escape- or entity-decoded (spec.md §4.1).
func scanCodeSpan(s string) (content string, n int, ok bool) {
	open := 0
	for open < len(s) && s[open] == '`' {
		open++
	}
	i := open
	for i < len(s) {
		if s[i] == '`' {
			j := i
			for j < len(s) && s[j] == '`' {
				j++
			}
			if j-i == open {
				raw := collapseWhitespace(s[open:i])
				return raw, j, true
			}
			i = j
			continue
		}
		i++
	}
	return "", 0, false
}
