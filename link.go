// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// scanLinkDestTitle scans a link destination followed by an optional
// title, as used by both inline links/images ( text](dest "title") ) and
// reference-link definitions ([label]: dest "title"). It returns the
// decoded destination and title (title is "" if absent), and the number
// of bytes of s consumed.
func scanLinkDestTitle(s string) (dest, title string, consumed int, ok bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '<' {
		i++
		start := i
		for i < len(s) && s[i] != '>' && s[i] != '\n' {
			if s[i] == '\\' && i+1 < len(s) {
				i += 2
				continue
			}
			i++
		}
		if i >= len(s) || s[i] != '>' {
			return "", "", 0, false
		}
		dest = unescapeLinkText(s[start:i])
		i++
	} else {
		start := i
		depth := 0
		for i < len(s) {
			c := s[i]
			if c == '\\' && i+1 < len(s) {
				i += 2
				continue
			}
			if isSpaceOrNewline(c) {
				break
			}
			if c == '(' {
				depth++
			}
			if c == ')' {
				if depth == 0 {
					break
				}
				depth--
			}
			i++
		}
		if i == start {
			return "", "", 0, false
		}
		dest = unescapeLinkText(s[start:i])
	}

	save := i
	for i < len(s) && isSpaceOrNewline(s[i]) {
		i++
	}
	if i >= len(s) || (s[i] != '"' && s[i] != '\'' && s[i] != '(') {
		return dest, "", save, true
	}
	open := s[i]
	closeCh := open
	if open == '(' {
		closeCh = ')'
	}
	i++
	start := i
	for i < len(s) && s[i] != closeCh {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		i++
	}
	if i >= len(s) {
		return dest, "", save, true
	}
	title = unescapeLinkText(s[start:i])
	i++
	return dest, title, i, true
}

// unescapeLinkText decodes backslash-escapes of ASCII punctuation in a
// link destination or title; entities are left alone here and are
// resolved later when the surrounding text passes through the inline
// parser's normal escape/entity decoding.
func unescapeLinkText(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// scanBracketText scans a [...] bracketed span starting at s[0] == '[',
// respecting nested brackets, backslash escapes, and embedded code spans
// (so a literal ']' inside backticks does not end the span early).
func scanBracketText(s string) (text string, n int, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", 0, false
	}
	depth := 1
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '`':
			if _, clen, ok := scanCodeSpan(s[i:]); ok {
				i += clen
				continue
			}
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[1:i], i + 1, true
			}
		}
		i++
	}
	return "", 0, false
}

// parseNested parses text as a link's or image's own inline content: link
// parsing is disallowed within it (CommonMark forbids links nested inside
// links), per spec.md §4.3.
func (in *inlineParser) parseNested(text string, base int) Inlines {
	nested := &inlineParser{s: text, base: base, links: in.links, errs: in.errs, corner: in.corner, linksDisallowed: true}
	return nested.parse()
}

// scanLink recognizes a link in any of its forms: inline [text](dest
// "title"), full reference [text][label], collapsed reference
// [text][], or shortcut reference [text]. s[0] must be '['.
func (in *inlineParser) scanLink(s string, base int) (*Link, int, bool) {
	text, textLen, ok := scanBracketText(s)
	if !ok {
		return nil, 0, false
	}
	rest := s[textLen:]

	if strings.HasPrefix(rest, "(") {
		dest, title, consumed, ok := scanLinkDestTitle(rest[1:])
		if ok && consumed < len(rest[1:]) && rest[1:][consumed] == ')' {
			inner := in.parseNested(text, base+1)
			return &Link{Inner: inner, URL: dest, Title: title}, textLen + 1 + consumed + 1, true
		}
	}

	if label, labelLen, ok := scanReferenceSuffix(rest); ok {
		ref, found := in.resolveReference(text, label, base)
		if !found {
			return nil, 0, false
		}
		inner := in.parseNested(text, base+1)
		return &Link{Inner: inner, URL: ref.URL, Title: ref.Title}, textLen + labelLen, true
	}

	ref, found := in.resolveReference(text, "", base)
	if !found {
		return nil, 0, false
	}
	inner := in.parseNested(text, base+1)
	return &Link{Inner: inner, URL: ref.URL, Title: ref.Title}, textLen, true
}

// scanImage recognizes an image in the same forms as scanLink, preceded
// by '!'. s[0] must be '!'.
func (in *inlineParser) scanImage(s string, base int) (*Image, int, bool) {
	if len(s) < 2 || s[1] != '[' {
		return nil, 0, false
	}
	text, textLen, ok := scanBracketText(s[1:])
	if !ok {
		return nil, 0, false
	}
	rest := s[1+textLen:]

	if strings.HasPrefix(rest, "(") {
		dest, title, consumed, ok := scanLinkDestTitle(rest[1:])
		if ok && consumed < len(rest[1:]) && rest[1:][consumed] == ')' {
			alt := in.parseNested(text, base+2)
			return &Image{Alt: alt, URL: dest, Title: title}, 1 + textLen + 1 + consumed + 1, true
		}
	}

	if label, labelLen, ok := scanReferenceSuffix(rest); ok {
		ref, found := in.resolveReference(text, label, base)
		if !found {
			return nil, 0, false
		}
		alt := in.parseNested(text, base+2)
		return &Image{Alt: alt, URL: ref.URL, Title: ref.Title}, 1 + textLen + labelLen, true
	}

	ref, found := in.resolveReference(text, "", base)
	if !found {
		return nil, 0, false
	}
	alt := in.parseNested(text, base+2)
	return &Image{Alt: alt, URL: ref.URL, Title: ref.Title}, 1 + textLen, true
}

// scanReferenceSuffix recognizes the "[label]" or "[]" suffix of a full
// or collapsed reference link/image; label is "" for the collapsed form.
func scanReferenceSuffix(rest string) (label string, n int, ok bool) {
	if !strings.HasPrefix(rest, "[") {
		return "", 0, false
	}
	label, labelLen, ok := scanBracketText(rest)
	if !ok {
		return "", 0, false
	}
	return label, labelLen, true
}

// resolveReference resolves the reference forms (full [text][label],
// collapsed [text][], shortcut [text]) against links, recording a
// CouldNotFindReferenceDefinition diagnostic (with nearest-label
// suggestions) when the label is undefined.
func (in *inlineParser) resolveReference(text, explicitLabel string, offset int) (*LinkRef, bool) {
	label := explicitLabel
	if label == "" {
		label = text
	}
	ref, ok := in.links.Lookup(label)
	if ok {
		return ref, true
	}
	nearest := in.links.nearestLabels(label)
	in.errf(offset, CouldNotFindReferenceDefinition{Label: label, Nearest: nearest})
	return nil, false
}
