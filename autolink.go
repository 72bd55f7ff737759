// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"net/mail"
	"net/url"
	"strings"
)

// scanAutoLink recognizes <scheme:...> and <email@address> autolinks
// (spec.md §4.3). Validation is delegated to net/url and net/mail: no
// dedicated third-party URI/email grammar was found anywhere in the
// example corpus, so the standard library's own parsers stand in for it
// (see DESIGN.md).
func scanAutoLink(s string) (*AutoLink, int, bool) {
	if len(s) < 3 || s[0] != '<' {
		return nil, 0, false
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return nil, 0, false
	}
	inner := s[1:end]
	if strings.ContainsAny(inner, " \t\n<") {
		return nil, 0, false
	}

	if looksLikeURIScheme(inner) {
		if u, err := url.Parse(inner); err == nil && u.Scheme != "" {
			return &AutoLink{Text: inner, URL: inner}, end + 1, true
		}
	}
	if addr, err := mail.ParseAddress(inner); err == nil && addr.Address == inner {
		return &AutoLink{Text: inner, URL: "mailto:" + inner}, end + 1, true
	}
	return nil, 0, false
}

// looksLikeURIScheme reports whether s begins with a URI scheme: a
// letter, then 1 or more letters/digits/'+'/'-'/'.', then ':'.
func looksLikeURIScheme(s string) bool {
	i := 0
	if i >= len(s) || !isLetter(s[i]) {
		return false
	}
	i++
	for i < len(s) && (isLetterDigit(s[i]) || s[i] == '+' || s[i] == '-' || s[i] == '.') {
		i++
	}
	return i < len(s) && i >= 2 && s[i] == ':'
}

// scanInlineHTML recognizes a raw inline HTML tag, comment, or
// declaration (spec.md §1's permissive-passthrough allowance), passing
// it through verbatim.
func scanInlineHTML(s string) (*HTMLTag, int, bool) {
	if len(s) < 3 || s[0] != '<' {
		return nil, 0, false
	}
	if strings.HasPrefix(s, "<!--") {
		if end := strings.Index(s, "-->"); end >= 0 {
			return &HTMLTag{Text: s[:end+3]}, end + 3, true
		}
		return nil, 0, false
	}
	if strings.HasPrefix(s, "<![CDATA[") {
		if end := strings.Index(s, "]]>"); end >= 0 {
			return &HTMLTag{Text: s[:end+3]}, end + 3, true
		}
		return nil, 0, false
	}
	if strings.HasPrefix(s, "<?") {
		if end := strings.Index(s, "?>"); end >= 0 {
			return &HTMLTag{Text: s[:end+2]}, end + 2, true
		}
		return nil, 0, false
	}

	i := 1
	closing := false
	if i < len(s) && s[i] == '/' {
		closing = true
		i++
	}
	start := i
	for i < len(s) && (isLetterDigit(s[i]) || s[i] == '-') {
		i++
	}
	if i == start {
		return nil, 0, false
	}
	if closing {
		for i < len(s) && s[i] != '>' {
			i++
		}
		if i >= len(s) {
			return nil, 0, false
		}
		return &HTMLTag{Text: s[:i+1]}, i + 1, true
	}
	for i < len(s) && s[i] != '>' {
		if s[i] == '"' || s[i] == '\'' {
			quote := s[i]
			i++
			for i < len(s) && s[i] != quote {
				i++
			}
			if i >= len(s) {
				return nil, 0, false
			}
		}
		i++
	}
	if i >= len(s) {
		return nil, 0, false
	}
	return &HTMLTag{Text: s[:i+1]}, i + 1, true
}
