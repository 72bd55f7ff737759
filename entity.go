// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"strconv"
	"strings"
)

// decodeReferenceAt decodes the entity or numeric character reference at
// the start of s (which must start with '&'), returning its replacement
// text, the number of bytes consumed, and whether a reference was found
// at all. base is the byte offset of s[0] in the original document, used
// to attribute errors precisely. An unknown entity name is reported as an
// error and treated as if no reference were present (the literal '&' is
// left alone); a numeric reference to code point 0 or above U+10FFFF is
// reported as an error and replaced by U+FFFD. Text that does not have
// the shape of a reference is not reported.
func decodeReferenceAt(s string, base int, errs *[]ParseError) (repl string, n int, ok bool) {
	if len(s) < 2 || s[0] != '&' {
		return "", 0, false
	}
	if s[1] == '#' {
		return decodeNumericReference(s, base, errs)
	}
	return decodeNamedReference(s, base, errs)
}

// decodeNumericReference decodes &#DDD; or &#xHHH;/&#XHHH;.
func decodeNumericReference(s string, base int, errs *[]ParseError) (repl string, n int, ok bool) {
	i := 2 // past "&#"
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}
	start := i
	for i < len(s) && (hex && isHexDigit(s[i]) || !hex && isDigit(s[i])) {
		i++
	}
	if i == start || i >= len(s) || s[i] != ';' {
		return "", 0, false
	}
	digits := s[start:i]
	end := i + 1 // past ';'

	var codepoint int64
	var err error
	if hex {
		codepoint, err = strconv.ParseInt(digits, 16, 64)
	} else {
		codepoint, err = strconv.ParseInt(digits, 10, 64)
	}
	if err != nil {
		return "", 0, false
	}
	if codepoint == 0 || codepoint > 0x10FFFF {
		*errs = append(*errs, ParseError{Offset: base, Err: InvalidNumericCharacter{CodePoint: codepoint}})
		return "�", end, true
	}
	if codepoint >= 0xD800 && codepoint <= 0xDFFF {
		// Surrogate half: not a valid scalar value, substitute per HTML5.
		return "�", end, true
	}
	return string(rune(codepoint)), end, true
}

// decodeNamedReference decodes &name; using the HTML5 named-entity table.
func decodeNamedReference(s string, base int, errs *[]ParseError) (repl string, n int, ok bool) {
	semi := strings.IndexByte(s, ';')
	if semi < 0 {
		return "", 0, false
	}
	// Named references are alphanumeric only.
	for i := 1; i < semi; i++ {
		if !isLetterDigit(s[i]) {
			return "", 0, false
		}
	}
	name := s[1:semi]
	if val, found := htmlEntity[name]; found {
		return val, semi + 1, true
	}
	*errs = append(*errs, ParseError{Offset: base, Err: UnknownHTMLEntityName{Name: name}})
	return "", 0, false
}
