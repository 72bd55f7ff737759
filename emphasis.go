// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"strings"
	"unicode/utf8"
)

// A delimToken is an internal placeholder for an unresolved run of frame
// characters (spec.md §4.3's flanking-delimiter-run rules), produced
// during the first pass over a span and consumed by resolveDelimiters
// before the final Inlines are returned. It never survives into a
// finished tree: any token left unmatched becomes a literal [*Plain] run
// of its own characters.
type delimToken struct {
	ch       byte
	length   int
	canOpen  bool
	canClose bool
}

func (*delimToken) Inline() {}

// scanDelimiterRun reads the run of s[i]'s repeated byte starting at i
// and classifies it as a potential opener/closer per spec.md §4.3's
// Space < Punct < Other total order over the characters immediately
// before and after the run.
func scanDelimiterRun(s string, i int) (length int, canOpen, canClose bool) {
	ch := s[i]
	j := i
	for j < len(s) && s[j] == ch {
		j++
	}
	length = j - i

	before := rune(-1)
	if i > 0 {
		before, _ = utf8.DecodeLastRuneInString(s[:i])
	}
	after := rune(-1)
	if j < len(s) {
		after, _ = utf8.DecodeRuneInString(s[j:])
	}
	beforeKind := classify(before)
	afterKind := classify(after)

	canOpen = beforeKind < afterKind
	canClose = beforeKind > afterKind
	return length, canOpen, canClose
}

// scanEmphasisRun is retained for symmetry with the other inline
// recognizers but simply delegates to scanDelimiterRun: emphasis pairing
// itself happens once per span, in resolveDelimiters, after the whole
// span has been tokenized.
func (in *inlineParser) scanEmphasisRun(s string, i int, base int) (n int, nodes []Inline, ok bool) {
	length, canOpen, canClose := scanDelimiterRun(s, i)
	if !canOpen && !canClose {
		return length, []Inline{literalRunTok(s[i], length)}, true
	}
	return length, []Inline{&delimToken{ch: s[i], length: length, canOpen: canOpen, canClose: canClose}}, true
}

func literalRunTok(ch byte, n int) *Plain {
	return &Plain{Text: strings.Repeat(string(ch), n)}
}

// wrapForCh builds the emphasis-like node for a matched pair of
// delimiters of n repeated ch characters, per spec.md §4.3's frame table:
// '*'/'_' single/double give Emphasis/Strong, '~' single/double give
// Subscript/Strikeout, and '^' (single only) gives Superscript.
func wrapForCh(ch byte, n int, inner Inlines) Inline {
	switch ch {
	case '*', '_':
		if n >= 2 {
			return &Strong{Inner: inner}
		}
		return &Emphasis{Inner: inner}
	case '~':
		if n >= 2 {
			return &Strikeout{Inner: inner}
		}
		return &Subscript{Inner: inner}
	case '^':
		return &Superscript{Inner: inner}
	}
	return &Plain{Text: inner.PlainText()}
}

// maxMatch returns the number of frame characters a pair of opener/closer
// runs consume in one reduction: up to 2 for '*', '_', '~' (single vs
// double forms), but only ever 1 for '^' (superscript has no double
// form).
func maxMatch(ch byte, a, b int) int {
	cap := 2
	if ch == '^' {
		cap = 1
	}
	n := a
	if b < n {
		n = b
	}
	if n > cap {
		n = cap
	}
	return n
}

// resolveDelimiters implements spec.md §4.3's delimiter-stack algorithm
// over a finished span's flat Inlines, pairing each closer with the
// nearest still-open, same-character opener beneath it (deactivating any
// openers of other characters in between, per the standard rule), and
// turning every token that never matches into literal text.
func resolveDelimiters(nodes Inlines) Inlines {
	work := append(Inlines(nil), nodes...)
	stacks := map[byte][]int{}

	i := 0
	for i < len(work) {
		tok, isTok := work[i].(*delimToken)
		if !isTok {
			i++
			continue
		}
		if tok.canClose && len(stacks[tok.ch]) > 0 {
			st := stacks[tok.ch]
			openIdx := st[len(st)-1]
			opTok := work[openIdx].(*delimToken)

			n := maxMatch(tok.ch, opTok.length, tok.length)
			if opTok.length == 3 && tok.length == 3 {
				// Triple runs nest the single frame inside the double one.
				n = 1
			}
			inner := append(Inlines(nil), work[openIdx+1:i]...)
			wrapped := wrapForCh(tok.ch, n, resolveDelimiters(inner))
			opTok.length -= n
			tok.length -= n

			// Unused characters of either run stay delimiter tokens, so
			// they can still pair on the next pass from openIdx.
			var seg Inlines
			if opTok.length > 0 {
				seg = append(seg, opTok)
			}
			seg = append(seg, wrapped)
			if tok.length > 0 {
				seg = append(seg, tok)
			}

			rebuilt := append(Inlines(nil), work[:openIdx]...)
			rebuilt = append(rebuilt, seg...)
			rebuilt = append(rebuilt, work[i+1:]...)

			stacks[tok.ch] = st[:len(st)-1]
			for ch2, idxs := range stacks {
				kept := idxs[:0:0]
				for _, idx2 := range idxs {
					if idx2 < openIdx {
						kept = append(kept, idx2)
					}
				}
				stacks[ch2] = kept
			}

			work = rebuilt
			i = openIdx
			continue
		}
		if tok.canOpen {
			stacks[tok.ch] = append(stacks[tok.ch], i)
		}
		i++
	}

	final := make(Inlines, 0, len(work))
	for _, n := range work {
		if t, ok := n.(*delimToken); ok {
			if t.length > 0 {
				final = append(final, literalRunTok(t.ch, t.length))
			}
			continue
		}
		final = append(final, n)
	}
	return final
}
