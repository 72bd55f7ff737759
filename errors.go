// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"fmt"
	"strings"
)

// An MMarkErr is one of the strictdown-specific error kinds spec.md §7
// enumerates. Each also satisfies the standard error interface so it can
// be used on its own, but callers normally see it wrapped in a
// [ParseError] inside a [ParseErrorBundle].
type MMarkErr interface {
	error
	mmarkErr()
}

type baseErr struct{}

func (baseErr) mmarkErr() {}

// YamlParseError reports that the YAML front matter failed to decode.
type YamlParseError struct {
	baseErr
	Message string
}

func (e YamlParseError) Error() string { return "invalid YAML front matter: " + e.Message }

// ListStartIndexTooBig reports an ordered-list start index above the
// 999,999,999 ceiling spec.md §4.2 sets.
type ListStartIndexTooBig struct {
	baseErr
	N int
}

func (e ListStartIndexTooBig) Error() string {
	return fmt.Sprintf("ordered list start index %d is too big", e.N)
}

// ListIndexOutOfOrder reports a non-consecutive ordered-list item index.
// It is attached to the offending item but does not abort the list.
type ListIndexOutOfOrder struct {
	baseErr
	Actual, Expected int
}

func (e ListIndexOutOfOrder) Error() string {
	return fmt.Sprintf("list item index %d out of order, expected %d", e.Actual, e.Expected)
}

// DuplicateReferenceDefinition reports a second definition of the same
// (normalized) reference label; the first definition wins.
type DuplicateReferenceDefinition struct {
	baseErr
	Label string
}

func (e DuplicateReferenceDefinition) Error() string {
	return fmt.Sprintf("duplicate reference definition for label %q", e.Label)
}

// CouldNotFindReferenceDefinition reports a link or image reference whose
// label has no matching definition, along with up to three closest-edit-
// distance defined labels as suggestions.
type CouldNotFindReferenceDefinition struct {
	baseErr
	Label   string
	Nearest []string
}

func (e CouldNotFindReferenceDefinition) Error() string {
	if len(e.Nearest) == 0 {
		return fmt.Sprintf("could not find reference definition for label %q", e.Label)
	}
	return fmt.Sprintf("could not find reference definition for label %q (did you mean %s?)",
		e.Label, strings.Join(e.Nearest, ", "))
}

// NonFlankingDelimiterRun reports a run of frame characters that can
// neither open nor close an emphasis-like span.
type NonFlankingDelimiterRun struct {
	baseErr
	Chars string
}

func (e NonFlankingDelimiterRun) Error() string {
	return fmt.Sprintf("delimiter run %q is neither left- nor right-flanking", e.Chars)
}

// InvalidNumericCharacter reports a numeric character reference (&#…;)
// naming code point 0 or a code point above U+10FFFF.
type InvalidNumericCharacter struct {
	baseErr
	CodePoint int64
}

func (e InvalidNumericCharacter) Error() string {
	return fmt.Sprintf("invalid numeric character reference U+%X", e.CodePoint)
}

// UnknownHTMLEntityName reports an &name; reference not present in the
// HTML5 entity table.
type UnknownHTMLEntityName struct {
	baseErr
	Name string
}

func (e UnknownHTMLEntityName) Error() string {
	return fmt.Sprintf("unknown HTML entity name %q", e.Name)
}

// UnexpectedToken is a generic parser-combinator-style error for a
// malformed block that the block parser recovers from without aborting
// the document. The parser raises it only for a fenced code block that
// is never closed.
type UnexpectedToken struct {
	baseErr
	Context string
	Found   string
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %q while parsing %s", e.Found, e.Context)
}

// ExpectedLabel is a generic parser-combinator-style error for a
// construct that required a reference label but did not find one.
type ExpectedLabel struct {
	baseErr
	Context string
}

func (e ExpectedLabel) Error() string {
	return fmt.Sprintf("expected a reference label while parsing %s", e.Context)
}

// A ParseError pairs an MMarkErr with the byte offset in the original
// input where it was detected.
type ParseError struct {
	Offset int
	Err    MMarkErr
}

func (e ParseError) Error() string { return e.Err.Error() }
func (e ParseError) Unwrap() error { return e.Err }

// A ParseErrorBundle is a non-empty collection of ParseErrors, plus enough
// of the parse context (the file name and the original input) to render
// 1-indexed, tab-aware line:column diagnostics. [Parse] returns one
// whenever the document contains at least one recoverable or
// unrecoverable error; the bundle accumulates every error found, rather
// than stopping at the first.
type ParseErrorBundle struct {
	FileName string
	Input    string
	Errors   []ParseError
}

func (b *ParseErrorBundle) Error() string {
	var sb strings.Builder
	for i, e := range b.Errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		line, col := offsetToLineCol(b.Input, e.Offset)
		fmt.Fprintf(&sb, "%s:%d:%d: %s", b.FileName, line, col, e.Err.Error())
	}
	return sb.String()
}

// offsetToLineCol converts a byte offset into input to a 1-indexed line
// number and a 1-indexed, tab-aware (tab width 4) column number.
func offsetToLineCol(input string, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	line = 1
	col = 1
	for i := 0; i < offset; i++ {
		switch input[i] {
		case '\n':
			line++
			col = 1
		case '\t':
			col += 4 - (col-1)%4
		default:
			col++
		}
	}
	return line, col
}
