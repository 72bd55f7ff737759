// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "testing"

func TestScanCodeSpanCollapsesInternalWhitespace(t *testing.T) {
	// spec.md §4.1's whitespace-collapse rule applies to code-span
	// content, not just a single leading/trailing space (spec.md §8
	// scenario 5).
	content, n, ok := scanCodeSpan("`a  b`")
	if !ok {
		t.Fatal("scanCodeSpan failed to recognize a simple span")
	}
	if content != "a b" {
		t.Errorf("content = %q, want %q", content, "a b")
	}
	if n != len("`a  b`") {
		t.Errorf("n = %d, want %d", n, len("`a  b`"))
	}
}

func TestScanCodeSpanRequiresMatchingBacktickCount(t *testing.T) {
	// A single backtick inside a double-backtick span does not close it.
	content, n, ok := scanCodeSpan("``a`b``")
	if !ok {
		t.Fatal("scanCodeSpan failed to recognize a double-backtick span")
	}
	if content != "a`b" {
		t.Errorf("content = %q, want %q", content, "a`b")
	}
	if n != len("``a`b``") {
		t.Errorf("n = %d, want %d", n, len("``a`b``"))
	}
}

func TestCodeSpanEndToEnd(t *testing.T) {
	doc, err := Parse("t.md", "Use `fmt.Println()` here.\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p>Use <code>fmt.Println()</code> here.</p>"
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPlainDispatchLeavesUnrecognizedMarkupLiteral(t *testing.T) {
	// A '<' that doesn't open an autolink or an HTML tag is plain text.
	doc, err := Parse("t.md", "a < b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p>a &lt; b</p>"
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestHardLineBreakFromBackslash(t *testing.T) {
	doc, err := Parse("t.md", "a\\\nb\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p>a<br />\nb</p>"
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestHardLineBreakFromTrailingSpaces(t *testing.T) {
	doc, err := Parse("t.md", "a  \nb\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p>a<br />\nb</p>"
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAutolinkDispatch(t *testing.T) {
	doc, err := Parse("t.md", "<https://go.dev>\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := `<p><a href="https://go.dev">https://go.dev</a></p>`
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAutolinkBareEmailGetsMailtoPrefix(t *testing.T) {
	doc, err := Parse("t.md", "<gopher@go.dev>\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := `<p><a href="mailto:gopher@go.dev">gopher@go.dev</a></p>`
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestEscapedExclamationIsNotMistakenForImage(t *testing.T) {
	// A backslash escape keeps the backslash and '!' in the same plain
	// run, so they decode together (spec.md §4.1's escape rule).
	doc, err := Parse("t.md", "\\!odd\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p>!odd</p>"
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
