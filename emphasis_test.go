// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "testing"

func TestScanDelimiterRunFlanking(t *testing.T) {
	cases := []struct {
		s                string
		i                int
		wantLen          int
		wantOpen, wantClose bool
	}{
		{"**bold** x", 0, 2, true, false},
		{"a**b**", 2, 1, true, false},
		{"a**b** ", 4, 2, false, true},
		{" *a* ", 1, 1, true, false},
		{" *a* ", 3, 1, false, true},
	}
	for _, c := range cases {
		length, open, close_ := scanDelimiterRun(c.s, c.i)
		if length != c.wantLen || open != c.wantOpen || close_ != c.wantClose {
			t.Errorf("scanDelimiterRun(%q, %d) = (%d, %v, %v), want (%d, %v, %v)",
				c.s, c.i, length, open, close_, c.wantLen, c.wantOpen, c.wantClose)
		}
	}
}

func TestUnderscoreIntrawordEmphasisSuppressed(t *testing.T) {
	// "foo_bar_baz" must not become emphasis: '_' is flanked by letters on
	// both sides, so the run can neither open nor close.
	_, open, close_ := scanDelimiterRun("foo_bar_baz", 3)
	if open || close_ {
		t.Errorf("intraword _ run: open=%v close=%v, want false, false", open, close_)
	}
}

func TestResolveDelimitersNestedEmphasis(t *testing.T) {
	doc, err := Parse("t.md", "**a *b* c**\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p><strong>a <em>b</em> c</strong></p>"
	if trimmedEqual(got, want) == false {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestResolveDelimitersUnmatchedBecomesLiteral(t *testing.T) {
	doc, err := Parse("t.md", "a * b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<p>a * b</p>"
	if !trimmedEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func trimmedEqual(a, b string) bool {
	trim := func(s string) string {
		for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == ' ') {
			s = s[:len(s)-1]
		}
		for len(s) > 0 && (s[0] == '\n' || s[0] == ' ') {
			s = s[1:]
		}
		return s
	}
	return trim(a) == trim(b)
}
