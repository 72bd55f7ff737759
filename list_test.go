// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "testing"

func TestTightListRendersWithoutParagraphWrapper(t *testing.T) {
	doc, err := Parse("t.md", "1. a\n2. b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestLooseListRendersWithParagraphWrapper(t *testing.T) {
	doc, err := Parse("t.md", "1. a\n\n2. b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	want := "<ol>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ol>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTightListWithNestedFirstItemList(t *testing.T) {
	// spec.md §8's boundary behavior: a list whose first item's second
	// block is another list keeps the sibling rule intact, i.e. the
	// first item's own paragraph still unwraps to Naked.
	doc, err := Parse("t.md", "- a\n  - nested\n- b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	list, ok := doc.Blocks[0].(*List)
	if !ok {
		t.Fatalf("Blocks[0] = %T, want *List", doc.Blocks[0])
	}
	if list.Loose {
		t.Error("list.Loose = true, want false")
	}
	if _, ok := list.Items[0][0].(*Naked); !ok {
		t.Errorf("first item's first block = %T, want *Naked", list.Items[0][0])
	}
	if len(list.Items[0]) < 2 {
		t.Fatalf("first item has %d blocks, want at least 2 (text + nested list)", len(list.Items[0]))
	}
	if _, ok := list.Items[0][1].(*List); !ok {
		t.Errorf("first item's second block = %T, want *List", list.Items[0][1])
	}
}

func TestOrderedListStartIndex(t *testing.T) {
	doc, err := Parse("t.md", "5. a\n6. b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	list, ok := doc.Blocks[0].(*List)
	if !ok {
		t.Fatalf("Blocks[0] = %T, want *List", doc.Blocks[0])
	}
	if list.Start != 5 {
		t.Errorf("list.Start = %d, want 5", list.Start)
	}
	got := doc.Render()
	want := "<ol start=\"5\">\n<li>a</li>\n<li>b</li>\n</ol>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestOrderedListOmitsStartWhenOne(t *testing.T) {
	doc, err := Parse("t.md", "1. a\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Render()
	if want := "<ol>\n"; got[:len(want)] != want {
		t.Errorf("Render() = %q, want to start with %q", got, want)
	}
}

func TestListIndexOutOfOrderIsRecoverable(t *testing.T) {
	doc, err := Parse("t.md", "1. a\n3. b\n")
	if err == nil {
		t.Fatal("Parse should report ListIndexOutOfOrder")
	}
	var bundle *ParseErrorBundle
	if !asParseErrorBundle(err, &bundle) {
		t.Fatalf("err = %v, want *ParseErrorBundle", err)
	}
	found := false
	for _, e := range bundle.Errors {
		if _, ok := e.Err.(ListIndexOutOfOrder); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("bundle.Errors = %v, want a ListIndexOutOfOrder", bundle.Errors)
	}
	// The list still parses to completion despite the out-of-order index.
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d top-level blocks, want 1", len(doc.Blocks))
	}
}

func asParseErrorBundle(err error, out **ParseErrorBundle) bool {
	b, ok := err.(*ParseErrorBundle)
	if ok {
		*out = b
	}
	return ok
}

func TestUnorderedListBulletMustMatch(t *testing.T) {
	// A '+' item does not continue a '-' list: it starts a second list.
	doc, err := Parse("t.md", "- a\n+ b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d top-level blocks, want 2 (two separate lists)", len(doc.Blocks))
	}
	for _, b := range doc.Blocks {
		if _, ok := b.(*List); !ok {
			t.Errorf("block = %T, want *List", b)
		}
	}
}
