// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "testing"

func TestRunScannerPreOrderTraversal(t *testing.T) {
	doc, err := Parse("t.md", "# H\n\n> quoted\n\n- one\n- two\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var order []string
	RunScanner(struct{}{}, doc.Blocks, func(acc struct{}, b Block) struct{} {
		switch b.(type) {
		case *Heading:
			order = append(order, "heading")
		case *Blockquote:
			order = append(order, "blockquote")
		case *Naked, *Paragraph:
			order = append(order, "text")
		case *List:
			order = append(order, "list")
		}
		return acc
	})

	if len(order) == 0 {
		t.Fatal("RunScanner visited nothing")
	}
	if order[0] != "heading" {
		t.Errorf("first visited = %q, want heading", order[0])
	}
	// The blockquote's child paragraph must appear immediately after the
	// blockquote itself (pre-order: container before children).
	for i, kind := range order {
		if kind == "blockquote" {
			if i+1 >= len(order) || order[i+1] != "text" {
				t.Errorf("blockquote child not visited immediately after container: %v", order)
			}
		}
	}
}

func TestAssignHeaderIDsSkipsNonHeadings(t *testing.T) {
	doc, err := Parse("t.md", "# Title One\n\nplain paragraph\n\n## Section Two\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var ids []string
	RunScanner(struct{}{}, doc.Blocks, func(acc struct{}, b Block) struct{} {
		if h, ok := b.(*Heading); ok {
			ids = append(ids, h.ID)
		}
		return acc
	})
	if len(ids) != 2 {
		t.Fatalf("got %d heading IDs, want 2: %v", len(ids), ids)
	}
	if ids[0] != "title-one" {
		t.Errorf("ids[0] = %q, want title-one", ids[0])
	}
	if ids[1] != "section-two" {
		t.Errorf("ids[1] = %q, want section-two", ids[1])
	}
}
