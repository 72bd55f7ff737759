// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"strings"
	"testing"
)

func TestCombineOrdersHooksOuterToInner(t *testing.T) {
	var order []string
	a := BlockRenderExt(func(w *strings.Builder, b Block, next BlockRenderFunc) {
		order = append(order, "a")
		next(w, b)
	})
	bExt := BlockRenderExt(func(w *strings.Builder, b Block, next BlockRenderFunc) {
		order = append(order, "b")
		next(w, b)
	})
	combined := Combine(a, bExt)
	if len(combined.BlockRender) != 2 {
		t.Fatalf("got %d render hooks, want 2", len(combined.BlockRender))
	}

	doc, err := Parse("t.md", "text\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc = UseExtension(doc, combined)
	doc.Render()

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("hook call order = %v, want [a b]", order)
	}
}

func TestBlockTransformRewritesTree(t *testing.T) {
	doc, err := Parse("t.md", "# Title\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ext := BlockTransformExt(func(b Block) Block {
		if h, ok := b.(*Heading); ok {
			h.Level = 2
		}
		return b
	})
	doc = UseExtension(doc, ext)
	got := doc.Render()
	if !strings.Contains(got, "<h2") {
		t.Errorf("Render() = %q, want an <h2> element", got)
	}
}

func TestInlineRenderHookCanReplaceDefault(t *testing.T) {
	doc, err := Parse("t.md", "`code`\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ext := InlineRenderExt(func(w *strings.Builder, in Inline, next InlineRenderFunc) {
		if _, ok := in.(*CodeSpan); ok {
			w.WriteString("[[code omitted]]")
			return
		}
		next(w, in)
	})
	doc = UseExtension(doc, ext)
	got := doc.Render()
	if !strings.Contains(got, "[[code omitted]]") {
		t.Errorf("Render() = %q, want the hook's replacement text", got)
	}
	if strings.Contains(got, "<code>") {
		t.Errorf("Render() = %q, default <code> rendering should have been replaced", got)
	}
}

func TestUseExtensionsComposesInOrder(t *testing.T) {
	var order []string
	first := InlineTransformExt(func(in Inline) Inline {
		order = append(order, "first")
		return in
	})
	second := InlineTransformExt(func(in Inline) Inline {
		order = append(order, "second")
		return in
	})
	doc, err := Parse("t.md", "text\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc = UseExtensions(doc, first, second)
	doc.Render()
	if len(order) < 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("hook order = %v, want [first second ...]", order)
	}
}
