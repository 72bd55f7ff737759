// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "strings"

// A BlockRenderFunc renders a single block (and, for containers, its
// children) to w.
type BlockRenderFunc func(w *strings.Builder, b Block)

// An InlineRenderFunc renders a single inline node to w.
type InlineRenderFunc func(w *strings.Builder, in Inline)

// Extension is mmark's sole pluggable surface: four independently
// composable ordered hook lists, realized as plain slices rather than the
// higher-kinded endofunctions a more abstract encoding might use (each
// field is "payload-monomorphized" to the concrete type it operates on).
// A zero Extension changes nothing: rendering falls straight through to
// the package's default HTML output.
type Extension struct {
	// BlockTransform rewrites a block (and, recursively, its children)
	// before rendering. Hooks run in slice order, each seeing the
	// previous hook's result.
	BlockTransform []func(Block) Block

	// InlineTransform rewrites a single inline node before rendering,
	// applied recursively to every node in a resolved Inlines tree.
	InlineTransform []func(Inline) Inline

	// BlockRender layers a block's rendering: a hook receives the writer,
	// the block, and a "next" continuation that invokes the next hook (or
	// mmark's own default renderer, at the end of the chain). A hook that
	// does not call next replaces the default rendering entirely.
	BlockRender []func(w *strings.Builder, b Block, next BlockRenderFunc)

	// InlineRender layers an inline node's rendering, the same way
	// BlockRender layers a block's.
	InlineRender []func(w *strings.Builder, in Inline, next InlineRenderFunc)
}

// Combine returns an Extension whose hooks run a's first, then b's, in
// every one of the four fields, i.e. a's are outermost in the render
// layering and earliest in the transform passes.
func Combine(a, b Extension) Extension {
	return Extension{
		BlockTransform:  concat(a.BlockTransform, b.BlockTransform),
		InlineTransform: concat(a.InlineTransform, b.InlineTransform),
		BlockRender:     concat(a.BlockRender, b.BlockRender),
		InlineRender:    concat(a.InlineRender, b.InlineRender),
	}
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// BlockTransformExt wraps a single block-transform hook as an Extension.
func BlockTransformExt(f func(Block) Block) Extension {
	return Extension{BlockTransform: []func(Block) Block{f}}
}

// InlineTransformExt wraps a single inline-transform hook as an Extension.
func InlineTransformExt(f func(Inline) Inline) Extension {
	return Extension{InlineTransform: []func(Inline) Inline{f}}
}

// BlockRenderExt wraps a single block-render hook as an Extension.
func BlockRenderExt(f func(w *strings.Builder, b Block, next BlockRenderFunc)) Extension {
	return Extension{BlockRender: []func(w *strings.Builder, b Block, next BlockRenderFunc){f}}
}

// InlineRenderExt wraps a single inline-render hook as an Extension.
func InlineRenderExt(f func(w *strings.Builder, in Inline, next InlineRenderFunc)) Extension {
	return Extension{InlineRender: []func(w *strings.Builder, in Inline, next InlineRenderFunc){f}}
}
