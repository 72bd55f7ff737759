// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmark parses a strict, extensible dialect of Markdown into an
// abstract syntax tree and renders that tree to HTML.
//
// Parsing happens in two phases. The block parser ([Parse]'s first pass)
// segments the document into block nodes, deferring the text inside each
// block as an unresolved inline span (an [*Text] with Raw/Offset set and
// Inline nil). The inline parser then walks every such span, in the
// context of the reference-link table the block parser collected, and
// produces the final inline sequence. This mirrors the corpus's own
// deferred-inline-parsing idiom (see the *Text type), generalized so that
// a malformed span can carry a recorded [ParseError] instead of aborting
// the whole document.
//
// Rendering ([MMark.Render]) walks the resolved tree, applies any
// [Extension] block/inline transforms, and then invokes a layered render
// chain seeded by the package's default HTML rendering.
package mmark

// A Position is a source location, expressed as 1-indexed, tab-aware line
// and column numbers plus the raw byte offset they were computed from.
type Position struct {
	Offset int // byte offset into the original input
	Line   int // 1-indexed line number
	Column int // 1-indexed, tab-aware column number
}

// MMark is a fully parsed document: optional YAML front matter, the
// resolved block sequence, and the extension currently in effect.
type MMark struct {
	YAML     any // decoded front matter, or nil if none was present
	Blocks   []Block
	Links    *ReferenceTable
	Ext      Extension
	FileName string

	// HadCornerCase records that some construct in the document has a
	// contested CommonMark-conformant interpretation and strictdown picked
	// one. It is informational, not an error.
	HadCornerCase bool
}

// UseExtension returns a copy of m with e appended after m's current
// extension: m's hooks run first, then e's, for every one of the four
// composable fields.
func UseExtension(m MMark, e Extension) MMark {
	m.Ext = Combine(m.Ext, e)
	return m
}

// UseExtensions folds UseExtension over es in order, equivalent to
// UseExtension(m, Combine(es[0], Combine(es[1], ...))).
func UseExtensions(m MMark, es ...Extension) MMark {
	var combined Extension
	for _, e := range es {
		combined = Combine(combined, e)
	}
	return UseExtension(m, combined)
}

// Render walks m's blocks, applying m.Ext's block transform to each block
// (recursively) before rendering, and returns the resulting HTML fragment.
// The fragment has no <html>/<body> wrapper.
func (m MMark) Render() string {
	return renderDocument(m)
}
