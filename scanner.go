// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

// A Scanner is a pre-order, document-order left fold over a document's
// block tree (spec.md §8): it is called once per block, in the order a
// reader would encounter them, threading an accumulator of type A.
type Scanner[A any] func(acc A, b Block) A

// RunScanner folds f over blocks and every block nested beneath them
// (blockquote children, list-item blocks), left to right, pre-order: a
// container block itself is visited before its children.
func RunScanner[A any](acc A, blocks []Block, f Scanner[A]) A {
	for _, b := range blocks {
		acc = f(acc, b)
		switch v := b.(type) {
		case *Blockquote:
			acc = RunScanner(acc, v.Blocks, f)
		case *List:
			for _, item := range v.Items {
				acc = RunScanner(acc, item, f)
			}
		}
	}
	return acc
}

// assignHeaderIDs walks blocks with a Scanner and fills in each Heading's
// ID field from its resolved plain text, per spec.md §4.5.
func assignHeaderIDs(blocks []Block) {
	RunScanner(struct{}{}, blocks, func(acc struct{}, b Block) struct{} {
		if h, ok := b.(*Heading); ok {
			h.ID = headerID(h.Text.Inline.PlainText())
		}
		return acc
	})
}
