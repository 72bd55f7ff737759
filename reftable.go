// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// A LinkRef is the destination and optional title a reference-link
// definition (or an inline link/image) resolves to.
type LinkRef struct {
	URL   string
	Title string
}

// A ReferenceTable is a case-insensitive mapping from normalized link
// label to its destination, populated by reference-link definitions
// (spec.md §4.2) and consulted while resolving full/collapsed/shortcut
// link and image references (spec.md §4.3).
type ReferenceTable struct {
	defs map[string]*LinkRef
	// order lists the normalized labels in first-definition order; it is
	// the candidate list for nearest-label suggestions and breaks ties.
	order []string
}

// NewReferenceTable returns an empty ReferenceTable.
func NewReferenceTable() *ReferenceTable {
	return &ReferenceTable{defs: make(map[string]*LinkRef)}
}

var foldCaser = cases.Fold()

// normalizeLabel implements spec.md §4.1's reference-label normalization:
// Unicode simple case-fold, then collapse whitespace runs to a single
// space, then trim.
func normalizeLabel(label string) string {
	return collapseWhitespace(foldCaser.String(label))
}

// Define registers label -> ref, unless label (normalized) is already
// defined, in which case the first definition wins and ok is false.
func (t *ReferenceTable) Define(label string, ref *LinkRef) (ok bool) {
	key := normalizeLabel(label)
	if _, exists := t.defs[key]; exists {
		return false
	}
	t.defs[key] = ref
	t.order = append(t.order, key)
	return true
}

// Lookup resolves a (not-yet-normalized) label.
func (t *ReferenceTable) Lookup(label string) (*LinkRef, bool) {
	ref, ok := t.defs[normalizeLabel(label)]
	return ref, ok
}

// Has reports whether the normalized label is already defined, without
// needing the resolved reference.
func (t *ReferenceTable) Has(label string) bool {
	_, ok := t.defs[normalizeLabel(label)]
	return ok
}

// nearestLabels returns up to 3 defined labels closest to label by edit
// distance, for use in a CouldNotFindReferenceDefinition diagnostic.
func (t *ReferenceTable) nearestLabels(label string) []string {
	if len(t.order) == 0 {
		return nil
	}
	target := normalizeLabel(label)
	ranked := append([]string(nil), t.order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return fuzzy.LevenshteinDistance(target, ranked[i]) < fuzzy.LevenshteinDistance(target, ranked[j])
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}
