// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "testing"

func TestReferenceTableCaseFoldAndWhitespace(t *testing.T) {
	rt := NewReferenceTable()
	if !rt.Define("Foo   Bar", &LinkRef{URL: "/x"}) {
		t.Fatal("first Define should succeed")
	}
	if !rt.Has("foo bar") {
		t.Error("lookup should be case- and whitespace-insensitive")
	}
	if !rt.Has("FOO BAR") {
		t.Error("lookup should fold upper-case labels")
	}
	ref, ok := rt.Lookup("foo   bar")
	if !ok || ref.URL != "/x" {
		t.Errorf("Lookup = %v, %v; want /x, true", ref, ok)
	}
}

func TestReferenceTableFirstDefinitionWins(t *testing.T) {
	rt := NewReferenceTable()
	rt.Define("a", &LinkRef{URL: "/first"})
	if rt.Define("a", &LinkRef{URL: "/second"}) {
		t.Fatal("second Define for the same label should fail")
	}
	ref, _ := rt.Lookup("a")
	if ref.URL != "/first" {
		t.Errorf("URL = %q, want /first", ref.URL)
	}
}

func TestReferenceTableNearestLabels(t *testing.T) {
	rt := NewReferenceTable()
	rt.Define("hello", &LinkRef{URL: "/h"})
	rt.Define("goodbye", &LinkRef{URL: "/g"})
	nearest := rt.nearestLabels("helo")
	if len(nearest) == 0 || nearest[0] != "hello" {
		t.Errorf("nearestLabels(helo) = %v, want [hello, ...]", nearest)
	}
}
