// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestFixtures runs every testdata/*.txt archive as a table of markdown
// input / expected HTML output pairs, in the style of the corpus's own
// txtar-driven fixture tests.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata fixtures found")
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			md := a.Files[i]
			html := a.Files[i+1]
			name := strings.TrimSuffix(md.Name, ".md")
			wantName := strings.TrimSuffix(html.Name, ".html")
			if name != wantName {
				t.Fatalf("%s: mismatched pair %s / %s", file, md.Name, html.Name)
			}
			t.Run(name, func(t *testing.T) {
				doc, err := Parse(name, string(md.Data))
				if err != nil {
					t.Fatalf("Parse: %v", err)
				}
				got := strings.TrimSpace(doc.Render())
				want := strings.TrimSpace(string(html.Data))
				if got != want {
					t.Errorf("input:\n%s\ngot:\n%s\nwant:\n%s", md.Data, got, want)
				}
			})
		}
	}
}

func TestParseReturnsNoErrorForWellFormedInput(t *testing.T) {
	_, err := Parse("t.md", "# Hello\n\nSome *text*.\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseFrontMatter(t *testing.T) {
	doc, err := Parse("t.md", "---\ntitle: Hi\ntags:\n  - a\n  - b\n---\n\n# Body\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := doc.YAML.(map[string]any)
	if !ok {
		t.Fatalf("YAML = %#v, want map", doc.YAML)
	}
	if m["title"] != "Hi" {
		t.Errorf("title = %v, want Hi", m["title"])
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(doc.Blocks))
	}
}

func TestParseFrontMatterRequiresBlankAfterClose(t *testing.T) {
	doc, err := Parse("t.md", "---\ntitle: Hi\n---\nnot blank\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.YAML != nil {
		t.Errorf("YAML = %#v, want nil (malformed front matter should not be recognized)", doc.YAML)
	}
}

func TestDuplicateReferenceDefinitionKeepsFirst(t *testing.T) {
	src := "[a]: /first\n[a]: /second\n\n[text][a]\n"
	doc, err := Parse("t.md", src)
	if err == nil {
		t.Fatal("expected a ParseErrorBundle for the duplicate definition")
	}
	bundle, ok := err.(*ParseErrorBundle)
	if !ok {
		t.Fatalf("err type = %T, want *ParseErrorBundle", err)
	}
	foundDup := false
	for _, e := range bundle.Errors {
		if _, ok := e.Err.(DuplicateReferenceDefinition); ok {
			foundDup = true
		}
	}
	if !foundDup {
		t.Error("expected a DuplicateReferenceDefinition error")
	}
	html := doc.Render()
	if !strings.Contains(html, `href="/first"`) {
		t.Errorf("render = %q, want it to use the first definition", html)
	}
}

func TestUndefinedReferenceReportsNearestLabel(t *testing.T) {
	src := "[helo]: /x\n\n[text][hello]\n"
	_, err := Parse("t.md", src)
	if err == nil {
		t.Fatal("expected an error for the undefined reference")
	}
	bundle := err.(*ParseErrorBundle)
	var cf CouldNotFindReferenceDefinition
	found := false
	for _, e := range bundle.Errors {
		if c, ok := e.Err.(CouldNotFindReferenceDefinition); ok {
			cf = c
			found = true
		}
	}
	if !found {
		t.Fatal("expected a CouldNotFindReferenceDefinition error")
	}
	if len(cf.Nearest) == 0 || cf.Nearest[0] != "helo" {
		t.Errorf("Nearest = %v, want [helo, ...]", cf.Nearest)
	}
}
