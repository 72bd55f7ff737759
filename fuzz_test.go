// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "testing"

// FuzzParse checks that Parse (and Render of whatever it returns) never
// panics on arbitrary input, regardless of how malformed.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"# h\n",
		"---\nbroken: [\n---\n",
		"[a][b]\n",
		"> > > nested\n",
		"- a\n  - b\n    - c\n",
		"```\nunterminated fence",
		"**_*~^&<>\"'\\",
		"| a | b\n|---|\n| 1 |\n",
		"<!-- comment --> <div>text</div>",
		"&#0; &#x110000; &notareal;",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		doc, _ := Parse("fuzz.md", s)
		_ = doc.Render()
	})
}
