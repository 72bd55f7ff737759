// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import "gopkg.in/yaml.v3"

// parseFrontMatter recognizes spec.md §4.2's YAML front-matter grammar: a
// line "---" at column 1, a run of lines forming the YAML document, and a
// closing line "---" followed by a blank line or end of input. It returns
// the decoded value (nil if no front matter was present) and the line
// index the block parser should resume at.
func (p *parser) parseFrontMatter() (any, int) {
	if len(p.lines) == 0 || p.lines[0].text != "---" {
		return nil, 0
	}
	end := -1
	for i := 1; i < len(p.lines); i++ {
		if p.lines[i].text == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, 0
	}
	bodyStart := end + 1
	if bodyStart < len(p.lines) && !newLineCursor(p.lines[bodyStart].text).isBlank() {
		return nil, 0
	}

	var raw []byte
	for i := 1; i < end; i++ {
		raw = append(raw, p.lines[i].text...)
		raw = append(raw, '\n')
	}

	var val any
	if err := yaml.Unmarshal(raw, &val); err != nil {
		p.errs = append(p.errs, ParseError{
			Offset: p.lines[0].offset,
			Err:    YamlParseError{Message: err.Error()},
		})
		return nil, bodyStart
	}
	return val, bodyStart
}
