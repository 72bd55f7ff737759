// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

import (
	"fmt"
	"strings"
)

// renderDocument assembles the render pipeline (block-transform pass,
// then a layered block/inline render chain seeded by mmark's own default
// HTML output) and runs it over m.Blocks.
func renderDocument(m MMark) string {
	var blockChain BlockRenderFunc
	var inlineChain InlineRenderFunc

	inlineChain = buildInlineChain(m.Ext.InlineRender, func(w *strings.Builder, in Inline) {
		defaultRenderInline(w, in, inlineChain)
	})
	blockChain = buildBlockChain(m.Ext.BlockRender, func(w *strings.Builder, b Block) {
		defaultRenderBlock(w, b, blockChain, inlineChain)
	})

	applyInlineTransformTree(m.Blocks, m.Ext.InlineTransform)

	var out strings.Builder
	for _, b := range m.Blocks {
		b = applyBlockTransform(b, m.Ext.BlockTransform)
		blockChain(&out, b)
	}
	return out.String()
}

// applyInlineTransformTree runs ts over every resolved inline span in
// blocks (headings, paragraphs, naked list-item text, table cells),
// recursing into every inline container, before rendering begins.
func applyInlineTransformTree(blocks []Block, ts []func(Inline) Inline) {
	if len(ts) == 0 {
		return
	}
	RunScanner(struct{}{}, blocks, func(acc struct{}, b Block) struct{} {
		switch v := b.(type) {
		case *Heading:
			v.Text.Inline = applyInlineTransformSeq(v.Text.Inline, ts)
		case *Paragraph:
			v.Text.Inline = applyInlineTransformSeq(v.Text.Inline, ts)
		case *Naked:
			v.Text.Inline = applyInlineTransformSeq(v.Text.Inline, ts)
		case *Table:
			for _, row := range v.Rows {
				for _, cell := range row {
					cell.Inline = applyInlineTransformSeq(cell.Inline, ts)
				}
			}
		}
		return acc
	})
}

func buildBlockChain(hooks []func(w *strings.Builder, b Block, next BlockRenderFunc), terminal BlockRenderFunc) BlockRenderFunc {
	chain := terminal
	for i := len(hooks) - 1; i >= 0; i-- {
		hook, next := hooks[i], chain
		chain = func(w *strings.Builder, b Block) { hook(w, b, next) }
	}
	return chain
}

func buildInlineChain(hooks []func(w *strings.Builder, in Inline, next InlineRenderFunc), terminal InlineRenderFunc) InlineRenderFunc {
	chain := terminal
	for i := len(hooks) - 1; i >= 0; i-- {
		hook, next := hooks[i], chain
		chain = func(w *strings.Builder, in Inline) { hook(w, in, next) }
	}
	return chain
}

// applyBlockTransform runs every hook in ts over b, in order, and
// recurses into container blocks so a transform sees every descendant.
func applyBlockTransform(b Block, ts []func(Block) Block) Block {
	switch v := b.(type) {
	case *Blockquote:
		for i, c := range v.Blocks {
			v.Blocks[i] = applyBlockTransform(c, ts)
		}
	case *List:
		for i, item := range v.Items {
			for j, c := range item {
				v.Items[i][j] = applyBlockTransform(c, ts)
			}
		}
	}
	for _, f := range ts {
		b = f(b)
	}
	return b
}

func applyInlineTransformSeq(xs Inlines, ts []func(Inline) Inline) Inlines {
	out := make(Inlines, len(xs))
	for i, x := range xs {
		out[i] = applyInlineTransform(x, ts)
	}
	return out
}

func applyInlineTransform(x Inline, ts []func(Inline) Inline) Inline {
	switch v := x.(type) {
	case *Emphasis:
		v.Inner = applyInlineTransformSeq(v.Inner, ts)
	case *Strong:
		v.Inner = applyInlineTransformSeq(v.Inner, ts)
	case *Strikeout:
		v.Inner = applyInlineTransformSeq(v.Inner, ts)
	case *Subscript:
		v.Inner = applyInlineTransformSeq(v.Inner, ts)
	case *Superscript:
		v.Inner = applyInlineTransformSeq(v.Inner, ts)
	case *Link:
		v.Inner = applyInlineTransformSeq(v.Inner, ts)
	case *Image:
		v.Alt = applyInlineTransformSeq(v.Alt, ts)
	}
	for _, f := range ts {
		x = f(x)
	}
	return x
}

func defaultRenderBlock(w *strings.Builder, b Block, blockChain BlockRenderFunc, inlineChain InlineRenderFunc) {
	switch v := b.(type) {
	case *ThematicBreak:
		w.WriteString("<hr />\n")
	case *Heading:
		fmt.Fprintf(w, "<h%d", v.Level)
		if v.ID != "" {
			fmt.Fprintf(w, " id=\"%s\"", escapeHTMLAttr(v.ID))
		}
		w.WriteString(">")
		renderText(w, v.Text, inlineChain)
		fmt.Fprintf(w, "</h%d>\n", v.Level)
	case *CodeBlock:
		w.WriteString("<pre><code")
		if v.Info != "" {
			lang := v.Info
			if sp := strings.IndexAny(lang, " \t"); sp >= 0 {
				lang = lang[:sp]
			}
			fmt.Fprintf(w, " class=\"language-%s\"", escapeHTMLAttr(lang))
		}
		w.WriteString(">")
		for _, line := range v.Lines {
			w.WriteString(escapeHTML(line))
			w.WriteByte('\n')
		}
		w.WriteString("</code></pre>\n")
	case *HTMLBlock:
		for _, line := range v.Lines {
			w.WriteString(line)
			w.WriteByte('\n')
		}
	case *Naked:
		renderText(w, v.Text, inlineChain)
		w.WriteByte('\n')
	case *Paragraph:
		w.WriteString("<p>")
		renderText(w, v.Text, inlineChain)
		w.WriteString("</p>\n")
	case *Blockquote:
		w.WriteString("<blockquote>\n")
		for _, c := range v.Blocks {
			blockChain(w, c)
		}
		w.WriteString("</blockquote>\n")
	case *List:
		renderList(w, v, blockChain, inlineChain)
	case *Table:
		renderTable(w, v, inlineChain)
	}
}

func renderList(w *strings.Builder, v *List, blockChain BlockRenderFunc, inlineChain InlineRenderFunc) {
	tag := "ul"
	if v.Ordered {
		tag = "ol"
	}
	if v.Ordered && v.Start != 1 {
		fmt.Fprintf(w, "<%s start=\"%d\">\n", tag, v.Start)
	} else {
		fmt.Fprintf(w, "<%s>\n", tag)
	}
	for _, item := range v.Items {
		w.WriteString("<li>")
		if len(item) == 1 {
			if naked, ok := item[0].(*Naked); ok {
				// A lone Naked item is a tight-list item's inline run:
				// render it directly with no wrapper and no trailing
				// newline, matching the teacher's Text-in-Item special
				// case (rsc-markdown's Item.PrintHTML).
				renderText(w, naked.Text, inlineChain)
				w.WriteString("</li>\n")
				continue
			}
		}
		w.WriteByte('\n')
		for _, c := range item {
			blockChain(w, c)
		}
		w.WriteString("</li>\n")
	}
	fmt.Fprintf(w, "</%s>\n", tag)
}

func renderTable(w *strings.Builder, v *Table, inlineChain InlineRenderFunc) {
	w.WriteString("<table>\n<thead>\n<tr>\n")
	for i, cell := range v.Rows[0] {
		fmt.Fprintf(w, "<th%s>", alignAttr(v.Aligns[i]))
		renderText(w, cell, inlineChain)
		w.WriteString("</th>\n")
	}
	w.WriteString("</tr>\n</thead>\n")
	if len(v.Rows) > 1 {
		w.WriteString("<tbody>\n")
		for _, row := range v.Rows[1:] {
			w.WriteString("<tr>\n")
			for i, cell := range row {
				fmt.Fprintf(w, "<td%s>", alignAttr(v.Aligns[i]))
				renderText(w, cell, inlineChain)
				w.WriteString("</td>\n")
			}
			w.WriteString("</tr>\n")
		}
		w.WriteString("</tbody>\n")
	}
	w.WriteString("</table>\n")
}

func alignAttr(a CellAlign) string {
	switch a {
	case AlignLeft:
		return " style=\"text-align: left\""
	case AlignRight:
		return " style=\"text-align: right\""
	case AlignCenter:
		return " style=\"text-align: center\""
	default:
		return ""
	}
}

func renderText(w *strings.Builder, t *Text, inlineChain InlineRenderFunc) {
	for _, x := range t.Inline {
		inlineChain(w, x)
	}
}

func defaultRenderInline(w *strings.Builder, in Inline, chain InlineRenderFunc) {
	switch v := in.(type) {
	case *Plain:
		w.WriteString(escapeHTML(v.Text))
	case *LineBreak:
		w.WriteString("<br />\n")
	case *CodeSpan:
		w.WriteString("<code>")
		w.WriteString(escapeHTML(v.Text))
		w.WriteString("</code>")
	case *Emphasis:
		w.WriteString("<em>")
		renderInner(w, v.Inner, chain)
		w.WriteString("</em>")
	case *Strong:
		w.WriteString("<strong>")
		renderInner(w, v.Inner, chain)
		w.WriteString("</strong>")
	case *Strikeout:
		w.WriteString("<del>")
		renderInner(w, v.Inner, chain)
		w.WriteString("</del>")
	case *Subscript:
		w.WriteString("<sub>")
		renderInner(w, v.Inner, chain)
		w.WriteString("</sub>")
	case *Superscript:
		w.WriteString("<sup>")
		renderInner(w, v.Inner, chain)
		w.WriteString("</sup>")
	case *Link:
		fmt.Fprintf(w, "<a href=\"%s\"", escapeHTMLAttr(v.URL))
		if v.Title != "" {
			fmt.Fprintf(w, " title=\"%s\"", escapeHTMLAttr(v.Title))
		}
		w.WriteString(">")
		renderInner(w, v.Inner, chain)
		w.WriteString("</a>")
	case *Image:
		fmt.Fprintf(w, "<img src=\"%s\" alt=\"%s\"", escapeHTMLAttr(v.URL), escapeHTMLAttr(v.Alt.PlainText()))
		if v.Title != "" {
			fmt.Fprintf(w, " title=\"%s\"", escapeHTMLAttr(v.Title))
		}
		w.WriteString(" />")
	case *AutoLink:
		fmt.Fprintf(w, "<a href=\"%s\">%s</a>", escapeHTMLAttr(v.URL), escapeHTML(v.Text))
	case *HTMLTag:
		w.WriteString(v.Text)
	}
}

func renderInner(w *strings.Builder, xs Inlines, chain InlineRenderFunc) {
	for _, x := range xs {
		chain(w, x)
	}
}

// escapeHTML escapes text content per the minimal set CommonMark HTML
// renderers use: & < > only need escaping to keep parsers happy, quotes
// are left alone outside of attribute values.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// escapeHTMLAttr escapes text for use inside a double-quoted HTML
// attribute value.
func escapeHTMLAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// headerID computes the slug spec.md §4.5 assigns to a heading from its
// plain text: lowercase, spaces to hyphens, anything but letters, digits,
// '-', and '_' dropped, runs of '-' collapsed.
func headerID(plain string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(plain) {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			b.WriteRune(r)
			lastDash = false
		case r == '-':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
