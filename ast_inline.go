// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmark

// An Inline is an inline Markdown element: one of [Plain], [LineBreak],
// [Emphasis], [Strong], [Strikeout], [Subscript], [Superscript],
// [CodeSpan], [Link], [Image], [AutoLink], or [HTMLTag].
type Inline interface {
	Inline()
}

// Inlines is a non-empty sequence of Inline nodes; it is itself an Inline
// so that recursive containers (Emphasis, Link, ...) can hold one.
type Inlines []Inline

func (Inlines) Inline() {}

// PlainText concatenates the literal text content of xs, descending into
// containers and ignoring markup, matching spec.md §8's plain_text helper
// (used for header IDs and image alt text).
func (xs Inlines) PlainText() string {
	var b []byte
	for _, x := range xs {
		b = appendPlainText(b, x)
	}
	return string(b)
}

func appendPlainText(b []byte, x Inline) []byte {
	switch x := x.(type) {
	case *Plain:
		return append(b, x.Text...)
	case *CodeSpan:
		return append(b, x.Text...)
	case *LineBreak:
		return append(b, '\n')
	case *Emphasis:
		return appendPlainTextSeq(b, x.Inner)
	case *Strong:
		return appendPlainTextSeq(b, x.Inner)
	case *Strikeout:
		return appendPlainTextSeq(b, x.Inner)
	case *Subscript:
		return appendPlainTextSeq(b, x.Inner)
	case *Superscript:
		return appendPlainTextSeq(b, x.Inner)
	case *Link:
		return appendPlainTextSeq(b, x.Inner)
	case *Image:
		return appendPlainTextSeq(b, x.Alt)
	case *AutoLink:
		return append(b, x.Text...)
	case *HTMLTag:
		return b
	default:
		return b
	}
}

func appendPlainTextSeq(b []byte, xs Inlines) []byte {
	for _, x := range xs {
		b = appendPlainText(b, x)
	}
	return b
}

// A Plain is literal textual content, already unescaped and with any
// entity/numeric references resolved (spec.md §4.1).
type Plain struct {
	Text string
}

func (*Plain) Inline() {}

// A LineBreak is a hard line break (rendered as <br />). A soft line break
// (an ordinary newline inside a paragraph) has no node type of its own: it
// is kept as a [*Plain] holding "\n", which renders as a newline.
type LineBreak struct{}

func (*LineBreak) Inline() {}

// A CodeSpan is inline code (`` `code` ``); its content has had
// whitespace collapsed per spec.md §4.1 but is never escape- or entity-
// decoded.
type CodeSpan struct {
	Text string
}

func (*CodeSpan) Inline() {}

// Emphasis is *italic* text.
type Emphasis struct{ Inner Inlines }

func (*Emphasis) Inline() {}

// Strong is **bold** text.
type Strong struct{ Inner Inlines }

func (*Strong) Inline() {}

// Strikeout is ~~struck-through~~ text.
type Strikeout struct{ Inner Inlines }

func (*Strikeout) Inline() {}

// Subscript is ~subscript~ text.
type Subscript struct{ Inner Inlines }

func (*Subscript) Inline() {}

// Superscript is ^superscript^ text.
type Superscript struct{ Inner Inlines }

func (*Superscript) Inline() {}

// A Link is [text](dest "title") or one of its reference-link forms,
// already resolved to a concrete destination.
type Link struct {
	Inner Inlines
	URL   string
	Title string
}

func (*Link) Inline() {}

// An Image is ![alt](src "title") or one of its reference-link forms,
// already resolved to a concrete source.
type Image struct {
	Alt   Inlines
	URL   string
	Title string
}

func (*Image) Inline() {}

// An AutoLink is <https://example.com> or <user@example.com>; Text is
// the link label as written (without the angle brackets) and URL is the
// resolved destination (with a "mailto:" prefix synthesized for bare
// email autolinks, per spec.md §4.3).
type AutoLink struct {
	Text string
	URL  string
}

func (*AutoLink) Inline() {}

// An HTMLTag is a raw inline HTML tag, comment, or declaration, passed
// through verbatim (spec.md §1's permissive-passthrough allowance).
type HTMLTag struct {
	Text string
}

func (*HTMLTag) Inline() {}
