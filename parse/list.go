/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"strings"

	"github.com/npillmayer/orgdom/dom"
	"github.com/npillmayer/orgdom/scan"
)

// parseList consumes a plain list starting at the given bullet token.
// Items belong to the same list while their bullets share the list's
// indentation; a deeper bullet opens a nested list inside the item's
// content, which the item parses recursively through its own scanner.
func (p *parser) parseList(s *scan.Scanner, first scan.Token, container *dom.Node) {
	indent := first.Indent
	list := p.doc.NewNode(dom.TList, emptySpanAt(first.Span.Start),
		&dom.List{Ordered: first.Ordered, Indent: indent})
	container.AppendChild(list)
	tok := first
	for {
		p.parseListItem(s, tok, list)
		next, ok := nextBullet(s, indent, first.Ordered)
		if !ok {
			return
		}
		tok = next
	}
}

// nextBullet checks whether the list continues: a bullet of the same
// indentation and kind follows, at most one blank line away. Otherwise
// the scanner is restored and the list is done.
func nextBullet(s *scan.Scanner, indent int, ordered bool) (scan.Token, bool) {
	cp := s.Checkpoint()
	sawBlank := false
	for s.Next() {
		t := s.Token()
		if t.Kind == scan.KBlank && !sawBlank {
			sawBlank = true
			continue
		}
		if t.Kind == scan.KListBullet && t.Indent == indent && t.Ordered == ordered {
			return t, true
		}
		break
	}
	s.SeekTo(cp)
	return scan.Token{}, false
}

// parseListItem appends one TListItem to list. The item's extent is
// determined by indentation lookahead; its content is parsed from a
// sub-scanner over that region.
func (p *parser) parseListItem(s *scan.Scanner, tok scan.Token, list *dom.Node) {
	end := itemExtent(s, tok)
	data := &dom.ListItem{Bullet: tok.Key.Text(p.src), Ordered: tok.Ordered}
	item := p.doc.NewNode(dom.TListItem, tok.Span, data)
	list.AppendChild(item)
	contentStart := p.itemPrefix(tok, data)
	if contentStart < end {
		sub := scan.NewRange(p.src, contentStart, end)
		p.parseElements(sub, item, elemOpts{allowHeadline: false})
	}
	s.SeekTo(end)
}

// itemExtent looks ahead for the end of the item: content lines indented
// deeper than the bullet belong to it, a single blank line is tolerated
// between them, two consecutive blank lines or a dedented line end the
// item. Trailing blank lines are not part of the item.
func itemExtent(s *scan.Scanner, tok scan.Token) int {
	end := tok.Span.End
	cp := s.Checkpoint()
	sawBlank := false
	for s.Next() {
		t := s.Token()
		if t.Kind == scan.KBlank {
			if sawBlank {
				break
			}
			sawBlank = true
			continue
		}
		if t.Kind == scan.KHeadline || t.Indent <= tok.Indent {
			break
		}
		sawBlank = false
		end = t.Span.End
	}
	s.SeekTo(cp)
	return end
}

// itemPrefix parses the optional checkbox and descriptive tag at the
// start of the item text and returns the offset of the proper content.
func (p *parser) itemPrefix(tok scan.Token, data *dom.ListItem) int {
	src := p.src
	start, ve := tok.Value.Start, tok.Value.End
	if start+3 <= ve && src[start] == '[' && src[start+2] == ']' && isCheckbox(src[start+1]) &&
		(start+3 == ve || src[start+3] == ' ' || src[start+3] == '\t') {
		data.Checkbox = src[start+1]
		start = skipSpace(src, start+3)
	}
	if !tok.Ordered {
		if i := strings.Index(src[start:ve], " :: "); i >= 0 {
			data.Tag = strings.TrimSpace(src[start : start+i])
			start = skipSpace(src, start+i+len(" :: "))
		}
	}
	return start
}

func isCheckbox(c byte) bool {
	return c == ' ' || c == 'X' || c == 'x' || c == '-'
}

func skipSpace(src string, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t') {
		pos++
	}
	return pos
}
