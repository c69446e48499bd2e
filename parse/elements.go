/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"strings"

	"github.com/npillmayer/orgdom/core/span"
	"github.com/npillmayer/orgdom/dom"
	"github.com/npillmayer/orgdom/scan"
)

type elemOpts struct {
	afterHeadline bool // planning line and property drawer are valid
	allowHeadline bool // a headline token ends this container
}

// paragraph accumulates consecutive text lines until flushed.
type paragraph struct {
	open       bool
	start      int // first byte
	contentEnd int // end of the last content byte, newline excluded
	spanEnd    int // end of the last line, newline included
}

// parseElements consumes tokens and appends element nodes to container.
// It returns the headline token which terminated the run, or ok=false
// when the scan region is exhausted.
func (p *parser) parseElements(s *scan.Scanner, container *dom.Node, opts elemOpts) (scan.Token, bool) {
	var pg paragraph
	flush := func() {
		if !pg.open {
			return
		}
		pg.open = false
		node := p.doc.NewNode(dom.TParagraph, span.New(pg.start, pg.spanEnd), nil)
		container.AppendChild(node)
		p.parseInline(span.New(pg.start, pg.contentEnd), node)
	}
	addText := func(tok scan.Token) {
		if !pg.open {
			pg.open = true
			pg.start = tok.Span.Start
		}
		pg.spanEnd = tok.Span.End
		pg.contentEnd = contentEnd(p.src, tok.Span)
	}
	first := true
	propOK := opts.afterHeadline
	for s.Next() {
		tok := s.Token()
		wasPlanning := false
		switch tok.Kind {
		case scan.KHeadline:
			if opts.allowHeadline {
				flush()
				return tok, true
			}
			addText(tok) // headline syntax in a context which cannot hold one
		case scan.KBlank:
			flush()
		case scan.KKeyword:
			flush()
			kw := &dom.Keyword{Key: tok.Key.Text(p.src), Value: tok.Value.Text(p.src)}
			container.AppendChild(p.doc.NewNode(dom.TKeyword, tok.Span, kw))
			p.doc.AddKeyword(kw.Key, kw.Value)
		case scan.KBabelCall:
			flush()
			bc := &dom.BabelCall{Value: tok.Value.Text(p.src)}
			container.AppendChild(p.doc.NewNode(dom.TBabelCall, tok.Span, bc))
		case scan.KRule:
			flush()
			container.AppendChild(p.doc.NewNode(dom.TRule, tok.Span, nil))
		case scan.KComment:
			flush()
			p.parseLineRun(s, tok, container, scan.KComment)
		case scan.KFixedWidth:
			flush()
			p.parseLineRun(s, tok, container, scan.KFixedWidth)
		case scan.KBlockBegin:
			flush()
			if !p.parseBlock(s, tok, container) {
				addText(tok)
			}
		case scan.KDynBegin:
			flush()
			if !p.parseDynBlock(s, tok, container) {
				addText(tok)
			}
		case scan.KDrawerBegin:
			flush()
			if !p.parseDrawer(s, tok, container, propOK) {
				addText(tok)
			}
		case scan.KListBullet:
			flush()
			p.parseList(s, tok, container)
		case scan.KTableRow, scan.KTableRule:
			flush()
			p.parseTable(s, tok, container)
		case scan.KFnDef:
			flush()
			fd := &dom.FnDef{Label: tok.Key.Text(p.src)}
			node := p.doc.NewNode(dom.TFnDef, tok.Span, fd)
			container.AppendChild(node)
			if !tok.Value.IsEmpty() {
				p.parseInline(tok.Value, node)
			}
		case scan.KPlanning:
			if first && opts.afterHeadline && !pg.open {
				container.AppendChild(p.parsePlanning(tok))
				wasPlanning = true
			} else {
				addText(tok)
			}
		case scan.KClock:
			flush()
			container.AppendChild(p.parseClock(tok))
		default: // KText and stray end-delimiters
			addText(tok)
		}
		first = false
		if !wasPlanning {
			propOK = false // property drawer only right after headline or planning
		}
	}
	flush()
	return scan.Token{}, false
}

// contentEnd returns the end of the line content of sp, i.e. sp.End
// minus a trailing newline.
func contentEnd(src string, sp span.Span) int {
	if sp.End > sp.Start && src[sp.End-1] == '\n' {
		return sp.End - 1
	}
	return sp.End
}

// rawBlockNames are the block types whose content is taken verbatim.
func isRawBlock(name string) bool {
	switch name {
	case "src", "example", "export", "comment":
		return true
	}
	return false
}

// parseBlock handles '#+BEGIN_name' … '#+END_name'. It reports false if
// the block is unterminated; the caller then degrades the begin line to
// paragraph text. A headline terminates every open element, so only raw
// blocks may carry star lines as content.
func (p *parser) parseBlock(s *scan.Scanner, begin scan.Token, container *dom.Node) bool {
	name := strings.ToLower(begin.Key.Text(p.src))
	endTok, found := p.findEnd(s, func(t scan.Token) bool {
		return t.Kind == scan.KBlockEnd && strings.EqualFold(t.Key.Text(p.src), name)
	}, !isRawBlock(name))
	if !found {
		p.fail(begin.Span, "block #+BEGIN_%s is never closed", name)
		return false
	}
	data := &dom.Block{Name: name, Args: begin.Value.Text(p.src)}
	node := p.doc.NewNode(dom.TBlock, span.New(begin.Span.Start, endTok.Span.End), data)
	inner := span.New(begin.Span.End, endTok.Span.Start)
	switch {
	case isRawBlock(name):
		data.Value = inner.Text(p.src)
	case name == "verse":
		// verse blocks keep their line structure but contain inline objects
		container.AppendChild(node)
		p.parseInline(inner, node)
		return true
	default:
		container.AppendChild(node)
		sub := scan.NewRange(p.src, inner.Start, inner.End)
		p.parseElements(sub, node, elemOpts{allowHeadline: false})
		node.Widen(endTok.Span.End)
		return true
	}
	container.AppendChild(node)
	return true
}

// parseDynBlock handles '#+BEGIN: name args' … '#+END:'.
func (p *parser) parseDynBlock(s *scan.Scanner, begin scan.Token, container *dom.Node) bool {
	endTok, found := p.findEnd(s, func(t scan.Token) bool {
		return t.Kind == scan.KDynEnd
	}, true)
	if !found {
		p.fail(begin.Span, "dynamic block #+BEGIN: %s is never closed", begin.Key.Text(p.src))
		return false
	}
	data := &dom.DynBlock{Name: begin.Key.Text(p.src), Args: begin.Value.Text(p.src)}
	node := p.doc.NewNode(dom.TDynBlock, span.New(begin.Span.Start, endTok.Span.End), data)
	container.AppendChild(node)
	sub := scan.NewRange(p.src, begin.Span.End, endTok.Span.Start)
	p.parseElements(sub, node, elemOpts{allowHeadline: false})
	node.Widen(endTok.Span.End)
	return true
}

// parseDrawer handles ':NAME:' … ':END:'. A drawer must close before the
// next headline. A ':PROPERTIES:' drawer directly after a headline (or
// its planning line) becomes a property drawer with parsed key/value
// pairs; any other drawer contains elements.
func (p *parser) parseDrawer(s *scan.Scanner, begin scan.Token, container *dom.Node, propOK bool) bool {
	name := begin.Key.Text(p.src)
	endTok, found := p.findEnd(s, func(t scan.Token) bool {
		return t.Kind == scan.KDrawerEnd
	}, true)
	if !found {
		p.doc.Warn(begin.Span, "drawer :%s: is never closed", name)
		return false
	}
	inner := span.New(begin.Span.End, endTok.Span.Start)
	data := &dom.Drawer{Name: name}
	node := p.doc.NewNode(dom.TDrawer, span.New(begin.Span.Start, endTok.Span.End), data)
	if propOK && strings.EqualFold(name, "PROPERTIES") {
		data.Properties = parseProperties(inner.Text(p.src))
		container.AppendChild(node)
		return true
	}
	container.AppendChild(node)
	sub := scan.NewRange(p.src, inner.Start, inner.End)
	p.parseElements(sub, node, elemOpts{allowHeadline: false})
	node.Widen(endTok.Span.End)
	return true
}

// findEnd scans forward for a terminator token. On success the scanner
// rests after the terminator line; on failure it is restored to where it
// was. Raw blocks are skipped wholesale, so an ':END:' inside an example
// block does not close a drawer. With stopAtHeadline, a headline aborts
// the search; only raw blocks scan past star lines, everything else is
// terminated by the next headline.
func (p *parser) findEnd(s *scan.Scanner, isEnd func(scan.Token) bool, stopAtHeadline bool) (scan.Token, bool) {
	cp := s.Checkpoint()
	for s.Next() {
		t := s.Token()
		if isEnd(t) {
			return t, true
		}
		if stopAtHeadline && t.Kind == scan.KHeadline {
			break
		}
		if t.Kind == scan.KBlockBegin {
			name := strings.ToLower(t.Key.Text(p.src))
			if isRawBlock(name) {
				// nested raw block: skip to its end, or give up with it
				p.findEnd(s, func(e scan.Token) bool {
					return e.Kind == scan.KBlockEnd && strings.EqualFold(e.Key.Text(p.src), name)
				}, stopAtHeadline)
			}
		}
	}
	s.SeekTo(cp)
	return scan.Token{}, false
}

// parseLineRun merges consecutive comment or fixed-width lines into a
// single node.
func (p *parser) parseLineRun(s *scan.Scanner, first scan.Token, container *dom.Node, kind scan.Kind) {
	values := []string{first.Value.Text(p.src)}
	end := first.Span.End
	for {
		cp := s.Checkpoint()
		if !s.Next() {
			break
		}
		t := s.Token()
		if t.Kind != kind {
			s.SeekTo(cp)
			break
		}
		values = append(values, t.Value.Text(p.src))
		end = t.Span.End
	}
	value := strings.Join(values, "\n")
	var data interface{}
	typ := dom.TComment
	if kind == scan.KFixedWidth {
		typ = dom.TFixedWidth
		data = &dom.FixedWidth{Value: value}
	} else {
		data = &dom.Comment{Value: value}
	}
	container.AppendChild(p.doc.NewNode(typ, span.New(first.Span.Start, end), data))
}

// parseProperties reads ':KEY: value' lines of a property drawer.
func parseProperties(inner string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(inner, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 2 || line[0] != ':' {
			continue
		}
		colon := strings.IndexByte(line[1:], ':')
		if colon <= 0 {
			continue
		}
		key := line[1 : 1+colon]
		value := strings.TrimSpace(line[1+colon+1:])
		props[key] = value
	}
	return props
}
