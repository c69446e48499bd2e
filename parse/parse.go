/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/orgdom/core"
	"github.com/npillmayer/orgdom/core/config"
	"github.com/npillmayer/orgdom/core/span"
	"github.com/npillmayer/orgdom/dom"
	"github.com/npillmayer/orgdom/scan"
)

// Document parses org-mode source text into a document tree.
//
// With cfg.Strict unset this never fails: the parser accepts any input
// and produces a best-effort tree, recording structural warnings on the
// document. In strict mode, unterminated raw constructs abort the parse
// with an ELEX error.
func Document(src string, cfg config.Config) (*dom.Document, error) {
	p := newParser(src, cfg)
	p.run()
	if cfg.Strict && p.strictErr != nil {
		return nil, p.strictErr
	}
	return p.doc, nil
}

type parser struct {
	src       string
	cfg       config.Config
	doc       *dom.Document
	keywords  *trie.Trie // workflow keywords; meta is true for done-keywords
	strictErr error
}

func newParser(src string, cfg config.Config) *parser {
	p := &parser{
		src:      src,
		cfg:      cfg,
		doc:      dom.NewDocument(src),
		keywords: trie.New(),
	}
	for _, kw := range cfg.Todo() {
		p.keywords.Add(kw, false)
	}
	for _, kw := range cfg.Done() {
		p.keywords.Add(kw, true)
	}
	return p
}

// todoKeyword checks a headline's first word against the configured
// workflow keywords. The second return value reports done-ness.
func (p *parser) todoKeyword(word string) (bool, bool) {
	if word == "" {
		return false, false
	}
	node, ok := p.keywords.Find(word)
	if !ok {
		return false, false
	}
	done, _ := node.Meta().(bool)
	return true, done
}

// fail records a strict-mode lexing error. The first error wins.
func (p *parser) fail(sp span.Span, format string, v ...interface{}) {
	if p.strictErr == nil {
		p.strictErr = core.Error(core.ELEX, format, v...)
	}
	p.doc.Warn(sp, format, v...)
}

// run drives the document-level parse: an alternation of sections and
// headlines. Open headlines form a stack; a new headline closes all open
// headlines of the same or a deeper level, then attaches to the one that
// remains on top.
func (p *parser) run() {
	s := scan.New(p.src)
	open := arraystack.New()
	open.Push(p.doc.Root())
	afterHeadline := false
	for {
		top := peekNode(open)
		sec := p.doc.NewNode(dom.TSection, emptySpanAt(s.Checkpoint()), nil)
		hl, more := p.parseElements(s, sec, elemOpts{
			afterHeadline: afterHeadline,
			allowHeadline: true,
		})
		if sec.ChildCount() > 0 {
			top.AppendChild(sec)
		}
		if !more {
			return
		}
		for {
			top = peekNode(open)
			h, ok := top.Data().(*dom.Headline)
			if !ok || h.Level < hl.Level {
				break
			}
			open.Pop()
		}
		hnode := p.doc.NewNode(dom.THeadline, hl.Span, &dom.Headline{Level: hl.Level})
		hnode.AppendChild(p.parseTitle(hl))
		top.AppendChild(hnode)
		open.Push(hnode)
		afterHeadline = true
	}
}

func peekNode(s *arraystack.Stack) *dom.Node {
	v, ok := s.Peek()
	if !ok {
		panic("parse: headline stack is empty") // bottom is always the root
	}
	return v.(*dom.Node)
}

func emptySpanAt(pos int) span.Span {
	return span.New(pos, pos)
}
