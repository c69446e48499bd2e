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
)

// parseInline parses the region as inline content and appends the
// resulting objects to container. Source bytes not claimed by any
// object become TText nodes, so the children always tile the region.
// A '\' escapes the following byte.
func (p *parser) parseInline(region span.Span, container *dom.Node) {
	src := p.src
	pos := region.Start
	textStart := pos
	flushText := func(upto int) {
		if upto > textStart {
			container.AppendChild(p.doc.NewNode(dom.TText, span.New(textStart, upto), nil))
		}
	}
	for pos < region.End {
		var n *dom.Node
		var end int
		switch src[pos] {
		case '\\':
			if pos+1 < region.End {
				pos += 2
				continue
			}
		case '[':
			n, end = p.matchBracket(pos, region.End)
		case '{':
			n, end = p.matchMacros(pos, region.End)
		case '@':
			n, end = p.matchSnippet(pos, region.End)
		case '<':
			n, end = p.matchAngle(pos, region.End)
		case '*', '/', '_', '+', '~', '=':
			n, end = p.matchEmphasis(pos, region.End, region.Start)
		case 'c', 's':
			n, end = p.matchInlineBabel(pos, region.End, region.Start)
		}
		if n == nil {
			pos++
			continue
		}
		flushText(pos)
		container.AppendChild(n)
		pos = end
		textStart = pos
	}
	flushText(region.End)
}

// --- brackets: links, footnote references, cookies, inactive timestamps ----

func (p *parser) matchBracket(pos, limit int) (*dom.Node, int) {
	src := p.src
	if pos+1 >= limit {
		return nil, 0
	}
	switch {
	case src[pos+1] == '[':
		return p.matchLink(pos, limit)
	case strings.HasPrefix(src[pos:limit], "[fn:"):
		return p.matchFnRef(pos, limit)
	}
	if n, end := p.matchCookie(pos, limit); n != nil {
		return n, end
	}
	return p.matchTimestamp(pos, limit)
}

// matchLink parses '[[path]]' and '[[path][description]]'. The
// description is inline content and becomes the node's children.
func (p *parser) matchLink(pos, limit int) (*dom.Node, int) {
	src := p.src
	j := pos + 2
	for j < limit && src[j] != ']' && src[j] != '[' && src[j] != '\n' {
		j++
	}
	if j >= limit || src[j] != ']' || j == pos+2 {
		return nil, 0
	}
	path := src[pos+2 : j]
	if j+1 < limit && src[j+1] == ']' {
		node := p.doc.NewNode(dom.TLink, span.New(pos, j+2), &dom.Link{Path: path})
		return node, j + 2
	}
	if j+1 >= limit || src[j+1] != '[' {
		return nil, 0
	}
	rest := src[j+2 : limit]
	k := strings.Index(rest, "]]")
	if k < 0 || strings.IndexByte(rest[:k], '\n') >= 0 {
		return nil, 0
	}
	end := j + 2 + k + 2
	node := p.doc.NewNode(dom.TLink, span.New(pos, end), &dom.Link{Path: path, HasDesc: true})
	p.parseInline(span.New(j+2, j+2+k), node)
	return node, end
}

// matchFnRef parses '[fn:label]' and the inline definition form
// '[fn:label:definition]'; the definition is inline content.
func (p *parser) matchFnRef(pos, limit int) (*dom.Node, int) {
	src := p.src
	j := pos + 4
	for j < limit && isFnLabelByte(src[j]) {
		j++
	}
	if j >= limit {
		return nil, 0
	}
	label := src[pos+4 : j]
	if src[j] == ']' {
		if label == "" {
			return nil, 0
		}
		node := p.doc.NewNode(dom.TFnRef, span.New(pos, j+1), &dom.FnRef{Label: label})
		return node, j + 1
	}
	if src[j] != ':' {
		return nil, 0
	}
	depth := 1
	k := j + 1
	for k < limit && depth > 0 && src[k] != '\n' {
		switch src[k] {
		case '[':
			depth++
		case ']':
			depth--
		}
		k++
	}
	if depth != 0 {
		return nil, 0
	}
	node := p.doc.NewNode(dom.TFnRef, span.New(pos, k), &dom.FnRef{Label: label})
	p.parseInline(span.New(j+1, k-1), node)
	return node, k
}

// matchCookie parses statistics cookies '[50%]' and '[1/2]' (the counts
// may be empty, as in '[/]').
func (p *parser) matchCookie(pos, limit int) (*dom.Node, int) {
	src := p.src
	j := pos + 1
	for j < limit && isDigit(src[j]) {
		j++
	}
	if j >= limit {
		return nil, 0
	}
	switch src[j] {
	case '%':
		if j+1 < limit && src[j+1] == ']' {
			return p.cookieNode(pos, j+2), j + 2
		}
	case '/':
		k := j + 1
		for k < limit && isDigit(src[k]) {
			k++
		}
		if k < limit && src[k] == ']' {
			return p.cookieNode(pos, k+1), k + 1
		}
	}
	return nil, 0
}

func (p *parser) cookieNode(pos, end int) *dom.Node {
	value := p.src[pos:end]
	return p.doc.NewNode(dom.TCookie, span.New(pos, end), &dom.Cookie{Value: value})
}

// matchTimestamp wraps a parsed timestamp payload in a TTimestamp node.
func (p *parser) matchTimestamp(pos, limit int) (*dom.Node, int) {
	ts, end, ok := p.matchTimestampValue(pos, limit)
	if !ok {
		return nil, 0
	}
	return p.doc.NewNode(dom.TTimestamp, span.New(pos, end), ts), end
}

// --- macros, snippets, targets ---------------------------------------------

// matchMacros parses '{{{name}}}' and '{{{name(args)}}}'.
func (p *parser) matchMacros(pos, limit int) (*dom.Node, int) {
	src := p.src
	if !strings.HasPrefix(src[pos:limit], "{{{") {
		return nil, 0
	}
	j := pos + 3
	if j >= limit || !isAlpha(src[j]) {
		return nil, 0
	}
	for j < limit && isMacroNameByte(src[j]) {
		j++
	}
	name := src[pos+3 : j]
	if strings.HasPrefix(src[j:limit], "}}}") {
		node := p.doc.NewNode(dom.TMacros, span.New(pos, j+3), &dom.Macros{Name: name})
		return node, j + 3
	}
	if j >= limit || src[j] != '(' {
		return nil, 0
	}
	k := strings.Index(src[j+1:limit], ")}}}")
	if k < 0 || strings.IndexByte(src[j+1:j+1+k], '\n') >= 0 {
		return nil, 0
	}
	args := src[j+1 : j+1+k]
	end := j + 1 + k + 4
	node := p.doc.NewNode(dom.TMacros, span.New(pos, end), &dom.Macros{Name: name, Args: args})
	return node, end
}

// matchSnippet parses export snippets '@@backend:value@@'.
func (p *parser) matchSnippet(pos, limit int) (*dom.Node, int) {
	src := p.src
	if !strings.HasPrefix(src[pos:limit], "@@") {
		return nil, 0
	}
	j := pos + 2
	for j < limit && isSnippetNameByte(src[j]) {
		j++
	}
	if j == pos+2 || j >= limit || src[j] != ':' {
		return nil, 0
	}
	backend := src[pos+2 : j]
	k := strings.Index(src[j+1:limit], "@@")
	if k < 0 || strings.IndexByte(src[j+1:j+1+k], '\n') >= 0 {
		return nil, 0
	}
	value := src[j+1 : j+1+k]
	end := j + 1 + k + 2
	node := p.doc.NewNode(dom.TSnippet, span.New(pos, end), &dom.Snippet{Backend: backend, Value: value})
	return node, end
}

// matchAngle parses '<<<radio target>>>', '<<target>>' and active
// timestamps '<2023-…>'.
func (p *parser) matchAngle(pos, limit int) (*dom.Node, int) {
	src := p.src
	if strings.HasPrefix(src[pos:limit], "<<<") {
		return p.matchTarget(pos, limit, 3, dom.TRadioTarget)
	}
	if strings.HasPrefix(src[pos:limit], "<<") {
		return p.matchTarget(pos, limit, 2, dom.TTarget)
	}
	return p.matchTimestamp(pos, limit)
}

func (p *parser) matchTarget(pos, limit, arity int, typ dom.NodeType) (*dom.Node, int) {
	src := p.src
	j := pos + arity
	for j < limit && src[j] != '<' && src[j] != '>' && src[j] != '\n' {
		j++
	}
	label := src[pos+arity : j]
	if label == "" || label[0] == ' ' || label[len(label)-1] == ' ' {
		return nil, 0
	}
	for i := 0; i < arity; i++ {
		if j+i >= limit || src[j+i] != '>' {
			return nil, 0
		}
	}
	end := j + arity
	node := p.doc.NewNode(typ, span.New(pos, end), &dom.Target{Label: label})
	return node, end
}

// --- emphasis ---------------------------------------------------------------

const preChars = " \t\n-({'\""
const postChars = " \t\n-.,;:!?')}\"["

// matchEmphasis parses the six marker pairs. Bold, italic, underline and
// strike-through contain nested inline objects; code and verbatim are
// leaves holding their content verbatim. The marker must sit on a valid
// boundary and the content may span at most one newline; an unmatched
// marker is plain text.
func (p *parser) matchEmphasis(pos, limit, regionStart int) (*dom.Node, int) {
	src := p.src
	marker := src[pos]
	if pos > regionStart && strings.IndexByte(preChars, src[pos-1]) < 0 {
		return nil, 0
	}
	if pos+1 >= limit || src[pos+1] == ' ' || src[pos+1] == '\t' || src[pos+1] == '\n' ||
		src[pos+1] == marker {
		return nil, 0
	}
	newlines := 0
	j := pos + 1
	for j < limit {
		c := src[j]
		if c == '\n' {
			newlines++
			if newlines > 1 {
				return nil, 0
			}
		}
		if c == marker && src[j-1] != ' ' && src[j-1] != '\t' && src[j-1] != '\n' {
			if j+1 == limit || strings.IndexByte(postChars, src[j+1]) >= 0 {
				return p.emphasisNode(marker, pos, j+1), j + 1
			}
		}
		j++
	}
	return nil, 0
}

func (p *parser) emphasisNode(marker byte, pos, end int) *dom.Node {
	inner := span.New(pos+1, end-1)
	switch marker {
	case '~':
		return p.doc.NewNode(dom.TCode, span.New(pos, end), &dom.Code{Value: inner.Text(p.src)})
	case '=':
		return p.doc.NewNode(dom.TVerbatim, span.New(pos, end), &dom.Verbatim{Value: inner.Text(p.src)})
	}
	var typ dom.NodeType
	switch marker {
	case '*':
		typ = dom.TBold
	case '/':
		typ = dom.TItalic
	case '_':
		typ = dom.TUnderline
	case '+':
		typ = dom.TStrike
	}
	node := p.doc.NewNode(typ, span.New(pos, end), nil)
	p.parseInline(inner, node)
	return node
}

// --- inline babel calls and inline source blocks ---------------------------

// matchInlineBabel parses 'call_name[inside](args)[end]' and
// 'src_lang[options]{body}'. Both must start on a word boundary and fit
// on one line.
func (p *parser) matchInlineBabel(pos, limit, regionStart int) (*dom.Node, int) {
	src := p.src
	if pos > regionStart && isWordByte(src[pos-1]) {
		return nil, 0
	}
	if strings.HasPrefix(src[pos:limit], "call_") {
		return p.matchInlineCall(pos, limit)
	}
	if strings.HasPrefix(src[pos:limit], "src_") {
		return p.matchInlineSrc(pos, limit)
	}
	return nil, 0
}

func (p *parser) matchInlineCall(pos, limit int) (*dom.Node, int) {
	src := p.src
	j := pos + 5
	for j < limit && isBabelNameByte(src[j]) {
		j++
	}
	if j == pos+5 {
		return nil, 0
	}
	data := &dom.InlineCall{Name: src[pos+5 : j]}
	if j < limit && src[j] == '[' {
		k, ok := oneLineUntil(src, j+1, limit, ']')
		if !ok {
			return nil, 0
		}
		data.Inside = src[j+1 : k]
		j = k + 1
	}
	if j >= limit || src[j] != '(' {
		return nil, 0
	}
	k, ok := oneLineUntil(src, j+1, limit, ')')
	if !ok {
		return nil, 0
	}
	data.Args = src[j+1 : k]
	j = k + 1
	if j < limit && src[j] == '[' {
		if k, ok := oneLineUntil(src, j+1, limit, ']'); ok {
			data.End = src[j+1 : k]
			j = k + 1
		}
	}
	return p.doc.NewNode(dom.TInlineCall, span.New(pos, j), data), j
}

func (p *parser) matchInlineSrc(pos, limit int) (*dom.Node, int) {
	src := p.src
	j := pos + 4
	for j < limit && isBabelNameByte(src[j]) {
		j++
	}
	if j == pos+4 {
		return nil, 0
	}
	data := &dom.InlineSrc{Lang: src[pos+4 : j]}
	if j < limit && src[j] == '[' {
		k, ok := oneLineUntil(src, j+1, limit, ']')
		if !ok {
			return nil, 0
		}
		data.Options = src[j+1 : k]
		j = k + 1
	}
	if j >= limit || src[j] != '{' {
		return nil, 0
	}
	k, ok := oneLineUntil(src, j+1, limit, '}')
	if !ok {
		return nil, 0
	}
	data.Body = src[j+1 : k]
	return p.doc.NewNode(dom.TInlineSrc, span.New(pos, k+1), data), k + 1
}

// oneLineUntil finds the next occurrence of cl before a newline.
func oneLineUntil(src string, pos, limit int, cl byte) (int, bool) {
	for i := pos; i < limit; i++ {
		switch src[i] {
		case cl:
			return i, true
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

// --- byte classes -----------------------------------------------------------

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isWordByte(c byte) bool {
	return c == '_' || isAlpha(c) || isDigit(c)
}

func isFnLabelByte(c byte) bool {
	return c == '-' || c == '_' || isAlpha(c) || isDigit(c)
}

func isMacroNameByte(c byte) bool {
	return c == '-' || c == '_' || isAlpha(c) || isDigit(c)
}

func isSnippetNameByte(c byte) bool {
	return c == '-' || isAlpha(c) || isDigit(c)
}

func isBabelNameByte(c byte) bool {
	return c == '-' || c == '_' || isAlpha(c) || isDigit(c)
}
