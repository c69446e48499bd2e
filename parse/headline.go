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

// parseTitle builds the TTitle node for a headline token: the optional
// workflow keyword, the '[#X]' priority cookie, the trailing ':tag:tag:'
// run, and the inline-parsed title text in between.
func (p *parser) parseTitle(hl scan.Token) *dom.Node {
	src := p.src
	data := &dom.Title{Level: hl.Level}
	node := p.doc.NewNode(dom.TTitle, hl.Span, data)
	vs, ve := hl.Value.Start, hl.Value.End
	if we := wordEnd(src, vs, ve); we > vs {
		word := src[vs:we]
		if ok, done := p.todoKeyword(word); ok {
			data.Todo = word
			data.Done = done
			vs = skipSpace(src, we)
		}
	}
	if vs+4 <= ve && src[vs] == '[' && src[vs+1] == '#' && src[vs+3] == ']' &&
		src[vs+2] >= 'A' && src[vs+2] <= 'Z' {
		data.Priority = src[vs+2]
		vs = skipSpace(src, vs+4)
	}
	ce := ve
	for ce > vs && (src[ce-1] == ' ' || src[ce-1] == '\t') {
		ce--
	}
	if ts, tags, ok := tagRun(src, vs, ce); ok {
		data.Tags = tags
		ce = ts
		for ce > vs && (src[ce-1] == ' ' || src[ce-1] == '\t') {
			ce--
		}
	}
	if ce > vs {
		p.parseInline(span.New(vs, ce), node)
	}
	return node
}

// tagRun matches a trailing ':tag1:tag2:' sequence in [vs,ce). Tags
// consist of word characters plus '@', '#' and '%', and the run must be
// separated from the title text by whitespace (or be the entire text).
func tagRun(src string, vs, ce int) (start int, tags []string, ok bool) {
	if ce <= vs || src[ce-1] != ':' {
		return 0, nil, false
	}
	i := ce - 1
	for i > vs && isTagByte(src[i-1]) {
		i--
	}
	// the run must be ':…:', start at a ':', and be preceded by
	// whitespace unless it is the entire text
	if i == ce-1 || src[i] != ':' {
		return 0, nil, false
	}
	if i > vs && src[i-1] != ' ' && src[i-1] != '\t' {
		return 0, nil, false
	}
	run := src[i:ce] // ':a:b:'
	parts := strings.Split(strings.Trim(run, ":"), ":")
	for _, t := range parts {
		if t == "" {
			return 0, nil, false
		}
		tags = append(tags, t)
	}
	return i, tags, true
}

func isTagByte(c byte) bool {
	return c == '@' || c == '#' || c == '%' || c == '_' || c == ':' ||
		(c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// wordEnd returns the end of the whitespace-delimited word at vs.
func wordEnd(src string, vs, ve int) int {
	i := vs
	for i < ve && src[i] != ' ' && src[i] != '\t' {
		i++
	}
	return i
}

// parsePlanning reads the 'SCHEDULED: … DEADLINE: … CLOSED: …' line
// following a headline. Each key is followed by a timestamp; unknown
// text between entries is skipped.
func (p *parser) parsePlanning(tok scan.Token) *dom.Node {
	src := p.src
	data := &dom.Planning{}
	i, ve := tok.Value.Start, tok.Value.End
	for i < ve {
		var slot **dom.Timestamp
		switch {
		case strings.HasPrefix(src[i:ve], "SCHEDULED:"):
			slot, i = &data.Scheduled, i+len("SCHEDULED:")
		case strings.HasPrefix(src[i:ve], "DEADLINE:"):
			slot, i = &data.Deadline, i+len("DEADLINE:")
		case strings.HasPrefix(src[i:ve], "CLOSED:"):
			slot, i = &data.Closed, i+len("CLOSED:")
		default:
			i++
			continue
		}
		i = skipSpace(src, i)
		if ts, end, ok := p.matchTimestampValue(i, ve); ok {
			*slot = ts
			i = end
		}
	}
	return p.doc.NewNode(dom.TPlanning, tok.Span, data)
}

// parseClock reads a 'CLOCK: [ts]--[ts] => H:MM' line.
func (p *parser) parseClock(tok scan.Token) *dom.Node {
	src := p.src
	data := &dom.Clock{}
	i, ve := tok.Value.Start, tok.Value.End
	if ts, end, ok := p.matchTimestampValue(i, ve); ok {
		data.Timestamp = ts
		i = end
	}
	if arrow := strings.Index(src[i:ve], "=>"); arrow >= 0 {
		data.Duration = strings.TrimSpace(src[i+arrow+2 : ve])
	}
	return p.doc.NewNode(dom.TClock, tok.Span, data)
}
