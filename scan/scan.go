/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"strings"

	"github.com/npillmayer/orgdom/core/span"
)

// Scanner produces a lazy token sequence from org-mode source text.
// Clients call Next until it returns false and read the current token
// with Token.
//
// A Scanner holds no global state; concurrent parses each own their
// scanner. Scanning a region of a larger source (NewRange) keeps all
// spans absolute with respect to the full source text.
type Scanner struct {
	src   string
	from  int // first byte of the scan region
	limit int // one past the last byte of the scan region
	pos   int // start of the next unread line
	tok   Token
}

// New creates a scanner for the complete source text.
func New(src string) *Scanner {
	return NewRange(src, 0, len(src))
}

// NewRange creates a scanner for the region [from,to) of src. Token spans
// are absolute, i.e. they index into src, not into the region.
func NewRange(src string, from, to int) *Scanner {
	if from < 0 || to < from || to > len(src) {
		panic("scan: scan region outside of source text")
	}
	return &Scanner{src: src, from: from, limit: to, pos: from}
}

// Source returns the full source text the scanner operates on.
func (s *Scanner) Source() string {
	return s.src
}

// Checkpoint returns the current scan position. The position is a plain
// byte offset; restarting from a checkpoint re-lexes from there (there is
// no incremental state to restore).
func (s *Scanner) Checkpoint() int {
	return s.pos
}

// SeekTo moves the scan position to pos, which must be a position
// previously obtained from Checkpoint, or the start of the region.
func (s *Scanner) SeekTo(pos int) {
	if pos < s.from || pos > s.limit {
		panic("scan: seek position outside of scan region")
	}
	s.pos = pos
}

// Token returns the token produced by the last successful call to Next.
func (s *Scanner) Token() Token {
	return s.tok
}

// Next advances the scanner by one line. It returns false at the end of
// the scan region.
func (s *Scanner) Next() bool {
	if s.pos >= s.limit {
		return false
	}
	ls := s.pos
	se := s.limit // span end, including newline
	le := s.limit // content end, excluding newline
	if nl := strings.IndexByte(s.src[ls:s.limit], '\n'); nl >= 0 {
		le = ls + nl
		se = le + 1
	}
	s.pos = se
	s.tok = s.classify(ls, le, se)
	tracer().Debugf("scan: %v", s.tok)
	return true
}

// classify decides the token kind for the line spanning [ls,se), with
// content (no newline) in [ls,le).
func (s *Scanner) classify(ls, le, se int) Token {
	tok := Token{Kind: KText, Span: span.New(ls, se)}
	line := s.src[ls:le]
	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	tok.Indent = indent
	rest := line[indent:]
	base := ls + indent
	if rest == "" {
		tok.Kind = KBlank
		return tok
	}
	switch rest[0] {
	case '*':
		if indent == 0 {
			if lvl, body, ok := headline(rest); ok {
				tok.Kind = KHeadline
				tok.Level = lvl
				tok.Value = span.New(base+body, le)
				return tok
			}
			return tok // '*bold* …' and the like
		}
		// indented star: list bullet candidate
	case '#':
		return s.classifyHash(tok, rest, base, le)
	case ':':
		return s.classifyColon(tok, rest, base, le)
	case '|':
		if len(rest) > 1 && rest[1] == '-' {
			tok.Kind = KTableRule
		} else {
			tok.Kind = KTableRow
			tok.Value = span.New(base+1, le)
		}
		return tok
	case '-':
		if isRule(rest) {
			tok.Kind = KRule
			return tok
		}
	case '[':
		if indent == 0 {
			if lbl, body, ok := fnDef(rest); ok {
				tok.Kind = KFnDef
				tok.Key = span.New(base+4, base+4+lbl)
				tok.Value = span.New(base+body, le)
				return tok
			}
		}
	}
	if mark, body, ordered, ok := bullet(rest, indent); ok {
		tok.Kind = KListBullet
		tok.Ordered = ordered
		tok.Key = span.New(base, base+mark)
		tok.Value = span.New(base+body, le)
		return tok
	}
	if hasAnyPrefix(rest, "SCHEDULED:", "DEADLINE:", "CLOSED:") {
		tok.Kind = KPlanning
		tok.Value = span.New(base, le)
		return tok
	}
	if strings.HasPrefix(rest, "CLOCK:") {
		tok.Kind = KClock
		tok.Value = span.New(skipSpace(s.src, base+6), le)
		return tok
	}
	return tok
}

// classifyHash handles '#+…' keyword lines and '# ' comments.
func (s *Scanner) classifyHash(tok Token, rest string, base, le int) Token {
	if len(rest) == 1 || rest[1] == ' ' || rest[1] == '\t' {
		tok.Kind = KComment
		body := base + 1
		if len(rest) > 1 {
			body++
		}
		tok.Value = span.New(body, le)
		return tok
	}
	if rest[1] != '+' {
		return tok
	}
	after := rest[2:]
	ab := base + 2 // absolute offset of after
	switch {
	case foldPrefix(after, "BEGIN_"):
		name := wordEnd(after, 6)
		if name > 6 {
			tok.Kind = KBlockBegin
			tok.Key = span.New(ab+6, ab+name)
			tok.Value = span.New(skipSpace(s.src, ab+name), le)
			return tok
		}
	case foldPrefix(after, "END_"):
		name := wordEnd(after, 4)
		if name > 4 {
			tok.Kind = KBlockEnd
			tok.Key = span.New(ab+4, ab+name)
			return tok
		}
	case foldPrefix(after, "BEGIN:"):
		name := strings.TrimRight(after[6:], " \t")
		if name != "" {
			rel := 6 + countSpace(after[6:])
			tok.Kind = KDynBegin
			tok.Key = span.New(ab+rel, ab+wordEnd(after, rel))
			tok.Value = span.New(skipSpace(s.src, ab+wordEnd(after, rel)), le)
			return tok
		}
	case strings.EqualFold(strings.TrimRight(after, " \t"), "END:"),
		strings.EqualFold(strings.TrimRight(after, " \t"), "END"):
		tok.Kind = KDynEnd
		return tok
	case foldPrefix(after, "CALL:"):
		tok.Kind = KBabelCall
		tok.Value = span.New(skipSpace(s.src, ab+5), le)
		return tok
	}
	// generic '#+KEY: value'
	if colon := strings.IndexByte(after, ':'); colon > 0 {
		key := after[:colon]
		if strings.IndexAny(key, " \t") < 0 {
			tok.Kind = KKeyword
			tok.Key = span.New(ab, ab+colon)
			tok.Value = span.New(skipSpace(s.src, ab+colon+1), le)
			return tok
		}
	}
	return tok
}

// classifyColon handles fixed-width lines and drawer delimiters.
func (s *Scanner) classifyColon(tok Token, rest string, base, le int) Token {
	if len(rest) == 1 || rest[1] == ' ' || rest[1] == '\t' {
		tok.Kind = KFixedWidth
		body := base + 1
		if len(rest) > 1 {
			body++
		}
		tok.Value = span.New(body, le)
		return tok
	}
	i := 1
	for i < len(rest) && isDrawerNameByte(rest[i]) {
		i++
	}
	if i > 1 && i < len(rest) && rest[i] == ':' && strings.TrimRight(rest[i+1:], " \t") == "" {
		name := rest[1:i]
		if strings.EqualFold(name, "END") {
			tok.Kind = KDrawerEnd
		} else {
			tok.Kind = KDrawerBegin
			tok.Key = span.New(base+1, base+i)
		}
		return tok
	}
	return tok
}

// --- line matching helpers -------------------------------------------------

func headline(rest string) (level, body int, ok bool) {
	i := 0
	for i < len(rest) && rest[i] == '*' {
		i++
	}
	if i == len(rest) {
		return i, i, true // bare stars, empty title
	}
	if rest[i] == ' ' || rest[i] == '\t' {
		return i, i + 1, true
	}
	return 0, 0, false
}

func isRule(rest string) bool {
	if len(rest) < 5 {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] != '-' {
			return false
		}
	}
	return true
}

// bullet matches unordered ('-', '+', indented '*') and ordered ('1.',
// '23)') list markers. It reports the marker length and the offset of the
// item text.
func bullet(rest string, indent int) (mark, body int, ordered, ok bool) {
	c := rest[0]
	if c == '-' || c == '+' || (c == '*' && indent > 0) {
		if len(rest) == 1 {
			return 1, 1, false, true
		}
		if rest[1] == ' ' || rest[1] == '\t' {
			return 1, 2 + countSpace(rest[2:]), false, true
		}
		return 0, 0, false, false
	}
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(rest) || (rest[i] != '.' && rest[i] != ')') {
		return 0, 0, false, false
	}
	if i+1 == len(rest) {
		return i + 1, i + 1, true, true
	}
	if rest[i+1] == ' ' || rest[i+1] == '\t' {
		return i + 1, i + 2 + countSpace(rest[i+2:]), true, true
	}
	return 0, 0, false, false
}

func fnDef(rest string) (labelLen, body int, ok bool) {
	if !strings.HasPrefix(rest, "[fn:") {
		return 0, 0, false
	}
	cl := strings.IndexByte(rest, ']')
	if cl < 5 { // needs at least one label byte after '[fn:'
		return 0, 0, false
	}
	label := rest[4:cl]
	for i := 0; i < len(label); i++ {
		if !isLabelByte(label[i]) {
			return 0, 0, false
		}
	}
	body = cl + 1
	for body < len(rest) && (rest[body] == ' ' || rest[body] == '\t') {
		body++
	}
	return len(label), body, true
}

func isLabelByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDrawerNameByte(c byte) bool {
	return isLabelByte(c)
}

// wordEnd returns the end offset of the word starting at offset i of s
// (delimited by space, tab or end of string).
func wordEnd(s string, i int) int {
	for i < len(s) && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	return i
}

// skipSpace advances pos over spaces and tabs in src.
func skipSpace(src string, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t') {
		pos++
	}
	return pos
}

func countSpace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func foldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
