/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tools

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"

	"github.com/npillmayer/orgdom/core/config"
	"github.com/npillmayer/orgdom/dom"
	"github.com/npillmayer/orgdom/scan"
)

// Heading is one outline entry found by Scan.
type Heading struct {
	Level int
	Title string // title text, workflow keyword stripped
	Todo  string // workflow keyword, "" if none
	Done  bool
}

// Metadata is the result of a single scan pass: the outline, the
// document keywords and the footnote definition labels, each in source
// order.
type Metadata struct {
	TOC       []Heading
	Keywords  []dom.Keyword
	Footnotes []string
}

// Scan collects document metadata with the default configuration; see
// ScanWith.
func Scan(src string) Metadata {
	return ScanWith(src, config.Default())
}

// ScanWith collects outline, keywords and footnote labels in one pass
// over the source, without building a tree. The configuration supplies
// the workflow keywords to recognize in headlines.
func ScanWith(src string, cfg config.Config) Metadata {
	var md Metadata
	s := scan.New(src)
	for s.Next() {
		tok := s.Token()
		switch tok.Kind {
		case scan.KHeadline:
			md.TOC = append(md.TOC, heading(src, tok, cfg))
		case scan.KKeyword:
			md.Keywords = append(md.Keywords, dom.Keyword{
				Key:   tok.Key.Text(src),
				Value: tok.Value.Text(src),
			})
		case scan.KFnDef:
			md.Footnotes = append(md.Footnotes, tok.Key.Text(src))
		}
	}
	tracer().Debugf("tools: scanned %d headings, %d keywords, %d footnotes",
		len(md.TOC), len(md.Keywords), len(md.Footnotes))
	return md
}

// TOC returns the document outline.
func TOC(src string) []Heading {
	return Scan(src).TOC
}

// Keywords returns the '#+KEY: value' keywords of the document.
func Keywords(src string) []dom.Keyword {
	return Scan(src).Keywords
}

// Footnotes returns the labels of all footnote definitions.
func Footnotes(src string) []string {
	return Scan(src).Footnotes
}

func heading(src string, tok scan.Token, cfg config.Config) Heading {
	h := Heading{Level: tok.Level, Title: tok.Value.Text(src)}
	word, rest, _ := strings.Cut(h.Title, " ")
	for _, kw := range cfg.Todo() {
		if word == kw {
			h.Todo = word
			h.Title = strings.TrimLeft(rest, " \t")
			return h
		}
	}
	for _, kw := range cfg.Done() {
		if word == kw {
			h.Todo = word
			h.Done = true
			h.Title = strings.TrimLeft(rest, " \t")
			return h
		}
	}
	return h
}

// Stats summarizes a source text.
type Stats struct {
	Lines     int
	Headlines int
	Words     int
}

// Stat counts lines, headlines and words. Word boundaries follow
// Unicode segmentation rules (UAX#29), so the count is meaningful for
// non-Latin scripts too.
func Stat(src string) Stats {
	var st Stats
	s := scan.New(src)
	for s.Next() {
		st.Lines++
		if s.Token().Kind == scan.KHeadline {
			st.Headlines++
		}
	}
	st.Words = WordCount(src)
	return st
}

// WordCount counts the words of a text using UAX#29 word segmentation.
// Segments without a letter or digit (whitespace, punctuation) do not
// count.
func WordCount(text string) int {
	wordbreaker := uax29.NewWordBreaker(1)
	words := segment.NewSegmenter(wordbreaker)
	words.BreakOnZero(true, false)
	words.Init(strings.NewReader(text))
	count := 0
	for words.Next() {
		if isWord(words.Text()) {
			count++
		}
	}
	return count
}

func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
