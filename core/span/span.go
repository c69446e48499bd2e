// Package span implements byte ranges into source text.
//
/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package span

import "fmt"

// Span is a half-open byte range [Start,End) into a source text.
// Every token and every node of the document tree carries a span, mapping
// it back to the exact source bytes it was produced from.
type Span struct {
	Start int
	End   int
}

// New creates a span [from,to). New panics if to < from or from is negative;
// spans are produced by the scanner and the parser only, a degenerate span
// is an internal invariant violation, not a user error.
func New(from, to int) Span {
	if from < 0 || to < from {
		panic(fmt.Sprintf("span: degenerate range [%d,%d)", from, to))
	}
	return Span{Start: from, End: to}
}

// Len returns the number of bytes covered by sp.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// IsEmpty is true for zero-length spans.
func (sp Span) IsEmpty() bool {
	return sp.Start == sp.End
}

// Contains checks whether inner lies completely within sp.
func (sp Span) Contains(inner Span) bool {
	return sp.Start <= inner.Start && inner.End <= sp.End
}

// Precedes checks whether sp ends at or before other's start.
func (sp Span) Precedes(other Span) bool {
	return sp.End <= other.Start
}

// Cover returns the smallest span containing both sp and other.
func (sp Span) Cover(other Span) Span {
	c := sp
	if other.Start < c.Start {
		c.Start = other.Start
	}
	if other.End > c.End {
		c.End = other.End
	}
	return c
}

// Text extracts the bytes covered by sp from src.
// Text panics if sp exceeds src; see New.
func (sp Span) Text(src string) string {
	return src[sp.Start:sp.End]
}

func (sp Span) String() string {
	return fmt.Sprintf("[%d,%d)", sp.Start, sp.End)
}
