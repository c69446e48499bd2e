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

// parseTable consumes a run of consecutive table rows and rule lines.
func (p *parser) parseTable(s *scan.Scanner, first scan.Token, container *dom.Node) {
	table := p.doc.NewNode(dom.TTable, emptySpanAt(first.Span.Start), nil)
	container.AppendChild(table)
	tok := first
	for {
		p.parseTableRow(tok, table)
		cp := s.Checkpoint()
		if !s.Next() {
			return
		}
		t := s.Token()
		if t.Kind != scan.KTableRow && t.Kind != scan.KTableRule {
			s.SeekTo(cp)
			return
		}
		tok = t
	}
}

// parseTableRow appends one TTableRow. Rule rows ('|---') carry no cells;
// content rows get one TTableCell per '|'-separated segment, trimmed of
// surrounding whitespace and inline-parsed. A trailing all-blank segment
// after the closing '|' is not a cell.
func (p *parser) parseTableRow(tok scan.Token, table *dom.Node) {
	if tok.Kind == scan.KTableRule {
		table.AppendChild(p.doc.NewNode(dom.TTableRow, tok.Span, &dom.TableRow{Rule: true}))
		return
	}
	row := p.doc.NewNode(dom.TTableRow, tok.Span, &dom.TableRow{})
	table.AppendChild(row)
	segs := splitCells(p.src, tok.Value)
	for _, seg := range segs {
		cell := p.doc.NewNode(dom.TTableCell, seg, nil)
		row.AppendChild(cell)
		if !seg.IsEmpty() {
			p.parseInline(seg, cell)
		}
	}
}

// splitCells splits the row content at '|' bytes and trims each segment.
// Empty segments keep an empty span at their trim position, so cell
// positions stay meaningful.
func splitCells(src string, content span.Span) []span.Span {
	var cells []span.Span
	start := content.Start
	flush := func(end int) {
		cs, ce := start, end
		for cs < ce && (src[cs] == ' ' || src[cs] == '\t') {
			cs++
		}
		for ce > cs && (src[ce-1] == ' ' || src[ce-1] == '\t') {
			ce--
		}
		cells = append(cells, span.New(cs, ce))
	}
	for i := content.Start; i < content.End; i++ {
		if src[i] == '|' {
			flush(i)
			start = i + 1
		}
	}
	if tail := src[start:content.End]; strings.TrimSpace(tail) != "" || len(cells) == 0 {
		flush(content.End)
	}
	return cells
}
