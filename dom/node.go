/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/orgdom/core/span"
	"golang.org/x/text/unicode/norm"
)

// NodeType tags the variant of a node.
type NodeType int8

// Node types, block-level first, then inline objects.
const (
	NoType NodeType = iota
	TDocument
	TSection
	THeadline
	TTitle
	TParagraph
	TList
	TListItem
	TTable
	TTableRow
	TTableCell
	TBlock
	TDynBlock
	TDrawer
	TKeyword
	TBabelCall
	TFnDef
	TRule
	TComment
	TFixedWidth
	TClock
	TPlanning
	TText
	TBold
	TItalic
	TUnderline
	TStrike
	TCode
	TVerbatim
	TLink
	TFnRef
	TMacros
	TSnippet
	TTarget
	TRadioTarget
	TCookie
	TInlineCall
	TInlineSrc
	TTimestamp
)

var nodeTypeNames = [...]string{
	NoType:       "none",
	TDocument:    "document",
	TSection:     "section",
	THeadline:    "headline",
	TTitle:       "title",
	TParagraph:   "paragraph",
	TList:        "list",
	TListItem:    "list_item",
	TTable:       "table",
	TTableRow:    "table_row",
	TTableCell:   "table_cell",
	TBlock:       "block",
	TDynBlock:    "dyn_block",
	TDrawer:      "drawer",
	TKeyword:     "keyword",
	TBabelCall:   "babel_call",
	TFnDef:       "fn_def",
	TRule:        "rule",
	TComment:     "comment",
	TFixedWidth:  "fixed_width",
	TClock:       "clock",
	TPlanning:    "planning",
	TText:        "text",
	TBold:        "bold",
	TItalic:      "italic",
	TUnderline:   "underline",
	TStrike:      "strike",
	TCode:        "code",
	TVerbatim:    "verbatim",
	TLink:        "link",
	TFnRef:       "fn_ref",
	TMacros:      "macros",
	TSnippet:     "snippet",
	TTarget:      "target",
	TRadioTarget: "radio_target",
	TCookie:      "cookie",
	TInlineCall:  "inline_call",
	TInlineSrc:   "inline_src",
	TTimestamp:   "timestamp",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

// IsContainer is true for node types which may hold child nodes.
func (t NodeType) IsContainer() bool {
	switch t {
	case TDocument, TSection, THeadline, TTitle, TParagraph, TList, TListItem,
		TTable, TTableRow, TTableCell, TBlock, TDynBlock, TDrawer, TFnDef,
		TBold, TItalic, TUnderline, TStrike, TLink, TFnRef:
		return true
	}
	return false
}

// Node is one element of the document tree. Nodes are created through
// Document.NewNode and wired with AppendChild; after the parse has
// finished they are treated as read-only.
type Node struct {
	typ      NodeType
	sp       span.Span
	doc      *Document
	parent   *Node
	children []*Node
	data     interface{}
}

// Type returns the variant tag of the node.
func (n *Node) Type() NodeType {
	return n.typ
}

// Span returns the byte range of the source text this node was parsed from.
func (n *Node) Span() span.Span {
	return n.sp
}

// Parent returns the owning node, or nil for the document root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// ChildCount returns the number of child nodes.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns child number i.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// Data returns the payload of the node: a pointer to the element struct
// matching the node's type (e.g. *Title for TTitle), or nil for types
// without a payload. Clients switch on Type and cast.
func (n *Node) Data() interface{} {
	return n.data
}

// Raw returns the source bytes covered by the node's span.
func (n *Node) Raw() string {
	return n.sp.Text(n.doc.src)
}

// Document returns the document owning this node.
func (n *Node) Document() *Document {
	return n.doc
}

func (n *Node) String() string {
	return fmt.Sprintf("(%s %v)", n.typ, n.sp)
}

// AppendChild attaches c as the last child of n and widens n's span to
// cover c. Nodes have at most one parent, and sibling spans must be
// ascending and disjoint; a violation is a parser bug and panics.
func (n *Node) AppendChild(c *Node) *Node {
	if c.parent != nil {
		panic("dom: node cannot have two parents")
	}
	if c.doc != n.doc {
		panic("dom: node belongs to a different document")
	}
	if last := len(n.children) - 1; last >= 0 {
		if !n.children[last].sp.Precedes(c.sp) {
			panic(fmt.Sprintf("dom: sibling spans out of order: %v before %v",
				n.children[last].sp, c.sp))
		}
	}
	c.parent = n
	n.children = append(n.children, c)
	// widen the ancestor chain: children stay within their parents even
	// when a subtree grows after it was attached
	for a := n; a != nil; a = a.parent {
		a.sp = a.sp.Cover(c.sp)
	}
	return n
}

// Widen extends the node's span to include up to byte offset end, e.g. to
// cover a closing delimiter which is not part of any child. Widening
// propagates to the ancestors.
func (n *Node) Widen(end int) {
	for a := n; a != nil; a = a.parent {
		if end > a.sp.End {
			a.sp.End = end
		}
	}
}

// --- Document --------------------------------------------------------------

// Warning records a non-fatal structural problem encountered during the
// parse. The parser degrades gracefully and continues; warnings let
// clients surface what was reinterpreted.
type Warning struct {
	Span    span.Span
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%v %s", w.Span, w.Message)
}

// Document is the root of a parsed org-mode tree. It owns the source
// text, the node tree, the document-level keywords and the warnings
// recorded during parsing.
type Document struct {
	src      string
	root     *Node
	keywords []Keyword
	warnings []Warning
}

// NewDocument creates an empty document for the given source text, with a
// root node of type TDocument spanning the complete source.
func NewDocument(src string) *Document {
	d := &Document{src: src}
	d.root = &Node{typ: TDocument, sp: span.New(0, len(src)), doc: d}
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// Source returns the source text the document was parsed from.
func (d *Document) Source() string {
	return d.src
}

// NewNode creates a detached node owned by this document.
func (d *Document) NewNode(t NodeType, sp span.Span, data interface{}) *Node {
	if sp.End > len(d.src) {
		panic(fmt.Sprintf("dom: node span %v exceeds source length %d", sp, len(d.src)))
	}
	return &Node{typ: t, sp: sp, doc: d, data: data}
}

// AddKeyword records a document-level '#+KEY: value' keyword.
func (d *Document) AddKeyword(key, value string) {
	d.keywords = append(d.keywords, Keyword{Key: key, Value: value})
}

// Keywords returns all document-level keywords in source order.
func (d *Document) Keywords() []Keyword {
	return d.keywords
}

// Keyword returns the value of the first document keyword with the given
// key (case-insensitive), e.g. the document title for key "TITLE".
func (d *Document) Keyword(key string) (string, bool) {
	for _, kw := range d.keywords {
		if strings.EqualFold(kw.Key, key) {
			return kw.Value, true
		}
	}
	return "", false
}

// Warn records a structural warning.
func (d *Document) Warn(sp span.Span, format string, v ...interface{}) {
	w := Warning{Span: sp, Message: fmt.Sprintf(format, v...)}
	tracer().Infof("dom: %v", w)
	d.warnings = append(d.warnings, w)
}

// Warnings returns the structural warnings recorded during parsing.
func (d *Document) Warnings() []Warning {
	return d.warnings
}

// Target finds the target or radio target node with the given label.
// Labels are compared NFC-normalized, so visually identical labels match
// regardless of their Unicode composition.
func (d *Document) Target(label string) *Node {
	want := norm.NFC.String(label)
	var found *Node
	d.Walk(func(ev Event) bool {
		if found != nil || !ev.Entering {
			return false
		}
		if ev.Node.typ == TTarget || ev.Node.typ == TRadioTarget {
			if t, ok := ev.Node.data.(*Target); ok && norm.NFC.String(t.Label) == want {
				found = ev.Node
				return false
			}
		}
		return true
	})
	return found
}
