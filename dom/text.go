/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"strings"

	"github.com/npillmayer/cords"
)

// Text collects the plain text content of the subtree rooted at n as a
// cord. The fragment structure of the cord reflects the inline structure
// of the document: every text, code and verbatim object becomes one leaf.
// Markup delimiters, keywords and raw block content are not part of the
// text content.
func (n *Node) Text() cords.Cord {
	b := cords.NewBuilder()
	n.Walk(func(ev Event) bool {
		if !ev.Entering {
			return false
		}
		switch ev.Node.typ {
		case TText:
			b.Append(&textLeaf{content: ev.Node.Raw()})
		case TCode:
			b.Append(&textLeaf{content: ev.Node.data.(*Code).Value})
		case TVerbatim:
			b.Append(&textLeaf{content: ev.Node.data.(*Verbatim).Value})
		case TFixedWidth:
			b.Append(&textLeaf{content: ev.Node.data.(*FixedWidth).Value})
		}
		return true
	})
	return b.Cord()
}

// Text collects the plain text content of the whole document; see
// Node.Text.
func (d *Document) Text() cords.Cord {
	return d.root.Text()
}

// TextString flattens the document's text content into a string.
func (d *Document) TextString() string {
	text := d.Text()
	if text.IsVoid() {
		return ""
	}
	var sb strings.Builder
	text.EachLeaf(func(leaf cords.Leaf, _ uint64) error {
		sb.WriteString(leaf.String())
		return nil
	})
	return sb.String()
}

// textLeaf is the cord leaf type for document text fragments.
type textLeaf struct {
	content string
}

// Weight of a leaf is its string length in bytes.
func (l *textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l *textLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l *textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return &textLeaf{content: l.content[:i]}, &textLeaf{content: l.content[i:]}
}

// Substring returns a segment of the leaf's text fragment.
func (l *textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = &textLeaf{}
