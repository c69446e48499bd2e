/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"io"
	"strings"

	"github.com/npillmayer/orgdom/core"
)

// Render writes the org source of the document to w. For an unmodified
// tree this reproduces the parsed input byte for byte: node spans nest,
// and the bytes between child spans (delimiters, blank lines) are filled
// in from the enclosing node's span.
func (d *Document) Render(w io.Writer) error {
	if err := renderNode(w, d.root); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render document")
	}
	return nil
}

// RenderString renders the document into a string; see Render.
func (d *Document) RenderString() string {
	var sb strings.Builder
	renderNode(&sb, d.root) // strings.Builder never errors
	return sb.String()
}

func renderNode(w io.Writer, n *Node) error {
	src := n.doc.src
	cur := n.sp.Start
	for _, c := range n.children {
		if _, err := io.WriteString(w, src[cur:c.sp.Start]); err != nil {
			return err
		}
		if err := renderNode(w, c); err != nil {
			return err
		}
		cur = c.sp.End
	}
	_, err := io.WriteString(w, src[cur:n.sp.End])
	return err
}
