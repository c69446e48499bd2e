/*
Package dom implements the document object model for parsed org-mode text.

A document is a tree of nodes. Each node is a tagged variant: it carries a
NodeType, a payload struct specific to that type, and an ordered child
list. Every node also carries a byte span into the source text; spans of
siblings are disjoint and ascending, and children lie within their parent.
These invariants make the tree lossless: Document.Render reproduces the
original input byte for byte.

Trees are built by package parse and are read-only afterwards. There is no
in-place structural mutation; a changed document is produced by re-parsing
(see the design notes in DESIGN.md).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orgdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("orgdom.dom")
}
