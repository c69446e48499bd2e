/*
Package parse builds org-mode document trees.

The parser is total: any input produces a tree. Malformed structure
(an unclosed '#+BEGIN_…' block, a drawer without ':END:', a stray
emphasis marker) degrades to plain paragraph text, and a warning is
recorded on the document. Only strict mode turns unterminated raw
constructs into errors.

Parsing is single-threaded and synchronous; a parser owns its scanner
and the tree it builds, so separate documents may be parsed concurrently
without coordination.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orgdom.parse'.
func tracer() tracing.Trace {
	return tracing.Select("orgdom.parse")
}
