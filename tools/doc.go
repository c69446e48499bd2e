/*
Package tools offers cheap single-pass queries over org-mode source
text. None of the functions build a document tree: they drive the
line scanner directly, which makes them suitable for large files where
only the outline or the keywords are of interest.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tools

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orgdom.tools'.
func tracer() tracing.Trace {
	return tracing.Select("orgdom.tools")
}
