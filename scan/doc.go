/*
Package scan implements the line-level tokenizer for org-mode input.

The scanner hands out a lazy sequence of tokens, one per source line,
following the iterator contract of the uax segmenters: a call to Next
produces a token or signals the end of input, Token returns it. Tokens
never lose byte offsets: the token spans of a complete scan tile the
input exactly, which is the basis for lossless round-trip rendering.

Scanning is forgiving. A line that merely looks like structural markup
but is malformed is handed out as a text token; deciding whether, say, a
drawer delimiter is valid in its context is the parser's business.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orgdom.scan'.
func tracer() tracing.Trace {
	return tracing.Select("orgdom.scan")
}
