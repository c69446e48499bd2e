/*
Package export renders parsed org-mode documents into output formats.

Exporters are thin tree walks: the hard part, recognizing structure,
happened during parsing. The HTML exporter follows a handler pattern,
so clients can override the rendering of single node types while
keeping the default for the rest.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package export

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orgdom.export'.
func tracer() tracing.Trace {
	return tracing.Select("orgdom.export")
}
