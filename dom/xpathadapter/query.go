/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"github.com/antchfx/xpath"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/orgdom/core"
	"github.com/npillmayer/orgdom/dom"
)

// tracer traces with key 'orgdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("orgdom.dom")
}

// Query runs an XPath expression against the document and returns the
// matching nodes in document order.
func Query(doc *dom.Document, expr string) ([]*dom.Node, error) {
	tracer().Debugf("xpath: query %q", expr)
	exp, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile XPath expression %q", expr)
	}
	iter := exp.Select(NewNavigator(doc.Root()))
	var nodes []*dom.Node
	for iter.MoveNext() {
		node, err := CurrentNode(iter.Current())
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "XPath iteration failed")
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// QueryOne runs an XPath expression and returns the first match, or nil
// if nothing matches.
func QueryOne(doc *dom.Document, expr string) (*dom.Node, error) {
	nodes, err := Query(doc, expr)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}
