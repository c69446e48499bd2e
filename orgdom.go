/*
Package orgdom parses org-mode text into a queryable document tree.

The heavy lifting happens in the sub-packages: package scan tokenizes
line by line, package parse builds the tree, package dom holds the tree
model, package export renders HTML, and package tools answers cheap
metadata queries without building a tree at all. This package only
bundles the common entry points.

	doc := orgdom.Parse("* TODO write docs\nsome text\n")
	fmt.Println(export.HTML(doc))

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package orgdom

import (
	"github.com/npillmayer/orgdom/core/config"
	"github.com/npillmayer/orgdom/dom"
	"github.com/npillmayer/orgdom/parse"
)

// Parse parses org-mode source text with the default configuration.
// It always succeeds: malformed structure degrades to plain text and
// is reported through Document.Warnings.
func Parse(src string) *dom.Document {
	doc, _ := parse.Document(src, config.Default()) // lenient mode cannot fail
	return doc
}

// ParseWith parses org-mode source text with an explicit configuration.
// With cfg.Strict set, unterminated raw constructs abort the parse.
func ParseWith(src string, cfg config.Config) (*dom.Document, error) {
	return parse.Document(src, cfg)
}
