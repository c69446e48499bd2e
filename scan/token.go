/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"fmt"

	"github.com/npillmayer/orgdom/core/span"
)

// Kind classifies a source line.
type Kind int8

// Token kinds produced by the scanner.
const (
	KText Kind = iota // unrecognized content, i.e. paragraph material
	KBlank
	KHeadline   // '*** title'
	KKeyword    // '#+KEY: value'
	KBabelCall  // '#+CALL: …'
	KBlockBegin // '#+BEGIN_name args'
	KBlockEnd   // '#+END_name'
	KDynBegin   // '#+BEGIN: name args'
	KDynEnd     // '#+END:'
	KDrawerBegin
	KDrawerEnd // ':END:'
	KRule      // '-----'
	KComment   // '# …'
	KFixedWidth
	KListBullet // '- ', '+ ', '1. ', indented '* '
	KTableRow   // '| a | b |'
	KTableRule  // '|---+---|'
	KFnDef      // '[fn:label] …'
	KPlanning   // 'SCHEDULED: … DEADLINE: …'
	KClock      // 'CLOCK: …'
)

var kindNames = map[Kind]string{
	KText:        "Text",
	KBlank:       "Blank",
	KHeadline:    "Headline",
	KKeyword:     "Keyword",
	KBabelCall:   "BabelCall",
	KBlockBegin:  "BlockBegin",
	KBlockEnd:    "BlockEnd",
	KDynBegin:    "DynBegin",
	KDynEnd:      "DynEnd",
	KDrawerBegin: "DrawerBegin",
	KDrawerEnd:   "DrawerEnd",
	KRule:        "Rule",
	KComment:     "Comment",
	KFixedWidth:  "FixedWidth",
	KListBullet:  "ListBullet",
	KTableRow:    "TableRow",
	KTableRule:   "TableRule",
	KFnDef:       "FnDef",
	KPlanning:    "Planning",
	KClock:       "Clock",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one classified source line. Tokens are immutable values.
//
// Span always covers the complete line, including the trailing newline
// if the line has one. Key and Value are sub-spans of Span; their
// meaning depends on Kind:
//
//	KHeadline     Value = title text after the stars
//	KKeyword      Key = keyword name, Value = text after the colon
//	KBlockBegin   Key = block name, Value = arguments
//	KBlockEnd     Key = block name
//	KDynBegin     Key = block name, Value = arguments
//	KDrawerBegin  Key = drawer name
//	KFnDef        Key = footnote label, Value = definition text
//	KListBullet   Key = the bullet marker, Value = item text on this line
//	KComment      Value = text after the '#'
//	KFixedWidth   Value = text after the ':'
//	KTableRow     Value = text after the leading '|'
//	KBabelCall, KClock, KPlanning  Value = text after the marker
type Token struct {
	Kind    Kind
	Span    span.Span
	Indent  int  // leading whitespace, in bytes
	Level   int  // KHeadline: star count
	Ordered bool // KListBullet: numbered bullet
	Key     span.Span
	Value   span.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s%v", t.Kind, t.Span)
}
