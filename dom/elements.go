/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"
	"time"
)

// Payload structs for the node variants. A node's Data() returns a
// pointer to the struct matching its type; node types without extra
// information (section, paragraph, rule, emphasis, …) have a nil payload.

// Title is the payload of a TTitle node; the node's children are the
// inline objects of the headline text.
type Title struct {
	Level    int
	Todo     string // workflow keyword, "" if none
	Done     bool   // Todo is one of the done-keywords
	Priority byte   // 'A'…'Z', 0 if none
	Tags     []string
}

// Headline is the payload of a THeadline node.
type Headline struct {
	Level int
}

// List is the payload of a TList node.
type List struct {
	Ordered bool
	Indent  int // indentation of the bullets, in bytes
}

// ListItem is the payload of a TListItem node.
type ListItem struct {
	Bullet   string
	Ordered  bool
	Checkbox byte   // ' ', 'X' or '-'; 0 if the item has no checkbox
	Tag      string // term of a descriptive item ('- term :: …'), "" otherwise
}

// Block is the payload of a TBlock node ('#+BEGIN_name … #+END_name').
// For the raw block types (src, example, export, comment) Value holds the
// verbatim content and the node has no children; all other block types
// contain child elements instead.
type Block struct {
	Name  string // lower-cased block name
	Args  string
	Value string // raw content, "" for element-containing blocks
}

// IsRaw is true for block types whose content is not parsed.
func (b *Block) IsRaw() bool {
	switch b.Name {
	case "src", "example", "export", "comment":
		return true
	}
	return false
}

// DynBlock is the payload of a TDynBlock node ('#+BEGIN: name args').
type DynBlock struct {
	Name string
	Args string
}

// Drawer is the payload of a TDrawer node. For a ':PROPERTIES:' drawer,
// Properties holds the parsed ':KEY: value' pairs.
type Drawer struct {
	Name       string
	Properties map[string]string
}

// IsPropertyDrawer is true for ':PROPERTIES:' drawers.
func (d *Drawer) IsPropertyDrawer() bool {
	return d.Properties != nil
}

// Keyword is the payload of a TKeyword node and the element of the
// document-level keyword list.
type Keyword struct {
	Key   string
	Value string
}

// BabelCall is the payload of a TBabelCall node ('#+CALL: …').
type BabelCall struct {
	Value string
}

// FnDef is the payload of a TFnDef node; the node's children hold the
// definition's inline content.
type FnDef struct {
	Label string
}

// Clock is the payload of a TClock node.
type Clock struct {
	Timestamp *Timestamp
	Duration  string // '=> H:MM' annotation, "" if absent
}

// Planning is the payload of a TPlanning node.
type Planning struct {
	Scheduled *Timestamp
	Deadline  *Timestamp
	Closed    *Timestamp
}

// Comment is the payload of a TComment node; Value is the comment text
// with the '# ' markers stripped, lines joined by newlines.
type Comment struct {
	Value string
}

// FixedWidth is the payload of a TFixedWidth node; Value is the content
// with the ': ' markers stripped, lines joined by newlines.
type FixedWidth struct {
	Value string
}

// TableRow is the payload of a TTableRow node.
type TableRow struct {
	Rule bool // '|---' separator row; rule rows have no cells
}

// --- inline objects --------------------------------------------------------

// Text has no payload struct; a TText node's value is its Raw() source.

// Code is the payload of a TCode ('~…~') node.
type Code struct {
	Value string
}

// Verbatim is the payload of a TVerbatim ('=…=') node.
type Verbatim struct {
	Value string
}

// Link is the payload of a TLink node ('[[path]]' or '[[path][desc]]');
// the description's inline objects are the node's children.
type Link struct {
	Path    string
	HasDesc bool
}

// FnRef is the payload of a TFnRef node ('[fn:label]'); for inline
// definitions ('[fn:label:…]') the definition objects are the children.
type FnRef struct {
	Label string
}

// Macros is the payload of a TMacros node ('{{{name(args)}}}').
type Macros struct {
	Name string
	Args string
}

// Snippet is the payload of a TSnippet node ('@@backend:value@@').
type Snippet struct {
	Backend string
	Value   string
}

// Target is the payload of TTarget ('<<label>>') and TRadioTarget
// ('<<<label>>>') nodes.
type Target struct {
	Label string
}

// Cookie is the payload of a TCookie node ('[1/2]' or '[50%]').
type Cookie struct {
	Value string
}

// InlineCall is the payload of a TInlineCall node
// ('call_name[inside](args)[end]').
type InlineCall struct {
	Name   string
	Inside string
	Args   string
	End    string
}

// InlineSrc is the payload of a TInlineSrc node ('src_lang[options]{body}').
type InlineSrc struct {
	Lang    string
	Options string
	Body    string
}

// --- timestamps ------------------------------------------------------------

// TimestampKind distinguishes the timestamp flavors.
type TimestampKind int8

const (
	Active TimestampKind = iota
	Inactive
	ActiveRange
	InactiveRange
)

// Datetime is a calendar date with an optional time of day, as written in
// an org timestamp. It deliberately is not a time.Time: org dates carry
// no location.
type Datetime struct {
	Year    int
	Month   int
	Day     int
	Dayname string
	HasTime bool
	Hour    int
	Minute  int
}

// Time converts dt to a time.Time in the given location.
func (dt Datetime) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, loc)
}

func (dt Datetime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
	if dt.Dayname != "" {
		s += " " + dt.Dayname
	}
	if dt.HasTime {
		s += fmt.Sprintf(" %02d:%02d", dt.Hour, dt.Minute)
	}
	return s
}

// Timestamp is the payload of a TTimestamp node.
type Timestamp struct {
	Kind     TimestampKind
	Start    Datetime
	End      Datetime // valid for ranges and 'HH:MM-HH:MM' time spans
	Repeater string   // '+1w' and friends, "" if absent
	Delay    string   // '-2d' warning delay, "" if absent
}

// IsActive is true for '<…>' timestamps.
func (ts *Timestamp) IsActive() bool {
	return ts.Kind == Active || ts.Kind == ActiveRange
}
