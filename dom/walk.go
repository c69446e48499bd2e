/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

// Event is delivered to a Visitor during tree traversal. Every node
// appears twice: once entering, once leaving. Non-container nodes still
// produce both events, which keeps exporters free of special cases.
type Event struct {
	Node     *Node
	Entering bool
}

// Visitor is a callback for Walk. Returning false from an entering event
// prunes the node's subtree (no child events, no leaving event); the
// return value of a leaving event is ignored.
type Visitor func(ev Event) bool

// Walk traverses the document tree in pre-order, delivering enter and
// leave events to v.
func (d *Document) Walk(v Visitor) {
	d.root.Walk(v)
}

// Walk traverses the subtree rooted at n in pre-order.
func (n *Node) Walk(v Visitor) {
	if n == nil {
		return
	}
	if !v(Event{Node: n, Entering: true}) {
		return
	}
	for _, c := range n.children {
		c.Walk(v)
	}
	v(Event{Node: n, Entering: false})
}

// FindAll collects all nodes of the given type, in document order.
func (d *Document) FindAll(t NodeType) []*Node {
	return d.root.FindAll(t)
}

// FindAll collects all nodes of the given type in the subtree rooted at
// n, in document order.
func (n *Node) FindAll(t NodeType) []*Node {
	var nodes []*Node
	n.Walk(func(ev Event) bool {
		if ev.Entering && ev.Node.typ == t {
			nodes = append(nodes, ev.Node)
		}
		return true
	})
	return nodes
}

// Equal compares two subtrees structurally: node types, payload values
// and text content must match; spans are ignored. This is the equality
// notion behind the parse∘render idempotence property.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ || len(a.children) != len(b.children) {
		return false
	}
	if !payloadEqual(a, b) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func payloadEqual(a, b *Node) bool {
	switch a.typ {
	case TText:
		return a.Raw() == b.Raw()
	case TTitle:
		x, y := a.data.(*Title), b.data.(*Title)
		if x.Level != y.Level || x.Todo != y.Todo || x.Done != y.Done ||
			x.Priority != y.Priority || len(x.Tags) != len(y.Tags) {
			return false
		}
		for i := range x.Tags {
			if x.Tags[i] != y.Tags[i] {
				return false
			}
		}
		return true
	case THeadline:
		return a.data.(*Headline).Level == b.data.(*Headline).Level
	case TList:
		x, y := a.data.(*List), b.data.(*List)
		return x.Ordered == y.Ordered
	case TListItem:
		x, y := a.data.(*ListItem), b.data.(*ListItem)
		return x.Bullet == y.Bullet && x.Checkbox == y.Checkbox && x.Tag == y.Tag
	case TBlock:
		x, y := a.data.(*Block), b.data.(*Block)
		return x.Name == y.Name && x.Args == y.Args && x.Value == y.Value
	case TDynBlock:
		x, y := a.data.(*DynBlock), b.data.(*DynBlock)
		return x.Name == y.Name && x.Args == y.Args
	case TDrawer:
		return a.data.(*Drawer).Name == b.data.(*Drawer).Name
	case TKeyword:
		x, y := a.data.(*Keyword), b.data.(*Keyword)
		return x.Key == y.Key && x.Value == y.Value
	case TBabelCall:
		return a.data.(*BabelCall).Value == b.data.(*BabelCall).Value
	case TFnDef:
		return a.data.(*FnDef).Label == b.data.(*FnDef).Label
	case TComment:
		return a.data.(*Comment).Value == b.data.(*Comment).Value
	case TFixedWidth:
		return a.data.(*FixedWidth).Value == b.data.(*FixedWidth).Value
	case TTableRow:
		return a.data.(*TableRow).Rule == b.data.(*TableRow).Rule
	case TCode:
		return a.data.(*Code).Value == b.data.(*Code).Value
	case TVerbatim:
		return a.data.(*Verbatim).Value == b.data.(*Verbatim).Value
	case TLink:
		x, y := a.data.(*Link), b.data.(*Link)
		return x.Path == y.Path && x.HasDesc == y.HasDesc
	case TFnRef:
		return a.data.(*FnRef).Label == b.data.(*FnRef).Label
	case TMacros:
		x, y := a.data.(*Macros), b.data.(*Macros)
		return x.Name == y.Name && x.Args == y.Args
	case TSnippet:
		x, y := a.data.(*Snippet), b.data.(*Snippet)
		return x.Backend == y.Backend && x.Value == y.Value
	case TTarget, TRadioTarget:
		return a.data.(*Target).Label == b.data.(*Target).Label
	case TCookie:
		return a.data.(*Cookie).Value == b.data.(*Cookie).Value
	case TInlineCall:
		x, y := a.data.(*InlineCall), b.data.(*InlineCall)
		return *x == *y
	case TInlineSrc:
		x, y := a.data.(*InlineSrc), b.data.(*InlineSrc)
		return *x == *y
	case TTimestamp:
		x, y := a.data.(*Timestamp), b.data.(*Timestamp)
		return *x == *y
	case TClock:
		x, y := a.data.(*Clock), b.data.(*Clock)
		if x.Duration != y.Duration {
			return false
		}
		return timestampEq(x.Timestamp, y.Timestamp)
	case TPlanning:
		x, y := a.data.(*Planning), b.data.(*Planning)
		return timestampEq(x.Scheduled, y.Scheduled) &&
			timestampEq(x.Deadline, y.Deadline) && timestampEq(x.Closed, y.Closed)
	}
	return true
}

func timestampEq(a, b *Timestamp) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
