/*
Package xpathadapter implements an xpath.NodeNavigator for org document
trees.

We use this library for XPath queries:

	github.com/antchfx/xpath

Node tests use the node type names of package dom ('headline',
'paragraph', 'link', …), and payload fields are exposed as attributes,
so queries like

	//headline[@level='2']
	//link[@path='https://example.org']

work as expected. For a description of the navigator methods refer to
the documentation of antchfx/xpath; it is not replicated here.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/cords"

	"github.com/npillmayer/orgdom/dom"
)

// NodeNavigator lets antchfx/xpath walk a dom tree.
type NodeNavigator struct {
	root, current *dom.Node
	attr          int // attributes index, -1 when positioned on the node
}

// NewNavigator creates an xpath.NodeNavigator rooted at node.
func NewNavigator(node *dom.Node) *NodeNavigator {
	return &NodeNavigator{
		current: node,
		root:    node,
		attr:    -1,
	}
}

// CurrentNode extracts the dom node a navigator is positioned on.
func CurrentNode(nav xpath.NodeNavigator) (*dom.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.Type() {
	case dom.TDocument:
		return xpath.RootNode
	case dom.TText:
		return xpath.TextNode
	case dom.TComment:
		return xpath.CommentNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return attributes(nav.current)[nav.attr].key
	}
	return nav.current.Type().String()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	if nav.attr != -1 {
		return attributes(nav.current)[nav.attr].value
	}
	switch nav.current.Type() {
	case dom.TText:
		return nav.current.Raw()
	case dom.TComment:
		return nav.current.Data().(*dom.Comment).Value
	}
	return innerText(nav.current)
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attribute back to its element
		return true
	}
	if nav.current == nav.root || nav.current.Parent() == nil {
		return false
	}
	nav.current = nav.current.Parent()
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= len(attributes(nav.current))-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	child, ok := nav.current.Child(0)
	if ok {
		nav.current = child
	}
	return ok
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 {
		return false
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	child, ok := parent.Child(0)
	if ok {
		nav.current = child
	}
	return ok
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveSibling(-1)
}

func (nav *NodeNavigator) moveSibling(d int) bool {
	if nav.attr != -1 {
		return false
	}
	parent := nav.current.Parent()
	if parent == nil {
		return false
	}
	sibling, ok := parent.Child(childIndex(parent, nav.current) + d)
	if ok {
		nav.current = sibling
	}
	return ok
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

func childIndex(parent, n *dom.Node) int {
	for i := 0; i < parent.ChildCount(); i++ {
		if c, _ := parent.Child(i); c == n {
			return i
		}
	}
	return -1
}

// innerText flattens the text content of a subtree; see dom.Node.Text.
func innerText(n *dom.Node) string {
	text := n.Text()
	if text.IsVoid() {
		return ""
	}
	var sb strings.Builder
	text.EachLeaf(func(leaf cords.Leaf, _ uint64) error {
		sb.WriteString(leaf.String())
		return nil
	})
	return sb.String()
}

// --- attributes ------------------------------------------------------------

type attribute struct {
	key, value string
}

// attributes exposes payload fields of a node as xpath attributes.
// Fields with empty values are left out.
func attributes(n *dom.Node) []attribute {
	var attrs []attribute
	add := func(key, value string) {
		if value != "" {
			attrs = append(attrs, attribute{key, value})
		}
	}
	switch data := n.Data().(type) {
	case *dom.Title:
		add("level", strconv.Itoa(data.Level))
		add("todo", data.Todo)
		if data.Priority != 0 {
			add("priority", string(rune(data.Priority)))
		}
	case *dom.Headline:
		add("level", strconv.Itoa(data.Level))
	case *dom.Keyword:
		add("key", data.Key)
		add("value", data.Value)
	case *dom.Block:
		add("name", data.Name)
		add("args", data.Args)
	case *dom.DynBlock:
		add("name", data.Name)
	case *dom.Drawer:
		add("name", data.Name)
	case *dom.List:
		add("ordered", strconv.FormatBool(data.Ordered))
	case *dom.ListItem:
		add("bullet", data.Bullet)
		add("tag", data.Tag)
	case *dom.Link:
		add("path", data.Path)
	case *dom.Target:
		add("label", data.Label)
	case *dom.FnDef:
		add("label", data.Label)
	case *dom.FnRef:
		add("label", data.Label)
	case *dom.Snippet:
		add("backend", data.Backend)
	case *dom.Macros:
		add("name", data.Name)
	case *dom.InlineSrc:
		add("lang", data.Lang)
	}
	return attrs
}
