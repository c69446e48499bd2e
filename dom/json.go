/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"encoding/json"
)

// MarshalJSON serializes the document tree. The encoding mirrors the
// orgize JSON shape: every node is an object with a "type" tag, optional
// payload fields and a "children" array.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.root)
}

// MarshalJSON serializes the subtree rooted at n.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.jsonObject())
}

func (n *Node) jsonObject() map[string]interface{} {
	obj := map[string]interface{}{
		"type": n.typ.String(),
	}
	switch n.typ {
	case TText:
		obj["value"] = n.Raw()
	case TTitle:
		t := n.data.(*Title)
		obj["level"] = t.Level
		if t.Todo != "" {
			obj["keyword"] = t.Todo
		}
		if t.Priority != 0 {
			obj["priority"] = string(t.Priority)
		}
		if len(t.Tags) > 0 {
			obj["tags"] = t.Tags
		}
	case THeadline:
		obj["level"] = n.data.(*Headline).Level
	case TList:
		obj["ordered"] = n.data.(*List).Ordered
	case TListItem:
		li := n.data.(*ListItem)
		obj["bullet"] = li.Bullet
		if li.Checkbox != 0 {
			obj["checkbox"] = string(li.Checkbox)
		}
		if li.Tag != "" {
			obj["tag"] = li.Tag
		}
	case TBlock:
		b := n.data.(*Block)
		obj["name"] = b.Name
		if b.Args != "" {
			obj["args"] = b.Args
		}
		if b.IsRaw() {
			obj["value"] = b.Value
		}
	case TDynBlock:
		db := n.data.(*DynBlock)
		obj["name"] = db.Name
		if db.Args != "" {
			obj["args"] = db.Args
		}
	case TDrawer:
		dr := n.data.(*Drawer)
		obj["name"] = dr.Name
		if dr.Properties != nil {
			obj["properties"] = dr.Properties
		}
	case TKeyword:
		kw := n.data.(*Keyword)
		obj["key"] = kw.Key
		obj["value"] = kw.Value
	case TBabelCall:
		obj["value"] = n.data.(*BabelCall).Value
	case TFnDef:
		obj["label"] = n.data.(*FnDef).Label
	case TComment:
		obj["value"] = n.data.(*Comment).Value
	case TFixedWidth:
		obj["value"] = n.data.(*FixedWidth).Value
	case TTableRow:
		if n.data.(*TableRow).Rule {
			obj["rule"] = true
		}
	case TCode:
		obj["value"] = n.data.(*Code).Value
	case TVerbatim:
		obj["value"] = n.data.(*Verbatim).Value
	case TLink:
		obj["path"] = n.data.(*Link).Path
	case TFnRef:
		obj["label"] = n.data.(*FnRef).Label
	case TMacros:
		m := n.data.(*Macros)
		obj["name"] = m.Name
		if m.Args != "" {
			obj["args"] = m.Args
		}
	case TSnippet:
		s := n.data.(*Snippet)
		obj["backend"] = s.Backend
		obj["value"] = s.Value
	case TTarget, TRadioTarget:
		obj["label"] = n.data.(*Target).Label
	case TCookie:
		obj["value"] = n.data.(*Cookie).Value
	case TInlineCall:
		c := n.data.(*InlineCall)
		obj["name"] = c.Name
		obj["args"] = c.Args
	case TInlineSrc:
		s := n.data.(*InlineSrc)
		obj["lang"] = s.Lang
		obj["body"] = s.Body
	case TTimestamp:
		ts := n.data.(*Timestamp)
		obj["start"] = ts.Start.String()
		if ts.Kind == ActiveRange || ts.Kind == InactiveRange {
			obj["end"] = ts.End.String()
		}
		obj["active"] = ts.IsActive()
	}
	if len(n.children) > 0 {
		children := make([]map[string]interface{}, len(n.children))
		for i, c := range n.children {
			children[i] = c.jsonObject()
		}
		obj["children"] = children
	}
	return obj
}
