package dom

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/orgdom/core/span"
)

// buildSample constructs the tree for "hello *world*\n" by hand:
// a paragraph with a text node, a bold node and its inner text.
func buildSample() *Document {
	src := "hello *world*\n"
	doc := NewDocument(src)
	para := doc.NewNode(TParagraph, span.New(0, len(src)), nil)
	doc.Root().AppendChild(para)
	para.AppendChild(doc.NewNode(TText, span.New(0, 6), nil))
	bold := doc.NewNode(TBold, span.New(6, 13), nil)
	para.AppendChild(bold)
	bold.AppendChild(doc.NewNode(TText, span.New(7, 12), nil))
	return doc
}

func TestNodeBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := buildSample()
	root := doc.Root()
	assert.Equal(t, TDocument, root.Type())
	assert.Nil(t, root.Parent())
	para, ok := root.Child(0)
	require.True(t, ok)
	assert.Equal(t, root, para.Parent())
	assert.Equal(t, 2, para.ChildCount())
	bold, _ := para.Child(1)
	assert.Equal(t, "*world*", bold.Raw())
	_, ok = para.Child(2)
	assert.False(t, ok)
}

func TestAppendChildWidensAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := NewDocument("0123456789")
	outer := doc.NewNode(TSection, span.New(0, 0), nil)
	doc.Root().AppendChild(outer)
	inner := doc.NewNode(TParagraph, span.New(0, 2), nil)
	outer.AppendChild(inner)
	assert.Equal(t, span.New(0, 2), outer.Span())
	// growing the inner node later must propagate to the outer one
	inner.AppendChild(doc.NewNode(TText, span.New(2, 7), nil))
	assert.Equal(t, span.New(0, 7), inner.Span())
	assert.Equal(t, span.New(0, 7), outer.Span())
}

func TestAppendChildRejectsSecondParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := NewDocument("abc")
	a := doc.NewNode(TSection, span.New(0, 1), nil)
	b := doc.NewNode(TSection, span.New(1, 2), nil)
	doc.Root().AppendChild(a)
	assert.Panics(t, func() {
		b.AppendChild(a)
	})
}

func TestAppendChildRejectsOutOfOrderSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := NewDocument("abcdef")
	sec := doc.NewNode(TSection, span.New(0, 6), nil)
	doc.Root().AppendChild(sec)
	sec.AppendChild(doc.NewNode(TParagraph, span.New(2, 4), nil))
	assert.Panics(t, func() {
		sec.AppendChild(doc.NewNode(TParagraph, span.New(0, 2), nil))
	})
}

func TestRenderReproducesSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := buildSample()
	assert.Equal(t, "hello *world*\n", doc.RenderString())
}

func TestWalkDeliversEnterAndLeave(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := buildSample()
	enter, leave := 0, 0
	doc.Walk(func(ev Event) bool {
		if ev.Entering {
			enter++
		} else {
			leave++
		}
		return true
	})
	assert.Equal(t, 5, enter) // document, paragraph, text, bold, text
	assert.Equal(t, enter, leave)
	// pruning the paragraph leaves only the document events
	enter = 0
	doc.Walk(func(ev Event) bool {
		if ev.Entering {
			enter++
		}
		return ev.Node.Type() != TParagraph
	})
	assert.Equal(t, 2, enter)
}

func TestFindAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := buildSample()
	texts := doc.FindAll(TText)
	assert.Len(t, texts, 2)
	assert.Len(t, doc.FindAll(TTable), 0)
}

func TestEqualIgnoresSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	a := buildSample()
	b := buildSample()
	assert.True(t, Equal(a.Root(), b.Root()))
	// differing text content breaks the equality
	c := NewDocument("hello *World*\n")
	para := c.NewNode(TParagraph, span.New(0, 14), nil)
	c.Root().AppendChild(para)
	para.AppendChild(c.NewNode(TText, span.New(0, 6), nil))
	bold := c.NewNode(TBold, span.New(6, 13), nil)
	para.AppendChild(bold)
	bold.AppendChild(c.NewNode(TText, span.New(7, 12), nil))
	assert.False(t, Equal(a.Root(), c.Root()))
}

func TestTextCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := buildSample()
	text := doc.Text()
	require.False(t, text.IsVoid())
	assert.Equal(t, "hello world", doc.TextString())
}

func TestKeywordLookupIsCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := NewDocument("")
	doc.AddKeyword("TITLE", "My Doc")
	v, ok := doc.Keyword("title")
	require.True(t, ok)
	assert.Equal(t, "My Doc", v)
	_, ok = doc.Keyword("author")
	assert.False(t, ok)
}

func TestTargetLookupNormalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	// "café" with a combining acute in the document, precomposed in the query
	src := "<<café>>"
	doc := NewDocument(src)
	para := doc.NewNode(TParagraph, span.New(0, len(src)), nil)
	doc.Root().AppendChild(para)
	para.AppendChild(doc.NewNode(TTarget, span.New(0, len(src)),
		&Target{Label: "café"}))
	found := doc.Target("café")
	require.NotNil(t, found)
	assert.Equal(t, TTarget, found.Type())
	assert.Nil(t, doc.Target("other"))
}

func TestJSONShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := buildSample()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &obj))
	assert.Equal(t, "document", obj["type"])
	children := obj["children"].([]interface{})
	para := children[0].(map[string]interface{})
	assert.Equal(t, "paragraph", para["type"])
	text := para["children"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "text", text["type"])
	assert.Equal(t, "hello ", text["value"])
}

func TestWarningsAreRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := NewDocument("x")
	assert.Empty(t, doc.Warnings())
	doc.Warn(span.New(0, 1), "drawer :%s: is never closed", "LOGBOOK")
	require.Len(t, doc.Warnings(), 1)
	assert.Contains(t, doc.Warnings()[0].Message, "LOGBOOK")
}
