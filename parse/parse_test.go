package parse

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/orgdom/core"
	"github.com/npillmayer/orgdom/core/config"
	"github.com/npillmayer/orgdom/dom"
)

func parseDoc(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := Document(src, config.Default())
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

// child fetches a child node or fails the test.
func child(t *testing.T, n *dom.Node, i int) *dom.Node {
	t.Helper()
	c, ok := n.Child(i)
	require.True(t, ok, "node %v has no child %d", n, i)
	return c
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "")
	assert.Equal(t, 0, doc.Root().ChildCount())
}

func TestParseHeadlineWithSection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "* heading\n  text\n")
	root := doc.Root()
	require.Equal(t, 1, root.ChildCount())
	hl := child(t, root, 0)
	assert.Equal(t, dom.THeadline, hl.Type())
	title := child(t, hl, 0)
	assert.Equal(t, dom.TTitle, title.Type())
	sec := child(t, hl, 1)
	assert.Equal(t, dom.TSection, sec.Type())
	para := child(t, sec, 0)
	assert.Equal(t, dom.TParagraph, para.Type())
}

func TestParseHeadlineNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "* a\n** b\n* c\n")
	root := doc.Root()
	require.Equal(t, 2, root.ChildCount())
	a := child(t, root, 0)
	require.Equal(t, 2, a.ChildCount()) // title + nested headline
	b := child(t, a, 1)
	assert.Equal(t, dom.THeadline, b.Type())
	assert.Equal(t, 2, b.Data().(*dom.Headline).Level)
	c := child(t, root, 1)
	assert.Equal(t, 1, c.Data().(*dom.Headline).Level)
}

func TestParseSkippedLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	// '***' after '*' nests below it; a following '**' closes the deeper
	// headline but stays below the '*'
	doc := parseDoc(t, "* a\n*** deep\n** mid\n")
	a := child(t, doc.Root(), 0)
	deep := child(t, a, 1)
	assert.Equal(t, 3, deep.Data().(*dom.Headline).Level)
	mid := child(t, a, 2)
	assert.Equal(t, 2, mid.Data().(*dom.Headline).Level)
}

func TestParseTitleParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "** TODO [#A] Fix the bug :work:urgent:\n")
	hl := child(t, doc.Root(), 0)
	title := child(t, hl, 0).Data().(*dom.Title)
	assert.Equal(t, "TODO", title.Todo)
	assert.False(t, title.Done)
	assert.Equal(t, byte('A'), title.Priority)
	assert.Equal(t, []string{"work", "urgent"}, title.Tags)
}

func TestParseDoneKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "* DONE all good\n")
	title := child(t, child(t, doc.Root(), 0), 0).Data().(*dom.Title)
	assert.Equal(t, "DONE", title.Todo)
	assert.True(t, title.Done)
}

func TestParseCustomTodoKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	cfg := config.Config{
		TodoKeywords: []string{"NEXT", "WAITING"},
		DoneKeywords: []string{"CANCELLED"},
	}
	doc, err := Document("* NEXT call\n* CANCELLED meh\n* TODO not a keyword here\n", cfg)
	require.NoError(t, err)
	t1 := child(t, child(t, doc.Root(), 0), 0).Data().(*dom.Title)
	assert.Equal(t, "NEXT", t1.Todo)
	t2 := child(t, child(t, doc.Root(), 1), 0).Data().(*dom.Title)
	assert.True(t, t2.Done)
	t3 := child(t, child(t, doc.Root(), 2), 0).Data().(*dom.Title)
	assert.Equal(t, "", t3.Todo)
}

func TestParsePlanningAndProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := "* task\nSCHEDULED: <2023-04-01 Sat> DEADLINE: <2023-04-03>\n" +
		":PROPERTIES:\n:Effort: 2h\n:END:\n"
	doc := parseDoc(t, src)
	sec := child(t, child(t, doc.Root(), 0), 1)
	planning := child(t, sec, 0)
	require.Equal(t, dom.TPlanning, planning.Type())
	pl := planning.Data().(*dom.Planning)
	require.NotNil(t, pl.Scheduled)
	assert.Equal(t, 2023, pl.Scheduled.Start.Year)
	assert.Equal(t, "Sat", pl.Scheduled.Start.Dayname)
	require.NotNil(t, pl.Deadline)
	assert.Equal(t, 3, pl.Deadline.Start.Day)
	assert.Nil(t, pl.Closed)
	drawer := child(t, sec, 1)
	require.Equal(t, dom.TDrawer, drawer.Type())
	dr := drawer.Data().(*dom.Drawer)
	assert.True(t, dr.IsPropertyDrawer())
	assert.Equal(t, "2h", dr.Properties["Effort"])
}

func TestParsePlanningOnlyAfterHeadline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "SCHEDULED: <2023-04-01>\n")
	para := child(t, doc.Root(), 0)
	sec := para
	if sec.Type() == dom.TSection {
		para = child(t, sec, 0)
	}
	assert.Equal(t, dom.TParagraph, para.Type())
}

func TestParseRawBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := "#+BEGIN_SRC go\nfunc main() {}\n#+END_SRC\n"
	doc := parseDoc(t, src)
	block := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TBlock, block.Type())
	b := block.Data().(*dom.Block)
	assert.Equal(t, "src", b.Name)
	assert.Equal(t, "go", b.Args)
	assert.Equal(t, "func main() {}\n", b.Value)
	assert.Equal(t, 0, block.ChildCount())
}

func TestParseElementBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := "#+BEGIN_QUOTE\nwise words\n#+END_QUOTE\n"
	doc := parseDoc(t, src)
	block := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TBlock, block.Type())
	para := child(t, block, 0)
	assert.Equal(t, dom.TParagraph, para.Type())
	assert.Equal(t, src, doc.Root().Raw())
}

func TestParseUnclosedBlockDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "#+BEGIN_SRC go\nno end in sight\n")
	sec := child(t, doc.Root(), 0)
	para := child(t, sec, 0)
	assert.Equal(t, dom.TParagraph, para.Type())
	assert.NotEmpty(t, doc.Warnings())
}

func TestParseBlockStopsAtHeadline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	// the quote block never closes before the next headline, so the
	// '#+BEGIN_QUOTE' line is plain text and the headline stays a headline
	src := "#+BEGIN_QUOTE\n* heading\n#+END_QUOTE\n"
	doc := parseDoc(t, src)
	require.Len(t, doc.FindAll(dom.THeadline), 1)
	assert.Empty(t, doc.FindAll(dom.TBlock))
	assert.NotEmpty(t, doc.Warnings())
	assert.Equal(t, src, doc.RenderString())
}

func TestParseRawBlockKeepsStarLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "#+BEGIN_EXAMPLE\n* not a heading\n#+END_EXAMPLE\n")
	block := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TBlock, block.Type())
	assert.Equal(t, "* not a heading\n", block.Data().(*dom.Block).Value)
	assert.Empty(t, doc.FindAll(dom.THeadline))
}

func TestParseUnclosedBlockStrict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	cfg := config.Default()
	cfg.Strict = true
	_, err := Document("#+BEGIN_SRC\n", cfg)
	require.Error(t, err)
	assert.Equal(t, core.ELEX, core.Code(err))
}

func TestParseDynBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := "#+BEGIN: clocktable :maxlevel 2\ncontent\n#+END:\n"
	doc := parseDoc(t, src)
	dyn := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TDynBlock, dyn.Type())
	d := dyn.Data().(*dom.DynBlock)
	assert.Equal(t, "clocktable", d.Name)
	assert.Equal(t, ":maxlevel 2", d.Args)
}

func TestParseDrawer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := ":LOGBOOK:\nsome note\n:END:\n"
	doc := parseDoc(t, src)
	drawer := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TDrawer, drawer.Type())
	dr := drawer.Data().(*dom.Drawer)
	assert.Equal(t, "LOGBOOK", dr.Name)
	assert.False(t, dr.IsPropertyDrawer())
	assert.Equal(t, dom.TParagraph, child(t, drawer, 0).Type())
}

func TestParseDrawerStopsAtHeadline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	// the drawer never closes before the next headline, so the ':DRAWER:'
	// line is plain text
	doc := parseDoc(t, ":DRAWER:\ntext\n* heading\n:END:\n")
	sec := child(t, doc.Root(), 0)
	assert.Equal(t, dom.TParagraph, child(t, sec, 0).Type())
	assert.Equal(t, dom.THeadline, child(t, doc.Root(), 1).Type())
	assert.NotEmpty(t, doc.Warnings())
}

func TestParseKeywordsCollected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "#+TITLE: My Doc\n#+AUTHOR: me\n")
	title, ok := doc.Keyword("title")
	require.True(t, ok)
	assert.Equal(t, "My Doc", title)
	assert.Len(t, doc.Keywords(), 2)
}

func TestParseList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "- a\n- b\n")
	list := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TList, list.Type())
	assert.False(t, list.Data().(*dom.List).Ordered)
	require.Equal(t, 2, list.ChildCount())
	item := child(t, list, 0)
	assert.Equal(t, dom.TListItem, item.Type())
	assert.Equal(t, "-", item.Data().(*dom.ListItem).Bullet)
}

func TestParseNestedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "- a\n  - b\n")
	outer := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TList, outer.Type())
	require.Equal(t, 1, outer.ChildCount())
	itemA := child(t, outer, 0)
	// the item holds its own text and the nested list
	require.Equal(t, 2, itemA.ChildCount())
	inner := child(t, itemA, 1)
	require.Equal(t, dom.TList, inner.Type())
	itemB := child(t, inner, 0)
	para := child(t, itemB, 0)
	text := child(t, para, 0)
	assert.Equal(t, "b", text.Raw())
}

func TestParseOrderedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "1. one\n2. two\n")
	list := child(t, child(t, doc.Root(), 0), 0)
	assert.True(t, list.Data().(*dom.List).Ordered)
	assert.Equal(t, 2, list.ChildCount())
}

func TestParseListCheckboxAndTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "- [X] done thing\n- term :: definition\n")
	list := child(t, child(t, doc.Root(), 0), 0)
	first := child(t, list, 0).Data().(*dom.ListItem)
	assert.Equal(t, byte('X'), first.Checkbox)
	second := child(t, list, 1).Data().(*dom.ListItem)
	assert.Equal(t, "term", second.Tag)
}

func TestParseListEndsOnDedent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "- a\nafter\n")
	sec := child(t, doc.Root(), 0)
	require.Equal(t, 2, sec.ChildCount())
	assert.Equal(t, dom.TList, child(t, sec, 0).Type())
	assert.Equal(t, dom.TParagraph, child(t, sec, 1).Type())
}

func TestParseTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "| a | b |\n|---+---|\n| 1 | 2 |\n")
	table := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TTable, table.Type())
	require.Equal(t, 3, table.ChildCount())
	head := child(t, table, 0)
	require.Equal(t, 2, head.ChildCount())
	cell := child(t, head, 0)
	assert.Equal(t, dom.TTableCell, cell.Type())
	assert.Equal(t, "a", cell.Raw())
	rule := child(t, table, 1)
	assert.True(t, rule.Data().(*dom.TableRow).Rule)
	assert.Equal(t, 0, rule.ChildCount())
}

func TestParseFootnoteDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "[fn:1] the definition\n")
	fd := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TFnDef, fd.Type())
	assert.Equal(t, "1", fd.Data().(*dom.FnDef).Label)
	assert.Equal(t, "the definition", child(t, fd, 0).Raw())
}

func TestParseCommentAndFixedWidthRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "# one\n# two\n: fixed\n")
	sec := child(t, doc.Root(), 0)
	require.Equal(t, 2, sec.ChildCount())
	comment := child(t, sec, 0)
	require.Equal(t, dom.TComment, comment.Type())
	assert.Equal(t, "one\ntwo", comment.Data().(*dom.Comment).Value)
	fixed := child(t, sec, 1)
	require.Equal(t, dom.TFixedWidth, fixed.Type())
	assert.Equal(t, "fixed", fixed.Data().(*dom.FixedWidth).Value)
}

func TestParseClock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	doc := parseDoc(t, "CLOCK: [2023-04-01 Sat 09:00]--[2023-04-01 Sat 10:30] =>  1:30\n")
	clock := child(t, child(t, doc.Root(), 0), 0)
	require.Equal(t, dom.TClock, clock.Type())
	c := clock.Data().(*dom.Clock)
	require.NotNil(t, c.Timestamp)
	assert.Equal(t, dom.InactiveRange, c.Timestamp.Kind)
	assert.Equal(t, "1:30", c.Duration)
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	srcs := []string{
		"* heading\n  text\n",
		"- a\n  - b\n",
		"some *bold* and /italic/ text\n\nsecond paragraph\n",
		"#+BEGIN_SRC go\nx := 1\n#+END_SRC\n",
		"| a | b |\n|---|\n",
		"* TODO [#B] title :t1:t2:\nSCHEDULED: <2023-04-01>\n:PROPERTIES:\n:K: v\n:END:\nbody\n",
		"no trailing newline",
		"#+BEGIN_QUOTE\nunclosed quote\n\ntext after\n",
	}
	for _, src := range srcs {
		doc := parseDoc(t, src)
		assert.Equal(t, src, doc.RenderString(), "round trip failed for %q", src)
	}
}

func TestParseIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := "* a\n** TODO b\n- x\n  - y\n\n| t |\n"
	d1 := parseDoc(t, src)
	d2 := parseDoc(t, d1.RenderString())
	assert.True(t, dom.Equal(d1.Root(), d2.Root()))
}

func TestParseRobustness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	srcs := []string{
		"*", "* ", "#+", "#+BEGIN_", ":: ::", "[fn:", "<<", "{{{", "@@",
		"|\n", "-----x\n", "\n\n\n", "* h\n:PROPERTIES:\n", "]]", "~", "* h\n*",
		"\x00\x01\x02", "héllo wörld 🌍\n",
	}
	for _, src := range srcs {
		doc := parseDoc(t, src)
		assert.Equal(t, src, doc.RenderString(), "round trip failed for %q", src)
	}
}

func TestParseConcurrentDocuments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.parse")
	defer teardown()
	//
	src := "* a\ntext with *markup* and [[link]]\n- item\n"
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := Document(src, config.Default())
			assert.NoError(t, err)
			assert.Equal(t, src, doc.RenderString())
		}()
	}
	wg.Wait()
}
