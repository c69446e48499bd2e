package xpathadapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/orgdom/core/config"
	"github.com/npillmayer/orgdom/dom"
	"github.com/npillmayer/orgdom/parse"
)

const sample = `* one
text with a [[https://example.org][link]]
** two
- item a
- item b
* DONE three
`

func parseSample(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := parse.Document(sample, config.Default())
	require.NoError(t, err)
	return doc
}

func TestQueryByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := parseSample(t)
	headlines, err := Query(doc, "//headline")
	require.NoError(t, err)
	assert.Len(t, headlines, 3)
	items, err := Query(doc, "//list_item")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestQueryByAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := parseSample(t)
	deep, err := Query(doc, "//headline[@level='2']")
	require.NoError(t, err)
	require.Len(t, deep, 1)
	assert.Equal(t, 2, deep[0].Data().(*dom.Headline).Level)
	//
	links, err := Query(doc, "//link[@path='https://example.org']")
	require.NoError(t, err)
	require.Len(t, links, 1)
	//
	done, err := Query(doc, "//title[@todo='DONE']")
	require.NoError(t, err)
	assert.Len(t, done, 1)
}

func TestQueryNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := parseSample(t)
	// the level-2 headline is nested inside the first level-1 headline
	nested, err := Query(doc, "/headline[1]//headline[@level='2']")
	require.NoError(t, err)
	assert.Len(t, nested, 1)
	// lists live under the nested headline's section
	lists, err := Query(doc, "//headline[@level='2']/section/list")
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestQueryTextValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := parseSample(t)
	item, err := QueryOne(doc, "//list_item[contains(., 'item b')]")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, dom.TListItem, item.Type())
}

func TestQueryOneNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := parseSample(t)
	node, err := QueryOne(doc, "//table")
	require.NoError(t, err)
	assert.Nil(t, node)
}

func TestQueryBadExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.dom")
	defer teardown()
	//
	doc := parseSample(t)
	_, err := Query(doc, "//[")
	assert.Error(t, err)
}
