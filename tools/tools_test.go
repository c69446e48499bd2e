package tools

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/orgdom/core/config"
)

const sample = `#+TITLE: The Document
#+AUTHOR: someone

* TODO First :a:
text with some words
** Second
[fn:note] a footnote
* DONE Third
`

func TestScanMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.tools")
	defer teardown()
	//
	md := Scan(sample)
	require.Len(t, md.TOC, 3)
	assert.Equal(t, 1, md.TOC[0].Level)
	assert.Equal(t, "TODO", md.TOC[0].Todo)
	assert.Equal(t, "First :a:", md.TOC[0].Title)
	assert.Equal(t, 2, md.TOC[1].Level)
	assert.Equal(t, "Second", md.TOC[1].Title)
	assert.True(t, md.TOC[2].Done)
	//
	require.Len(t, md.Keywords, 2)
	assert.Equal(t, "TITLE", md.Keywords[0].Key)
	assert.Equal(t, "The Document", md.Keywords[0].Value)
	//
	assert.Equal(t, []string{"note"}, md.Footnotes)
}

func TestScanWithCustomKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.tools")
	defer teardown()
	//
	cfg := config.Config{TodoKeywords: []string{"NEXT"}}
	md := ScanWith("* NEXT call back\n* TODO untracked\n", cfg)
	assert.Equal(t, "NEXT", md.TOC[0].Todo)
	assert.Equal(t, "call back", md.TOC[0].Title)
	assert.Equal(t, "", md.TOC[1].Todo) // TODO is not configured here
}

func TestTOCShortcut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.tools")
	defer teardown()
	//
	toc := TOC("* a\nnot a headline\n*** b\n")
	require.Len(t, toc, 2)
	assert.Equal(t, 3, toc[1].Level)
}

func TestStat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.tools")
	defer teardown()
	//
	st := Stat("* one two\nthree four five\n")
	assert.Equal(t, 2, st.Lines)
	assert.Equal(t, 1, st.Headlines)
	assert.Equal(t, 5, st.Words)
}

func TestWordCountUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orgdom.tools")
	defer teardown()
	//
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("--- ... !!!"))
	assert.Equal(t, 3, WordCount("héllo wörld приве́т"))
}
