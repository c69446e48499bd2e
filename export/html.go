/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/orgdom/core"
	"github.com/npillmayer/orgdom/dom"
)

// Handler renders single nodes during an HTML export. Start is called
// when the walk enters a node, End when it leaves; container content is
// rendered between the two calls. Custom handlers usually embed
// DefaultHandler and override a few node types.
type Handler interface {
	Start(w io.Writer, n *dom.Node) error
	End(w io.Writer, n *dom.Node) error
}

// HTML renders the document with the default handler.
func HTML(doc *dom.Document) string {
	var sb strings.Builder
	HTMLWith(&sb, doc, DefaultHandler{}) // strings.Builder never errors
	return sb.String()
}

// HTMLTo renders the document to w with the default handler.
func HTMLTo(w io.Writer, doc *dom.Document) error {
	return HTMLWith(w, doc, DefaultHandler{})
}

// HTMLWith renders the document to w using h.
func HTMLWith(w io.Writer, doc *dom.Document, h Handler) error {
	tracer().Debugf("export: rendering document to HTML")
	var err error
	doc.Walk(func(ev dom.Event) bool {
		if err != nil {
			return false
		}
		if ev.Entering {
			err = h.Start(w, ev.Node)
		} else {
			err = h.End(w, ev.Node)
		}
		return err == nil
	})
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "HTML export failed")
	}
	return nil
}

// DefaultHandler renders the HTML element set of the classic org HTML
// export: <main> around the document, <h1>…<h6> for titles, <section>
// for section content, and the usual <b>, <i>, <code> and friends for
// inline markup. Metadata nodes (keywords, planning, clocks, property
// drawers) produce no output.
type DefaultHandler struct{}

func (DefaultHandler) Start(w io.Writer, n *dom.Node) error {
	switch n.Type() {
	case dom.TDocument:
		return emit(w, "<main>")
	case dom.TSection:
		return emit(w, "<section>")
	case dom.TTitle:
		return emitf(w, "<h%d>", headingLevel(n))
	case dom.TParagraph:
		return emit(w, "<p>")
	case dom.TList:
		if n.Data().(*dom.List).Ordered {
			return emit(w, "<ol>")
		}
		return emit(w, "<ul>")
	case dom.TListItem:
		return emit(w, "<li>")
	case dom.TTable:
		return emit(w, "<table>")
	case dom.TTableRow:
		return emit(w, "<tr>")
	case dom.TTableCell:
		return emit(w, "<td>")
	case dom.TBlock:
		return startBlock(w, n)
	case dom.TFnDef:
		return emitf(w, `<div class="footnote-definition"><sup>%s</sup>`,
			html.EscapeString(n.Data().(*dom.FnDef).Label))
	case dom.TRule:
		return emit(w, "<hr>")
	case dom.TFixedWidth:
		return emitf(w, `<pre class="example">%s</pre>`,
			html.EscapeString(n.Data().(*dom.FixedWidth).Value))
	case dom.TText:
		return emit(w, html.EscapeString(n.Raw()))
	case dom.TBold:
		return emit(w, "<b>")
	case dom.TItalic:
		return emit(w, "<i>")
	case dom.TUnderline:
		return emit(w, "<u>")
	case dom.TStrike:
		return emit(w, "<s>")
	case dom.TCode:
		return emitf(w, "<code>%s</code>", html.EscapeString(n.Data().(*dom.Code).Value))
	case dom.TVerbatim:
		return emitf(w, "<code>%s</code>", html.EscapeString(n.Data().(*dom.Verbatim).Value))
	case dom.TLink:
		return startLink(w, n)
	case dom.TFnRef:
		label := n.Data().(*dom.FnRef).Label
		return emitf(w, `<sup><a href="#fn.%s">%s</a></sup>`,
			html.EscapeString(label), html.EscapeString(label))
	case dom.TSnippet:
		if s := n.Data().(*dom.Snippet); strings.EqualFold(s.Backend, "html") {
			return emit(w, s.Value)
		}
	case dom.TTarget:
		return emitf(w, `<span id="%s"></span>`,
			html.EscapeString(n.Data().(*dom.Target).Label))
	case dom.TRadioTarget:
		label := n.Data().(*dom.Target).Label
		return emitf(w, `<span id="%s">%s</span>`,
			html.EscapeString(label), html.EscapeString(label))
	case dom.TCookie:
		return emit(w, html.EscapeString(n.Data().(*dom.Cookie).Value))
	case dom.TTimestamp:
		return emitf(w, `<span class="timestamp">%s</span>`, html.EscapeString(n.Raw()))
	case dom.TInlineSrc:
		s := n.Data().(*dom.InlineSrc)
		return emitf(w, `<code class="src src-%s">%s</code>`,
			html.EscapeString(s.Lang), html.EscapeString(s.Body))
	}
	return nil
}

func (DefaultHandler) End(w io.Writer, n *dom.Node) error {
	switch n.Type() {
	case dom.TDocument:
		return emit(w, "</main>")
	case dom.TSection:
		return emit(w, "</section>")
	case dom.TTitle:
		return emitf(w, "</h%d>", headingLevel(n))
	case dom.TParagraph:
		return emit(w, "</p>")
	case dom.TList:
		if n.Data().(*dom.List).Ordered {
			return emit(w, "</ol>")
		}
		return emit(w, "</ul>")
	case dom.TListItem:
		return emit(w, "</li>")
	case dom.TTable:
		return emit(w, "</table>")
	case dom.TTableRow:
		return emit(w, "</tr>")
	case dom.TTableCell:
		return emit(w, "</td>")
	case dom.TBlock:
		return endBlock(w, n)
	case dom.TFnDef:
		return emit(w, "</div>")
	case dom.TBold:
		return emit(w, "</b>")
	case dom.TItalic:
		return emit(w, "</i>")
	case dom.TUnderline:
		return emit(w, "</u>")
	case dom.TStrike:
		return emit(w, "</s>")
	case dom.TLink:
		return emit(w, "</a>")
	}
	return nil
}

// headingLevel clamps org levels to the six HTML heading elements.
func headingLevel(n *dom.Node) int {
	lvl := n.Data().(*dom.Title).Level
	if lvl > 6 {
		return 6
	}
	if lvl < 1 {
		return 1
	}
	return lvl
}

func startBlock(w io.Writer, n *dom.Node) error {
	b := n.Data().(*dom.Block)
	switch b.Name {
	case "src":
		cls := ""
		if fields := strings.Fields(b.Args); len(fields) > 0 {
			cls = fmt.Sprintf(` class="language-%s"`, html.EscapeString(fields[0]))
		}
		return emitf(w, "<pre><code%s>%s</code></pre>", cls, html.EscapeString(b.Value))
	case "example":
		return emitf(w, `<pre class="example">%s</pre>`, html.EscapeString(b.Value))
	case "export":
		if strings.HasPrefix(strings.ToLower(b.Args), "html") {
			return emit(w, b.Value)
		}
		return nil
	case "comment":
		return nil
	case "quote":
		return emit(w, "<blockquote>")
	case "center":
		return emit(w, `<div class="center">`)
	case "verse":
		return emit(w, `<p class="verse">`)
	}
	return emitf(w, `<div class="%s">`, html.EscapeString(b.Name))
}

func endBlock(w io.Writer, n *dom.Node) error {
	switch n.Data().(*dom.Block).Name {
	case "src", "example", "export", "comment":
		return nil
	case "quote":
		return emit(w, "</blockquote>")
	case "verse":
		return emit(w, "</p>")
	}
	return emit(w, "</div>")
}

func startLink(w io.Writer, n *dom.Node) error {
	l := n.Data().(*dom.Link)
	if err := emitf(w, `<a href="%s">`, html.EscapeString(l.Path)); err != nil {
		return err
	}
	if !l.HasDesc {
		return emit(w, html.EscapeString(l.Path))
	}
	return nil
}

func emit(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func emitf(w io.Writer, format string, v ...interface{}) error {
	_, err := fmt.Fprintf(w, format, v...)
	return err
}
