package htmlhandler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cssengine/handler/htmlhandler"
	"cssengine/istr"
)

func elemAtom(a atom.Atom, tag string) *html.Node {
	n := elem(tag, nil)
	n.DataAtom = a
	return n
}

func text(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

func TestExtractStyleSheetsFromHeadAndBody(t *testing.T) {
	table := istr.NewPool()
	doc := elemAtom(atom.Html, "html")
	head := elemAtom(atom.Head, "head")
	body := elemAtom(atom.Body, "body")
	appendChild(doc, head)
	appendChild(doc, body)

	headStyle := elemAtom(atom.Style, "style")
	appendChild(headStyle, text(`p { color: red; }`))
	appendChild(head, headStyle)

	bodyStyle := elemAtom(atom.Style, "style")
	appendChild(bodyStyle, text(`div { color: blue; }`))
	appendChild(body, bodyStyle)

	sheets := htmlhandler.ExtractStyleSheets(doc, table)
	require.Len(t, sheets, 2)
	assert.Len(t, sheets[0].Rules, 1)
	assert.Len(t, sheets[1].Rules, 1)
}

func TestInlineStyleForReadsStyleAttribute(t *testing.T) {
	table := istr.NewPool()
	n := elem("div", map[string]string{"style": "color: red"})
	sheet, ok := htmlhandler.InlineStyleFor(n, table)
	require.True(t, ok)
	assert.True(t, sheet.InlineStyle)
}

func TestInlineStyleForAbsentWithoutAttribute(t *testing.T) {
	table := istr.NewPool()
	n := elem("div", nil)
	_, ok := htmlhandler.InlineStyleFor(n, table)
	assert.False(t, ok)
}
