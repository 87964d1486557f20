package selector_test

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cssengine/cascade"
	"cssengine/cssom"
	"cssengine/cssom/compiler"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/selector"
	"cssengine/style"
)

// crossCheckTree builds the same tree twice — once as the bespoke
// matcher's fakeNode shape, once as an *html.Node tree — so cascadia and
// selector.Match can be run against equivalent structures.
type crossCheckTree struct {
	fake *fakeNode
	html *html.Node
}

func buildCrossCheckTrees() []crossCheckTree {
	mkHTML := func(tag string, classes, id string) *html.Node {
		n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
		if classes != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: classes})
		}
		if id != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
		}
		return n
	}
	linkHTML := func(parent, child *html.Node) {
		child.Parent = parent
		if parent.LastChild != nil {
			parent.LastChild.NextSibling = child
			child.PrevSibling = parent.LastChild
		} else {
			parent.FirstChild = child
		}
		parent.LastChild = child
	}

	var out []crossCheckTree

	rootFake := &fakeNode{name: "div", classes: []string{"container"}}
	rootHTML := mkHTML("div", "container", "")
	out = append(out, crossCheckTree{rootFake, rootHTML})

	h1Fake := &fakeNode{name: "h1", id: "title", parent: rootFake}
	h1HTML := mkHTML("h1", "", "title")
	linkHTML(rootHTML, h1HTML)
	out = append(out, crossCheckTree{h1Fake, h1HTML})

	pFake := &fakeNode{name: "p", classes: []string{"lead", "warn"}, parent: rootFake, prev: h1Fake}
	pHTML := mkHTML("p", "lead warn", "")
	linkHTML(rootHTML, pHTML)
	out = append(out, crossCheckTree{pFake, pHTML})

	spanFake := &fakeNode{name: "span", parent: pFake}
	spanHTML := mkHTML("span", "", "")
	linkHTML(pHTML, spanHTML)
	out = append(out, crossCheckTree{spanFake, spanHTML})

	return out
}

// crossCheckSelectors lists only the CSS-2.1-era selector forms cascadia
// and the bespoke matcher both understand (element, class, id, descendant,
// child) — the matcher's pseudo-classes and attribute operators go beyond
// what this differential check can cover.
var crossCheckSelectors = []string{
	"div", "p", "span", "h1",
	".lead", ".warn", ".container",
	"#title",
	"div p", "div span", "p span",
	"div > h1", "div > p", "p > span",
}

func TestSelectorMatcherAgreesWithCascadia(t *testing.T) {
	trees := buildCrossCheckTrees()
	for _, sel := range crossCheckSelectors {
		cascadiaSel, err := cascadia.Compile(sel)
		require.NoError(t, err, "selector %q must compile under cascadia", sel)

		table := istr.NewPool()
		css := sel + " { color: red; }"
		sheet, err := compiler.Compile(css, table)
		require.NoError(t, err, "selector %q must compile under the bespoke compiler", sel)

		for _, tree := range trees {
			wantMatch := cascadiaSel.Match(tree.html)

			fh := &fakeHandler{table: table}
			cs := style.New()
			var state cascade.StateTable
			require.NoError(t, selector.Match(sheet, cssom.OriginAuthor, mediatype.Screen, fh, tree.fake, istr.Handle{}, cs, &state))
			gotMatch := cs.State(style.PropColor) == style.StateSet

			assert.Equal(t, wantMatch, gotMatch, "selector %q disagreement on node %q", sel, tree.fake.name)
		}
	}
}
