package htmlhandler

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cssengine/cssom"
	"cssengine/cssom/compiler"
	"cssengine/istr"
)

// ExtractStyleSheets visits a parsed HTML document's <head> and <body>
// for embedded <style> elements and compiles each into a cssom.Stylesheet,
// adapted from the teacher's douceuradapter.ExtractStyleElements.
func ExtractStyleSheets(doc *html.Node, table istr.Table) []*cssom.Stylesheet {
	head := findElement(atom.Head, doc)
	body := findElement(atom.Body, doc)
	sheets := extractStyles(head, table)
	sheets = append(sheets, extractStyles(body, table)...)
	return sheets
}

func extractStyles(h *html.Node, table istr.Table) []*cssom.Stylesheet {
	var sheets []*cssom.Stylesheet
	if h == nil {
		return sheets
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := compiler.Compile(ch.FirstChild.Data, table)
		if err != nil {
			tracer().Errorf("skipping unparsable <style> element: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

// InlineStyleFor compiles n's style="" attribute, if any, into a
// Stylesheet ready for selection.SelectStyle's inline_style argument.
func InlineStyleFor(n *html.Node, table istr.Table) (*cssom.Stylesheet, bool) {
	if n == nil || n.Type != html.ElementNode {
		return nil, false
	}
	v, ok := attr(n, "style")
	if !ok || v == "" {
		return nil, false
	}
	sheet, err := compiler.CompileInlineStyle(v, table)
	if err != nil {
		tracer().Errorf("skipping unparsable style attribute: %v", err)
		return nil, false
	}
	return sheet, true
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
