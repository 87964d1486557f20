package selection

import (
	"cssengine/cssom"
	"cssengine/handler"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/style"
	"cssengine/tree"
)

// InlineStyleLookup resolves a node's style="" attribute, if any, into a
// compiled inline stylesheet (e.g. handler/htmlhandler.InlineStyleFor).
type InlineStyleLookup func(node handler.Node) (*cssom.Stylesheet, bool)

// WalkAndSelectStyles drives SelectStyle and style.Compose over every node
// of a tree.Node[handler.Node] tree built by the caller (see
// handler/htmlhandler for an x/net/html adapter), in top-down order so
// every node's parent already holds its composed, final style by the time
// a child is processed (spec §4.9's "clients then call composer per child
// to finalise inheritance", reusing the model repo's pipelined
// tree.Walker rather than a hand-rolled recursive walk).
func WalkAndSelectStyles(root *tree.Node[handler.Node], ctx *Context, media mediatype.Mask, h handler.Handler, inline InlineStyleLookup) (map[handler.Node]*style.ComputedStyle, error) {
	final := make(map[handler.Node]*style.ComputedStyle)
	var walkErr error

	action := func(n *tree.Node[handler.Node], parentNode *tree.Node[handler.Node], _ int) (*tree.Node[handler.Node], error) {
		if walkErr != nil {
			return n, nil
		}
		var inlineSheet *cssom.Stylesheet
		if inline != nil {
			if sheet, ok := inline(n.Payload); ok {
				inlineSheet = sheet
			}
		}
		partial := style.New()
		if err := ctx.SelectStyle(n.Payload, istr.Handle{}, media, inlineSheet, partial, h); err != nil {
			walkErr = err
			return n, err
		}
		var parentStyle *style.ComputedStyle
		if parentNode != nil {
			parentStyle = final[parentNode.Payload]
		}
		style.Compose(parentStyle, partial, partial)
		final[n.Payload] = partial
		return n, nil
	}

	if _, err := tree.NewWalker(root).TopDown(action).Promise()(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, walkErr
	}
	return final, nil
}
