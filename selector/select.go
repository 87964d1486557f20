package selector

import (
	"cssengine/cascade"
	"cssengine/cssom"
	"cssengine/handler"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/style"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("cssengine.selector")
}

// Match runs spec §4.5: resolve node's name/id/classes, obtain the
// selector hash's per-bucket iterators, merge-walk them in ascending
// (specificity, rule-index) order, and for every chain that matches
// node under active media, apply its rule's bytecode via cascade.Apply.
func Match(sheet *cssom.Stylesheet, origin cssom.Origin, active mediatype.Mask, h handler.Handler, node handler.Node, pseudo istr.Handle, cs *style.ComputedStyle, state *cascade.StateTable) error {
	name, err := h.NodeName(node)
	if err != nil {
		return err
	}
	classes, err := h.NodeClasses(node)
	if err != nil {
		return err
	}
	id, hasID, err := h.NodeID(node)
	if err != nil {
		return err
	}

	iters := buildIterators(sheet.Hash, name, classes, id, hasID)
	if len(iters) == 0 {
		tracer().Debugf("no selector-hash buckets matched node %q", name.String())
		return nil
	}
	for {
		sel, ok := popLowest(iters)
		if !ok {
			break
		}
		rule := sheet.Rules[sel.RuleIndex]
		if !sheet.MediaApplies(rule.Index, active) {
			continue
		}
		matched, err := matchChain(h, sel, node, pseudo)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}
		if err := cascade.Apply(rule.Bytecode, origin, sel.Specificity, cs, state); err != nil {
			return err
		}
	}
	return nil
}

// iterState is one selector-hash bucket's read position; buckets are
// pre-sorted ascending by (Specificity, RuleIndex) via Stylesheet.Finalize.
type iterState struct {
	sels []*cssom.Selector
	pos  int
}

func (it *iterState) peek() (*cssom.Selector, bool) {
	if it.pos >= len(it.sels) {
		return nil, false
	}
	return it.sels[it.pos], true
}

func buildIterators(hash *cssom.SelectorHash, name istr.Handle, classes []istr.Handle, id istr.Handle, hasID bool) []*iterState {
	var iters []*iterState
	if !name.IsNil() {
		if sels := hash.Find(name.String()); len(sels) > 0 {
			iters = append(iters, &iterState{sels: sels})
		}
	}
	if hasID && !id.IsNil() {
		if sels := hash.FindByID(id.String()); len(sels) > 0 {
			iters = append(iters, &iterState{sels: sels})
		}
	}
	for _, c := range classes {
		if sels := hash.FindByClass(c.String()); len(sels) > 0 {
			iters = append(iters, &iterState{sels: sels})
		}
	}
	if sels := hash.FindUniversal(); len(sels) > 0 {
		iters = append(iters, &iterState{sels: sels})
	}
	return iters
}

// popLowest consumes and returns whichever iterator's head carries the
// lowest (Specificity, RuleIndex) pair, the merge step of spec §4.5.
func popLowest(iters []*iterState) (*cssom.Selector, bool) {
	best := -1
	var bestSel *cssom.Selector
	for i, it := range iters {
		cand, ok := it.peek()
		if !ok {
			continue
		}
		if bestSel == nil || cand.Specificity < bestSel.Specificity ||
			(cand.Specificity == bestSel.Specificity && cand.RuleIndex < bestSel.RuleIndex) {
			bestSel = cand
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	iters[best].pos++
	return bestSel, true
}
