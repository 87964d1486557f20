package cssom

import "sort"

// SelectorHash indexes every selector chain of a Stylesheet by the
// interned name of its rightmost compound's detail set (spec §3): one
// bucket per element name, one per class, one per id, and a universal
// bucket for chains whose rightmost compound has no element/class/id
// detail narrowing it. Within a bucket, chains are kept sorted ascending
// by (Specificity, RuleIndex) so a merge-walk across buckets yields
// matches in non-decreasing cascade order (spec §4.5).
type SelectorHash struct {
	byElement map[string][]*Selector
	byClass   map[string][]*Selector
	byID      map[string][]*Selector
	universal []*Selector
}

func newSelectorHash() *SelectorHash {
	return &SelectorHash{
		byElement: make(map[string][]*Selector),
		byClass:   make(map[string][]*Selector),
		byID:      make(map[string][]*Selector),
	}
}

// Index buckets sel under a single rightmost-compound detail, the one
// that narrows a lookup most (spec §3): id first, then class, then
// element name, falling back to the universal bucket if the rightmost
// compound carries none of those. A chain is filed exactly once, so a
// node matching several of its rightmost detail kinds (e.g. "div.foo"
// against a <div class=foo>) has its bytecode applied only once per
// merge-walk rather than once per matching detail.
func (h *SelectorHash) Index(sel *Selector) {
	cp := sel.Rightmost
	var id, class, element string
	hasID, hasClass, hasElement := false, false, false
	for _, d := range cp.Details {
		switch d.Type {
		case DetailID:
			id, hasID = d.Name.String(), true
		case DetailClass:
			if !hasClass {
				class, hasClass = d.Name.String(), true
			}
		case DetailElement:
			if d.Name.String() != Universal {
				element, hasElement = d.Name.String(), true
			}
		}
	}
	switch {
	case hasID:
		h.byID[id] = append(h.byID[id], sel)
	case hasClass:
		h.byClass[class] = append(h.byClass[class], sel)
	case hasElement:
		h.byElement[element] = append(h.byElement[element], sel)
	default:
		h.universal = append(h.universal, sel)
	}
}

// byRank sorts ascending by (Specificity, RuleIndex), the order spec §4.5
// requires out of every bucket.
type byRank []*Selector

func (s byRank) Len() int      { return len(s) }
func (s byRank) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byRank) Less(i, j int) bool {
	if s[i].Specificity != s[j].Specificity {
		return s[i].Specificity < s[j].Specificity
	}
	return s[i].RuleIndex < s[j].RuleIndex
}

// Finalize sorts every bucket by (Specificity, RuleIndex). Must be called
// once after all rules have been indexed and before the sheet is used for
// selection.
func (h *SelectorHash) Finalize() {
	for k := range h.byElement {
		sort.Stable(byRank(h.byElement[k]))
	}
	for k := range h.byClass {
		sort.Stable(byRank(h.byClass[k]))
	}
	for k := range h.byID {
		sort.Stable(byRank(h.byID[k]))
	}
	sort.Stable(byRank(h.universal))
}

// Find returns the selector chains whose rightmost compound carries an
// element detail matching name and no id or class detail (those chains
// are filed under FindByID/FindByClass instead), in ascending
// (Specificity, RuleIndex) order.
func (h *SelectorHash) Find(name string) []*Selector { return h.byElement[name] }

// FindByClass is analogous to Find, keyed by class name.
func (h *SelectorHash) FindByClass(name string) []*Selector { return h.byClass[name] }

// FindByID is analogous to Find, keyed by id.
func (h *SelectorHash) FindByID(name string) []*Selector { return h.byID[name] }

// FindUniversal returns chains whose rightmost compound is unnarrowed by
// element/class/id.
func (h *SelectorHash) FindUniversal() []*Selector { return h.universal }

// Stylesheet is an ordered list of rules plus a selector hash (spec §3).
// Read-only after Finalize.
type Stylesheet struct {
	Rules       []*Rule
	Hash        *SelectorHash
	InlineStyle bool // true for the synthetic single-rule sheet of a style="" attribute
}

// New creates an empty Stylesheet ready to be populated by a compiler.
func New() *Stylesheet {
	return &Stylesheet{Hash: newSelectorHash()}
}

// AddRule appends r to the sheet, assigning it the next monotonic index,
// and (for selector rules) indexes its chains into the selector hash.
// Callers must still invoke Finalize once all rules are added.
func (s *Stylesheet) AddRule(r *Rule) int {
	r.Index = len(s.Rules)
	s.Rules = append(s.Rules, r)
	if r.Type == RuleSelector {
		for _, sel := range r.Selectors {
			sel.RuleIndex = r.Index
			s.Hash.Index(sel)
		}
	}
	return r.Index
}

// Finalize sorts the selector hash. Call once after all rules have been
// added.
func (s *Stylesheet) Finalize() {
	s.Hash.Finalize()
}
