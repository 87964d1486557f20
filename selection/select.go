package selection

import (
	"cssengine/cascade"
	"cssengine/cssom"
	"cssengine/errcode"
	"cssengine/handler"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/selector"
	"cssengine/style"
)

// errInlineShape is returned when an inline stylesheet does not hold
// exactly the single zero-item selector rule CompileInlineStyle produces
// (spec §4.2 step 3): one selector rule with one selector whose chain
// carries no details.
var errInlineShape = errcode.New(errcode.Invalid, "inline style must hold exactly one zero-item selector rule")

// SelectStyle runs spec §4.2's select_style query: it matches every
// registered sheet plus an optional inline style against node, applies
// presentational hints and initial values for whatever no rule touched,
// and — at the document root — resolves absolute values (spec §4.10).
// The computed style is only well-defined when the returned error is nil.
func (ctx *Context) SelectStyle(node handler.Node, pseudo istr.Handle, media mediatype.Mask, inlineStyle *cssom.Stylesheet, out *style.ComputedStyle, h handler.Handler) error {
	var state cascade.StateTable

	_, hasParent, err := h.ParentNode(node)
	if err != nil {
		return err
	}

	for _, entry := range ctx.snapshotSheets() {
		if entry.Disabled || !entry.Media.Intersects(media) {
			continue
		}
		if err := selector.Match(entry.Sheet, entry.Origin, media, h, node, pseudo, out, &state); err != nil {
			return err
		}
	}

	if inlineStyle != nil {
		if err := applyInlineStyle(inlineStyle, out, &state); err != nil {
			return err
		}
	}

	for i := 0; i < style.NumProperties; i++ {
		id := style.PropertyID(i)
		if err := applyHintIfEligible(ctx, h, node, id, out, &state); err != nil {
			return err
		}
		if err := applyInitialIfNeeded(ctx, h, id, out, &state, hasParent); err != nil {
			return err
		}
	}

	if !hasParent {
		if err := resolveAbsoluteValues(out, h); err != nil {
			return err
		}
	}
	return nil
}

// applyInlineStyle applies an inline style="" attribute's single rule
// directly (spec §4.2 step 3): a CompileInlineStyle sheet is never matched
// against node, its bytecode is simply interpreted at maximal specificity.
func applyInlineStyle(inlineStyle *cssom.Stylesheet, out *style.ComputedStyle, state *cascade.StateTable) error {
	if len(inlineStyle.Rules) != 1 || len(inlineStyle.Rules[0].Selectors) != 1 {
		return errInlineShape
	}
	rule := inlineStyle.Rules[0]
	if rule.Type != cssom.RuleSelector || rule.Selectors[0].Rightmost == nil || len(rule.Selectors[0].Rightmost.Details) != 0 {
		return errInlineShape
	}
	return cascade.Apply(rule.Bytecode, cssom.OriginAuthor, rule.Selectors[0].Specificity, out, state)
}

// applyHintIfEligible implements spec §4.2 step 4's first half: consult a
// presentational hint when no declaration set the property, or when the
// setter's origin was not author and the setter was not marked !important
// (regardless of origin — a UA/user !important declaration is just as
// conclusive as an author one).
func applyHintIfEligible(ctx *Context, h handler.Handler, node handler.Node, id style.PropertyID, out *style.ComputedStyle, state *cascade.StateTable) error {
	st := (*state)[id]
	if st.Set && (st.Origin == cssom.OriginAuthor || st.Important) {
		return nil
	}
	hint, err := h.NodePresentationalHint(node, id)
	if err != nil {
		return err
	}
	if hint.NotSet {
		return nil
	}
	if !state.Outranks(id, 0, cssom.OriginAuthor, false) {
		return nil
	}
	applyHintValue(ctx, id, hint, out)
	state.Win(id, 0, cssom.OriginAuthor, false, false)
	return nil
}

// applyInitialIfNeeded implements spec §4.2 step 4's second half: a
// property that nothing set falls back to its initial value, except that
// an inherited property with a parent is instead left marked StateInherit
// for the client's later Compose call to resolve — ordinary CSS automatic
// inheritance for properties no rule or hint ever touched.
func applyInitialIfNeeded(ctx *Context, h handler.Handler, id style.PropertyID, out *style.ComputedStyle, state *cascade.StateTable, hasParent bool) error {
	st := (*state)[id]
	switch {
	case !st.Set && style.Table[id].Inherited && hasParent:
		out.SetInherit(id)
		return nil
	case !st.Set:
		// fall through to initial-value resolution below
	case !hasParent && out.State(id) == style.StateInherit:
		// root, explicit `inherit` with no parent to inherit from
	default:
		return nil
	}
	if out.ApplyInitial(id) {
		return nil
	}
	hint, err := h.UADefaultForProperty(id)
	if err != nil {
		return err
	}
	if hint.NotSet {
		return nil
	}
	applyHintValue(ctx, id, hint, out)
	return nil
}

// applyHintValue installs a handler.Hint's wire-shaped value into out,
// reusing cascade's per-family commit dispatch. The three
// InitialDeferToHandler properties' Extra payloads don't all already match
// the internal Extra shape commit() expects: quotes arrives as a flat
// []string of open/close pairs and must be interned and paired up first.
func applyHintValue(ctx *Context, id style.PropertyID, hint handler.Hint, out *style.ComputedStyle) {
	extra := hint.Extra
	if raw, ok := extra.([]string); ok {
		extra = internQuotes(ctx, raw)
	}
	cascade.ApplyHint(out, id, hint.Sub, hint.Color, hint.Length, extra)
}

// internQuotes interns a flat ["open1","close1","open2","close2",...] list
// into a *style.Quotes; a trailing unpaired entry is dropped.
func internQuotes(ctx *Context, raw []string) *style.Quotes {
	var q style.Quotes
	for i := 0; i+1 < len(raw); i += 2 {
		open := ctx.table.Intern(raw[i])
		closeH := ctx.table.Intern(raw[i+1])
		q.Pairs = append(q.Pairs, [2]istr.Handle{open, closeH})
	}
	return &q
}
