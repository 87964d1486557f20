package selection

import (
	"cssengine/handler"
	"cssengine/style"
)

// isLengthBearing reports whether f is a family whose single Length slot
// the root pass must convert when it carries a font-relative unit;
// Extra-held lengths (clip's four sides, background-position's two axes)
// are converted separately by resolveNestedLengths.
func isLengthBearing(f style.Family) bool {
	switch f {
	case style.FamilyLength, style.FamilyLengthAuto, style.FamilyLengthNormal, style.FamilyLengthNone, style.FamilyBorderWidth:
		return true
	}
	return false
}

// resolveAbsoluteValues implements spec §4.10, run only when select_style
// finds node has no parent (the document root): every length whose unit is
// font-relative (em/ex) is converted to an absolute unit via the client's
// font-size computation, border/outline colors left at their
// currentColor fallback are already resolved (PropColor is property index
// 0, so step 4's ascending property-index loop always resolves it before
// any border/outline color), and an inline display on a
// positioned-or-floated root is normalised to block.
func resolveAbsoluteValues(out *style.ComputedStyle, h handler.Handler) error {
	for i := 0; i < style.NumProperties; i++ {
		id := style.PropertyID(i)
		if out.State(id) != style.StateSet || !isLengthBearing(style.Table[id].Family) {
			continue
		}
		v := out.Length(id)
		if !v.Unit.IsFontRelative() {
			continue
		}
		abs, err := h.ComputeFontSize(nil, v)
		if err != nil {
			return err
		}
		out.SetLength(id, abs)
	}
	if err := resolveNestedLengths(out, h); err != nil {
		return err
	}

	if out.Display().Overlaps(style.DisplayInline) {
		floated := out.Keyword(style.PropFloat) != "" && out.Keyword(style.PropFloat) != "none"
		if out.Position().IsPositioned() || floated {
			out.SetDisplayKeyword(style.DisplayBlock)
		}
	}
	return nil
}

// resolveNestedLengths converts the font-relative lengths embedded in
// clip's four sides and background-position's two axes — the two
// families whose Length values live inside an Extra payload rather than
// directly in a slot.
func resolveNestedLengths(out *style.ComputedStyle, h handler.Handler) error {
	if clip, ok := out.Extra(style.PropClip).(*style.Clip); ok {
		for i, side := range clip.Side {
			if clip.Auto[i] || !side.Unit.IsFontRelative() {
				continue
			}
			abs, err := h.ComputeFontSize(nil, side)
			if err != nil {
				return err
			}
			clip.Side[i] = abs
		}
	}
	if pos, ok := out.Extra(style.PropBackgroundPosition).(*style.BgPosition); ok {
		for i, v := range pos.Value {
			if pos.IsKeyword[i] || !v.Unit.IsFontRelative() {
				continue
			}
			abs, err := h.ComputeFontSize(nil, v)
			if err != nil {
				return err
			}
			pos.Value[i] = abs
		}
	}
	return nil
}
