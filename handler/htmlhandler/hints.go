package htmlhandler

import (
	"strings"

	"golang.org/x/net/html"

	"cssengine/bytecode"
	"cssengine/fixedpoint"
	"cssengine/handler"
	"cssengine/style"
)

// NodePresentationalHint answers spec §4.8's per-property hint query from
// style.PerElementDefaults, the adapted UA default-stylesheet table. Only
// element-keyed defaults are hints; anything not present is NotSet.
func (h *Handler) NodePresentationalHint(n handler.Node, id style.PropertyID) (handler.Hint, error) {
	hn := asHTMLNode(n)
	if hn == nil || hn.Type != html.ElementNode {
		return handler.Hint{NotSet: true}, nil
	}
	for _, def := range style.PerElementDefaults[hn.Data] {
		if def.Property != id {
			continue
		}
		return hintFromDefault(def), nil
	}
	return handler.Hint{NotSet: true}, nil
}

// UADefaultForProperty answers the handful of initial values the engine
// delegates to the client (spec §4.8: color, font-family, quotes) from
// style.GlobalDefaults, plus hand-built entries for quotes and
// font-family, whose list values do not fit GlobalDefaults'
// keyword/length/color shape.
func (h *Handler) UADefaultForProperty(id style.PropertyID) (handler.Hint, error) {
	switch id {
	case style.PropQuotes:
		return handler.Hint{
			Sub:   bytecode.ValueSet,
			Extra: []string{"“", "”", "‘", "’"},
		}, nil
	case style.PropFontFamily:
		return handler.Hint{
			Sub:   bytecode.ValueSet,
			Extra: &style.FamilyListValue{Entries: []style.FamilyEntry{{Kind: bytecode.ListGenericFamily, Name: h.table.Intern("serif")}}},
		}, nil
	}
	def, ok := style.GlobalDefaults[id]
	if !ok {
		return handler.Hint{NotSet: true}, nil
	}
	return hintFromDefault(def), nil
}

func hintFromDefault(def style.PropertyDefault) handler.Hint {
	switch def.Kind {
	case style.DefaultKeyword:
		idx := keywordIndex(style.Table[def.Property].Keywords, def.Keyword)
		if idx < 0 {
			return handler.Hint{NotSet: true}
		}
		return handler.Hint{Sub: bytecode.ValueKeywordBase + uint16(idx)}
	case style.DefaultLength:
		return handler.Hint{Sub: bytecode.ValueSet, Length: def.Length}
	case style.DefaultColor:
		return handler.Hint{Sub: bytecode.ValueSet, Color: def.Color}
	}
	return handler.Hint{NotSet: true}
}

func keywordIndex(keywords []string, value string) int {
	for i, k := range keywords {
		if strings.EqualFold(k, value) {
			return i
		}
	}
	return -1
}

// fontSizeKeywords holds the CSS 2.1 absolute-size keyword ladder, in px
// at the medium=16px baseline; "larger"/"smaller" scale the parent size by
// 1.2 instead of indexing this table.
var fontSizeKeywords = map[string]float64{
	"xx-small": 9, "x-small": 10, "small": 13, "medium": 16,
	"large": 18, "x-large": 24, "xx-large": 32,
}

const fontSizeScaleStep = 1.2

// ComputeFontSize resolves size against parentFontSize (nil at the
// document root, which must use the UA default of medium/16px). Absolute
// units pass through a fixed px-per-unit conversion; em/ex/% resolve
// relative to the parent. The larger/smaller/absolute-size keywords are
// not handled here; ComputeKeywordFontSize resolves those.
func (h *Handler) ComputeFontSize(parentFontSize *style.Length, size style.Length) (style.Length, error) {
	parent := 16.0
	if parentFontSize != nil {
		parent = toPx(parentFontSize.Fixed, parentFontSize.Unit)
	}
	var px float64
	switch size.Unit {
	case bytecode.UnitEM, bytecode.UnitPercent:
		factor := size.Fixed.ToFloat64()
		if size.Unit == bytecode.UnitPercent {
			factor /= 100
		}
		px = parent * factor
	case bytecode.UnitEX:
		px = parent * size.Fixed.ToFloat64() * 0.5
	default:
		px = toPx(size.Fixed, size.Unit)
	}
	return style.Length{Fixed: fixedpoint.FromFloat64(px), Unit: bytecode.UnitPX}, nil
}

// ComputeKeywordFontSize resolves one of the font-size keyword values
// ("medium", "larger", ...) against parentPx, for callers that decode the
// font-size property's keyword sub-value before calling ComputeFontSize.
func ComputeKeywordFontSize(parentPx float64, keyword string) float64 {
	switch keyword {
	case "larger":
		return parentPx * fontSizeScaleStep
	case "smaller":
		return parentPx / fontSizeScaleStep
	}
	if px, ok := fontSizeKeywords[keyword]; ok {
		return px
	}
	return parentPx
}

// toPx converts an absolute (non font-relative, non-percentage) length to
// px using the standard CSS 96px/in ladder.
func toPx(f fixedpoint.T, u bytecode.Unit) float64 {
	v := f.ToFloat64()
	switch u {
	case bytecode.UnitPX:
		return v
	case bytecode.UnitPT:
		return v * 96 / 72
	case bytecode.UnitPC:
		return v * 16
	case bytecode.UnitIN:
		return v * 96
	case bytecode.UnitCM:
		return v * 96 / 2.54
	case bytecode.UnitMM:
		return v * 96 / 25.4
	default:
		return v
	}
}
