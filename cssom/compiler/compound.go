package compiler

import "strings"

// kv is one expanded longhand property name/value pair.
type kv struct{ Key, Value string }

// expandCompound expands a CSS 2.1 compound (shorthand) property into its
// longhands before any bytecode is emitted, so the cascade interpreter
// only ever sees longhand opcodes (spec §13's "compound property
// expansion" supplement — margin/padding/border-width/border-style/
// border-color follow the 1/2/3/4-value distribution rule of CSS 2.1
// §8.3; border assigns a single width/style/color to all four sides).
func expandCompound(name, value string) []kv {
	switch name {
	case "margin":
		return distribute4(value, "margin-top", "margin-right", "margin-bottom", "margin-left")
	case "padding":
		return distribute4(value, "padding-top", "padding-right", "padding-bottom", "padding-left")
	case "border-width":
		return distribute4(value, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border-style":
		return distribute4(value, "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")
	case "border-color":
		return distribute4(value, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	case "border":
		return expandBorderShorthand(value)
	}
	return []kv{{name, value}}
}

// distribute4 applies CSS's "1 value sets all 4 sides, 2 sets vertical
// then horizontal, 3 sets top/horizontal/bottom, 4 sets top/right/bottom/
// left" rule.
func distribute4(value, top, right, bottom, left string) []kv {
	parts := splitValueTokens(value)
	var t, r, b, l string
	switch len(parts) {
	case 1:
		t, r, b, l = parts[0], parts[0], parts[0], parts[0]
	case 2:
		t, b = parts[0], parts[0]
		r, l = parts[1], parts[1]
	case 3:
		t, b = parts[0], parts[2]
		r, l = parts[1], parts[1]
	case 4:
		t, r, b, l = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil
	}
	return []kv{{top, t}, {right, r}, {bottom, b}, {left, l}}
}

// expandBorderShorthand classifies the (at most three) tokens of a
// `border: <width> <style> <color>` declaration by kind, since they may
// appear in any order, then distributes each to its four per-side
// longhands.
func expandBorderShorthand(value string) []kv {
	var width, styleTok, color string
	for _, tok := range splitValueTokens(value) {
		lower := strings.ToLower(tok)
		switch {
		case keywordIndex(borderWidthShorthandKeywords, lower) >= 0 || looksLikeLength(lower):
			width = tok
		case keywordIndex(borderStyleShorthandKeywords, lower) >= 0:
			styleTok = tok
		default:
			color = tok
		}
	}
	var out []kv
	if width != "" {
		out = append(out, distribute4(width, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")...)
	}
	if styleTok != "" {
		out = append(out, distribute4(styleTok, "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")...)
	}
	if color != "" {
		out = append(out, distribute4(color, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")...)
	}
	return out
}

var borderWidthShorthandKeywords = []string{"thin", "medium", "thick"}
var borderStyleShorthandKeywords = []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}

func looksLikeLength(s string) bool {
	if s == "0" {
		return true
	}
	_, _, ok := parseLength(s)
	return ok
}
