package style

import (
	"cssengine/bytecode"
	"cssengine/fixedpoint"
)

// DefaultKind tags which field of a PropertyDefault is meaningful.
type DefaultKind uint8

const (
	DefaultKeyword DefaultKind = iota
	DefaultLength
	DefaultColor
)

// PropertyDefault is one user-agent default value, independent of the
// Hint wire shape a Handler eventually returns (kept dependency-free of
// package handler so style does not import it).
type PropertyDefault struct {
	Property PropertyID
	Kind     DefaultKind
	Keyword  string
	Length   Length
	Color    uint32
}

func px(n int32) Length { return Length{Fixed: fixedpoint.FromInt(n), Unit: bytecode.UnitPX} }

// PerElementDefaults is the adapted user-agent stylesheet (spec §13
// "User-agent default stylesheet construction helper"): a small table of
// HTML element names to the block/margin/display defaults CSS 2.1's
// sample UA sheet assigns them. handler/htmlhandler consults this to
// answer Handler.NodePresentationalHint.
var PerElementDefaults = map[string][]PropertyDefault{
	"p":          {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropMarginTop, Kind: DefaultLength, Length: px(16)}, {Property: PropMarginBottom, Kind: DefaultLength, Length: px(16)}},
	"div":        {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}},
	"section":    {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}},
	"article":    {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}},
	"body":       {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropMarginTop, Kind: DefaultLength, Length: px(8)}},
	"h1":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropFontWeight, Kind: DefaultKeyword, Keyword: "bold"}, {Property: PropMarginTop, Kind: DefaultLength, Length: px(21)}, {Property: PropMarginBottom, Kind: DefaultLength, Length: px(21)}},
	"h2":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropFontWeight, Kind: DefaultKeyword, Keyword: "bold"}},
	"h3":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropFontWeight, Kind: DefaultKeyword, Keyword: "bold"}},
	"ul":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropListStyleType, Kind: DefaultKeyword, Keyword: "disc"}},
	"ol":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "block"}, {Property: PropListStyleType, Kind: DefaultKeyword, Keyword: "decimal"}},
	"li":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "list-item"}},
	"table":      {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "table"}},
	"span":       {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "inline"}},
	"a":          {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "inline"}, {Property: PropTextDecoration, Kind: DefaultKeyword, Keyword: "underline"}},
	"strong":     {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "inline"}, {Property: PropFontWeight, Kind: DefaultKeyword, Keyword: "bold"}},
	"em":         {{Property: PropDisplay, Kind: DefaultKeyword, Keyword: "inline"}, {Property: PropFontStyle, Kind: DefaultKeyword, Keyword: "italic"}},
}

// GlobalDefaults covers the one property (color) whose "initial" value
// spec §4.8 delegates to Handler.UADefaultForProperty and that fits the
// plain keyword/length/color shape. Font-family's generic fallback and quotes' paired
// open/close strings don't fit this keyword/length/color shape, so
// handler/htmlhandler constructs those two directly rather than through
// this table.
var GlobalDefaults = map[PropertyID]PropertyDefault{
	PropColor: {Property: PropColor, Kind: DefaultColor, Color: 0xFF000000},
}
