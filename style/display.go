package style

// DisplayMode is a bitmask classification of the `display` keyword,
// letting callers test block/inline/table-ness without string
// comparison — adapted from the teacher's typed CSS-value accessors, now
// reading a decoded bytecode keyword index instead of a raw string.
type DisplayMode uint8

const (
	DisplayNone DisplayMode = 1 << iota
	DisplayInline
	DisplayBlock
	DisplayListItem
	DisplayInlineBlock
	DisplayTable
)

var displayModeByKeyword = map[string]DisplayMode{
	"none":         DisplayNone,
	"inline":       DisplayInline,
	"block":        DisplayBlock,
	"list-item":    DisplayListItem,
	"inline-block": DisplayInlineBlock,
	"table":        DisplayTable,
}

// Display decodes the `display` property's current keyword into a
// DisplayMode, defaulting to DisplayInline if unset or unrecognized.
func (cs *ComputedStyle) Display() DisplayMode {
	if m, ok := displayModeByKeyword[cs.Keyword(PropDisplay)]; ok {
		return m
	}
	return DisplayInline
}

// SetDisplayKeyword rewrites the `display` slot to the given mode's
// canonical keyword (used by the root absolute-value pass, spec §4.10,
// to normalise inline-but-positioned/floated roots to block).
func (cs *ComputedStyle) SetDisplayKeyword(m DisplayMode) {
	for i, kw := range Table[PropDisplay].Keywords {
		if displayModeByKeyword[kw] == m {
			cs.SetKeyword(PropDisplay, uint16(i)+uint16(16))
			return
		}
	}
}

// Contains reports whether m includes every mode bit set in other.
func (m DisplayMode) Contains(other DisplayMode) bool {
	return m&other == other
}

// Overlaps reports whether m and other share any mode bit.
func (m DisplayMode) Overlaps(other DisplayMode) bool {
	return m&other != 0
}

// IsBlockLevel reports whether m lays out as a block box.
func (m DisplayMode) IsBlockLevel() bool {
	return m.Overlaps(DisplayBlock | DisplayListItem | DisplayTable)
}
