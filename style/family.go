package style

// Family identifies the operand shape a property's bytecode declarations
// carry (spec §3's operand-payload table), and therefore which shared
// cascade/compose helper applies.
type Family uint8

const (
	// FamilyKeyword properties carry no operand; the OPV value bits *are*
	// the keyword index.
	FamilyKeyword Family = iota
	// FamilyColor properties carry one 32-bit RGBA operand when set.
	FamilyColor
	// FamilyLength properties always carry a (fixed, unit) operand pair
	// when set (no "auto"/"normal"/"none" sub-value).
	FamilyLength
	// FamilyLengthAuto properties carry a (fixed, unit) pair only when
	// the sub-value is ValueSet; ValueAuto needs no operand.
	FamilyLengthAuto
	// FamilyLengthNormal: like FamilyLengthAuto, with ValueNormal instead
	// of ValueAuto.
	FamilyLengthNormal
	// FamilyLengthNone: like FamilyLengthAuto, with ValueNone.
	FamilyLengthNone
	// FamilyNumber properties carry one fixed-point operand when set.
	FamilyNumber
	// FamilyURIString properties carry one interned-string handle.
	FamilyURIString
	// FamilyURINone: a URI operand, or the keyword "none".
	FamilyURINone
	// FamilyBorderWidth: keyword widths (thin/medium/thick) or a length.
	FamilyBorderWidth
	// FamilyBorderStyle: keyword-only border line style.
	FamilyBorderStyle
	// FamilyBgBorderColor: a color, or the keyword "transparent"/initial.
	FamilyBgBorderColor
	// FamilyCounter: counter-increment/counter-reset — repeated (name
	// handle, value) pairs.
	FamilyCounter
	// FamilyContent: repeated (kind, handles…) entries terminated by a
	// `normal` marker.
	FamilyContent
	// FamilyNameList: font-family — a terminated list of (kind, handle)
	// entries (family name or generic keyword).
	FamilyNameList
	// FamilyQuotesList: quotes — a terminated list of string-pair
	// handles.
	FamilyQuotesList
	// FamilyCursorList: cursor — a terminated list of (kind, handle)
	// entries (URI or keyword).
	FamilyCursorList
	// FamilyClip: a rect of four (auto-flag | fixed+unit) entries
	// selected by a bit mask.
	FamilyClip
	// FamilyBackgroundPosition: two (horizontal, vertical) entries, each
	// either a length or a keyword.
	FamilyBackgroundPosition
)

// Group is the storage location of a property's value within a
// ComputedStyle: the dense common block, or one of the three lazily
// allocated extension blocks (spec §3).
type Group uint8

const (
	GroupCommon Group = iota
	GroupUncommon
	GroupPage
	GroupAural
)
