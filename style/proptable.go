package style

// PropertyID is a CSS 2.1 property's dispatch-table index — the opcode
// carried in a bytecode word's bits 16-29 (spec §3).
type PropertyID uint16

// The property list below covers every operand family from the
// bytecode table (spec §3) with a representative slice of CSS 2.1's
// ~120 properties; additional properties slot into the same table using
// the same family helpers and are omitted here only for size.
const (
	PropColor PropertyID = iota
	PropBackgroundColor
	PropBackgroundImage
	PropBackgroundRepeat
	PropBackgroundAttachment
	PropBackgroundPosition
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontVariant
	PropFontWeight
	PropLineHeight
	PropTextAlign
	PropTextDecoration
	PropTextIndent
	PropTextTransform
	PropLetterSpacing
	PropWordSpacing
	PropWhiteSpace
	PropDirection
	PropUnicodeBidi
	PropDisplay
	PropPosition
	PropTop
	PropRight
	PropBottom
	PropLeft
	PropFloat
	PropClear
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderTopWidth
	PropBorderRightWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropBorderTopStyle
	PropBorderRightStyle
	PropBorderBottomStyle
	PropBorderLeftStyle
	PropBorderTopColor
	PropBorderRightColor
	PropBorderBottomColor
	PropBorderLeftColor
	PropOverflow
	PropClip
	PropVisibility
	PropZIndex
	PropVerticalAlign

	// Uncommon block.
	PropListStyleType
	PropListStylePosition
	PropListStyleImage
	PropCaptionSide
	PropBorderCollapse
	PropBorderSpacing
	PropEmptyCells
	PropTableLayout
	PropContent
	PropQuotes
	PropCounterReset
	PropCounterIncrement
	PropCursor
	PropOutlineWidth
	PropOutlineStyle
	PropOutlineColor

	// Page block.
	PropPageBreakBefore
	PropPageBreakAfter
	PropPageBreakInside
	PropOrphans
	PropWidows
	PropMarks

	// Aural block.
	PropVolume
	PropSpeak
	PropPauseBefore
	PropPauseAfter
	PropCueBefore
	PropCueAfter
	PropPlayDuring
	PropAzimuth
	PropElevation
	PropSpeechRate
	PropVoiceFamily
	PropPitch
	PropPitchRange
	PropStress
	PropRichness
	PropSpeakPunctuation
	PropSpeakNumeral
	PropSpeakHeader

	numProperties
)

// NumProperties is the size of the property dispatch table.
const NumProperties = int(numProperties)

// Descriptor is one property dispatch-table entry (spec §3/§4.7/§9): its
// operand family, whether it participates in inheritance, which
// computed-style block it lives in, and — for keyword families — the
// ordered keyword list a bytecode value of ValueKeywordBase+i indexes
// into.
type Descriptor struct {
	Name      string
	Family    Family
	Inherited bool
	Group     Group
	Keywords  []string
}

var displayKeywords = []string{"inline", "block", "list-item", "inline-block", "table", "none"}
var positionKeywords = []string{"static", "relative", "absolute", "fixed"}
var floatKeywords = []string{"none", "left", "right"}
var clearKeywords = []string{"none", "left", "right", "both"}
var overflowKeywords = []string{"visible", "hidden", "scroll", "auto"}
var visibilityKeywords = []string{"visible", "hidden", "collapse"}
var fontStyleKeywords = []string{"normal", "italic", "oblique"}
var fontVariantKeywords = []string{"normal", "small-caps"}
var fontWeightKeywords = []string{"normal", "bold", "bolder", "lighter", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
var textAlignKeywords = []string{"left", "right", "center", "justify"}
var textDecorationKeywords = []string{"none", "underline", "overline", "line-through", "blink"}
var textTransformKeywords = []string{"none", "capitalize", "uppercase", "lowercase"}
var whiteSpaceKeywords = []string{"normal", "pre", "nowrap", "pre-wrap", "pre-line"}
var directionKeywords = []string{"ltr", "rtl"}
var unicodeBidiKeywords = []string{"normal", "embed", "bidi-override"}
var backgroundRepeatKeywords = []string{"repeat", "repeat-x", "repeat-y", "no-repeat"}
var backgroundAttachmentKeywords = []string{"scroll", "fixed"}
var borderStyleKeywords = []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}
var borderWidthKeywords = []string{"thin", "medium", "thick"}
var backgroundPositionKeywords = []string{"left", "center", "right", "top", "bottom"}
var listStyleTypeKeywords = []string{"disc", "circle", "square", "decimal", "decimal-leading-zero", "lower-roman", "upper-roman", "lower-alpha", "upper-alpha", "none"}
var listStylePositionKeywords = []string{"inside", "outside"}
var captionSideKeywords = []string{"top", "bottom"}
var borderCollapseKeywords = []string{"collapse", "separate"}
var emptyCellsKeywords = []string{"show", "hide"}
var tableLayoutKeywords = []string{"auto", "fixed"}
var pageBreakKeywords = []string{"auto", "always", "avoid", "left", "right"}
var pageBreakInsideKeywords = []string{"auto", "avoid"}
var marksKeywords = []string{"none", "crop", "cross"}
var speakKeywords = []string{"normal", "none", "spell-out"}
var speakPunctKeywords = []string{"code", "none"}
var speakNumeralKeywords = []string{"digits", "continuous"}
var speakHeaderKeywords = []string{"once", "always"}

// Table is indexed by PropertyID and describes every property's cascade
// shape (spec §2 item 4: "four function slots... plus inheritance flag
// and storage group" — the function slots live in package cascade, keyed
// off this table's Family/Inherited/Group fields rather than being
// hand-written once per property).
var Table = [numProperties]Descriptor{
	PropColor:                {"color", FamilyColor, true, GroupCommon, nil},
	PropBackgroundColor:      {"background-color", FamilyBgBorderColor, false, GroupCommon, nil},
	PropBackgroundImage:      {"background-image", FamilyURINone, false, GroupCommon, nil},
	PropBackgroundRepeat:     {"background-repeat", FamilyKeyword, false, GroupCommon, backgroundRepeatKeywords},
	PropBackgroundAttachment: {"background-attachment", FamilyKeyword, false, GroupCommon, backgroundAttachmentKeywords},
	PropBackgroundPosition:   {"background-position", FamilyBackgroundPosition, false, GroupCommon, backgroundPositionKeywords},
	PropFontFamily:           {"font-family", FamilyNameList, true, GroupCommon, nil},
	PropFontSize:             {"font-size", FamilyLength, true, GroupCommon, nil},
	PropFontStyle:            {"font-style", FamilyKeyword, true, GroupCommon, fontStyleKeywords},
	PropFontVariant:          {"font-variant", FamilyKeyword, true, GroupCommon, fontVariantKeywords},
	PropFontWeight:           {"font-weight", FamilyKeyword, true, GroupCommon, fontWeightKeywords},
	PropLineHeight:           {"line-height", FamilyLengthNormal, true, GroupCommon, nil},
	PropTextAlign:            {"text-align", FamilyKeyword, true, GroupCommon, textAlignKeywords},
	PropTextDecoration:       {"text-decoration", FamilyKeyword, false, GroupCommon, textDecorationKeywords},
	PropTextIndent:           {"text-indent", FamilyLength, true, GroupCommon, nil},
	PropTextTransform:        {"text-transform", FamilyKeyword, true, GroupCommon, textTransformKeywords},
	PropLetterSpacing:        {"letter-spacing", FamilyLengthNormal, true, GroupCommon, nil},
	PropWordSpacing:          {"word-spacing", FamilyLengthNormal, true, GroupCommon, nil},
	PropWhiteSpace:           {"white-space", FamilyKeyword, true, GroupCommon, whiteSpaceKeywords},
	PropDirection:            {"direction", FamilyKeyword, true, GroupCommon, directionKeywords},
	PropUnicodeBidi:          {"unicode-bidi", FamilyKeyword, false, GroupCommon, unicodeBidiKeywords},
	PropDisplay:              {"display", FamilyKeyword, false, GroupCommon, displayKeywords},
	PropPosition:             {"position", FamilyKeyword, false, GroupCommon, positionKeywords},
	PropTop:                  {"top", FamilyLengthAuto, false, GroupCommon, nil},
	PropRight:                {"right", FamilyLengthAuto, false, GroupCommon, nil},
	PropBottom:               {"bottom", FamilyLengthAuto, false, GroupCommon, nil},
	PropLeft:                 {"left", FamilyLengthAuto, false, GroupCommon, nil},
	PropFloat:                {"float", FamilyKeyword, false, GroupCommon, floatKeywords},
	PropClear:                {"clear", FamilyKeyword, false, GroupCommon, clearKeywords},
	PropWidth:                {"width", FamilyLengthAuto, false, GroupCommon, nil},
	PropHeight:               {"height", FamilyLengthAuto, false, GroupCommon, nil},
	PropMinWidth:             {"min-width", FamilyLength, false, GroupCommon, nil},
	PropMinHeight:            {"min-height", FamilyLength, false, GroupCommon, nil},
	PropMaxWidth:             {"max-width", FamilyLengthNone, false, GroupCommon, nil},
	PropMaxHeight:            {"max-height", FamilyLengthNone, false, GroupCommon, nil},
	PropMarginTop:            {"margin-top", FamilyLengthAuto, false, GroupCommon, nil},
	PropMarginRight:          {"margin-right", FamilyLengthAuto, false, GroupCommon, nil},
	PropMarginBottom:         {"margin-bottom", FamilyLengthAuto, false, GroupCommon, nil},
	PropMarginLeft:           {"margin-left", FamilyLengthAuto, false, GroupCommon, nil},
	PropPaddingTop:           {"padding-top", FamilyLength, false, GroupCommon, nil},
	PropPaddingRight:         {"padding-right", FamilyLength, false, GroupCommon, nil},
	PropPaddingBottom:        {"padding-bottom", FamilyLength, false, GroupCommon, nil},
	PropPaddingLeft:          {"padding-left", FamilyLength, false, GroupCommon, nil},
	PropBorderTopWidth:       {"border-top-width", FamilyBorderWidth, false, GroupCommon, borderWidthKeywords},
	PropBorderRightWidth:     {"border-right-width", FamilyBorderWidth, false, GroupCommon, borderWidthKeywords},
	PropBorderBottomWidth:    {"border-bottom-width", FamilyBorderWidth, false, GroupCommon, borderWidthKeywords},
	PropBorderLeftWidth:      {"border-left-width", FamilyBorderWidth, false, GroupCommon, borderWidthKeywords},
	PropBorderTopStyle:       {"border-top-style", FamilyBorderStyle, false, GroupCommon, borderStyleKeywords},
	PropBorderRightStyle:     {"border-right-style", FamilyBorderStyle, false, GroupCommon, borderStyleKeywords},
	PropBorderBottomStyle:    {"border-bottom-style", FamilyBorderStyle, false, GroupCommon, borderStyleKeywords},
	PropBorderLeftStyle:      {"border-left-style", FamilyBorderStyle, false, GroupCommon, borderStyleKeywords},
	PropBorderTopColor:       {"border-top-color", FamilyBgBorderColor, false, GroupCommon, nil},
	PropBorderRightColor:     {"border-right-color", FamilyBgBorderColor, false, GroupCommon, nil},
	PropBorderBottomColor:    {"border-bottom-color", FamilyBgBorderColor, false, GroupCommon, nil},
	PropBorderLeftColor:      {"border-left-color", FamilyBgBorderColor, false, GroupCommon, nil},
	PropOverflow:             {"overflow", FamilyKeyword, false, GroupCommon, overflowKeywords},
	PropClip:                 {"clip", FamilyClip, false, GroupCommon, nil},
	PropVisibility:           {"visibility", FamilyKeyword, true, GroupCommon, visibilityKeywords},
	PropZIndex:               {"z-index", FamilyLengthAuto, false, GroupCommon, nil},
	PropVerticalAlign:        {"vertical-align", FamilyLengthNormal, false, GroupCommon, nil},

	PropListStyleType:     {"list-style-type", FamilyKeyword, true, GroupUncommon, listStyleTypeKeywords},
	PropListStylePosition: {"list-style-position", FamilyKeyword, true, GroupUncommon, listStylePositionKeywords},
	PropListStyleImage:    {"list-style-image", FamilyURINone, true, GroupUncommon, nil},
	PropCaptionSide:       {"caption-side", FamilyKeyword, true, GroupUncommon, captionSideKeywords},
	PropBorderCollapse:    {"border-collapse", FamilyKeyword, true, GroupUncommon, borderCollapseKeywords},
	PropBorderSpacing:     {"border-spacing", FamilyLength, true, GroupUncommon, nil},
	PropEmptyCells:        {"empty-cells", FamilyKeyword, true, GroupUncommon, emptyCellsKeywords},
	PropTableLayout:       {"table-layout", FamilyKeyword, false, GroupUncommon, tableLayoutKeywords},
	PropContent:           {"content", FamilyContent, false, GroupUncommon, nil},
	PropQuotes:            {"quotes", FamilyQuotesList, true, GroupUncommon, nil},
	PropCounterReset:      {"counter-reset", FamilyCounter, false, GroupUncommon, nil},
	PropCounterIncrement:  {"counter-increment", FamilyCounter, false, GroupUncommon, nil},
	PropCursor:            {"cursor", FamilyCursorList, true, GroupUncommon, nil},
	PropOutlineWidth:      {"outline-width", FamilyBorderWidth, false, GroupUncommon, borderWidthKeywords},
	PropOutlineStyle:      {"outline-style", FamilyBorderStyle, false, GroupUncommon, borderStyleKeywords},
	PropOutlineColor:      {"outline-color", FamilyBgBorderColor, false, GroupUncommon, nil},

	PropPageBreakBefore: {"page-break-before", FamilyKeyword, false, GroupPage, pageBreakKeywords},
	PropPageBreakAfter:  {"page-break-after", FamilyKeyword, false, GroupPage, pageBreakKeywords},
	PropPageBreakInside: {"page-break-inside", FamilyKeyword, false, GroupPage, pageBreakInsideKeywords},
	PropOrphans:         {"orphans", FamilyNumber, true, GroupPage, nil},
	PropWidows:          {"widows", FamilyNumber, true, GroupPage, nil},
	PropMarks:           {"marks", FamilyKeyword, false, GroupPage, marksKeywords},

	PropVolume:           {"volume", FamilyNumber, true, GroupAural, nil},
	PropSpeak:            {"speak", FamilyKeyword, true, GroupAural, speakKeywords},
	PropPauseBefore:      {"pause-before", FamilyLength, false, GroupAural, nil},
	PropPauseAfter:       {"pause-after", FamilyLength, false, GroupAural, nil},
	PropCueBefore:        {"cue-before", FamilyURINone, false, GroupAural, nil},
	PropCueAfter:         {"cue-after", FamilyURINone, false, GroupAural, nil},
	PropPlayDuring:       {"play-during", FamilyURINone, false, GroupAural, nil},
	PropAzimuth:          {"azimuth", FamilyNumber, true, GroupAural, nil},
	PropElevation:        {"elevation", FamilyNumber, true, GroupAural, nil},
	PropSpeechRate:       {"speech-rate", FamilyNumber, true, GroupAural, nil},
	PropVoiceFamily:      {"voice-family", FamilyNameList, true, GroupAural, nil},
	PropPitch:            {"pitch", FamilyNumber, true, GroupAural, nil},
	PropPitchRange:       {"pitch-range", FamilyNumber, true, GroupAural, nil},
	PropStress:           {"stress", FamilyNumber, true, GroupAural, nil},
	PropRichness:         {"richness", FamilyNumber, true, GroupAural, nil},
	PropSpeakPunctuation: {"speak-punctuation", FamilyKeyword, true, GroupAural, speakPunctKeywords},
	PropSpeakNumeral:     {"speak-numeral", FamilyKeyword, true, GroupAural, speakNumeralKeywords},
	PropSpeakHeader:      {"speak-header", FamilyKeyword, true, GroupAural, speakHeaderKeywords},
}

// byName indexes Table by CSS property name, built once at init for the
// compiler's string-to-PropertyID lookups.
var byName map[string]PropertyID

func init() {
	byName = make(map[string]PropertyID, numProperties)
	for id, d := range Table {
		byName[d.Name] = PropertyID(id)
	}
}

// Lookup resolves a CSS property name to its PropertyID.
func Lookup(name string) (PropertyID, bool) {
	id, ok := byName[name]
	return id, ok
}
