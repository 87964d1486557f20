package style

import (
	"cssengine/bytecode"
	"cssengine/fixedpoint"
)

// InitialKind tags how Initials[id] resolves an unset property (spec
// §4.8's "initial" function slot).
type InitialKind uint8

const (
	// InitialKeyword indexes Table[id].Keywords.
	InitialKeyword InitialKind = iota
	// InitialSub installs a raw bytecode sub-value: auto/normal/none, or
	// the transparent marker (ValueKeywordBase) for FamilyBgBorderColor.
	InitialSub
	// InitialLength installs a concrete Length.
	InitialLength
	// InitialColor installs a concrete RGBA color.
	InitialColor
	// InitialCurrentColor copies the already-resolved `color` slot — the
	// CSS 2.1 initial value of every border/outline color.
	InitialCurrentColor
	// InitialBgPosition installs the "0% 0%" default background position.
	InitialBgPosition
	// InitialDeferToHandler means the engine has no UA-independent
	// answer; the caller must consult Handler.UADefaultForProperty
	// (color, font-family, quotes — spec §4.8).
	InitialDeferToHandler
)

// Initial is one property's dispatch-table "initial" entry.
type Initial struct {
	Kind         InitialKind
	KeywordIndex int
	Sub          uint16
	Length       Length
}

func zeroPX() Length  { return Length{Fixed: fixedpoint.Zero, Unit: bytecode.UnitPX} }
func zeroPct() Length { return Length{Fixed: fixedpoint.Zero, Unit: bytecode.UnitPercent} }

// mediumFontSize is the UA-independent fallback for `font-size: medium`
// (spec §13's sample UA sheet baseline, also used by
// handler/htmlhandler.ComputeFontSize).
func mediumFontSize() Length { return Length{Fixed: fixedpoint.FromInt(16), Unit: bytecode.UnitPX} }

// Initials is indexed by PropertyID and gives every property's CSS 2.1
// initial value (spec §4.8), except the three the spec explicitly defers
// to the host (color, font-family, quotes — marked InitialDeferToHandler).
var Initials = [numProperties]Initial{
	PropColor:              {Kind: InitialDeferToHandler},
	PropBackgroundColor:    {Kind: InitialSub, Sub: bytecode.ValueKeywordBase}, // "transparent"
	PropBackgroundImage:    {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropBackgroundRepeat:   {Kind: InitialKeyword, KeywordIndex: 0}, // repeat
	PropBackgroundAttachment: {Kind: InitialKeyword, KeywordIndex: 0}, // scroll
	PropBackgroundPosition: {Kind: InitialBgPosition},
	PropFontFamily:         {Kind: InitialDeferToHandler},
	PropFontSize:           {Kind: InitialLength, Length: mediumFontSize()},
	PropFontStyle:          {Kind: InitialKeyword, KeywordIndex: 0}, // normal
	PropFontVariant:        {Kind: InitialKeyword, KeywordIndex: 0}, // normal
	PropFontWeight:         {Kind: InitialKeyword, KeywordIndex: 0}, // normal
	PropLineHeight:         {Kind: InitialSub, Sub: bytecode.ValueNormal},
	PropTextAlign:          {Kind: InitialKeyword, KeywordIndex: 0}, // left
	PropTextDecoration:     {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropTextIndent:         {Kind: InitialLength, Length: zeroPX()},
	PropTextTransform:      {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropLetterSpacing:      {Kind: InitialSub, Sub: bytecode.ValueNormal},
	PropWordSpacing:        {Kind: InitialSub, Sub: bytecode.ValueNormal},
	PropWhiteSpace:         {Kind: InitialKeyword, KeywordIndex: 0}, // normal
	PropDirection:          {Kind: InitialKeyword, KeywordIndex: 0}, // ltr
	PropUnicodeBidi:        {Kind: InitialKeyword, KeywordIndex: 0}, // normal
	PropDisplay:            {Kind: InitialKeyword, KeywordIndex: 0}, // inline
	PropPosition:           {Kind: InitialKeyword, KeywordIndex: 0}, // static
	PropTop:                {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropRight:              {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropBottom:             {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropLeft:               {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropFloat:              {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropClear:              {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropWidth:              {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropHeight:             {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropMinWidth:           {Kind: InitialLength, Length: zeroPX()},
	PropMinHeight:          {Kind: InitialLength, Length: zeroPX()},
	PropMaxWidth:           {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropMaxHeight:          {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropMarginTop:          {Kind: InitialLength, Length: zeroPX()},
	PropMarginRight:        {Kind: InitialLength, Length: zeroPX()},
	PropMarginBottom:       {Kind: InitialLength, Length: zeroPX()},
	PropMarginLeft:         {Kind: InitialLength, Length: zeroPX()},
	PropPaddingTop:         {Kind: InitialLength, Length: zeroPX()},
	PropPaddingRight:       {Kind: InitialLength, Length: zeroPX()},
	PropPaddingBottom:      {Kind: InitialLength, Length: zeroPX()},
	PropPaddingLeft:        {Kind: InitialLength, Length: zeroPX()},
	PropBorderTopWidth:     {Kind: InitialKeyword, KeywordIndex: 1}, // medium
	PropBorderRightWidth:   {Kind: InitialKeyword, KeywordIndex: 1}, // medium
	PropBorderBottomWidth:  {Kind: InitialKeyword, KeywordIndex: 1}, // medium
	PropBorderLeftWidth:    {Kind: InitialKeyword, KeywordIndex: 1}, // medium
	PropBorderTopStyle:     {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropBorderRightStyle:   {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropBorderBottomStyle:  {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropBorderLeftStyle:    {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropBorderTopColor:     {Kind: InitialCurrentColor},
	PropBorderRightColor:   {Kind: InitialCurrentColor},
	PropBorderBottomColor:  {Kind: InitialCurrentColor},
	PropBorderLeftColor:    {Kind: InitialCurrentColor},
	PropOverflow:           {Kind: InitialKeyword, KeywordIndex: 0}, // visible
	PropClip:               {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropVisibility:         {Kind: InitialKeyword, KeywordIndex: 0}, // visible
	PropZIndex:             {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropVerticalAlign:      {Kind: InitialSub, Sub: bytecode.ValueNormal}, // approximates "baseline"

	PropListStyleType:     {Kind: InitialKeyword, KeywordIndex: 0}, // disc
	PropListStylePosition: {Kind: InitialKeyword, KeywordIndex: 1}, // outside
	PropListStyleImage:    {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropCaptionSide:       {Kind: InitialKeyword, KeywordIndex: 0}, // top
	PropBorderCollapse:    {Kind: InitialKeyword, KeywordIndex: 1}, // separate
	PropBorderSpacing:     {Kind: InitialLength, Length: zeroPX()},
	PropEmptyCells:        {Kind: InitialKeyword, KeywordIndex: 0}, // show
	PropTableLayout:       {Kind: InitialKeyword, KeywordIndex: 0}, // auto
	PropContent:           {Kind: InitialSub, Sub: bytecode.ValueNormal},
	PropQuotes:            {Kind: InitialDeferToHandler},
	PropCounterReset:      {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropCounterIncrement:  {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropCursor:            {Kind: InitialSub, Sub: bytecode.ValueAuto},
	PropOutlineWidth:      {Kind: InitialKeyword, KeywordIndex: 1}, // medium
	PropOutlineStyle:      {Kind: InitialKeyword, KeywordIndex: 0}, // none
	PropOutlineColor:      {Kind: InitialCurrentColor},

	PropPageBreakBefore: {Kind: InitialKeyword, KeywordIndex: 0}, // auto
	PropPageBreakAfter:  {Kind: InitialKeyword, KeywordIndex: 0}, // auto
	PropPageBreakInside: {Kind: InitialKeyword, KeywordIndex: 0}, // auto
	PropOrphans:         {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(2)}},
	PropWidows:          {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(2)}},
	PropMarks:           {Kind: InitialKeyword, KeywordIndex: 0}, // none

	PropVolume:           {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(50)}},
	PropSpeak:            {Kind: InitialKeyword, KeywordIndex: 0}, // normal
	PropPauseBefore:      {Kind: InitialLength, Length: zeroPX()},
	PropPauseAfter:       {Kind: InitialLength, Length: zeroPX()},
	PropCueBefore:        {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropCueAfter:         {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropPlayDuring:       {Kind: InitialSub, Sub: bytecode.ValueNone},
	PropAzimuth:          {Kind: InitialLength, Length: Length{Fixed: fixedpoint.Zero}}, // "center"
	PropElevation:        {Kind: InitialLength, Length: Length{Fixed: fixedpoint.Zero}}, // "level"
	PropSpeechRate:       {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(180)}},
	PropVoiceFamily:      {Kind: InitialSub, Sub: bytecode.ValueSet}, // empty list, see ApplyInitial
	PropPitch:            {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(50)}},
	PropPitchRange:       {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(50)}},
	PropStress:           {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(50)}},
	PropRichness:         {Kind: InitialLength, Length: Length{Fixed: fixedpoint.FromInt(50)}},
	PropSpeakPunctuation: {Kind: InitialKeyword, KeywordIndex: 0}, // code
	PropSpeakNumeral:     {Kind: InitialKeyword, KeywordIndex: 0}, // digits
	PropSpeakHeader:      {Kind: InitialKeyword, KeywordIndex: 0}, // once
}

// ApplyInitial installs id's CSS 2.1 initial value into cs. It reports
// false, without touching cs, for the three properties spec §4.8 defers
// to the host (color, font-family, quotes) — callers must fall back to
// Handler.UADefaultForProperty for those.
func (cs *ComputedStyle) ApplyInitial(id PropertyID) bool {
	init := Initials[id]
	switch init.Kind {
	case InitialKeyword:
		cs.SetKeyword(id, bytecode.ValueKeywordBase+uint16(init.KeywordIndex))
	case InitialSub:
		if id == PropVoiceFamily {
			cs.SetExtra(id, &FamilyListValue{})
			return true
		}
		cs.SetKeyword(id, init.Sub)
	case InitialLength:
		cs.SetLength(id, init.Length)
	case InitialColor:
		cs.SetColor(id, 0)
	case InitialCurrentColor:
		cs.SetColor(id, cs.Color(PropColor))
	case InitialBgPosition:
		cs.SetExtra(id, &BgPosition{Value: [2]Length{zeroPct(), zeroPct()}})
	case InitialDeferToHandler:
		return false
	}
	return true
}
