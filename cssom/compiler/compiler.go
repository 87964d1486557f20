/*
Package compiler turns CSS source text into a cssengine/cssom.Stylesheet
whose selector rules carry compiled cssengine/bytecode.Blob bodies (spec
§1's "bit-exact bytecode" consumption boundary, and §3's stylesheet data
model).

Parsing itself (tokenising CSS source into a rule/declaration AST) is an
external collaborator per spec §1; this package adapts the teacher's
douceur-based CSSOM construction (dom/style/cssom/douceuradapter.go) to
walk that AST and emit our own rule/selector/bytecode representation
instead of exposing raw string property values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package compiler

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"

	"cssengine/cssom"
	"cssengine/istr"
	"cssengine/mediatype"
)

func tracer() tracing.Trace {
	return tracing.Select("cssengine.cssom.compiler")
}

// Compile parses src as a CSS stylesheet (top-level @charset/@import/
// @media/@font-face/@page/selector rules) and compiles it into a
// cssom.Stylesheet ready for the selector matcher, interning every name
// via table.
func Compile(src string, table istr.Table) (*cssom.Stylesheet, error) {
	parsed, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	sheet := cssom.New()
	c := &compileState{sheet: sheet, table: table}
	c.addRules(parsed.Rules, cssom.ParentIsSheet, -1)
	sheet.Finalize()
	return sheet, nil
}

type compileState struct {
	sheet *cssom.Stylesheet
	table istr.Table
}

// addRules compiles a slice of douceur rules, all sharing the same parent
// (a stylesheet, or an enclosing @media rule at index parentIdx).
func (c *compileState) addRules(rules []*css.Rule, parentKind cssom.ParentKind, parentIdx int) {
	for _, r := range rules {
		c.addRule(r, parentKind, parentIdx)
	}
}

func (c *compileState) addRule(r *css.Rule, parentKind cssom.ParentKind, parentIdx int) {
	if r.Kind == css.AtRule {
		c.addAtRule(r, parentKind, parentIdx)
		return
	}
	c.addSelectorRule(r, parentKind, parentIdx)
}

func (c *compileState) addSelectorRule(r *css.Rule, parentKind cssom.ParentKind, parentIdx int) {
	chains, err := parseSelectorGroup(r.Prelude, c.table)
	if err != nil {
		tracer().Errorf("skipping rule with unparsable selector %q: %v", r.Prelude, err)
		return
	}
	blob := compileDeclarations(r.Declarations, c.table)
	rule := &cssom.Rule{
		Type:       cssom.RuleSelector,
		ItemCount:  len(r.Declarations),
		ParentKind: parentKind,
		ParentIdx:  parentIdx,
		Selectors:  chains,
		Bytecode:   blob,
	}
	c.sheet.AddRule(rule)
}

func (c *compileState) addAtRule(r *css.Rule, parentKind cssom.ParentKind, parentIdx int) {
	switch strings.ToLower(r.Name) {
	case "charset":
		// Spec §4.4: "for each sheet, skip leading charset rules" — not
		// recorded as a rule at all.
		return
	case "import":
		rule := &cssom.Rule{
			Type:       cssom.RuleImport,
			ParentKind: parentKind,
			ParentIdx:  parentIdx,
			Media:      parseMediaQuery(r.Prelude),
			Child:      nil, // resolving the imported URL is outside this engine's scope
		}
		c.sheet.AddRule(rule)
	case "media":
		rule := &cssom.Rule{
			Type:       cssom.RuleMedia,
			ParentKind: parentKind,
			ParentIdx:  parentIdx,
			Media:      parseMediaQuery(r.Prelude),
		}
		idx := c.sheet.AddRule(rule)
		c.addRules(r.Rules, cssom.ParentIsRule, idx)
		rule.Children = childIndices(c.sheet, idx)
	case "font-face":
		rule := &cssom.Rule{
			Type:       cssom.RuleFontFace,
			ItemCount:  len(r.Declarations),
			ParentKind: parentKind,
			ParentIdx:  parentIdx,
			Bytecode:   compileDeclarations(r.Declarations, c.table),
		}
		c.sheet.AddRule(rule)
	case "page":
		rule := &cssom.Rule{
			Type:       cssom.RulePage,
			ItemCount:  len(r.Declarations),
			ParentKind: parentKind,
			ParentIdx:  parentIdx,
			Bytecode:   compileDeclarations(r.Declarations, c.table),
		}
		c.sheet.AddRule(rule)
	default:
		tracer().Infof("ignoring unrecognized at-rule @%s", r.Name)
		c.sheet.AddRule(&cssom.Rule{Type: cssom.RuleUnknown, ParentKind: parentKind, ParentIdx: parentIdx})
	}
}

func childIndices(sheet *cssom.Stylesheet, parentIdx int) []int {
	var idxs []int
	for i, r := range sheet.Rules {
		if r.ParentKind == cssom.ParentIsRule && r.ParentIdx == parentIdx {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// parseMediaQuery extracts the media-type keywords named in a (possibly
// comma-separated) @media prelude. Feature queries ("(min-width: ...)")
// have no equivalent in mediatype.Mask and are ignored, matching spec
// §6's "one bit per CSS media type" model; an empty/unrecognized prelude
// defaults to All, CSS's behaviour for "no media types given".
func parseMediaQuery(prelude string) mediatype.Mask {
	var mask mediatype.Mask
	for _, clause := range strings.Split(prelude, ",") {
		clause = strings.ToLower(clause)
		switch {
		case strings.Contains(clause, "screen"):
			mask |= mediatype.Screen
		case strings.Contains(clause, "print"):
			mask |= mediatype.Print
		case strings.Contains(clause, "aural"):
			mask |= mediatype.Aural
		case strings.Contains(clause, "braille"):
			mask |= mediatype.Braille
		case strings.Contains(clause, "embossed"):
			mask |= mediatype.Embossed
		case strings.Contains(clause, "handheld"):
			mask |= mediatype.Handheld
		case strings.Contains(clause, "projection"):
			mask |= mediatype.Projection
		case strings.Contains(clause, "speech"):
			mask |= mediatype.Speech
		case strings.Contains(clause, "tty"):
			mask |= mediatype.TTY
		case strings.Contains(clause, "tv"):
			mask |= mediatype.TV
		case strings.Contains(clause, "all") || clause == "":
			mask |= mediatype.All
		}
	}
	if mask == 0 {
		mask = mediatype.All
	}
	return mask
}
