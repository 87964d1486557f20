package compiler

import (
	"strings"

	"cssengine/bytecode"
	"cssengine/cssom"
	"cssengine/istr"
	"cssengine/style"
)

// inlineSpecificity is the packed specificity recorded on a style=""
// rule's single selector. The matcher never sees it (selection applies
// inline bytecode directly, bypassing the selector hash per spec §4.2
// step 3), but selection passes it to cascade.Apply, so
// StateTable.Outranks compares it against the specificity of sheet
// declarations already applied; it outranks every selector with fewer
// than 255 id details.
const inlineSpecificity = uint32(255) << 24

// CompileInlineStyle compiles a style="..." attribute value into a
// Stylesheet holding exactly one selector rule whose chain carries zero
// details (spec §4.2 step 3's "inline_style must contain exactly one
// selector rule with zero items"): the rule is applied by its bytecode
// directly, never matched against a node. Parsing follows the teacher's
// manual ";"/":" attribute splitting (dom/style/cssom/cssom.go's
// newLocalPseudoRule) rather than douceur's full stylesheet grammar,
// since a style attribute has no selector prelude for douceur to parse.
func CompileInlineStyle(attrValue string, table istr.Table) (*cssom.Stylesheet, error) {
	decls := parseInlineDeclarations(attrValue)
	blob := &bytecode.Blob{}
	e := &emitter{blob: blob}
	for _, d := range decls {
		for _, pair := range expandCompound(d.property, d.value) {
			id, ok := style.Lookup(pair.Key)
			if !ok {
				tracer().Infof("skipping unknown property %q", pair.Key)
				continue
			}
			compileOneDeclaration(e, id, pair.Value, d.important, table)
		}
	}
	sheet := cssom.New()
	sel := &cssom.Selector{
		Rightmost:   &cssom.Compound{},
		Specificity: inlineSpecificity,
	}
	sheet.AddRule(&cssom.Rule{
		Type:      cssom.RuleSelector,
		ItemCount: len(decls),
		Selectors: []*cssom.Selector{sel},
		Bytecode:  blob,
	})
	sheet.Finalize()
	sheet.InlineStyle = true
	return sheet, nil
}

// parseInlineDeclarations splits a style attribute's ";"-separated
// "property: value" pairs, skipping empty segments and logging
// ill-formed ones, matching newLocalPseudoRule's behaviour.
func parseInlineDeclarations(attrValue string) []*inlineDeclaration {
	var decls []*inlineDeclaration
	for _, st := range strings.Split(attrValue, ";") {
		st = strings.TrimSpace(st)
		if st == "" {
			continue
		}
		important := false
		if bang := strings.Index(st, "!important"); bang >= 0 {
			important = true
			st = strings.TrimSpace(st[:bang])
		}
		parts := strings.SplitN(st, ":", 2)
		if len(parts) < 2 {
			tracer().Errorf("skipping ill-formed style declaration: %s", st)
			continue
		}
		decls = append(decls, &inlineDeclaration{
			property:  strings.TrimSpace(parts[0]),
			value:     strings.TrimSpace(parts[1]),
			important: important,
		})
	}
	return decls
}

type inlineDeclaration struct {
	property  string
	value     string
	important bool
}
