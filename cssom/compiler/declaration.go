package compiler

import (
	"strings"

	"github.com/aymerick/douceur/css"

	"cssengine/bytecode"
	"cssengine/istr"
	"cssengine/style"
)

// compileDeclarations compiles a rule's declaration block into a bytecode
// blob, expanding compound properties to longhands first so the cascade
// interpreter never sees a shorthand opcode (spec §13).
func compileDeclarations(decls []*css.Declaration, table istr.Table) *bytecode.Blob {
	blob := &bytecode.Blob{}
	e := &emitter{blob: blob}
	for _, d := range decls {
		name := strings.ToLower(strings.TrimSpace(d.Property))
		value := strings.TrimSpace(d.Value)
		for _, pair := range expandCompound(name, value) {
			id, ok := style.Lookup(pair.Key)
			if !ok {
				tracer().Infof("skipping unknown property %q", pair.Key)
				continue
			}
			compileOneDeclaration(e, id, pair.Value, d.Important, table)
		}
	}
	return blob
}

// compileOneDeclaration emits exactly the words cascade/decode.go's
// decodeOperand would consume for id's family, given a single longhand
// value string.
func compileOneDeclaration(e *emitter, id style.PropertyID, value string, important bool, table istr.Table) {
	d := style.Table[id]
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)
	if lower == "inherit" {
		e.opv(bytecode.Opcode(id), bytecode.ValueUnset, important, true)
		return
	}

	switch d.Family {
	case style.FamilyKeyword, style.FamilyBorderStyle:
		idx := keywordIndex(d.Keywords, lower)
		if idx < 0 {
			tracer().Infof("unknown keyword %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueKeywordBase+uint16(idx), important, false)

	case style.FamilyColor:
		col, ok := parseColor(lower)
		if !ok {
			tracer().Infof("unparsable color %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
		e.word(bytecode.Word(col))

	case style.FamilyBgBorderColor:
		if lower == "transparent" {
			e.opv(bytecode.Opcode(id), bytecode.ValueKeywordBase, important, false)
			return
		}
		col, ok := parseColor(lower)
		if !ok {
			tracer().Infof("unparsable color %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
		e.word(bytecode.Word(col))

	case style.FamilyLength:
		f, u, ok := parseLength(lower)
		if !ok {
			tracer().Infof("unparsable length %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
		e.length(f, u)

	case style.FamilyLengthAuto:
		compileLengthIsh(e, id, lower, important, bytecode.ValueAuto, "auto")
	case style.FamilyLengthNormal:
		compileLengthIsh(e, id, lower, important, bytecode.ValueNormal, "normal")
	case style.FamilyLengthNone:
		compileLengthIsh(e, id, lower, important, bytecode.ValueNone, "none")

	case style.FamilyBorderWidth:
		if idx := keywordIndex(d.Keywords, lower); idx >= 0 {
			e.opv(bytecode.Opcode(id), bytecode.ValueKeywordBase+uint16(idx), important, false)
			return
		}
		f, u, ok := parseLength(lower)
		if !ok {
			tracer().Infof("unparsable border-width %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
		e.length(f, u)

	case style.FamilyNumber:
		f, ok := parseNumber(lower)
		if !ok {
			tracer().Infof("unparsable number %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
		e.word(bytecode.Word(uint32(int32(f))))

	case style.FamilyURINone:
		if lower == "none" {
			e.opv(bytecode.Opcode(id), bytecode.ValueNone, important, false)
			return
		}
		uri, ok := parseURI(value)
		if !ok {
			tracer().Infof("unparsable URI %q for %s", value, d.Name)
			return
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
		e.handle(table.Intern(uri))

	case style.FamilyCounter:
		compileCounterList(e, d, id, value, important, table)

	case style.FamilyContent:
		compileContent(e, id, value, important, table)

	case style.FamilyNameList:
		compileNameList(e, id, value, important, table)

	case style.FamilyQuotesList:
		compileQuotes(e, id, value, important, table)

	case style.FamilyCursorList:
		compileCursorList(e, id, value, important, table)

	case style.FamilyClip:
		compileClip(e, id, value, important)

	case style.FamilyBackgroundPosition:
		compileBgPosition(e, id, d, value, important)

	default:
		tracer().Infof("property %s has no known operand family", d.Name)
	}
}

// compileLengthIsh handles the three "length, or a single flag keyword"
// families (auto/normal/none), whose decode only reads an operand when
// the declaration word's value bits equal bytecode.ValueSet.
func compileLengthIsh(e *emitter, id style.PropertyID, lower string, important bool, flagValue uint16, keyword string) {
	if lower == keyword {
		e.opv(bytecode.Opcode(id), flagValue, important, false)
		return
	}
	f, u, ok := parseLength(lower)
	if !ok {
		tracer().Infof("unparsable length %q for property %d", lower, id)
		return
	}
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	e.length(f, u)
}
