package compiler

import (
	"strings"

	"cssengine/bytecode"
	"cssengine/fixedpoint"
	"cssengine/istr"
	"cssengine/style"
)

// compileNameList encodes a comma-separated font-family/voice-family
// value (spec §3's "list of (kind, handle) pairs" operand shape).
func compileNameList(e *emitter, id style.PropertyID, value string, important bool, table istr.Table) {
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	for _, tok := range splitValueTokens(value) {
		name := strings.Trim(tok, `"'`)
		kind := bytecode.ListFamilyName
		if isGenericFamily(strings.ToLower(name)) {
			kind = bytecode.ListGenericFamily
		}
		e.opv(bytecode.Opcode(id), uint16(kind), false, false)
		e.handle(table.Intern(name))
	}
	e.opv(bytecode.OpEnd, 0, false, false)
}

// compileQuotes encodes the `quotes` property's alternating open/close
// string pairs.
func compileQuotes(e *emitter, id style.PropertyID, value string, important bool, table istr.Table) {
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	toks := splitValueTokens(value)
	for i := 0; i+1 < len(toks); i += 2 {
		e.opv(bytecode.Opcode(id), 0, false, false)
		e.handle(table.Intern(strings.Trim(toks[i], `"'`)))
		e.handle(table.Intern(strings.Trim(toks[i+1], `"'`)))
	}
	e.opv(bytecode.OpEnd, 0, false, false)
}

// compileCursorList encodes `cursor`'s list of <uri> entries followed by
// one trailing generic keyword.
func compileCursorList(e *emitter, id style.PropertyID, value string, important bool, table istr.Table) {
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	for _, tok := range splitValueTokens(value) {
		if uri, ok := parseURI(tok); ok {
			e.opv(bytecode.Opcode(id), uint16(bytecode.ListCursorURI), false, false)
			e.handle(table.Intern(uri))
			continue
		}
		idx := keywordIndex(cursorKeywords, strings.ToLower(tok))
		if idx < 0 {
			tracer().Infof("unknown cursor keyword %q", tok)
			continue
		}
		e.opv(bytecode.Opcode(id), uint16(bytecode.ListCursorKeyword), false, false)
		e.word(bytecode.Word(uint32(idx)))
	}
	e.opv(bytecode.OpEnd, 0, false, false)
}

// compileCounterList encodes `counter-reset`/`counter-increment`. Each
// entry is a bare handle-index word followed by a raw integer word — no
// OPV wrapper — matching cascade/decode.go's decodeCounterList, which
// peeks the next word only to test it against the terminator opcode and
// otherwise reads it directly as a handle index.
func compileCounterList(e *emitter, d style.Descriptor, id style.PropertyID, value string, important bool, table istr.Table) {
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	terminator := bytecode.OpCounterIncrementTerminator
	defaultValue := int32(1)
	if d.Name == "counter-reset" {
		terminator = bytecode.OpCounterResetTerminator
		defaultValue = 0
	}
	if !strings.EqualFold(value, "none") {
		toks := splitValueTokens(value)
		i := 0
		for i < len(toks) {
			name := toks[i]
			i++
			n := defaultValue
			if i < len(toks) {
				if v, ok := parseIntToken(toks[i]); ok {
					n = v
					i++
				}
			}
			e.handle(table.Intern(name))
			e.word(bytecode.Word(uint32(n)))
		}
	}
	e.opv(terminator, 0, false, false)
}

var listStyleTypeKeywordsForContent = []string{"disc", "circle", "square", "decimal", "decimal-leading-zero", "lower-roman", "upper-roman", "lower-alpha", "upper-alpha", "none"}

func counterStyleIndex(name string) uint32 {
	if idx := keywordIndex(listStyleTypeKeywordsForContent, strings.ToLower(name)); idx >= 0 {
		return uint32(idx)
	}
	return uint32(keywordIndex(listStyleTypeKeywordsForContent, "decimal"))
}

// compileContent encodes the `content` property (spec §3: a list of
// string/uri/counter/counters/attr/quote-marker entries terminated by the
// OpContentNormal sentinel, distinct from a bare "normal"/"none" value).
func compileContent(e *emitter, id style.PropertyID, value string, important bool, table istr.Table) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "normal" || lower == "none" {
		v := bytecode.ValueNormal
		if lower == "none" {
			v = bytecode.ValueNone
		}
		e.opv(bytecode.Opcode(id), v, important, false)
		return
	}
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	for _, tok := range splitValueTokens(value) {
		switch {
		case strings.HasPrefix(tok, `"`) || strings.HasPrefix(tok, "'"):
			e.opv(bytecode.Opcode(bytecode.ContentString), 0, false, false)
			e.handle(table.Intern(strings.Trim(tok, `"'`)))
		case strings.EqualFold(tok, "open-quote"):
			e.opv(bytecode.Opcode(bytecode.ContentOpenQuote), 0, false, false)
		case strings.EqualFold(tok, "close-quote"):
			e.opv(bytecode.Opcode(bytecode.ContentCloseQuote), 0, false, false)
		case strings.EqualFold(tok, "no-open-quote"):
			e.opv(bytecode.Opcode(bytecode.ContentNoOpenQuote), 0, false, false)
		case strings.EqualFold(tok, "no-close-quote"):
			e.opv(bytecode.Opcode(bytecode.ContentNoCloseQuote), 0, false, false)
		default:
			if inner, ok := parseFunc(tok, "url"); ok {
				e.opv(bytecode.Opcode(bytecode.ContentURI), 0, false, false)
				e.handle(table.Intern(strings.Trim(inner, `"'`)))
			} else if inner, ok := parseFunc(tok, "attr"); ok {
				e.opv(bytecode.Opcode(bytecode.ContentAttr), 0, false, false)
				e.handle(table.Intern(strings.TrimSpace(inner)))
			} else if inner, ok := parseFunc(tok, "counters"); ok {
				name, sep, cstyle := parseCountersArgs(inner)
				e.opv(bytecode.Opcode(bytecode.ContentCounters), 0, false, false)
				e.handle(table.Intern(name))
				e.handle(table.Intern(sep))
				e.word(bytecode.Word(cstyle))
			} else if inner, ok := parseFunc(tok, "counter"); ok {
				name, cstyle := parseCounterArgs(inner)
				e.opv(bytecode.Opcode(bytecode.ContentCounter), 0, false, false)
				e.handle(table.Intern(name))
				e.word(bytecode.Word(cstyle))
			} else {
				tracer().Infof("unrecognized content entry %q", tok)
			}
		}
	}
	e.opv(bytecode.OpContentNormal, 0, false, false)
}

// parseCounterArgs parses counter(name[, style]).
func parseCounterArgs(inner string) (name string, styleIdx uint32) {
	parts := strings.Split(inner, ",")
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		return name, counterStyleIndex(strings.TrimSpace(parts[1]))
	}
	return name, counterStyleIndex("decimal")
}

// parseCountersArgs parses counters(name, "sep"[, style]).
func parseCountersArgs(inner string) (name, sep string, styleIdx uint32) {
	parts := strings.Split(inner, ",")
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		sep = strings.Trim(strings.TrimSpace(parts[1]), `"'`)
	}
	if len(parts) > 2 {
		return name, sep, counterStyleIndex(strings.TrimSpace(parts[2]))
	}
	return name, sep, counterStyleIndex("decimal")
}

// compileClip encodes the `clip` property's rect(...) value. decode
// unconditionally reads a 4-bit auto-mask word followed by the non-auto
// sides' lengths (cascade/decode.go's decodeClip never branches on the
// declaration word's value bits), so "clip: auto" is represented as a
// rect with every side marked auto rather than a short keyword form.
func compileClip(e *emitter, id style.PropertyID, value string, important bool) {
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	if strings.EqualFold(strings.TrimSpace(value), "auto") {
		e.word(bytecode.Word(0xF))
		return
	}
	inner, ok := parseFunc(value, "rect")
	parts := []string{}
	if ok {
		parts = splitRectArgs(inner)
	}
	if len(parts) != 4 {
		e.word(bytecode.Word(0xF))
		return
	}
	var mask uint32
	var lengths [4]fixedpoint.T
	var units [4]bytecode.Unit
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "auto") {
			mask |= 1 << uint(i)
			continue
		}
		f, u, ok := parseLength(strings.ToLower(p))
		if !ok {
			mask |= 1 << uint(i)
			continue
		}
		lengths[i], units[i] = f, u
	}
	e.word(bytecode.Word(mask))
	for i := 0; i < 4; i++ {
		if mask&(1<<uint(i)) == 0 {
			e.length(lengths[i], units[i])
		}
	}
}

// compileBgPosition encodes `background-position`'s two axis entries,
// each either a keyword or a length, matching cascade/decode.go's
// decodeBgPosition exactly (no flag on the declaration word itself).
func compileBgPosition(e *emitter, id style.PropertyID, d style.Descriptor, value string, important bool) {
	toks := splitValueTokens(strings.ToLower(value))
	if len(toks) == 1 {
		toks = append(toks, "center")
	}
	e.opv(bytecode.Opcode(id), bytecode.ValueSet, important, false)
	for axis := 0; axis < 2 && axis < len(toks); axis++ {
		tok := toks[axis]
		if idx := keywordIndex(d.Keywords, tok); idx >= 0 {
			e.opv(bytecode.Opcode(id), bytecode.ValueKeywordBase+uint16(idx), false, false)
			continue
		}
		f, u, ok := parseLength(tok)
		if !ok {
			f, u = fixedpoint.Zero, bytecode.UnitPercent
		}
		e.opv(bytecode.Opcode(id), bytecode.ValueSet, false, false)
		e.length(f, u)
	}
}
