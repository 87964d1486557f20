package compiler

import (
	"regexp"
	"strconv"
	"strings"

	"cssengine/bytecode"
	"cssengine/fixedpoint"
	"cssengine/istr"
)

// emitter is a small write-only cursor over a bytecode.Blob, the inverse
// of bytecode.Cursor (spec §3's OPV wire format): each method appends
// exactly the words a matching cascade/decode.go read would consume.
type emitter struct {
	blob *bytecode.Blob
}

func (e *emitter) word(w bytecode.Word) { e.blob.Words = append(e.blob.Words, w) }

func (e *emitter) opv(op bytecode.Opcode, value uint16, important, inherit bool) {
	e.word(bytecode.EncodeOPV(op, value, important, inherit))
}

func (e *emitter) handle(h istr.Handle) { e.word(bytecode.Word(e.blob.PutHandle(h))) }

func (e *emitter) length(f fixedpoint.T, u bytecode.Unit) {
	e.word(bytecode.Word(uint32(int32(f))))
	e.word(bytecode.Word(u))
}

func keywordIndex(keywords []string, value string) int {
	for i, kw := range keywords {
		if kw == value {
			return i
		}
	}
	return -1
}

// splitValueTokens splits a declaration's value text on whitespace and
// commas, keeping function calls (url(...), rgb(...), rect(...), ...) and
// quoted strings intact as single tokens.
func splitValueTokens(s string) []string {
	var tokens []string
	var buf strings.Builder
	depth := 0
	var quote byte
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			buf.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			buf.WriteByte(c)
		case c == '(':
			depth++
			buf.WriteByte(c)
		case c == ')':
			depth--
			buf.WriteByte(c)
		case depth > 0:
			buf.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n' || c == ',':
			flush()
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// parseFunc reports whether tok is a CSS functional notation call to
// name(...) and, if so, returns its argument text.
func parseFunc(tok, name string) (string, bool) {
	t := strings.TrimSpace(tok)
	lower := strings.ToLower(t)
	prefix := name + "("
	if !strings.HasPrefix(lower, prefix) || !strings.HasSuffix(t, ")") {
		return "", false
	}
	return t[len(prefix) : len(t)-1], true
}

func splitRectArgs(inner string) []string {
	var parts []string
	for _, p := range strings.FieldsFunc(inner, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		parts = append(parts, p)
	}
	return parts
}

func parseIntToken(tok string) (int32, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

var genericFamilies = map[string]bool{
	"serif": true, "sans-serif": true, "cursive": true, "fantasy": true, "monospace": true,
}

func isGenericFamily(name string) bool { return genericFamilies[name] }

// cursorKeywords is the CSS 2.1 generic cursor keyword set (spec §4.6a
// lists per-property detail predicates, but `cursor`'s value grammar
// itself is just "list of <uri> ending in one of these keywords").
var cursorKeywords = []string{
	"auto", "crosshair", "default", "pointer", "move", "e-resize", "ne-resize",
	"nw-resize", "n-resize", "se-resize", "sw-resize", "s-resize", "w-resize",
	"text", "wait", "help", "progress",
}

var namedColors = map[string]uint32{
	"black": 0xFF000000, "white": 0xFFFFFFFF, "red": 0xFFFF0000, "green": 0xFF008000,
	"blue": 0xFF0000FF, "yellow": 0xFFFFFF00, "gray": 0xFF808080, "grey": 0xFF808080,
	"silver": 0xFFC0C0C0, "maroon": 0xFF800000, "purple": 0xFF800080, "fuchsia": 0xFFFF00FF,
	"lime": 0xFF00FF00, "olive": 0xFF808000, "navy": 0xFF000080, "teal": 0xFF008080,
	"aqua": 0xFF00FFFF, "orange": 0xFFFFA500,
}

// parseColor decodes a CSS 2.1 color value: a named color, #rgb/#rrggbb,
// rgb(r,g,b), or rgba(r,g,b,a), packing the result via
// bytecode.MakeRGBA. The alpha channel defaults to opaque for the forms
// that carry none (spec §8 scenario 2's rgba/rgb/hex equivalence check).
func parseColor(s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if inner, ok := parseFunc(s, "rgba"); ok {
		return parseRGBAFunc(inner)
	}
	if inner, ok := parseFunc(s, "rgb"); ok {
		return parseRGBFunc(inner)
	}
	return 0, false
}

func hexByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func parseHexColor(hex string) (uint32, bool) {
	switch len(hex) {
	case 3:
		r, ok1 := hexByte(hex[0:1] + hex[0:1])
		g, ok2 := hexByte(hex[1:2] + hex[1:2])
		b, ok3 := hexByte(hex[2:3] + hex[2:3])
		if !ok1 || !ok2 || !ok3 {
			return 0, false
		}
		return bytecode.MakeRGBA(r, g, b, 255), true
	case 6:
		r, ok1 := hexByte(hex[0:2])
		g, ok2 := hexByte(hex[2:4])
		b, ok3 := hexByte(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return 0, false
		}
		return bytecode.MakeRGBA(r, g, b, 255), true
	}
	return 0, false
}

func parseColorChannel(tok string) (uint8, bool) {
	tok = strings.TrimSpace(tok)
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, false
		}
		return uint8(v * 255 / 100), true
	}
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, false
	}
	if v > 255 {
		v = 255
	}
	return uint8(v), true
}

func parseRGBFunc(args string) (uint32, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return 0, false
	}
	r, ok1 := parseColorChannel(parts[0])
	g, ok2 := parseColorChannel(parts[1])
	b, ok3 := parseColorChannel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return 0, false
	}
	return bytecode.MakeRGBA(r, g, b, 255), true
}

func parseRGBAFunc(args string) (uint32, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return 0, false
	}
	r, ok1 := parseColorChannel(parts[0])
	g, ok2 := parseColorChannel(parts[1])
	b, ok3 := parseColorChannel(parts[2])
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if !ok1 || !ok2 || !ok3 || err != nil {
		return 0, false
	}
	return bytecode.MakeRGBA(r, g, b, uint8(alpha*255)), true
}

var lengthRe = regexp.MustCompile(`^(-?[0-9]*\.?[0-9]+)(px|em|ex|%|pt|pc|cm|mm|in|deg|rad|grad)?$`)

// parseLength decodes a dimensioned CSS number into fixed-point plus unit
// (spec §3: "32-bit fixed + 32-bit unit"). A bare "0" is legal without a
// unit in CSS and defaults to pixels.
func parseLength(s string) (fixedpoint.T, bytecode.Unit, bool) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return fixedpoint.Zero, bytecode.UnitPX, true
	}
	m := lengthRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return fixedpoint.FromFloat64(f), unitFromSuffix(m[2]), true
}

func unitFromSuffix(suf string) bytecode.Unit {
	switch suf {
	case "em":
		return bytecode.UnitEM
	case "ex":
		return bytecode.UnitEX
	case "%":
		return bytecode.UnitPercent
	case "pt":
		return bytecode.UnitPT
	case "pc":
		return bytecode.UnitPC
	case "cm":
		return bytecode.UnitCM
	case "mm":
		return bytecode.UnitMM
	case "in":
		return bytecode.UnitIN
	case "deg":
		return bytecode.UnitDeg
	case "rad":
		return bytecode.UnitRad
	case "grad":
		return bytecode.UnitGrad
	}
	return bytecode.UnitPX
}

func parseNumber(s string) (fixedpoint.T, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return fixedpoint.FromFloat64(f), true
}

func parseURI(value string) (string, bool) {
	inner, ok := parseFunc(value, "url")
	if !ok {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(inner), `"'`), true
}
