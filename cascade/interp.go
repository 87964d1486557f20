package cascade

import (
	"cssengine/bytecode"
	"cssengine/cssom"
	"cssengine/istr"
	"cssengine/style"
)

// Apply interprets blob against the given cascade state and origin,
// writing any declaration that outranks the current winner into cs (spec
// §4.7). It is the single entry point the selector matcher (for
// author/UA/user sheet rules) and the selection context (for the inline
// style and presentational hints) both call.
func Apply(blob *bytecode.Blob, origin cssom.Origin, specificity uint32, cs *style.ComputedStyle, state *StateTable) error {
	c := bytecode.NewCursor(blob)
	for !c.Done() {
		op, value, effImportant, inherit, err := c.ReadOPV()
		if err != nil {
			return err
		}
		id := style.PropertyID(op)
		if int(id) >= style.NumProperties {
			return bytecode.ErrCursorOverrun
		}

		if inherit {
			if state.Outranks(id, specificity, origin, effImportant) {
				state.Win(id, specificity, origin, effImportant, true)
				cs.SetInherit(id)
			}
			continue
		}

		d := style.Table[id]
		dec, err := decodeOperand(c, d, value)
		if err != nil {
			return err
		}
		if !state.Outranks(id, specificity, origin, effImportant) {
			continue // drop: the decoded value simply goes out of scope, GC reclaims it
		}
		state.Win(id, specificity, origin, effImportant, false)
		commit(cs, id, d, dec)
	}
	return nil
}

// ApplyHint installs a presentational-hint or user-agent-default value into
// cs using the same per-family dispatch commit() already uses for
// bytecode-decoded declarations (spec §4.8: a hint is "a decoded
// bytecode-shaped value the cascade interpreter installs as if it had come
// from an author declaration of specificity 0"). Callers outside this
// package cannot reach commit/decoded directly, hence this wrapper.
func ApplyHint(cs *style.ComputedStyle, id style.PropertyID, sub uint16, color uint32, length style.Length, extra interface{}) {
	commit(cs, id, style.Table[id], decoded{sub: sub, color: color, length: length, extra: extra})
}

// commit writes a decoded declaration into cs according to its family.
func commit(cs *style.ComputedStyle, id style.PropertyID, d style.Descriptor, dec decoded) {
	switch d.Family {
	case style.FamilyKeyword, style.FamilyBorderStyle:
		cs.SetKeyword(id, dec.sub)

	case style.FamilyColor:
		cs.SetColor(id, dec.color)

	case style.FamilyBgBorderColor:
		if dec.sub == bytecode.ValueKeywordBase {
			cs.SetKeyword(id, dec.sub)
		} else {
			cs.SetColor(id, dec.color)
		}

	case style.FamilyLength, style.FamilyNumber:
		cs.SetLength(id, dec.length)

	case style.FamilyLengthAuto, style.FamilyLengthNormal, style.FamilyLengthNone, style.FamilyBorderWidth:
		if dec.sub == bytecode.ValueSet {
			cs.SetLength(id, dec.length)
		} else {
			cs.SetKeyword(id, dec.sub)
		}

	case style.FamilyURINone:
		if dec.sub == bytecode.ValueNone {
			cs.SetKeyword(id, dec.sub)
		} else {
			cs.SetStr(id, dec.extra.(istr.Handle))
		}

	case style.FamilyContent:
		if dec.sub == bytecode.ValueSet {
			cs.SetExtra(id, dec.extra)
		} else {
			cs.SetKeyword(id, dec.sub)
		}

	case style.FamilyCounter, style.FamilyNameList, style.FamilyQuotesList, style.FamilyCursorList:
		cs.SetExtra(id, dec.extra)

	case style.FamilyClip, style.FamilyBackgroundPosition:
		cs.SetExtra(id, dec.extra)

	default:
		cs.SetKeyword(id, dec.sub)
	}
}
