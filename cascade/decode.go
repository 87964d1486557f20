package cascade

import (
	"cssengine/bytecode"
	"cssengine/istr"
	"cssengine/style"
)

// decoded holds every field a property family might populate while
// reading one declaration's operands; commit writes only the fields
// relevant to d.Family.
type decoded struct {
	sub    uint16
	color  uint32
	length style.Length
	extra  interface{} // istr.Handle (URI/string families) or a *FamilyListValue/*ContentList/*CounterList/*Quotes/*Cursor/*Clip/*BgPosition
}

// decodeOperand reads the operand(s) (if any) that follow an OPV word
// whose value bits are `value`, per property family d.Family and the
// operand-shape table of spec §3. The cursor is always advanced by
// exactly the bytes the family prescribes, regardless of whether the
// caller will end up keeping or dropping the result (spec §4.7, P6).
func decodeOperand(c *bytecode.Cursor, d style.Descriptor, value uint16) (decoded, error) {
	switch d.Family {
	case style.FamilyKeyword, style.FamilyBorderStyle:
		return decoded{sub: value}, nil

	case style.FamilyColor:
		col, err := c.ReadColor()
		return decoded{color: col}, err

	case style.FamilyBgBorderColor:
		if value == bytecode.ValueKeywordBase {
			return decoded{sub: value}, nil // "transparent"
		}
		col, err := c.ReadColor()
		return decoded{color: col}, err

	case style.FamilyLength:
		f, u, err := c.ReadLength()
		return decoded{length: style.Length{Fixed: f, Unit: u}, sub: bytecode.ValueSet}, err

	case style.FamilyLengthAuto, style.FamilyLengthNormal, style.FamilyLengthNone:
		if value != bytecode.ValueSet {
			return decoded{sub: value}, nil
		}
		f, u, err := c.ReadLength()
		return decoded{length: style.Length{Fixed: f, Unit: u}, sub: bytecode.ValueSet}, err

	case style.FamilyBorderWidth:
		if value >= bytecode.ValueKeywordBase {
			return decoded{sub: value}, nil
		}
		f, u, err := c.ReadLength()
		return decoded{length: style.Length{Fixed: f, Unit: u}, sub: bytecode.ValueSet}, err

	case style.FamilyNumber:
		f, err := c.ReadFixed()
		return decoded{length: style.Length{Fixed: f}, sub: bytecode.ValueSet}, err

	case style.FamilyURINone:
		if value == bytecode.ValueNone {
			return decoded{sub: value}, nil
		}
		h, err := c.ReadHandle()
		return decoded{extra: h, sub: bytecode.ValueSet}, err

	case style.FamilyCounter:
		var terminator bytecode.Opcode
		if d.Name == "counter-reset" {
			terminator = bytecode.OpCounterResetTerminator
		} else {
			terminator = bytecode.OpCounterIncrementTerminator
		}
		list, err := decodeCounterList(c, terminator)
		return decoded{extra: list}, err

	case style.FamilyContent:
		if value == bytecode.ValueNormal || value == bytecode.ValueNone {
			return decoded{sub: value}, nil
		}
		list, err := decodeContentList(c)
		return decoded{extra: list, sub: bytecode.ValueSet}, err

	case style.FamilyNameList:
		list, err := decodeNameList(c)
		return decoded{extra: list}, err

	case style.FamilyQuotesList:
		q, err := decodeQuotes(c)
		return decoded{extra: q}, err

	case style.FamilyCursorList:
		cur, err := decodeCursorList(c)
		return decoded{extra: cur}, err

	case style.FamilyClip:
		clip, err := decodeClip(c)
		return decoded{extra: clip, sub: bytecode.ValueSet}, err

	case style.FamilyBackgroundPosition:
		pos, err := decodeBgPosition(c)
		return decoded{extra: pos, sub: bytecode.ValueSet}, err
	}
	return decoded{sub: value}, nil
}

func decodeCounterList(c *bytecode.Cursor, terminator bytecode.Opcode) (*style.CounterList, error) {
	var entries []style.CounterEntry
	for {
		op, _, _, _, err := c.PeekOPV()
		if err != nil {
			return nil, err
		}
		if op == terminator {
			if _, err := c.ReadWord(); err != nil {
				return nil, err
			}
			break
		}
		h, err := c.ReadHandle()
		if err != nil {
			return nil, err
		}
		v, err := c.ReadWord()
		if err != nil {
			return nil, err
		}
		entries = append(entries, style.CounterEntry{Name: h, Value: int32(v)})
	}
	return &style.CounterList{Entries: entries}, nil
}

func decodeContentList(c *bytecode.Cursor) (*style.ContentList, error) {
	var entries []style.ContentEntry
	for {
		tagOp, _, _, _, err := c.ReadOPV()
		if err != nil {
			return nil, err
		}
		if tagOp == bytecode.OpContentNormal {
			break
		}
		kind := bytecode.ContentKind(tagOp)
		e := style.ContentEntry{Kind: kind}
		switch kind {
		case bytecode.ContentString, bytecode.ContentURI, bytecode.ContentAttr:
			e.Text, err = c.ReadHandle()
		case bytecode.ContentCounter:
			if e.Counter, err = c.ReadHandle(); err == nil {
				var styleWord uint32
				styleWord, err = c.ReadWord()
				e.Style = uint16(styleWord)
			}
		case bytecode.ContentCounters:
			if e.Counter, err = c.ReadHandle(); err == nil {
				if e.Sep, err = c.ReadHandle(); err == nil {
					var styleWord uint32
					styleWord, err = c.ReadWord()
					e.Style = uint16(styleWord)
				}
			}
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return &style.ContentList{Entries: entries}, nil
}

func decodeNameList(c *bytecode.Cursor) (*style.FamilyListValue, error) {
	var entries []style.FamilyEntry
	for {
		op, value, _, _, err := c.ReadOPV()
		if err != nil {
			return nil, err
		}
		if op == bytecode.OpEnd {
			break
		}
		kind := bytecode.ListKind(value)
		h, err := c.ReadHandle()
		if err != nil {
			return nil, err
		}
		entries = append(entries, style.FamilyEntry{Kind: kind, Name: h})
	}
	return &style.FamilyListValue{Entries: entries}, nil
}

func decodeQuotes(c *bytecode.Cursor) (*style.Quotes, error) {
	var result style.Quotes
	for {
		op, _, _, _, err := c.ReadOPV()
		if err != nil {
			return nil, err
		}
		if op == bytecode.OpEnd {
			break
		}
		open, err := c.ReadHandle()
		if err != nil {
			return nil, err
		}
		closeH, err := c.ReadHandle()
		if err != nil {
			return nil, err
		}
		result.Pairs = append(result.Pairs, [2]istr.Handle{open, closeH})
	}
	return &result, nil
}

func decodeCursorList(c *bytecode.Cursor) (*style.Cursor, error) {
	var entries []style.CursorEntry
	for {
		op, value, _, _, err := c.ReadOPV()
		if err != nil {
			return nil, err
		}
		if op == bytecode.OpEnd {
			break
		}
		kind := bytecode.ListKind(value)
		e := style.CursorEntry{Kind: kind}
		if kind == bytecode.ListCursorURI {
			if e.URI, err = c.ReadHandle(); err != nil {
				return nil, err
			}
		} else {
			w, err := c.ReadWord()
			if err != nil {
				return nil, err
			}
			e.Keyword = uint16(w)
		}
		entries = append(entries, e)
	}
	return &style.Cursor{Entries: entries}, nil
}

func decodeClip(c *bytecode.Cursor) (*style.Clip, error) {
	maskWord, err := c.ReadWord()
	if err != nil {
		return nil, err
	}
	var clip style.Clip
	for i := 0; i < 4; i++ {
		if maskWord&(1<<uint(i)) != 0 {
			clip.Auto[i] = true
			continue
		}
		f, u, err := c.ReadLength()
		if err != nil {
			return nil, err
		}
		clip.Side[i] = style.Length{Fixed: f, Unit: u}
	}
	return &clip, nil
}

func decodeBgPosition(c *bytecode.Cursor) (*style.BgPosition, error) {
	var pos style.BgPosition
	for axis := 0; axis < 2; axis++ {
		_, value, _, _, err := c.ReadOPV()
		if err != nil {
			return nil, err
		}
		if value == bytecode.ValueSet {
			f, u, err := c.ReadLength()
			if err != nil {
				return nil, err
			}
			pos.Value[axis] = style.Length{Fixed: f, Unit: u}
		} else {
			pos.IsKeyword[axis] = true
			pos.Keyword[axis] = value
		}
	}
	return &pos, nil
}
