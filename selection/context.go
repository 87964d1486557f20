/*
Package selection implements spec §4.2's selection context: the ordered
list of registered stylesheets a client queries against, and the single
SelectStyle query that drives a node's partial computed style through
selector matching, the inline-style override, presentational hints, and
initial-value fallback.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selection

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"cssengine/cssom"
	"cssengine/errcode"
	"cssengine/istr"
	"cssengine/mediatype"
)

func tracer() tracing.Trace {
	return tracing.Select("cssengine.selection")
}

// sheetEntry is one registered stylesheet, in insertion order.
type sheetEntry struct {
	Sheet    *cssom.Stylesheet
	Origin   cssom.Origin
	Media    mediatype.Mask
	Disabled bool
}

// Context holds a client's ordered list of registered stylesheets (spec
// §4.2). A Context is safe for concurrent use; the engine itself runs one
// selection at a time per context, but the mutex guards sheet-list
// mutation against a concurrently running SelectStyle query.
type Context struct {
	mu     sync.RWMutex
	sheets []sheetEntry
	table  istr.Table
}

// New creates an empty Context backed by table, the interned-string
// facility SelectStyle uses when a presentational hint's wire shape (e.g.
// quotes' plain-string pairs) needs interning before it can be written
// into a style.ComputedStyle.
func New(table istr.Table) *Context {
	return &Context{table: table}
}

// InsertSheet registers sheet at index, shifting later entries up (spec
// §4.2). It fails with BADPARM if ctx or sheet is nil, INVALID if sheet is
// a single-rule inline-style sheet (those are never registered; they are
// supplied per-query to SelectStyle) or index is out of range.
func (ctx *Context) InsertSheet(sheet *cssom.Stylesheet, index int, origin cssom.Origin, media mediatype.Mask) error {
	if ctx == nil || sheet == nil {
		return errcode.New(errcode.BadParm, "nil context or sheet")
	}
	if sheet.InlineStyle {
		return errcode.New(errcode.Invalid, "inline-style sheets are not registered in a context")
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if index < 0 || index > len(ctx.sheets) {
		return errcode.New(errcode.Invalid, "index out of range")
	}
	entry := sheetEntry{Sheet: sheet, Origin: origin, Media: media}
	ctx.sheets = append(ctx.sheets, sheetEntry{})
	copy(ctx.sheets[index+1:], ctx.sheets[index:])
	ctx.sheets[index] = entry
	tracer().Debugf("inserted sheet at index %d, origin=%s", index, origin)
	return nil
}

// AppendSheet registers sheet after every sheet already in ctx.
func (ctx *Context) AppendSheet(sheet *cssom.Stylesheet, origin cssom.Origin, media mediatype.Mask) error {
	if ctx == nil {
		return errcode.New(errcode.BadParm, "nil context")
	}
	ctx.mu.RLock()
	n := len(ctx.sheets)
	ctx.mu.RUnlock()
	return ctx.InsertSheet(sheet, n, origin, media)
}

// RemoveSheet deregisters the sheet at index.
func (ctx *Context) RemoveSheet(index int) error {
	if ctx == nil {
		return errcode.New(errcode.BadParm, "nil context")
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if index < 0 || index >= len(ctx.sheets) {
		return errcode.New(errcode.Invalid, "index out of range")
	}
	ctx.sheets = append(ctx.sheets[:index], ctx.sheets[index+1:]...)
	return nil
}

// CountSheets reports how many sheets are currently registered.
func (ctx *Context) CountSheets() int {
	if ctx == nil {
		return 0
	}
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return len(ctx.sheets)
}

// GetSheet returns the sheet registered at index along with its origin and
// media mask.
func (ctx *Context) GetSheet(index int) (*cssom.Stylesheet, cssom.Origin, mediatype.Mask, error) {
	if ctx == nil {
		return nil, 0, 0, errcode.New(errcode.BadParm, "nil context")
	}
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	if index < 0 || index >= len(ctx.sheets) {
		return nil, 0, 0, errcode.New(errcode.Invalid, "index out of range")
	}
	e := ctx.sheets[index]
	return e.Sheet, e.Origin, e.Media, nil
}

// snapshotSheets copies the current sheet list under the read lock, so
// SelectStyle can walk it without holding ctx.mu across selector matching.
func (ctx *Context) snapshotSheets() []sheetEntry {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	out := make([]sheetEntry, len(ctx.sheets))
	copy(out, ctx.sheets)
	return out
}

// DisableSheet toggles whether the sheet at index participates in
// selection, without removing it from the context (e.g. a client's
// alternate-stylesheet switch).
func (ctx *Context) DisableSheet(index int, disabled bool) error {
	if ctx == nil {
		return errcode.New(errcode.BadParm, "nil context")
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if index < 0 || index >= len(ctx.sheets) {
		return errcode.New(errcode.Invalid, "index out of range")
	}
	ctx.sheets[index].Disabled = disabled
	return nil
}
