// Package errcode defines the engine's closed set of error codes (spec §6,
// §7). Engine functions return a plain Go error; when that error
// originates inside the engine it can always be unwrapped to a Code via
// errors.As, so callers that need to branch on the specific failure (e.g.
// treating PropertyNotSet as an in-band "skip" signal) can do so without
// string matching.
package errcode

import "fmt"

// Code is one of the engine's closed set of error codes.
type Code int

const (
	OK Code = iota
	NoMem
	BadParm
	Invalid
	NeedData
	BadCharset
	EOF
	ImportsPending
	PropertyNotSet
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case NoMem:
		return "NOMEM"
	case BadParm:
		return "BADPARM"
	case Invalid:
		return "INVALID"
	case NeedData:
		return "NEEDDATA"
	case BadCharset:
		return "BADCHARSET"
	case EOF:
		return "EOF"
	case ImportsPending:
		return "IMPORTS_PENDING"
	case PropertyNotSet:
		return "PROPERTY_NOT_SET"
	}
	return "UNKNOWN"
}

// Error wraps a Code as a Go error, optionally with a contextual message.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// New creates an *Error for the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// Is reports whether err carries the given Code.
func Is(err error, code Code) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}
