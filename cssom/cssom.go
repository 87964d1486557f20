/*
Package cssom holds the stylesheet data model: the read-only-after-parse
structure produced by a compiler (package cssom/compiler) and consumed by
the selector matcher and cascade interpreter.

Status

Stable for the engine's own use; the shape follows the teacher's CSSOM
split between "rules tree" and "stylesheet", generalized from a
cascadia-driven string matcher to a selector hash over interned detail
chains with precompiled bytecode per rule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("cssengine.cssom")
}

// Origin is the three-valued stakeholder ordering of spec §3/§6: UA < user
// < author.
type Origin uint8

const (
	OriginUA Origin = iota
	OriginUser
	OriginAuthor
)

func (o Origin) String() string {
	switch o {
	case OriginUA:
		return "ua"
	case OriginUser:
		return "user"
	case OriginAuthor:
		return "author"
	}
	return "?"
}

// RuleType distinguishes the kinds of rule a Stylesheet can hold (spec
// §3). @font-face and @page are parsed but otherwise inert for this
// engine's cascade.
type RuleType uint8

const (
	RuleUnknown RuleType = iota
	RuleSelector
	RuleCharset
	RuleImport
	RuleMedia
	RuleFontFace
	RulePage
)

// ParentKind tags what a Rule's parent pointer refers to (spec §9's
// "back-pointer graph" redesign note: an arena of typed nodes addressed by
// an enum rather than an untyped interface{}).
type ParentKind uint8

const (
	ParentIsSheet ParentKind = iota
	ParentIsRule
)
