package compiler

import (
	"fmt"
	"strings"

	"cssengine/cssom"
	"cssengine/istr"
)

// parseSelectorGroup splits a comma-separated selector list (a rule's raw
// prelude) and parses each chain independently (spec §3: "Selector. A
// right-to-left chain of details joined by combinators").
func parseSelectorGroup(group string, table istr.Table) ([]*cssom.Selector, error) {
	var out []*cssom.Selector
	for _, part := range splitTopLevelComma(group) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sel, err := parseSelectorChain(part, table)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compiler: empty selector group %q", group)
	}
	return out, nil
}

// splitTopLevelComma splits on commas outside of [...] and (...) nesting,
// so "a[data-x=\"a,b\"], b" splits into two selectors rather than three.
func splitTopLevelComma(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// compoundToken is one compound-plus-leading-combinator slice of a chain,
// in left-to-right reading order.
type compoundToken struct {
	comb cssom.Combinator // combinator joining this compound to the PREVIOUS (leftward) one
	text string
}

// parseSelectorChain parses one selector (no commas) into a right-to-left
// cssom.Compound chain plus its precomputed specificity.
func parseSelectorChain(s string, table istr.Table) (*cssom.Selector, error) {
	tokens, err := tokenizeChain(s)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("compiler: empty selector %q", s)
	}
	var build func(i int) (*cssom.Compound, error)
	build = func(i int) (*cssom.Compound, error) {
		details, err := parseCompoundDetails(tokens[i].text, table)
		if err != nil {
			return nil, err
		}
		cp := &cssom.Compound{Details: details}
		if i > 0 {
			cp.Combinator = tokens[i].comb
			next, err := build(i - 1)
			if err != nil {
				return nil, err
			}
			cp.Next = next
			cp.CombinatorName = elementNameOf(next, table)
		}
		return cp, nil
	}
	rightmost, err := build(len(tokens) - 1)
	if err != nil {
		return nil, err
	}
	return &cssom.Selector{
		Rightmost:   rightmost,
		Specificity: cssom.ComputeSpecificity(rightmost),
	}, nil
}

// elementNameOf returns the interned element name of cp's own element
// detail, or the nil Handle if cp has none or is the universal selector
// (spec §4.6: "universal combinator" asks for parent/sibling regardless
// of name).
func elementNameOf(cp *cssom.Compound, table istr.Table) istr.Handle {
	for _, d := range cp.Details {
		if d.Type == cssom.DetailElement && d.Name.String() != cssom.Universal {
			return d.Name
		}
	}
	return istr.Handle{}
}

// tokenizeChain splits a selector string into left-to-right compound
// tokens, recognizing '>' (child) and '+' (adjacent sibling) combinators
// and treating runs of plain whitespace as the descendant combinator.
// Bracketed/parenthesised spans ([attr], :pseudo(arg)) are not split on.
func tokenizeChain(s string) ([]compoundToken, error) {
	s = strings.TrimSpace(s)
	var tokens []compoundToken
	pending := cssom.CombinatorNone
	var buf strings.Builder
	depth := 0
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, compoundToken{comb: pending, text: buf.String()})
		buf.Reset()
		pending = cssom.CombinatorDescendant
	}
	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		switch {
		case c == '[' || c == '(':
			depth++
			buf.WriteByte(c)
			i++
		case c == ']' || c == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("compiler: unbalanced bracket in selector %q", s)
			}
			buf.WriteByte(c)
			i++
		case depth > 0:
			buf.WriteByte(c)
			i++
		case c == ' ' || c == '\t' || c == '\n':
			j := i
			for j < n && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n') {
				j++
			}
			if j < n && (s[j] == '>' || s[j] == '+') {
				i = j
				continue
			}
			flush()
			i = j
		case c == '>' || c == '+':
			flush()
			if c == '>' {
				pending = cssom.CombinatorChild
			} else {
				pending = cssom.CombinatorAdjacentSibling
			}
			i++
			for i < n && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
				i++
			}
		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens, nil
}

// pseudoClassNames and pseudoElementNames list the CSS 2.1
// pseudo-classes/elements named in spec §4.6a; anything else is rejected at compile time
// (spec's Non-goals exclude CSS3 selectors).
var pseudoClassNames = map[string]bool{
	"first-child": true, "link": true, "visited": true,
	"hover": true, "active": true, "focus": true,
}
var pseudoElementNames = map[string]bool{
	"first-line": true, "first-letter": true, "before": true, "after": true,
}

// parseCompoundDetails parses one compound's text ("div.foo#bar:hover")
// into its sibling Details (spec §3, §4.6a).
func parseCompoundDetails(s string, table istr.Table) ([]cssom.Detail, error) {
	var details []cssom.Detail
	i := 0
	n := len(s)

	// Optional leading element name or universal selector.
	if i < n && s[i] != '.' && s[i] != '#' && s[i] != ':' && s[i] != '[' {
		j := i
		for j < n && s[j] != '.' && s[j] != '#' && s[j] != ':' && s[j] != '[' {
			j++
		}
		name := s[i:j]
		details = append(details, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern(name)})
		i = j
	}

	for i < n {
		switch s[i] {
		case '.':
			j := i + 1
			for j < n && s[j] != '.' && s[j] != '#' && s[j] != ':' && s[j] != '[' {
				j++
			}
			details = append(details, cssom.Detail{Type: cssom.DetailClass, Name: table.Intern(s[i+1 : j])})
			i = j
		case '#':
			j := i + 1
			for j < n && s[j] != '.' && s[j] != '#' && s[j] != ':' && s[j] != '[' {
				j++
			}
			details = append(details, cssom.Detail{Type: cssom.DetailID, Name: table.Intern(s[i+1 : j])})
			i = j
		case ':':
			doubled := i+1 < n && s[i+1] == ':'
			start := i + 1
			if doubled {
				start++
			}
			j := start
			for j < n && s[j] != '.' && s[j] != '#' && s[j] != ':' && s[j] != '[' {
				j++
			}
			name := s[start:j]
			if doubled || pseudoElementNames[name] {
				details = append(details, cssom.Detail{Type: cssom.DetailPseudoElement, Name: table.Intern(name)})
			} else if pseudoClassNames[name] {
				details = append(details, cssom.Detail{Type: cssom.DetailPseudoClass, Name: table.Intern(name)})
			} else {
				return nil, fmt.Errorf("compiler: unsupported pseudo-class/element %q", name)
			}
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("compiler: unterminated attribute selector in %q", s)
			}
			j += i
			d, err := parseAttributeDetail(s[i+1:j], table)
			if err != nil {
				return nil, err
			}
			details = append(details, d)
			i = j + 1
		default:
			return nil, fmt.Errorf("compiler: unexpected character %q in selector %q", s[i], s)
		}
	}
	if len(details) == 0 {
		details = append(details, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern(cssom.Universal)})
	}
	return details, nil
}

// parseAttributeDetail parses the contents of one [...] clause: a bare
// name, or name=op"value" for =, ~=, |=.
func parseAttributeDetail(inner string, table istr.Table) (cssom.Detail, error) {
	for _, op := range []string{"~=", "|=", "="} {
		if idx := strings.Index(inner, op); idx >= 0 {
			name := strings.TrimSpace(inner[:idx])
			value := strings.Trim(strings.TrimSpace(inner[idx+len(op):]), `"'`)
			t := cssom.DetailAttributeEquals
			switch op {
			case "~=":
				t = cssom.DetailAttributeIncludes
			case "|=":
				t = cssom.DetailAttributeDashmatch
			}
			return cssom.Detail{Type: t, Name: table.Intern(name), Value: table.Intern(value)}, nil
		}
	}
	return cssom.Detail{Type: cssom.DetailAttribute, Name: table.Intern(strings.TrimSpace(inner))}, nil
}
