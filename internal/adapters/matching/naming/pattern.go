package naming

import "strings"

type patternKind int

const (
	literal patternKind = iota
	prefixWildcard
	suffixWildcard
	containsWildcard
	invalid
)

// Pattern is a naming template: a literal substring or one of the three
// wildcard forms (X*, *X, *X*). Anything else containing '*' matches
// nothing.
type Pattern struct {
	kind patternKind
	text string
	raw  string
}

func ParsePattern(raw string) Pattern {
	if !strings.Contains(raw, "*") {
		return Pattern{kind: literal, text: raw, raw: raw}
	}

	starts := strings.HasPrefix(raw, "*")
	ends := strings.HasSuffix(raw, "*")
	inner := strings.TrimPrefix(strings.TrimSuffix(raw, "*"), "*")
	if strings.Contains(inner, "*") {
		return Pattern{kind: invalid, raw: raw}
	}

	switch {
	case starts && ends:
		return Pattern{kind: containsWildcard, text: inner, raw: raw}
	case starts:
		return Pattern{kind: suffixWildcard, text: inner, raw: raw}
	case ends:
		return Pattern{kind: prefixWildcard, text: inner, raw: raw}
	}
	return Pattern{kind: invalid, raw: raw}
}

func ParsePatterns(raw []string) []Pattern {
	out := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		out = append(out, ParsePattern(r))
	}
	return out
}

// Matches evaluates the candidate name against the pattern. Pure; no
// network or state.
func (p Pattern) Matches(name string) bool {
	switch p.kind {
	case literal, containsWildcard:
		return strings.Contains(name, p.text)
	case prefixWildcard:
		return strings.HasPrefix(name, p.text)
	case suffixWildcard:
		return strings.HasSuffix(name, p.text)
	}
	return false
}

func (p Pattern) String() string {
	return p.raw
}
