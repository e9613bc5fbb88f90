package validator

import "strings"

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// Sanitize maps a raw resource name to a Go identifier. The convention is
// fixed and total: runes outside [A-Za-z0-9_] are dropped, an empty result
// becomes "resource", a leading digit gains an "x" prefix, public access
// upper-cases the first rune, and a result equal to a Go keyword gains a
// trailing underscore. Same input and scope always yield the same identifier.
func Sanitize(raw string, public bool) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		s = "resource"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "x" + s
	}
	if public {
		s = strings.ToUpper(s[:1]) + s[1:]
	}
	if goKeywords[s] {
		s += "_"
	}
	return s
}

// lowerFirst derives the unexported internal spelling of an identifier.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
