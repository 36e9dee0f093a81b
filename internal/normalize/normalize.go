package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultTargets is used when the user accepts the default watch list.
var DefaultTargets = []string{"China", "Italy", "USA", "Canada", "Thailand", "Taiwan"}

// Normalize resolves a single user token to a canonical country name.
// Known aliases return the stored value verbatim. Anything else is trimmed
// and capitalized: first letter upper case, the rest lower case.
func Normalize(input string) string {
	trimmed := norm.NFKC.String(strings.TrimSpace(input))
	if trimmed == "" {
		return ""
	}
	if canonical, ok := Lookup(foldKey(trimmed)); ok {
		return canonical
	}
	return capitalize(trimmed)
}

// ParseQuery splits a raw query on commas and newlines and normalizes each
// token. Empty tokens are dropped and duplicates keep their first position.
func ParseQuery(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		name := Normalize(tok)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// IsDefaultRequest reports whether the answer asks for the default list:
// blank input or "yes".
func IsDefaultRequest(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || strings.EqualFold(s, "yes")
}

// Resolve turns a prompt answer into targets. It returns nil when the answer
// names nothing usable, so the caller can ask again.
func Resolve(raw string) []string {
	if IsDefaultRequest(raw) {
		return append([]string(nil), DefaultTargets...)
	}
	targets := ParseQuery(raw)
	if len(targets) == 0 {
		return nil
	}
	return targets
}

func foldKey(s string) string {
	return strings.Join(strings.Fields(cases.Lower(language.Und).String(s)), " ")
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(first)) + cases.Lower(language.Und).String(s[size:])
}
