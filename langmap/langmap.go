// Package langmap performs the optional post-detection remapping of
// internal language codes to external labels described in spec.md §4.5.
package langmap

import "golang.org/x/text/language"

// Map is a static internal-code → external-label substitution. Absent keys
// pass through unchanged, per spec.md §4.5.
type Map map[string]string

// Apply returns the external label for code, or code itself if absent from
// m. A nil Map is valid and always passes codes through unchanged.
func (m Map) Apply(code string) string {
	if m == nil {
		return code
	}
	if mapped, ok := m[code]; ok {
		return mapped
	}
	return code
}

// Canonicalize runs code through golang.org/x/text/language's BCP-47
// parser and returns its canonical string form (e.g. normalized casing and
// script subtags), or code unchanged if it does not parse as a language
// tag. This is the second, optional remapping stage SPEC_FULL.md §4.5
// layers on top of Map — it never turns a passing-through code into an
// error, preserving spec.md's "absent keys pass through unchanged"
// invariant for codes this engine does not otherwise recognize.
func Canonicalize(code string) string {
	if code == "" {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
