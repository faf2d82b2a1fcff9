// Package helpers holds small parsing utilities shared by the prompt layer
// and the lookup adapters.
package helpers

import "strings"

// SplitName splits a display name into the given and family parts used by
// the researcher-identifier search. The first token is the given name and
// everything after it the family name, so multi-part family names survive.
// A single-token name cannot be split and reports ok=false; the caller skips
// the lookup in that case.
func SplitName(name string) (given, family string, ok bool) {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], strings.Join(parts[1:], " "), true
}
