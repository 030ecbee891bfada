// Package textutil holds the small string-parsing primitives the driver
// uses on configuration fragments: a quote-aware splitter and a boolean
// alias parser. Both are stateless and allocation-conscious; neither knows
// anything about connection-string structure beyond the one character it
// is told to split on.
package textutil

import "strings"

// SplitQuoted splits source on sep, treating double-quoted runs as atomic:
// a separator inside quotes does not split. Each candidate field is
// trimmed of surrounding whitespace and then stripped of exactly one pair
// of surrounding double-quotes, if present.
//
// Two edge behaviors are load-bearing for the callers that parse
// compound configuration values, and are kept exactly:
//
//   - interior fields that trim to empty are dropped, but the field after
//     the last separator is always appended, even when empty — so
//     SplitQuoted("a,,b", ',') is ["a","b"] while SplitQuoted("a,", ',')
//     is ["a",""]
//   - an unterminated quote is not an error: the remainder of the string
//     becomes the final field
//
// Only a single byte may serve as separator, and there is no escaping of
// the separator outside quotes.
func SplitQuoted(source string, sep byte) []string {
	fields := make([]string, 0, 4)
	for {
		sepAt := -1
		for i := 0; i < len(source); {
			c := source[i]
			if c == '"' {
				j := strings.IndexByte(source[i+1:], '"')
				if j < 0 {
					// Unterminated quote: consume the rest.
					i = len(source)
					continue
				}
				i += j + 2
				continue
			}
			if c == sep {
				sepAt = i
				break
			}
			i++
		}
		if sepAt < 0 {
			return append(fields, unquote(strings.TrimSpace(source)))
		}
		if f := unquote(strings.TrimSpace(source[:sepAt])); f != "" {
			fields = append(fields, f)
		}
		source = source[sepAt+1:]
	}
}

// unquote strips one surrounding pair of double-quotes from s, if both are
// present and s is at least two bytes long.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
