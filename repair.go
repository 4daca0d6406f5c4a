package lingo

import "strings"

// ExtractJSON returns the first balanced JSON array or object embedded in s.
// It reports false when s contains no opening bracket or the value never
// closes. String literals are honored, so brackets inside quoted values do
// not affect balancing.
func ExtractJSON(s string) (string, bool) {
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return "", false
	}
	if end, ok := matchBracket(s, start); ok {
		return s[start : end+1], true
	}
	return "", false
}

// ExtractJSONArray returns the first JSON array embedded in s. Unlike
// ExtractJSON it does not require the array to be balanced: when the model
// truncated its output the remainder of the string is returned so callers
// can attempt repair. ok is false only when s contains no '[' at all.
func ExtractJSONArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}
	if end, ok := matchBracket(s, start); ok {
		return s[start : end+1], true
	}
	return s[start:], true
}

// RepairJSONArray patches the two truncation shapes local models commonly
// produce at the end of an array: a missing closing ']' and a missing
// closing '}' on the final object. Truncation mid-array (a dropped element
// boundary) is out of scope; such input still fails to parse and callers
// fall back. See ParseChanges.
func RepairJSONArray(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if !strings.HasSuffix(s, "]") {
		s = strings.TrimSuffix(s, ",")
		if openBraces(s) > 0 {
			s += "}"
		}
		return s + "]"
	}
	body := strings.TrimSpace(strings.TrimSuffix(s, "]"))
	if openBraces(body) > 0 {
		return body + "}]"
	}
	return s
}

// openBraces counts unclosed '{' in s, ignoring braces inside string
// literals.
func openBraces(s string) int {
	depth := 0
	inString := false
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case !inString && r == '{':
			depth++
		case !inString && r == '}':
			depth--
		}
	}
	return depth
}

// matchBracket finds the index of the bracket closing s[start], honoring
// nesting of both bracket kinds and string literals.
func matchBracket(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	open := s[start]
	var close byte
	if open == '[' {
		close = ']'
	} else {
		close = '}'
	}
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
