package jsonx

import "strings"

// RepairQuotes escapes unescaped double quotes that occur inside string
// values, e.g. `{"title": "He said "hi""}`. A string value is recognised by
// a colon-quote opener; a quote closes the value only when the next
// non-space character is ',', '}' or a line break. Quotes anywhere else
// inside the value are treated as content and escaped.
//
// The input is returned unchanged when no repair is needed.
func RepairQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inValue := false
	changed := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if !inValue {
			b.WriteByte(c)
			if c == ':' {
				// Skip whitespace between the colon and the opening quote.
				j := i + 1
				for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
					b.WriteByte(s[j])
					j++
				}
				if j < len(s) && s[j] == '"' {
					b.WriteByte('"')
					inValue = true
				}
				i = j
				if !inValue && j < len(s) {
					b.WriteByte(s[j])
				}
			}
			continue
		}

		switch c {
		case '\\':
			// Keep existing escape pairs untouched.
			b.WriteByte(c)
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '"':
			if closesValue(s, i+1) {
				b.WriteByte('"')
				inValue = false
			} else {
				b.WriteString(`\"`)
				changed = true
			}
		default:
			b.WriteByte(c)
		}
	}

	if !changed {
		return s
	}
	return b.String()
}

// closesValue reports whether a quote at position-1 terminates the current
// string value: the next non-space byte must be a comma, a closing brace or
// a line break, or the end of input.
func closesValue(s string, next int) bool {
	for next < len(s) && (s[next] == ' ' || s[next] == '\t') {
		next++
	}
	if next >= len(s) {
		return true
	}
	switch s[next] {
	case ',', '}', '\n', '\r':
		return true
	}
	return false
}
