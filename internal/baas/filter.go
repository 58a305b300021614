package baas

import (
	"fmt"
	"strings"
)

// Filter is a record-service filter expression. Expressions are built from
// constructors that escape the embedded values, so untrusted input (user
// ids, client-generated uuids) can never break out of its quoted position.
type Filter struct {
	expr string
}

// Equal builds the equality predicate `field="value"`.
func Equal(field, value string) Filter {
	return Filter{expr: fmt.Sprintf("%s=%s", field, quoteValue(value))}
}

// And joins predicates with the service's && operator.
func And(filters ...Filter) Filter {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if f.expr != "" {
			parts = append(parts, f.expr)
		}
	}
	return Filter{expr: strings.Join(parts, " && ")}
}

// String returns the wire form of the expression; empty for the zero Filter.
func (f Filter) String() string {
	return f.expr
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.expr == ""
}

// quoteValue wraps value in double quotes, escaping backslashes and quotes
// so the result is always a single string literal in the filter grammar.
func quoteValue(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	b.WriteByte('"')
	return b.String()
}
