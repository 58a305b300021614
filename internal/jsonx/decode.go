// Package jsonx decodes the free-form JSON text stored in remote record
// fields. The fields have been written by several producers over time, so a
// value may arrive already structured, as well-formed JSON, as JSON with
// unescaped quotes inside string values, or as a Python repr using
// True/False/None and single-quoted strings.
//
// Decode tries each recovery strategy in order and falls back to a
// caller-supplied default. Recovery is best effort: the goal is to salvage
// whatever structure is still readable, never to guarantee correctness.
// Recovered text is parsed by a data-only literal parser; it is never
// evaluated.
package jsonx

import (
	"encoding/json"
	"regexp"
	"strings"
)

// dangerousTokens rejects literal candidates that look like executable
// code rather than a dumped data structure.
var dangerousTokens = regexp.MustCompile(`function|=>|window|document|alert|eval`)

var (
	pyTrue  = regexp.MustCompile(`\bTrue\b`)
	pyFalse = regexp.MustCompile(`\bFalse\b`)
	pyNone  = regexp.MustCompile(`\bNone\b`)
)

// Decode returns the structured value held in raw.
//
// The order of attempts:
//  1. nil and empty strings yield fallback; non-string values are returned
//     as-is (the field was already structured);
//  2. strict JSON decoding;
//  3. a repair pass that escapes unescaped quotes inside string values,
//     then strict decoding again;
//  4. when the text carries Python literal markers (single quotes, True,
//     False), the foreign tokens are substituted and the result is parsed
//     by the strict literal parser, provided it starts with '[' or '{' and
//     contains none of the code-like tokens.
//
// Any failure at the end of the chain returns fallback.
func Decode(raw any, fallback any) any {
	if raw == nil {
		return fallback
	}

	s, ok := raw.(string)
	if !ok {
		return raw
	}
	if s == "" {
		return fallback
	}

	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}

	if repaired := RepairQuotes(s); repaired != s {
		if err := json.Unmarshal([]byte(repaired), &v); err == nil {
			return v
		}
	}

	if v, ok := decodeForeignLiteral(s); ok {
		return v
	}

	return fallback
}

// decodeForeignLiteral handles values dumped by a Python producer:
// True/False/None keywords and single-quoted strings. The substituted text
// is accepted only when it still looks like a data literal.
func decodeForeignLiteral(s string) (any, bool) {
	if !strings.Contains(s, "'") && !strings.Contains(s, "True") && !strings.Contains(s, "False") {
		return nil, false
	}

	friendly := pyTrue.ReplaceAllString(s, "true")
	friendly = pyFalse.ReplaceAllString(friendly, "false")
	friendly = pyNone.ReplaceAllString(friendly, "null")

	trimmed := strings.TrimSpace(friendly)
	if len(trimmed) == 0 || (trimmed[0] != '[' && trimmed[0] != '{') {
		return nil, false
	}
	if dangerousTokens.MatchString(friendly) {
		return nil, false
	}

	v, err := ParseLiteral(trimmed)
	if err != nil {
		return nil, false
	}
	return v, true
}
