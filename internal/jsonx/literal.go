// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ParseLiteral parses a data literal into Go values: objects become
// map[string]any, arrays []any, numbers float64. Unlike encoding/json it
// also accepts single-quoted strings and trailing commas, which is enough
// to read values dumped by a Python producer once True/False/None have been
// substituted. Nothing beyond object/array/string/number/bool/null is
// accepted; the input is data, never code.
func ParseLiteral(s string) (any, error) {
	p := &literalParser{src: s}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing data at offset %d", p.pos)
	}
	return v, nil
}

type literalParser struct {
	src string
	pos int
}

var errUnexpectedEnd = errors.New("unexpected end of literal")

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) peek() (byte, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, errUnexpectedEnd
	}
	return p.src[p.pos], nil
}

func (p *literalParser) parseValue() (any, error) {
	c, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case p.hasKeyword("true"):
		return true, nil
	case p.hasKeyword("false"):
		return false, nil
	case p.hasKeyword("null"):
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected character %q at offset %d", c, p.pos)
}

func (p *literalParser) hasKeyword(kw string) bool {
	if strings.HasPrefix(p.src[p.pos:], kw) {
		p.pos += len(kw)
		return true
	}
	return false
}

func (p *literalParser) parseObject() (map[string]any, error) {
	p.pos++ // consume '{'
	obj := make(map[string]any)

	for {
		c, err := p.peek()
		if err != nil {
			return nil, err
		}
		if c == '}' {
			p.pos++
			return obj, nil
		}
		if c != '"' && c != '\'' {
			return nil, fmt.Errorf("expected object key at offset %d", p.pos)
		}

		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		if c, err = p.peek(); err != nil {
			return nil, err
		} else if c != ':' {
			return nil, fmt.Errorf("expected ':' at offset %d", p.pos)
		}
		p.pos++

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[key] = value

		if c, err = p.peek(); err != nil {
			return nil, err
		}
		switch c {
		case ',':
			p.pos++
		case '}':
		default:
			return nil, fmt.Errorf("expected ',' or '}' at offset %d", p.pos)
		}
	}
}

func (p *literalParser) parseArray() ([]any, error) {
	p.pos++ // consume '['
	arr := make([]any, 0)

	for {
		c, err := p.peek()
		if err != nil {
			return nil, err
		}
		if c == ']' {
			p.pos++
			return arr, nil
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)

		if c, err = p.peek(); err != nil {
			return nil, err
		}
		switch c {
		case ',':
			p.pos++
		case ']':
		default:
			return nil, fmt.Errorf("expected ',' or ']' at offset %d", p.pos)
		}
	}
}

func (p *literalParser) parseString() (string, error) {
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", errUnexpectedEnd
			}
			p.pos++
			esc := p.src[p.pos]
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
				continue
			default:
				// Includes \" \' \\ and \/.
				b.WriteByte(esc)
			}
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", errUnexpectedEnd
}

// parseUnicodeEscape decodes \uXXXX, pairing surrogates when present.
// p.pos sits on the 'u'; on return it sits past the consumed hex digits.
func (p *literalParser) parseUnicodeEscape() (rune, error) {
	if p.pos+4 >= len(p.src) {
		return 0, errUnexpectedEnd
	}
	n, err := strconv.ParseUint(p.src[p.pos+1:p.pos+5], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid unicode escape at offset %d", p.pos)
	}
	p.pos += 5

	r := rune(n)
	if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[p.pos:], `\u`) && p.pos+5 < len(p.src) {
		if n2, err2 := strconv.ParseUint(p.src[p.pos+2:p.pos+6], 16, 32); err2 == nil {
			if combined := utf16.DecodeRune(r, rune(n2)); combined != 0xFFFD {
				p.pos += 6
				return combined, nil
			}
		}
	}
	return r, nil
}

func (p *literalParser) parseNumber() (float64, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			p.pos++
			continue
		}
		break
	}

	n, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number at offset %d: %w", start, err)
	}
	return n, nil
}
