// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_NonStringPassThrough(t *testing.T) {
	structured := map[string]any{"a": float64(1)}
	got := Decode(structured, nil)
	assert.Equal(t, structured, got)

	list := []any{"x", "y"}
	assert.Equal(t, list, Decode(list, nil))
}

func TestDecode_FallbackCases(t *testing.T) {
	fallback := map[string]any{}

	tests := []struct {
		name string
		raw  any
	}{
		{name: "nil value", raw: nil},
		{name: "empty string", raw: ""},
		{name: "unrecoverable garbage", raw: "{{{:::"},
		{name: "plain prose", raw: "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw, fallback)
			assert.Equal(t, fallback, got)
		})
	}
}

func TestDecode_WellFormedJSON(t *testing.T) {
	got := Decode(`{"tracks": {"42": {"title": "Song", "explicit": false}}}`, nil)

	obj, ok := got.(map[string]any)
	require.True(t, ok)
	tracks, ok := obj["tracks"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tracks, "42")
}

// Decoding, re-encoding and decoding again must yield the same structure.
func TestDecode_IdempotentOnWellFormedJSON(t *testing.T) {
	inputs := []string{
		`{"a": 1, "b": [true, null, "x"]}`,
		`["one", {"two": 2.5}]`,
		`{"nested": {"deep": {"value": "ok"}}}`,
	}

	for _, input := range inputs {
		first := Decode(input, nil)
		require.NotNil(t, first)

		encoded, err := json.Marshal(first)
		require.NoError(t, err)

		second := Decode(string(encoded), nil)
		assert.Equal(t, first, second)
	}
}

func TestDecode_RecoversUnescapedInnerQuotes(t *testing.T) {
	raw := `{"title": "He said "hi""}`

	got := Decode(raw, nil)
	obj, ok := got.(map[string]any)
	require.True(t, ok, "repaired input must decode to an object")

	title, ok := obj["title"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, title)
	assert.Contains(t, title, "hi")
}

func TestDecode_RecoversQuotesInMultiFieldObject(t *testing.T) {
	raw := "{\"title\": \"The \"Best\" Album\",\n\"artist\": \"Someone\"}"

	got := Decode(raw, nil)
	obj, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, `The "Best" Album`, obj["title"])
	assert.Equal(t, "Someone", obj["artist"])
}

func TestDecode_PythonLiterals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{
			name: "keywords and single quotes",
			raw:  `{'explicit': True, 'cover': None, 'titles': ['a', 'b']}`,
			want: map[string]any{
				"explicit": true,
				"cover":    nil,
				"titles":   []any{"a", "b"},
			},
		},
		{
			name: "list of dicts",
			raw:  `[{'id': '1', 'ok': False}]`,
			want: []any{map[string]any{"id": "1", "ok": false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_RejectsCodeLikeLiterals(t *testing.T) {
	fallback := "fallback"

	tests := []string{
		`{'f': 'function() { return 1 }'}`,
		`['x', 'window.location']`,
		`{'cb': 'a => b'}`,
		`True`, // bare keyword, not a container
	}

	for _, raw := range tests {
		assert.Equal(t, fallback, Decode(raw, fallback), "input: %s", raw)
	}
}

func TestRepairQuotes_NoChangeForValidJSON(t *testing.T) {
	valid := `{"a": "clean value", "n": 3}`
	assert.Equal(t, valid, RepairQuotes(valid))
}

func TestRepairQuotes_KeepsExistingEscapes(t *testing.T) {
	raw := `{"a": "already \"escaped\""}`
	assert.Equal(t, raw, RepairQuotes(raw))
}

func TestParseLiteral_Numbers(t *testing.T) {
	got, err := ParseLiteral(`[0, -1, 2.5, 1e3]`)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(0), float64(-1), 2.5, float64(1000)}, got)
}

func TestParseLiteral_TrailingDataRejected(t *testing.T) {
	_, err := ParseLiteral(`{"a": 1} garbage`)
	assert.Error(t, err)
}

func TestParseLiteral_EscapesInSingleQuotedStrings(t *testing.T) {
	got, err := ParseLiteral(`{'title': 'it\'s fine'}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "it's fine"}, got)
}
