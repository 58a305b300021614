package models

// Field accessors for loose items. JSON decoding yields map[string]any with
// float64 numbers; these helpers normalise the lookups the minifier and the
// sync engine rely on.

// StringField returns the string value of key, or "" when the key is absent
// or holds a non-string value.
func StringField(item Item, key string) string {
	if item == nil {
		return ""
	}
	if s, ok := item[key].(string); ok {
		return s
	}
	return ""
}

// FirstStringField returns the first non-empty string among the given keys.
func FirstStringField(item Item, keys ...string) string {
	for _, key := range keys {
		if s := StringField(item, key); s != "" {
			return s
		}
	}
	return ""
}

// BoolField returns the bool value of key, or false.
func BoolField(item Item, key string) bool {
	if item == nil {
		return false
	}
	if b, ok := item[key].(bool); ok {
		return b
	}
	return false
}

// NumberField returns the numeric value of key, or 0. Both float64 (JSON)
// and int (in-process) representations are accepted.
func NumberField(item Item, key string) float64 {
	if item == nil {
		return 0
	}
	switch v := item[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// MapField returns the nested item under key, or nil when absent or of a
// different shape.
func MapField(item Item, key string) Item {
	if item == nil {
		return nil
	}
	if m, ok := item[key].(map[string]any); ok {
		return m
	}
	return nil
}

// SliceField returns the slice under key, or nil.
func SliceField(item Item, key string) []any {
	if item == nil {
		return nil
	}
	if s, ok := item[key].([]any); ok {
		return s
	}
	return nil
}

// ItemSlice converts a raw []any into a slice of items, skipping entries
// that are not objects.
func ItemSlice(raw []any) []Item {
	items := make([]Item, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
