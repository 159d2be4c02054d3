// Package sanitize normalizes free text entered through the admin screens.
package sanitize

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

var ErrNotJSONObject = errors.New("value must be a JSON object")

// maxPasses bounds the strip-unescape loop. Each pass that changes the
// value removes at least one layer of entity encoding.
const maxPasses = 8

// Text strips markup and surrounding whitespace. Entities are unescaped so
// Korean text and punctuation round-trip unchanged, and the value is
// stripped again until unescaping no longer uncovers new markup.
func Text(value string) string {
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict.Sanitize(value))
		if next == value {
			return strings.TrimSpace(value)
		}
		value = next
	}
	return strings.TrimSpace(strict.Sanitize(value))
}

// Optional returns nil for absent, empty or whitespace-only input.
func Optional(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := Text(*value)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// OptionalPlain trims without markup stripping; used for identifiers such as
// phone numbers where only the absence rule applies.
func OptionalPlain(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// JSONObject validates that raw is a JSON object and runs Text over every
// string value it holds, at any depth. Empty input yields "{}". Object keys
// are kept as sent.
func JSONObject(raw []byte) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "{}", nil
	}

	var object map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&object); err != nil || object == nil {
		return "", ErrNotJSONObject
	}
	if dec.More() {
		return "", ErrNotJSONObject
	}

	cleaned, err := json.Marshal(cleanValue(object))
	if err != nil {
		return "", err
	}
	return string(cleaned), nil
}

func cleanValue(value any) any {
	switch v := value.(type) {
	case string:
		return Text(v)
	case map[string]any:
		for key, item := range v {
			v[key] = cleanValue(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = cleanValue(item)
		}
		return v
	default:
		return v
	}
}
