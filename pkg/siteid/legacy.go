package siteid

import (
	"context"
	"encoding/json"
	"strconv"
)

// legacyIDKey is the field name the old snippet used for the site id.
const legacyIDKey = "id"

// LegacyMarker reads the global left behind by the previous page snippet.
// The marker function returns the global's value, or nil when it is not set.
// Two shapes are recognized: an array whose first element is ["id", value, ...]
// and an object with an "id" field.
type LegacyMarker func() any

func (m LegacyMarker) Lookup(context.Context) (string, bool) {
	if m == nil {
		return "", false
	}
	return fromMarker(m())
}

// LegacyJSON recognizes the same shapes as LegacyMarker in a serialized
// marker, for example one captured from a page by a headless browser.
type LegacyJSON []byte

func (j LegacyJSON) Lookup(context.Context) (string, bool) {
	if len(j) == 0 {
		return "", false
	}
	var v any
	if err := json.Unmarshal(j, &v); err != nil {
		return "", false
	}
	return fromMarker(v)
}

func fromMarker(v any) (string, bool) {
	switch marker := v.(type) {
	case []any:
		if len(marker) == 0 {
			return "", false
		}
		return fromPair(marker[0])
	case [][]any:
		if len(marker) == 0 {
			return "", false
		}
		return fromPair(marker[0])
	case [][]string:
		if len(marker) == 0 || len(marker[0]) < 2 || marker[0][0] != legacyIDKey {
			return "", false
		}
		return nonEmpty(marker[0][1])
	case map[string]any:
		return scalar(marker[legacyIDKey])
	case map[string]string:
		return nonEmpty(marker[legacyIDKey])
	}
	return "", false
}

// fromPair handles the ["id", value, ...] command shape.
func fromPair(v any) (string, bool) {
	switch pair := v.(type) {
	case []any:
		if len(pair) < 2 || pair[0] != legacyIDKey {
			return "", false
		}
		return scalar(pair[1])
	case []string:
		if len(pair) < 2 || pair[0] != legacyIDKey {
			return "", false
		}
		return nonEmpty(pair[1])
	}
	return "", false
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return nonEmpty(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}
