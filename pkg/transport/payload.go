package transport

import (
	"fmt"
	"maps"
	"strconv"
)

// Payload is a beacon's field set. Values are strings, numbers or booleans;
// anything else only survives a JSON body.
type Payload map[string]any

// Merge returns a new payload with base fields overridden by p.
func (p Payload) Merge(base Payload) Payload {
	out := make(Payload, len(base)+len(p))
	maps.Copy(out, base)
	maps.Copy(out, p)
	return out
}

// Flat returns the fields that can be written into a query string.
// Nested values are dropped.
func (p Payload) Flat() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if s, ok := flatten(v); ok {
			out[k] = s
		}
	}
	return out
}

// FromStrings converts a string map into a payload.
func FromStrings(m map[string]string) Payload {
	p := make(Payload, len(m))
	for k, v := range m {
		p[k] = v
	}
	return p
}

func flatten(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}
