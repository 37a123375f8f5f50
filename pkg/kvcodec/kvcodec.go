package kvcodec

import (
	"sort"
	"strings"
)

const (
	pairSeparator = "&"
	keySeparator  = "="
)

// Encode serializes m into a `&`-joined list of `key=value` pairs.
// Values are percent-encoded, keys are written as is.
func Encode(m map[string]string) string {
	return encode(m, Escape)
}

// EncodeRaw works like Encode but leaves values untouched.
// Use it when the result is embedded into a context that gets encoded later.
func EncodeRaw(m map[string]string) string {
	return encode(m, func(s string) string { return s })
}

// Decode parses a string produced by Encode.
// Empty input yields an empty map. A value that is not valid percent-encoding
// marks the whole input as corrupt and an empty map is returned as well.
func Decode(s string) map[string]string {
	m, ok := decode(s, Unescape)
	if !ok {
		return map[string]string{}
	}
	return m
}

// DecodeRaw parses s without percent-decoding the values.
func DecodeRaw(s string) map[string]string {
	m, _ := decode(s, func(v string) (string, error) { return v, nil })
	return m
}

func encode(m map[string]string, escape func(string) string) string {
	if len(m) == 0 {
		return ""
	}

	// Map iteration order is random, sorted keys keep stored blobs stable
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(pairSeparator)
		}
		b.WriteString(k)
		b.WriteString(keySeparator)
		b.WriteString(escape(m[k]))
	}
	return b.String()
}

func decode(s string, unescape func(string) (string, error)) (map[string]string, bool) {
	m := make(map[string]string)

	s = strings.TrimSpace(s)
	if s == "" {
		return m, true
	}

	for part := range strings.SplitSeq(s, pairSeparator) {
		key, value, found := strings.Cut(part, keySeparator)
		if !found {
			continue
		}

		v, err := unescape(value)
		if err != nil {
			return nil, false
		}
		m[key] = v
	}

	return m, true
}
