// Package jsonutil provides JSON display helpers for tracebench.
//
// Action params and network bodies arrive as raw JSON strings; these
// helpers shape them for the detail panes without ever failing on
// malformed input.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Pretty formats a JSON string with indentation for display.
// Returns the original string if it's not valid JSON.
func Pretty(s string) string {
	var obj interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return s
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return s
	}
	return string(pretty)
}

// Compact minifies a JSON string by removing whitespace.
func Compact(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// Fields unmarshals a JSON object into key/value display pairs with
// deterministic key order. Returns nil for anything that is not a
// JSON object.
func Fields(s string) [][2]string {
	if s == "" {
		return nil
	}
	obj := make(map[string]json.RawMessage)
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, string(obj[k])})
	}
	return out
}
