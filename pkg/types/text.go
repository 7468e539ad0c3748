// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records rendered by the labinfos listings and
// the configuration shared across packages.
//
// Records come from hand-edited data documents, so every field is optional
// and every field tolerates the wrong JSON type. Absence is data, not an
// error: a missing field decodes to the empty Text.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Text is a loosely typed scalar field. It decodes from a JSON or YAML
// string, number, or boolean; null decodes to "".
type Text string

// String returns the field value, "" when absent.
func (t Text) String() string { return string(t) }

// IsEmpty reports whether the field is absent or blank.
func (t Text) IsEmpty() bool { return strings.TrimSpace(string(t)) == "" }

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		// Objects and arrays have no scalar rendering.
		*t = ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			*t = Text(n.String())
			return nil
		}
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(b))
	}
	return nil
}

// UnmarshalYAML accepts any scalar node; non-scalar nodes decode to "".
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*t = ""
		return nil
	}
	*t = Text(node.Value)
	return nil
}

// Join concatenates the values with sep. Empty values keep their separator.
func (l TextList) Join(sep string) string {
	return strings.Join(l.Strings(), sep)
}

// TextList is an ordered list of Text. A lone scalar decodes to a one-element
// list and null decodes to an empty list.
type TextList []Text

// UnmarshalJSON accepts an array of scalars, a single scalar, or null.
func (l *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []Text
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var one Text
	if err := one.UnmarshalJSON(data); err != nil {
		return err
	}
	*l = nil
	if one != "" {
		*l = TextList{one}
	}
	return nil
}

// UnmarshalYAML accepts a sequence, a single scalar, or null.
func (l *TextList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		items := make([]Text, 0, len(node.Content))
		for _, n := range node.Content {
			var t Text
			if err := t.UnmarshalYAML(n); err != nil {
				return err
			}
			items = append(items, t)
		}
		*l = items
		return nil
	}
	var one Text
	if err := one.UnmarshalYAML(node); err != nil {
		return err
	}
	*l = nil
	if one != "" {
		*l = TextList{one}
	}
	return nil
}

// Strings returns the values as plain strings.
func (l TextList) Strings() []string {
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = string(v)
	}
	return out
}
