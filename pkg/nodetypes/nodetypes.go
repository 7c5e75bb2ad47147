// Package nodetypes reads tree-sitter node-types.json grammar descriptions.
package nodetypes

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
)

// ErrMalformed is returned when node-types.json is not an array of objects.
var ErrMalformed = errors.New("malformed node-types.json")

const (
	keyType     = "type"
	keyNamed    = "named"
	keyChildren = "children"
	keyFields   = "fields"
)

// Descriptor is one entry of node-types.json. Children and fields are tracked
// by presence only; their content is irrelevant to classification.
type Descriptor struct {
	Type        string `json:"type"`
	Named       bool   `json:"named"`
	HasChildren bool   `json:"has_children"`
	HasFields   bool   `json:"has_fields"`
}

// Structural reports whether the node has children or named fields.
func (d Descriptor) Structural() bool {
	return d.HasChildren || d.HasFields
}

// Key returns the parser.c enumeration name of the node's named rule.
func (d Descriptor) Key() string {
	return symbols.PrefixNamed + d.Type
}

// Parse decodes node-types.json. A "children" or "fields" key counts as
// present whatever its value, including null.
func Parse(data []byte) ([]Descriptor, error) {
	var raw []map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	descriptors := make([]Descriptor, 0, len(raw))

	for idx, entry := range raw {
		desc, parseErr := parseDescriptor(entry)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformed, idx, parseErr)
		}

		descriptors = append(descriptors, desc)
	}

	return descriptors, nil
}

// Structural returns the descriptors that carry children or fields, in input order.
func Structural(descriptors []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))

	for _, desc := range descriptors {
		if desc.Structural() {
			out = append(out, desc)
		}
	}

	return out
}

func parseDescriptor(entry map[string]json.RawMessage) (Descriptor, error) {
	var desc Descriptor

	if rawType, ok := entry[keyType]; ok {
		err := json.Unmarshal(rawType, &desc.Type)
		if err != nil {
			return Descriptor{}, fmt.Errorf("type: %w", err)
		}
	}

	if rawNamed, ok := entry[keyNamed]; ok {
		err := json.Unmarshal(rawNamed, &desc.Named)
		if err != nil {
			return Descriptor{}, fmt.Errorf("named: %w", err)
		}
	}

	_, desc.HasChildren = entry[keyChildren]
	_, desc.HasFields = entry[keyFields]

	return desc, nil
}
