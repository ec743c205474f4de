package config

import (
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// FlatConfig is an ordered key -> value view of a configuration document.
// Every leaf of the source tree is addressable by its nearest object key only;
// list indices and parent keys are discarded. When two leaves share a key the
// later one wins, keeping the position where the key first appeared.
type FlatConfig struct {
	keys   []string
	values map[string]string
}

func newFlatConfig() *FlatConfig {
	return &FlatConfig{values: make(map[string]string)}
}

func (f *FlatConfig) set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Lookup returns the value stored under key.
func (f *FlatConfig) Lookup(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present.
func (f *FlatConfig) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Keys returns the keys in flattening order.
func (f *FlatConfig) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of distinct keys.
func (f *FlatConfig) Len() int {
	return len(f.keys)
}

// Flatten parses a JSON document and flattens it.
// A bare top-level scalar has no key context and yields an empty result.
func Flatten(data []byte) (*FlatConfig, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not a valid JSON document", ErrInvalidFormat)
	}
	flat := newFlatConfig()
	walkJSON(gjson.ParseBytes(data), "", false, flat)
	return flat, nil
}

// walkJSON descends in document order. Objects set the key context for their
// members, arrays hand the inherited context to every element.
func walkJSON(node gjson.Result, key string, hasKey bool, flat *FlatConfig) {
	switch {
	case node.IsObject():
		node.ForEach(func(k, v gjson.Result) bool {
			walkJSON(v, k.String(), true, flat)
			return true
		})
	case node.IsArray():
		node.ForEach(func(_, v gjson.Result) bool {
			walkJSON(v, key, hasKey, flat)
			return true
		})
	default:
		if hasKey {
			flat.set(key, jsonScalar(node))
		}
	}
}

func jsonScalar(node gjson.Result) string {
	switch node.Type {
	case gjson.String:
		return node.String()
	case gjson.Null:
		return "null"
	default:
		return node.Raw
	}
}

// FlattenYAML applies the same flattening rules to a YAML document.
func FlattenYAML(data []byte) (*FlatConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	flat := newFlatConfig()
	walkYAML(&doc, "", false, flat)
	return flat, nil
}

func walkYAML(node *yaml.Node, key string, hasKey bool, flat *FlatConfig) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, c := range node.Content {
			walkYAML(c, key, hasKey, flat)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			walkYAML(node.Content[i+1], node.Content[i].Value, true, flat)
		}
	case yaml.SequenceNode:
		for _, c := range node.Content {
			walkYAML(c, key, hasKey, flat)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			walkYAML(node.Alias, key, hasKey, flat)
		}
	case yaml.ScalarNode:
		if !hasKey {
			return
		}
		if node.Tag == "!!null" {
			flat.set(key, "null")
			return
		}
		flat.set(key, node.Value)
	}
}
