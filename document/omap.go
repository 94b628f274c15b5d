package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"go.yaml.in/yaml/v4"
)

// Map is an order-preserving string-keyed mapping. It remembers the
// declaration order of keys as they appeared in the source document, which
// keeps traversal, error reporting, and re-serialization deterministic.
//
// Duplicate keys are retained exactly as decoded rather than silently
// collapsed; detecting duplicates is the component index's responsibility,
// since the input is untrusted external data.
type Map[T any] struct {
	pairs []mapPair[T]
	index map[string]int // key -> first occurrence in pairs
}

type mapPair[T any] struct {
	key   string
	value T
}

// NewMap creates an empty ordered map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{index: make(map[string]int)}
}

// Len returns the number of entries, counting duplicates.
func (m *Map[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Get returns the value for the first occurrence of key.
func (m *Map[T]) Get(key string) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.pairs[i].value, true
}

// Set replaces the value at the first occurrence of key, or appends a new
// entry when the key is absent.
func (m *Map[T]) Set(key string, value T) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.pairs[i].value = value
		return
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, mapPair[T]{key: key, value: value})
}

// Keys returns every key in declaration order, including duplicates.
func (m *Map[T]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.key
	}
	return keys
}

// All iterates entries in declaration order, including duplicates.
func (m *Map[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if m == nil {
			return
		}
		for _, p := range m.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// unwrapNode normalizes a YAML node before decoding. Top-level unmarshal
// hands custom unmarshalers the enclosing DocumentNode, and anchored
// content arrives as an AliasNode; both wrap the node the decoder wants.
func unwrapNode(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// UnmarshalYAML decodes a YAML mapping node, preserving key order and
// retaining duplicate keys.
func (m *Map[T]) UnmarshalYAML(node *yaml.Node) error {
	node = unwrapNode(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("document: line %d: expected a mapping, got %s", node.Line, nodeKindName(node.Kind))
	}
	m.pairs = make([]mapPair[T], 0, len(node.Content)/2)
	m.index = make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var value T
		if err := valNode.Decode(&value); err != nil {
			return fmt.Errorf("document: decoding value for key %q: %w", keyNode.Value, err)
		}
		if _, seen := m.index[keyNode.Value]; !seen {
			m.index[keyNode.Value] = len(m.pairs)
		}
		m.pairs = append(m.pairs, mapPair[T]{key: keyNode.Value, value: value})
	}
	return nil
}

// MarshalYAML emits entries as a mapping node in declaration order.
func (m *Map[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range m.pairs {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: p.key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(p.value); err != nil {
			return nil, fmt.Errorf("document: encoding value for key %q: %w", p.key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// MarshalJSON emits entries as a JSON object in declaration order.
func (m *Map[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.value)
		if err != nil {
			return nil, fmt.Errorf("document: encoding value for key %q: %w", p.key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// nodeKindName returns a human-readable name for a YAML node kind.
func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", int(kind))
	}
}
