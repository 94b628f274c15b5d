package document

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// SlotState identifies which of the three logical states a RefOr slot is in.
type SlotState int

const (
	// SlotEmpty is the zero value: the slot holds neither a value nor a reference.
	SlotEmpty SlotState = iota

	// SlotValue means the slot holds a direct inline value.
	SlotValue

	// SlotRef means the slot holds an unresolved $ref pointer.
	SlotRef

	// SlotResolved means the slot holds both the original $ref pointer and
	// the value it resolves to.
	SlotResolved

	// SlotCycle means the slot is a terminating reference marker: its
	// pointer begins a reference cycle, so it is deliberately left
	// unexpanded. Resolvers must never expand a cycle marker; doing so
	// would create real pointer cycles in the tree.
	SlotCycle
)

// String returns a string representation of the state.
func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "Empty"
	case SlotValue:
		return "Value"
	case SlotRef:
		return "Ref"
	case SlotResolved:
		return "Resolved"
	case SlotCycle:
		return "Cycle"
	default:
		return fmt.Sprintf("SlotState(%d)", int(s))
	}
}

// RefOr is a referenceable slot: a position in the document tree that holds
// either a direct value of type T or a $ref pointer to a value of type T.
//
// A slot moves through at most three states. Decoding produces SlotValue or
// SlotRef. Reference resolution rewrites SlotRef slots into SlotResolved,
// which keeps the original pointer string alongside the resolved value so
// consumers never need a second lookup pass and can still recover the $ref
// for diagnostics or re-serialization.
//
// OAS 3.1 reference objects may carry summary and description overrides;
// these are preserved across resolution.
type RefOr[T any] struct {
	state       SlotState
	ref         string
	summary     string
	description string
	value       *T
}

// NewValue creates a slot holding a direct value.
func NewValue[T any](v *T) *RefOr[T] {
	return &RefOr[T]{state: SlotValue, value: v}
}

// NewRef creates a slot holding an unresolved $ref pointer.
func NewRef[T any](ref string) *RefOr[T] {
	return &RefOr[T]{state: SlotRef, ref: ref}
}

// State returns the slot's current state.
func (s *RefOr[T]) State() SlotState {
	if s == nil {
		return SlotEmpty
	}
	return s.state
}

// Ref returns the original $ref pointer string, or "" for direct values.
func (s *RefOr[T]) Ref() string {
	if s == nil {
		return ""
	}
	return s.ref
}

// Summary returns the reference object's summary override, if any.
func (s *RefOr[T]) Summary() string {
	if s == nil {
		return ""
	}
	return s.summary
}

// Description returns the reference object's description override, if any.
func (s *RefOr[T]) Description() string {
	if s == nil {
		return ""
	}
	return s.description
}

// Value returns the slot's value. It is nil while the slot is an
// unresolved reference.
func (s *RefOr[T]) Value() *T {
	if s == nil {
		return nil
	}
	return s.value
}

// ResolveTo rewrites an unresolved reference into its resolved form,
// keeping the original pointer string. The value is shared, not copied:
// every slot resolving the same component receives the same handle.
func (s *RefOr[T]) ResolveTo(v *T) {
	s.value = v
	s.state = SlotResolved
}

// MarkCycle rewrites an unresolved reference into a terminating cycle
// marker. The pointer string is kept; the slot serializes as a $ref and is
// never expanded again.
func (s *RefOr[T]) MarkCycle() {
	s.state = SlotCycle
}

// refObject is the serialized shape of an unresolved reference.
type refObject struct {
	Ref         string `yaml:"$ref" json:"$ref"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// UnmarshalYAML decodes a slot from a YAML node. A mapping containing a
// $ref key decodes as an unresolved reference (summary and description
// overrides are kept, other sibling keys are ignored per the OAS 3.1
// reference object rules); any other node decodes as a direct value.
func (s *RefOr[T]) UnmarshalYAML(node *yaml.Node) error {
	node = unwrapNode(node)
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value != "$ref" {
				continue
			}
			var ro refObject
			if err := node.Decode(&ro); err != nil {
				return fmt.Errorf("document: decoding reference object: %w", err)
			}
			s.state = SlotRef
			s.ref = ro.Ref
			s.summary = ro.Summary
			s.description = ro.Description
			return nil
		}
	}
	v := new(T)
	if err := node.Decode(v); err != nil {
		return err
	}
	s.state = SlotValue
	s.value = v
	return nil
}

// MarshalYAML serializes the slot. Direct and resolved slots emit the
// value in its expanded form; unresolved slots emit a $ref object.
func (s *RefOr[T]) MarshalYAML() (any, error) {
	switch s.State() {
	case SlotRef, SlotCycle:
		return refObject{Ref: s.ref, Summary: s.summary, Description: s.description}, nil
	case SlotValue, SlotResolved:
		return s.value, nil
	default:
		return nil, nil
	}
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (s *RefOr[T]) MarshalJSON() ([]byte, error) {
	switch s.State() {
	case SlotRef, SlotCycle:
		return json.Marshal(refObject{Ref: s.ref, Summary: s.summary, Description: s.description})
	case SlotValue, SlotResolved:
		return json.Marshal(s.value)
	default:
		return []byte("null"), nil
	}
}
