package document

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Schema represents a JSON Schema as used by OAS 3.1
// (JSON Schema Draft 2020-12). Every nested schema position is a
// referenceable slot.
type Schema struct {
	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Examples    []any  `yaml:"examples,omitempty" json:"examples,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly   bool   `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`

	// Type validation
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"` // string or []string
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *RefOr[Schema]   `yaml:"items,omitempty" json:"items,omitempty"`
	PrefixItems []*RefOr[Schema] `yaml:"prefixItems,omitempty" json:"prefixItems,omitempty"`
	MaxItems    *int             `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int             `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool             `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	Contains    *RefOr[Schema]   `yaml:"contains,omitempty" json:"contains,omitempty"`
	MaxContains *int             `yaml:"maxContains,omitempty" json:"maxContains,omitempty"`
	MinContains *int             `yaml:"minContains,omitempty" json:"minContains,omitempty"`

	// Object validation
	Properties           *Map[*RefOr[Schema]] `yaml:"properties,omitempty" json:"properties,omitempty"`
	PatternProperties    *Map[*RefOr[Schema]] `yaml:"patternProperties,omitempty" json:"patternProperties,omitempty"`
	AdditionalProperties *SchemaOrBool        `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string             `yaml:"required,omitempty" json:"required,omitempty"`
	PropertyNames        *RefOr[Schema]       `yaml:"propertyNames,omitempty" json:"propertyNames,omitempty"`
	MaxProperties        *int                 `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int                 `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	DependentRequired    map[string][]string  `yaml:"dependentRequired,omitempty" json:"dependentRequired,omitempty"`
	DependentSchemas     *Map[*RefOr[Schema]] `yaml:"dependentSchemas,omitempty" json:"dependentSchemas,omitempty"`

	// Conditional schemas
	If   *RefOr[Schema] `yaml:"if,omitempty" json:"if,omitempty"`
	Then *RefOr[Schema] `yaml:"then,omitempty" json:"then,omitempty"`
	Else *RefOr[Schema] `yaml:"else,omitempty" json:"else,omitempty"`

	// Schema composition
	AllOf []*RefOr[Schema] `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*RefOr[Schema] `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*RefOr[Schema] `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *RefOr[Schema]   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific extensions
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	XML           *XML           `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// JSON Schema Draft 2020-12 identifiers
	ID      string               `yaml:"$id,omitempty" json:"$id,omitempty"`
	Anchor  string               `yaml:"$anchor,omitempty" json:"$anchor,omitempty"`
	Comment string               `yaml:"$comment,omitempty" json:"$comment,omitempty"`
	Defs    *Map[*RefOr[Schema]] `yaml:"$defs,omitempty" json:"$defs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discriminator represents a discriminator for polymorphism
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// XML represents metadata for XML encoding
type XML struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool   `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaOrBool holds a position that JSON Schema types as either a boolean
// or a schema, such as additionalProperties. Exactly one of Bool and Schema
// is set.
type SchemaOrBool struct {
	Bool   *bool
	Schema *RefOr[Schema]
}

// UnmarshalYAML decodes a boolean scalar into Bool and anything else into
// a schema slot.
func (s *SchemaOrBool) UnmarshalYAML(node *yaml.Node) error {
	node = unwrapNode(node)
	if node.Kind == yaml.ScalarNode {
		var b bool
		if err := node.Decode(&b); err != nil {
			return fmt.Errorf("document: line %d: expected boolean or schema, got scalar %q", node.Line, node.Value)
		}
		s.Bool = &b
		return nil
	}
	var slot RefOr[Schema]
	if err := node.Decode(&slot); err != nil {
		return err
	}
	s.Schema = &slot
	return nil
}

// MarshalYAML emits the boolean or the schema slot, whichever is set.
func (s *SchemaOrBool) MarshalYAML() (any, error) {
	if s.Bool != nil {
		return *s.Bool, nil
	}
	return s.Schema, nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (s *SchemaOrBool) MarshalJSON() ([]byte, error) {
	if s.Bool != nil {
		return json.Marshal(*s.Bool)
	}
	return json.Marshal(s.Schema)
}
