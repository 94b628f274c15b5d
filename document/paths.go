package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// PathItem describes the operations available on a single path
type PathItem struct {
	Summary     string              `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation          `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation          `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation          `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation          `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation          `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation          `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation          `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation          `yaml:"trace,omitempty" json:"trace,omitempty"`
	Servers     []*Server           `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*RefOr[Parameter] `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operations returns the path item's operations keyed by lowercase HTTP
// method, in the fixed method order used for deterministic traversal.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	all := []MethodOperation{
		{"get", p.Get},
		{"put", p.Put},
		{"post", p.Post},
		{"delete", p.Delete},
		{"options", p.Options},
		{"head", p.Head},
		{"patch", p.Patch},
		{"trace", p.Trace},
	}
	ops := make([]MethodOperation, 0, len(all))
	for _, mo := range all {
		if mo.Operation != nil {
			ops = append(ops, mo)
		}
	}
	return ops
}

// MethodOperation pairs an HTTP method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string               `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                 `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                 `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs          `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                 `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*RefOr[Parameter]    `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RefOr[RequestBody]    `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *Responses             `yaml:"responses,omitempty" json:"responses,omitempty"`
	Callbacks    *Map[*RefOr[Callback]] `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Deprecated   bool                   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement  `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server              `yaml:"servers,omitempty" json:"servers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation.
// Status codes keep their declaration order; the default response and
// specification extensions are split out of the code map.
type Responses struct {
	Default *RefOr[Response]
	Codes   *Map[*RefOr[Response]]
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// UnmarshalYAML implements custom unmarshaling for Responses so that status
// codes are validated during parsing and invalid fields never leak into the
// code map.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	node = unwrapNode(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("document: line %d: responses must be a mapping, got %s", node.Line, nodeKindName(node.Kind))
	}
	r.Codes = NewMap[*RefOr[Response]]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		switch {
		case key == "default":
			var slot RefOr[Response]
			if err := valNode.Decode(&slot); err != nil {
				return fmt.Errorf("document: decoding default response: %w", err)
			}
			r.Default = &slot
		case strings.HasPrefix(key, "x-"):
			var v any
			if err := valNode.Decode(&v); err != nil {
				return fmt.Errorf("document: decoding extension %q: %w", key, err)
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = v
		default:
			if !validStatusCode(key) {
				return fmt.Errorf("document: line %d: invalid status code %q in responses: must be a valid HTTP status code (e.g. \"200\"), wildcard pattern (e.g. \"2XX\"), or extension field (e.g. \"x-custom\")", keyNode.Line, key)
			}
			var slot RefOr[Response]
			if err := valNode.Decode(&slot); err != nil {
				return fmt.Errorf("document: decoding response for status code %s: %w", key, err)
			}
			r.Codes.Set(key, &slot)
		}
	}
	return nil
}

// MarshalYAML emits the default response first, then status codes in
// declaration order, then extensions.
func (r *Responses) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	appendPair := func(key string, value any) error {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(value); err != nil {
			return fmt.Errorf("document: encoding response %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
		return nil
	}
	if r.Default != nil {
		if err := appendPair("default", r.Default); err != nil {
			return nil, err
		}
	}
	for code, resp := range r.Codes.All() {
		if err := appendPair(code, resp); err != nil {
			return nil, err
		}
	}
	// Extra is a plain map; sort so output stays deterministic.
	for _, key := range sortedExtraKeys(r.Extra) {
		if err := appendPair(key, r.Extra[key]); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (r *Responses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	appendPair := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("document: encoding response %q: %w", key, err)
		}
		buf.Write(v)
		return nil
	}
	if r.Default != nil {
		if err := appendPair("default", r.Default); err != nil {
			return nil, err
		}
	}
	for code, resp := range r.Codes.All() {
		if err := appendPair(code, resp); err != nil {
			return nil, err
		}
	}
	for _, key := range sortedExtraKeys(r.Extra) {
		if err := appendPair(key, r.Extra[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// validStatusCode reports whether key is a valid HTTP status code ("200"),
// a wildcard range pattern ("2XX"), or "default".
func validStatusCode(key string) bool {
	if key == "default" {
		return true
	}
	if len(key) != 3 {
		return false
	}
	if key[0] < '1' || key[0] > '5' {
		return false
	}
	if key[1] == 'X' && key[2] == 'X' {
		return true
	}
	return key[1] >= '0' && key[1] <= '9' && key[2] >= '0' && key[2] <= '9'
}

// Response describes a single response from an API Operation
type Response struct {
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     *Map[*RefOr[Header]] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     *Map[*MediaType]     `yaml:"content,omitempty" json:"content,omitempty"`
	Links       *Map[*RefOr[Link]]   `yaml:"links,omitempty" json:"links,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Callback maps runtime expressions to the path items invoked for them.
type Callback = Map[*RefOr[PathItem]]

// Link represents a possible design-time link for a response
type Link struct {
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *RefOr[Schema]        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples *Map[*RefOr[Example]] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding *Map[*Encoding]       `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Example represents an example object
type Example struct {
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Encoding defines encoding for a specific property
type Encoding struct {
	ContentType   string               `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Headers       *Map[*RefOr[Header]] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Style         string               `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool                 `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
