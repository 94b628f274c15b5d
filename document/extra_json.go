package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// encoding/json has no equivalent of yaml:",inline", so every type that
// carries specification extensions flattens them into its JSON object by
// hand: the known fields are marshaled through an alias type (which has no
// custom marshaler), then the extension keys are spliced in sorted order so
// output stays byte-for-byte deterministic.

// sortedExtraKeys returns the extension keys of m in sorted order.
func sortedExtraKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// marshalWithExtra marshals base and appends the extension entries to the
// resulting JSON object.
func marshalWithExtra(base any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, k := range sortedExtraKeys(extra) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(extra[k])
		if err != nil {
			return nil, fmt.Errorf("document: encoding extension %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON flattens specification extensions into the JSON object.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalWithExtra((*alias)(d), d.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (c *Components) MarshalJSON() ([]byte, error) {
	type alias Components
	return marshalWithExtra((*alias)(c), c.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return marshalWithExtra((*alias)(i), i.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (c *Contact) MarshalJSON() ([]byte, error) {
	type alias Contact
	return marshalWithExtra((*alias)(c), c.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (l *License) MarshalJSON() ([]byte, error) {
	type alias License
	return marshalWithExtra((*alias)(l), l.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	type alias ExternalDocs
	return marshalWithExtra((*alias)(e), e.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (t *Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	return marshalWithExtra((*alias)(t), t.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (s *Server) MarshalJSON() ([]byte, error) {
	type alias Server
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (s *ServerVariable) MarshalJSON() ([]byte, error) {
	type alias ServerVariable
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return marshalWithExtra((*alias)(o), o.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return marshalWithExtra((*alias)(r), r.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (l *Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return marshalWithExtra((*alias)(l), l.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (m *MediaType) MarshalJSON() ([]byte, error) {
	type alias MediaType
	return marshalWithExtra((*alias)(m), m.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (e *Example) MarshalJSON() ([]byte, error) {
	type alias Example
	return marshalWithExtra((*alias)(e), e.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (e *Encoding) MarshalJSON() ([]byte, error) {
	type alias Encoding
	return marshalWithExtra((*alias)(e), e.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (d *Discriminator) MarshalJSON() ([]byte, error) {
	type alias Discriminator
	return marshalWithExtra((*alias)(d), d.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (x *XML) MarshalJSON() ([]byte, error) {
	type alias XML
	return marshalWithExtra((*alias)(x), x.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (r *RequestBody) MarshalJSON() ([]byte, error) {
	type alias RequestBody
	return marshalWithExtra((*alias)(r), r.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (h *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return marshalWithExtra((*alias)(h), h.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (o *OAuthFlows) MarshalJSON() ([]byte, error) {
	type alias OAuthFlows
	return marshalWithExtra((*alias)(o), o.Extra)
}

// MarshalJSON flattens specification extensions into the JSON object.
func (o *OAuthFlow) MarshalJSON() ([]byte, error) {
	type alias OAuthFlow
	return marshalWithExtra((*alias)(o), o.Extra)
}
