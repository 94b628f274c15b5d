package document

// Parameter describes a single operation parameter
type Parameter struct {
	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	In              string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description     string `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool   `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`

	Style         string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool                  `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema        *RefOr[Schema]        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example       any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      *Map[*RefOr[Example]] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content       *Map[*MediaType]      `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Content     *Map[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool             `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header represents a header object; it follows the parameter object
// structure minus name and location.
type Header struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Style    string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode  *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema   *RefOr[Schema]        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples *Map[*RefOr[Example]] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content  *Map[*MediaType]      `yaml:"content,omitempty" json:"content,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
