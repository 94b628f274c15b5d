package document

// Document represents an OpenAPI Specification 3.1 document.
// Reference: https://spec.openapis.org/oas/v3.1.0.html
type Document struct {
	OpenAPI           string                 `yaml:"openapi" json:"openapi"` // Required: "3.1.x"
	Info              *Info                  `yaml:"info" json:"info"`       // Required
	JSONSchemaDialect string                 `yaml:"jsonSchemaDialect,omitempty" json:"jsonSchemaDialect,omitempty"`
	Servers           []*Server              `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths             *Map[*RefOr[PathItem]] `yaml:"paths,omitempty" json:"paths,omitempty"`
	Webhooks          *Map[*RefOr[PathItem]] `yaml:"webhooks,omitempty" json:"webhooks,omitempty"`
	Components        *Components            `yaml:"components,omitempty" json:"components,omitempty"`
	Security          []SecurityRequirement  `yaml:"security,omitempty" json:"security,omitempty"`
	Tags              []*Tag                 `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs      *ExternalDocs          `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds the document's reusable objects. Every named entry is a
// referenceable slot; canonical pointers of the form
// #/components/<section>/<name> address these entries.
type Components struct {
	Schemas         *Map[*RefOr[Schema]]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       *Map[*RefOr[Response]]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      *Map[*RefOr[Parameter]]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        *Map[*RefOr[Example]]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   *Map[*RefOr[RequestBody]]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         *Map[*RefOr[Header]]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes *Map[*RefOr[SecurityScheme]] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           *Map[*RefOr[Link]]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       *Map[*RefOr[Callback]]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	PathItems       *Map[*RefOr[PathItem]]       `yaml:"pathItems,omitempty" json:"pathItems,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Summary        string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API
type License struct {
	Name       string `yaml:"name" json:"name"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a Server object
type Server struct {
	URL         string                     `yaml:"url" json:"url"`
	Description string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ServerVariable represents a Server Variable object
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
