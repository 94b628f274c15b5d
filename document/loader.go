package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erraggy/oasref/internal/options"
	"go.yaml.in/yaml/v4"
)

// SourceFormat identifies the serialization format of the loaded source.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was YAML.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was JSON.
	SourceFormatJSON SourceFormat = "json"
)

// LoadResult holds a loaded document along with source metadata.
type LoadResult struct {
	// Document is the typed OAS 3.1 document tree.
	Document *Document
	// SourceFormat is the detected input format.
	SourceFormat SourceFormat
	// SourcePath identifies the input (file path or override name).
	SourcePath string
	// SourceSize is the input size in bytes.
	SourceSize int64
	// LoadTime is how long decoding took.
	LoadTime time.Duration
}

// Option is a function that configures a load operation.
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation.
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger     Logger
	sourceName *string
}

// WithFilePath sets the input to a file on disk.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		if path == "" {
			return fmt.Errorf("file path must not be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader sets the input to an io.Reader.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("reader must not be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes sets the input to an in-memory byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if len(data) == 0 {
			return fmt.Errorf("data must not be empty")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger used during loading. Defaults to NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *loadConfig) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded in the result. Useful
// when loading from a reader or bytes.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// Load decodes an OpenAPI 3.1 document using functional options.
//
// Example:
//
//	result, err := document.Load(
//	    document.WithFilePath("openapi.yaml"),
//	)
func Load(opts ...Option) (*LoadResult, error) {
	cfg := &loadConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("document: invalid options: %w", err)
		}
	}

	if err := options.ValidateSingleInputSource(
		"document: exactly one input source must be set (got none)",
		"document: exactly one input source must be set (got several)",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	var data []byte
	var path string
	switch {
	case cfg.filePath != nil:
		path = *cfg.filePath
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &ParseError{Path: path, Message: "reading file", Cause: err}
		}
	case cfg.reader != nil:
		var err error
		data, err = io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &ParseError{Message: "reading input", Cause: err}
		}
	default:
		data = cfg.bytes
	}
	if cfg.sourceName != nil {
		path = *cfg.sourceName
	}

	start := time.Now()
	doc, err := decode(data, path)
	if err != nil {
		return nil, err
	}
	result := &LoadResult{
		Document:     doc,
		SourceFormat: detectFormat(data),
		SourcePath:   path,
		SourceSize:   int64(len(data)),
		LoadTime:     time.Since(start),
	}
	cfg.logger.Debug("loaded document",
		"path", path,
		"format", string(result.SourceFormat),
		"size", result.SourceSize,
		"openapi", doc.OpenAPI)
	return result, nil
}

// MarshalOrderedYAML serializes the document as YAML, preserving the
// member order of the source.
func (r *LoadResult) MarshalOrderedYAML() ([]byte, error) {
	if r.Document == nil {
		return nil, fmt.Errorf("document: no document to marshal")
	}
	return yaml.Marshal(r.Document)
}

// MarshalOrderedJSONIndent serializes the document as indented JSON,
// preserving the member order of the source.
func (r *LoadResult) MarshalOrderedJSONIndent(prefix, indent string) ([]byte, error) {
	if r.Document == nil {
		return nil, fmt.Errorf("document: no document to marshal")
	}
	return json.MarshalIndent(r.Document, prefix, indent)
}

// LoadFile decodes an OpenAPI 3.1 document from a file.
func LoadFile(path string) (*LoadResult, error) {
	return Load(WithFilePath(path))
}

// LoadReader decodes an OpenAPI 3.1 document from a reader.
func LoadReader(r io.Reader) (*LoadResult, error) {
	return Load(WithReader(r))
}

// decode unmarshals the document and applies the 3.1-only version gate.
// The YAML decoder handles both YAML and JSON input.
func decode(data []byte, path string) (*Document, error) {
	var versionProbe struct {
		OpenAPI string `yaml:"openapi"`
		Swagger string `yaml:"swagger"`
	}
	if err := yaml.Unmarshal(data, &versionProbe); err != nil {
		return nil, &ParseError{Path: path, Message: "decoding document", Cause: err}
	}
	declared := versionProbe.OpenAPI
	if declared == "" {
		declared = versionProbe.Swagger
	}
	if declared == "" {
		return nil, &ParseError{Path: path, Message: "missing openapi version field"}
	}
	if !strings.HasPrefix(declared, "3.1.") && declared != "3.1" {
		return nil, &ParseError{
			Path:        path,
			Message:     fmt.Sprintf("found %q, only 3.1.x documents are supported", declared),
			Unsupported: true,
		}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Message: "decoding document", Cause: err}
	}
	return &doc, nil
}

// detectFormat sniffs whether the input is JSON or YAML.
func detectFormat(data []byte) SourceFormat {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return SourceFormatJSON
		default:
			return SourceFormatYAML
		}
	}
	return SourceFormatYAML
}
