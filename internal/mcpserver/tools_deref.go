package mcpserver

import (
	"context"

	"github.com/erraggy/oasref/deref"
	"github.com/erraggy/oasref/document"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type dereferenceInput struct {
	Spec     specInput `json:"spec"                jsonschema:"The OAS 3.1 document to dereference"`
	MaxDepth int       `json:"max_depth,omitempty" jsonschema:"Maximum reference nesting depth (default from OASREF_MAX_DEPTH)"`
	Full     bool      `json:"full,omitempty"      jsonschema:"Return the resolved document in the source format"`
}

// resolveIssue is the wire form of a single resolution error.
type resolveIssue struct {
	Kind     string `json:"kind"`
	Location string `json:"location,omitempty"`
	Pointer  string `json:"pointer,omitempty"`
	Message  string `json:"message"`
}

type dereferenceOutput struct {
	OK           bool           `json:"ok"`
	References   int            `json:"references"`
	Resolved     int            `json:"resolved"`
	Cycles       int            `json:"cycles"`
	ErrorCount   int            `json:"error_count"`
	Errors       []resolveIssue `json:"errors,omitempty"`
	Format       string         `json:"format"`
	FullDocument string         `json:"full_document,omitempty"`
}

func handleDereference(_ context.Context, _ *mcp.CallToolRequest, input dereferenceInput) (*mcp.CallToolResult, dereferenceOutput, error) {
	// Resolution attaches values into the document tree, so always parse
	// fresh: a resolved document must never land in the shared cache.
	loaded, err := input.Spec.load(false)
	if err != nil {
		return errResult(err), dereferenceOutput{}, nil
	}

	maxDepth := cfg.MaxDepth
	if input.MaxDepth > 0 {
		maxDepth = input.MaxDepth
	}

	result, err := deref.Resolve(loaded.Document, deref.WithMaxDepth(maxDepth))
	if err != nil {
		return errResult(err), dereferenceOutput{}, nil
	}

	output := dereferenceOutput{
		OK:         result.OK(),
		References: result.Stats.References,
		Resolved:   result.Stats.Resolved,
		Cycles:     result.Stats.Cycles,
		ErrorCount: len(result.Errors),
		Format:     string(loaded.SourceFormat),
	}
	for _, re := range result.Errors {
		output.Errors = append(output.Errors, resolveIssue{
			Kind:     re.Kind.String(),
			Location: re.Location,
			Pointer:  re.Pointer,
			Message:  re.Error(),
		})
	}

	if input.Full {
		var data []byte
		switch loaded.SourceFormat {
		case document.SourceFormatJSON:
			data, err = loaded.MarshalOrderedJSONIndent("", "  ")
		default:
			data, err = loaded.MarshalOrderedYAML()
		}
		if err != nil {
			return errResult(err), dereferenceOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
