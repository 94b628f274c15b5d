package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasref/deref"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type componentsInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OAS 3.1 document to inspect"`
	Section string    `json:"section,omitempty" jsonschema:"Narrow to one components section (schemas, responses, parameters, examples, requestBodies, headers, securitySchemes, links, callbacks, pathItems)"`
}

type componentEntry struct {
	Name    string `json:"name"`
	Pointer string `json:"pointer"`
}

type componentSection struct {
	Section    string           `json:"section"`
	Count      int              `json:"count"`
	Components []componentEntry `json:"components"`
}

type componentsOutput struct {
	Total    int                `json:"total"`
	Sections []componentSection `json:"sections,omitempty"`
}

func handleComponents(_ context.Context, _ *mcp.CallToolRequest, input componentsInput) (*mcp.CallToolResult, componentsOutput, error) {
	var only deref.ComponentKind
	if input.Section != "" {
		kind, ok := deref.KindForSection(input.Section)
		if !ok {
			return errResult(fmt.Errorf("unknown components section %q", input.Section)), componentsOutput{}, nil
		}
		only = kind
	}

	loaded, err := input.Spec.load(true)
	if err != nil {
		return errResult(err), componentsOutput{}, nil
	}

	idx, err := deref.BuildIndex(loaded.Document)
	if err != nil {
		return errResult(err), componentsOutput{}, nil
	}

	var output componentsOutput
	for _, kind := range deref.Kinds() {
		if input.Section != "" && kind != only {
			continue
		}
		names := idx.Names(kind)
		if len(names) == 0 {
			continue
		}
		section := componentSection{
			Section: kind.Section(),
			Count:   len(names),
		}
		for _, name := range names {
			section.Components = append(section.Components, componentEntry{
				Name:    name,
				Pointer: deref.ComponentPointer(kind, name),
			})
		}
		output.Total += len(names)
		output.Sections = append(output.Sections, section)
	}

	return nil, output, nil
}
