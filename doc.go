// Package oasref provides tools for resolving and inspecting $ref references
// in OpenAPI 3.1 Specification (OAS) documents.
//
// oasref parses an OAS 3.1 document into a typed tree, resolves every local
// $ref pointer in place, and leaves each reference site carrying both the
// pointer as written and a shared handle to the fully-resolved component.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - document: Typed OAS 3.1 document model with order-preserving maps and
//     reference-or-value slots, plus YAML/JSON loading
//   - deref: Reference resolution, reference inventory, and the component
//     index with canonical-pointer lookup
//
// Only OAS 3.1.x documents are supported:
//   - OAS 3.1.x (3.1.0 - 3.1.2): https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasref
//
// # Quick Start
//
// Load a document and resolve its references:
//
//	import (
//		"github.com/erraggy/oasref/deref"
//		"github.com/erraggy/oasref/document"
//	)
//
//	loaded, err := document.LoadFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := deref.Resolve(loaded.Document)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.OK() {
//		for _, re := range result.Errors {
//			fmt.Println(re)
//		}
//	}
//	fmt.Printf("resolved %d of %d references\n",
//		result.Stats.Resolved, result.Stats.References)
//
// List every reference site without resolving:
//
//	sites, err := deref.Refs(loaded.Document)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, site := range sites {
//		fmt.Printf("%s -> %s\n", site.Location, site.Ref)
//	}
//
// # Reference Model
//
// Every position that may hold either an inline value or a $ref is a
// document.RefOr slot. Resolution attaches the referenced component's value
// to the slot without discarding the original pointer, so callers can follow
// references transparently while serialization still emits the $ref as
// written. All sites referencing the same component share one handle;
// resolving never copies component values.
//
// Only canonical local pointers of the form #/components/<section>/<name>
// are followed. External URL references, external file references, and
// pointers into nested paths are reported as per-reference errors rather
// than failing the whole operation.
//
// Reference cycles are legal: when resolution re-enters a component already
// being resolved, that site is left as a terminating $ref marker and counted
// in Stats.Cycles. Resolved documents therefore always serialize to finite
// output, and resolving an already-resolved document is a no-op.
//
// # Error Handling
//
// Both packages follow consistent error handling patterns:
//
//   - File I/O and parse errors: Returned directly from document.Load
//   - Per-reference errors (malformed pointer, unknown component, kind
//     mismatch): Collected in Result.Errors (not returned as error)
//   - Structural errors (duplicate canonical pointers, nesting beyond the
//     depth limit): Returned as an error from Resolve
//
// Always check both the error return value and Result.Errors.
//
// # Command-Line Interface
//
// In addition to the library packages, oasref provides a command-line
// interface:
//
//	# Resolve every $ref and report statistics
//	oasref deref openapi.yaml
//
//	# List every reference site
//	oasref refs openapi.yaml
//
//	# List declared components by section
//	oasref components openapi.yaml
//
//	# Run the MCP server over stdio
//	oasref mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasref/cmd/oasref@latest
//
// # Additional Resources
//
//   - OpenAPI Specification: https://spec.openapis.org
//   - JSON Schema Specification: https://json-schema.org
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package oasref
