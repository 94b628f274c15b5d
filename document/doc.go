// Package document provides the typed OpenAPI 3.1 document tree that the
// deref package resolves.
//
// Documents are decoded from YAML or JSON with [Load], [LoadFile], or
// [LoadReader]. Every position that the OpenAPI specification allows to be
// either a direct value or a $ref pointer is modeled as a [RefOr] slot with
// three explicit states: direct value, unresolved reference, and resolved
// reference (pointer plus value). Mappings whose declaration order matters
// (paths, components sections, response codes, schema properties) use the
// order-preserving [Map] container so traversal and re-serialization are
// deterministic.
//
// The package deliberately does not validate OAS semantics beyond the
// structural shape needed to decode; it rejects only documents that do not
// declare OpenAPI 3.1.x.
package document
