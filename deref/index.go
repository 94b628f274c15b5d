package deref

import (
	"github.com/erraggy/oasref/document"
)

// entryStatus tracks a component's progress through resolution.
type entryStatus int

const (
	entryPending entryStatus = iota
	entryActive
	entryDone
)

// entry is one indexed component. The slot is the component's
// *document.RefOr[T] stored as any; resolve re-binds the concrete type and
// walks the component in place.
type entry struct {
	kind    ComponentKind
	pointer string
	name    string
	status  entryStatus
	slot    any
	resolve func(r *resolver, depth int) error
}

// Index maps canonical component pointers to their slots in the document.
// It is built once per document and consulted for every reference lookup.
// An Index is bound to the document it was built from; reusing it for a
// different document is a programming error.
type Index struct {
	entries map[string]*entry
	names   map[ComponentKind][]string
}

// BuildIndex indexes every entry of the document's components sections
// under its canonical pointer #/components/<section>/<name>.
//
// A duplicate canonical pointer is a fatal DuplicateComponent error: two
// components resolving to the same pointer would make reference targets
// ambiguous. A document without components yields an empty, usable index.
func BuildIndex(doc *document.Document) (*Index, error) {
	idx := &Index{
		entries: make(map[string]*entry),
		names:   make(map[ComponentKind][]string),
	}
	c := doc.Components
	if c == nil {
		return idx, nil
	}
	steps := []func() error{
		func() error {
			return registerSection(idx, KindSecurityScheme, c.SecuritySchemes, (*resolver).securitySchemeValue)
		},
		func() error { return registerSection(idx, KindResponse, c.Responses, (*resolver).responseValue) },
		func() error { return registerSection(idx, KindSchema, c.Schemas, (*resolver).schemaValue) },
		func() error { return registerSection(idx, KindParameter, c.Parameters, (*resolver).parameterValue) },
		func() error { return registerSection(idx, KindExample, c.Examples, (*resolver).exampleValue) },
		func() error {
			return registerSection(idx, KindRequestBody, c.RequestBodies, (*resolver).requestBodyValue)
		},
		func() error { return registerSection(idx, KindHeader, c.Headers, (*resolver).headerValue) },
		func() error { return registerSection(idx, KindLink, c.Links, (*resolver).linkValue) },
		func() error { return registerSection(idx, KindCallback, c.Callbacks, (*resolver).callbackValue) },
		func() error { return registerSection(idx, KindPathItem, c.PathItems, (*resolver).pathItemValue) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// registerSection indexes one components section. The walk function is
// captured per entry so the resolver can later resolve the component in
// place without knowing its concrete type.
func registerSection[T any](idx *Index, kind ComponentKind, m *document.Map[*document.RefOr[T]], walk walkFunc[T]) error {
	if m == nil {
		return nil
	}
	for name, slot := range m.All() {
		pointer := ComponentPointer(kind, name)
		if _, dup := idx.entries[pointer]; dup {
			return &ResolveError{
				Kind:     ErrorDuplicateComponent,
				Pointer:  pointer,
				Location: componentLocation(kind, name),
			}
		}
		e := &entry{
			kind:    kind,
			pointer: pointer,
			name:    name,
			slot:    slot,
		}
		e.resolve = func(r *resolver, depth int) error {
			return resolveSlot(r, slot, kind, componentLocation(kind, name), depth, walk)
		}
		idx.entries[pointer] = e
		idx.names[kind] = append(idx.names[kind], name)
	}
	return nil
}

// Len returns the number of indexed components.
func (x *Index) Len() int {
	return len(x.entries)
}

// Has reports whether the canonical pointer is indexed.
func (x *Index) Has(pointer string) bool {
	_, ok := x.entries[pointer]
	return ok
}

// Names returns the component names indexed under a kind, in declaration
// order. The returned slice is a copy.
func (x *Index) Names(kind ComponentKind) []string {
	names := x.names[kind]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Lookup parses a $ref pointer and returns the slot it targets as a
// *document.RefOr[T] (typed as any). It fails with MalformedPointer for a
// bad pointer, KindMismatch when the pointer's section does not match
// expected, or UnknownComponent when no such component exists; unknown
// component errors carry a close-name suggestion when one is found.
// Pass KindUnknown as expected to skip the kind check.
func (x *Index) Lookup(pointer string, expected ComponentKind) (any, error) {
	kind, name, err := ParsePointer(pointer)
	if err != nil {
		return nil, err
	}
	if expected != KindUnknown && kind != expected {
		return nil, &ResolveError{
			Kind:     ErrorKindMismatch,
			Pointer:  pointer,
			Expected: expected,
			Actual:   kind,
		}
	}
	e, ok := x.entries[ComponentPointer(kind, name)]
	if !ok {
		return nil, &ResolveError{
			Kind:       ErrorUnknownComponent,
			Pointer:    pointer,
			Suggestion: suggestName(name, x.names[kind]),
		}
	}
	return e.slot, nil
}

// componentLocation returns the document path of a component definition,
// e.g. $.components.schemas['Pet'].
func componentLocation(kind ComponentKind, name string) string {
	return "$.components." + kind.Section() + "['" + name + "']"
}
