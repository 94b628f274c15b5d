package deref

import (
	"fmt"

	"github.com/erraggy/oasref/document"
)

// Result is the outcome of a Resolve call: the document mutated in place,
// the per-slot errors recorded during traversal, and pass statistics.
// Fatal conditions (DuplicateComponent, TooDeep) abort Resolve with an
// error instead and leave no Result.
type Result struct {
	// Document is the input document with references resolved in place.
	Document *document.Document
	// Errors lists every per-slot failure in traversal order. Slots that
	// failed keep their original $ref; everything else resolves normally.
	Errors []*ResolveError
	// Stats summarizes the pass.
	Stats Stats
}

// OK reports whether resolution recorded no errors.
func (res *Result) OK() bool {
	return len(res.Errors) == 0
}

// Stats summarizes a resolution pass.
type Stats struct {
	// References is the number of unresolved $ref slots encountered.
	References int
	// Resolved is the number of slots resolved in place.
	Resolved int
	// Cycles is the number of references left unexpanded as cycle markers.
	Cycles int
}

// Resolve resolves every $ref in the document in place. Each resolved slot
// keeps its original pointer alongside the resolved value, and every slot
// referencing the same component shares the same value handle.
//
// Traversal is deterministic: components first, section by section in a
// fixed order with names in declaration order, then paths, then webhooks.
// Cyclic references are not errors; the slot that would re-enter an
// in-progress component is left as an unexpanded reference marker, so the
// resolved tree always serializes without infinite recursion.
//
// Per-slot failures (MalformedPointer, UnknownComponent, KindMismatch) are
// accumulated on the Result and never stop traversal. Fatal conditions
// (DuplicateComponent while indexing, TooDeep during traversal) return an
// error and leave the document partially resolved.
//
// Resolving an already-resolved document is a no-op: it records the same
// errors, changes no slot, and never expands a cycle marker.
func Resolve(doc *document.Document, opts ...Option) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("deref: document must not be nil")
	}
	cfg, err := newResolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	idx, err := BuildIndex(doc)
	if err != nil {
		return nil, err
	}
	return resolveIndexed(doc, idx, cfg)
}

// ResolveWithIndex is Resolve with a pre-built index. The index must have
// been built from the same document.
func ResolveWithIndex(doc *document.Document, idx *Index, opts ...Option) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("deref: document must not be nil")
	}
	if idx == nil {
		return nil, fmt.Errorf("deref: index must not be nil")
	}
	cfg, err := newResolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	return resolveIndexed(doc, idx, cfg)
}

func resolveIndexed(doc *document.Document, idx *Index, cfg *resolveConfig) (*Result, error) {
	r := &resolver{
		index:    idx,
		logger:   cfg.logger,
		maxDepth: cfg.maxDepth,
		active:   make(map[string]bool),
		walked:   make(map[any]bool),
	}
	if err := r.documentWalk(doc); err != nil {
		return nil, err
	}
	r.logger.Debug("resolution finished",
		"references", r.stats.References,
		"resolved", r.stats.Resolved,
		"cycles", r.stats.Cycles,
		"errors", len(r.errs))
	return &Result{Document: doc, Errors: r.errs, Stats: r.stats}, nil
}

// resolver carries the state of one traversal. The active set holds the
// canonical pointers of components currently being resolved on the call
// stack; re-entering one is how cycles are detected. The walked set holds
// value handles already traversed, so shared values are walked once and
// errors inside them are reported once.
type resolver struct {
	index    *Index
	logger   document.Logger
	maxDepth int

	active map[string]bool
	walked map[any]bool
	errs   []*ResolveError
	stats  Stats

	// collectOnly switches the traversal into inventory mode: reference
	// sites are recorded instead of resolved, and nothing is mutated.
	collectOnly bool
	sites       []RefSite
}

func (r *resolver) record(err *ResolveError) {
	r.errs = append(r.errs, err)
	r.logger.Debug("recorded resolution error",
		"kind", err.Kind.String(), "ref", err.Pointer, "path", err.Location)
}

// resolveEntry resolves a component definition in place, exactly once.
// The entry's pointer stays in the active set for the duration of its own
// walk; any reference back to it from inside becomes a cycle marker.
func (r *resolver) resolveEntry(e *entry, depth int) error {
	if e.status != entryPending {
		return nil
	}
	e.status = entryActive
	r.active[e.pointer] = true
	err := e.resolve(r, depth)
	delete(r.active, e.pointer)
	e.status = entryDone
	return err
}

// walkFunc traverses the interior of a component value of type T.
type walkFunc[T any] func(r *resolver, v *T, loc string, depth int) error

// resolveSlot processes a single referenceable slot. Inline values are
// walked for nested references; $ref slots are parsed, checked against the
// expected kind, looked up, resolved depth-first, and then bound to the
// target's shared value handle. All failures except TooDeep are recorded
// and traversal continues with the slot unchanged.
func resolveSlot[T any](r *resolver, slot *document.RefOr[T], expected ComponentKind, loc string, depth int, walk walkFunc[T]) error {
	if slot == nil {
		return nil
	}
	if depth > r.maxDepth {
		return &ResolveError{
			Kind:     ErrorTooDeep,
			Location: loc,
			Message:  fmt.Sprintf("nesting exceeds the maximum depth of %d", r.maxDepth),
		}
	}
	if r.collectOnly {
		return collectSlot(r, slot, loc, depth, walk)
	}

	switch slot.State() {
	case document.SlotEmpty, document.SlotCycle:
		return nil
	case document.SlotValue, document.SlotResolved:
		return walkValue(r, slot.Value(), loc, depth, walk)
	}

	ref := slot.Ref()
	r.stats.References++
	kind, name, err := ParsePointer(ref)
	if err != nil {
		re := err.(*ResolveError)
		re.Location = loc
		r.record(re)
		return nil
	}
	if kind != expected {
		r.record(&ResolveError{
			Kind:     ErrorKindMismatch,
			Pointer:  ref,
			Location: loc,
			Expected: expected,
			Actual:   kind,
		})
		return nil
	}
	pointer := ComponentPointer(kind, name)
	if r.active[pointer] {
		slot.MarkCycle()
		r.stats.Cycles++
		r.logger.Debug("reference cycle, leaving pointer unexpanded", "ref", ref, "path", loc)
		return nil
	}
	e, ok := r.index.entries[pointer]
	if !ok {
		r.record(&ResolveError{
			Kind:       ErrorUnknownComponent,
			Pointer:    ref,
			Location:   loc,
			Suggestion: suggestName(name, r.index.names[kind]),
		})
		return nil
	}
	if err := r.resolveEntry(e, depth+1); err != nil {
		return err
	}
	target, ok := e.slot.(*document.RefOr[T])
	if !ok {
		// Sections and slot types agree by construction; a mismatch here
		// means the index was built from a different document.
		r.record(&ResolveError{
			Kind:     ErrorKindMismatch,
			Pointer:  ref,
			Location: loc,
			Expected: expected,
			Actual:   e.kind,
		})
		return nil
	}
	if v := target.Value(); v != nil {
		slot.ResolveTo(v)
		r.stats.Resolved++
		r.logger.Debug("resolved reference", "ref", ref, "path", loc, "depth", depth)
	}
	// When the target itself failed to resolve, its error was recorded at
	// the component's own location and this slot keeps its $ref.
	return nil
}

// walkValue walks the interior of a value handle once. Handles shared by
// multiple resolved slots are skipped on every visit after the first.
func walkValue[T any](r *resolver, v *T, loc string, depth int, walk walkFunc[T]) error {
	if v == nil {
		return nil
	}
	if r.walked[v] {
		return nil
	}
	r.walked[v] = true
	return walk(r, v, loc, depth+1)
}

// collectSlot records the slot as a reference site when it carries a
// pointer, then walks its value for nested sites. References are never
// followed in inventory mode.
func collectSlot[T any](r *resolver, slot *document.RefOr[T], loc string, depth int, walk walkFunc[T]) error {
	if ref := slot.Ref(); ref != "" {
		kind, _, err := ParsePointer(ref)
		if err != nil {
			kind = KindUnknown
		}
		r.sites = append(r.sites, RefSite{
			Ref:      ref,
			Location: loc,
			Kind:     kind,
			Resolved: slot.State() == document.SlotResolved,
		})
	}
	return walkValue(r, slot.Value(), loc, depth, walk)
}
