package deref

import (
	"fmt"

	"github.com/erraggy/oasref/document"
)

// RefSite is one $ref occurrence in a document.
type RefSite struct {
	// Ref is the pointer exactly as written.
	Ref string `json:"ref" yaml:"ref"`
	// Location is the document path of the slot,
	// e.g. $.paths['/pets'].get.responses['200'].
	Location string `json:"location" yaml:"location"`
	// Kind is the component kind the pointer's section implies;
	// KindUnknown when the pointer is not a canonical component pointer.
	Kind ComponentKind `json:"-" yaml:"-"`
	// Resolved reports whether the slot has already been resolved in place.
	Resolved bool `json:"resolved,omitempty" yaml:"resolved,omitempty"`
}

// Refs inventories every reference site in deterministic document order
// without resolving or mutating anything. It accepts both raw and
// already-resolved documents; on a resolved one, sites bound to their
// target report Resolved true.
func Refs(doc *document.Document, opts ...Option) ([]RefSite, error) {
	if doc == nil {
		return nil, fmt.Errorf("deref: document must not be nil")
	}
	cfg, err := newResolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	r := &resolver{
		logger:      cfg.logger,
		maxDepth:    cfg.maxDepth,
		active:      make(map[string]bool),
		walked:      make(map[any]bool),
		collectOnly: true,
	}
	if err := r.documentWalk(doc); err != nil {
		return nil, err
	}
	return r.sites, nil
}
