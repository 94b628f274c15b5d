package deref

import (
	"errors"

	"github.com/erraggy/oasref/document"
)

// ErrNotResolved is returned by Servers when the document still contains
// unresolved path item references; resolve the document first.
var ErrNotResolved = errors.New("document has unresolved references")

// Servers collects the document's effective server declarations: the root
// servers list, then each path item's servers and the servers of its
// operations, in traversal order. Duplicates are kept, matching their
// declaration.
//
// Path item references must be resolved before calling Servers, since a
// referenced path item's servers are only reachable through its resolved
// value; an unresolved reference yields ErrNotResolved. Cycle markers have
// no value to inspect and are skipped.
func Servers(doc *document.Document) ([]*document.Server, error) {
	var servers []*document.Server
	servers = append(servers, doc.Servers...)

	for _, slot := range doc.Paths.All() {
		switch slot.State() {
		case document.SlotRef:
			return nil, ErrNotResolved
		case document.SlotCycle:
			continue
		}
		item := slot.Value()
		if item == nil {
			continue
		}
		servers = append(servers, item.Servers...)
		for _, mo := range item.Operations() {
			servers = append(servers, mo.Operation.Servers...)
		}
	}
	return servers, nil
}
