// Package deref resolves $ref pointers in an OpenAPI 3.1 document in
// place, producing a tree where every reference site carries both the
// original pointer and the fully-resolved value.
//
// Only canonical in-document pointers of the form
// #/components/<section>/<name> are followed; external file and URL
// references are reported as malformed, never fetched. Every slot that
// references the same component shares the same value handle, and cyclic
// references terminate as unexpanded reference markers rather than errors,
// so a resolved document always serializes.
//
// The entry points are [Resolve], which mutates and returns the document
// with accumulated per-slot errors, and [Refs], which inventories every
// reference site without resolving anything:
//
//	res, err := deref.Resolve(doc)
//	if err != nil {
//		return err // fatal: duplicate component or depth exceeded
//	}
//	for _, re := range res.Errors {
//		log.Println(re) // per-slot: malformed, unknown, kind mismatch
//	}
package deref
