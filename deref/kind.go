package deref

import "fmt"

// ComponentKind identifies which components section a pointer targets.
// The section named in a canonical pointer determines the type the
// reference must resolve to; a mismatch between a slot's expected kind
// and its pointer's section is a KindMismatch error.
type ComponentKind int

const (
	// KindUnknown is the zero value for an unrecognized section.
	KindUnknown ComponentKind = iota
	// KindSchema targets #/components/schemas entries.
	KindSchema
	// KindResponse targets #/components/responses entries.
	KindResponse
	// KindParameter targets #/components/parameters entries.
	KindParameter
	// KindExample targets #/components/examples entries.
	KindExample
	// KindRequestBody targets #/components/requestBodies entries.
	KindRequestBody
	// KindHeader targets #/components/headers entries.
	KindHeader
	// KindSecurityScheme targets #/components/securitySchemes entries.
	KindSecurityScheme
	// KindLink targets #/components/links entries.
	KindLink
	// KindCallback targets #/components/callbacks entries.
	KindCallback
	// KindPathItem targets #/components/pathItems entries.
	KindPathItem
)

// Kinds returns every component kind in canonical resolution order.
// Components resolve section by section in this order, so output never
// depends on map iteration order.
func Kinds() []ComponentKind {
	return []ComponentKind{
		KindSecurityScheme,
		KindResponse,
		KindSchema,
		KindParameter,
		KindExample,
		KindRequestBody,
		KindHeader,
		KindLink,
		KindCallback,
		KindPathItem,
	}
}

// kindSections maps each kind to its components section name.
var kindSections = map[ComponentKind]string{
	KindSchema:         "schemas",
	KindResponse:       "responses",
	KindParameter:      "parameters",
	KindExample:        "examples",
	KindRequestBody:    "requestBodies",
	KindHeader:         "headers",
	KindSecurityScheme: "securitySchemes",
	KindLink:           "links",
	KindCallback:       "callbacks",
	KindPathItem:       "pathItems",
}

// sectionKinds is the inverse of kindSections.
var sectionKinds = func() map[string]ComponentKind {
	m := make(map[string]ComponentKind, len(kindSections))
	for k, s := range kindSections {
		m[s] = k
	}
	return m
}()

// Section returns the components section name for the kind, e.g. "schemas".
func (k ComponentKind) Section() string {
	return kindSections[k]
}

// String returns a human-readable name for the kind, e.g. "schema".
func (k ComponentKind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindResponse:
		return "response"
	case KindParameter:
		return "parameter"
	case KindExample:
		return "example"
	case KindRequestBody:
		return "requestBody"
	case KindHeader:
		return "header"
	case KindSecurityScheme:
		return "securityScheme"
	case KindLink:
		return "link"
	case KindCallback:
		return "callback"
	case KindPathItem:
		return "pathItem"
	default:
		return fmt.Sprintf("ComponentKind(%d)", int(k))
	}
}

// KindForSection returns the kind for a components section name.
func KindForSection(section string) (ComponentKind, bool) {
	k, ok := sectionKinds[section]
	return k, ok
}
