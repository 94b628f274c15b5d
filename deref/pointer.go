package deref

import (
	"strconv"
	"strings"
)

// ParsePointer parses a $ref string of the canonical in-document form
// #/components/<section>/<name> into its component kind and name.
//
// Anything else — external file references, HTTP/HTTPS URLs, pointers into
// other parts of the document, unknown section names — fails with a
// MalformedPointer error: references that leave the current document's
// components are reported, never followed.
//
// JSON Pointer tokens are unescaped per RFC 6901 (~1 becomes /, ~0
// becomes ~), so a name may itself contain slashes.
func ParsePointer(ref string) (ComponentKind, string, error) {
	fail := func(msg string) (ComponentKind, string, error) {
		return KindUnknown, "", &ResolveError{
			Kind:    ErrorMalformedPointer,
			Pointer: ref,
			Message: msg,
		}
	}

	if ref == "" {
		return fail("empty reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return fail("external URL references are not supported")
	}
	if !strings.HasPrefix(ref, "#") {
		return fail("external file references are not supported")
	}

	rest, ok := strings.CutPrefix(ref, "#/components/")
	if !ok {
		return fail("pointer must be of the form #/components/<section>/<name>")
	}
	section, name, ok := strings.Cut(rest, "/")
	if !ok || section == "" || name == "" {
		return fail("pointer must be of the form #/components/<section>/<name>")
	}
	if strings.Contains(name, "/") {
		// Component names cannot contain raw slashes; escaped ones (~1) are fine.
		return fail("pointer targets a nested path, not a named component")
	}

	kind, ok := KindForSection(section)
	if !ok {
		return fail("unknown components section " + strconv.Quote(section))
	}
	return kind, unescapeToken(name), nil
}

// ComponentPointer builds the canonical pointer for a (kind, name) pair,
// escaping JSON Pointer tokens in the name.
func ComponentPointer(kind ComponentKind, name string) string {
	return "#/components/" + kind.Section() + "/" + escapeToken(name)
}

// unescapeToken unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func unescapeToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// escapeToken escapes JSON Pointer tokens, the inverse of unescapeToken.
func escapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
