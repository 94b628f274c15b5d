package deref

import (
	"fmt"

	"github.com/erraggy/oasref/document"
)

// Traversal order is fixed so output and error lists are reproducible:
// components first (securitySchemes, responses, schemas, parameters,
// examples, requestBodies, headers, links, callbacks, pathItems, names in
// declaration order), then paths in declaration order with methods in
// get/put/post/delete/options/head/patch/trace order, then webhooks.

func (r *resolver) documentWalk(doc *document.Document) error {
	if doc.Components != nil {
		if err := r.componentsWalk(doc.Components); err != nil {
			return err
		}
	}
	if err := r.pathsWalk(doc.Paths, "$.paths"); err != nil {
		return err
	}
	return r.pathsWalk(doc.Webhooks, "$.webhooks")
}

func (r *resolver) componentsWalk(c *document.Components) error {
	steps := []func() error{
		func() error {
			return walkSection(r, KindSecurityScheme, c.SecuritySchemes, (*resolver).securitySchemeValue)
		},
		func() error { return walkSection(r, KindResponse, c.Responses, (*resolver).responseValue) },
		func() error { return walkSection(r, KindSchema, c.Schemas, (*resolver).schemaValue) },
		func() error { return walkSection(r, KindParameter, c.Parameters, (*resolver).parameterValue) },
		func() error { return walkSection(r, KindExample, c.Examples, (*resolver).exampleValue) },
		func() error { return walkSection(r, KindRequestBody, c.RequestBodies, (*resolver).requestBodyValue) },
		func() error { return walkSection(r, KindHeader, c.Headers, (*resolver).headerValue) },
		func() error { return walkSection(r, KindLink, c.Links, (*resolver).linkValue) },
		func() error { return walkSection(r, KindCallback, c.Callbacks, (*resolver).callbackValue) },
		func() error { return walkSection(r, KindPathItem, c.PathItems, (*resolver).pathItemValue) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// walkSection processes one components section. In resolve mode every
// definition resolves through its index entry so that each component is
// walked exactly once; in inventory mode the section is walked directly.
func walkSection[T any](r *resolver, kind ComponentKind, m *document.Map[*document.RefOr[T]], walk walkFunc[T]) error {
	if m == nil {
		return nil
	}
	for name, slot := range m.All() {
		if r.collectOnly {
			if err := resolveSlot(r, slot, kind, componentLocation(kind, name), 1, walk); err != nil {
				return err
			}
			continue
		}
		e, ok := r.index.entries[ComponentPointer(kind, name)]
		if !ok {
			continue
		}
		if err := r.resolveEntry(e, 1); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) pathsWalk(m *document.Map[*document.RefOr[document.PathItem]], loc string) error {
	if m == nil {
		return nil
	}
	for path, slot := range m.All() {
		if err := resolveSlot(r, slot, KindPathItem, childKey(loc, path), 1, (*resolver).pathItemValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) pathItemValue(p *document.PathItem, loc string, depth int) error {
	if err := r.parameterSlots(p.Parameters, loc, depth); err != nil {
		return err
	}
	for _, mo := range p.Operations() {
		if err := r.operationWalk(mo.Operation, childField(loc, mo.Method), depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) operationWalk(op *document.Operation, loc string, depth int) error {
	if err := r.parameterSlots(op.Parameters, loc, depth); err != nil {
		return err
	}
	if err := resolveSlot(r, op.RequestBody, KindRequestBody, childField(loc, "requestBody"), depth, (*resolver).requestBodyValue); err != nil {
		return err
	}
	if err := r.responsesWalk(op.Responses, childField(loc, "responses"), depth); err != nil {
		return err
	}
	if op.Callbacks != nil {
		cbLoc := childField(loc, "callbacks")
		for name, slot := range op.Callbacks.All() {
			if err := resolveSlot(r, slot, KindCallback, childKey(cbLoc, name), depth, (*resolver).callbackValue); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *resolver) responsesWalk(resp *document.Responses, loc string, depth int) error {
	if resp == nil {
		return nil
	}
	if err := resolveSlot(r, resp.Default, KindResponse, childField(loc, "default"), depth, (*resolver).responseValue); err != nil {
		return err
	}
	if resp.Codes == nil {
		return nil
	}
	for code, slot := range resp.Codes.All() {
		if err := resolveSlot(r, slot, KindResponse, childKey(loc, code), depth, (*resolver).responseValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) responseValue(resp *document.Response, loc string, depth int) error {
	if err := r.headersWalk(resp.Headers, childField(loc, "headers"), depth); err != nil {
		return err
	}
	if err := r.contentWalk(resp.Content, childField(loc, "content"), depth); err != nil {
		return err
	}
	if resp.Links == nil {
		return nil
	}
	linksLoc := childField(loc, "links")
	for name, slot := range resp.Links.All() {
		if err := resolveSlot(r, slot, KindLink, childKey(linksLoc, name), depth, (*resolver).linkValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) parameterSlots(params []*document.RefOr[document.Parameter], loc string, depth int) error {
	for i, slot := range params {
		if err := resolveSlot(r, slot, KindParameter, fmt.Sprintf("%s.parameters[%d]", loc, i), depth, (*resolver).parameterValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) parameterValue(p *document.Parameter, loc string, depth int) error {
	if err := resolveSlot(r, p.Schema, KindSchema, childField(loc, "schema"), depth, (*resolver).schemaValue); err != nil {
		return err
	}
	if err := r.examplesWalk(p.Examples, childField(loc, "examples"), depth); err != nil {
		return err
	}
	return r.contentWalk(p.Content, childField(loc, "content"), depth)
}

func (r *resolver) headerValue(h *document.Header, loc string, depth int) error {
	if err := resolveSlot(r, h.Schema, KindSchema, childField(loc, "schema"), depth, (*resolver).schemaValue); err != nil {
		return err
	}
	if err := r.examplesWalk(h.Examples, childField(loc, "examples"), depth); err != nil {
		return err
	}
	return r.contentWalk(h.Content, childField(loc, "content"), depth)
}

func (r *resolver) requestBodyValue(b *document.RequestBody, loc string, depth int) error {
	return r.contentWalk(b.Content, childField(loc, "content"), depth)
}

func (r *resolver) callbackValue(c *document.Callback, loc string, depth int) error {
	for expr, slot := range c.All() {
		if err := resolveSlot(r, slot, KindPathItem, childKey(loc, expr), depth, (*resolver).pathItemValue); err != nil {
			return err
		}
	}
	return nil
}

// exampleValue has no referenceable interior.
func (r *resolver) exampleValue(*document.Example, string, int) error {
	return nil
}

// linkValue has no referenceable interior.
func (r *resolver) linkValue(*document.Link, string, int) error {
	return nil
}

// securitySchemeValue has no referenceable interior.
func (r *resolver) securitySchemeValue(*document.SecurityScheme, string, int) error {
	return nil
}

func (r *resolver) headersWalk(m *document.Map[*document.RefOr[document.Header]], loc string, depth int) error {
	if m == nil {
		return nil
	}
	for name, slot := range m.All() {
		if err := resolveSlot(r, slot, KindHeader, childKey(loc, name), depth, (*resolver).headerValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) examplesWalk(m *document.Map[*document.RefOr[document.Example]], loc string, depth int) error {
	if m == nil {
		return nil
	}
	for name, slot := range m.All() {
		if err := resolveSlot(r, slot, KindExample, childKey(loc, name), depth, (*resolver).exampleValue); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) contentWalk(m *document.Map[*document.MediaType], loc string, depth int) error {
	if m == nil {
		return nil
	}
	for mediaRange, mt := range m.All() {
		if mt == nil {
			continue
		}
		if err := r.mediaTypeWalk(mt, childKey(loc, mediaRange), depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) mediaTypeWalk(mt *document.MediaType, loc string, depth int) error {
	if err := resolveSlot(r, mt.Schema, KindSchema, childField(loc, "schema"), depth, (*resolver).schemaValue); err != nil {
		return err
	}
	if err := r.examplesWalk(mt.Examples, childField(loc, "examples"), depth); err != nil {
		return err
	}
	if mt.Encoding == nil {
		return nil
	}
	encLoc := childField(loc, "encoding")
	for name, enc := range mt.Encoding.All() {
		if enc == nil {
			continue
		}
		if err := r.headersWalk(enc.Headers, childField(childKey(encLoc, name), "headers"), depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) schemaValue(s *document.Schema, loc string, depth int) error {
	if err := r.schemaSlot(s.Items, childField(loc, "items"), depth); err != nil {
		return err
	}
	if err := r.schemaSlots(s.PrefixItems, loc, "prefixItems", depth); err != nil {
		return err
	}
	if err := r.schemaSlot(s.Contains, childField(loc, "contains"), depth); err != nil {
		return err
	}
	if err := r.schemaMap(s.Properties, childField(loc, "properties"), depth); err != nil {
		return err
	}
	if err := r.schemaMap(s.PatternProperties, childField(loc, "patternProperties"), depth); err != nil {
		return err
	}
	if s.AdditionalProperties != nil {
		if err := r.schemaSlot(s.AdditionalProperties.Schema, childField(loc, "additionalProperties"), depth); err != nil {
			return err
		}
	}
	if err := r.schemaSlot(s.PropertyNames, childField(loc, "propertyNames"), depth); err != nil {
		return err
	}
	if err := r.schemaMap(s.DependentSchemas, childField(loc, "dependentSchemas"), depth); err != nil {
		return err
	}
	if err := r.schemaSlot(s.If, childField(loc, "if"), depth); err != nil {
		return err
	}
	if err := r.schemaSlot(s.Then, childField(loc, "then"), depth); err != nil {
		return err
	}
	if err := r.schemaSlot(s.Else, childField(loc, "else"), depth); err != nil {
		return err
	}
	if err := r.schemaSlots(s.AllOf, loc, "allOf", depth); err != nil {
		return err
	}
	if err := r.schemaSlots(s.AnyOf, loc, "anyOf", depth); err != nil {
		return err
	}
	if err := r.schemaSlots(s.OneOf, loc, "oneOf", depth); err != nil {
		return err
	}
	if err := r.schemaSlot(s.Not, childField(loc, "not"), depth); err != nil {
		return err
	}
	return r.schemaMap(s.Defs, childField(loc, "$defs"), depth)
}

func (r *resolver) schemaSlot(slot *document.RefOr[document.Schema], loc string, depth int) error {
	return resolveSlot(r, slot, KindSchema, loc, depth, (*resolver).schemaValue)
}

func (r *resolver) schemaSlots(slots []*document.RefOr[document.Schema], loc, field string, depth int) error {
	for i, slot := range slots {
		if err := r.schemaSlot(slot, fmt.Sprintf("%s.%s[%d]", loc, field, i), depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) schemaMap(m *document.Map[*document.RefOr[document.Schema]], loc string, depth int) error {
	if m == nil {
		return nil
	}
	for name, slot := range m.All() {
		if err := r.schemaSlot(slot, childKey(loc, name), depth); err != nil {
			return err
		}
	}
	return nil
}

// childField appends a field segment: loc.field
func childField(loc, field string) string {
	return loc + "." + field
}

// childKey appends a bracketed key segment: loc['key']
func childKey(loc, key string) string {
	return loc + "['" + key + "']"
}
