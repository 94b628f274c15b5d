package deref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasref/document"
)

func TestResolveSelfReferentialSchema(t *testing.T) {
	doc := mustLoad(t, `
openapi: 3.1.0
info: {title: t, version: '1'}
paths:
  /nodes:
    get:
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Node'
components:
  schemas:
    Node:
      type: object
      properties:
        value:
          type: string
        next:
          $ref: '#/components/schemas/Node'
`)
	res, err := Resolve(doc)
	require.NoError(t, err, "cycles are not errors")
	require.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, 1, res.Stats.Cycles)

	nodeSlot, ok := doc.Components.Schemas.Get("Node")
	require.True(t, ok)
	node := nodeSlot.Value()
	require.NotNil(t, node)

	next, ok := node.Properties.Get("next")
	require.True(t, ok)
	assert.Equal(t, document.SlotCycle, next.State(), "the self-reference terminates as a marker")
	assert.Equal(t, "#/components/schemas/Node", next.Ref())
	assert.Nil(t, next.Value(), "a cycle marker is never expanded")

	// The non-cyclic site resolves normally and shares the handle.
	site := responseSchema(t, doc, "/nodes", "get", "200", "application/json")
	require.Equal(t, document.SlotResolved, site.State())
	assert.Same(t, node, site.Value())

	// The resolved tree must serialize without infinite recursion.
	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#/components/schemas/Node")
}

func TestResolveMutualCycle(t *testing.T) {
	doc := mustLoad(t, `
openapi: 3.1.0
info: {title: t, version: '1'}
paths: {}
components:
  schemas:
    A:
      type: object
      properties:
        b:
          $ref: '#/components/schemas/B'
    B:
      type: object
      properties:
        a:
          $ref: '#/components/schemas/A'
`)
	res, err := Resolve(doc)
	require.NoError(t, err)
	require.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, 1, res.Stats.Cycles)
	assert.Equal(t, 1, res.Stats.Resolved)

	aSlot, _ := doc.Components.Schemas.Get("A")
	bSlot, _ := doc.Components.Schemas.Get("B")

	// A resolves first, so its reference to B expands and the back edge
	// inside B terminates as a marker.
	b, ok := aSlot.Value().Properties.Get("b")
	require.True(t, ok)
	require.Equal(t, document.SlotResolved, b.State())
	assert.Same(t, bSlot.Value(), b.Value())

	a, ok := bSlot.Value().Properties.Get("a")
	require.True(t, ok)
	assert.Equal(t, document.SlotCycle, a.State())
	assert.Equal(t, "#/components/schemas/A", a.Ref())

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	// Re-resolving must not expand the marker into a real pointer cycle.
	again, err := Resolve(doc)
	require.NoError(t, err)
	require.True(t, again.OK())
	assert.Zero(t, again.Stats.Resolved)

	after, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(after), "a resolved cyclic document is a fixed point")
}

func TestResolveCycleThroughAllOf(t *testing.T) {
	doc := mustLoad(t, `
openapi: 3.1.0
info: {title: t, version: '1'}
paths: {}
components:
  schemas:
    Tree:
      allOf:
        - type: object
        - $ref: '#/components/schemas/Tree'
`)
	res, err := Resolve(doc)
	require.NoError(t, err)
	require.True(t, res.OK())

	slot, _ := doc.Components.Schemas.Get("Tree")
	marker := slot.Value().AllOf[1]
	assert.Equal(t, document.SlotCycle, marker.State())
	assert.Equal(t, "#/components/schemas/Tree", marker.Ref())
}
