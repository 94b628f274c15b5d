package deref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointerValid(t *testing.T) {
	tests := []struct {
		ref  string
		kind ComponentKind
		name string
	}{
		{"#/components/schemas/Pet", KindSchema, "Pet"},
		{"#/components/responses/NotFound", KindResponse, "NotFound"},
		{"#/components/parameters/limit", KindParameter, "limit"},
		{"#/components/examples/pet-example", KindExample, "pet-example"},
		{"#/components/requestBodies/PetBody", KindRequestBody, "PetBody"},
		{"#/components/headers/X-Rate-Limit", KindHeader, "X-Rate-Limit"},
		{"#/components/securitySchemes/api_key", KindSecurityScheme, "api_key"},
		{"#/components/links/PetLink", KindLink, "PetLink"},
		{"#/components/callbacks/onData", KindCallback, "onData"},
		{"#/components/pathItems/PetOps", KindPathItem, "PetOps"},
		// RFC 6901 escapes: ~1 is /, ~0 is ~
		{"#/components/schemas/application~1json", KindSchema, "application/json"},
		{"#/components/schemas/a~0b", KindSchema, "a~b"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			kind, name, err := ParsePointer(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestParsePointerMalformed(t *testing.T) {
	tests := []struct {
		ref     string
		message string
	}{
		{"", "empty reference"},
		{"http://example.com/openapi.yaml#/components/schemas/Pet", "external URL references are not supported"},
		{"https://example.com/openapi.yaml", "external URL references are not supported"},
		{"./common.yaml#/components/schemas/Pet", "external file references are not supported"},
		{"other.json", "external file references are not supported"},
		{"#/definitions/Pet", "pointer must be of the form"},
		{"#/components", "pointer must be of the form"},
		{"#/components/schemas", "pointer must be of the form"},
		{"#/components/schemas/", "pointer must be of the form"},
		{"#/components/schemas/Pet/properties/name", "pointer targets a nested path"},
		{"#/components/widgets/Pet", `unknown components section "widgets"`},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			kind, _, err := ParsePointer(tt.ref)
			require.Error(t, err)
			assert.Equal(t, KindUnknown, kind)
			assert.ErrorIs(t, err, ErrMalformedPointer)
			assert.Contains(t, err.Error(), tt.message)

			var re *ResolveError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.ref, re.Pointer)
		})
	}
}

func TestComponentPointer(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", ComponentPointer(KindSchema, "Pet"))
	assert.Equal(t, "#/components/requestBodies/PetBody", ComponentPointer(KindRequestBody, "PetBody"))
	assert.Equal(t, "#/components/schemas/a~1b~0c", ComponentPointer(KindSchema, "a/b~c"))

	// Round trip through escaping.
	kind, name, err := ParsePointer(ComponentPointer(KindSchema, "a/b~c"))
	require.NoError(t, err)
	assert.Equal(t, KindSchema, kind)
	assert.Equal(t, "a/b~c", name)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 10)
	assert.Equal(t, KindSecurityScheme, kinds[0], "resolution starts with securitySchemes")
	assert.Equal(t, KindPathItem, kinds[len(kinds)-1])

	seen := make(map[ComponentKind]bool)
	for _, k := range kinds {
		assert.False(t, seen[k], "kind %s listed twice", k)
		seen[k] = true

		section := k.Section()
		require.NotEmpty(t, section)
		back, ok := KindForSection(section)
		require.True(t, ok)
		assert.Equal(t, k, back)
	}

	_, ok := KindForSection("widgets")
	assert.False(t, ok)
}

func TestComponentKindString(t *testing.T) {
	assert.Equal(t, "schema", KindSchema.String())
	assert.Equal(t, "requestBody", KindRequestBody.String())
	assert.Equal(t, "securityScheme", KindSecurityScheme.String())
	assert.Contains(t, ComponentKind(99).String(), "ComponentKind(99)")
}
