package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefsTool_ListsAllSites(t *testing.T) {
	specCache.reset()
	input := refsInput{Spec: specInput{Content: testSpecYAML}}
	_, output, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 4, output.Total)
	assert.Equal(t, 3, output.Unique)
	assert.Equal(t, 4, output.Returned)
	require.Len(t, output.Sites, 4)

	// Paths are walked after components, so the first site is the
	// Pet schema's owner property.
	assert.Equal(t, "#/components/schemas/Owner", output.Sites[0].Ref)
	assert.Equal(t, "$.components.schemas['Pet'].properties['owner']", output.Sites[0].Location)
	assert.Equal(t, "schema", output.Sites[0].Kind)
	assert.False(t, output.Sites[0].Resolved)
}

func TestRefsTool_TargetFilter(t *testing.T) {
	specCache.reset()
	input := refsInput{
		Spec:   specInput{Content: testSpecYAML},
		Target: "#/components/schemas/Pet",
	}
	_, output, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.Total)
	for _, site := range output.Sites {
		assert.Equal(t, "#/components/schemas/Pet", site.Ref)
	}
}

func TestRefsTool_TargetGlob(t *testing.T) {
	specCache.reset()
	input := refsInput{
		Spec:   specInput{Content: testSpecYAML},
		Target: "*schemas/*",
	}
	_, output, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 3, output.Total)
}

func TestRefsTool_GroupByTarget(t *testing.T) {
	specCache.reset()
	input := refsInput{
		Spec:    specInput{Content: testSpecYAML},
		GroupBy: "target",
	}
	_, output, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Empty(t, output.Sites)
	require.Len(t, output.Groups, 3)
	assert.Equal(t, groupCount{Key: "#/components/schemas/Pet", Count: 2}, output.Groups[0])
}

func TestRefsTool_GroupByKind(t *testing.T) {
	specCache.reset()
	input := refsInput{
		Spec:    specInput{Content: testSpecYAML},
		GroupBy: "kind",
	}
	_, output, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Groups, 2)
	assert.Equal(t, groupCount{Key: "schema", Count: 3}, output.Groups[0])
	assert.Equal(t, groupCount{Key: "requestBody", Count: 1}, output.Groups[1])
}

func TestRefsTool_InvalidGroupBy(t *testing.T) {
	input := refsInput{
		Spec:    specInput{Content: testSpecYAML},
		GroupBy: "section",
	}
	result, _, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRefsTool_Pagination(t *testing.T) {
	specCache.reset()
	input := refsInput{
		Spec:   specInput{Content: testSpecYAML},
		Offset: 2,
		Limit:  1,
	}
	_, output, err := handleRefs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 4, output.Total)
	assert.Equal(t, 1, output.Returned)
	require.Len(t, output.Sites, 1)
}

func TestMatchRefGlob(t *testing.T) {
	assert.True(t, matchRefGlob("#/components/schemas/Pet", "*schemas/Pet"))
	assert.True(t, matchRefGlob("#/components/schemas/Pet", "*Pet"))
	assert.True(t, matchRefGlob("#/components/responses/NotFound", "*responses/*"))
	assert.False(t, matchRefGlob("#/components/schemas/Pet", "*responses/*"))

	// Case-insensitive.
	assert.True(t, matchRefGlob("#/components/schemas/Pet", "*SCHEMAS/PET"))

	// ? matches a single character.
	assert.True(t, matchRefGlob("#/components/schemas/Pet", "*schemas/P?t"))
	assert.False(t, matchRefGlob("#/components/schemas/Pet", "*schemas/P?"))

	// No glob characters falls back to exact (case-insensitive) match.
	assert.True(t, matchRefGlob("#/components/schemas/Pet", "#/components/schemas/Pet"))
	assert.False(t, matchRefGlob("#/components/schemas/Pet", "#/components/schemas/Owner"))
}
