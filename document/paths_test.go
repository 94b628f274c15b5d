package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestPathItemOperationsOrder(t *testing.T) {
	p := &PathItem{
		Trace: &Operation{OperationID: "t"},
		Get:   &Operation{OperationID: "g"},
		Post:  &Operation{OperationID: "p"},
	}

	ops := p.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, "get", ops[0].Method, "methods come back in fixed order, not field-set order")
	assert.Equal(t, "post", ops[1].Method)
	assert.Equal(t, "trace", ops[2].Method)

	var nilItem *PathItem
	assert.Nil(t, nilItem.Operations())
}

func TestResponsesUnmarshalSplitsFields(t *testing.T) {
	src := `
default:
  description: fallback
'404':
  $ref: '#/components/responses/NotFound'
'200':
  description: ok
x-rate-limited: true
`
	var resp Responses
	require.NoError(t, yaml.Unmarshal([]byte(src), &resp))

	require.NotNil(t, resp.Default, "default is split out of the code map")
	require.NotNil(t, resp.Default.Value())
	assert.Equal(t, "fallback", resp.Default.Value().Description)

	assert.Equal(t, []string{"404", "200"}, resp.Codes.Keys(), "codes keep declaration order")
	notFound, ok := resp.Codes.Get("404")
	require.True(t, ok)
	assert.Equal(t, SlotRef, notFound.State())
	assert.Equal(t, "#/components/responses/NotFound", notFound.Ref())

	require.Contains(t, resp.Extra, "x-rate-limited", "extensions are split out of the code map")
	assert.Equal(t, true, resp.Extra["x-rate-limited"])
}

func TestResponsesUnmarshalRejectsInvalidStatusCode(t *testing.T) {
	src := "'999':\n  description: nope\n"
	var resp Responses
	err := yaml.Unmarshal([]byte(src), &resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid status code "999"`)
}

func TestResponsesMarshalOrder(t *testing.T) {
	src := `
'500':
  description: boom
default:
  description: fallback
'200':
  description: ok
`
	var resp Responses
	require.NoError(t, yaml.Unmarshal([]byte(src), &resp))

	out, err := yaml.Marshal(&resp)
	require.NoError(t, err)

	var again Responses
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, []string{"500", "200"}, again.Codes.Keys())
	require.NotNil(t, again.Default)
}

func TestValidStatusCode(t *testing.T) {
	valid := []string{"default", "100", "200", "404", "599", "2XX", "5XX"}
	for _, code := range valid {
		assert.True(t, validStatusCode(code), "expected %q to be valid", code)
	}
	invalid := []string{"", "20", "2000", "999", "600", "099", "2Xx", "xXX", "20X", "abc"}
	for _, code := range invalid {
		assert.False(t, validStatusCode(code), "expected %q to be invalid", code)
	}
}

func TestSchemaOrBool(t *testing.T) {
	var b SchemaOrBool
	require.NoError(t, yaml.Unmarshal([]byte("false"), &b))
	require.NotNil(t, b.Bool)
	assert.False(t, *b.Bool)
	assert.Nil(t, b.Schema)

	var s SchemaOrBool
	require.NoError(t, yaml.Unmarshal([]byte("type: string"), &s))
	require.Nil(t, s.Bool)
	require.NotNil(t, s.Schema)
	assert.Equal(t, "string", s.Schema.Value().Type)

	var bad SchemaOrBool
	err := yaml.Unmarshal([]byte("42"), &bad)
	require.Error(t, err, "a non-boolean scalar is neither form")
}
