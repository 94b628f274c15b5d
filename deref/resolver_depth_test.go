package deref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTooDeepNesting(t *testing.T) {
	var b strings.Builder
	b.WriteString(`
openapi: 3.1.0
info: {title: t, version: '1'}
paths: {}
components:
  schemas:
    Deep:
`)
	indent := "      "
	for i := 0; i < 6; i++ {
		b.WriteString(indent + "type: object\n")
		b.WriteString(indent + "properties:\n")
		b.WriteString(indent + "  p:\n")
		indent += "    "
	}
	b.WriteString(indent + "type: string\n")

	doc := mustLoad(t, b.String())
	res, err := Resolve(doc, WithMaxDepth(3))
	require.Error(t, err, "exceeding the depth guard is fatal")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrTooDeep)

	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrorTooDeep, re.Kind)
	assert.Contains(t, re.Message, "maximum depth of 3")
	assert.Contains(t, re.Location, "$.components.schemas['Deep']")
}

func TestResolveTooDeepRefChain(t *testing.T) {
	var b strings.Builder
	b.WriteString(`
openapi: 3.1.0
info: {title: t, version: '1'}
paths: {}
components:
  schemas:
`)
	for i := 0; i < 6; i++ {
		b.WriteString("    S")
		b.WriteString(string(rune('0' + i)))
		b.WriteString(":\n")
		if i < 5 {
			b.WriteString("      $ref: '#/components/schemas/S")
			b.WriteString(string(rune('0' + i + 1)))
			b.WriteString("'\n")
		} else {
			b.WriteString("      type: object\n")
		}
	}

	doc := mustLoad(t, b.String())
	_, err := Resolve(doc, WithMaxDepth(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestResolveDeepWithinDefaultLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString(`
openapi: 3.1.0
info: {title: t, version: '1'}
paths: {}
components:
  schemas:
    Deep:
`)
	indent := "      "
	for i := 0; i < 20; i++ {
		b.WriteString(indent + "type: object\n")
		b.WriteString(indent + "properties:\n")
		b.WriteString(indent + "  p:\n")
		indent += "    "
	}
	b.WriteString(indent + "type: string\n")

	doc := mustLoad(t, b.String())
	res, err := Resolve(doc)
	require.NoError(t, err, "the default guard leaves realistic documents alone")
	assert.True(t, res.OK())
}
