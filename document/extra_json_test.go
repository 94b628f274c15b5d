package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestMarshalJSONKeepsExtensions(t *testing.T) {
	src := `
openapi: 3.1.0
x-internal: true
info:
  title: Extended
  version: "1.0"
  x-audience: partners
paths: {}
`
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.Equal(t, map[string]any{"x-internal": true}, doc.Extra)

	out, err := json.Marshal(&doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"x-internal":true`,
		"root extensions survive JSON output")
	assert.Contains(t, string(out), `"x-audience":"partners"`,
		"info extensions survive JSON output")
}

func TestMarshalWithExtraSortsKeys(t *testing.T) {
	info := &Info{
		Title:   "T",
		Version: "1.0",
		Extra: map[string]any{
			"x-zulu":  1,
			"x-alpha": 2,
			"x-mike":  3,
		},
	}
	out, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Equal(t,
		`{"title":"T","version":"1.0","x-alpha":2,"x-mike":3,"x-zulu":1}`,
		string(out),
		"extension keys are emitted in sorted order for deterministic output")
}

func TestMarshalWithExtraEmptyObject(t *testing.T) {
	out, err := marshalWithExtra(struct{}{}, map[string]any{"x-only": "v"})
	require.NoError(t, err)
	assert.Equal(t, `{"x-only":"v"}`, string(out))
}

func TestResponsesExtensionOrderDeterministic(t *testing.T) {
	src := `
"200":
  description: OK
x-bravo: 2
x-alpha: 1
`
	var resp Responses
	require.NoError(t, yaml.Unmarshal([]byte(src), &resp))

	out, err := json.Marshal(&resp)
	require.NoError(t, err)
	assert.Equal(t,
		`{"200":{"description":"OK"},"x-alpha":1,"x-bravo":2}`,
		string(out))

	y, err := yaml.Marshal(&resp)
	require.NoError(t, err)
	first := string(y)
	for i := 0; i < 5; i++ {
		again, err := yaml.Marshal(&resp)
		require.NoError(t, err)
		assert.Equal(t, first, string(again), "repeated marshals are byte-identical")
	}
}
