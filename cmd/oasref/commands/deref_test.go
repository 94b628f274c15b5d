package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreSpec = `openapi: 3.1.0
info:
  title: Pet Store
  version: "1.0.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`

// isolateConfig points OASREF_CONFIG at a missing file so the ambient
// user config cannot leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigEnvVar, filepath.Join(t.TempDir(), "absent.toml"))
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupDerefFlags_Parsing(t *testing.T) {
	fs, flags := SetupDerefFlags(Config{Format: FormatText})
	require.NoError(t, fs.Parse([]string{"-o", "out.yaml", "--max-depth", "10", "-q", "spec.yaml"}))

	assert.Equal(t, "out.yaml", flags.Output)
	assert.Equal(t, 10, flags.MaxDepth)
	assert.True(t, flags.Quiet)
	assert.Equal(t, FormatText, flags.Format)
	assert.Equal(t, []string{"spec.yaml"}, fs.Args())
}

func TestHandleDeref_WritesResolvedOutput(t *testing.T) {
	isolateConfig(t)
	specPath := writeSpec(t, petstoreSpec)
	outPath := filepath.Join(t.TempDir(), "resolved.yaml")

	err := HandleDeref([]string{"-q", "-o", outPath, specPath})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// Resolved slots serialize as their expanded value, so no $ref
	// survives in an acyclic document.
	assert.NotContains(t, string(data), "$ref")
	assert.Contains(t, string(data), "type: object",
		"the response schema is written in expanded form")
}

func TestHandleDeref_NoArgs(t *testing.T) {
	isolateConfig(t)
	err := HandleDeref([]string{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires exactly one file path")
}

func TestHandleDeref_InvalidFormat(t *testing.T) {
	isolateConfig(t)
	err := HandleDeref([]string{"--format", "xml", "spec.yaml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleDeref_RejectsOverwritingInput(t *testing.T) {
	isolateConfig(t)
	specPath := writeSpec(t, petstoreSpec)

	err := HandleDeref([]string{"-o", specPath, specPath})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestHandleComponents_TextListing(t *testing.T) {
	isolateConfig(t)
	specPath := writeSpec(t, petstoreSpec)

	err := HandleComponents([]string{"-q", specPath})
	assert.NoError(t, err)
}

func TestHandleComponents_UnknownSection(t *testing.T) {
	isolateConfig(t)
	specPath := writeSpec(t, petstoreSpec)

	err := HandleComponents([]string{"--section", "widgets", specPath})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown components section")
}

func TestHandleRefs_InvalidGroupBy(t *testing.T) {
	isolateConfig(t)
	err := HandleRefs([]string{"--group-by", "section", "spec.yaml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid group-by")
}

func TestHandleRefs_Quiet(t *testing.T) {
	isolateConfig(t)
	specPath := writeSpec(t, petstoreSpec)

	err := HandleRefs([]string{"-q", specPath})
	assert.NoError(t, err)
}
