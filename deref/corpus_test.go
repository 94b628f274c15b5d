package deref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/erraggy/oasref/document"
)

// TestResolveCorpus runs Resolve over the documents in testdata/corpus.txtar.
// Each case is a pair of archive files: <name>/doc.yaml holds the input and
// <name>/errors.txt the expected error strings, one per line (absent for a
// clean resolution).
func TestResolveCorpus(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/corpus.txtar")
	require.NoError(t, err)

	docs := make(map[string][]byte)
	wants := make(map[string][]string)
	for _, f := range archive.Files {
		name, kind, ok := strings.Cut(f.Name, "/")
		require.True(t, ok, "unexpected archive file %q", f.Name)
		switch kind {
		case "doc.yaml":
			docs[name] = f.Data
		case "errors.txt":
			for _, line := range strings.Split(string(f.Data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					wants[name] = append(wants[name], line)
				}
			}
		default:
			t.Fatalf("unexpected archive file %q", f.Name)
		}
	}
	require.NotEmpty(t, docs)

	for name, src := range docs {
		t.Run(name, func(t *testing.T) {
			result, err := document.Load(document.WithBytes(src), document.WithSourceName(name))
			require.NoError(t, err, "corpus document should parse")

			res, err := Resolve(result.Document)
			require.NoError(t, err)

			var got []string
			for _, re := range res.Errors {
				got = append(got, re.Error())
			}
			assert.Equal(t, wants[name], got)
		})
	}
}
