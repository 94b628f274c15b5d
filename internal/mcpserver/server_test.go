package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 250)
	for i := range items {
		items[i] = i
	}

	page := paginate(items, 0, 0)
	assert.Len(t, page, cfg.RefsLimit)
	assert.Equal(t, 0, page[0])

	page = paginate(items, 100, 0)
	assert.Equal(t, 100, page[0])
}

func TestPaginate_Bounds(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Nil(t, paginate(items, 5, 10))
	assert.Nil(t, paginate(items, -1, 10))
	assert.Equal(t, []int{2, 3}, paginate(items, 1, 10))
	assert.Equal(t, []int{1}, paginate(items, 0, 1))
}

func TestPaginate_CapsLimit(t *testing.T) {
	items := make([]int, maxPageSize+500)
	page := paginate(items, 0, maxPageSize+500)
	assert.Len(t, page, maxPageSize)
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))

	err := errors.New("stat /home/alice/secrets/openapi.yaml: no such file")
	assert.Equal(t, "stat <path>: no such file", sanitizeError(err))

	err = errors.New("exactly one of file or content must be provided")
	assert.Equal(t, "exactly one of file or content must be provided", sanitizeError(err))
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("boom"))
	assert.True(t, res.IsError)
	assert.Len(t, res.Content, 1)
}

func TestGroupAndSort(t *testing.T) {
	items := []string{"b", "a", "b", "c", "b", "a"}
	groups := groupAndSort(items, func(s string) string { return s })

	assert.Equal(t, []groupCount{
		{Key: "b", Count: 3},
		{Key: "a", Count: 2},
		{Key: "c", Count: 1},
	}, groups)
}

func TestGroupAndSort_TiesBreakAlphabetically(t *testing.T) {
	items := []string{"z", "a"}
	groups := groupAndSort(items, func(s string) string { return s })

	assert.Equal(t, "a", groups[0].Key)
	assert.Equal(t, "z", groups[1].Key)
}

func TestValidateGroupBy(t *testing.T) {
	allowed := []string{"target", "kind"}

	assert.NoError(t, validateGroupBy("", allowed))
	assert.NoError(t, validateGroupBy("target", allowed))
	assert.NoError(t, validateGroupBy("KIND", allowed))

	err := validateGroupBy("method", allowed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid group_by value")
}
