package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedResults(names ...string) []map[string]interface{} {
	results := make([]map[string]interface{}, 0, len(names))
	for _, n := range names {
		results = append(results, map[string]interface{}{"name": n})
	}
	return results
}

func TestSearchPageFirstPage(t *testing.T) {
	results := namedResults("a", "b", "c", "d", "e")

	page := searchPage(results, 1, 2)
	assert.Len(t, page, 2)
	assert.Equal(t, "a", page[0]["name"])
	assert.Equal(t, "b", page[1]["name"])
}

func TestSearchPageLastPartialPage(t *testing.T) {
	results := namedResults("a", "b", "c", "d", "e")

	page := searchPage(results, 3, 2)
	assert.Len(t, page, 1)
	assert.Equal(t, "e", page[0]["name"])
}

func TestSearchPageBeyondResults(t *testing.T) {
	results := namedResults("a", "b")

	assert.Empty(t, searchPage(results, 5, 10))
	assert.Empty(t, searchPage(nil, 1, 10))
}
