package items

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "items.yaml", `
- id: a
  title: Alpha
  body: first
  tags: [one, two]
- title: Beta
`)
	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, []string{"one", "two"}, list[0].Tags)
	assert.Equal(t, "2", list[1].ID)
	assert.Equal(t, "Beta", list[1].Title)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "items.json", `[{"id":"x","title":"From JSON","meta":{"price":"9.99"}}]`)
	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "From JSON", list[0].Title)
	assert.Equal(t, "9.99", list[0].Meta["price"])
}

func TestLoadFileJSONEscapes(t *testing.T) {
	path := writeFile(t, "items.json", `[
	{"id":"a","title":"a\/b","body":"caf\u00e9"},
	{"id":"b","title":"first","title":"second"}
]`)
	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a/b", list[0].Title)
	assert.Equal(t, "café", list[0].Body)
	assert.Equal(t, "second", list[1].Title)
}

func TestLoadFileJSONRejectsMissingTitle(t *testing.T) {
	path := writeFile(t, "items.json", `[{"title":"ok"},{"body":"no title"}]`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2 has no title")
}

func TestLoadFileRejectsMissingTitle(t *testing.T) {
	path := writeFile(t, "items.yml", "- id: a\n  body: no title\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no title")
}

func TestLoadFileLines(t *testing.T) {
	path := writeFile(t, "items.txt", "first\n\n  second  \nthird\n")
	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "3", list[1].ID)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilter(t *testing.T) {
	list := []Item{
		{ID: "1", Title: "Red Lamp"},
		{ID: "2", Title: "Chair", Body: "a red cushion"},
		{ID: "3", Title: "Tent", Tags: []string{"Outdoor"}},
	}

	assert.Len(t, Filter(list, ""), 3)
	assert.Len(t, Filter(list, "  "), 3)

	red := Filter(list, "RED")
	require.Len(t, red, 2)
	assert.Equal(t, "1", red[0].ID)
	assert.Equal(t, "2", red[1].ID)

	outdoor := Filter(list, "outdoor")
	require.Len(t, outdoor, 1)
	assert.Equal(t, "3", outdoor[0].ID)

	assert.Empty(t, Filter(list, "missing"))
}

func TestGenerate(t *testing.T) {
	assert.Nil(t, Generate(0))

	list := Generate(100)
	require.Len(t, list, 100)
	assert.Equal(t, "item-00001", list[0].ID)
	assert.Equal(t, "Compact Lamp #1", list[0].Title)
	assert.Equal(t, Generate(100), list)

	seen := map[string]bool{}
	for _, it := range list {
		assert.False(t, seen[it.ID])
		seen[it.ID] = true
		assert.NotEmpty(t, it.Body)
		assert.Len(t, it.Tags, 2)
	}
}
