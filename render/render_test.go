package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streanger/setmatch"
)

func result(t *testing.T) *setmatch.MatchResult {
	t.Helper()
	res, err := setmatch.Match([]setmatch.NamedSet{
		{Name: "set1", Members: setmatch.NewSet("a", "b")},
		{Name: "set2", Members: setmatch.NewSet("b", "c")},
	})
	require.NoError(t, err)
	return res
}

func TestCells(t *testing.T) {
	header, rows := cells(result(t), Options{}, textMarkers)
	assert.Equal(t, []string{"key", "set1", "set2"}, header)
	assert.Equal(t, [][]string{
		{"a", "✓", ""},
		{"b", "✓", "✓"},
		{"c", "", "✓"},
	}, rows)
}

func TestCells_indexColumn(t *testing.T) {
	header, rows := cells(result(t), Options{Index: true}, textMarkers)
	assert.Equal(t, []string{"Index", "key", "set1", "set2"}, header)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "a", "✓", ""}, rows[0])
	assert.Equal(t, []string{"3", "c", "", "✓"}, rows[2])
}

func TestCells_markerOverride(t *testing.T) {
	m := Markers{True: "yes", False: "no"}
	_, rows := cells(result(t), Options{Markers: &m}, textMarkers)
	assert.Equal(t, []string{"a", "yes", "no"}, rows[0])
}

func TestCSV(t *testing.T) {
	var b strings.Builder
	require.NoError(t, CSV(&b, result(t), Options{}))
	assert.Equal(t, "key,set1,set2\na,true,false\nb,true,true\nc,false,true\n", b.String())
}

func TestCSV_index(t *testing.T) {
	var b strings.Builder
	require.NoError(t, CSV(&b, result(t), Options{Index: true}))
	assert.Equal(t,
		"Index,key,set1,set2\n1,a,true,false\n2,b,true,true\n3,c,false,true\n",
		b.String())
}

func TestMarkdown(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Markdown(&b, result(t), Options{}))
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	// header, separator, one line per key
	assert.Contains(t, lines[0], "key")
	assert.Contains(t, lines[0], "set1")
	assert.Contains(t, lines[1], "|-")
	assert.Contains(t, lines[2], "a")
	assert.Contains(t, lines[3], "✓")
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "|"), "line %q", line)
		assert.True(t, strings.HasSuffix(line, "|"), "line %q", line)
	}
}

func TestTable(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Table(&b, result(t), Options{}))
	out := b.String()
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "set2")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "c")
}
