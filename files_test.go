package setmatch

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "set1.txt", "a\nb\n")
	writeFile(t, dir, "set2.txt", "b\nc")

	var ld Loader
	sets, err := ld.Load([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "set1", sets[0].Name)
	assert.Equal(t, NewSet("a", "b"), sets[0].Members)
	assert.Equal(t, "set2", sets[1].Name)
	assert.Equal(t, NewSet("b", "c"), sets[1].Members)
}

func TestLoader_dedupesPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "only.txt", "x\n")

	var ld Loader
	sets, err := ld.Load([]string{path, filepath.Join(dir, "*.txt"), path})
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestLoader_maxSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", "0123456789\n")
	writeFile(t, dir, "small.txt", "ok\n")

	ld := Loader{MaxSize: 4}
	sets, err := ld.Load([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "small", sets[0].Name)

	// nothing below the limit
	ld.MaxSize = 1
	_, err = ld.Load([]string{filepath.Join(dir, "*.txt")})
	assert.ErrorIs(t, err, ErrNothingLoaded)
}

func TestLoader_errors(t *testing.T) {
	var ld Loader
	_, err := ld.Load(nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	// a missing literal path is skipped, leaving nothing to process
	_, err = ld.Load([]string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, ErrNothingLoaded)
}

func TestDecode(t *testing.T) {
	t.Run("utf8 passthrough", func(t *testing.T) {
		text, err := decode([]byte("żółw\nturtle\n"))
		require.NoError(t, err)
		assert.Equal(t, "żółw\nturtle\n", text)
	})
	t.Run("latin1", func(t *testing.T) {
		text, err := decode([]byte("caf\xe9 au lait\nd\xe9j\xe0 vu\nr\xe9sum\xe9\n"))
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(text))
		assert.Contains(t, text, "café")
	})
}

func TestLineSet(t *testing.T) {
	assert.Equal(t, NewSet("a", "b"), lineSet("a\nb\n"))
	assert.Equal(t, NewSet("a", "b"), lineSet("a\r\nb"))
	assert.Equal(t, NewSet("a", "", "b"), lineSet("a\n\nb\n"))
	assert.Equal(t, NewSet("a"), lineSet("a\na\na"))
	assert.Empty(t, lineSet(""))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "set1", stem("some/dir/set1.txt"))
	assert.Equal(t, "set1", stem("set1"))
	assert.Equal(t, "archive.tar", stem("archive.tar.gz"))
}
