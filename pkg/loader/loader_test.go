package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapneel/go-hnsw/pkg/vector"
)

type fakeIndex struct {
	items []vector.Item
	fail  bool
}

func (f *fakeIndex) Add(item vector.Item) error {
	if f.fail {
		return assertErr
	}
	f.items = append(f.items, item)
	return nil
}

var assertErr = &stubError{"boom"}

type stubError struct{ msg string }

func (e *stubError) Error() string { return e.msg }

func TestReadFileSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.txt")
	content := "1.0 2.0 3.0\n\n4.0 5.0 6.0\n   \n7.0 8.0 9.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	items, err := ReadFile(path, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []uint64{10, 11, 12}, []uint64{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, []float64{1, 2, 3}, items[0].Vector)
	assert.Equal(t, []float64{7, 8, 9}, items[2].Vector)
}

func TestReadFileRejectsMalformedComponent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.0 notanumber 3.0\n"), 0o644))

	_, err := ReadFile(path, 0)
	require.Error(t, err)
}

func TestLoadDirectoryAssignsMonotonicIDsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1 1\n2 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("3 3\n"), 0o644))

	idx := &fakeIndex{}
	total, err := LoadDirectory(dir, idx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, idx.items, 3)
	assert.Equal(t, []uint64{0, 1, 2}, []uint64{idx.items[0].ID, idx.items[1].ID, idx.items[2].ID})
}

func TestLoadDirectoryPropagatesIndexErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1 1\n"), 0o644))

	idx := &fakeIndex{fail: true}
	_, err := LoadDirectory(dir, idx, nil)
	require.Error(t, err)
}
