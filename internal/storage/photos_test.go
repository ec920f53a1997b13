package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_NoPhoto(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	res := store.Save("", AreaUsers)
	assert.Equal(t, NoPhoto, res.Status)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.StoredPath())
}

func TestSave_Uploaded(t *testing.T) {
	root := t.TempDir()
	store := NewPhotoStore(root)
	payload := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	res := store.Save(payload, AreaProducts)
	require.Equal(t, Uploaded, res.Status)
	require.NoError(t, res.Err)

	assert.True(t, strings.HasPrefix(res.Path, "~/images/products/"))
	assert.True(t, strings.HasSuffix(res.Path, ".jpg"))
	assert.Equal(t, res.Path, res.StoredPath())

	// The file really landed under <root>/images/products/.
	file := strings.TrimPrefix(res.Path, "~/images/products/")
	data, err := os.ReadFile(filepath.Join(root, "images", "products", file))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestSave_UniqueFilenames(t *testing.T) {
	store := NewPhotoStore(t.TempDir())
	payload := base64.StdEncoding.EncodeToString([]byte("x"))

	first := store.Save(payload, AreaUsers)
	second := store.Save(payload, AreaUsers)
	require.Equal(t, Uploaded, first.Status)
	require.Equal(t, Uploaded, second.Status)
	assert.NotEqual(t, first.Path, second.Path)
}

func TestSave_BadBase64(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	res := store.Save("not-base64!!", AreaUsers)
	assert.Equal(t, Failed, res.Status)
	assert.Error(t, res.Err)
	// The stored value keeps the empty-string contract on failure.
	assert.Empty(t, res.StoredPath())
}
