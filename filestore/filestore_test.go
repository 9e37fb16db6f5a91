package filestore

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Youssef-M-Salama/E-Commerce-Website/filestore/filestoretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upload(t *testing.T, filename string, size int) *multipart.FileHeader {
	return filestoretest.Upload(t, filename, size)
}

func TestSave_WritesUniqueFile(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	rel, err := s.Save(upload(t, "avatar.PNG", 128), []string{".png"}, "CustomerImage", 5)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, "/CustomerImage/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Len(t, data, 128)

	other, err := s.Save(upload(t, "avatar.png", 8), []string{".png"}, "CustomerImage", 5)
	require.NoError(t, err)
	assert.NotEqual(t, rel, other)
}

func TestSave_RejectsOversizedWithoutWriting(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	_, err := s.Save(upload(t, "big.jpg", 6*1024*1024), []string{".jpg"}, "AdminImage", 5)
	require.ErrorIs(t, err, ErrFileTooLarge)

	_, statErr := os.Stat(filepath.Join(root, "AdminImage"))
	assert.True(t, os.IsNotExist(statErr), "no folder or file may be created")
}

func TestSave_Validation(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Save(nil, []string{".jpg"}, "AdminImage", 5)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = s.Save(upload(t, "empty.jpg", 0), []string{".jpg"}, "AdminImage", 5)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = s.Save(upload(t, "script.exe", 10), []string{".jpg", ".png"}, "AdminImage", 5)
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)

	_, err = s.Save(upload(t, "noext", 10), []string{".jpg"}, "AdminImage", 5)
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)

	_, err = s.SaveImage(upload(t, "photo.gif", 10), ProductImages)
	assert.ErrorIs(t, err, ErrExtensionNotAllowed, "products accept jpg and png only")

	rel, err := s.SaveImage(upload(t, "photo.JPEG", 10), ProductImages)
	require.NoError(t, err)
	assert.True(t, s.Exists(rel))
}

func TestDelete(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	rel, err := s.SaveImage(upload(t, "a.png", 16), AdminImages)
	require.NoError(t, err)

	assert.True(t, s.Delete(rel))
	assert.False(t, s.Exists(rel))
	assert.False(t, s.Delete(rel), "second delete finds nothing")
	assert.False(t, s.Delete(""))
	assert.False(t, s.Delete("   "))
	assert.False(t, s.Delete("/AdminImage"), "directories are not deleted")
}

func TestDelete_StaysInsideWebRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "www")
	require.NoError(t, os.MkdirAll(root, 0o755))

	outside := filepath.Join(parent, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	s := New(root)
	assert.False(t, s.Delete("../secret.txt"))
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestPublished(t *testing.T) {
	s := New(t.TempDir())
	product, err := s.SaveImage(upload(t, "lamp.png", 16), ProductImages)
	require.NoError(t, err)
	avatar, err := s.SaveImage(upload(t, "me.png", 16), CustomerImages)
	require.NoError(t, err)

	got, ok := s.Published(strings.TrimPrefix(product, "/"), ProductImages)
	assert.True(t, ok)
	assert.Equal(t, product, got)

	for _, p := range []string{
		"",
		avatar,
		"/ProductImage/missing.png",
		"/ProductImage/../" + strings.TrimPrefix(avatar, "/"),
		"/ProductImage",
	} {
		_, ok := s.Published(p, ProductImages)
		assert.False(t, ok, p)
	}
}
