// Package filestore saves uploaded images under the public web root and
// removes them again.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoFile              = errors.New("no file was uploaded")
	ErrFileTooLarge        = errors.New("file is too large")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
)

// Rule bundles the upload constraints for one image folder.
type Rule struct {
	Folder     string
	Extensions []string
	MaxSizeMB  int
}

var (
	AdminImages    = Rule{Folder: "AdminImage", Extensions: []string{".jpg", ".jpeg", ".png", ".gif"}, MaxSizeMB: 5}
	CustomerImages = Rule{Folder: "CustomerImage", Extensions: []string{".jpg", ".jpeg", ".png", ".gif"}, MaxSizeMB: 5}
	ProductImages  = Rule{Folder: "ProductImage", Extensions: []string{".jpg", ".jpeg", ".png"}, MaxSizeMB: 10}
)

// Store writes below webRoot.
type Store struct {
	webRoot string
}

func New(webRoot string) *Store {
	return &Store{webRoot: webRoot}
}

func (s *Store) WebRoot() string { return s.webRoot }

// SaveImage applies rule to file.
func (s *Store) SaveImage(file *multipart.FileHeader, rule Rule) (string, error) {
	return s.Save(file, rule.Extensions, rule.Folder, rule.MaxSizeMB)
}

// Save validates file and writes it as <webRoot>/<folder>/<uuid><ext>.
// It returns the web-relative path "/<folder>/<uuid><ext>". Nothing is
// written when validation fails.
func (s *Store) Save(file *multipart.FileHeader, allowedExtensions []string, folder string, maxSizeMB int) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrNoFile
	}

	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if file.Size > maxBytes {
		return "", fmt.Errorf("%w: the maximum allowed size is %d MB", ErrFileTooLarge, maxSizeMB)
	}

	ext := filepath.Ext(file.Filename)
	if !allowed(ext, allowedExtensions) {
		return "", fmt.Errorf("%w: only %s are allowed", ErrExtensionNotAllowed, strings.Join(allowedExtensions, ", "))
	}

	dir := filepath.Join(s.webRoot, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(ext)
	if err := copyUpload(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return path.Join("/", folder, name), nil
}

func allowed(ext string, extensions []string) bool {
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func copyUpload(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// Delete removes the file behind a web-relative path. It reports false
// when the path is empty, escapes the web root, or names no file.
func (s *Store) Delete(relPath string) bool {
	full, ok := s.resolve(relPath)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return false
	}
	return os.Remove(full) == nil
}

// Exists reports whether relPath names a stored file.
func (s *Store) Exists(relPath string) bool {
	full, ok := s.resolve(relPath)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// Published returns the cleaned form of relPath when it names a stored file
// directly inside rule's folder with one of rule's extensions.
func (s *Store) Published(relPath string, rule Rule) (string, bool) {
	relPath = strings.TrimSpace(relPath)
	if relPath == "" {
		return "", false
	}
	cleaned := path.Clean("/" + filepath.ToSlash(relPath))
	if path.Dir(cleaned) != "/"+rule.Folder || !allowed(path.Ext(cleaned), rule.Extensions) {
		return "", false
	}
	if !s.Exists(cleaned) {
		return "", false
	}
	return cleaned, true
}

func (s *Store) resolve(relPath string) (string, bool) {
	relPath = strings.TrimSpace(relPath)
	if relPath == "" {
		return "", false
	}
	cleaned := filepath.FromSlash(path.Clean("/" + relPath))
	full := filepath.Join(s.webRoot, cleaned)

	rel, err := filepath.Rel(s.webRoot, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return full, true
}
