package errors

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxImageSide bounds rendered image width and height in pixels.
const MaxImageSide = 10000

// ValidateInputFile checks that path names an existing regular file with the
// given extension (compared case-insensitively, e.g. ".ifc").
//
// A missing or mistyped path yields ErrCodeInvalidFile; a well-formed path
// that does not exist yields ErrCodeFileNotFound.
func ValidateInputFile(path, ext string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidFile, "no file selected")
	}
	if err := checkControl(path); err != nil {
		return Wrap(ErrCodeInvalidFile, err, "invalid file path")
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return New(ErrCodeInvalidFile, "%s is not a %s file", filepath.Base(path), ext)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Wrap(ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidFile, err, "cannot access %s", path)
	}
	if !info.Mode().IsRegular() {
		return New(ErrCodeInvalidFile, "%s is not a regular file", path)
	}
	return nil
}

// ValidateOutputPath checks that path can be created: it must be non-empty,
// free of control characters, and its parent directory must exist.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if err := checkControl(path); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid output path")
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return Wrap(ErrCodeFileNotFound, err, "directory does not exist: %s", dir)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "cannot access %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidInput, "%s is not a directory", dir)
	}
	return nil
}

// ValidateImageSize checks rendered image dimensions.
func ValidateImageSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidInput, "image size must be positive, got %dx%d", width, height)
	}
	if width > MaxImageSide || height > MaxImageSide {
		return New(ErrCodeInvalidInput, "image size %dx%d exceeds %d pixels per side", width, height, MaxImageSide)
	}
	return nil
}

func checkControl(s string) error {
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "contains control character %q", r)
		}
	}
	return nil
}
