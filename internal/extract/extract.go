// Package extract turns heterogeneous résumé documents (PDF, DOCX, plain
// text) into a single cleaned text blob through per-format extractors and a
// shared normalization pass.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the file extensions the dispatcher accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// IsSupported reports whether the file name carries a supported extension.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// File dispatches to the extractor matching the file extension and returns
// the normalized text blob.
func File(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF(path)
	case ".docx":
		return Docx(path)
	case ".txt":
		return Text(path)
	default:
		return "", fmt.Errorf("%w: unsupported extension %q (supported: %s)",
			ErrWrongFormat, filepath.Ext(path), strings.Join(SupportedExtensions, ", "))
	}
}
