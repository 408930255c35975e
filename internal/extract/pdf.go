package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF extracts and normalizes the text of every page of a PDF document in
// reading order. Password-protected documents fail with ErrEncrypted.
func PDF(path string) (string, error) {
	return PDFRange(path, 0, 0)
}

// PDFRange extracts a 1-based inclusive page range. A zero start and end
// selects all pages. Out-of-range requests fail with ErrInvalidArgument.
func PDFRange(path string, startPage, endPage int) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("%w: %s is not a .pdf file", ErrWrongFormat, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		if isEncryptedErr(err) {
			return "", fmt.Errorf("%w: %s", ErrEncrypted, path)
		}
		return "", fmt.Errorf("%w: open %s: %v", ErrWrongFormat, path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	if startPage == 0 && endPage == 0 {
		startPage, endPage = 1, total
	}
	if startPage < 1 || endPage > total || startPage > endPage {
		return "", fmt.Errorf("%w: page range %d-%d (document has %d pages)",
			ErrInvalidArgument, startPage, endPage, total)
	}

	var b strings.Builder
	for num := startPage; num <= endPage; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			if isEncryptedErr(err) {
				return "", fmt.Errorf("%w: %s", ErrEncrypted, path)
			}
			return "", fmt.Errorf("%w: page %d of %s: %v", ErrIO, num, path, err)
		}
		// Rows come back position-sorted; one line separator per row, no
		// page or paragraph markers.
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
	}

	text := Normalize(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return text, nil
}

func isEncryptedErr(err error) bool {
	return errors.Is(err, pdf.ErrInvalidPassword) ||
		strings.Contains(strings.ToLower(err.Error()), "encrypted")
}
