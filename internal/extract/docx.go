package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// wordDocument mirrors the parts of word/document.xml we read. encoding/xml
// matches on local names, so the w: namespace needs no special handling.
type wordDocument struct {
	Body wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
	Tables     []wordTable     `xml:"tbl"`
}

type wordParagraph struct {
	Texts []string `xml:"r>t"`
}

func (p wordParagraph) text() string {
	return strings.Join(p.Texts, "")
}

type wordTable struct {
	Rows []wordTableRow `xml:"tr"`
}

type wordTableRow struct {
	Cells []wordTableCell `xml:"tc"`
}

type wordTableCell struct {
	Paragraphs []wordParagraph `xml:"p"`
}

func (c wordTableCell) text() string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		if t := strings.TrimSpace(p.text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Docx extracts and normalizes the text of an Office Open XML word document:
// body paragraphs in document order, then tables with cells joined by " | "
// and one row per line. Empty paragraphs are skipped.
func Docx(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if !strings.EqualFold(filepath.Ext(path), ".docx") {
		return "", fmt.Errorf("%w: %s is not a .docx file", ErrWrongFormat, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		// A .docx that isn't a zip archive is not a word document.
		return "", fmt.Errorf("%w: %s: %v", ErrWrongFormat, path, err)
	}
	defer zr.Close()

	doc, err := readDocumentXML(&zr.Reader)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range doc.Body.Paragraphs {
		if t := strings.TrimSpace(p.text()); t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
	}
	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				if t := cell.text(); t != "" {
					cells = append(cells, t)
				}
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}
	}

	text := Normalize(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return text, nil
}

func readDocumentXML(zr *zip.Reader) (*wordDocument, error) {
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open document.xml: %v", ErrIO, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: read document.xml: %v", ErrIO, err)
		}
		var doc wordDocument
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: malformed document.xml: %v", ErrWrongFormat, err)
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("%w: archive has no word/document.xml", ErrWrongFormat)
}
