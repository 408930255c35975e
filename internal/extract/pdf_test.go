package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFErrors(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		_, err := PDF("")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.docx")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
		_, err := PDF(path)
		assert.ErrorIs(t, err, ErrWrongFormat)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := PDF(filepath.Join(t.TempDir(), "missing.pdf"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Not a PDF document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fake.pdf")
		require.NoError(t, os.WriteFile(path, []byte("plain text, no PDF header"), 0644))
		_, err := PDF(path)
		assert.ErrorIs(t, err, ErrWrongFormat)
	})
}
