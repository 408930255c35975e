package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name      string
		supported bool
	}{
		{"resume.pdf", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"RESUME.PDF", true},
		{"dir/resume.Txt", true},
		{"resume.doc", false},
		{"resume.rtf", false},
		{"resume", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.supported, IsSupported(tt.name))
		})
	}
}

func TestFileDispatch(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		_, err := File("")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		_, err := File("resume.doc")
		assert.ErrorIs(t, err, ErrWrongFormat)
	})

	t.Run("Dispatches to text extractor", func(t *testing.T) {
		path := writeTempFile(t, "resume.txt", []byte("Hello"))
		text, err := File(path)
		require.NoError(t, err)
		assert.Equal(t, "Hello", text)
	})
}
