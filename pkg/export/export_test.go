package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/study-notes/pkg/storage"
	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	e := NewExporter(DefaultOptions(), &storage.Storage{})
	_, _, err := e.Render("  \n ")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestRenderPaginates(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, fmt.Sprintf("Line %d of the study notes.", i))
	}

	e := NewExporter(DefaultOptions(), &storage.Storage{})
	data, pages, err := e.Render(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Greater(t, pages, 1)

	single, onePage, err := e.Render("Summary:\nCats are mammals.")
	require.NoError(t, err)
	assert.NotEmpty(t, single)
	assert.Equal(t, 1, onePage)
}

func TestUnsupported(t *testing.T) {
	assert.Empty(t, Unsupported("Café notes: naïve résumé, 5 € and “quotes”.\n"))
	assert.Equal(t, []rune{'光', '合', '作', '用', 'α'}, Unsupported("光合 作用 光 and α-helix α"))

	// Unsupported runes still render, as '?'.
	e := NewExporter(DefaultOptions(), &storage.Storage{})
	data, pages, err := e.Render("光合作用 converts light.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Equal(t, 1, pages)
}

func TestWrap(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)

	long := strings.Repeat("mitochondria produce energy ", 20)
	lines := Wrap(pdf, "Header\n\n"+long, 180)

	require.Greater(t, len(lines), 3)
	assert.Equal(t, "Header", lines[0])
	assert.Equal(t, "", lines[1])
	for _, line := range lines {
		assert.LessOrEqual(t, pdf.GetStringWidth(strings.TrimSpace(line)), 180.0)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "study-notes.pdf")
	e := NewExporter(DefaultOptions(), &storage.Storage{})

	pages, err := e.Save(path, "Q1: What is the role of \"café\" described in the text?")
	require.NoError(t, err)
	assert.Equal(t, 1, pages)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}
