package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/study-notes/internal/study"
	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const catsText = "Cats are mammals. Dogs are mammals too. Both are popular pets. Many people love pets."

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STUDY_NOTES_CONFIG", "")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"study-notes", "--quiet"}, args...))
	return out.String(), err
}

func TestSummarizeCommand(t *testing.T) {
	out, err := runApp(t, "summarize", "--text", catsText, "--format", "html", "--no-lang-check")
	require.NoError(t, err)
	assert.Equal(t, "<b>Summary:</b><br><ul><li>Cats are mammals.</li><li>Dogs are mammals too.</li><li>Both are popular pets.</li></ul>\n", out)

	out, err = runApp(t, "summarize", "--text", catsText, "--format", "text", "--no-lang-check")
	require.NoError(t, err)
	assert.Equal(t, "Summary:\nCats are mammals.\nDogs are mammals too.\nBoth are popular pets.\n", out)
}

func TestHighlightCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("The Cat sat. The cat ran.\n"), 0644))

	out, err := runApp(t, "highlight", "--file", path, "--format", "html", "--no-lang-check")
	require.NoError(t, err)
	assert.Equal(t, "The <mark>Cat</mark> <mark>sat</mark>. The <mark>cat</mark> <mark>ran</mark>.\n", out)
}

func TestQuestionsCommand(t *testing.T) {
	out, err := runApp(t, "questions", "--text", "It is what it is.", "--style", "essay", "--format", "html", "--no-lang-check")
	require.NoError(t, err)
	assert.Equal(t, "Not enough content to generate questions.\n", out)

	out, err = runApp(t, "qa", "--text", catsText, "-s", "multiple choice", "--format", "html", "--no-lang-check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<b>MULTIPLE CHOICE Questions:</b><br><br>"))
	assert.Contains(t, out, "A) mammals <br> B) pets <br> C) cats<br><br>")
}

func TestEmptyInputIsRejected(t *testing.T) {
	_, err := runApp(t, "summarize", "--text", "   ", "--no-lang-check")
	assert.ErrorIs(t, err, study.ErrEmptyInput)

	_, err = runApp(t, "keywords", "--text", "\n")
	assert.ErrorIs(t, err, study.ErrEmptyInput)
}

func TestKeywordsCommand(t *testing.T) {
	out, err := runApp(t, "keywords", "--text", "apple apple banana banana banana cherry")
	require.NoError(t, err)
	assert.Equal(t, "1. banana: 3\n2. apple: 2\n3. cherry: 1\n", out)

	out, err = runApp(t, "keywords", "--text", "apple apple banana banana banana cherry", "--top", "1", "--yaml")
	require.NoError(t, err)
	var keywords []models.Keyword
	require.NoError(t, yaml.Unmarshal([]byte(out), &keywords))
	assert.Equal(t, []models.Keyword{{Word: "banana", Count: 3}}, keywords)
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	out, err := runApp(t, "export", "--action", "questions", "--text", catsText, "--out", path, "--no-lang-check")
	require.NoError(t, err)
	assert.Equal(t, "Saved "+path+" (1 pages)\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))

	_, err = runApp(t, "export", "--action", "pdf", "--text", catsText)
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "cats.txt")
	second := filepath.Join(dir, "cells.html")
	require.NoError(t, os.WriteFile(first, []byte(catsText), 0644))
	require.NoError(t, os.WriteFile(second, []byte("<html><body><p>Cells divide. Cells grow. Cells die.</p></body></html>"), 0644))

	outDir := filepath.Join(dir, "out")
	out, err := runApp(t, "batch", "--out-dir", outDir, "--workers", "2", "--actions", "summary", "--no-lang-check", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 2 files (2 ok, 0 failed)")

	data, err := os.ReadFile(filepath.Join(outDir, manifest.FileName))
	require.NoError(t, err)
	var m manifest.BatchManifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, 2, m.Successful)
	require.Len(t, m.Results, 2)
	assert.Len(t, m.Results[1].Outputs, 1)
	assert.Contains(t, m.AggregateKeywords, "cells:3")
}

func TestQuickstartCommand(t *testing.T) {
	out, err := runApp(t, "quickstart")
	require.NoError(t, err)
	assert.Contains(t, out, "# study-notes Quick Start")
}
