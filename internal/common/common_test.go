package common

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	hash := ContentHash([]byte("notes/Chapter 1.txt"))[:8]
	assert.Equal(t, filepath.Join("out", "chapter_1-"+hash+"-summary.html"),
		OutputPath("out", "notes/Chapter 1.txt", "summary", ".html"))

	assert.NotEqual(t,
		OutputPath("out", "a/notes.txt", "summary", ".html"),
		OutputPath("out", "b/notes.txt", "summary", ".html"))

	hash = ContentHash([]byte("???.txt"))[:8]
	assert.Equal(t, filepath.Join("out", hash+"-highlight.html"),
		OutputPath("out", "???.txt", "highlight", ".html"))
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(nil))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study-notes.log")
	logger, closer := NewLogger(LogOptions{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1})

	logger.Debug("Running action", "action", "summary")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Running action"`)
	assert.Contains(t, string(data), `"action":"summary"`)
}

func TestNewLoggerQuiet(t *testing.T) {
	logger, closer := NewLogger(LogOptions{Level: "debug", Quiet: true})
	defer closer.Close()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}
