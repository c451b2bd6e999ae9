package common

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// OutputPath builds a filesystem-friendly output path for one action on one source.
// A short hash of the full source path keeps same-named files from different
// directories apart.
// Example: OutputPath("out", "notes/Chapter 1.txt", "summary", ".html") -> out/chapter_1-<hash8>-summary.html
func OutputPath(dir, source, action, ext string) string {
	hash := ContentHash([]byte(source))[:8]
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	base = strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(base), "_"), "_")
	if base == "" {
		return filepath.Join(dir, fmt.Sprintf("%s-%s%s", hash, action, ext))
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s-%s%s", base, hash, action, ext))
}
