// Package parser loads study material from plain text or local HTML files.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/storage"
	"github.com/go-shiori/go-readability"
)

type Parser struct {
	Storage *storage.Storage
}

// LoadFile reads path and returns its text. Files ending in .html or .htm are
// reduced to their main article text first.
func (p *Parser) LoadFile(path string) (*models.Document, error) {
	data, err := p.Storage.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isHTML(path) {
		return p.ParseHTML(path, string(data))
	}

	return &models.Document{
		Source: path,
		Format: "text",
		Text:   string(data),
	}, nil
}

// LoadReader reads plain text from r, e.g. stdin.
func (p *Parser) LoadReader(source string, r io.Reader) (*models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}
	return &models.Document{
		Source: source,
		Format: "text",
		Text:   string(data),
	}, nil
}

// ParseHTML uses go-readability to find the main content and goquery to pull
// one line of text per block. When readability finds nothing the whole body is used.
func (p *Parser) ParseHTML(source, html string) (*models.Document, error) {
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(source)}

	content := html
	title := ""
	readParser := readability.NewParser()
	article, err := readParser.Parse(strings.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content = article.Content
		title = normalizeText(article.Title)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML %s: %w", source, err)
	}

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(i int, s *goquery.Selection) {
		// Nested blocks are reached through their parent.
		if s.ParentsFiltered("p,li,pre").Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		if text := normalizeText(doc.Find("body").Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return &models.Document{
		Source: source,
		Title:  title,
		Format: "html",
		Text:   strings.Join(lines, "\n"),
	}, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
