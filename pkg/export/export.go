// Package export writes rendered study notes as a paginated PDF document.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/storage"
)

// ErrNoContent is returned when there is nothing to export.
var ErrNoContent = errors.New("no content to download")

type Options struct {
	FontSize   float64
	Margin     float64 // mm, left and top
	LineWidth  float64 // mm available per line
	LineHeight float64 // mm between baselines
}

func DefaultOptions() Options {
	return Options{FontSize: 12, Margin: 15, LineWidth: 180, LineHeight: 7}
}

func OptionsFromConfig(cfg models.ExportConfig) Options {
	return Options{
		FontSize:   cfg.FontSize,
		Margin:     cfg.Margin,
		LineWidth:  cfg.LineWidth,
		LineHeight: cfg.LineHeight,
	}
}

type Exporter struct {
	opts    Options
	storage *storage.Storage
}

func NewExporter(opts Options, s *storage.Storage) *Exporter {
	return &Exporter{opts: opts, storage: s}
}

// Render lays out plain text on A4 pages. Each source line is wrapped to
// LineWidth; a new page starts when the next line would cross the bottom margin.
// It returns the PDF bytes and the number of pages.
//
// Text is drawn with a cp1252 core font: runes reported by Unsupported are
// printed as '?'.
func (e *Exporter) Render(text string) ([]byte, int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, 0, ErrNoContent
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(e.opts.Margin, e.opts.Margin, e.opts.Margin)
	pdf.SetAutoPageBreak(false, e.opts.Margin)
	pdf.SetFont("Helvetica", "", e.opts.FontSize)
	// Core fonts are cp1252; translate UTF-8 input.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - e.opts.Margin

	pdf.AddPage()
	y := e.opts.Margin
	for _, line := range Wrap(pdf, tr(text), e.opts.LineWidth) {
		if y > bottom {
			pdf.AddPage()
			y = e.opts.Margin
		}
		pdf.Text(e.opts.Margin, y, line)
		y += e.opts.LineHeight
	}

	if err := pdf.Error(); err != nil {
		return nil, 0, fmt.Errorf("failed to render PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), pdf.PageCount(), nil
}

// Unsupported returns the distinct runes of text, in first-seen order, that
// have no cp1252 encoding and so cannot be drawn by Render.
func Unsupported(text string) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// Wrap splits text into lines no wider than width using the current font.
// Blank source lines are kept as empty lines.
func Wrap(pdf *fpdf.Fpdf, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, pdf.SplitText(para, width)...)
	}
	return lines
}

// Save renders text and writes it to path, returning the page count.
func (e *Exporter) Save(path, text string) (int, error) {
	data, pages, err := e.Render(text)
	if err != nil {
		return 0, err
	}
	if err := e.storage.SaveFile(path, data); err != nil {
		return 0, err
	}
	return pages, nil
}
