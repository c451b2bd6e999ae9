package study

import (
	"fmt"
	"io"

	"github.com/dtnitsch/study-notes/models"
	"github.com/dtnitsch/study-notes/pkg/parser"
	"github.com/urfave/cli/v2"
)

// loadInput reads the document from --text, --file or stdin, in that order.
func loadInput(c *cli.Context, p *parser.Parser, stdin io.Reader) (*models.Document, error) {
	if c.IsSet("text") {
		return &models.Document{Source: "text", Format: "text", Text: c.String("text")}, nil
	}
	if path := c.String("file"); path != "" {
		doc, err := p.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return doc, nil
	}
	return p.LoadReader("stdin", stdin)
}
