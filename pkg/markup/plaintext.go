package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// ToPlainText renders markup the way a browser's innerText would: line breaks
// and list items become newlines and all tags are dropped.
func ToPlainText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	var sb strings.Builder
	writeText(&sb, doc.Find("body"))

	text := excessNewlines.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(text), nil
}

func writeText(sb *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			sb.WriteString(c.Text())
		case "br":
			sb.WriteString("\n")
		case "li", "p", "div", "ul", "ol", "h1", "h2", "h3", "h4":
			ensureNewline(sb)
			writeText(sb, c)
			ensureNewline(sb)
		case "script", "style":
			// not rendered
		default:
			writeText(sb, c)
		}
	})
}

func ensureNewline(sb *strings.Builder) {
	if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
	}
}
