package study

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/study-notes/pkg/markup"
	"golang.org/x/term"
)

// Output formats accepted by --format.
const (
	FormatAuto = "auto"
	FormatHTML = "html"
	FormatText = "text"
)

// resolveFormat turns "auto" into text for terminals and html otherwise.
func resolveFormat(format string, isTerminal bool) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatAuto:
		if isTerminal {
			return FormatText, nil
		}
		return FormatHTML, nil
	case FormatHTML, FormatText:
		return strings.ToLower(format), nil
	}
	return "", fmt.Errorf("unknown format %q (want auto, html or text)", format)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// render writes markup to w in the requested format.
func render(w io.Writer, out, format string) error {
	if format == FormatText {
		text, err := markup.ToPlainText(out)
		if err != nil {
			return err
		}
		out = text
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// FormatError renders err for the user, in red when stderr is a terminal.
func FormatError(err error, color bool) string {
	msg := "Error: " + err.Error()
	if color {
		return "\x1b[31m" + msg + "\x1b[0m"
	}
	return msg
}

// PrintError writes err to stderr, distinctly styled.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, FormatError(err, isTerminal(os.Stderr)))
}
