// Package clipboard copies rendered notes to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sysclip "github.com/atotto/clipboard"
)

// ConfirmDuration is how long the "Copied!" confirmation is shown before reverting.
const ConfirmDuration = 2 * time.Second

const ConfirmLabel = "Copied!"

var (
	ErrUnavailable = errors.New("clipboard is not available on this system")
	ErrNoContent   = errors.New("no content to copy")
)

// Writer is the system clipboard sink.
type Writer func(text string) error

// Status reports the outcome of a copy for the presentation layer.
type Status struct {
	Label      string
	RevertedAt time.Time // when Label should return to its previous value
}

type Copier struct {
	write Writer
	now   func() time.Time
}

// NewCopier uses the system clipboard.
func NewCopier() *Copier {
	return &Copier{write: systemWrite, now: time.Now}
}

// NewCopierWithWriter uses w instead of the system clipboard.
func NewCopierWithWriter(w Writer) *Copier {
	return &Copier{write: w, now: time.Now}
}

func systemWrite(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	return sysclip.WriteAll(text)
}

// Copy writes text to the clipboard and returns the transient confirmation.
func (c *Copier) Copy(text string) (*Status, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}
	if err := c.write(text); err != nil {
		return nil, fmt.Errorf("failed to copy: %w", err)
	}
	return &Status{
		Label:      ConfirmLabel,
		RevertedAt: c.now().Add(ConfirmDuration),
	}, nil
}
