package diagnostics

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultText   = "abcdefghijklmopqrstuvwxyz\n"
	DefaultRepeat = 1
	BurstRepeat   = 25
)

type Emitter struct {
	Stderr io.Writer
	Text   string
	Repeat int
}

func (e *Emitter) Emit() error {
	line := e.Text
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	for i := 0; i < e.Repeat; i++ {
		if _, err := io.WriteString(e.Stderr, line); err != nil {
			return errors.Wrapf(err, "writing diagnostic line %d", i)
		}
	}

	return nil
}
