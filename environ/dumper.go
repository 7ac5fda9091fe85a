package environ

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Table is a snapshot of the process environment, one KEY=VALUE per entry,
// in the order the OS handed it over.
type Table []string

type Accessor func() []string

type Dumper struct {
	Environ Accessor
	Stdout  io.Writer
}

func NewDumper(stdout io.Writer) *Dumper {
	return &Dumper{
		Environ: os.Environ,
		Stdout:  stdout,
	}
}

// Entries re-reads the live table on every call.
func (d *Dumper) Entries() Table {
	if d.Environ == nil {
		return nil
	}

	return Table(d.Environ())
}

func (d *Dumper) Dump() error {
	for _, entry := range d.Entries() {
		if _, err := fmt.Fprintf(d.Stdout, "%s\n", entry); err != nil {
			return errors.Wrap(err, "writing environment")
		}
	}

	return nil
}
