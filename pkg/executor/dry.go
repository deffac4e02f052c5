package executor

import (
	"context"
	"io"
	"log"
)

// Dry is an executor for dry run, just prints statements without sending them
// anywhere. Useful for checking how a file segments before touching a cluster.
type Dry struct {
	name string
	out  io.Writer
}

// NewDry creates new executor for dry run, writing statements to out.
func NewDry(name string, out io.Writer) *Dry {
	return &Dry{name: name, out: out}
}

// Execute shows the statement content, doesn't execute it.
func (ex *Dry) Execute(_ context.Context, query string) (*Result, error) {
	log.Printf("[DEBUG] dry run on %s: %s", ex.name, query)
	if ex.out != nil {
		if _, err := io.WriteString(ex.out, query+"\n"); err != nil {
			return nil, err
		}
	}
	return &Result{}, nil
}

// Close does nothing for dry run.
func (ex *Dry) Close() error { return nil }
