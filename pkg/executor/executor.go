// Package executor provides the single point of contact with the backing
// store: an interface taking one statement and returning a typed result set,
// a gocql-backed implementation, a dry run variant and a session manager
// handling switches between named connections.
package executor

import (
	"context"
	"errors"
)

// Interface executes one statement at a time against a backing store.
// Implemented by Session, Dry and Manager.
type Interface interface {
	Execute(ctx context.Context, query string) (*Result, error)
	Close() error
}

// Column describes one column of a result set.
type Column struct {
	Name string
	Type string
}

// Row is a single result row keyed by column name.
type Row map[string]any

// Result is a typed result set from a single statement execution.
// Statements without rows (ddl, mutations) produce an empty result.
type Result struct {
	Columns  []Column
	Rows     []Row
	RowCount int
}

// ErrSwitchDeclined is returned by Manager.Switch when the confirmation
// callback rejected the switch. Treated as a user-level cancellation.
var ErrSwitchDeclined = errors.New("connection switch declined")

// ErrUnknownTarget is returned by Manager.Switch for a name missing from the config.
var ErrUnknownTarget = errors.New("unknown connection")
