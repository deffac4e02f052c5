package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/gnana997/cassandra-lens/pkg/cql"
	"github.com/gnana997/cassandra-lens/pkg/executor"
)

// termPresenter writes run progress and result tables to the terminal.
// Safe for concurrent runs over multiple files, output is line-locked.
type termPresenter struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex
}

func newTermPresenter(out io.Writer, verbose bool) *termPresenter {
	return &termPresenter{out: out, verbose: verbose}
}

// Executing reports the statement about to run, full text in verbose mode.
func (t *termPresenter) Executing(stmt cql.Statement) {
	if !t.verbose {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	head := strings.SplitN(strings.TrimSpace(stmt.Text), "\n", 2)[0]
	fmt.Fprintf(t.out, "%s %s\n", color.New(color.FgCyan).Sprint(">"), head)
}

// Result renders the statement's result set as a table. Statements without
// rows get a short confirmation instead.
func (t *termPresenter) Result(stmt cql.Statement, res *executor.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(res.Rows) == 0 {
		if stmt.Kind().HasRows() {
			fmt.Fprintln(t.out, color.New(color.FgYellow).Sprint("(0 rows)"))
			return
		}
		fmt.Fprintln(t.out, color.New(color.FgGreen).Sprint("applied"))
		return
	}

	cols := res.Columns
	if len(cols) == 0 {
		cols = columnsFromRows(res.Rows)
	}

	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range res.Rows {
		vals := make([]string, len(cols))
		for i, c := range cols {
			vals[i] = fmt.Sprintf("%v", row[c.Name])
		}
		fmt.Fprintln(tw, strings.Join(vals, "\t"))
	}
	tw.Flush() // nolint

	fmt.Fprintln(t.out, color.New(color.FgYellow).Sprintf("(%d rows)", res.RowCount))
}

// Error reports a failed statement with its source position and the hint, if any.
func (t *termPresenter) Error(stmt cql.Statement, msg, hint string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, color.New(color.FgHiRed).Sprintf("failed at lines %d-%d: %s", stmt.StartLine+1, stmt.EndLine+1, msg))
	if hint != "" {
		fmt.Fprintln(t.out, color.New(color.FgYellow).Sprintf("hint: %s", hint))
	}
}

// columnsFromRows recovers column names from row keys when the driver reported
// no metadata, sorted for a stable table.
func columnsFromRows(rows []executor.Row) []executor.Column {
	names := map[string]struct{}{}
	for _, row := range rows {
		for name := range row {
			names[name] = struct{}{}
		}
	}
	res := make([]executor.Column, 0, len(names))
	for name := range names {
		res = append(res, executor.Column{Name: name})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
