// Package runner drives the end-to-end execution flow: segment the text,
// resolve the connection directive per statement, execute the statements in
// order against the injected executor and record the outcomes. Statements run
// strictly one after another, later ones may depend on schema or data changes
// made by earlier ones. The first failure aborts the remainder of the run,
// results collected so far stay published.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gnana997/cassandra-lens/pkg/cql"
	"github.com/gnana997/cassandra-lens/pkg/executor"
	"github.com/gnana997/cassandra-lens/pkg/history"
)

//go:generate moq -out mocks/executor.go -pkg mocks -skip-ensure -fmt goimports . Executor
//go:generate moq -out mocks/targets.go -pkg mocks -skip-ensure -fmt goimports . Targets
//go:generate moq -out mocks/presenter.go -pkg mocks -skip-ensure -fmt goimports . Presenter

// Executor runs one statement against the backing store.
type Executor interface {
	Execute(ctx context.Context, query string) (*executor.Result, error)
}

// Targets tracks the active named connection and switches between them.
// Switch returns executor.ErrSwitchDeclined when the caller's policy rejected
// the switch and executor.ErrUnknownTarget for names not known to it.
type Targets interface {
	ActiveTarget() string
	Switch(ctx context.Context, name string) error
}

// Presenter receives display events as the run progresses. Calls are
// fire-and-forget, the runner ignores whatever the presenter does with them.
type Presenter interface {
	Executing(stmt cql.Statement)
	Result(stmt cql.Statement, res *executor.Result)
	Error(stmt cql.Statement, msg, hint string)
}

// Process is a struct that holds everything needed to run statements from one
// text buffer. It is stateless across runs; one Process can serve many runs as
// long as the caller doesn't overlap runs for the same document.
type Process struct {
	Executor  Executor
	Targets   Targets
	Presenter Presenter
	History   *history.Store // optional, nil disables history recording
}

// RunRequest is one invocation over a text buffer, whole document or selection.
type RunRequest struct {
	DocID    string // identity of the owning document, keys history entries
	Text     string // the buffer to segment and execute
	BaseLine int    // line offset of Text within the document, 0 for whole document
}

// StatementResult is the outcome of one statement within a run.
type StatementResult struct {
	Statement cql.Statement
	Directive string // resolved connection directive, empty if none
	Elapsed   time.Duration
	Rows      int
	OK        bool
	Err       string
	Hint      string
}

// RunResult aggregates the per-statement outcomes of one run.
type RunResult struct {
	RunID      string
	Statements []StatementResult
	Executed   int           // how many statements actually ran
	Total      time.Duration // cumulative elapsed time of executed statements
	Aborted    bool
	AbortedAt  int // index of the statement the run stopped at, -1 when it ran to the end
}

// Run executes all statements found in the request's text, in order. A zero
// statement count is not an error, the result just reports nothing executed.
// A declined connection switch cancels the run without an error; any other
// switch or execution failure aborts the run and is returned as an error after
// the partial results are recorded and published.
func (p *Process) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	res := RunResult{RunID: uuid.New().String(), AbortedAt: -1}

	stmts := cql.Segment(req.Text)
	if len(stmts) == 0 {
		log.Printf("[INFO] nothing to execute in %s", req.DocID)
		return res, nil
	}
	log.Printf("[DEBUG] run %s: %d statements from %s", res.RunID, len(stmts), req.DocID)

	lines := strings.Split(req.Text, "\n")
	for i, stmt := range stmts {
		directive, _ := cql.ResolveDirective(lines, stmt.FirstCodeLine)
		stmt = rebase(stmt, req.BaseLine)

		if err := p.switchIfDirected(ctx, directive); err != nil {
			res.Aborted, res.AbortedAt = true, i
			if errors.Is(err, executor.ErrSwitchDeclined) {
				// user-level cancellation, not a fault; no error surfaced
				log.Printf("[INFO] run %s cancelled at statement %d of %d", res.RunID, i+1, len(stmts))
				p.finish(req.DocID, &res)
				return res, nil
			}
			p.present().Error(stmt, err.Error(), "")
			p.finish(req.DocID, &res)
			return res, fmt.Errorf("stopped at statement %d of %d: %w", i+1, len(stmts), err)
		}

		p.present().Executing(stmt)
		log.Printf("[INFO] execute statement %d of %d (lines %d-%d, %s)", i+1, len(stmts), stmt.StartLine, stmt.EndLine, stmt.Kind())

		st := time.Now()
		out, err := p.Executor.Execute(ctx, stmt.Text)
		elapsed := time.Since(st)

		if err != nil {
			hint := HintFor(err.Error())
			p.record(req.DocID, stmt, history.Entry{})
			p.present().Error(stmt, err.Error(), hint)
			res.Statements = append(res.Statements, StatementResult{Statement: stmt, Directive: directive, Err: err.Error(), Hint: hint})
			res.Aborted, res.AbortedAt = true, i
			p.finish(req.DocID, &res)
			return res, fmt.Errorf("stopped at statement %d of %d: %w", i+1, len(stmts), err)
		}

		p.record(req.DocID, stmt, history.Entry{Elapsed: elapsed, Rows: out.RowCount, OK: true})
		res.Statements = append(res.Statements, StatementResult{
			Statement: stmt, Directive: directive, Elapsed: elapsed, Rows: out.RowCount, OK: true})
		res.Executed++
		res.Total += elapsed

		// only the last statement's result set is displayed in full; earlier
		// ones contribute to timing, row totals and history. deliberate display
		// policy, not an accident
		if i == len(stmts)-1 {
			p.present().Result(stmt, out)
		}
	}

	p.finish(req.DocID, &res)
	log.Printf("[INFO] run %s completed, %d statements in %v", res.RunID, res.Executed, res.Total.Truncate(time.Millisecond))
	return res, nil
}

// switchIfDirected switches the active connection when the directive names a
// different one. An empty directive means "keep whatever is active".
func (p *Process) switchIfDirected(ctx context.Context, directive string) error {
	if directive == "" || p.Targets == nil || directive == p.Targets.ActiveTarget() {
		return nil
	}
	if err := p.Targets.Switch(ctx, directive); err != nil {
		return fmt.Errorf("can't switch to %q: %w", directive, err)
	}
	return nil
}

// finish publishes the run total to history once at least one statement executed.
func (p *Process) finish(docID string, res *RunResult) {
	if p.History == nil || res.Executed == 0 {
		return
	}
	p.History.RecordFileTotal(docID, res.Total)
}

func (p *Process) record(docID string, stmt cql.Statement, e history.Entry) {
	if p.History == nil {
		return
	}
	p.History.Record(docID, stmt.StartLine, stmt.EndLine, e)
}

// present returns the presenter or a noop stand-in, keeps call sites short.
func (p *Process) present() Presenter {
	if p.Presenter == nil {
		return noopPresenter{}
	}
	return p.Presenter
}

func rebase(stmt cql.Statement, base int) cql.Statement {
	stmt.StartLine += base
	stmt.EndLine += base
	stmt.FirstCodeLine += base
	return stmt
}

type noopPresenter struct{}

func (noopPresenter) Executing(cql.Statement) {}

func (noopPresenter) Result(cql.Statement, *executor.Result) {}

func (noopPresenter) Error(cql.Statement, string, string) {}
