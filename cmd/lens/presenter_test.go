package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/cassandra-lens/pkg/cql"
	"github.com/gnana997/cassandra-lens/pkg/executor"
)

func TestTermPresenter_Result(t *testing.T) {
	color.NoColor = true

	t.Run("rows rendered as table", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := newTermPresenter(out, false)

		p.Result(cql.Statement{Text: "SELECT id, name FROM t;"}, &executor.Result{
			Columns: []executor.Column{{Name: "id", Type: "int"}, {Name: "name", Type: "text"}},
			Rows: []executor.Row{
				{"id": 1, "name": "first"},
				{"id": 2, "name": "second"},
			},
			RowCount: 2,
		})

		s := out.String()
		assert.Contains(t, s, "id")
		assert.Contains(t, s, "name")
		assert.Contains(t, s, "first")
		assert.Contains(t, s, "second")
		assert.Contains(t, s, "(2 rows)")
	})

	t.Run("empty select", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := newTermPresenter(out, false)
		p.Result(cql.Statement{Text: "SELECT * FROM t;"}, &executor.Result{})
		assert.Equal(t, "(0 rows)\n", out.String())
	})

	t.Run("mutation applied", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := newTermPresenter(out, false)
		p.Result(cql.Statement{Text: "INSERT INTO t (id) VALUES (1);"}, &executor.Result{})
		assert.Equal(t, "applied\n", out.String())
	})

	t.Run("columns recovered from rows", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := newTermPresenter(out, false)
		p.Result(cql.Statement{Text: "SELECT * FROM t;"}, &executor.Result{
			Rows:     []executor.Row{{"b": 2, "a": 1}},
			RowCount: 1,
		})
		s := out.String()
		require.Contains(t, s, "a")
		assert.Less(t, bytes.IndexByte(out.Bytes(), 'a'), bytes.IndexByte(out.Bytes(), 'b'), "row keys sorted")
	})
}

func TestTermPresenter_Executing(t *testing.T) {
	color.NoColor = true
	stmt := cql.Statement{Text: "SELECT *\nFROM t;"}

	out := &bytes.Buffer{}
	newTermPresenter(out, false).Executing(stmt)
	assert.Empty(t, out.String(), "silent unless verbose")

	out.Reset()
	newTermPresenter(out, true).Executing(stmt)
	assert.Equal(t, "> SELECT *\n", out.String(), "first line only")
}

func TestTermPresenter_Error(t *testing.T) {
	color.NoColor = true

	out := &bytes.Buffer{}
	p := newTermPresenter(out, false)
	p.Error(cql.Statement{StartLine: 4, EndLine: 6}, "table t does not exist", "the table does not exist")

	s := out.String()
	assert.Contains(t, s, "failed at lines 5-7", "positions reported 1-based")
	assert.Contains(t, s, "table t does not exist")
	assert.Contains(t, s, "hint: the table does not exist")

	out.Reset()
	p.Error(cql.Statement{}, "boom", "")
	assert.NotContains(t, out.String(), "hint:", "no hint line when there is no hint")
}
