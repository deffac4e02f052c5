package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/cassandra-lens/pkg/config"
	"github.com/gnana997/cassandra-lens/pkg/executor"
	"github.com/gnana997/cassandra-lens/pkg/history"
	"github.com/gnana997/cassandra-lens/pkg/runner"
)

func TestCqlFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.cql", "b.cql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1 FROM t;"), 0o600))
	}

	t.Run("directory expands to cql files only", func(t *testing.T) {
		files, err := cqlFiles([]string{dir})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.cql"), filepath.Join(dir, "b.cql")}, files)
	})

	t.Run("plain file passed through regardless of extension", func(t *testing.T) {
		files, err := cqlFiles([]string{filepath.Join(dir, "notes.txt")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "notes.txt")}, files)
	})

	t.Run("mixed args keep order", func(t *testing.T) {
		files, err := cqlFiles([]string{filepath.Join(dir, "b.cql"), dir})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.cql"),
			filepath.Join(dir, "a.cql"),
			filepath.Join(dir, "b.cql"),
		}, files)
	})

	t.Run("missing path rejected", func(t *testing.T) {
		_, err := cqlFiles([]string{filepath.Join(dir, "nope.cql")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't access")
	})

	t.Run("no args no files", func(t *testing.T) {
		files, err := cqlFiles(nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestConnectFunc(t *testing.T) {
	assert.Nil(t, connectFunc(options{}), "real connector is the manager's default")

	fn := connectFunc(options{Dry: true})
	require.NotNil(t, fn)
	ex, err := fn(context.Background(), config.Connection{Name: "main"})
	require.NoError(t, err)
	assert.IsType(t, &executor.Dry{}, ex)
}

func TestConfirmFunc(t *testing.T) {
	assert.Nil(t, confirmFunc(options{Yes: true}), "-y switches without asking")
	assert.NotNil(t, confirmFunc(options{}))
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "run.cql")
	require.NoError(t, os.WriteFile(file, []byte("SELECT 1 FROM a;\nSELECT 2 FROM b;"), 0o600))

	out := &bytes.Buffer{}
	conf := &config.Config{
		Default:     "main",
		Connections: map[string]config.Connection{"main": {Name: "main", Hosts: []string{"h"}}},
	}
	manager := executor.NewManager(conf, func(_ context.Context, conn config.Connection) (executor.Interface, error) {
		return executor.NewDry(conn.Name, out), nil
	}, nil)
	defer manager.Close()

	proc := runner.Process{Executor: manager, Targets: manager, History: history.NewStore()}

	require.NoError(t, runFile(context.Background(), &proc, file))
	assert.Equal(t, "SELECT 1 FROM a;\nSELECT 2 FROM b;\n", out.String())

	t.Run("empty file is fine", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.cql")
		require.NoError(t, os.WriteFile(empty, []byte("-- nothing here\n"), 0o600))
		require.NoError(t, runFile(context.Background(), &proc, empty))
	})

	t.Run("missing file errors", func(t *testing.T) {
		err := runFile(context.Background(), &proc, filepath.Join(dir, "gone.cql"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't read")
	})
}
