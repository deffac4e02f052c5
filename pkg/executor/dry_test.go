package executor

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDry_Execute(t *testing.T) {
	out := &bytes.Buffer{}
	ex := NewDry("main", out)

	res, err := ex.Execute(context.Background(), "SELECT * FROM t;")
	require.NoError(t, err)
	assert.Equal(t, &Result{}, res, "dry run produces an empty result")
	assert.Equal(t, "SELECT * FROM t;\n", out.String())

	res, err = ex.Execute(context.Background(), "TRUNCATE t;")
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, "SELECT * FROM t;\nTRUNCATE t;\n", out.String())

	assert.NoError(t, ex.Close())
}

func TestDry_ExecuteNilWriter(t *testing.T) {
	ex := NewDry("main", nil)
	res, err := ex.Execute(context.Background(), "SELECT 1 FROM t;")
	require.NoError(t, err)
	assert.Equal(t, 0, res.RowCount)
}
