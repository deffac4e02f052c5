package cql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatement_Kind(t *testing.T) {
	testCases := []struct {
		text     string
		expected Kind
	}{
		{"SELECT * FROM t;", KindSelect},
		{"select id from t;", KindSelect},
		{"-- comment\nSELECT 1;", KindSelect},
		{"INSERT INTO t (id) VALUES (1);", KindMutation},
		{"UPDATE t SET x = 1;", KindMutation},
		{"DELETE FROM t WHERE id = 1;", KindMutation},
		{"BEGIN BATCH INSERT INTO t (id) VALUES (1); APPLY BATCH;", KindMutation},
		{"CREATE TABLE t (id int PRIMARY KEY);", KindDDL},
		{"ALTER TABLE t ADD name text;", KindDDL},
		{"DROP TABLE t;", KindDDL},
		{"TRUNCATE t;", KindDDL},
		{"GRANT SELECT ON t TO reader;", KindDCL},
		{"LIST ROLES;", KindDCL},
		{"USE ks;", KindUse},
		{"DESCRIBE TABLES;", KindDescribe},
		{"DESC ks;", KindDescribe},
		{"whatever;", KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, Statement{Text: tc.text}.Kind())
		})
	}
}

func TestKind_HasRows(t *testing.T) {
	assert.True(t, KindSelect.HasRows())
	assert.True(t, KindDescribe.HasRows())
	assert.True(t, KindDCL.HasRows())
	assert.False(t, KindMutation.HasRows())
	assert.False(t, KindDDL.HasRows())
	assert.False(t, KindUse.HasRows())
	assert.False(t, KindUnknown.HasRows())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "select", KindSelect.String())
	assert.Equal(t, "mutation", KindMutation.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
