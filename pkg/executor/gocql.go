package executor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"

	"github.com/gnana997/cassandra-lens/pkg/config"
)

// Session is a gocql-backed executor bound to one connection profile.
type Session struct {
	name string
	sess *gocql.Session
}

// Connect creates a session for a connection profile. The context bounds the
// initial cluster handshake via the profile's timeout.
func Connect(_ context.Context, conn config.Connection) (*Session, error) {
	cluster := gocql.NewCluster(conn.Hosts...)
	cluster.Port = conn.Port
	cluster.Keyspace = conn.Keyspace
	cluster.Timeout = time.Duration(conn.TimeoutSec) * time.Second
	cluster.ConnectTimeout = time.Duration(conn.TimeoutSec) * time.Second

	consistency, err := gocql.ParseConsistencyWrapper(conn.Consistency)
	if err != nil {
		return nil, fmt.Errorf("can't parse consistency %q for %s: %w", conn.Consistency, conn.Name, err)
	}
	cluster.Consistency = consistency

	if conn.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{Username: conn.Username, Password: conn.Password}
	}

	sess, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("can't connect to %s (%v): %w", conn.Name, conn.Hosts, err)
	}
	log.Printf("[INFO] connected to %s, hosts: %v, keyspace: %q", conn.Name, conn.Hosts, conn.Keyspace)
	return &Session{name: conn.Name, sess: sess}, nil
}

// Execute runs a single statement and collects the full result set. Statements
// producing no rows return an empty result with the column metadata gocql reports.
func (s *Session) Execute(ctx context.Context, query string) (*Result, error) {
	iter := s.sess.Query(query).WithContext(ctx).Iter()

	res := &Result{}
	for _, ci := range iter.Columns() {
		res.Columns = append(res.Columns, Column{Name: ci.Name, Type: ci.TypeInfo.Type().String()})
	}

	row := map[string]any{}
	for iter.MapScan(row) {
		res.Rows = append(res.Rows, Row(row))
		row = map[string]any{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("can't execute on %s: %w", s.name, err)
	}

	res.RowCount = len(res.Rows)
	return res, nil
}

// Close shuts the underlying gocql session down.
func (s *Session) Close() error {
	s.sess.Close()
	return nil
}
