package executor

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gnana997/cassandra-lens/pkg/config"
)

// ConnectFunc makes an executor for a connection profile. The default is
// Connect; tests and dry runs substitute their own.
type ConnectFunc func(ctx context.Context, conn config.Connection) (Interface, error)

// ConfirmFunc is asked before switching the active connection. Returning false
// declines the switch; a nil ConfirmFunc allows every switch.
type ConfirmFunc func(from, to string) bool

// Manager owns one session per named connection, connecting lazily and keeping
// track of the active one. It implements both the statement executor and the
// target switcher the runner needs.
type Manager struct {
	cfg     *config.Config
	connect ConnectFunc
	confirm ConfirmFunc

	mu       sync.Mutex
	active   string
	sessions map[string]Interface
}

// NewManager makes a manager with the config's default connection active.
func NewManager(cfg *config.Config, connect ConnectFunc, confirm ConfirmFunc) *Manager {
	if connect == nil {
		connect = func(ctx context.Context, conn config.Connection) (Interface, error) { return Connect(ctx, conn) }
	}
	return &Manager{cfg: cfg, connect: connect, confirm: confirm, active: cfg.Default, sessions: map[string]Interface{}}
}

// ActiveTarget returns the name of the currently active connection.
func (m *Manager) ActiveTarget() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Switch makes the named connection active. Returns ErrUnknownTarget for names
// missing from the config and ErrSwitchDeclined when the confirmation callback
// rejected the switch.
func (m *Manager) Switch(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == name {
		return nil
	}
	if _, ok := m.cfg.Conn(name); !ok {
		return fmt.Errorf("%w %q, defined: %v", ErrUnknownTarget, name, m.cfg.Names())
	}
	if m.confirm != nil && !m.confirm(m.active, name) {
		return ErrSwitchDeclined
	}

	log.Printf("[INFO] switch connection %q -> %q", m.active, name)
	m.active = name
	return nil
}

// Execute runs the statement on the active connection, connecting on first use.
func (m *Manager) Execute(ctx context.Context, query string) (*Result, error) {
	sess, err := m.session(ctx)
	if err != nil {
		return nil, err
	}
	return sess.Execute(ctx, query)
}

// session returns the session for the active connection, making it if needed.
func (m *Manager) session(ctx context.Context) (Interface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[m.active]; ok {
		return sess, nil
	}
	conn, ok := m.cfg.Conn(m.active)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTarget, m.active)
	}
	sess, err := m.connect(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("can't connect %q: %w", m.active, err)
	}
	m.sessions[m.active] = sess
	return sess, nil
}

// Close closes all sessions made so far.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, sess := range m.sessions {
		if err := sess.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("can't close %q: %w", name, err)
		}
		delete(m.sessions, name)
	}
	return firstErr
}
