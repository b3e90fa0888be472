// Package session keeps continuing machines between calls. Each session owns
// one machine and a mutex serialising access to it, so concurrent callers on
// the same session see a well-defined rotor sequence and callers on
// different sessions never contend.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/machine"
)

// ErrNotFound is returned for an unknown or already closed session ID.
var ErrNotFound = errors.New("session: not found")

type entry struct {
	mu sync.Mutex
	m  *machine.Machine
}

// Manager is a registry of sessions. The zero value is not usable; call New.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
	logger   *slog.Logger
}

// New returns an empty Manager logging as component "session".
func New() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*entry),
		logger:   logging.New("session"),
	}
}

// Open builds a machine from cfg and registers it under a fresh ID.
func (mgr *Manager) Open(cfg machine.Config, opts ...machine.Option) (uuid.UUID, error) {
	m, err := machine.New(cfg, opts...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("session.Open: %w", err)
	}
	id := uuid.New()

	mgr.mu.Lock()
	mgr.sessions[id] = &entry{m: m}
	mgr.mu.Unlock()

	mgr.logger.Debug("session opened", "id", id, "positions", m.Positions().String())

	return id, nil
}

// with runs fn on the session's machine while holding its lock.
func (mgr *Manager) with(id uuid.UUID, fn func(*machine.Machine)) error {
	mgr.mu.RLock()
	e, ok := mgr.sessions[id]
	mgr.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.m)

	return nil
}

// Process continues the session's rotor sequence over text.
func (mgr *Manager) Process(id uuid.UUID, text string) (string, error) {
	var out string
	err := mgr.with(id, func(m *machine.Machine) { out = m.ProcessString(text) })

	return out, err
}

// ProcessDetailed is Process returning one Outcome per letter.
func (mgr *Manager) ProcessDetailed(id uuid.UUID, text string) ([]machine.Outcome, error) {
	var out []machine.Outcome
	err := mgr.with(id, func(m *machine.Machine) { out = m.ProcessStringDetailed(text) })

	return out, err
}

// Positions reads the session's current rotor windows.
func (mgr *Manager) Positions(id uuid.UUID) (machine.Positions, error) {
	var p machine.Positions
	err := mgr.with(id, func(m *machine.Machine) { p = m.Positions() })

	return p, err
}

// Reset rewinds the session's machine to its configured start positions.
func (mgr *Manager) Reset(id uuid.UUID) error {
	return mgr.with(id, (*machine.Machine).Reset)
}

// Close forgets the session. Later calls with id return ErrNotFound.
func (mgr *Manager) Close(id uuid.UUID) error {
	mgr.mu.Lock()
	_, ok := mgr.sessions[id]
	delete(mgr.sessions, id)
	mgr.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	mgr.logger.Debug("session closed", "id", id)

	return nil
}

// Len reports the number of open sessions.
func (mgr *Manager) Len() int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()

	return len(mgr.sessions)
}
