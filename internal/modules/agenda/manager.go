package agenda

import (
	"context"
	"sync"
)

// Manager owns one scheduler per enabled producer. Enabling is tied to the
// authenticated session: Enable on login or websocket attach, Disable on
// logout. A re-enabled producer gets a fresh scheduler instance, which
// resets the in-memory fired-slot marker.
type Manager struct {
	// base outlives any single request; schedulers must not die with the
	// HTTP request that enabled them.
	base    context.Context
	mu      sync.Mutex
	running map[int64]*Scheduler
	factory func(ownerID int64) *Scheduler
}

func NewManager(base context.Context, factory func(ownerID int64) *Scheduler) *Manager {
	return &Manager{
		base:    base,
		running: make(map[int64]*Scheduler),
		factory: factory,
	}
}

// Enable starts the producer's scheduler if it is not already running and
// returns it either way.
func (m *Manager) Enable(ownerID int64) *Scheduler {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.running[ownerID]; ok {
		return s
	}
	s := m.factory(ownerID)
	s.Start(m.base)
	m.running[ownerID] = s
	return s
}

// Disable stops and discards the producer's scheduler.
func (m *Manager) Disable(ownerID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.running[ownerID]; ok {
		s.Stop()
		delete(m.running, ownerID)
	}
}

// Get returns the running scheduler, or nil when the producer is disabled.
func (m *Manager) Get(ownerID int64) *Scheduler {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running[ownerID]
}

// Close stops every running scheduler.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.running {
		s.Stop()
		delete(m.running, id)
	}
}
