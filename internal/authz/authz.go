// Package authz tracks whether the user has granted music access. The
// decision is made once through a consent prompt and persisted; afterwards
// queries return the stored status without prompting again.
package authz

import (
	"time"

	"github.com/lilt-audio/lilt/internal/core"
)

// Manager answers and records authorization status queries.
type Manager struct {
	storage    *Storage
	restricted bool
}

// NewManager creates a Manager backed by the given storage. When restricted
// is true, device policy forbids music access regardless of any stored
// decision.
func NewManager(storage *Storage, restricted bool) *Manager {
	return &Manager{storage: storage, restricted: restricted}
}

// Status returns the current authorization status. Restriction wins over
// any stored decision; a missing decision reads as not-determined; a stored
// value outside the known set reads as unknown.
func (m *Manager) Status() core.AuthStatus {
	if m.restricted {
		return core.AuthRestricted
	}

	d, err := m.storage.Load()
	if err != nil {
		return core.AuthUnknown
	}
	if d == nil {
		return core.AuthNotDetermined
	}
	return core.ParseAuthStatus(d.Status)
}

// Request resolves the authorization status, prompting if necessary. If a
// decision already exists (or the device is restricted) the current status
// is returned unchanged and decide is never invoked. Otherwise decide runs
// the consent prompt and its answer is persisted.
func (m *Manager) Request(decide func() bool) (core.AuthStatus, error) {
	current := m.Status()
	if current != core.AuthNotDetermined {
		return current, nil
	}

	status := core.AuthDenied
	if decide() {
		status = core.AuthAuthorized
	}

	d := &Decision{
		Status:    status.String(),
		DecidedAt: time.Now(),
	}
	if err := m.storage.Save(d); err != nil {
		return core.AuthNotDetermined, err
	}

	return status, nil
}

// Reset removes the stored decision, returning the status to not-determined.
func (m *Manager) Reset() error {
	return m.storage.Delete()
}

// Decision returns the stored decision record, or nil if none exists.
func (m *Manager) Decision() (*Decision, error) {
	return m.storage.Load()
}

// Path returns the location of the decision file.
func (m *Manager) Path() string {
	return m.storage.Path()
}
