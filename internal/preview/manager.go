// Package preview owns the lifetime of locally-resolvable preview handles
// for selected files. A handle plays the role a revocable blob URL plays in a
// browser: an unguessable token that resolves to the file's renderable bytes
// until it is revoked.
package preview

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/framecheck/framecheck-go/internal/models"
)

var (
	// ErrReleased is returned when a handle is released a second time.
	ErrReleased = errors.New("preview handle already released")

	// ErrUnknownHandle is returned when resolving a token that was never
	// acquired or has been revoked.
	ErrUnknownHandle = errors.New("unknown preview handle")
)

// Handle is a live reference to one SelectedFile's preview. Every handle has
// exactly one owning file and must be released exactly once.
type Handle struct {
	token string
	file  *models.SelectedFile
}

// Token returns the locally-resolvable reference, e.g.
// "preview://2f1c...". Valid until the handle is released.
func (h *Handle) Token() string { return h.token }

// File returns the owning file.
func (h *Handle) File() *models.SelectedFile { return h.file }

// Manager tracks live handles. It is safe for concurrent use.
type Manager struct {
	mu   sync.Mutex
	live map[string]*models.SelectedFile
}

func NewManager() *Manager {
	return &Manager{live: make(map[string]*models.SelectedFile)}
}

// Acquire registers a preview for f and returns its handle. Call once per
// accepted file, synchronously with acceptance.
func (m *Manager) Acquire(f *models.SelectedFile) *Handle {
	h := &Handle{token: "preview://" + uuid.NewString(), file: f}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.live[h.token] = f

	return h
}

// Release revokes h. Releasing a handle twice returns ErrReleased; omitting
// the release leaks the handle, which Live exposes.
func (m *Manager) Release(h *Handle) error {
	if h == nil {
		return ErrUnknownHandle
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.live[h.token]; !ok {
		return ErrReleased
	}
	delete(m.live, h.token)
	h.file = nil
	return nil
}

// Resolve returns the file behind a live token.
func (m *Manager) Resolve(token string) (*models.SelectedFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.live[token]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return f, nil
}

// Live returns the number of handles acquired but not yet released.
func (m *Manager) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}
