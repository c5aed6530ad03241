package cart

import (
	"sync"
	"time"

	"go.uber.org/zap"

	cartdomain "github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
)

// sessionEntry tracks a live session and when it was last touched
type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// Manager hands out cart sessions keyed by the shopper's session
// cookie. Idle sessions are evicted by a background janitor; their
// persisted carts survive eviction and rehydrate on the next visit.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	storage  cartdomain.Storage
	products catalog.SnapshotLookup
	logger   *zap.Logger
	idleTTL  time.Duration

	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// DefaultIdleTTL is how long an untouched session stays in memory
const DefaultIdleTTL = 30 * time.Minute

// NewManager creates a session manager and starts its cleanup goroutine
func NewManager(storage cartdomain.Storage, products catalog.SnapshotLookup, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		sessions: make(map[string]*sessionEntry),
		storage:  storage,
		products: products,
		logger:   logger,
		idleTTL:  DefaultIdleTTL,
		stopChan: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// Attach returns the live session for a shopper, creating an unbound
// one on first sight
func (m *Manager) Attach(ownerID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.sessions[ownerID]; ok {
		e.lastSeen = time.Now()
		return e.session
	}

	session := NewSession(ownerID, m.storage, m.products, m.logger)
	m.sessions[ownerID] = &sessionEntry{session: session, lastSeen: time.Now()}
	return session
}

// Len returns the number of live sessions (for monitoring)
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the cleanup goroutine
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.stopChan)
	})
	m.wg.Wait()
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) evictIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.idleTTL)
	for ownerID, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, ownerID)
		}
	}
}
