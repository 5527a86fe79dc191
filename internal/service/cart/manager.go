package cart

import (
	"log"
	"sync"

	"tienda-storefront/internal/repository/cartblob"
)

// keyPrefix versions the persisted cart schema. Bumping it abandons all
// previously stored carts.
const keyPrefix = "cart:v1"

// Manager hands out one Store per visitor session, all sharing the same
// storage. Stores are created lazily and kept for the life of the process;
// the persisted blob is what survives restarts.
type Manager struct {
	storage cartblob.Storage
	logger  *log.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(storage cartblob.Storage, logger *log.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
		stores:  make(map[string]*Store),
	}
}

// Store returns the cart store for the given session, creating it on first
// use under the versioned key prefix.
func (m *Manager) Store(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := NewStore(keyPrefix+":"+sessionID, m.storage, m.logger)
	s.Subscribe(func() {
		m.logger.Printf("cart updated: session=%s", sessionID)
	})
	m.stores[sessionID] = s
	return s
}
