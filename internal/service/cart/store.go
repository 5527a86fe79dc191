// Package cart implements the client-local shopping cart. The store is the
// only stateful component of the storefront: the backend never sees a cart
// until checkout turns it into an order-creation request.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"tienda-storefront/internal/domain"
	"tienda-storefront/internal/repository/cartblob"
)

// Item is the catalog snapshot captured when a product is added. The cart
// keeps these values as-is and never re-syncs them with the catalog.
type Item struct {
	ProductID int64
	Name      string
	UnitPrice int64
	ImageURL  string
}

// Store holds one visitor's cart. Every mutation reads the persisted blob,
// rewrites the whole collection, saves it back and then notifies
// subscribers, in that order. Persistence failures are logged and otherwise
// treated as success: the cart degrades to empty rather than erroring.
type Store struct {
	key     string
	storage cartblob.Storage
	logger  *log.Logger

	mu sync.Mutex // serializes load-modify-save cycles

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore builds a store persisting under the given versioned key.
func NewStore(key string, storage cartblob.Storage, logger *log.Logger) *Store {
	return &Store{
		key:     key,
		storage: storage,
		logger:  logger,
		subs:    make(map[int]func()),
	}
}

// Items returns the current cart lines. A missing, unreadable or malformed
// blob yields an empty cart, never an error.
func (s *Store) Items(ctx context.Context) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add appends a new line for item, or bumps the quantity of the existing
// line with the same product ID. Quantities below one count as one. The
// store imposes no upper bound; stock checks belong to the caller.
func (s *Store) Add(ctx context.Context, item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	lines := s.load(ctx)
	found := false
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			ImageURL:  item.ImageURL,
			Quantity:  quantity,
		})
	}
	s.save(ctx, lines)
	s.mu.Unlock()

	s.notify()
}

// UpdateQuantity sets the line's quantity. A value of zero or less removes
// the line. Updating a product that is not in the cart is a no-op and does
// not notify.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}

	s.mu.Lock()
	lines := s.load(ctx)
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.save(ctx, lines)
	s.mu.Unlock()

	s.notify()
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op and does not notify.
func (s *Store) Remove(ctx context.Context, productID int64) {
	s.mu.Lock()
	lines := s.load(ctx)
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		s.mu.Unlock()
		return
	}
	s.save(ctx, kept)
	s.mu.Unlock()

	s.notify()
}

// Clear empties the cart. Called after a checkout request succeeds.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.save(ctx, []domain.CartLine{})
	s.mu.Unlock()

	s.notify()
}

// Total sums unit price times quantity across all lines.
func (s *Store) Total(ctx context.Context) int64 {
	var total int64
	for _, line := range s.Items(ctx) {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// Subscribe registers fn to run synchronously after every successful
// mutation. The returned function unsubscribes; calling it more than once
// is safe.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// load must be called with s.mu held.
func (s *Store) load(ctx context.Context) []domain.CartLine {
	blob, err := s.storage.Load(ctx, s.key)
	if err != nil {
		s.logger.Printf("load cart %s: %v", s.key, err)
		return []domain.CartLine{}
	}
	if len(blob) == 0 {
		return []domain.CartLine{}
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(blob, &lines); err != nil {
		s.logger.Printf("decode cart %s, starting empty: %v", s.key, err)
		return []domain.CartLine{}
	}
	return lines
}

// save must be called with s.mu held.
func (s *Store) save(ctx context.Context, lines []domain.CartLine) {
	blob, err := json.Marshal(lines)
	if err != nil {
		s.logger.Printf("encode cart %s: %v", s.key, err)
		return
	}
	if err := s.storage.Save(ctx, s.key, blob); err != nil {
		s.logger.Printf("save cart %s: %v", s.key, err)
	}
}

// notify runs outside the store mutex so a subscriber may call back into
// the store.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
