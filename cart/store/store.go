package store

import (
	"context"

	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/freshcart/freshcart/internal/log"
)

type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
	ImageURL string          `json:"image_url"`
}

// Persister is the durable storage behind a session's cart.
type Persister interface {
	Load(c context.Context, session string) ([]Item, error)
	Save(c context.Context, session string, items []Item) error
	Delete(c context.Context, session string) error
}

type Snapshot struct {
	Items     []Item
	Total     decimal.Decimal
	ItemCount int32
}

// Store holds the items one session intends to purchase. Items are
// ordered and identifier-unique; adding an existing identifier merges
// quantities instead of duplicating the entry. Every mutation persists
// the new state and notifies subscribers.
//
// A fresh store is unhydrated: reads report an empty cart until Hydrate
// has loaded the persisted state, so stale or mismatched contents are
// never presented. Mutations are never blocked on hydration.
type Store struct {
	mu          sync.Mutex
	session     string
	items       []Item
	persister   Persister
	hydrated    bool
	dirty       bool
	subscribers []func(Snapshot)
}

func New(session string, persister Persister) *Store {
	return &Store{session: session, persister: persister}
}

// Hydrate loads the persisted cart. Only the first call has an effect.
// If the store was mutated before hydration the local state wins; it has
// already been persisted.
func (s *Store) Hydrate(c context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}
	if s.dirty {
		s.hydrated = true
		return nil
	}

	items, err := s.persister.Load(c, s.session)
	if err != nil {
		return err
	}
	s.items = items
	s.hydrated = true
	return nil
}

// AddItem merges the incoming quantity into an existing entry with the
// same identifier or appends a new entry. It always succeeds.
func (s *Store) AddItem(c context.Context, item Item) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.afterMutation(c)
			return
		}
	}
	s.items = append(s.items, item)
	s.afterMutation(c)
}

// RemoveItem deletes the entry with the matching identifier. Absent
// identifiers are a no-op.
func (s *Store) RemoveItem(c context.Context, id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.afterMutation(c)
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or less
// removes the entry; the store enforces this even when callers clamp.
func (s *Store) UpdateQuantity(c context.Context, id string, quantity int32) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		break
	}
	s.afterMutation(c)
}

// Clear empties the cart.
func (s *Store) Clear(c context.Context) {
	s.mu.Lock()
	s.items = nil
	s.afterMutation(c)
}

// Items returns a copy of the current entries. Before hydration it
// reports an empty cart.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		return []Item{}
	}
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the sum of price times quantity over all entries.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		return decimal.Zero
	}
	return total(s.items)
}

// ItemCount is the sum of quantities over all entries.
func (s *Store) ItemCount() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		return 0
	}
	return itemCount(s.items)
}

// Subscribe registers fn to be called with a snapshot after every
// mutation.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// afterMutation persists the new state and notifies subscribers. Called
// with the mutex held; releases it.
func (s *Store) afterMutation(c context.Context) {
	s.dirty = true
	items := make([]Item, len(s.items))
	copy(items, s.items)
	snapshot := Snapshot{Items: items, Total: total(items), ItemCount: itemCount(items)}
	subscribers := s.subscribers
	s.mu.Unlock()

	err := s.persister.Save(c, s.session, items)
	if err != nil {
		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "Store afterMutation").
			Str(log.KeySessionID, s.session).
			Logger()
		logger.Error().Err(err).Msgf("failed persisting cart with error=%s", err.Error())
	}

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

func total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return sum
}

func itemCount(items []Item) int32 {
	var count int32
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
