package budgety

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Storage keys, one per collection. The names are part of the persisted
// layout and must not change.
const (
	walletsKey      = "budgety_wallets"
	transactionsKey = "budgety_transactions"
	budgetsKey      = "budgety_budgets"
	savingsKey      = "budgety_savings"
	loansKey        = "budgety_loans"
	investmentsKey  = "budgety_investments"
)

// Store owns the authoritative copy of every collection and is the only
// writer to the backend. It is the authority on entity ids and creation
// timestamps.
//
// Store assumes a single caller issuing one mutation at a time; there is no
// internal locking. Two overlapping saves to the same collection race, and
// the later save wins in full.
type Store struct {
	backend Backend
	log     zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewStore returns a store over the given backend.
func NewStore(backend Backend, log zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log.With().Str("component", "store").Logger(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Reset wipes every collection from the backend.
func (s *Store) Reset() error {
	return s.backend.Clear()
}

// loadList returns the persisted collection for key. An absent key, a read
// failure or a decode failure all degrade to an empty collection; failures
// are logged, never surfaced.
func loadList[T any](s *Store, key string) []T {
	raw, found, err := s.backend.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("read failed, using empty collection")
		return nil
	}
	if !found {
		return nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("decode failed, using empty collection")
		return nil
	}
	return list
}

// saveList serializes and writes the whole collection, replacing any prior
// value for the key.
func saveList[T any](s *Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", key, err)
	}
	if err := s.backend.Set(key, raw); err != nil {
		return fmt.Errorf("could not save collection %q: %w", key, err)
	}
	return nil
}
