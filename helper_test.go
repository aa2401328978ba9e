package budgety

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// newTestStore returns a store over an in-memory backend with deterministic
// ids (id-1, id-2, ...) and a fixed clock.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(NewMemBackend(), zerolog.Nop())
	var n int
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	s.now = func() time.Time {
		return time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

// dec parses a decimal literal, failing the test on bad input.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

// checkBalance asserts the balance of the wallet with the given id.
func checkBalance(t *testing.T, s *Store, walletID, want string) {
	t.Helper()
	for _, w := range s.Wallets() {
		if w.ID != walletID {
			continue
		}
		if !w.Balance.Equal(dec(t, want)) {
			t.Errorf("wallet %s balance = %s, want %s", walletID, w.Balance, want)
		}
		return
	}
	t.Fatalf("wallet %s not found", walletID)
}
