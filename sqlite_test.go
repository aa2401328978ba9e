package budgety

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestSQLiteBackendRoundTrip(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "budgety.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if _, found, err := b.Get("budgety_loans"); err != nil || found {
		t.Fatalf("Get on empty database = found %v, %v", found, err)
	}

	if err := b.Set("budgety_loans", []byte(`[{"id":"l1"}]`)); err != nil {
		t.Fatal(err)
	}
	raw, found, err := b.Get("budgety_loans")
	if err != nil || !found {
		t.Fatalf("Get after Set = found %v, %v", found, err)
	}
	if string(raw) != `[{"id":"l1"}]` {
		t.Errorf("Get = %s", raw)
	}

	// Upsert replaces the value.
	if err := b.Set("budgety_loans", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	raw, _, _ = b.Get("budgety_loans")
	if string(raw) != `[]` {
		t.Errorf("Get after upsert = %s", raw)
	}

	if err := b.Remove("budgety_loans"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := b.Get("budgety_loans"); found {
		t.Error("key still present after Remove")
	}

	if err := b.Set("a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := b.Set("b", []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := b.Clear(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"a", "b"} {
		if _, found, _ := b.Get(key); found {
			t.Errorf("key %s survived Clear", key)
		}
	}
}

func TestStoreOverSQLite(t *testing.T) {
	backend, err := OpenSQLite(filepath.Join(t.TempDir(), "budgety.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()
	s := NewStore(backend, zerolog.Nop())

	w, err := s.AddWallet(Wallet{Name: "Cash", Balance: dec(t, "50"), Currency: "EUR"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddTransaction(Transaction{
		Amount:   dec(t, "20"),
		Type:     Expense,
		Category: "Food & Dining",
		WalletID: w.ID,
		Date:     MustParseDate("2025-07-01"),
	}); err != nil {
		t.Fatal(err)
	}
	checkBalance(t, s, w.ID, "30")
}
