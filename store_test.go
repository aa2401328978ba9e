package budgety

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestDirBackendRoundTrip(t *testing.T) {
	b, err := NewDirBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, found, err := b.Get("budgety_wallets"); err != nil || found {
		t.Fatalf("Get on empty backend = found %v, %v", found, err)
	}

	if err := b.Set("budgety_wallets", []byte(`[{"id":"w1"}]`)); err != nil {
		t.Fatal(err)
	}
	raw, found, err := b.Get("budgety_wallets")
	if err != nil || !found {
		t.Fatalf("Get after Set = found %v, %v", found, err)
	}
	if string(raw) != `[{"id":"w1"}]` {
		t.Errorf("Get = %s", raw)
	}

	// Set replaces the whole value.
	if err := b.Set("budgety_wallets", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	raw, _, _ = b.Get("budgety_wallets")
	if string(raw) != `[]` {
		t.Errorf("Get after replace = %s", raw)
	}

	if err := b.Remove("budgety_wallets"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := b.Get("budgety_wallets"); found {
		t.Error("key still present after Remove")
	}
	// Removing an absent key is not an error.
	if err := b.Remove("budgety_wallets"); err != nil {
		t.Errorf("Remove of absent key: %v", err)
	}
}

func TestDirBackendClear(t *testing.T) {
	dir := t.TempDir()
	b, err := NewDirBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"budgety_wallets", "budgety_loans"} {
		if err := b.Set(key, []byte(`[]`)); err != nil {
			t.Fatal(err)
		}
	}
	// A foreign file in the data directory survives a Clear.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := b.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := b.Get("budgety_wallets"); found {
		t.Error("budgety_wallets survived Clear")
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.txt")); err != nil {
		t.Errorf("foreign file removed by Clear: %v", err)
	}
}

func TestLoadListDegradesToEmpty(t *testing.T) {
	backend := NewMemBackend()
	s := NewStore(backend, zerolog.Nop())

	// Absent key.
	if got := s.Wallets(); len(got) != 0 {
		t.Errorf("Wallets on empty store = %v", got)
	}

	// Corrupt blob: logged and treated as empty, never an error.
	if err := backend.Set("budgety_wallets", []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}
	if got := s.Wallets(); len(got) != 0 {
		t.Errorf("Wallets over corrupt blob = %v", got)
	}

	// A later save repairs the key.
	if _, err := s.AddWallet(Wallet{Name: "Fresh"}); err != nil {
		t.Fatal(err)
	}
	if got := s.Wallets(); len(got) != 1 {
		t.Errorf("Wallets after repair = %v", got)
	}
}

func TestStoreOverDirBackend(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewDirBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore(backend, zerolog.Nop())

	w, err := s.AddWallet(Wallet{Name: "Checking", Balance: dec(t, "100"), Currency: "USD"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddTransaction(Transaction{
		Amount:   dec(t, "30"),
		Type:     Income,
		Category: "Salary",
		WalletID: w.ID,
		Date:     MustParseDate("2025-07-01"),
	}); err != nil {
		t.Fatal(err)
	}

	// A second store over the same directory sees the synced state.
	reopened := NewStore(backend, zerolog.Nop())
	checkBalance(t, reopened, w.ID, "130")
	if n := len(reopened.Transactions()); n != 1 {
		t.Errorf("transactions after reopen = %d", n)
	}

	// One file per collection on disk.
	for _, key := range []string{"budgety_wallets", "budgety_transactions"} {
		if _, err := os.Stat(filepath.Join(dir, key+".json")); err != nil {
			t.Errorf("missing collection file for %s: %v", key, err)
		}
	}
}
