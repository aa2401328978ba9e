package budgety

import (
	"github.com/shopspring/decimal"
)

// This file keeps Wallet.Balance consistent with the transaction ledger:
// balance == sum of signed amounts of the wallet's transactions, after every
// transaction create, update and delete.
//
// Within one mutation the wallet collection is always read after the
// transaction collection is written, and the wallet write completes before
// the call returns, so callers observe a consistent balance immediately.

// Transactions returns the persisted transaction collection.
func (s *Store) Transactions() []Transaction { return loadList[Transaction](s, transactionsKey) }

// AddTransaction persists a new transaction, assigning its id and creation
// timestamp, then credits or debits its wallet. A transaction referencing an
// unknown wallet is still persisted; only the balance step is skipped.
func (s *Store) AddTransaction(t Transaction) (Transaction, error) {
	transactions := s.Transactions()
	t.ID = s.newID()
	t.CreatedAt = s.now().UTC()
	transactions = append(transactions, t)
	if err := saveList(s, transactionsKey, transactions); err != nil {
		return Transaction{}, err
	}

	if err := s.applyWalletDelta(t.WalletID, t.signedAmount()); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// UpdateTransaction merges the patch onto the transaction with the given id
// and returns the updated record, or nil if the id is unknown.
//
// When the patch touches amount or type, the wallet balance is fixed up by
// reversing the old transaction's effect and applying the new one, in a
// single adjustment against the original transaction's wallet. Patches to
// other fields leave every balance untouched.
func (s *Store) UpdateTransaction(id string, u TransactionUpdate) (*Transaction, error) {
	transactions := s.Transactions()
	for i, old := range transactions {
		if old.ID != id {
			continue
		}
		updated := old.merge(u)
		transactions[i] = updated
		if err := saveList(s, transactionsKey, transactions); err != nil {
			return nil, err
		}

		if u.touchesBalance() {
			delta := old.signedAmount().Neg().Add(updated.signedAmount())
			if err := s.applyWalletDelta(old.WalletID, delta); err != nil {
				return nil, err
			}
		}
		return &updated, nil
	}
	return nil, nil
}

// DeleteTransaction reverses the transaction's effect on its wallet and
// removes it from the collection. Deleting an unknown id is a no-op that
// reports false and changes no balance.
func (s *Store) DeleteTransaction(id string) (bool, error) {
	transactions := s.Transactions()
	index := -1
	for i, t := range transactions {
		if t.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	t := transactions[index]
	if err := s.applyWalletDelta(t.WalletID, t.signedAmount().Neg()); err != nil {
		return false, err
	}

	kept := append(transactions[:index:index], transactions[index+1:]...)
	if err := saveList(s, transactionsKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// applyWalletDelta adds delta to the balance of the given wallet and persists
// the wallet collection. A missing wallet skips the balance update: the
// transaction record is the source of truth either way.
func (s *Store) applyWalletDelta(walletID string, delta decimal.Decimal) error {
	wallets := s.Wallets()
	for i, w := range wallets {
		if w.ID != walletID {
			continue
		}
		wallets[i].Balance = w.Balance.Add(delta)
		return saveList(s, walletsKey, wallets)
	}
	s.log.Warn().Str("walletId", walletID).Msg("wallet not found during balance sync, skipping")
	return nil
}
