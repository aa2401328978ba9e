package budgety

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Wallets returns the persisted wallet collection.
func (s *Store) Wallets() []Wallet { return loadList[Wallet](s, walletsKey) }

// AddWallet persists a new wallet, assigning its id and creation timestamp.
func (s *Store) AddWallet(w Wallet) (Wallet, error) {
	wallets := s.Wallets()
	w.ID = s.newID()
	w.CreatedAt = s.now().UTC()
	wallets = append(wallets, w)
	if err := saveList(s, walletsKey, wallets); err != nil {
		return Wallet{}, err
	}
	return w, nil
}

// UpdateWallet merges the patch onto the wallet with the given id and returns
// the updated record, or nil if the id is unknown.
//
// A Balance patch is a direct edit: it deliberately bypasses transaction
// synchronization.
func (s *Store) UpdateWallet(id string, u WalletUpdate) (*Wallet, error) {
	wallets := s.Wallets()
	for i, w := range wallets {
		if w.ID != id {
			continue
		}
		wallets[i] = w.merge(u)
		if err := saveList(s, walletsKey, wallets); err != nil {
			return nil, err
		}
		updated := wallets[i]
		return &updated, nil
	}
	return nil, nil
}

// DeleteWallet removes the wallet with the given id. It reports success even
// when the id was absent. Transactions referencing the wallet are kept; they
// simply stop affecting any balance.
func (s *Store) DeleteWallet(id string) (bool, error) {
	wallets := s.Wallets()
	kept := wallets[:0]
	for _, w := range wallets {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if err := saveList(s, walletsKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Budgets returns the persisted budget collection.
func (s *Store) Budgets() []Budget { return loadList[Budget](s, budgetsKey) }

// AddBudget persists a new budget, assigning its id and creation timestamp.
func (s *Store) AddBudget(b Budget) (Budget, error) {
	budgets := s.Budgets()
	b.ID = s.newID()
	b.CreatedAt = s.now().UTC()
	budgets = append(budgets, b)
	if err := saveList(s, budgetsKey, budgets); err != nil {
		return Budget{}, err
	}
	return b, nil
}

// UpdateBudget merges the patch onto the budget with the given id and returns
// the updated record, or nil if the id is unknown.
func (s *Store) UpdateBudget(id string, u BudgetUpdate) (*Budget, error) {
	budgets := s.Budgets()
	for i, b := range budgets {
		if b.ID != id {
			continue
		}
		budgets[i] = b.merge(u)
		if err := saveList(s, budgetsKey, budgets); err != nil {
			return nil, err
		}
		updated := budgets[i]
		return &updated, nil
	}
	return nil, nil
}

// DeleteBudget removes the budget with the given id.
func (s *Store) DeleteBudget(id string) (bool, error) {
	budgets := s.Budgets()
	kept := budgets[:0]
	for _, b := range budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if err := saveList(s, budgetsKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Savings returns the persisted saving-goal collection.
func (s *Store) Savings() []Saving { return loadList[Saving](s, savingsKey) }

// AddSaving persists a new saving goal, assigning its id and creation
// timestamp.
func (s *Store) AddSaving(g Saving) (Saving, error) {
	savings := s.Savings()
	g.ID = s.newID()
	g.CreatedAt = s.now().UTC()
	savings = append(savings, g)
	if err := saveList(s, savingsKey, savings); err != nil {
		return Saving{}, err
	}
	return g, nil
}

// UpdateSaving merges the patch onto the saving goal with the given id and
// returns the updated record, or nil if the id is unknown.
func (s *Store) UpdateSaving(id string, u SavingUpdate) (*Saving, error) {
	savings := s.Savings()
	for i, g := range savings {
		if g.ID != id {
			continue
		}
		savings[i] = g.merge(u)
		if err := saveList(s, savingsKey, savings); err != nil {
			return nil, err
		}
		updated := savings[i]
		return &updated, nil
	}
	return nil, nil
}

// DeleteSaving removes the saving goal with the given id.
func (s *Store) DeleteSaving(id string) (bool, error) {
	savings := s.Savings()
	kept := savings[:0]
	for _, g := range savings {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if err := saveList(s, savingsKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// AddToSaving adds money to a saving goal's current amount and returns the
// updated goal, or nil if the id is unknown.
func (s *Store) AddToSaving(id string, amount decimal.Decimal) (*Saving, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount to add must be positive, got %s", amount)
	}
	savings := s.Savings()
	for i, g := range savings {
		if g.ID != id {
			continue
		}
		savings[i].CurrentAmount = g.CurrentAmount.Add(amount)
		if err := saveList(s, savingsKey, savings); err != nil {
			return nil, err
		}
		updated := savings[i]
		return &updated, nil
	}
	return nil, nil
}

// Loans returns the persisted loan collection.
func (s *Store) Loans() []Loan { return loadList[Loan](s, loansKey) }

// AddLoan persists a new loan, assigning its id and creation timestamp.
func (s *Store) AddLoan(l Loan) (Loan, error) {
	loans := s.Loans()
	l.ID = s.newID()
	l.CreatedAt = s.now().UTC()
	loans = append(loans, l)
	if err := saveList(s, loansKey, loans); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// UpdateLoan merges the patch onto the loan with the given id and returns the
// updated record, or nil if the id is unknown.
func (s *Store) UpdateLoan(id string, u LoanUpdate) (*Loan, error) {
	loans := s.Loans()
	for i, l := range loans {
		if l.ID != id {
			continue
		}
		loans[i] = l.merge(u)
		if err := saveList(s, loansKey, loans); err != nil {
			return nil, err
		}
		updated := loans[i]
		return &updated, nil
	}
	return nil, nil
}

// DeleteLoan removes the loan with the given id.
func (s *Store) DeleteLoan(id string) (bool, error) {
	loans := s.Loans()
	kept := loans[:0]
	for _, l := range loans {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if err := saveList(s, loansKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// RecordLoanPayment adds a payment to a loan. PaidAmount only grows; a
// payment bringing it to the full amount marks the loan paid. Returns the
// updated loan, or nil if the id is unknown.
func (s *Store) RecordLoanPayment(id string, amount decimal.Decimal) (*Loan, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment must be positive, got %s", amount)
	}
	loans := s.Loans()
	for i, l := range loans {
		if l.ID != id {
			continue
		}
		loans[i].PaidAmount = l.PaidAmount.Add(amount)
		if loans[i].PaidAmount.GreaterThanOrEqual(l.Amount) {
			loans[i].Status = Paid
		}
		if err := saveList(s, loansKey, loans); err != nil {
			return nil, err
		}
		updated := loans[i]
		return &updated, nil
	}
	return nil, nil
}

// Investments returns the persisted investment collection.
func (s *Store) Investments() []Investment { return loadList[Investment](s, investmentsKey) }

// AddInvestment persists a new investment, assigning its id and creation
// timestamp. CurrentValue defaults to InvestedAmount when unset.
func (s *Store) AddInvestment(inv Investment) (Investment, error) {
	investments := s.Investments()
	inv.ID = s.newID()
	inv.CreatedAt = s.now().UTC()
	if inv.CurrentValue.IsZero() {
		inv.CurrentValue = inv.InvestedAmount
	}
	investments = append(investments, inv)
	if err := saveList(s, investmentsKey, investments); err != nil {
		return Investment{}, err
	}
	return inv, nil
}

// UpdateInvestment merges the patch onto the investment with the given id and
// returns the updated record, or nil if the id is unknown.
func (s *Store) UpdateInvestment(id string, u InvestmentUpdate) (*Investment, error) {
	investments := s.Investments()
	for i, inv := range investments {
		if inv.ID != id {
			continue
		}
		investments[i] = inv.merge(u)
		if err := saveList(s, investmentsKey, investments); err != nil {
			return nil, err
		}
		updated := investments[i]
		return &updated, nil
	}
	return nil, nil
}

// DeleteInvestment removes the investment with the given id.
func (s *Store) DeleteInvestment(id string) (bool, error) {
	investments := s.Investments()
	kept := investments[:0]
	for _, inv := range investments {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if err := saveList(s, investmentsKey, kept); err != nil {
		return false, err
	}
	return true, nil
}
