// Package budgety provides the storage and bookkeeping core of a local-first
// personal finance tracker. It is designed for a single user on a single
// machine: no network, no accounts, full control over the data files.
//
// The core functionalities include:
//   - Collections: wallets, transactions, budgets, saving goals, loans and
//     investments, each persisted as one JSON list behind a key-value
//     Backend (a directory of JSON files or a single SQLite database).
//   - Balance synchronization: every transaction create, update and delete
//     keeps its wallet's running balance equal to the sum of the wallet's
//     signed transaction amounts, using reversal-then-reapply on edits.
//   - Reports: pure functions deriving totals, budget and saving progress,
//     and income versus expenses summaries from loaded collections.
//
// This package serves as the foundational logic for the `bgt` command-line
// tool.
package budgety
