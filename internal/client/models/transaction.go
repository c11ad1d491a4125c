package models

import "time"

// Transaction is a ledger entry created by the backend when a skill request
// completes. Read-only on the client. Buyer and seller are carried as the
// users' email addresses, matching what /transactions/my returns.
type Transaction struct {
	ID     string    `json:"_id"`
	Skill  string    `json:"skill"`
	Buyer  string    `json:"buyer"`
	Seller string    `json:"seller"`
	Tokens int       `json:"tokens"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

// TxnCompleted is the status value the backend assigns to settled transactions.
const TxnCompleted = "completed"

// Wallet is the current token balance for the logged-in user.
type Wallet struct {
	Balance int `json:"balance"`
}

// TxnSummary aggregates completed transactions from the caller's perspective.
type TxnSummary struct {
	Earned int
	Spent  int
}

// Summarize computes earned/spent totals over completed transactions, matching
// the dashboard aggregate: amounts sold by me count as earned, bought as spent.
func Summarize(txns []Transaction, me User) TxnSummary {
	var s TxnSummary
	for _, t := range txns {
		if t.Status != TxnCompleted {
			continue
		}
		if t.Seller == me.Email {
			s.Earned += t.Tokens
		}
		if t.Buyer == me.Email {
			s.Spent += t.Tokens
		}
	}
	return s
}
