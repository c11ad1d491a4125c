package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillbarter/skillbarter/internal/client/services"
)

// showWallet renders balance plus the earned/spent summary.
func (a *App) showWallet(ctx context.Context) error {
	wallet, err := a.wallet.Balance(ctx)
	if err != nil {
		return fmt.Errorf("fetch wallet: %w", err)
	}
	fmt.Fprintf(a.out, "Balance: %d tokens\n", wallet.Balance)

	summary, err := a.wallet.Summary(ctx)
	if err != nil {
		return fmt.Errorf("fetch transaction summary: %w", err)
	}
	fmt.Fprintf(a.out, "Earned: +%d   Spent: -%d\n", summary.Earned, summary.Spent)
	return nil
}

// listTransactions renders the ledger, optionally narrowed to a range.
func (a *App) listTransactions(ctx context.Context, rng string) error {
	if rng == "all" {
		rng = services.RangeAll
	}
	txns, err := a.wallet.Transactions(ctx, rng)
	if err != nil {
		if errors.Is(err, services.ErrBadRange) {
			fmt.Fprintln(a.out, "Usage: transactions [day|month|year]")
			return nil
		}
		return err
	}
	if len(txns) == 0 {
		fmt.Fprintln(a.out, "No transactions in this period.")
		return nil
	}
	for _, t := range txns {
		fmt.Fprintf(a.out, "%s  %-30s %4d tokens  %s → %s  (%s)\n",
			t.Date.Format("2006-01-02"), t.Skill, t.Tokens, t.Buyer, t.Seller, t.Status)
	}
	return nil
}
