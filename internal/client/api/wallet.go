package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillbarter/skillbarter/internal/client/models"
)

// Wallet fetches the logged-in user's token balance. A fetch failure is the
// caller's to surface; there is no fallback balance.
func (g *Gateway) Wallet(ctx context.Context) (models.Wallet, error) {
	var out models.Wallet
	err := g.do(ctx, http.MethodGet, "/wallet", nil, &out)
	return out, err
}

// MyTransactions lists the logged-in user's ledger entries. rng narrows the
// window to "day", "month" or "year"; empty means all history.
func (g *Gateway) MyTransactions(ctx context.Context, rng string) ([]models.Transaction, error) {
	path := "/transactions/my"
	if rng != "" {
		path += "?range=" + url.QueryEscape(rng)
	}
	var out []models.Transaction
	err := g.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
