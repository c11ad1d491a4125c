package services

import (
	"context"

	"github.com/skillbarter/skillbarter/internal/client/api"
	"github.com/skillbarter/skillbarter/internal/client/models"
	"github.com/skillbarter/skillbarter/internal/client/session"
)

// Transaction range filters accepted by the backend. RangeAll means no filter.
const (
	RangeAll   = ""
	RangeDay   = "day"
	RangeMonth = "month"
	RangeYear  = "year"
)

// WalletService defines the balance/ledger reads behind the wallet view.
// Balance failures propagate to the caller; there is no fallback value.
type WalletService interface {
	Balance(ctx context.Context) (models.Wallet, error)
	Transactions(ctx context.Context, rng string) ([]models.Transaction, error)
	Summary(ctx context.Context) (models.TxnSummary, error)
}

type walletService struct {
	client api.Client
	store  *session.Store
}

// NewWalletService constructs a WalletService bound to the given API client
// and session store.
func NewWalletService(client api.Client, store *session.Store) WalletService {
	return &walletService{client: client, store: store}
}

func (w *walletService) Balance(ctx context.Context) (models.Wallet, error) {
	return w.client.Wallet(ctx)
}

func (w *walletService) Transactions(ctx context.Context, rng string) ([]models.Transaction, error) {
	switch rng {
	case RangeAll, RangeDay, RangeMonth, RangeYear:
	default:
		return nil, ErrBadRange
	}
	return w.client.MyTransactions(ctx, rng)
}

// Summary totals earned and spent tokens over the full completed history.
func (w *walletService) Summary(ctx context.Context) (models.TxnSummary, error) {
	sess, ok := w.store.Read()
	if !ok {
		return models.TxnSummary{}, ErrNoSession
	}
	txns, err := w.client.MyTransactions(ctx, RangeAll)
	if err != nil {
		return models.TxnSummary{}, err
	}
	return models.Summarize(txns, sess.User), nil
}
