package wallet

import "context"

type Repository interface {
	Create(ctx context.Context, userID int64, name string) (*Wallet, error)
	ListByUser(ctx context.Context, userID int64) ([]Wallet, error)
	Delete(ctx context.Context, walletID, userID int64) error
	Reconcile(ctx context.Context, walletID, userID int64) (*Reconciliation, error)
}
