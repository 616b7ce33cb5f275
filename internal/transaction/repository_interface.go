package transaction

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository applies every ledger change together with its wallet balance
// adjustment in one store transaction.
type Repository interface {
	Create(ctx context.Context, userID int64, e Entry) (int64, decimal.Decimal, error)
	Update(ctx context.Context, userID, transactionID int64, e Entry) error
	Delete(ctx context.Context, userID, transactionID int64) (decimal.Decimal, error)
	List(ctx context.Context, userID int64, f Filter) ([]Transaction, error)
}
