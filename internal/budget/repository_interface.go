package budget

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Upsert reports true when a new budget row was inserted.
	Upsert(ctx context.Context, userID int64, category, month string, amount decimal.Decimal) (bool, error)
	ListForMonth(ctx context.Context, userID int64, month string) ([]Limit, error)
}
