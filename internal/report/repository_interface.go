package report

import (
	"context"
	"time"
)

type Repository interface {
	// Totals sums income and expenses of the user's wallets dated within [from, to].
	Totals(ctx context.Context, userID int64, from, to time.Time) (Totals, error)
	// BudgetSpend returns every budget of month with the expenses of its
	// category dated within [from, to]. Remaining is left unset.
	BudgetSpend(ctx context.Context, userID int64, month string, from, to time.Time) ([]BudgetStatus, error)
}
