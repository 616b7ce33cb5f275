package budget

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, userID int64, category, month string, amount decimal.Decimal) (bool, error) {
	// xmax is zero only for a freshly inserted row version.
	query := `
		INSERT INTO budgets (user_id, category, month, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, category, month)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	if err := r.db.GetContext(ctx, &inserted, query, userID, category, month, amount); err != nil {
		return false, err
	}

	return inserted, nil
}

func (r *repository) ListForMonth(ctx context.Context, userID int64, month string) ([]Limit, error) {
	limits := []Limit{}
	err := r.db.SelectContext(ctx, &limits, `
		SELECT category, amount
		FROM budgets
		WHERE user_id = $1 AND month = $2
		ORDER BY category
	`, userID, month)
	if err != nil {
		return nil, err
	}

	return limits, nil
}
