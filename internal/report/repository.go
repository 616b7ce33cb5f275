package report

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Totals(ctx context.Context, userID int64, from, to time.Time) (Totals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN t.type = 'expense' THEN t.amount ELSE 0 END), 0) AS total_expenses
		FROM transactions t
		JOIN wallets w ON t.wallet_id = w.id
		WHERE w.user_id = $1 AND t.date BETWEEN $2 AND $3
	`

	var totals Totals
	err := r.db.GetContext(ctx, &totals, query, userID, from.Format(dateLayout), to.Format(dateLayout))
	return totals, err
}

func (r *repository) BudgetSpend(ctx context.Context, userID int64, month string, from, to time.Time) ([]BudgetStatus, error) {
	query := `
		SELECT b.category, b.amount AS budget, COALESCE(e.spent, 0) AS spent
		FROM budgets b
		LEFT JOIN (
			SELECT t.category, SUM(t.amount) AS spent
			FROM transactions t
			JOIN wallets w ON t.wallet_id = w.id
			WHERE w.user_id = $1 AND t.type = 'expense' AND t.date BETWEEN $2 AND $3
			GROUP BY t.category
		) e ON e.category = b.category
		WHERE b.user_id = $1 AND b.month = $4
		ORDER BY b.category
	`

	statuses := []BudgetStatus{}
	err := r.db.SelectContext(ctx, &statuses, query, userID, from.Format(dateLayout), to.Format(dateLayout), month)
	if err != nil {
		return nil, err
	}

	return statuses, nil
}
