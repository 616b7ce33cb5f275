package wallet

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int64, name string) (*Wallet, error) {
	w := &Wallet{}
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO wallets (user_id, name, balance)
		 VALUES ($1, $2, 0)
		 RETURNING id, user_id, name, balance, created_at, updated_at`,
		userID, name,
	).StructScan(w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Wallet, error) {
	wallets := []Wallet{}
	err := r.db.SelectContext(ctx, &wallets, `
		SELECT id, user_id, name, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}

	return wallets, nil
}

// Delete removes the wallet and, through the foreign key, its transactions.
func (r *repository) Delete(ctx context.Context, walletID, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM wallets WHERE id = $1 AND user_id = $2`,
		walletID, userID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotOwned
	}

	return nil
}

// Reconcile recomputes the balance from the ledger under the wallet row lock.
func (r *repository) Reconcile(ctx context.Context, walletID, userID int64) (*Reconciliation, error) {
	var rec *Reconciliation
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		w, err := LockOwned(ctx, tx, walletID, userID)
		if err != nil {
			return err
		}

		var ledger decimal.Decimal
		err = tx.GetContext(ctx, &ledger, `
			SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
			FROM transactions
			WHERE wallet_id = $1
		`, w.ID)
		if err != nil {
			return fmt.Errorf("sum ledger: %w", err)
		}

		if !ledger.Equal(w.Balance) {
			_, err = tx.ExecContext(ctx,
				`UPDATE wallets SET balance = $1, updated_at = NOW() WHERE id = $2`,
				ledger, w.ID,
			)
			if err != nil {
				return fmt.Errorf("write balance: %w", err)
			}
		}

		rec = &Reconciliation{
			WalletID:        w.ID,
			PreviousBalance: w.Balance,
			Balance:         ledger,
			Drift:           ledger.Sub(w.Balance),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotOwned) {
			return nil, ErrNotOwned
		}
		return nil, err
	}

	return rec, nil
}
