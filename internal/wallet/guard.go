package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotOwned covers both a missing wallet and one owned by someone else.
var ErrNotOwned = errors.New("wallet not found or not owned by user")

const selectOwned = `
		SELECT id, user_id, name, balance, created_at, updated_at
		FROM wallets
		WHERE id = $1 AND user_id = $2`

// VerifyOwnership loads the wallet when userID owns it.
func VerifyOwnership(ctx context.Context, q sqlx.QueryerContext, walletID, userID int64) (*Wallet, error) {
	return getOwned(ctx, q, selectOwned, walletID, userID)
}

// LockOwned is VerifyOwnership holding the wallet row lock until q's
// transaction ends. q must be a *sqlx.Tx.
func LockOwned(ctx context.Context, q sqlx.QueryerContext, walletID, userID int64) (*Wallet, error) {
	return getOwned(ctx, q, selectOwned+`
		FOR UPDATE`, walletID, userID)
}

func getOwned(ctx context.Context, q sqlx.QueryerContext, query string, walletID, userID int64) (*Wallet, error) {
	var w Wallet
	if err := sqlx.GetContext(ctx, q, &w, query, walletID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("load wallet %d: %w", walletID, err)
	}
	return &w, nil
}
