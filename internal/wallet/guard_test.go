package wallet

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOwnership(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	db := sqlx.NewDb(conn, "sqlmock")

	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, user_id, name, balance, created_at, updated_at FROM wallets WHERE id = $1 AND user_id = $2")

	mock.ExpectQuery(query).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(1, 10, "Cash", "5.00", now, now))
	mock.ExpectQuery(query).
		WithArgs(1, 11).
		WillReturnRows(sqlmock.NewRows(walletColumns))
	mock.ExpectQuery(query).
		WithArgs(2, 10).
		WillReturnError(errors.New("timeout"))

	w, err := VerifyOwnership(context.Background(), db, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), w.UserID)

	_, err = VerifyOwnership(context.Background(), db, 1, 11)
	assert.ErrorIs(t, err, ErrNotOwned)

	_, err = VerifyOwnership(context.Background(), db, 2, 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotOwned)
}

func TestLockOwned_UsesRowLock(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	db := sqlx.NewDb(conn, "sqlmock")

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockWalletQuery)).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(1, 10, "Cash", "5.00", now, now))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	w, err := LockOwned(context.Background(), tx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "5", w.Balance.String())
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}
