package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fintrack/internal/db"
	"fintrack/internal/money"
	"fintrack/internal/wallet"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ledgerRow is a transaction joined to its wallet.
type ledgerRow struct {
	ID       int64           `db:"id"`
	WalletID int64           `db:"wallet_id"`
	Type     Type            `db:"type"`
	Amount   decimal.Decimal `db:"amount"`
	UserID   int64           `db:"user_id"`
	Balance  decimal.Decimal `db:"balance"`
}

func (r *repository) Create(ctx context.Context, userID int64, e Entry) (int64, decimal.Decimal, error) {
	var (
		id         int64
		newBalance decimal.Decimal
	)

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		w, err := wallet.LockOwned(ctx, tx, e.WalletID, userID)
		if err != nil {
			if errors.Is(err, wallet.ErrNotOwned) {
				return ErrWalletAccessDenied
			}
			return err
		}

		newBalance = w.Balance.Add(e.Type.Signed(e.Amount))
		if e.Type == TypeExpense && newBalance.IsNegative() {
			return ErrInsufficientFunds
		}
		if !money.Storable(newBalance) {
			return ErrBalanceOutOfRange
		}

		err = tx.GetContext(ctx, &id,
			`INSERT INTO transactions (wallet_id, type, amount, category, date, description)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			w.ID, e.Type, e.Amount, e.Category, e.Date.Format(dateLayout), e.Description,
		)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE wallets
			 SET balance = $1, updated_at = NOW()
			 WHERE id = $2`,
			newBalance, w.ID,
		)
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, decimal.Zero, err
	}

	return id, newBalance, nil
}

func (r *repository) Delete(ctx context.Context, userID, transactionID int64) (decimal.Decimal, error) {
	var newBalance decimal.Decimal

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row ledgerRow
		err := tx.GetContext(ctx, &row, `
			SELECT t.id, t.wallet_id, t.type, t.amount, w.user_id, w.balance
			FROM transactions t
			JOIN wallets w ON t.wallet_id = w.id
			WHERE t.id = $1
			FOR UPDATE OF t, w
		`, transactionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("load transaction: %w", err)
		}

		if row.UserID != userID {
			return ErrAccessDenied
		}

		newBalance = row.Balance.Sub(row.Type.Signed(row.Amount))
		if !money.Storable(newBalance) {
			return ErrBalanceOutOfRange
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE wallets
			 SET balance = $1, updated_at = NOW()
			 WHERE id = $2`,
			newBalance, row.WalletID,
		)
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, row.ID)
		if err != nil {
			return fmt.Errorf("delete transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}

// Update moves a transaction's effect from its old wallet to the target one.
// Funds are not re-checked, so an edit can leave a wallet negative.
func (r *repository) Update(ctx context.Context, userID, transactionID int64, e Entry) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var old ledgerRow
		err := tx.GetContext(ctx, &old, `
			SELECT t.id, t.wallet_id, t.type, t.amount, w.user_id, w.balance
			FROM transactions t
			JOIN wallets w ON t.wallet_id = w.id
			WHERE t.id = $1 AND w.user_id = $2
			FOR UPDATE OF t
		`, transactionID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFoundOrDenied
			}
			return fmt.Errorf("load transaction: %w", err)
		}

		balances, err := lockWallets(ctx, tx, userID, old.WalletID, e.WalletID)
		if err != nil {
			return err
		}

		balances[old.WalletID] = balances[old.WalletID].Sub(old.Type.Signed(old.Amount))
		balances[e.WalletID] = balances[e.WalletID].Add(e.Type.Signed(e.Amount))
		for _, b := range balances {
			if !money.Storable(b) {
				return ErrBalanceOutOfRange
			}
		}

		if err := adjustBalance(ctx, tx, old.WalletID, old.Type.Signed(old.Amount).Neg()); err != nil {
			return err
		}
		if err := adjustBalance(ctx, tx, e.WalletID, e.Type.Signed(e.Amount)); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE transactions
			 SET wallet_id = $1, type = $2, amount = $3, category = $4, date = $5, description = $6
			 WHERE id = $7`,
			e.WalletID, e.Type, e.Amount, e.Category, e.Date.Format(dateLayout), e.Description, old.ID,
		)
		if err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}

		return nil
	})
}

// lockWallets takes the row locks of the old and target wallets in ascending
// id order, so two edits moving transactions between the same pair of wallets
// cannot deadlock. It returns the locked balances by wallet id.
func lockWallets(ctx context.Context, tx *sqlx.Tx, userID, oldWalletID, targetWalletID int64) (map[int64]decimal.Decimal, error) {
	ids := []int64{oldWalletID}
	if targetWalletID != oldWalletID {
		ids = append(ids, targetWalletID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	balances := make(map[int64]decimal.Decimal, len(ids))
	for _, id := range ids {
		w, err := wallet.LockOwned(ctx, tx, id, userID)
		if err == nil {
			balances[id] = w.Balance
			continue
		}
		if !errors.Is(err, wallet.ErrNotOwned) {
			return nil, err
		}
		if id == targetWalletID {
			return nil, ErrTargetDenied
		}
		return nil, ErrNotFoundOrDenied
	}
	return balances, nil
}

func adjustBalance(ctx context.Context, tx *sqlx.Tx, walletID int64, delta decimal.Decimal) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE wallets
		 SET balance = balance + $1, updated_at = NOW()
		 WHERE id = $2`,
		delta, walletID,
	)
	if err != nil {
		return fmt.Errorf("adjust balance of wallet %d: %w", walletID, err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, userID int64, f Filter) ([]Transaction, error) {
	if f.WalletID != nil {
		if _, err := wallet.VerifyOwnership(ctx, r.db, *f.WalletID, userID); err != nil {
			if errors.Is(err, wallet.ErrNotOwned) {
				return nil, ErrWalletAccessDenied
			}
			return nil, err
		}
	}

	var query strings.Builder
	query.WriteString(`
		SELECT t.id, t.wallet_id, t.type, t.amount, t.category,
			to_char(t.date, 'YYYY-MM-DD') AS date, t.description, t.created_at
		FROM transactions t
		JOIN wallets w ON t.wallet_id = w.id
		WHERE w.user_id = $1`)
	args := []interface{}{userID}

	if f.WalletID != nil {
		args = append(args, *f.WalletID)
		fmt.Fprintf(&query, " AND t.wallet_id = $%d", len(args))
	}
	if f.StartDate != nil && f.EndDate != nil {
		args = append(args, f.StartDate.Format(dateLayout), f.EndDate.Format(dateLayout))
		fmt.Fprintf(&query, " AND t.date BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	query.WriteString(" ORDER BY t.date DESC, t.id DESC")

	transactions := []Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query.String(), args...); err != nil {
		return nil, err
	}

	return transactions, nil
}
