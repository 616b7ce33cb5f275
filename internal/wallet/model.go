package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a user-owned balance. Balance mirrors the sum of its transactions.
type Wallet struct {
	ID     int64  `db:"id" json:"id"`
	UserID int64  `db:"user_id" json:"userId"`
	Name   string `db:"name" json:"name"`
	// Signed sum of the wallet's transactions as of the last commit.
	Balance   decimal.Decimal `db:"balance" json:"balance" swaggertype:"number"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

type CreateWalletRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Cash"`
}

// Reconciliation reports a balance recomputed from the ledger.
type Reconciliation struct {
	WalletID        int64           `json:"walletId"`
	PreviousBalance decimal.Decimal `json:"previousBalance" swaggertype:"number"`
	Balance         decimal.Decimal `json:"balance" swaggertype:"number"`
	Drift           decimal.Decimal `json:"drift" swaggertype:"number"`
}
