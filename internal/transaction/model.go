package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Signed returns amount with the sign the type applies to a wallet balance.
func (t Type) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TypeExpense {
		return amount.Neg()
	}
	return amount
}

type Transaction struct {
	ID          int64           `db:"id" json:"id"`
	WalletID    int64           `db:"wallet_id" json:"walletId"`
	Type        Type            `db:"type" json:"type" swaggertype:"string" enums:"income,expense"`
	Amount      decimal.Decimal `db:"amount" json:"amount" swaggertype:"number"`
	Category    string          `db:"category" json:"category"`
	Date        string          `db:"date" json:"date" example:"2024-05-15"`
	Description *string         `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// Entry is a validated transaction payload ready for the store.
type Entry struct {
	WalletID    int64
	Type        Type
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description *string
}

// Filter narrows a listing. The date range applies only when both ends are set.
type Filter struct {
	WalletID  *int64
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRequest is the body of create and edit calls.
type TransactionRequest struct {
	WalletID    int64            `json:"walletId" binding:"required" example:"1"`
	Type        string           `json:"type" binding:"required" example:"expense"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"12.50"`
	Category    string           `json:"category" binding:"required" example:"food"`
	Date        string           `json:"date" binding:"required" example:"2024-05-15"`
	Description *string          `json:"description" example:"groceries"`
}

type CreateResponse struct {
	Message    string          `json:"message" example:"Transaction added successfully."`
	ID         int64           `json:"id"`
	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

type DeleteResponse struct {
	Message    string          `json:"message" example:"Transaction deleted successfully."`
	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}
