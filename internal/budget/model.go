package budget

import "github.com/shopspring/decimal"

const monthLayout = "2006-01"

// Limit is the listing view of a budget.
type Limit struct {
	Category string          `db:"category" json:"category"`
	Amount   decimal.Decimal `db:"amount" json:"amount" swaggertype:"number"`
}

type SetBudgetRequest struct {
	Category string           `json:"category" binding:"required" example:"food"`
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"320"`
	Month    string           `json:"month" example:"2024-05"`
}
