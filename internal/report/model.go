package report

import "github.com/shopspring/decimal"

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

type Report struct {
	Month         string          `json:"month" example:"2024-05"`
	TotalIncome   decimal.Decimal `json:"totalIncome" swaggertype:"number" example:"1000"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" swaggertype:"number" example:"300"`
	NetSavings    decimal.Decimal `json:"netSavings" swaggertype:"number" example:"700"`
	BudgetStatus  []BudgetStatus  `json:"budgetStatus"`
	Notifications []string        `json:"notifications"`
}

// BudgetStatus compares one budget of the month with what was spent in its
// category. Remaining goes negative once the budget is exceeded.
type BudgetStatus struct {
	Category  string          `db:"category" json:"category"`
	Budget    decimal.Decimal `db:"budget" json:"budget" swaggertype:"number"`
	Spent     decimal.Decimal `db:"spent" json:"spent" swaggertype:"number"`
	Remaining decimal.Decimal `db:"-" json:"remaining" swaggertype:"number"`
}

type Totals struct {
	Income   decimal.Decimal `db:"total_income"`
	Expenses decimal.Decimal `db:"total_expenses"`
}
