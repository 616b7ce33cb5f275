package report

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/logger"
	"fintrack/internal/metrics"
	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

const (
	NotificationExceeded    = "exceeded"
	NotificationApproaching = "approaching"
)

var warnRatio = decimal.RequireFromString("0.9")

type Service interface {
	// Generate builds the report of the current month for userID.
	Generate(ctx context.Context, userID int64) (*Report, error)
}

type service struct {
	repo  Repository
	cache Cache
	now   func() time.Time
}

// NewService computes month windows in the location of the times now returns.
func NewService(repo Repository, cache Cache, now func() time.Time) Service {
	if cache == nil {
		cache = NopCache{}
	}
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, cache: cache, now: now}
}

// MonthWindow returns the first and the last calendar day of the month of t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1)
}

func (s *service) Generate(ctx context.Context, userID int64) (*Report, error) {
	now := s.now()
	month := now.Format(monthLayout)

	if cached, ok := s.cache.Get(ctx, userID, month); ok {
		metrics.RecordReportCache(true)
		return cached, nil
	}
	metrics.RecordReportCache(false)

	// Read before the store so a write committed meanwhile voids the Set below.
	version, cacheable := s.cache.Version(ctx, userID)

	from, to := MonthWindow(now)

	totals, err := s.repo.Totals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report totals: %w", err)
	}

	statuses, err := s.repo.BudgetSpend(ctx, userID, month, from, to)
	if err != nil {
		return nil, fmt.Errorf("report budget status: %w", err)
	}

	for i := range statuses {
		statuses[i].Remaining = statuses[i].Budget.Sub(statuses[i].Spent)
	}

	r := &Report{
		Month:         month,
		TotalIncome:   totals.Income,
		TotalExpenses: totals.Expenses,
		NetSavings:    totals.Income.Sub(totals.Expenses),
		BudgetStatus:  statuses,
		Notifications: Notifications(statuses),
	}

	if cacheable {
		s.cache.Set(ctx, userID, month, version, r)
	}
	logger.Debug("report generated", "user_id", userID, "month", month, "notifications", len(r.Notifications))
	return r, nil
}

// Notifications warns about budgets with spending at or above 90%.
func Notifications(statuses []BudgetStatus) []string {
	notes := []string{}
	for _, st := range statuses {
		if !st.Spent.IsPositive() || st.Spent.LessThan(st.Budget.Mul(warnRatio)) {
			continue
		}

		if st.Spent.GreaterThan(st.Budget) {
			notes = append(notes, fmt.Sprintf("You have exceeded your '%s' budget by %s.", st.Category, money.Abs(st.Remaining)))
			metrics.RecordReportNotification(NotificationExceeded)
			continue
		}

		notes = append(notes, fmt.Sprintf("You are approaching your '%s' budget. Only %s left.", st.Category, st.Remaining.String()))
		metrics.RecordReportNotification(NotificationApproaching)
	}
	return notes
}
