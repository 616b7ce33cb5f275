package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/logger"
	"fintrack/internal/metrics"
	"fintrack/internal/money"
)

var (
	ErrInvalidBudget = apperr.Validation("Category and a positive amount are required.")
	ErrInvalidMonth  = apperr.Validation("Invalid month. Use YYYY-MM.")
	ErrAmountTooBig  = apperr.Validation("Amount is too large.")
)

// CacheInvalidator drops derived per-user data after a budget change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID int64)
}

type Service interface {
	// Set creates or overwrites the budget and reports whether it was created.
	Set(ctx context.Context, userID int64, req SetBudgetRequest) (bool, error)
	List(ctx context.Context, userID int64, month string) ([]Limit, error)
}

type service struct {
	repo  Repository
	cache CacheInvalidator
	now   func() time.Time
}

// NewService uses now for the default month. It should return the time in
// the zone reports are computed in.
func NewService(repo Repository, cache CacheInvalidator, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, cache: cache, now: now}
}

func (s *service) Set(ctx context.Context, userID int64, req SetBudgetRequest) (bool, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" || req.Amount == nil {
		return false, ErrInvalidBudget
	}

	amount, err := money.Positive(*req.Amount)
	if err != nil {
		if errors.Is(err, money.ErrTooLarge) {
			return false, ErrAmountTooBig
		}
		return false, ErrInvalidBudget
	}

	month, err := s.month(req.Month)
	if err != nil {
		return false, err
	}

	created, err := s.repo.Upsert(ctx, userID, category, month, amount)
	if err != nil {
		return false, fmt.Errorf("upsert budget: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
	metrics.RecordBudgetUpsert(created)
	logger.Info("budget set", "user_id", userID, "category", category, "month", month, "created", created)
	return created, nil
}

func (s *service) List(ctx context.Context, userID int64, month string) ([]Limit, error) {
	m, err := s.month(month)
	if err != nil {
		return nil, err
	}

	limits, err := s.repo.ListForMonth(ctx, userID, m)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return limits, nil
}

// month validates a YYYY-MM value, defaulting to the current month.
func (s *service) month(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now().Format(monthLayout), nil
	}

	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return "", ErrInvalidMonth
	}
	return t.Format(monthLayout), nil
}
