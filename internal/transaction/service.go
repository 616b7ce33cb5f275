package transaction

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/logger"
	"fintrack/internal/metrics"
	"fintrack/internal/money"

	"github.com/shopspring/decimal"
)

// CacheInvalidator drops derived per-user data after a ledger change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID int64)
}

type Service interface {
	Create(ctx context.Context, userID int64, req TransactionRequest) (int64, decimal.Decimal, error)
	Update(ctx context.Context, userID, transactionID int64, req TransactionRequest) error
	Delete(ctx context.Context, userID, transactionID int64) (decimal.Decimal, error)
	List(ctx context.Context, userID int64, f Filter) ([]Transaction, error)
}

type service struct {
	repo  Repository
	cache CacheInvalidator
}

func NewService(repo Repository, cache CacheInvalidator) Service {
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, userID int64, req TransactionRequest) (int64, decimal.Decimal, error) {
	e, err := ParseEntry(req)
	if err != nil {
		return 0, decimal.Zero, err
	}

	id, balance, err := s.repo.Create(ctx, userID, e)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			metrics.RecordInsufficientFunds()
		}
		return 0, decimal.Zero, err
	}

	s.invalidate(ctx, userID)
	metrics.RecordLedgerMutation("create")
	logger.Info("transaction created", "transaction_id", id, "wallet_id", e.WalletID, "user_id", userID)
	return id, balance, nil
}

func (s *service) Update(ctx context.Context, userID, transactionID int64, req TransactionRequest) error {
	e, err := ParseEntry(req)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, userID, transactionID, e); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	metrics.RecordLedgerMutation("update")
	logger.Info("transaction updated", "transaction_id", transactionID, "wallet_id", e.WalletID, "user_id", userID)
	return nil
}

func (s *service) Delete(ctx context.Context, userID, transactionID int64) (decimal.Decimal, error) {
	balance, err := s.repo.Delete(ctx, userID, transactionID)
	if err != nil {
		return decimal.Zero, err
	}

	s.invalidate(ctx, userID)
	metrics.RecordLedgerMutation("delete")
	logger.Info("transaction deleted", "transaction_id", transactionID, "user_id", userID)
	return balance, nil
}

func (s *service) List(ctx context.Context, userID int64, f Filter) ([]Transaction, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *service) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}

// ParseEntry validates a request body. It never touches the store.
func ParseEntry(req TransactionRequest) (Entry, error) {
	category := strings.TrimSpace(req.Category)
	if req.WalletID <= 0 || req.Type == "" || req.Amount == nil || category == "" || req.Date == "" {
		return Entry{}, ErrMissingFields
	}

	t := Type(req.Type)
	if !t.Valid() {
		return Entry{}, ErrInvalidType
	}

	amount, err := money.Positive(*req.Amount)
	if err != nil {
		if errors.Is(err, money.ErrTooLarge) {
			return Entry{}, ErrAmountTooLarge
		}
		return Entry{}, ErrAmountNotPositive
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return Entry{}, ErrInvalidDate
	}

	var description *string
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			description = &d
		}
	}

	return Entry{
		WalletID:    req.WalletID,
		Type:        t,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	}, nil
}

// ParseFilter reads the walletId, startDate and endDate query values.
func ParseFilter(walletID, startDate, endDate string) (Filter, error) {
	var f Filter

	if walletID != "" {
		id, err := strconv.ParseInt(walletID, 10, 64)
		if err != nil || id <= 0 {
			return Filter{}, ErrInvalidWalletID
		}
		f.WalletID = &id
	}

	if startDate != "" && endDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return Filter{}, ErrInvalidDateFilter
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return Filter{}, ErrInvalidDateFilter
		}
		f.StartDate = &start
		f.EndDate = &end
	}

	return f, nil
}
