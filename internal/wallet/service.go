package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/apperr"
	"fintrack/internal/logger"
	"fintrack/internal/metrics"
)

var (
	ErrNameRequired   = apperr.Validation("Wallet name is required.")
	ErrWalletNotFound = apperr.NotFound("Wallet not found or user not authorized.")
)

// CacheInvalidator drops derived per-user data after a ledger change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID int64)
}

type Service interface {
	Create(ctx context.Context, userID int64, req CreateWalletRequest) (*Wallet, error)
	List(ctx context.Context, userID int64) ([]Wallet, error)
	Delete(ctx context.Context, walletID, userID int64) error
	Reconcile(ctx context.Context, walletID, userID int64) (*Reconciliation, error)
}

type service struct {
	repo  Repository
	cache CacheInvalidator
}

func NewService(repo Repository, cache CacheInvalidator) Service {
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, userID int64, req CreateWalletRequest) (*Wallet, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	w, err := s.repo.Create(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	metrics.RecordWalletCreated()
	logger.Info("wallet created", "wallet_id", w.ID, "user_id", userID)
	return w, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]Wallet, error) {
	wallets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

func (s *service) Delete(ctx context.Context, walletID, userID int64) error {
	if err := s.repo.Delete(ctx, walletID, userID); err != nil {
		if errors.Is(err, ErrNotOwned) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("delete wallet: %w", err)
	}

	s.invalidate(ctx, userID)
	metrics.RecordWalletDeleted()
	logger.Info("wallet deleted", "wallet_id", walletID, "user_id", userID)
	return nil
}

func (s *service) Reconcile(ctx context.Context, walletID, userID int64) (*Reconciliation, error) {
	rec, err := s.repo.Reconcile(ctx, walletID, userID)
	if err != nil {
		if errors.Is(err, ErrNotOwned) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("reconcile wallet: %w", err)
	}

	drifted := !rec.Drift.IsZero()
	metrics.RecordReconciliation(drifted)
	if drifted {
		logger.Warn("wallet balance drift corrected",
			"wallet_id", walletID,
			"previous_balance", rec.PreviousBalance.String(),
			"balance", rec.Balance.String(),
		)
	}
	return rec, nil
}

func (s *service) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}
}
