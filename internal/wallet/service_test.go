package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int64, name string) (*Wallet, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Wallet), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64) ([]Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Wallet), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, walletID, userID int64) error {
	args := m.Called(ctx, walletID, userID)
	return args.Error(0)
}

func (m *MockRepository) Reconcile(ctx context.Context, walletID, userID int64) (*Reconciliation, error) {
	args := m.Called(ctx, walletID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reconciliation), args.Error(1)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, userID int64) {
	m.Called(ctx, userID)
}

func TestService_Create(t *testing.T) {
	t.Run("trims name", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, int64(1), "Cash").Return(&Wallet{ID: 3, UserID: 1, Name: "Cash"}, nil)

		w, err := NewService(repo, nil).Create(context.Background(), 1, CreateWalletRequest{Name: "  Cash "})

		require.NoError(t, err)
		assert.Equal(t, int64(3), w.ID)
		repo.AssertExpectations(t)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := new(MockRepository)

		_, err := NewService(repo, nil).Create(context.Background(), 1, CreateWalletRequest{Name: "   "})

		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("invalidates report cache", func(t *testing.T) {
		repo := new(MockRepository)
		cache := new(MockInvalidator)
		repo.On("Delete", mock.Anything, int64(4), int64(1)).Return(nil)
		cache.On("Invalidate", mock.Anything, int64(1)).Return()

		err := NewService(repo, cache).Delete(context.Background(), 4, 1)

		require.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("not owned maps to not found", func(t *testing.T) {
		repo := new(MockRepository)
		cache := new(MockInvalidator)
		repo.On("Delete", mock.Anything, int64(4), int64(2)).Return(ErrNotOwned)

		err := NewService(repo, cache).Delete(context.Background(), 4, 2)

		assert.ErrorIs(t, err, ErrWalletNotFound)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", mock.Anything, int64(4), int64(1)).Return(errors.New("db down"))

		err := NewService(repo, nil).Delete(context.Background(), 4, 1)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestService_Reconcile(t *testing.T) {
	repo := new(MockRepository)
	rec := &Reconciliation{
		WalletID:        4,
		PreviousBalance: decimal.NewFromInt(10),
		Balance:         decimal.NewFromInt(12),
		Drift:           decimal.NewFromInt(2),
	}
	repo.On("Reconcile", mock.Anything, int64(4), int64(1)).Return(rec, nil)
	repo.On("Reconcile", mock.Anything, int64(5), int64(1)).Return(nil, ErrNotOwned)

	svc := NewService(repo, nil)

	got, err := svc.Reconcile(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = svc.Reconcile(context.Background(), 5, 1)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}
