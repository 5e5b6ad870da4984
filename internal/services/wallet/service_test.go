package wallet

import (
	"context"
	"errors"
	"testing"

	"pulsepay/internal/models"
	"pulsepay/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWalletRepo struct {
	mock.Mock
}

func (m *mockWalletRepo) Create(w *models.Wallet) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *mockWalletRepo) GetByAccountID(accountID string) (*models.Wallet, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *mockWalletRepo) Update(w *models.Wallet) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *mockWalletRepo) CreateTransaction(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *mockWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetWallet(ctx context.Context, accountID string) (*models.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *mockCache) CacheWallet(ctx context.Context, w *models.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *mockCache) InvalidateWallet(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func activeWallet(accountID string, balance float64) *models.Wallet {
	return &models.Wallet{
		AccountID: accountID,
		Balance:   balance,
		Currency:  DefaultCurrency,
		Status:    StatusActive,
	}
}

func TestGetWallet_CacheHit(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	cached := activeWallet("a1", 500)
	cache.On("GetWallet", mock.Anything, "a1").Return(cached, nil)

	got, err := svc.GetWallet(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	repo.AssertNotCalled(t, "GetByAccountID", mock.Anything)
}

func TestGetWallet_CacheMissFallsBackToRepo(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	stored := activeWallet("a1", 500)
	cache.On("GetWallet", mock.Anything, "a1").Return(nil, errors.New("cache miss"))
	repo.On("GetByAccountID", "a1").Return(stored, nil)
	cache.On("CacheWallet", mock.Anything, stored).Return(nil)

	got, err := svc.GetWallet(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	cache.AssertCalled(t, "CacheWallet", mock.Anything, stored)
}

func TestGetWallet_NotFound(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	cache.On("GetWallet", mock.Anything, "a1").Return(nil, errors.New("cache miss"))
	repo.On("GetByAccountID", "a1").Return(nil, repositories.ErrWalletNotFound)

	_, err := svc.GetWallet(context.Background(), "a1")

	require.ErrorIs(t, err, ErrWalletNotFound)
}

func TestCredit(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	w := activeWallet("a1", 100)
	repo.On("GetByAccountID", "a1").Return(w, nil)
	repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
	repo.On("Update", w).Return(nil)
	cache.On("InvalidateWallet", mock.Anything, "a1").Return(nil)

	err := svc.Credit(context.Background(), "a1", 50)

	require.NoError(t, err)
	assert.Equal(t, 150.0, w.Balance)
	cache.AssertCalled(t, "InvalidateWallet", mock.Anything, "a1")
}

func TestCredit_InvalidAmount(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	assert.ErrorIs(t, svc.Credit(context.Background(), "a1", 0), ErrInvalidAmount)
	assert.ErrorIs(t, svc.Credit(context.Background(), "a1", -10), ErrInvalidAmount)
	assert.ErrorIs(t, svc.Credit(context.Background(), "a1", DefaultMaxTransactionAmount+1), ErrInvalidAmount)
}

func TestCredit_LockedWallet(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	w := activeWallet("a1", 100)
	w.Status = StatusLocked
	repo.On("GetByAccountID", "a1").Return(w, nil)

	err := svc.Credit(context.Background(), "a1", 50)

	require.ErrorIs(t, err, ErrWalletLocked)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDebit(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	w := activeWallet("a1", 100)
	repo.On("GetByAccountID", "a1").Return(w, nil)
	repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
	repo.On("Update", w).Return(nil)
	cache.On("InvalidateWallet", mock.Anything, "a1").Return(nil)

	err := svc.Debit(context.Background(), "a1", 60)

	require.NoError(t, err)
	assert.Equal(t, 40.0, w.Balance)
}

func TestDebit_InsufficientBalance(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	w := activeWallet("a1", 30)
	repo.On("GetByAccountID", "a1").Return(w, nil)

	err := svc.Debit(context.Background(), "a1", 60)

	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 30.0, w.Balance)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestValidateBalance(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	w := activeWallet("a1", 100)
	cache.On("GetWallet", mock.Anything, "a1").Return(w, nil)

	assert.NoError(t, svc.ValidateBalance(context.Background(), "a1", 100))
	assert.ErrorIs(t, svc.ValidateBalance(context.Background(), "a1", 101), ErrInsufficientBalance)
	assert.ErrorIs(t, svc.ValidateBalance(context.Background(), "a1", 0), ErrInvalidAmount)
}

func TestCreateWallet(t *testing.T) {
	repo := new(mockWalletRepo)
	cache := new(mockCache)
	svc := NewService(repo, cache, Config{})

	repo.On("Create", mock.MatchedBy(func(w *models.Wallet) bool {
		return w.AccountID == "a1" && w.Currency == DefaultCurrency && w.Status == StatusActive
	})).Return(nil)
	cache.On("CacheWallet", mock.Anything, mock.Anything).Return(nil)

	w, err := svc.CreateWallet(context.Background(), "a1", "")

	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, w.Currency)
	assert.Equal(t, 0.0, w.Balance)
}
