package wallet

import (
	"context"
	"fmt"

	"pulsepay/internal/models"
	"pulsepay/internal/repositories"
)

type service struct {
	repo   repositories.WalletRepository
	cache  Cache
	config Config
}

// NewService creates a new wallet service
func NewService(repo repositories.WalletRepository, cache Cache, config Config) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	if config.DefaultCurrency == "" {
		config.DefaultCurrency = DefaultCurrency
	}
	if config.MaxTransactionAmount == 0 {
		config.MaxTransactionAmount = DefaultMaxTransactionAmount
	}
	if config.MinTransactionAmount == 0 {
		config.MinTransactionAmount = DefaultMinTransactionAmount
	}

	return &service{
		repo:   repo,
		cache:  cache,
		config: config,
	}
}

func (s *service) GetWallet(ctx context.Context, accountID string) (*models.Wallet, error) {
	// Try cache first
	if wallet, err := s.cache.GetWallet(ctx, accountID); err == nil {
		return wallet, nil
	}

	wallet, err := s.repo.GetByAccountID(accountID)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	s.cache.CacheWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) CreateWallet(ctx context.Context, accountID, currency string) (*models.Wallet, error) {
	if currency == "" {
		currency = s.config.DefaultCurrency
	}

	wallet := &models.Wallet{
		AccountID: accountID,
		Balance:   0,
		Status:    StatusActive,
		Currency:  currency,
	}

	if err := s.repo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.cache.CacheWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) Credit(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 || amount > s.config.MaxTransactionAmount {
		return ErrInvalidAmount
	}

	wallet, err := s.repo.GetByAccountID(accountID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	if wallet.Status != StatusActive {
		return ErrWalletLocked
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet.Balance += amount
		return tx.Update(wallet)
	})
	if err != nil {
		return ErrTransactionFailed
	}

	s.cache.InvalidateWallet(ctx, accountID)
	return nil
}

func (s *service) Debit(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	wallet, err := s.repo.GetByAccountID(accountID)
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}

	if wallet.Status != StatusActive {
		return ErrWalletLocked
	}

	if wallet.Balance < amount {
		return ErrInsufficientBalance
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet.Balance -= amount
		return tx.Update(wallet)
	})
	if err != nil {
		return ErrTransactionFailed
	}

	s.cache.InvalidateWallet(ctx, accountID)
	return nil
}

func (s *service) ValidateBalance(ctx context.Context, accountID string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	wallet, err := s.GetWallet(ctx, accountID)
	if err != nil {
		return err
	}

	if wallet.Balance < amount {
		return ErrInsufficientBalance
	}

	return nil
}
