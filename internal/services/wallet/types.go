package wallet

import (
	"context"

	"pulsepay/internal/models"
)

// Config holds configuration for wallet operations
type Config struct {
	DefaultCurrency      string
	MaxTransactionAmount float64
	MinTransactionAmount float64
}

// Cache defines the caching operations the service needs.
type Cache interface {
	GetWallet(ctx context.Context, accountID string) (*models.Wallet, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, accountID string) error
}

// Service defines the wallet service interface
type Service interface {
	GetWallet(ctx context.Context, accountID string) (*models.Wallet, error)
	CreateWallet(ctx context.Context, accountID, currency string) (*models.Wallet, error)
	Credit(ctx context.Context, accountID string, amount float64) error
	Debit(ctx context.Context, accountID string, amount float64) error
	ValidateBalance(ctx context.Context, accountID string, amount float64) error
}
