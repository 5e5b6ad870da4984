package repositories

import (
	"errors"

	"pulsepay/internal/models"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrDuplicateWallet   = errors.New("wallet already exists")
	ErrTransactionFailed = errors.New("transaction failed")
)

// WalletRepository defines the interface for wallet-related database operations
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByAccountID(accountID string) (*models.Wallet, error)
	Update(wallet *models.Wallet) error

	// CreateTransaction records a ledger row alongside a balance change.
	CreateTransaction(tx *models.Transaction) error

	// ExecuteInTransaction runs fn inside one database transaction.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
