package repositories

import (
	"errors"
	"fmt"

	"pulsepay/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines ledger read/write operations.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	GetByTransactionID(transactionID string) (*models.Transaction, error)
	GetByAccountID(accountID string, limit, offset int) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByTransactionID(transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Where("transaction_id = ?", transactionID).First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) GetByAccountID(accountID string, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.
		Where("account_id = ? OR counterparty_id = ?", accountID, accountID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}
