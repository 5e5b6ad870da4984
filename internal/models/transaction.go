package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypePayment    = "PAYMENT"
	TransactionTypeTransfer   = "TRANSFER"
	TransactionTypeWithdrawal = "WITHDRAWAL"
	TransactionTypeDeposit    = "DEPOSIT"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
)

// Transaction is the persisted ledger record of a processed payment.
// The risk engine keeps no durable state; the score stored here is an
// audit copy of the engine's output at processing time.
type Transaction struct {
	ID             uint    `gorm:"primarykey"`
	TransactionID  string  `gorm:"uniqueIndex;not null"`
	Type           string  `gorm:"not null"`
	AccountID      string  `gorm:"index;not null"`
	CounterpartyID string  `gorm:"index"`
	Amount         float64 `gorm:"not null"`
	Currency       string  `gorm:"default:'USD'"`
	Status         string  `gorm:"not null;default:'pending'"`
	Description    string
	IPAddress      string
	DeviceHash     string
	RiskScore      float64
	Metadata       JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
