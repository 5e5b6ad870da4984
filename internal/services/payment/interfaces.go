package payment

import (
	"context"

	"pulsepay/internal/models"
	"pulsepay/internal/services/fraud"
)

// RiskScorer is the risk engine boundary. *fraud.Engine satisfies it.
type RiskScorer interface {
	Score(tx fraud.Transaction) (*fraud.Result, error)
}

// WalletOperator applies balance effects.
type WalletOperator interface {
	Credit(ctx context.Context, accountID string, amount float64) error
	Debit(ctx context.Context, accountID string, amount float64) error
}

// Service processes payments gated by the risk engine.
type Service interface {
	ProcessPayment(ctx context.Context, req Request) (*Result, error)
	GetAccountTransactions(ctx context.Context, accountID string, limit, offset int) ([]models.Transaction, error)
}
