package payment

import (
	"context"
	"fmt"
	"time"

	"pulsepay/internal/models"
	"pulsepay/internal/repositories"
	"pulsepay/internal/services/fraud"

	"github.com/google/uuid"
)

type service struct {
	scorer       RiskScorer
	wallets      WalletOperator
	transactions repositories.TransactionRepository
}

// NewService creates a new payment service
func NewService(scorer RiskScorer, wallets WalletOperator, transactions repositories.TransactionRepository) Service {
	if scorer == nil {
		panic("risk scorer is required")
	}
	if wallets == nil {
		panic("wallet operator is required")
	}
	if transactions == nil {
		panic("transaction repository is required")
	}

	return &service{
		scorer:       scorer,
		wallets:      wallets,
		transactions: transactions,
	}
}

// ProcessPayment scores the payment and applies its monetary effect
// only when the engine accepts it. Blocked payments skip the ledger
// entirely; the engine has already recorded them on the blocked ledger
// and committed the attempt into the account's profile.
func (s *service) ProcessPayment(ctx context.Context, req Request) (*Result, error) {
	if req.Type == "" {
		req.Type = models.TransactionTypePayment
	}
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	transactionID := "TX-" + uuid.NewString()

	result, err := s.scorer.Score(fraud.Transaction{
		TransactionID:  transactionID,
		AccountID:      req.AccountID,
		CounterpartyID: req.CounterpartyID,
		Type:           req.Type,
		Amount:         req.Amount,
		Timestamp:      ts,
		IPAddress:      req.IPAddress,
		DeviceHash:     req.DeviceHash,
	})
	if err != nil {
		return nil, err
	}

	if result.Decision == fraud.DecisionBlock {
		return &Result{
			TransactionID: transactionID,
			Decision:      result.Decision,
			Scores:        result.Scores,
			Status:        "blocked",
		}, nil
	}

	if err := s.wallets.Debit(ctx, req.AccountID, req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDebitFailed, err)
	}

	if req.CounterpartyID != "" {
		if err := s.wallets.Credit(ctx, req.CounterpartyID, req.Amount); err != nil {
			// Roll the debit back before reporting failure.
			if rbErr := s.wallets.Credit(ctx, req.AccountID, req.Amount); rbErr != nil {
				return nil, fmt.Errorf("critical error: credit failed and rollback failed: %v, %v", err, rbErr)
			}
			return nil, fmt.Errorf("%w: %v", ErrCreditFailed, err)
		}
	}

	tx := &models.Transaction{
		TransactionID:  transactionID,
		Type:           req.Type,
		AccountID:      req.AccountID,
		CounterpartyID: req.CounterpartyID,
		Amount:         req.Amount,
		Status:         models.TransactionStatusCompleted,
		Description:    req.Description,
		IPAddress:      req.IPAddress,
		DeviceHash:     req.DeviceHash,
		RiskScore:      result.Scores.FraudRiskScore,
		Metadata: models.NewJSON(map[string]interface{}{
			"spending_score": result.Scores.SpendingScore,
			"velocity_score": result.Scores.VelocityScore,
			"geo_score":      result.Scores.GeoScore,
		}),
	}
	if err := s.transactions.Create(tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return &Result{
		TransactionID: transactionID,
		Decision:      result.Decision,
		Scores:        result.Scores,
		Status:        models.TransactionStatusCompleted,
	}, nil
}

func (s *service) GetAccountTransactions(ctx context.Context, accountID string, limit, offset int) ([]models.Transaction, error) {
	return s.transactions.GetByAccountID(accountID, limit, offset)
}
