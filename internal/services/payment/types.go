package payment

import (
	"time"

	"pulsepay/internal/services/fraud"
)

// Request describes one payment to score and, on accept, apply.
type Request struct {
	AccountID      string
	CounterpartyID string
	Amount         float64
	Type           string
	Description    string
	IPAddress      string
	DeviceHash     string

	// Timestamp defaults to now; replayed streams carry their own.
	Timestamp time.Time
}

// Result carries the decision and the full score breakdown back to the
// caller. The monetary effect has already been applied or skipped.
type Result struct {
	TransactionID string          `json:"transaction_id"`
	Decision      fraud.Decision  `json:"decision"`
	Scores        fraud.RiskScore `json:"scores"`
	Status        string          `json:"status"`
}
