package payment

import "errors"

// Service errors
var (
	ErrDebitFailed  = errors.New("failed to debit account")
	ErrCreditFailed = errors.New("failed to credit counterparty")
)
