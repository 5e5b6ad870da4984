package wallet

// Wallet statuses
const (
	StatusActive = "active"
	StatusLocked = "locked"
)

// Default configuration values
const (
	DefaultCurrency             = "USD"
	DefaultMaxTransactionAmount = 50000.0
	DefaultMinTransactionAmount = 1.0
)
