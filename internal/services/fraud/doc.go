/*
Package fraud provides real-time transaction risk scoring.

The engine keeps a rolling behavioral profile per account (amounts,
timestamps, geo movement) and scores every incoming transaction against
that profile using three normalized anomaly signals:
- spending: deviation of the amount from the account's rolling baseline
- velocity: transaction count in the trailing hour vs the hourly baseline
- geo: implied travel speed, network change and movement deviation

The signals are fused into a single fraud risk score in (0,1) and gated
against a block threshold. Blocked transactions are appended to an
in-memory ledger, most recent first. The profile is updated after every
scored transaction, blocked or not, so future scoring accounts for the
attempted behavior.

Usage:

	engine, err := fraud.NewEngine(fraud.DefaultConfig(), nil, nil, nil, nil)
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Score(fraud.Transaction{
		TransactionID: "TX-1001",
		AccountID:     "acc_42",
		Amount:        1200,
		Timestamp:     time.Now(),
		IPAddress:     "8.8.8.8",
		DeviceHash:    "dev_a",
	})
	if result.Decision == fraud.DecisionBlock {
		// reject the monetary effect
	}

Concurrency:

Scoring and the subsequent profile commit happen inside one exclusive
per-account critical section, so two concurrent transactions for the
same account never observe the same baseline. Different accounts do not
contend. The engine performs no I/O and has no internal timeouts.

Error Handling:

Malformed input (non-positive amount, missing account, invalid network
address) is rejected before any state mutation. Configuration problems
(weights not summing to 1, threshold out of range) fail at construction
time, never per transaction.
*/
package fraud
