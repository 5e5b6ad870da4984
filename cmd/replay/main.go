// Package main replays a canned transaction stream through a standalone
// risk engine and prints the decision and score breakdown for each one.
// Useful for eyeballing scoring behavior without a running server.
package main

import (
	"fmt"
	"log"
	"time"

	"pulsepay/internal/services/fraud"
)

func main() {
	engine, err := fraud.NewEngine(fraud.DefaultConfig(), nil, nil, nil, nil)
	if err != nil {
		log.Fatalf("failed to build risk engine: %v", err)
	}

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	stream := []fraud.Transaction{
		{TransactionID: "T001", AccountID: "u_100", Amount: 120.00, Timestamp: base, IPAddress: "8.8.8.8"},
		{TransactionID: "T002", AccountID: "u_100", Amount: 95.50, Timestamp: base.Add(2 * time.Hour), IPAddress: "8.8.8.8"},
		{TransactionID: "T003", AccountID: "u_100", Amount: 110.25, Timestamp: base.Add(5 * time.Hour), IPAddress: "142.250.183.46"},
		{TransactionID: "T004", AccountID: "u_100", Amount: 4800.00, Timestamp: base.Add(5*time.Hour + 3*time.Minute), IPAddress: "1.1.1.1"},
		{TransactionID: "T005", AccountID: "u_200", Amount: 45.00, Timestamp: base.Add(6 * time.Hour), IPAddress: "185.199.108.153"},
	}

	for _, tx := range stream {
		result, err := engine.Score(tx)
		if err != nil {
			log.Fatalf("%s: %v", tx.TransactionID, err)
		}
		fmt.Printf("%s account=%s amount=%.2f decision=%s spending=%.4f velocity=%.4f geo=%.4f risk=%.4f\n",
			tx.TransactionID, tx.AccountID, tx.Amount, result.Decision,
			result.Scores.SpendingScore, result.Scores.VelocityScore,
			result.Scores.GeoScore, result.Scores.FraudRiskScore)
	}

	blocked := engine.Blocked()
	fmt.Printf("\nblocked ledger (%d, most recent first):\n", len(blocked))
	for _, rec := range blocked {
		fmt.Printf("  %s account=%s amount=%.2f risk=%.4f reason=%s\n",
			rec.TransactionID, rec.AccountID, rec.Amount,
			rec.Scores.FraudRiskScore, rec.Reason)
	}
}
