package fraud

import "net"

// Engine scores transactions against per-account behavioral profiles
// and gates them on the configured block threshold.
type Engine struct {
	cfg      Config
	resolver GeoResolver
	profiles ProfileStore
	ledger   BlockedLedger
	metrics  MetricsCollector
}

// NewEngine validates the configuration and builds an engine. Nil
// collaborators fall back to the in-memory defaults, so a standalone
// engine is NewEngine(DefaultConfig(), nil, nil, nil, nil).
func NewEngine(
	cfg Config,
	resolver GeoResolver,
	profiles ProfileStore,
	ledger BlockedLedger,
	metrics MetricsCollector,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if resolver == nil {
		resolver = NewStaticResolver()
	}
	if profiles == nil {
		profiles = NewMemoryProfileStore()
	}
	if ledger == nil {
		ledger = NewMemoryBlockedLedger()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &Engine{
		cfg:      cfg,
		resolver: resolver,
		profiles: profiles,
		ledger:   ledger,
		metrics:  metrics,
	}, nil
}

// Score is the single entry point: it resolves the network address,
// computes the signal breakdown against the account's profile, decides
// accept or block, and commits the observation. The profile read, the
// scoring and the commit form one exclusive section per account, so
// concurrent transactions for one account serialize while different
// accounts proceed in parallel.
func (e *Engine) Score(tx Transaction) (*Result, error) {
	if err := validateTransaction(tx); err != nil {
		e.metrics.RecordRejected(err.Error())
		return nil, err
	}

	geo := e.resolver.Resolve(tx.IPAddress)

	entry := e.profiles.GetOrCreate(tx.AccountID)
	entry.Lock()
	defer entry.Unlock()

	p := &entry.Profile
	spending := spendingSignal(p.Amounts, tx.Amount)
	velocity := velocitySignal(p.Timestamps, tx.Timestamp)
	geoScore, distanceKm, moved := geoSignal(p, tx.Timestamp, geo)

	raw := e.cfg.SpendingWeight*spending +
		e.cfg.VelocityWeight*velocity +
		e.cfg.GeoWeight*geoScore

	scores := RiskScore{
		SpendingScore:  spending,
		VelocityScore:  velocity,
		GeoScore:       geoScore,
		FraudRiskScore: sigmoid(raw),
	}

	decision := DecisionAccept
	if len(p.Amounts) >= e.cfg.MinObservations && scores.FraudRiskScore >= e.cfg.BlockThreshold {
		decision = DecisionBlock
		e.ledger.Append(BlockedRecord{
			TransactionID:  tx.TransactionID,
			AccountID:      tx.AccountID,
			Amount:         tx.Amount,
			CounterpartyID: tx.CounterpartyID,
			Type:           tx.Type,
			Scores:         scores,
			Reason:         BlockReasonThreshold,
			Timestamp:      tx.Timestamp,
		})
	}

	// Committed for both decisions: blocked attempts are history too.
	p.Observe(Observation{
		Amount:     tx.Amount,
		Timestamp:  tx.Timestamp,
		Geo:        geo,
		DistanceKm: distanceKm,
		Moved:      moved,
	})

	e.metrics.RecordScore(scores)
	e.metrics.RecordDecision(decision)

	return &Result{Decision: decision, Scores: scores}, nil
}

// Blocked returns the blocked-transaction ledger, most recent first.
func (e *Engine) Blocked() []BlockedRecord {
	return e.ledger.List()
}

// ProfileSummary returns a read-only view over an account's profile.
func (e *Engine) ProfileSummary(accountID string) (*ProfileSummary, error) {
	entry, ok := e.profiles.Get(accountID)
	if !ok {
		return nil, ErrProfileNotFound
	}

	entry.Lock()
	defer entry.Unlock()
	return &ProfileSummary{
		AccountID:    accountID,
		Observations: len(entry.Amounts),
		GeoDistances: len(entry.GeoDistances),
		LastASN:      entry.LastASN,
		LastSeen:     entry.LastSeen,
	}, nil
}

func validateTransaction(tx Transaction) error {
	if tx.AccountID == "" {
		return ErrMissingAccount
	}
	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}
	if net.ParseIP(tx.IPAddress) == nil {
		return ErrInvalidAddress
	}
	return nil
}
