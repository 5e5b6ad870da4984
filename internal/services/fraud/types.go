package fraud

import "time"

// Decision is the outcome of scoring a transaction.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionBlock  Decision = "BLOCK"
)

// Block reason tags recorded on the blocked ledger.
const (
	BlockReasonThreshold = "risk_threshold_exceeded"
)

// Transaction is the immutable scoring input.
type Transaction struct {
	TransactionID  string
	AccountID      string
	CounterpartyID string
	Type           string
	Amount         float64
	Timestamp      time.Time
	IPAddress      string
	DeviceHash     string // opaque, pre-derived
}

// GeoPoint is a resolved network location.
type GeoPoint struct {
	Lat float64
	Lon float64
	ASN string
}

// RiskScore is the per-signal breakdown of a scored transaction.
// Every component lies in (0,1).
type RiskScore struct {
	SpendingScore  float64 `json:"spending_score"`
	VelocityScore  float64 `json:"velocity_score"`
	GeoScore       float64 `json:"geo_score"`
	FraudRiskScore float64 `json:"fraud_risk_score"`
}

// Result is returned to the caller, who owns the monetary effect.
type Result struct {
	Decision Decision  `json:"decision"`
	Scores   RiskScore `json:"scores"`
}

// BlockedRecord is an immutable entry on the blocked ledger.
type BlockedRecord struct {
	TransactionID  string    `json:"transaction_id"`
	AccountID      string    `json:"account_id"`
	Amount         float64   `json:"amount"`
	CounterpartyID string    `json:"counterparty_id"`
	Type           string    `json:"type"`
	Scores         RiskScore `json:"scores"`
	Reason         string    `json:"reason"`
	Timestamp      time.Time `json:"timestamp"`
}

// Observation is the state delta committed to a profile after scoring.
type Observation struct {
	Amount     float64
	Timestamp  time.Time
	Geo        GeoPoint
	DistanceKm float64
	Moved      bool // a prior position existed, DistanceKm is meaningful
}

// Profile is the rolling behavioral history of one account. Amounts and
// Timestamps always have equal length; GeoDistances is at most one
// shorter since no distance exists before a second observation.
type Profile struct {
	Amounts      []float64
	Timestamps   []time.Time
	GeoDistances []float64

	LastLat  *float64
	LastLon  *float64
	LastASN  string
	LastSeen *time.Time
}

// HasLastPosition reports whether the account has a prior geo context.
func (p *Profile) HasLastPosition() bool {
	return p.LastLat != nil && p.LastLon != nil && p.LastSeen != nil
}

// Observe commits a scored transaction into the profile.
func (p *Profile) Observe(obs Observation) {
	p.Amounts = append(p.Amounts, obs.Amount)
	p.Timestamps = append(p.Timestamps, obs.Timestamp)
	if obs.Moved {
		p.GeoDistances = append(p.GeoDistances, obs.DistanceKm)
	}

	lat, lon, seen := obs.Geo.Lat, obs.Geo.Lon, obs.Timestamp
	p.LastLat = &lat
	p.LastLon = &lon
	p.LastASN = obs.Geo.ASN
	p.LastSeen = &seen
}

// ProfileSummary is a read-only view over a stored profile.
type ProfileSummary struct {
	AccountID    string     `json:"account_id"`
	Observations int        `json:"observations"`
	GeoDistances int        `json:"geo_distances"`
	LastASN      string     `json:"last_asn,omitempty"`
	LastSeen     *time.Time `json:"last_seen,omitempty"`
}
