package fraud

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var testBase = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, nil, nil, nil, nil)
	require.NoError(t, err)
	return engine
}

func tx(id, account string, amount float64, ts time.Time, ip string) Transaction {
	return Transaction{
		TransactionID: id,
		AccountID:     account,
		Amount:        amount,
		Timestamp:     ts,
		IPAddress:     ip,
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	_, err := NewEngine(Config{SpendingWeight: 0.9, VelocityWeight: 0.3, GeoWeight: 0.3, BlockThreshold: 0.7}, nil, nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScore_FirstTransactionBaseline(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	result, err := engine.Score(tx("T1", "a1", 250, testBase, "8.8.8.8"))
	require.NoError(t, err)

	// No history means every signal scores its own baseline.
	assert.Equal(t, 0.5, result.Scores.SpendingScore)
	assert.Equal(t, 0.5, result.Scores.VelocityScore)
	assert.Equal(t, 0.5, result.Scores.GeoScore)
	assert.InDelta(t, sigmoid(0.5), result.Scores.FraudRiskScore, 1e-9)
	assert.Equal(t, DecisionAccept, result.Decision)
}

func TestScore_Validation(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())
	store := engine.profiles.(*MemoryProfileStore)

	cases := []struct {
		name string
		tx   Transaction
		err  error
	}{
		{"missing account", tx("T1", "", 100, testBase, "8.8.8.8"), ErrMissingAccount},
		{"zero amount", tx("T1", "a1", 0, testBase, "8.8.8.8"), ErrInvalidAmount},
		{"negative amount", tx("T1", "a1", -5, testBase, "8.8.8.8"), ErrInvalidAmount},
		{"bad address", tx("T1", "a1", 100, testBase, "not-an-ip"), ErrInvalidAddress},
		{"empty address", tx("T1", "a1", 100, testBase, ""), ErrInvalidAddress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Score(tc.tx)
			require.ErrorIs(t, err, tc.err)
		})
	}

	// Rejected input leaves no trace in any profile.
	assert.Equal(t, 0, store.Len())
}

func TestScore_StableSpenderAccepted(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	for i := 0; i < 5; i++ {
		ts := testBase.Add(time.Duration(i) * 2 * time.Hour)
		result, err := engine.Score(tx(fmt.Sprintf("T%d", i), "a1", 100, ts, "8.8.8.8"))
		require.NoError(t, err)
		assert.Equal(t, DecisionAccept, result.Decision, "transaction %d", i)
	}

	// A settled routine keeps every signal at its baseline.
	result, err := engine.Score(tx("T5", "a1", 100, testBase.Add(10*time.Hour), "8.8.8.8"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Scores.SpendingScore, 1e-6)
	assert.InDelta(t, 0.5, result.Scores.VelocityScore, 1e-6)
	assert.InDelta(t, 0.5, result.Scores.GeoScore, 1e-6)
	assert.Equal(t, DecisionAccept, result.Decision)
	assert.Empty(t, engine.Blocked())
}

func TestScore_ImpossibleTravelBlocked(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	// Establish a position in California.
	_, err := engine.Score(tx("T1", "a1", 500, testBase, "8.8.8.8"))
	require.NoError(t, err)

	// Three minutes later the same account spends ten times as much
	// from Sydney. Every signal saturates.
	result, err := engine.Score(tx("T2", "a1", 5000, testBase.Add(3*time.Minute), "1.1.1.1"))
	require.NoError(t, err)

	assert.Equal(t, DecisionBlock, result.Decision)
	assert.Greater(t, result.Scores.SpendingScore, 0.99)
	assert.Greater(t, result.Scores.GeoScore, 0.99)
	assert.GreaterOrEqual(t, result.Scores.FraudRiskScore, DefaultBlockThreshold)

	blocked := engine.Blocked()
	require.Len(t, blocked, 1)
	assert.Equal(t, "T2", blocked[0].TransactionID)
	assert.Equal(t, "a1", blocked[0].AccountID)
	assert.Equal(t, BlockReasonThreshold, blocked[0].Reason)

	// Blocked attempts are committed to the profile too.
	summary, err := engine.ProfileSummary("a1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Observations)
}

func TestScore_AllScoresBounded(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	amounts := []float64{1, 100000, 0.01, 5000, 42}
	ips := []string{"8.8.8.8", "1.1.1.1", "185.199.108.153", "52.95.110.1", "10.0.0.1"}
	for i, amount := range amounts {
		result, err := engine.Score(tx(fmt.Sprintf("T%d", i), "a1", amount, testBase.Add(time.Duration(i)*time.Minute), ips[i]))
		require.NoError(t, err)
		for name, s := range map[string]float64{
			"spending": result.Scores.SpendingScore,
			"velocity": result.Scores.VelocityScore,
			"geo":      result.Scores.GeoScore,
			"final":    result.Scores.FraudRiskScore,
		} {
			assert.GreaterOrEqual(t, s, 0.0, "%s score on transaction %d", name, i)
			assert.LessOrEqual(t, s, 1.0, "%s score on transaction %d", name, i)
		}
	}
}

func TestScore_ThresholdIsInclusive(t *testing.T) {
	// A first transaction scores exactly sigmoid of the weighted
	// baseline, which makes the boundary reproducible.
	raw := DefaultSpendingWeight*0.5 + DefaultVelocityWeight*0.5 + DefaultGeoWeight*0.5
	boundary := sigmoid(raw)

	cfg := DefaultConfig()
	cfg.BlockThreshold = boundary
	engine := newTestEngine(t, cfg)
	result, err := engine.Score(tx("T1", "a1", 100, testBase, "8.8.8.8"))
	require.NoError(t, err)
	assert.Equal(t, DecisionBlock, result.Decision)

	cfg.BlockThreshold = math.Nextafter(boundary, 1)
	engine = newTestEngine(t, cfg)
	result, err = engine.Score(tx("T1", "a1", 100, testBase, "8.8.8.8"))
	require.NoError(t, err)
	assert.Equal(t, DecisionAccept, result.Decision)
}

func TestScore_MinObservationsSuppressesBlock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinObservations = 2
	engine := newTestEngine(t, cfg)

	_, err := engine.Score(tx("T1", "a1", 500, testBase, "8.8.8.8"))
	require.NoError(t, err)

	// Saturating score, but only one prior observation.
	result, err := engine.Score(tx("T2", "a1", 5000, testBase.Add(3*time.Minute), "1.1.1.1"))
	require.NoError(t, err)
	assert.Equal(t, DecisionAccept, result.Decision)
	assert.GreaterOrEqual(t, result.Scores.FraudRiskScore, DefaultBlockThreshold)
	assert.Empty(t, engine.Blocked())

	// The third anomaly clears the floor and blocks.
	result, err = engine.Score(tx("T3", "a1", 50000, testBase.Add(6*time.Minute), "52.95.110.1"))
	require.NoError(t, err)
	assert.Equal(t, DecisionBlock, result.Decision)
	require.Len(t, engine.Blocked(), 1)
}

func TestScore_AccountsAreIndependent(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	for i := 0; i < 10; i++ {
		_, err := engine.Score(tx(fmt.Sprintf("T%d", i), "a1", 100, testBase.Add(time.Duration(i)*time.Minute), "8.8.8.8"))
		require.NoError(t, err)
	}

	// Another account's burst never leaks into a fresh account.
	result, err := engine.Score(tx("T-other", "a2", 100, testBase, "1.1.1.1"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.Scores.SpendingScore)
	assert.Equal(t, 0.5, result.Scores.VelocityScore)
	assert.Equal(t, 0.5, result.Scores.GeoScore)
}

func TestScore_ConcurrentSameAccount(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	const n = 50
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			result, err := engine.Score(tx(fmt.Sprintf("T%d", i), "a1", 100, testBase.Add(time.Duration(i)*time.Minute), "8.8.8.8"))
			if err != nil {
				return err
			}
			if result.Scores.FraudRiskScore <= 0 || result.Scores.FraudRiskScore >= 1 {
				return fmt.Errorf("score %v out of range", result.Scores.FraudRiskScore)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Serialized commits lose nothing.
	summary, err := engine.ProfileSummary("a1")
	require.NoError(t, err)
	assert.Equal(t, n, summary.Observations)
}

func TestScore_ConcurrentDistinctAccounts(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	const n = 20
	var g errgroup.Group
	for i := 0; i < n; i++ {
		account := fmt.Sprintf("a%d", i)
		g.Go(func() error {
			_, err := engine.Score(tx("T-"+account, account, 100, testBase, "8.8.8.8"))
			return err
		})
	}
	require.NoError(t, g.Wait())

	store := engine.profiles.(*MemoryProfileStore)
	assert.Equal(t, n, store.Len())
}

func TestBlocked_MostRecentFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlockThreshold = 0 // every transaction blocks
	engine := newTestEngine(t, cfg)

	for i := 0; i < 3; i++ {
		_, err := engine.Score(tx(fmt.Sprintf("T%d", i), fmt.Sprintf("a%d", i), 100, testBase.Add(time.Duration(i)*time.Minute), "8.8.8.8"))
		require.NoError(t, err)
	}

	blocked := engine.Blocked()
	require.Len(t, blocked, 3)
	assert.Equal(t, "T2", blocked[0].TransactionID)
	assert.Equal(t, "T1", blocked[1].TransactionID)
	assert.Equal(t, "T0", blocked[2].TransactionID)
}

func TestProfileSummary(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	_, err := engine.ProfileSummary("nobody")
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = engine.Score(tx("T1", "a1", 100, testBase, "8.8.8.8"))
	require.NoError(t, err)
	_, err = engine.Score(tx("T2", "a1", 100, testBase.Add(time.Hour), "1.1.1.1"))
	require.NoError(t, err)

	summary, err := engine.ProfileSummary("a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", summary.AccountID)
	assert.Equal(t, 2, summary.Observations)
	assert.Equal(t, 1, summary.GeoDistances)
	assert.Equal(t, "AS13335", summary.LastASN)
	require.NotNil(t, summary.LastSeen)
	assert.Equal(t, testBase.Add(time.Hour), *summary.LastSeen)
}
