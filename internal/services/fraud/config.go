package fraud

import (
	"fmt"
	"math"
)

// Default policy constants.
const (
	DefaultSpendingWeight = 0.4
	DefaultVelocityWeight = 0.3
	DefaultGeoWeight      = 0.3
	DefaultBlockThreshold = 0.7
)

// Config holds the fusion weights and the decision policy. Weights are
// explicit configuration with recognized effect, not tuned constants.
type Config struct {
	SpendingWeight float64
	VelocityWeight float64
	GeoWeight      float64

	// BlockThreshold is compared against the final fraud risk score;
	// scores at or above it block the transaction.
	BlockThreshold float64

	// MinObservations suppresses the decision gate for cold-start
	// accounts: profiles with fewer prior observations are scored and
	// recorded but never blocked. Zero gates every transaction.
	MinObservations int
}

// DefaultConfig returns the stock policy: 0.4/0.3/0.3 weights, 0.7
// threshold, no cold-start suppression.
func DefaultConfig() Config {
	return Config{
		SpendingWeight: DefaultSpendingWeight,
		VelocityWeight: DefaultVelocityWeight,
		GeoWeight:      DefaultGeoWeight,
		BlockThreshold: DefaultBlockThreshold,
	}
}

// Validate rejects policy values the engine must not run with.
func (c Config) Validate() error {
	for name, w := range map[string]float64{
		"spending": c.SpendingWeight,
		"velocity": c.VelocityWeight,
		"geo":      c.GeoWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("%w: %s weight %v outside [0,1]", ErrInvalidConfig, name, w)
		}
	}

	sum := c.SpendingWeight + c.VelocityWeight + c.GeoWeight
	if math.Abs(sum-1.0) > epsilon {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidConfig, sum)
	}

	if c.BlockThreshold < 0 || c.BlockThreshold > 1 {
		return fmt.Errorf("%w: block threshold %v outside [0,1]", ErrInvalidConfig, c.BlockThreshold)
	}

	if c.MinObservations < 0 {
		return fmt.Errorf("%w: min observations %d is negative", ErrInvalidConfig, c.MinObservations)
	}

	return nil
}
