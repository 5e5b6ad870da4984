package config

import (
	"log"
	"os"
	"strconv"

	"pulsepay/internal/services/fraud"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// FraudConfig assembles the scoring policy from the environment. The
// engine validates it at startup; bad values are fatal there.
func FraudConfig() fraud.Config {
	return fraud.Config{
		SpendingWeight:  GetFloatEnv("FRAUD_SPENDING_WEIGHT", fraud.DefaultSpendingWeight),
		VelocityWeight:  GetFloatEnv("FRAUD_VELOCITY_WEIGHT", fraud.DefaultVelocityWeight),
		GeoWeight:       GetFloatEnv("FRAUD_GEO_WEIGHT", fraud.DefaultGeoWeight),
		BlockThreshold:  GetFloatEnv("FRAUD_BLOCK_THRESHOLD", fraud.DefaultBlockThreshold),
		MinObservations: GetIntEnv("FRAUD_MIN_OBSERVATIONS", 0),
	}
}
