package env

import (
	"os"

	"github.com/joho/godotenv"
)

// VariantKey overrides the configured variant when set.
const VariantKey = "TRACER_VARIANT"

// Load reads KEY=VALUE lines from path (e.g. ".env") into the environment.
// Variables already set in the environment are left alone. A missing file is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
