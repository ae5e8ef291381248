package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// stripeKeyVar names the environment variable holding the private API key.
const stripeKeyVar = "STRIPE_PRIVATE"

// Config holds the credentials the exporter needs at startup.
type Config struct {
	StripeKey string
}

// Load reads the configuration from a local .env file, falling back to
// the process environment when no such file exists. A missing key is a
// fatal startup error for the caller: the run must not start without it.
func Load() (*Config, error) {
	// A missing .env file is fine as long as the variable is set.
	_ = godotenv.Load()

	key := os.Getenv(stripeKeyVar)
	if key == "" {
		return nil, errors.New(stripeKeyVar + " is not set; add it to .env or the environment")
	}
	return &Config{StripeKey: key}, nil
}
