package gateway

import "time"

// Config is a configuration for the payment gateway application
type Config struct {
	HTTPAddr string
	// BankURL is the acquiring bank's authorization endpoint.
	BankURL string
	// BankTimeout bounds the synchronous bank call; on expiry the call
	// is reported as bank-unavailable.
	BankTimeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:8090",
		BankURL:     "http://localhost:8080/payments",
		BankTimeout: 10 * time.Second,
	}
}
