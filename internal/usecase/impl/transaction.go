package impl

import (
	"time"

	"harvest/config"
)

const defaultTxTimeout = 5 * time.Second

// txTimeoutFrom returns the configured transaction deadline.
func txTimeoutFrom(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Transaction.Timeout > 0 {
		return cfg.Transaction.Timeout
	}

	return defaultTxTimeout
}
