package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"payment": map[string]any{
			"secretKey": "",
			"baseUrl":   "",
		},
		"geocoding": map[string]any{
			"apiKey":   "",
			"cacheTtl": "24h",
		},
		"pubsub": map[string]any{
			"natsUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PAYMENT_SECRETKEY", want: "payment.secretKey"},
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_CACHETTL", want: "geocoding.cacheTtl"},
		{envKey: "PUBSUB_NATSURL", want: "pubsub.natsUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Payment:  &PaymentConfig{},
		Firebase: &FirebaseConfig{},
	}
	cfg.Orders.CodeAttempts = 3

	applyDefaults(cfg)

	assert.Equal(t, defaultTxTimeout, cfg.Transaction.Timeout)
	assert.Equal(t, defaultPaymentTimeout, cfg.Payment.Timeout)
	assert.Equal(t, "thb", cfg.Payment.Currency)
	assert.Equal(t, defaultPushTimeout, cfg.Firebase.SendTimeout)
	assert.Equal(t, 3, cfg.Orders.CodeAttempts)
	assert.Equal(t, defaultPriceWindowDays, cfg.Market.PriceWindowDays)
	assert.Equal(t, 30*time.Second, cfg.Realtime.PingInterval)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}
