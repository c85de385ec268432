package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.ReceiptTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.True(t, cfg.Pricing.FreeDeliveryThreshold.Equal(decimal.RequireFromString("25")))
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SESSION_IDLE_TTL", "30m")
	t.Setenv("DELIVERY_FEE", "2.50")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.True(t, cfg.Pricing.DeliveryFee.Equal(decimal.RequireFromString("2.5")))
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("RECEIPT_TTL", "soon")
	_, err := loadConfig()
	assert.ErrorContains(t, err, "RECEIPT_TTL")
}

func TestLoadConfig_NegativePricing(t *testing.T) {
	t.Setenv("TAX_RATE", "-0.1")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_NonPositiveDurations(t *testing.T) {
	for _, key := range []string{"REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "SESSION_IDLE_TTL", "RECEIPT_TTL"} {
		for _, v := range []string{"0s", "-5m"} {
			t.Run(key+"="+v, func(t *testing.T) {
				t.Setenv(key, v)
				_, err := loadConfig()
				assert.ErrorContains(t, err, key)
			})
		}
	}
}
