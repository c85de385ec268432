package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fjod/foodbay/internal/cart"
	"github.com/fjod/foodbay/internal/events"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SessionIdleTTL  time.Duration
	ReceiptTTL      time.Duration
	RedisAddr       string
	KafkaBrokers    []string
	KafkaTopic      string
	Pricing         cart.Pricing
}

func loadConfig() (*Config, error) {
	cfg := &Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		KafkaTopic: getEnv("KAFKA_TOPIC", events.DefaultTopic),
		Pricing:    cart.DefaultPricing(),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"REQUEST_TIMEOUT", "30s", &cfg.RequestTimeout},
		{"SHUTDOWN_TIMEOUT", "10s", &cfg.ShutdownTimeout},
		{"SESSION_IDLE_TTL", "2h", &cfg.SessionIdleTTL},
		{"RECEIPT_TTL", "15m", &cfg.ReceiptTTL},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive, got %s", d.key, v)
		}
		*d.dst = v
	}

	amounts := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"FREE_DELIVERY_THRESHOLD", &cfg.Pricing.FreeDeliveryThreshold},
		{"DELIVERY_FEE", &cfg.Pricing.DeliveryFee},
		{"TAX_RATE", &cfg.Pricing.TaxRate},
	}
	for _, a := range amounts {
		s := getEnv(a.key, "")
		if s == "" {
			continue
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", a.key, err)
		}
		*a.dst = v
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
