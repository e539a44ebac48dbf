package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PUBLIC_API_URL", "https://api.example.com/")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "coupons", cfg.Tables.Coupons)
	assert.Equal(t, "MXN", cfg.MercadoPago.CurrencyID)
	assert.False(t, cfg.MercadoPago.Mock)
	assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiry)
	assert.Equal(t, 5.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 50.0, cfg.RateLimit.WebhookRequestsPerSecond)
	assert.Greater(t, cfg.RateLimit.WebhookBurst, cfg.RateLimit.Burst)
	assert.Equal(t, "https://api.example.com/v1/payments/webhook", cfg.WebhookURL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("LESSONS_TABLE", "lessons-prod")

	cfg := Load()

	assert.True(t, cfg.MercadoPago.Mock)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "lessons-prod", cfg.Tables.Lessons)
}
