package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	AWS         AWSConfig
	Tables      TablesConfig
	MercadoPago MercadoPagoConfig
	Storage     StorageConfig
	Auth        AuthConfig
	SMTP        SMTPConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	LogLevel    string
	FrontendURL string
	// PublicURL is where Mercado Pago reaches this API (webhook base).
	PublicURL string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Coupons          string
	Courses          string
	Lessons          string
	Users            string
	Payments         string
	TransferRequests string
	Progress         string
}

type MercadoPagoConfig struct {
	AccessToken   string
	WebhookSecret string
	CurrencyID    string
	Mock          bool
}

type StorageConfig struct {
	Bucket        string
	Endpoint      string
	PublicURL     string
	PresignExpiry time.Duration
}

type AuthConfig struct {
	JWTSecret        string
	TokenExpiry      time.Duration
	SetupAdminToken  string
	MinPasswordChars int
}

type SMTPConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	From       string
	AdminEmail string
}

type CacheConfig struct {
	CatalogTTL      time.Duration
	CleanupInterval time.Duration
}

// RateLimitConfig holds the per-IP budgets. The webhook gets its own bucket.
type RateLimitConfig struct {
	RequestsPerSecond        float64
	Burst                    int
	WebhookRequestsPerSecond float64
	WebhookBurst             int
}

// Load reads the configuration from the environment. A file named by
// CONFIG_FILE (or ./.env) is loaded first when present.
func Load() *Config {
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if err := godotenv.Load(file); err != nil {
			log.Printf("config: failed loading %s: %v", file, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getenvDefault("PORT", "8080"),
			Env:         getenvDefault("ENV", "development"),
			LogLevel:    getenvDefault("LOG_LEVEL", "info"),
			FrontendURL: strings.TrimSuffix(getenvDefault("FRONTEND_URL", "http://localhost:3000"), "/"),
			PublicURL:   strings.TrimSuffix(getenvDefault("PUBLIC_API_URL", "http://localhost:8080"), "/"),
		},
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			Coupons:          getenvDefault("COUPONS_TABLE", "coupons"),
			Courses:          getenvDefault("COURSES_TABLE", "courses"),
			Lessons:          getenvDefault("LESSONS_TABLE", "lessons"),
			Users:            getenvDefault("USERS_TABLE", "users"),
			Payments:         getenvDefault("PAYMENTS_TABLE", "payments"),
			TransferRequests: getenvDefault("TRANSFER_REQUESTS_TABLE", "transfer_requests"),
			Progress:         getenvDefault("PROGRESS_TABLE", "progress"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			WebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
			CurrencyID:    getenvDefault("MERCADOPAGO_CURRENCY_ID", "MXN"),
			Mock:          getBoolEnv("PAYMENT_GATEWAY_MOCK") || getBoolEnv("MERCADOPAGO_MOCK"),
		},
		Storage: StorageConfig{
			Bucket:        getenvDefault("STORAGE_BUCKET", "academia-assets"),
			Endpoint:      os.Getenv("STORAGE_ENDPOINT"),
			PublicURL:     strings.TrimSuffix(os.Getenv("STORAGE_PUBLIC_URL"), "/"),
			PresignExpiry: getDurationEnv("STORAGE_PRESIGN_EXPIRY", 15*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:        getenvDefault("JWT_SECRET", "default_secret_CHANGE_ME"),
			TokenExpiry:      getDurationEnv("JWT_EXPIRY", 24*time.Hour),
			SetupAdminToken:  os.Getenv("SETUP_ADMIN_TOKEN"),
			MinPasswordChars: getIntEnv("MIN_PASSWORD_CHARS", 6),
		},
		SMTP: SMTPConfig{
			Host:       os.Getenv("SMTP_HOST"),
			Port:       getenvDefault("SMTP_PORT", "587"),
			User:       os.Getenv("SMTP_USER"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			From:       os.Getenv("SMTP_FROM"),
			AdminEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
		},
		Cache: CacheConfig{
			CatalogTTL:      getDurationEnv("CACHE_CATALOG_TTL", 10*time.Minute),
			CleanupInterval: getDurationEnv("CACHE_CLEANUP_INTERVAL", 30*time.Minute),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloatEnv("RATE_LIMIT_RPS", 5),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 20),

			WebhookRequestsPerSecond: getFloatEnv("RATE_LIMIT_WEBHOOK_RPS", 50),
			WebhookBurst:             getIntEnv("RATE_LIMIT_WEBHOOK_BURST", 200),
		},
	}

	if cfg.Auth.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("config: WARNING using default JWT secret")
	}
	return cfg
}

// WebhookURL is the notification_url sent with every preference.
func (c *Config) WebhookURL() string {
	return c.Server.PublicURL + "/v1/payments/webhook"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("config: invalid duration for %s, using %s", key, def)
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("config: invalid int for %s, using %d", key, def)
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("config: invalid float for %s, using %v", key, def)
	}
	return def
}
