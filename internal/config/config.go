package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`
	Redis    Redis    `validate:"required"`
	Kafka    Kafka    `validate:"required"`

	Paystack Paystack `validate:"required"`
	Pricing  Pricing  `validate:"required"`
	Cache    Cache    `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	DedupTTL time.Duration `validate:"gt=0"`
}

type Kafka struct {
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	NotificationsTopic string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Paystack struct {
	SecretKey   string `validate:"required"`
	BaseURL     string `validate:"required,url"`
	CallbackURL string `validate:"required,url"`

	Timeout time.Duration `validate:"gt=0"`
}

type Pricing struct {
	TaxRate          float64 `validate:"gte=0,lt=1"`
	ShippingFee      float64 `validate:"gte=0"`
	FreeShippingOver float64 `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"), ","),
		},

		Postgres: Postgres{
			Host:     env("POSTGRES_HOST", "localhost"),
			Port:     envInt("POSTGRES_PORT", 5432),
			DBName:   env("POSTGRES_DB", "glowgroove"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
			DedupTTL: envDuration("REDIS_DEDUP_TTL", 24*time.Hour),
		},

		Kafka: Kafka{
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),
			BatchTimeout:       envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Paystack: Paystack{
			SecretKey:   env("PAYSTACK_SECRET_KEY", ""),
			BaseURL:     env("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			CallbackURL: env("PAYSTACK_CALLBACK_URL", "http://localhost:3000/"),
			Timeout:     envDuration("PAYSTACK_TIMEOUT", 10*time.Second),
		},

		Pricing: Pricing{
			TaxRate:          envFloat("PRICING_TAX_RATE", 0.08),
			ShippingFee:      envFloat("PRICING_SHIPPING_FEE", 5.99),
			FreeShippingOver: envFloat("PRICING_FREE_SHIPPING_OVER", 50),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
