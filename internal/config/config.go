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

	Auth Auth `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache    Cache
	Checkout Checkout

	Receipts Receipts `validate:"required"`
	Gateway  Gateway  `validate:"required"`
	Mail     Mail     `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Auth struct {
	// Secret the hosted backend signs its access tokens with.
	JWTSecret string `validate:"required,min=32"`
	AdminRole string `validate:"required"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
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

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Checkout struct {
	SessionCapacity int           `validate:"gte=1"`
	SessionTTL      time.Duration `validate:"gt=0"`
	// Upper bound for the detached order notification.
	NotifyTimeout time.Duration `validate:"gt=0"`
}

type Receipts struct {
	Backend string `validate:"required,oneof=s3 fs"`

	S3Bucket string `validate:"required_if=Backend s3"`
	S3Region string `validate:"required_if=Backend s3"`
	// Optional S3-compatible endpoint, e.g. the hosted backend's storage API.
	S3Endpoint string `validate:"omitempty,url"`

	Dir string `validate:"required_if=Backend fs"`

	PublicBaseURL string `validate:"omitempty,url"`
}

type Gateway struct {
	BaseURL   string        `validate:"required,url"`
	SecretKey string        `validate:"required"`
	PublicKey string        `validate:"required"`
	Timeout   time.Duration `validate:"gt=0"`
}

type Mail struct {
	BaseURL    string        `validate:"required,url"`
	APIKey     string        `validate:"required"`
	From       string        `validate:"required"`
	AdminEmail string        `validate:"required,email"`
	StoreURL   string        `validate:"required,url"`
	Timeout    time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Auth: Auth{
			JWTSecret: env("AUTH_JWT_SECRET", ""),
			AdminRole: env("AUTH_ADMIN_ROLE", "admin"),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "storefront-notifier"),
			Topic:   env("KAFKA_TOPIC", "order-notifications"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("ORDER_CACHE_CAPACITY", 1000),
			TTL:      envDuration("ORDER_CACHE_TTL", 10*time.Minute),
		},

		Checkout: Checkout{
			SessionCapacity: envInt("CHECKOUT_SESSION_CAPACITY", 10000),
			SessionTTL:      envDuration("CHECKOUT_SESSION_TTL", 2*time.Hour),
			NotifyTimeout:   envDuration("CHECKOUT_NOTIFY_TIMEOUT", 10*time.Second),
		},

		Receipts: Receipts{
			Backend:       env("RECEIPTS_BACKEND", "fs"),
			S3Bucket:      env("RECEIPTS_S3_BUCKET", ""),
			S3Region:      env("RECEIPTS_S3_REGION", ""),
			S3Endpoint:    env("RECEIPTS_S3_ENDPOINT", ""),
			Dir:           env("RECEIPTS_DIR", "./data/receipts"),
			PublicBaseURL: env("RECEIPTS_PUBLIC_BASE_URL", ""),
		},

		Gateway: Gateway{
			BaseURL:   env("PAYMENT_GATEWAY_URL", "https://api.paystack.co"),
			SecretKey: env("PAYMENT_GATEWAY_SECRET_KEY", ""),
			PublicKey: env("PAYMENT_GATEWAY_PUBLIC_KEY", ""),
			Timeout:   envDuration("PAYMENT_GATEWAY_TIMEOUT", 15*time.Second),
		},

		Mail: Mail{
			BaseURL:    env("MAIL_API_URL", "https://api.resend.com"),
			APIKey:     env("MAIL_API_KEY", ""),
			From:       env("MAIL_FROM", "Store <orders@example.com>"),
			AdminEmail: env("MAIL_ADMIN_EMAIL", ""),
			StoreURL:   env("STORE_URL", "http://localhost:3000"),
			Timeout:    envDuration("MAIL_API_TIMEOUT", 10*time.Second),
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

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
