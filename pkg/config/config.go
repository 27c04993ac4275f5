package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "SMARTCART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	// Environment variable names, spelled out for tests and deploy docs.
	EnvAppEnv       = "SMARTCART_APP_ENV"
	EnvPort         = "SMARTCART_APP_PORT"
	EnvStoreBackend = "SMARTCART_STORE_BACKEND"
	EnvRedisURL     = "SMARTCART_REDIS_URL"
)

// Store backend selectors.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Pricing  PricingConfig
	Realtime RealtimeConfig
	Redis    RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	if cfg.Store.Backend == StoreBackendRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("redis backend selected but %s is not set", EnvRedisURL)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SMARTCART_APP_ENV" required:"true"`
	Port         string `envconfig:"SMARTCART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SMARTCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SMARTCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	Backend string `envconfig:"SMARTCART_STORE_BACKEND" default:"memory"`
}

func (s StoreConfig) validate() error {
	switch s.Backend {
	case StoreBackendMemory, StoreBackendRedis:
		return nil
	}
	return fmt.Errorf("unknown store backend %q", s.Backend)
}

// PricingConfig carries the cart summary formula knobs. The defaults
// are the production values; tests rely on them.
type PricingConfig struct {
	TaxRate           float64 `envconfig:"SMARTCART_PRICING_TAX_RATE" default:"0.05"`
	DiscountRate      float64 `envconfig:"SMARTCART_PRICING_DISCOUNT_RATE" default:"0.15"`
	DiscountThreshold float64 `envconfig:"SMARTCART_PRICING_DISCOUNT_THRESHOLD" default:"500"`
}

type RealtimeConfig struct {
	WriteTimeout    time.Duration `envconfig:"SMARTCART_REALTIME_WRITE_TIMEOUT" default:"10s"`
	PongTimeout     time.Duration `envconfig:"SMARTCART_REALTIME_PONG_TIMEOUT" default:"60s"`
	PingInterval    time.Duration `envconfig:"SMARTCART_REALTIME_PING_INTERVAL" default:"50s"`
	SendBufferSize  int           `envconfig:"SMARTCART_REALTIME_SEND_BUFFER" default:"32"`
	MaxMessageBytes int64         `envconfig:"SMARTCART_REALTIME_MAX_MESSAGE_BYTES" default:"4096"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SMARTCART_REDIS_URL"`
	Address      string        `envconfig:"SMARTCART_REDIS_ADDR"`
	Password     string        `envconfig:"SMARTCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"SMARTCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SMARTCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SMARTCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SMARTCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SMARTCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SMARTCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}
