package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	JWT           JWTConfig
	Admin         AdminConfig
	Password      PasswordConfig
	Redis         RedisConfig
	AuthRateLimit AuthRateLimitConfig
	Orders        OrdersConfig
	Catalog       CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KAWA_APP_ENV" default:"dev"`
	Port         string `envconfig:"KAWA_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"KAWA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KAWA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"KAWA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KAWA_JWT_ISSUER" default:"buyyourkawa"`
	ExpirationMinutes int    `envconfig:"KAWA_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// Expiration returns the access token TTL configured in minutes.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// AdminConfig carries the single back-office credential. PasswordHash is an
// Argon2id string; Password is the dev-only plaintext fallback.
type AdminConfig struct {
	Username     string `envconfig:"KAWA_ADMIN_USERNAME" default:"admin"`
	Password     string `envconfig:"KAWA_ADMIN_PASSWORD"`
	PasswordHash string `envconfig:"KAWA_ADMIN_PASSWORD_HASH"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KAWA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KAWA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KAWA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KAWA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KAWA_ARGON_KEY_LEN" default:"32"`
}

// RedisConfig is optional: when URL and Address are both empty the server runs
// without Redis and login throttling is disabled.
type RedisConfig struct {
	URL          string        `envconfig:"KAWA_REDIS_URL"`
	Address      string        `envconfig:"KAWA_REDIS_ADDR"`
	Password     string        `envconfig:"KAWA_REDIS_PASSWORD"`
	DB           int           `envconfig:"KAWA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KAWA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KAWA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KAWA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KAWA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KAWA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type AuthRateLimitConfig struct {
	LoginWindow    time.Duration `envconfig:"KAWA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUserLimit int           `envconfig:"KAWA_AUTH_RATE_LIMIT_LOGIN_USER_LIMIT" default:"5"`
	LoginIPLimit   int           `envconfig:"KAWA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type OrdersConfig struct {
	MaxLineQty int `envconfig:"KAWA_ORDERS_MAX_LINE_QTY" default:"20"`
}

type CatalogConfig struct {
	SeedSampleData bool `envconfig:"KAWA_CATALOG_SEED_SAMPLE_DATA" default:"true"`
}
