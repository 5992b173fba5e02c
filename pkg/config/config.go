package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Password PasswordConfig
	WhatsApp WhatsAppConfig
	Gemini   GeminiConfig
	Catalog  CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.WhatsApp.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NEXTLAYER_APP_ENV" default:"dev"`
	Port         string `envconfig:"NEXTLAYER_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NEXTLAYER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NEXTLAYER_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"NEXTLAYER_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"NEXTLAYER_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"NEXTLAYER_DB_DSN" default:"storefront.db"`

	MaxOpenConns    int           `envconfig:"NEXTLAYER_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"NEXTLAYER_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"NEXTLAYER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NEXTLAYER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NEXTLAYER_REDIS_URL"`
	Address      string        `envconfig:"NEXTLAYER_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"NEXTLAYER_REDIS_PASSWORD"`
	DB           int           `envconfig:"NEXTLAYER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NEXTLAYER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NEXTLAYER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NEXTLAYER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NEXTLAYER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NEXTLAYER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"NEXTLAYER_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"NEXTLAYER_JWT_ISSUER" default:"nextlayer"`
	ExpirationMinutes int    `envconfig:"NEXTLAYER_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AdminConfig carries the shared editor credential as an argon2id hash.
type AdminConfig struct {
	PasswordHash string `envconfig:"NEXTLAYER_ADMIN_PASSWORD_HASH" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"NEXTLAYER_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"NEXTLAYER_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"NEXTLAYER_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"NEXTLAYER_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"NEXTLAYER_ARGON_KEY_LEN" default:"32"`
}

// WhatsAppConfig identifies the business line that receives checkout handoffs.
// PhoneNumber uses international format, digits only, no leading plus.
type WhatsAppConfig struct {
	PhoneNumber string `envconfig:"NEXTLAYER_WHATSAPP_PHONE" default:"5493512965608"`
}

func (w WhatsAppConfig) validate() error {
	if strings.TrimSpace(w.PhoneNumber) == "" {
		return fmt.Errorf("%s is required", EnvWhatsAppPhone)
	}
	for _, r := range w.PhoneNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("%s must contain digits only", EnvWhatsAppPhone)
		}
	}
	return nil
}

type GeminiConfig struct {
	APIKey          string `envconfig:"NEXTLAYER_GEMINI_API_KEY"`
	Model           string `envconfig:"NEXTLAYER_GEMINI_MODEL" default:"gemini-2.5-flash"`
	MaxOutputTokens int    `envconfig:"NEXTLAYER_GEMINI_MAX_OUTPUT_TOKENS" default:"300"`
}

type CatalogConfig struct {
	SeedPath string `envconfig:"NEXTLAYER_CATALOG_SEED_PATH" default:"seed/catalog.json"`
}
