// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// MinJWTSecretLength 為 JWT_SECRET 最短長度
const MinJWTSecretLength = 16

// Config 服務啟動時載入一次，之後明確傳入各元件
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	Env        string `env:"APP_ENV" envDefault:"production"`
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":8080"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// TrustedProxies 反向代理的 CIDR；空值表示限流只看連線來源位址
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// IsDevelopment 本機或開發環境下 cookie 不加 Secure
func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}

var loadDotenv = func() error { return godotenv.Load() }

// Load 先嘗試讀取 .env（不存在則略過），再解析環境變數
func Load() (*Config, error) {
	_ = loadDotenv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes long, got %d", MinJWTSecretLength, len(cfg.JWTSecret))
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}
	if cfg.SessionTTL < 0 {
		return nil, fmt.Errorf("SESSION_TTL must not be negative")
	}
	return cfg, nil
}
