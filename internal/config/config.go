package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAccessTokenLife  = "900"    // seconds
	defaultRefreshTokenLife = "604800" // seconds
	defaultAccessSecret     = "change-me-access-secret"
	defaultRefreshSecret    = "change-me-refresh-secret"
	defaultPasswordSecret   = "change-me-password-secret"
	defaultDatabaseURL      = "todoapi.db"
	defaultRedisAddr        = "localhost:6379"
	defaultPort             = "3002"
)

type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	AccessTokenSecret  string
	RefreshTokenSecret string
	PasswordSecretKey  string
	AccessTokenLife    time.Duration
	RefreshTokenLife   time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.RedisAddr = strings.TrimSpace(getEnv("REDIS_ADDR", defaultRedisAddr))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.AccessTokenSecret = strings.TrimSpace(getEnv("ACCESS_TOKEN_SECRET", defaultAccessSecret))
	cfg.RefreshTokenSecret = strings.TrimSpace(getEnv("REFRESH_TOKEN_SECRET", defaultRefreshSecret))
	cfg.PasswordSecretKey = strings.TrimSpace(getEnv("PASSWORD_SECRET_KEY", defaultPasswordSecret))

	var err error
	if cfg.RedisDB, err = parseIntEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Lifetimes are plain second counts, matching the token "expiresIn" math.
	accessLife, err := parseIntEnv("ACCESS_TOKEN_LIFE", defaultAccessTokenLife)
	if err != nil {
		return nil, err
	}
	refreshLife, err := parseIntEnv("REFRESH_TOKEN_LIFE", defaultRefreshTokenLife)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenLife = time.Duration(accessLife) * time.Second
	cfg.RefreshTokenLife = time.Duration(refreshLife) * time.Second

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AccessTokenLife <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_LIFE must be > 0")
	}
	if cfg.RefreshTokenLife <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_LIFE must be > 0")
	}
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" || cfg.PasswordSecretKey == "" {
		return fmt.Errorf("token and password secrets must not be empty")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AccessTokenSecret, defaultAccessSecret) {
			return fmt.Errorf("in prod/release ACCESS_TOKEN_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshTokenSecret, defaultRefreshSecret) {
			return fmt.Errorf("in prod/release REFRESH_TOKEN_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.PasswordSecretKey, defaultPasswordSecret) {
			return fmt.Errorf("in prod/release PASSWORD_SECRET_KEY must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
