package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath = "configs/config.toml"

	// DefaultMaxQRCopies bounds the labels printed per employee on a QR sheet.
	DefaultMaxQRCopies = 100
)

type Config struct {
	Server struct {
		Host                 string
		JWTSecret            string   `toml:"jwt_secret"`
		PublicURL            string   `toml:"public_url"`
		CORSOrigins          []string `toml:"cors_origins"`
		StrReadTimeout       string   `toml:"read_timeout"`
		StrWriteTimeout      string   `toml:"write_timeout"`
		StrReadHeaderTimeout string   `toml:"read_header_timeout"`
		ReadTimeout          time.Duration
		WriteTimeout         time.Duration
		ReadHeaderTimeout    time.Duration
	}
	Database struct {
		Host     string
		User     string
		Password string
		Database string
		MaxConns int32 `toml:"max_conns"`
	}
	Redis struct {
		RedisAddr          string `toml:"redis_addr"`
		RedisPassword      string `toml:"redis_password"`
		RedisDB            int    `toml:"redis_db"`
		AccessTokenTTL     time.Duration
		RefreshTokenTTL    time.Duration
		StrAccessTokenTTL  string `toml:"access_token_ttl"`
		StrRefreshTokenTTL string `toml:"refresh_token_ttl"`
	}
	Migrations struct {
		Enabled bool
		Dir     string
	}
	Reports struct {
		Dir      string
		URLPath     string `toml:"url_path"`
		Parallel    int
		MaxQRCopies int `toml:"max_qr_copies"`
	}
	Log struct {
		File  string
		Level string
	}
}

func GetConfig(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error read config file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, err
	}

	return Parse(string(data))
}

// Parse decodes a TOML document and fills in derived values and defaults.
func Parse(data string) (*Config, error) {
	var cfg Config

	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
		def  time.Duration
	}{
		{"access_token_ttl", cfg.Redis.StrAccessTokenTTL, &cfg.Redis.AccessTokenTTL, 0},
		{"refresh_token_ttl", cfg.Redis.StrRefreshTokenTTL, &cfg.Redis.RefreshTokenTTL, 0},
		{"read_timeout", cfg.Server.StrReadTimeout, &cfg.Server.ReadTimeout, 15 * time.Second},
		{"write_timeout", cfg.Server.StrWriteTimeout, &cfg.Server.WriteTimeout, 60 * time.Second},
		{"read_header_timeout", cfg.Server.StrReadHeaderTimeout, &cfg.Server.ReadHeaderTimeout, 5 * time.Second},
	}
	for _, d := range durations {
		if d.raw == "" && d.def > 0 {
			*d.dst = d.def
			continue
		}

		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = v
	}

	if cfg.Server.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.Migrations.Dir == "" {
		cfg.Migrations.Dir = "migrations"
	}
	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = "uploads/QrCode"
	}
	if cfg.Reports.URLPath == "" {
		cfg.Reports.URLPath = "/uploads/QrCode/"
	}
	if cfg.Reports.Parallel <= 0 {
		cfg.Reports.Parallel = 8
	}
	if cfg.Reports.MaxQRCopies <= 0 {
		cfg.Reports.MaxQRCopies = DefaultMaxQRCopies
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "server.log"
	}

	return &cfg, nil
}

// LogLevel maps the configured level name to a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// DatabaseURL is the postgres connection string shared by the pool and migrations.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Database)
}
