package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	JWTSecret      string   `mapstructure:"JWT_SECRET"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	SMTPHost       string   `mapstructure:"SMTP_HOST"`
	SMTPPort       int      `mapstructure:"SMTP_PORT"`
	SMTPUser       string   `mapstructure:"SMTP_USER"`
	SMTPPassword   string   `mapstructure:"SMTP_PASSWORD"`
	MailFrom       string   `mapstructure:"MAIL_FROM"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM", "MediHive <no-reply@medihive.local>")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SMTP_HOST")
	v.BindEnv("SMTP_PORT")
	v.BindEnv("SMTP_USER")
	v.BindEnv("SMTP_PASSWORD")
	v.BindEnv("MAIL_FROM")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. The signing secret
// is required in every mode: tokens cannot be issued or verified without it.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required; refusing to start without a token signing secret")
	}
	if c.SMTPHost != "" && c.SMTPPort <= 0 {
		return fmt.Errorf("SMTP_PORT must be positive when SMTP_HOST is set, got %d", c.SMTPPort)
	}
	return nil
}

// MailEnabled reports whether outbound mail is configured. Booking still
// succeeds when it is not; confirmations are simply skipped.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}
