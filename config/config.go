package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Form     FormConfig
	Session  SessionConfig
	Print    PrintConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port         string
	AppEnv       string
	BodyLimitMiB int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type FormConfig struct {
	RequireSocialLinks bool
	MaxPhotoBytes      int64
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

type PrintConfig struct {
	ChromePath string
	Attempts   int
	Timeout    time.Duration
}

type DatabaseConfig struct {
	// URL of the print archive database. Empty disables the archive.
	URL string
}

// Load reads configuration from environment variables and an optional .env
// file in the working directory or its parent.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BODY_LIMIT_MIB", 12)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("REQUIRE_SOCIAL_LINKS", false)
	v.SetDefault("MAX_PHOTO_BYTES", 10*1024*1024)
	v.SetDefault("SESSION_TTL_MINUTES", 60)
	v.SetDefault("SESSION_COOKIE", "resume_session")
	v.SetDefault("CHROME_PATH", "")
	v.SetDefault("PRINT_ATTEMPTS", 3)
	v.SetDefault("PRINT_TIMEOUT_SECONDS", 60)
	v.SetDefault("JOBS_DATABASE_URL", "")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // .env is optional

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			AppEnv:       v.GetString("APP_ENV"),
			BodyLimitMiB: v.GetInt("BODY_LIMIT_MIB"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Form: FormConfig{
			RequireSocialLinks: v.GetBool("REQUIRE_SOCIAL_LINKS"),
			MaxPhotoBytes:      v.GetInt64("MAX_PHOTO_BYTES"),
		},
		Session: SessionConfig{
			TTL:        time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
			CookieName: v.GetString("SESSION_COOKIE"),
		},
		Print: PrintConfig{
			ChromePath: v.GetString("CHROME_PATH"),
			Attempts:   v.GetInt("PRINT_ATTEMPTS"),
			Timeout:    time.Duration(v.GetInt("PRINT_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			URL: v.GetString("JOBS_DATABASE_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
