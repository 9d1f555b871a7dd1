// Package config loads server settings from the environment. A .env file in
// the working directory is read first when present.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/profile"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port             string        `env:"PORT"              envDefault:"8080"`
	GinMode          string        `env:"GIN_MODE"          envDefault:"debug"`
	LogLevel         string        `env:"LOG_LEVEL"         envDefault:"info"`
	DatabasePath     string        `env:"DATABASE_PATH"     envDefault:"portfolio.db"`
	OwnerName        string        `env:"OWNER_NAME"        envDefault:"Zach"`
	DefaultSkills    []string      `env:"DEFAULT_SKILLS"    envSeparator:","`
	ResumePath       string        `env:"RESUME_PATH"`
	ImagesDir        string        `env:"IMAGES_DIR"        envDefault:"images"`
	SessionTTL       time.Duration `env:"SESSION_TTL"       envDefault:"2h"`
	MaxSessions      int           `env:"MAX_SESSIONS"      envDefault:"1000"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"  envDefault:"10s"`

	SMTP  SMTP
	Admin Admin
}

// SMTP configures delivery of contact form messages.
type SMTP struct {
	Host    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    string `env:"SMTP_PORT" envDefault:"587"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	ToEmail string `env:"TO_EMAIL"`
}

// Enabled reports whether credentials are set.
func (s SMTP) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

// Admin holds the dashboard login.
type Admin struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	skills := c.DefaultSkills[:0]
	for _, s := range c.DefaultSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	c.DefaultSkills = skills
	if len(c.DefaultSkills) == 0 {
		c.DefaultSkills = profile.DefaultSkills
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("MAX_SESSIONS must be positive, got %d", c.MaxSessions)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// UsingDefaultAdmin reports whether the built-in development credentials
// are still in effect.
func (c Config) UsingDefaultAdmin() bool {
	return c.Admin.Username == "admin" && c.Admin.Password == "admin123"
}
