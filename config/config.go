package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the storefront needs at startup.
type Config struct {
	Env      string         `yaml:"env"`
	Port     string         `yaml:"port"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	Redis    RedisConfig    `yaml:"redis"`
	CORS     CORSConfig     `yaml:"cors"`
	Backup   BackupConfig   `yaml:"backup"`
}

// DatabaseConfig accepts either a full URL or discrete connection fields.
// A URL starting with "sqlite://" selects the SQLite driver.
type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type SessionConfig struct {
	Secret string        `yaml:"secret"`
	MaxAge time.Duration `yaml:"max_age"`
	Secure bool          `yaml:"secure"`
}

type UploadsConfig struct {
	WebRoot string `yaml:"web_root"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// BackupConfig schedules the daily copy of the uploaded images. An empty
// Dir disables it.
type BackupConfig struct {
	Dir       string        `yaml:"dir"`
	Retention time.Duration `yaml:"retention"`
	Hour      int           `yaml:"hour"`
	Minute    int           `yaml:"minute"`
}

// Default returns a config usable for local development.
func Default() *Config {
	return &Config{
		Env:  "dev",
		Port: "8080",
		Database: DatabaseConfig{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "storefront",
		},
		Session: SessionConfig{
			MaxAge: 30 * time.Minute,
		},
		Uploads: UploadsConfig{WebRoot: "wwwroot"},
		Redis:   RedisConfig{TTL: 5 * time.Minute},
		CORS:    CORSConfig{AllowOrigins: []string{"*"}},
		Backup:  BackupConfig{Retention: 4 * 24 * time.Hour, Hour: 2},
	}
}

// Load builds the config from defaults, an optional YAML file, a .env file
// and finally the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("STOREFRONT_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setString(&c.Env, "APP_ENV")
	setString(&c.Port, "PORT")

	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")

	setString(&c.Session.Secret, "SESSION_SECRET")
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Session.MaxAge = d
		}
	}
	if v := os.Getenv("SESSION_SECURE"); v != "" {
		c.Session.Secure = v == "1" || strings.EqualFold(v, "true")
	}

	setString(&c.Uploads.WebRoot, "WEB_ROOT")
	setString(&c.Backup.Dir, "BACKUP_DIR")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowOrigins = origins
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev"
}

// Validate rejects configurations that cannot run safely.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must be set")
	}
	if c.Uploads.WebRoot == "" {
		return errors.New("uploads web_root must be set")
	}
	if c.Backup.Hour < 0 || c.Backup.Hour > 23 || c.Backup.Minute < 0 || c.Backup.Minute > 59 {
		return errors.New("backup time must be a valid hour and minute")
	}
	if c.Session.Secret == "" {
		if !c.IsDev() {
			return errors.New("SESSION_SECRET must be set outside dev")
		}
		c.Session.Secret = "dev-only-session-secret-change-me"
	}
	return nil
}

// DSN returns the Postgres connection string, or the raw URL when set.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port,
	)
}
