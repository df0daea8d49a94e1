package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Backup  BackupConfig
	View    ViewConfig
	Debug   bool
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StorageConfig locates the JSON data files.
type StorageConfig struct {
	DataDir string
}

// BackupConfig holds scheduled snapshot settings.
type BackupConfig struct {
	Dir          string
	CronSchedule string
}

// ViewConfig holds listing defaults.
type ViewConfig struct {
	PageSize int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	pageSize, err := strconv.Atoi(getenvWithDefault("PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("PAGE_SIZE must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Storage: StorageConfig{
			DataDir: getenvWithDefault("DATA_DIR", "data"),
		},
		Backup: BackupConfig{
			Dir:          getenvWithDefault("BACKUP_DIR", "data/backups"),
			CronSchedule: getenvWithDefault("BACKUP_CRON_SCHEDULE", "0 21 * * *"),
		},
		View: ViewConfig{
			PageSize: pageSize,
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Storage.DataDir == "" {
		return errors.New("DATA_DIR must be provided")
	}

	if c.Backup.Dir == "" {
		return errors.New("BACKUP_DIR must be provided")
	}

	if c.Backup.CronSchedule == "" {
		return errors.New("BACKUP_CRON_SCHEDULE must be provided")
	}

	if c.View.PageSize <= 0 {
		return errors.New("PAGE_SIZE must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
