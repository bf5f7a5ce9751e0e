package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edurealm/projects-backend/internal/platform/envutil"
)

// DatabaseConfig holds the postgres connection parts.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN renders the keyword/value connection string gorm's postgres driver takes.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type Config struct {
	LogMode  string         `yaml:"log_mode"`
	Database DatabaseConfig `yaml:"database"`
}

func defaultConfig() Config {
	return Config{
		LogMode: "development",
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "projects",
			SSLMode: "disable",
		},
	}
}

// LoadConfig reads the yaml file at path when it exists and then applies
// environment overrides on top. An empty path skips the file entirely.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.Database.Host = envutil.String("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = envutil.Int("DB_PORT", cfg.Database.Port)
	cfg.Database.User = envutil.String("DB_USER", cfg.Database.User)
	cfg.Database.Password = envutil.String("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = envutil.String("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = envutil.String("DB_SSLMODE", cfg.Database.SSLMode)
	return cfg, nil
}
