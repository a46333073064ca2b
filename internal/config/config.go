package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataConfig locates the JSON data files and the activity database.
type DataConfig struct {
	Dir        string `yaml:"dir"`
	ActivityDB string `yaml:"activity_db"`
}

type AuthConfig struct {
	Secret    string        `yaml:"secret"`
	Issuer    string        `yaml:"issuer"`
	AccessTTL time.Duration `yaml:"access_ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Data: DataConfig{
			Dir:        "data",
			ActivityDB: "carehub.db",
		},
		Auth: AuthConfig{
			Issuer:    "carehub",
			AccessTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("CAREHUB_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("CAREHUB_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("CAREHUB_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CAREHUB_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dir := os.Getenv("CAREHUB_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if dbPath := os.Getenv("CAREHUB_ACTIVITY_DB"); dbPath != "" {
		cfg.Data.ActivityDB = dbPath
	}
	if secret := os.Getenv("CAREHUB_AUTH_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if level := os.Getenv("CAREHUB_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if len(cfg.Auth.Secret) < 32 {
		return Config{}, fmt.Errorf("CAREHUB_AUTH_SECRET must be at least 32 characters")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
