// Package config provides file- and environment-based configuration.
//
// Settings resolve in three layers: built-in defaults, an optional
// YAML config file, then environment variables (highest precedence).
// A .env file in the working directory is folded into the environment
// before the env layer is read.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Upload UploadConfig `yaml:"upload"`

	// SecretKey signs sessions; nothing beyond the default uses it yet.
	SecretKey string `yaml:"secret_key"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout_seconds"`
	WriteTimeout int    `yaml:"write_timeout_seconds"`
	IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	BodyLimit    string `yaml:"body_limit"`
	EnableCORS   bool   `yaml:"enable_cors"`
}

// DataConfig controls where data files come from.
type DataConfig struct {
	// FilePath, when set, skips directory scanning and interactive
	// selection entirely.
	FilePath    string `yaml:"file_path"`
	Dir         string `yaml:"dir"`
	DefaultFile string `yaml:"default_file"`
}

// UploadConfig bounds the upload endpoint.
type UploadConfig struct {
	MaxSizeMB int `yaml:"max_size_mb"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8888,
			ReadTimeout:  30,
			WriteTimeout: 60,
			IdleTimeout:  120,
			BodyLimit:    "200M",
			EnableCORS:   true,
		},
		Data: DataConfig{
			Dir:         "/data",
			DefaultFile: "sample_data.csv",
		},
		Upload: UploadConfig{
			MaxSizeMB: 100,
		},
		SecretKey: "dev-secret-key-change-in-production",
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (ignored when absent), and environment variables.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case; real env vars still apply.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATA_FILE_PATH"); v != "" {
		c.Data.FilePath = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("PYGWALKER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("PYGWALKER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil {
			c.Upload.MaxSizeMB = mb
		}
	}
}

// Addr returns the host:port bind address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DefaultFilePath returns the fallback data file location inside the
// data directory.
func (c *Config) DefaultFilePath() string {
	return filepath.Join(c.Data.Dir, c.Data.DefaultFile)
}
