// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"chunkatlas/internal/domain/grid"
)

type Config struct {
	ListenAddr string    `yaml:"listen_addr"`
	Horizon    int       `yaml:"horizon"`
	Database   Database  `yaml:"database"`
	Artifacts  Artifacts `yaml:"artifacts"`
}

type Database struct {
	// DSN empty selects the in-memory repositories.
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type Artifacts struct {
	// Backend is "fs" or "minio".
	Backend string `yaml:"backend"`
	// Dir is the root of the fs backend.
	Dir   string `yaml:"dir"`
	MinIO MinIO  `yaml:"minio"`
}

type MinIO struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Horizon:    grid.DefaultHorizon,
		Database:   Database{MigrationsDir: "./migrations"},
		Artifacts:  Artifacts{Backend: "fs", Dir: "./artifacts"},
	}
}

// Load reads the YAML file at path (skipped when path is empty), then applies
// CHUNKATLAS_* environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.ListenAddr = strEnv("CHUNKATLAS_LISTEN_ADDR", cfg.ListenAddr)
	cfg.Horizon = intEnv("CHUNKATLAS_HORIZON", cfg.Horizon)
	cfg.Database.DSN = strEnv("CHUNKATLAS_DB_DSN", cfg.Database.DSN)
	cfg.Database.MigrationsDir = strEnv("CHUNKATLAS_MIGRATIONS_DIR", cfg.Database.MigrationsDir)
	cfg.Artifacts.Backend = strEnv("CHUNKATLAS_ARTIFACTS_BACKEND", cfg.Artifacts.Backend)
	cfg.Artifacts.Dir = strEnv("CHUNKATLAS_ARTIFACTS_DIR", cfg.Artifacts.Dir)
	cfg.Artifacts.MinIO.Endpoint = strEnv("CHUNKATLAS_MINIO_ENDPOINT", cfg.Artifacts.MinIO.Endpoint)
	cfg.Artifacts.MinIO.AccessKey = strEnv("CHUNKATLAS_MINIO_ACCESS_KEY", cfg.Artifacts.MinIO.AccessKey)
	cfg.Artifacts.MinIO.SecretKey = strEnv("CHUNKATLAS_MINIO_SECRET_KEY", cfg.Artifacts.MinIO.SecretKey)
	cfg.Artifacts.MinIO.Bucket = strEnv("CHUNKATLAS_MINIO_BUCKET", cfg.Artifacts.MinIO.Bucket)
	cfg.Artifacts.MinIO.UseSSL = boolEnv("CHUNKATLAS_MINIO_USE_SSL", cfg.Artifacts.MinIO.UseSSL)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", c.Horizon)
	}
	switch c.Artifacts.Backend {
	case "fs", "minio":
	default:
		return fmt.Errorf("unknown artifacts backend %q", c.Artifacts.Backend)
	}
	if c.Artifacts.Backend == "minio" && c.Artifacts.MinIO.Endpoint == "" {
		return fmt.Errorf("minio backend requires an endpoint")
	}
	return nil
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
