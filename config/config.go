// Package config resolves dashboard settings from defaults, an optional
// YAML file next to the executable, and environment overrides, in that
// order.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Source string

const (
	SourceFile Source = "file"
	SourceLive Source = "live"
)

const (
	defaultPort       = 8080
	defaultQuestionID = 23387
	defaultDataFile   = "forecast_data.csv"
	configFileName    = "dashboard.yaml"
)

type Config struct {
	Port       int    `yaml:"port"`
	Source     Source `yaml:"source"`
	DataPath   string `yaml:"data_path"`
	QuestionID int64  `yaml:"question_id"`
	Scheme     string `yaml:"scheme"`
	LogLevel   string `yaml:"log_level"`
}

func Default() *Config {
	dir := executableDir()
	return &Config{
		Port:       defaultPort,
		Source:     SourceFile,
		DataPath:   filepath.Join(dir, defaultDataFile),
		QuestionID: defaultQuestionID,
		LogLevel:   "info",
	}
}

// Load resolves the effective configuration.
func Load() (*Config, error) {
	path := os.Getenv("DASHBOARD_CONFIG")
	if path == "" {
		path = filepath.Join(executableDir(), configFileName)
	}
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config file %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}

	if cfg.Source != SourceFile && cfg.Source != SourceLive {
		return nil, errors.Errorf("unknown source %q, want %q or %q", cfg.Source, SourceFile, SourceLive)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.Errorf("port %d out of range", cfg.Port)
	}

	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "parsing PORT")
		}
		cfg.Port = port
	}
	if v := getenv("DASHBOARD_SOURCE"); v != "" {
		cfg.Source = Source(v)
	}
	if v := getenv("DASHBOARD_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := getenv("DASHBOARD_QUESTION_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parsing DASHBOARD_QUESTION_ID")
		}
		cfg.QuestionID = id
	}
	if v := getenv("DASHBOARD_SCHEME"); v != "" {
		cfg.Scheme = v
	}
	if v := getenv("DASHBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
