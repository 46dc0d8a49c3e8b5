// Package config loads crewcast.yaml and resolves it against built-in
// defaults. Environment variables are referenced with {{.VAR}} template
// syntax inside the YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidYAML    = errors.New("invalid YAML")
)

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StagesConfig contains stage execution settings shared by all handlers.
type StagesConfig struct {
	// DryRun makes every handler go through the motions without touching
	// external systems. Pipelines still advance normally.
	DryRun bool `yaml:"dry_run"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Server *ServerConfig `yaml:"server"`
	Queue  *QueueConfig  `yaml:"queue"`
	Stages *StagesConfig `yaml:"stages"`
}

// Initialize loads, resolves, and returns ready-to-use configuration.
// A missing file is not an error: built-in defaults apply.
func Initialize(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	data = ExpandEnv(data)

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	mergeConfig(cfg, &loaded)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration initialized",
		"path", path,
		"worker_count", cfg.Queue.WorkerCount,
		"dry_run", cfg.Stages.DryRun)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{Host: "0.0.0.0", Port: 8080},
		Queue:  DefaultQueueConfig(),
		Stages: &StagesConfig{},
	}
}

// mergeConfig overlays non-zero loaded values onto the defaults.
func mergeConfig(dst, src *Config) {
	if src.Server != nil {
		if src.Server.Host != "" {
			dst.Server.Host = src.Server.Host
		}
		if src.Server.Port != 0 {
			dst.Server.Port = src.Server.Port
		}
	}
	if src.Queue != nil {
		q, d := src.Queue, dst.Queue
		if q.WorkerCount != 0 {
			d.WorkerCount = q.WorkerCount
		}
		if q.PollInterval != 0 {
			d.PollInterval = q.PollInterval
		}
		if q.PollIntervalJitter != 0 {
			d.PollIntervalJitter = q.PollIntervalJitter
		}
		if q.StageTimeout != 0 {
			d.StageTimeout = q.StageTimeout
		}
		if q.GracefulShutdownTimeout != 0 {
			d.GracefulShutdownTimeout = q.GracefulShutdownTimeout
		}
		if q.ReaperInterval != 0 {
			d.ReaperInterval = q.ReaperInterval
		}
		if q.ClaimTimeout != 0 {
			d.ClaimTimeout = q.ClaimTimeout
		}
		if q.StuckThreshold != 0 {
			d.StuckThreshold = q.StuckThreshold
		}
	}
	if src.Stages != nil {
		dst.Stages.DryRun = src.Stages.DryRun
	}
}

func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 0 {
		return fmt.Errorf("queue.worker_count must be non-negative, got %d", cfg.Queue.WorkerCount)
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.Queue.StuckThreshold < cfg.Queue.StageTimeout {
		return fmt.Errorf("queue.stuck_threshold (%v) must be at least queue.stage_timeout (%v)",
			cfg.Queue.StuckThreshold, cfg.Queue.StageTimeout)
	}
	return nil
}
