package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// QueueConfig contains worker pool and reaper configuration.
// These values control how stages are polled, claimed, and executed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls the ready set and runs one stage
	// at a time, so it also bounds this pod's concurrency.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking the ready set.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// StageTimeout is the maximum time a single stage execution may take.
	StageTimeout time.Duration `yaml:"stage_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight stages
	// to finish during shutdown. Should match StageTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// ReaperInterval is how often to scan for stuck stages.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// ClaimTimeout is how long a stage may sit in CLAIMED without starting
	// before the reaper fails it.
	ClaimTimeout time.Duration `yaml:"claim_timeout"`

	// StuckThreshold is how long a RUNNING stage may run before the reaper
	// fails it. Must exceed StageTimeout so workers get to report first.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`
}

// UnmarshalYAML decodes duration fields from strings like "500ms" or "10m".
// yaml.v3 has no native duration support, so intervals go through an aux
// struct and time.ParseDuration.
func (c *QueueConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		WorkerCount             int    `yaml:"worker_count"`
		PollInterval            string `yaml:"poll_interval"`
		PollIntervalJitter      string `yaml:"poll_interval_jitter"`
		StageTimeout            string `yaml:"stage_timeout"`
		GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout"`
		ReaperInterval          string `yaml:"reaper_interval"`
		ClaimTimeout            string `yaml:"claim_timeout"`
		StuckThreshold          string `yaml:"stuck_threshold"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.WorkerCount = aux.WorkerCount
	for _, f := range []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"poll_interval", aux.PollInterval, &c.PollInterval},
		{"poll_interval_jitter", aux.PollIntervalJitter, &c.PollIntervalJitter},
		{"stage_timeout", aux.StageTimeout, &c.StageTimeout},
		{"graceful_shutdown_timeout", aux.GracefulShutdownTimeout, &c.GracefulShutdownTimeout},
		{"reaper_interval", aux.ReaperInterval, &c.ReaperInterval},
		{"claim_timeout", aux.ClaimTimeout, &c.ClaimTimeout},
		{"stuck_threshold", aux.StuckThreshold, &c.StuckThreshold},
	} {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return fmt.Errorf("queue.%s: %w", f.name, err)
		}
		*f.dst = d
	}
	return nil
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		StageTimeout:            10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		ReaperInterval:          1 * time.Minute,
		ClaimTimeout:            2 * time.Minute,
		StuckThreshold:          15 * time.Minute,
	}
}
