package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nicolagi/todostate"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type config struct {
	LogLevel  string          `yaml:"log_level"`
	UserID    string          `yaml:"user_id"`
	Directory directoryConfig `yaml:"directory"`
}

type directoryConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"`
	Burst     int           `yaml:"burst"`
	WireLog   string        `yaml:"wire_log"`
}

func defaultConfig() config {
	return config{
		LogLevel: "info",
		UserID:   todostate.DefaultUserID,
		Directory: directoryConfig{
			Endpoint: todostate.DefaultEndpoint,
			Timeout:  10 * time.Second,
			Burst:    1,
		},
	}
}

// loadConfig reads the configuration at pathname, falling back to the defaults if the file doesn't exist.
func loadConfig(pathname string) (*config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(pathname)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for settings explicitly left empty.
func (c *config) applyDefaults() {
	defaults := defaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.UserID == "" {
		c.UserID = defaults.UserID
	}
	if c.Directory.Endpoint == "" {
		c.Directory.Endpoint = defaults.Directory.Endpoint
	}
	if c.Directory.Burst == 0 {
		c.Directory.Burst = defaults.Directory.Burst
	}
}

func (c *config) validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Directory.Timeout < 0 {
		return fmt.Errorf("negative directory timeout %v", c.Directory.Timeout)
	}
	if c.Directory.RateLimit < 0 {
		return fmt.Errorf("negative directory rate limit %v", c.Directory.RateLimit)
	}
	if c.Directory.Burst < 0 {
		return fmt.Errorf("negative directory burst %d", c.Directory.Burst)
	}
	return nil
}

func (c *config) directoryOptions() []todostate.DirectoryOption {
	opts := []todostate.DirectoryOption{
		todostate.WithEndpoint(c.Directory.Endpoint),
		todostate.WithTimeout(c.Directory.Timeout),
	}
	if c.Directory.RateLimit > 0 {
		opts = append(opts, todostate.WithRateLimit(rate.Limit(c.Directory.RateLimit), c.Directory.Burst))
	}
	if c.Directory.WireLog != "" {
		opts = append(opts, todostate.WithWireLog(c.Directory.WireLog))
	}
	return opts
}

type todoEntry struct {
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
}

// loadTodos adds the entries of the YAML todo file at pathname to the state, in file order.
func loadTodos(st *todostate.State, pathname string) error {
	data, err := os.ReadFile(pathname)
	if err != nil {
		return fmt.Errorf("read todo file: %w", err)
	}
	var entries []todoEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse todo file: %w", err)
	}
	for _, e := range entries {
		item := st.AddItem(e.Text)
		if e.Completed {
			if err := st.ToggleItem(item.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
