// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Engine groups the quoting parameters the decision engine runs with.
type Engine struct {
	StrategyMode  string  `yaml:"strategy_mode"`
	PositionLimit int     `yaml:"position_limit"`
	LayerSize     int     `yaml:"layer_size"`
	SkewTrigger   int     `yaml:"skew_trigger"`
	StableProduct string  `yaml:"stable_product"`
	StablePrice   int     `yaml:"stable_price"`
	Wavelet       Wavelet `yaml:"wavelet"`
}

// Wavelet tunes the optional fair-value denoising pass.
type Wavelet struct {
	Enabled    bool `yaml:"enabled"`
	WindowSize int  `yaml:"window_size"`
}

// Host selects where tick snapshots come from and how results leave.
type Host struct {
	Source     string   `yaml:"source"`      // stub, replay, or ws
	ReplayPath string   `yaml:"replay_path"` // JSONL snapshots for the replay source
	WSURL      string   `yaml:"ws_url"`      // simulator endpoint for the ws bridge
	Products   []string `yaml:"products"`    // products the stub source generates
	TickCount  int      `yaml:"tick_count"`  // stub session length, 0 for unbounded
	ResultPath string   `yaml:"result_path"` // JSONL destination for emitted orders
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App    App    `yaml:"app"`
	Engine Engine `yaml:"engine"`
	Host   Host   `yaml:"host"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
