package config

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	TaskCount   int    `yaml:"task_count"`    // 10 (by default)
	MaxTaskSecs int64  `yaml:"max_task_secs"` // 10 (by default)
	Seed        int64  `yaml:"seed"`          // 0 = derive from wall clock
	LogLevel    string `yaml:"log_level"`     // "info" (by default)
	LogFormat   string `yaml:"log_format"`    // "text" or "json"
}

func defaultConfig() Config {
	return Config{
		TaskCount:   10,
		MaxTaskSecs: 10,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads YAML and overrides defaults; empty or missing path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.TaskCount <= 0 {
		cfg.TaskCount = 10
	}
	if cfg.MaxTaskSecs <= 0 {
		cfg.MaxTaskSecs = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return cfg
}
