package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	APIKey      string `yaml:"api_key"`
	APIURL      string `yaml:"api_url"`
	NotesDir    string `yaml:"notes_dir"`
	NotePattern string `yaml:"note_pattern"`
	CacheDir    string `yaml:"cache_dir"`
	Schedule    string `yaml:"schedule"`
	RunOnStart  bool   `yaml:"run_on_start"`
	MaxRows     int    `yaml:"max_rows"`
	LogLevel    string `yaml:"log_level"`
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

func setDefaults(cfg *Config) {
	if cfg.Schedule == "" {
		cfg.Schedule = "*/15 * * * *"
	}
	if cfg.NotePattern == "" {
		cfg.NotePattern = "{date}.md"
	}
	if cfg.CacheDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			cfg.CacheDir = filepath.Join(base, "waka-box")
		} else {
			cfg.CacheDir = ".waka-box-cache"
		}
	}
	if cfg.MaxRows == 0 {
		cfg.MaxRows = 6
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func validate(cfg *Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("config: api_key is required (set WAKATIME_API_KEY env var)")
	}
	if cfg.NotesDir == "" {
		return fmt.Errorf("config: notes_dir is required")
	}
	if !strings.Contains(cfg.NotePattern, "{date}") {
		return fmt.Errorf("config: note_pattern %q must contain {date}", cfg.NotePattern)
	}
	if cfg.MaxRows < 0 {
		return fmt.Errorf("config: max_rows must not be negative")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unsupported log_level %q (supported: debug, info, warn, error)", cfg.LogLevel)
	}
	return nil
}

// Load reads the config file, expands environment variables, applies defaults,
// and validates the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Today returns the local date in the normalized form used as request,
// cache, and note key.
func Today() string {
	return time.Now().Format("2006-01-02")
}
