package config

import (
	"dario.cat/mergo"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	SourceREST    = "rest"
	SourceGraphQL = "graphql"
)

// Config represents the application configuration
type Config struct {
	API       APIConfig       `yaml:"api,omitempty"`
	Animation AnimationConfig `yaml:"animation,omitempty"`
	UI        UIConfig        `yaml:"ui,omitempty"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
}

// APIConfig controls where statistics are fetched from
type APIConfig struct {
	Source     string        `yaml:"source,omitempty" validate:"oneof=rest graphql"` // "rest", "graphql"
	StatsURL   string        `yaml:"stats_url,omitempty" validate:"required,url"`
	GraphQLURL string        `yaml:"graphql_url,omitempty" validate:"required,url"`
	Timeout    time.Duration `yaml:"timeout,omitempty" validate:"gt=0"`
}

// AnimationConfig contains the timings of the progress indicator animations
type AnimationConfig struct {
	IdlePeriod     time.Duration `yaml:"idle_period,omitempty" validate:"gt=0"`
	SettleDuration time.Duration `yaml:"settle_duration,omitempty" validate:"gte=0"`
	SettleDelay    time.Duration `yaml:"settle_delay,omitempty" validate:"gte=0"`
	FrameRate      int           `yaml:"frame_rate,omitempty" validate:"min=1,max=240"`
}

// UIConfig contains UI display preferences
type UIConfig struct {
	DefaultUsername string `yaml:"default_username,omitempty"`
	HistorySize     int    `yaml:"history_size,omitempty" validate:"min=0,max=100"`
}

// LoggingConfig contains log related settings
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	FilePath   string `yaml:"file_path,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" validate:"min=0"`
	MaxBackups int    `yaml:"max_backups,omitempty" validate:"min=0"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty" validate:"min=0"`
}

// FrameInterval is the time between two animation frames at the configured frame rate
func (c AnimationConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Load builds a configuration struct from multiple sources using these steps:
// 1. Create a base config with default values
// 2. If no config file exists on disk, save the default config to that location
// 3. Apply 'dynamic' properties.  Dynamic properties are those that are determined at runtime, for example log file location which is different per OS.
// 4. Load & merge the config file, overwriting any defaults with user-specified values
// 5. Apply environment variable overrides
// 6. Validate the result
func Load() (*Config, error) {
	// 1. Start with base defaults
	cfg := createBaseDefaultConfig()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to determine config file path: %w", err)
	}

	// 2. If no config file exists on disk, then write a default one
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		// If there is an error saving the default config, then still let the application startup using the defaults.
		_ = save(cfg, configPath)
	}

	// 3. Apply dynamic defaults if necessary
	applyDynamicDefaults(cfg)

	// 4. Load the config from disk and merge it into the base defaults
	fileConfig, err := loadFromDisk(configPath)
	if err != nil {
		return nil, err
	}
	// Overrides the config with any values coming from the loaded file
	if err = mergo.Merge(cfg, fileConfig, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging config loaded from disk: %w", err)
	}

	// 5. Apply the environment variable overrides which take precedence
	if err = applyEnvVarOverrides(cfg); err != nil {
		return nil, err
	}

	// 6. Reject anything the rest of the application cannot work with
	if err = validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDynamicDefaults sets runtime-determined default values for any properties that haven't been explicitly configured.
// Unlike static defaults, these values might change between runs based on the environment or system configuration.
func applyDynamicDefaults(cfg *Config) {
	cfg.Logging.FilePath = defaultLogFilePath()
}

// loadFromDisk loads the YAML config from disk and returns the unmarshalled Config
func loadFromDisk(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

func save(cfg *Config, configPath string) error {
	// Create config dir if not exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// UpdateConfig reads the existing config, applies the update function, and saves it back to disk
func UpdateConfig(updateFn func(*Config)) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("unable to determine config file path: %w", err)
	}

	cfg, err := loadFromDisk(configPath)
	if err != nil {
		return fmt.Errorf("error loading config file from disk: %w", err)
	}

	// Apply the updates
	updateFn(cfg)

	return save(cfg, configPath)
}

// SetPath points Load and UpdateConfig at a specific config file, as if LEETMETRICS_CONFIG_PATH had been set.
// Used by the --config flag.
func SetPath(path string) error {
	if path == "" {
		return nil
	}
	return os.Setenv(envConfigPath, path)
}

// getConfigPath returns the path to the config file.  Uses the environment variable override if present, else tries
// to use OS config location defaults.
func getConfigPath() (string, error) {
	configPath := os.Getenv(envConfigPath)
	if configPath != "" {
		return configPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "leetmetrics", "config.yaml"), nil
}

// createBaseDefaultConfig creates a config with all default values
func createBaseDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Source:     SourceREST,
			StatsURL:   "https://leetcode-stats-api.herokuapp.com",
			GraphQLURL: "https://leetcode.com/graphql",
			Timeout:    30 * time.Second,
		},
		Animation: AnimationConfig{
			IdlePeriod:     1500 * time.Millisecond,
			SettleDuration: 1000 * time.Millisecond,
			SettleDelay:    100 * time.Millisecond,
			FrameRate:      60,
		},
		UI: UIConfig{
			HistorySize: 10,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// defaultLogFilePath returns the path to the log file.  Tries to use expected OS location defaults.
func defaultLogFilePath() string {
	var basePath string
	homedir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to logging in the current directory if home directory cannot be determined
		return filepath.Join(".", "leetmetrics.log")
	}

	switch runtime.GOOS {
	case "windows":
		// Windows:  %LOCALAPPDATA%\leetmetrics\logs
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			basePath = filepath.Join(appData, "leetmetrics", "logs")
		} else {
			basePath = filepath.Join(homedir, "AppData", "local", "leetmetrics", "logs")
		}
	case "darwin":
		// macOS:  ~/Library/Logs/leetmetrics
		basePath = filepath.Join(homedir, "Library", "Logs", "leetmetrics")
	default:
		// Linux/BSD:  XDG_STATE_HOME
		if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
			basePath = filepath.Join(xdgState, "leetmetrics", "logs")
		} else {
			basePath = filepath.Join(homedir, ".local", "state", "leetmetrics", "logs")
		}
	}

	err = os.MkdirAll(basePath, 0700)
	if err != nil {
		// If we failed to create the directory, fallback to logging in the current directory
		return filepath.Join(".", "leetmetrics.log")
	}
	return filepath.Join(basePath, "leetmetrics.log")
}
