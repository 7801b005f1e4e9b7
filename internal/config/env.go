package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const envConfigPath = "LEETMETRICS_CONFIG_PATH"

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string) error
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  envConfigPath,
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) error { return nil }, // Special case, no-op
	},
	{
		name:  "LEETMETRICS_CONFIG_API_SOURCE",
		desc:  "Sets where statistics are fetched from.  One of `rest` or `graphql`.  Default: rest",
		apply: func(c *Config, s string) error { c.API.Source = s; return nil },
	},
	{
		name:  "LEETMETRICS_CONFIG_API_STATS_URL",
		desc:  "Sets the base URL of the REST stats API.  The username is appended as a path segment",
		apply: func(c *Config, s string) error { c.API.StatsURL = s; return nil },
	},
	{
		name:  "LEETMETRICS_CONFIG_API_GRAPHQL_URL",
		desc:  "Sets the GraphQL endpoint used when the source is `graphql`",
		apply: func(c *Config, s string) error { c.API.GraphQLURL = s; return nil },
	},
	{
		name:  "LEETMETRICS_CONFIG_API_TIMEOUT",
		desc:  "Sets how long a lookup may take before it is abandoned, e.g. `30s`.  Default: 30s",
		apply: durationSetter(func(c *Config) *time.Duration { return &c.API.Timeout }),
	},
	{
		name:  "LEETMETRICS_CONFIG_ANIMATION_IDLE_PERIOD",
		desc:  "Sets the length of one idle pulse cycle.  Default: 1.5s",
		apply: durationSetter(func(c *Config) *time.Duration { return &c.Animation.IdlePeriod }),
	},
	{
		name:  "LEETMETRICS_CONFIG_ANIMATION_SETTLE_DURATION",
		desc:  "Sets how long an indicator takes to settle on its value.  Default: 1s",
		apply: durationSetter(func(c *Config) *time.Duration { return &c.Animation.SettleDuration }),
	},
	{
		name:  "LEETMETRICS_CONFIG_ANIMATION_SETTLE_DELAY",
		desc:  "Sets how long an indicator holds before it starts to settle, e.g. `0s`.  Default: 100ms",
		apply: durationSetter(func(c *Config) *time.Duration { return &c.Animation.SettleDelay }),
	},
	{
		name:  "LEETMETRICS_CONFIG_ANIMATION_FRAME_RATE",
		desc:  "Sets the number of animation frames per second.  Default: 60",
		apply: intSetter(func(c *Config) *int { return &c.Animation.FrameRate }),
	},
	{
		name:  "LEETMETRICS_CONFIG_UI_DEFAULT_USERNAME",
		desc:  "Prefills the username input.  Default: None",
		apply: func(c *Config, s string) error { c.UI.DefaultUsername = s; return nil },
	},
	{
		name:  "LEETMETRICS_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: trace, debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) error { c.Logging.Level = s; return nil },
	},
	{
		name:  "LEETMETRICS_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) error { c.Logging.FilePath = s; return nil },
	},
}

func durationSetter(field func(*Config) *time.Duration) func(*Config, string) error {
	return func(c *Config, s string) error {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*field(c) = d
		return nil
	}
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func applyEnvVarOverrides(c *Config) error {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			if err := envVar.apply(c, value); err != nil {
				return fmt.Errorf("invalid value %q for %s: %w", value, envVar.name, err)
			}
		}
	}
	return nil
}
