package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/PizzaHomicide/leetmetrics/internal/config"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"github.com/PizzaHomicide/leetmetrics/internal/repository/leetcode"
	"github.com/PizzaHomicide/leetmetrics/internal/service"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/plain"
	"github.com/PizzaHomicide/leetmetrics/internal/ui/tui"
	"github.com/PizzaHomicide/leetmetrics/internal/version"
	"github.com/spf13/cobra"
)

type options struct {
	username   string
	plain      bool
	remember   bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "leetmetrics",
		Short: "Terminal dashboard for LeetCode progress",
		Long: `leetmetrics shows how many easy, medium and hard LeetCode problems a user has solved,
along with their acceptance rate, ranking, contribution points and reputation.

Example usage:
  leetmetrics                      # Open the dashboard
  leetmetrics -u octocat           # Open the dashboard and look up octocat straight away
  leetmetrics -u octocat --plain   # Print octocat's stats without the interactive UI`,
		Version:       version.GetVersionInfo(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "username to look up on start")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the stats once instead of opening the dashboard")
	cmd.Flags().BoolVar(&opts.remember, "remember", false, "save --username as the default username in the config file")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is <user config dir>/leetmetrics/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if err := config.SetPath(opts.configPath); err != nil {
		return fmt.Errorf("failed to set config path: %w", err)
	}

	// It is unrecoverable if we cannot produce an application config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.New(log.Config{
		Level:      cfg.Logging.Level,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}
	defer logger.Close()

	// Set the default global logger
	log.SetDefaultLogger(logger)
	defer log.SetDefaultLogger(nil)

	log.Info("Starting up leetmetrics", "version", version.GetVersion(), "build_time", version.GetBuildTime(), "source", cfg.API.Source)

	repo, err := leetcode.NewRepository(cfg.API)
	if err != nil {
		return err
	}
	statsService := service.NewStatsService(repo, cfg.API.Timeout, service.NewHistory(cfg.UI.HistorySize))

	if opts.remember {
		if err := rememberUsername(cfg, opts.username); err != nil {
			return err
		}
	}

	if opts.plain {
		username := opts.username
		if username == "" {
			username = cfg.UI.DefaultUsername
		}
		if username == "" {
			return errors.New("--plain needs a username, pass --username or set ui.default_username")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return plain.Run(ctx, cfg, statsService, username, cmd.OutOrStdout())
	}

	if err := tui.Run(cfg, statsService, opts.username); err != nil {
		log.Error("Unhandled error while running TUI", "error", err)
		return err
	}

	log.Info("leetmetrics shutting down.  Goodbye!")
	return nil
}

// rememberUsername persists username as ui.default_username so the next start prefills it
func rememberUsername(cfg *config.Config, username string) error {
	if username == "" {
		return errors.New("--remember needs --username")
	}
	if err := service.ValidateUsername(username); err != nil {
		return fmt.Errorf("not remembering %q: %w", username, err)
	}

	err := config.UpdateConfig(func(c *config.Config) {
		c.UI.DefaultUsername = username
	})
	if err != nil {
		// The lookup can still go ahead, only the next start is affected
		log.Warn("Error saving default username to config", "error", err)
		return nil
	}

	cfg.UI.DefaultUsername = username
	log.Info("Saved default username", "username", username)
	return nil
}
