package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/monitorr/internal/config"
	"github.com/vmunix/monitorr/internal/radarr"
	"github.com/vmunix/monitorr/internal/reconcile"
)

var version = "dev"

type rootOptions struct {
	configPath string
	debug      bool
	printOnly  bool
	host       string
	port       string
	apiKey     string
	urlBase    string
	pathPrefix string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "monitorr",
		Short: "Sync Radarr monitored flags with download state",
		Long: `monitorr - movie un-monitor-or for Radarr

Unmonitors every movie Radarr lists as downloaded and monitors every
movie it does not. Movies already in that state are left alone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReconcile(cmd, opts)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.BoolVarP(&opts.debug, "debug", "D", false, "Set debug log level (default info)")
	flags.BoolVarP(&opts.printOnly, "print-only", "?", false, "Print what would change, but don't change it")
	flags.StringVar(&opts.host, "host", defaults.Radarr.Host, "Radarr host")
	flags.StringVarP(&opts.port, "port", "p", strconv.Itoa(defaults.Radarr.Port), "Radarr port (1-65535)")
	flags.StringVarP(&opts.apiKey, "api-key", "a", "", "Radarr API key (required unless set in the config file)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Optional TOML config file")
	flags.StringVar(&opts.urlBase, "url-base", defaults.Radarr.URLBase, "Path Radarr is served under")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout (0 for none)")
	flags.StringVar(&opts.pathPrefix, "path-prefix", defaults.Reconcile.PathPrefix, "Prefix stripped from movie paths in debug output")

	cmd.AddCommand(newInitCmd())

	cmd.Version = version
	cmd.SetVersionTemplate("monitorr {{.Version}}\n")
	return cmd
}

// loadConfig merges the optional config file with explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Radarr.Host = opts.host
	}
	if flags.Changed("port") {
		port, err := strconv.Atoi(strings.TrimSpace(opts.port))
		if err != nil {
			return nil, &config.ConfigError{
				Path:   opts.configPath,
				Errors: []string{fmt.Sprintf("radarr.port: must be a number, got %q", opts.port)},
			}
		}
		cfg.Radarr.Port = port
	}
	if flags.Changed("api-key") {
		cfg.Radarr.APIKey = opts.apiKey
	}
	if flags.Changed("url-base") {
		cfg.Radarr.URLBase = opts.urlBase
	}
	if flags.Changed("timeout") {
		cfg.Radarr.Timeout = opts.timeout
	}
	if flags.Changed("path-prefix") {
		cfg.Reconcile.PathPrefix = opts.pathPrefix
	}
	if opts.printOnly {
		cfg.Reconcile.PrintOnly = true
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Check(opts.configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runReconcile(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)

	client := radarr.New(radarr.Config{
		BaseURL: cfg.BaseURL(),
		URLBase: cfg.Radarr.URLBase,
		APIKey:  cfg.Radarr.APIKey,
		Timeout: cfg.Radarr.Timeout,
	}, logger)
	logger.Debug("starting reconcile",
		"endpoint", client.Endpoint(),
		"print_only", cfg.Reconcile.PrintOnly)

	rec := reconcile.New(client, reconcile.Options{
		PrintOnly:  cfg.Reconcile.PrintOnly,
		PathPrefix: cfg.Reconcile.PathPrefix,
	}, logger)

	res, err := rec.Run(cmd.Context())
	if err != nil {
		// Interrupted by the operator: every write so far is already applied.
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if res != nil {
			logger.Error("reconcile aborted",
				"checked", res.Checked,
				"updated", res.Updated)
		}
		return err
	}

	if cfg.Reconcile.PrintOnly && len(res.Changes) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderChanges(res.Changes))
	}

	logger.Info("reconcile complete",
		"checked", res.Checked,
		"changes", len(res.Changes),
		"updated", res.Updated,
		"print_only", cfg.Reconcile.PrintOnly)
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     parseLogLevel(level),
		AddSource: true,
	}))
}
