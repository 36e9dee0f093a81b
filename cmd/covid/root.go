package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/j-veylop/covid-tracker/internal/app"
	"github.com/j-veylop/covid-tracker/internal/config"
	"github.com/j-veylop/covid-tracker/internal/logger"
	"github.com/j-veylop/covid-tracker/internal/normalize"
	"github.com/j-veylop/covid-tracker/internal/services"
	"github.com/j-veylop/covid-tracker/internal/ui/output"
	"github.com/j-veylop/covid-tracker/internal/ui/styles"
	"github.com/j-veylop/covid-tracker/internal/ui/terminal"
	"github.com/j-veylop/covid-tracker/internal/version"
)

type options struct {
	countries string
	source    string
	logLevel  string
	timeout   time.Duration
	width     int
	noColor   bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "covid [country...]",
		Short: "Live COVID-19 statistics for the countries you watch",
		Long: `Fetches the live statistics table, picks out the requested countries and
prints them ranked by total cases, centered in the terminal.

Countries can be given as arguments, with --countries, via TRACKER_COUNTRIES,
or interactively. Common aliases are understood (us, uk, south korea, ...).

Environment Variables:
  TRACKER_URL          Statistics page URL or saved HTML file
  TRACKER_COUNTRIES    Comma separated countries, skips the prompt
  TRACKER_TIMEOUT      Fetch timeout (default: 30s)
  TRACKER_WIDTH        Output width, 0 detects the terminal
  TRACKER_LOG_LEVEL    debug, info, warn or error (default: warn)
  NO_COLOR             Disable colors`,
		Version:       version.Info(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.countries, "countries", "c", "", "comma separated countries to show")
	flags.StringVar(&opts.source, "url", "", "statistics page URL or local HTML file")
	flags.DurationVar(&opts.timeout, "timeout", 0, "fetch timeout")
	flags.IntVar(&opts.width, "width", 0, "output width, 0 detects the terminal")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.verbose, "verbose", false, "shorthand for --log-level debug")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg, opts, args)

	level := logger.ParseLevel(cfg.LogLevel)
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger.SetLevel(level)

	targets, err := resolveTargets(cmd, cfg.Countries)
	if errors.Is(err, app.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("targets resolved", "countries", targets)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	width := cfg.Width
	if width == 0 {
		width = terminal.Width(os.Stdout)
	}

	fetcher := services.NewSourceFetcher(cfg.Timeout, userAgent(cfg.UserAgent))
	tracker := services.NewTracker(fetcher)

	rep, err := tracker.Run(ctx, cfg.Source, targets, width)
	if err != nil {
		return err
	}

	mode := styles.ColorAuto
	if cfg.NoColor {
		mode = styles.ColorNever
	}
	return output.NewWriter(cmd.OutOrStdout(), mode).Write(rep)
}

// userAgent versions the default product name; a custom agent is sent as is.
func userAgent(configured string) string {
	if configured == config.DefaultUserAgent {
		return version.UserAgent(configured)
	}
	return configured
}

// applyFlags lets explicitly set flags and positional countries override
// the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options, args []string) {
	flags := cmd.Flags()
	if flags.Changed("countries") {
		cfg.Countries = opts.countries
	}
	if len(args) > 0 {
		cfg.Countries = strings.Join(args, ",")
	}
	if flags.Changed("url") {
		cfg.Source = opts.source
	}
	if flags.Changed("timeout") && opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("width") && opts.width >= 0 {
		cfg.Width = opts.width
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

// resolveTargets uses the configured countries when they name anything,
// otherwise it asks: interactively on a terminal, line by line elsewhere.
func resolveTargets(cmd *cobra.Command, countries string) ([]string, error) {
	if strings.TrimSpace(countries) != "" {
		if targets := normalize.ParseQuery(countries); len(targets) > 0 {
			return targets, nil
		}
		logger.Warn("no usable countries configured, asking instead", "countries", countries)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && terminal.IsTerminal(f) {
		return app.Ask(f, promptOutput(cmd))
	}
	return app.AskLines(in, promptOutput(cmd))
}

// promptOutput keeps prompt text off stdout so the report can be piped.
func promptOutput(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}
