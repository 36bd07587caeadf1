package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/octoseek/config"
	"github.com/s0up4200/octoseek/github"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *github.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags shared by the query commands
	token      string
	perPage    int
	outputFile string
	filterExpr string
	sortField  string
	order      string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "octoseek",
	Short: "Query GitHub users and repositories from the command line",
	Long: `octoseek is a CLI for the GitHub REST API. It lists and searches
users and repositories, fetches per-user details, narrows results with
client-side filter expressions and exports them as JSON.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information injected by the linker
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub API token (overrides config and GITHUB_TOKEN)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override token from command line if specified
	if token != "" {
		cfg.GitHub.Token = token
	}

	// Create GitHub client
	client, err = github.NewClient(cfg.GitHub.Token, logger,
		github.WithBaseURL(cfg.GitHub.BaseURL),
	)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	if cfg.GitHub.Token == "" {
		logger.Debug().Msg("No API token configured, unauthenticated rate limit applies")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only on a real terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// effectivePerPage resolves the per-page flag against the config default
func effectivePerPage() int {
	if perPage > 0 {
		return perPage
	}
	return cfg.Search.PerPage
}

// effectiveOrder resolves the order flag against the config default
func effectiveOrder() string {
	if order != "" {
		return order
	}
	return cfg.Search.Order
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
