package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/s0up4200/backlogr/config"
	"github.com/s0up4200/backlogr/plex"
	"github.com/s0up4200/backlogr/sonarr"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	plexClient   *plex.Client
	sonarrClient *sonarr.Client

	// Persistent flags
	plexHost  string
	plexPort  int
	plexToken string
	noColor   bool

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// SetVersion records build metadata injected via ldflags
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "backlogr",
	Short: "Report the unwatched-episode backlog of a Plex TV library",
	Long: `backlogr queries a Plex media server and prints the shows of a TV
library sorted by their unwatched-episode count, color-coded against
configurable warning and critical limits. Optionally enriches each row
with the show's monitored status from Sonarr.`,
	PersistentPreRunE: initializeApp,
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
	rootCmd.PersistentFlags().StringVar(&plexHost, "host", "localhost", "Plex server host")
	rootCmd.PersistentFlags().IntVar(&plexPort, "port", 32400, "Plex server port")
	rootCmd.PersistentFlags().StringVar(&plexToken, "token", "", "Plex access token (prompted if omitted)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Apply command line overrides
	if cmd.Flags().Changed("host") || cmd.Flags().Changed("port") {
		cfg.Plex.URL = fmt.Sprintf("http://%s:%d", plexHost, plexPort)
	}
	if cmd.Flags().Changed("token") {
		cfg.Plex.Token = plexToken
	}
	if cmd.Flags().Changed("no-color") {
		cfg.Output.Color = !noColor
	}
	applyThresholdOverrides(cmd)

	// Re-validate with overrides applied, before anything touches the network
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Solicit the token interactively when it was not supplied externally
	if cfg.Plex.Token == "" {
		token, err := promptToken()
		if err != nil {
			return err
		}
		cfg.Plex.Token = token
	}

	// Create Plex client
	plexClient, err = plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, logger)
	if err != nil {
		return err
	}

	// Create Sonarr client if enabled
	if cfg.Sonarr.Enabled {
		sonarrClient, err = sonarr.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to create Sonarr client, continuing without monitored status")
			sonarrClient = nil
		} else {
			logger.Info().Msg("Sonarr integration enabled")
		}
	}

	return nil
}

// promptToken reads the Plex token from the terminal without echoing it.
// The token lives in process memory only, it is never logged or persisted.
func promptToken() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", plex.ErrTokenRequired
	}

	fmt.Fprint(os.Stderr, "Plex token: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", plex.ErrTokenRequired
	}
	return token, nil
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// sectionsCmd represents the sections command
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the library sections on the Plex server",
	Long:  `List all library sections on the Plex server with their keys, marking the TV sections usable by the report command.`,
	RunE:  runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sections, err := plexClient.GetSections(ctx)
	if err != nil {
		return err
	}

	if len(sections) == 0 {
		fmt.Println("No library sections found.")
		return nil
	}

	fmt.Printf("\nLibrary sections (%d):\n", len(sections))
	for _, section := range sections {
		marker := " "
		if section.IsTV() {
			marker = "*"
		}
		fmt.Printf("  %s %s  %s (%s)\n", marker, section.Key, section.Title, section.Type)
	}
	fmt.Println("\n* TV section, usable with 'backlogr report'")

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the Plex server",
	Long:  `Test the connection to your Plex server and display basic library information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Plex at %s...\n", cfg.Plex.URL)

	// Connection is already tested during client creation
	fmt.Println("✓ Connection successful!")

	ctx := context.Background()
	sections, err := plexClient.GetSections(ctx)
	if err != nil {
		return err
	}

	var tvCount int
	for _, section := range sections {
		if section.IsTV() {
			tvCount++
		}
	}

	fmt.Printf("\nPlex Statistics:\n")
	fmt.Printf("- Library sections: %d\n", len(sections))
	fmt.Printf("- TV sections: %d\n", tvCount)

	if sonarrClient != nil {
		fmt.Printf("\nTesting connection to Sonarr at %s...\n", cfg.Sonarr.URL)
		fmt.Println("✓ Sonarr connection successful!")
	} else {
		fmt.Println("\nSonarr integration: Disabled")
	}

	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("backlogr %s (built %s)\n", appVersion, appBuildTime)
	},
}
