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

	"github.com/dimtools/dimctl/config"
	"github.com/dimtools/dimctl/dim"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *dim.Client

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dimctl",
	Short: "Manage a Dim media server from the command line",
	Long: `dimctl talks to a Dim media server's HTTP API. It can inspect and
manage libraries, media items, TV seasons and episodes, search the
library or TMDB, and fetch streaming manifests.`,
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

	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	var opts []dim.Option
	if cfg.Server.StrictErrors {
		opts = append(opts, dim.WithStrictErrors())
	}

	client, err = dim.New(cfg.Server.URL, cfg.Server.Username, cfg.Server.Password, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Dim client: %w", err)
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

	// Console format; color only when writing to a real terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// whoamiCmd prints the authenticated user
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := client.WhoAmI(context.Background())
		if err != nil {
			return err
		}
		if user.Username == "" {
			fmt.Println("Server did not return a user profile.")
			return nil
		}

		fmt.Printf("Logged in as %s\n", user.Username)
		if len(user.Roles) > 0 {
			fmt.Printf("Roles: %s\n", strings.Join(user.Roles, ", "))
		}
		if user.SpentWatching > 0 {
			fmt.Printf("Hours watched: %d\n", user.SpentWatching)
		}
		return nil
	},
}

// dashboardCmd prints the landing-page sections
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard media sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboard, err := client.Dashboard(context.Background())
		if err != nil {
			return err
		}
		if len(dashboard) == 0 {
			fmt.Println("Dashboard is empty.")
			return nil
		}

		for section, items := range dashboard {
			fmt.Printf("\n%s\n", section)
			fmt.Println(strings.Repeat("-", len(section)))
			for _, item := range items {
				fmt.Printf("• %s", item.Name)
				if item.Year > 0 {
					fmt.Printf(" (%d)", item.Year)
				}
				fmt.Println()
			}
		}
		return nil
	},
}
