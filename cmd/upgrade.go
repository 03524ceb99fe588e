package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseSlug = "dimtools/dimctl"

// versionCmd prints the build metadata
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// No server connection needed for these commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dimctl %s (built %s)\n", version, buildTime)
	},
}

// upgradeCmd replaces the running binary with the latest release
var upgradeCmd = &cobra.Command{
	Use:               "upgrade",
	Short:             "Upgrade dimctl to the latest release",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runUpgrade,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("cannot upgrade a development build (version %q)", version)
	}

	ctx := context.Background()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseSlug)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("dimctl is up to date (%s)\n", version)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	fmt.Printf("Updating %s -> %s...\n", version, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Printf("Successfully updated to %s\n", latest.Version())
	return nil
}
