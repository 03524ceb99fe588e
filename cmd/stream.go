package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	manifestStart    int
	manifestKill     bool
	manifestIncludes []int
)

// streamCmd groups streaming subcommands
var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Inspect streaming manifests",
}

var streamTracksCmd = &cobra.Command{
	Use:   "tracks <stream-id>",
	Short: "List the tracks the transcoder offers for a stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreamTracks,
}

var streamManifestCmd = &cobra.Command{
	Use:   "manifest <stream-id>",
	Short: "Print the raw DASH manifest for a stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreamManifest,
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamManifestCmd.Flags().IntVar(&manifestStart, "start", 0, "first segment number")
	streamManifestCmd.Flags().BoolVar(&manifestKill, "kill", false, "stop other transcoding sessions first")
	streamManifestCmd.Flags().IntSliceVar(&manifestIncludes, "include", nil, "track ids to include")

	streamCmd.AddCommand(streamTracksCmd)
	streamCmd.AddCommand(streamManifestCmd)
}

func runStreamTracks(cmd *cobra.Command, args []string) error {
	manifest, err := client.VirtualManifest(context.Background(), args[0], "")
	if err != nil {
		return err
	}
	if len(manifest.Tracks) == 0 {
		fmt.Println("No tracks available.")
		return nil
	}

	for _, track := range manifest.Tracks {
		fmt.Printf("%-6s %-10s %s", track.ID, track.ContentType, track.Codecs)
		if track.Bandwidth > 0 {
			fmt.Printf(" (%d bps)", track.Bandwidth)
		}
		fmt.Println()
	}
	return nil
}

func runStreamManifest(cmd *cobra.Command, args []string) error {
	manifest, err := client.Manifest(context.Background(), args[0], manifestStart, manifestKill, manifestIncludes)
	if err != nil {
		return err
	}
	if manifest == "" {
		return fmt.Errorf("no manifest returned for stream %s", args[0])
	}

	fmt.Print(manifest)
	return nil
}
