package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// tvCmd groups TV show subcommands
var tvCmd = &cobra.Command{
	Use:   "tv",
	Short: "Inspect and manage TV seasons and episodes",
}

var tvSeasonCmd = &cobra.Command{
	Use:   "season <tv-id> <season-number>",
	Short: "Show one season with its episodes",
	Args:  cobra.ExactArgs(2),
	RunE:  runTVSeason,
}

var tvDeleteSeasonCmd = &cobra.Command{
	Use:   "delete-season <tv-id> <season-number>",
	Short: "Delete a season and its episodes",
	Args:  cobra.ExactArgs(2),
	RunE:  runTVDeleteSeason,
}

var tvEpisodeCmd = &cobra.Command{
	Use:   "episode <episode-id>",
	Short: "Show a single episode",
	Args:  cobra.ExactArgs(1),
	RunE:  runTVEpisode,
}

var tvDeleteEpisodeCmd = &cobra.Command{
	Use:   "delete-episode <episode-id>",
	Short: "Delete a single episode",
	Args:  cobra.ExactArgs(1),
	RunE:  runTVDeleteEpisode,
}

func init() {
	rootCmd.AddCommand(tvCmd)

	tvCmd.AddCommand(tvSeasonCmd)
	tvCmd.AddCommand(tvDeleteSeasonCmd)
	tvCmd.AddCommand(tvEpisodeCmd)
	tvCmd.AddCommand(tvDeleteEpisodeCmd)
}

func parseIDPair(args []string) (int, int, error) {
	tvID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid tv id %q", args[0])
	}
	season, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid season number %q", args[1])
	}
	return tvID, season, nil
}

func runTVSeason(cmd *cobra.Command, args []string) error {
	tvID, seasonNumber, err := parseIDPair(args)
	if err != nil {
		return err
	}

	season, err := client.Season(context.Background(), tvID, seasonNumber)
	if err != nil {
		return err
	}
	if season.ID == 0 {
		fmt.Println("Season not found.")
		return nil
	}

	fmt.Printf("Season %d\n", season.SeasonNumber)
	for _, episode := range season.Episodes {
		fmt.Printf("  %2d. %s\n", episode.Episode, episode.Name)
	}
	return nil
}

func runTVDeleteSeason(cmd *cobra.Command, args []string) error {
	tvID, seasonNumber, err := parseIDPair(args)
	if err != nil {
		return err
	}

	ok, err := client.DeleteSeason(context.Background(), tvID, seasonNumber)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("failed to delete season %d of tv %d", seasonNumber, tvID)
	}

	fmt.Printf("Deleted season %d.\n", seasonNumber)
	return nil
}

func runTVEpisode(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid episode id %q", args[0])
	}

	episode, err := client.Episode(context.Background(), id)
	if err != nil {
		return err
	}
	if episode.ID == 0 {
		fmt.Println("Episode not found.")
		return nil
	}

	fmt.Printf("Episode %d: %s\n", episode.Episode, episode.Name)
	if episode.Description != "" {
		fmt.Printf("\n%s\n", episode.Description)
	}
	return nil
}

func runTVDeleteEpisode(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid episode id %q", args[0])
	}

	ok, err := client.DeleteEpisode(context.Background(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("failed to delete episode %d", id)
	}

	fmt.Printf("Deleted episode %d.\n", id)
	return nil
}
