package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dimtools/dimctl/dim"
)

var (
	tmdbType string
	tmdbYear int
)

// searchCmd searches the server's own library index
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the media library",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

// tmdbCmd searches the external metadata provider
var tmdbCmd = &cobra.Command{
	Use:   "tmdb <query>",
	Short: "Search TMDB for movies or shows",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTMDB,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(tmdbCmd)

	tmdbCmd.Flags().StringVar(&tmdbType, "type", "movie", "media type (movie or tv)")
	tmdbCmd.Flags().IntVar(&tmdbYear, "year", 0, "restrict results to a release year")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	results, err := client.Search(context.Background(), query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for _, item := range results {
		fmt.Printf("%-6d %s", item.ID, item.Name)
		if item.Year > 0 {
			fmt.Printf(" (%d)", item.Year)
		}
		fmt.Println()
	}
	return nil
}

func runTMDB(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	results, err := client.TMDBSearch(context.Background(), query, dim.MediaType(tmdbType), tmdbYear)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for _, result := range results {
		fmt.Printf("%-8d %s", result.ID, result.Title)
		if result.Year > 0 {
			fmt.Printf(" (%d)", result.Year)
		}
		fmt.Println()
	}
	return nil
}
