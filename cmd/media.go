package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dimtools/dimctl/dim"
	"github.com/dimtools/dimctl/filter"
)

var (
	filterExpr  string
	preset      string
	rematchTMDB int
	rematchType string
)

// mediaCmd groups media item subcommands
var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Inspect and manage media items",
}

var mediaShowCmd = &cobra.Command{
	Use:   "show <media-id>",
	Short: "Show a media item and its files",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaShow,
}

var mediaListCmd = &cobra.Command{
	Use:   "list <library-id>",
	Short: "List media items in a library, optionally filtered",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaList,
}

var mediaDeleteCmd = &cobra.Command{
	Use:   "delete <media-id>",
	Short: "Delete a media item",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaDelete,
}

var mediaRematchCmd = &cobra.Command{
	Use:   "rematch <file-id>",
	Short: "Re-link a media file to a different TMDB entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaRematch,
}

func init() {
	rootCmd.AddCommand(mediaCmd)

	mediaListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	mediaListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	mediaRematchCmd.Flags().IntVar(&rematchTMDB, "tmdb", 0, "TMDB id to match against")
	mediaRematchCmd.Flags().StringVar(&rematchType, "type", "movie", "media type (movie or tv)")
	mediaRematchCmd.MarkFlagRequired("tmdb")

	mediaCmd.AddCommand(mediaShowCmd)
	mediaCmd.AddCommand(mediaListCmd)
	mediaCmd.AddCommand(mediaDeleteCmd)
	mediaCmd.AddCommand(mediaRematchCmd)
}

func runMediaShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid media id %q", args[0])
	}

	ctx := context.Background()

	item, err := client.Media(ctx, id)
	if err != nil {
		return err
	}
	if item.ID == 0 {
		fmt.Printf("Media %d not found.\n", id)
		return nil
	}

	fmt.Printf("%s", item.Name)
	if item.Year > 0 {
		fmt.Printf(" (%d)", item.Year)
	}
	fmt.Println()
	if item.Rating > 0 {
		fmt.Printf("Rating: %.1f\n", item.Rating)
	}
	if len(item.Genres) > 0 {
		fmt.Printf("Genres: %s\n", strings.Join(item.Genres, ", "))
	}
	if item.Description != "" {
		fmt.Printf("\n%s\n", item.Description)
	}

	files, err := client.MediaFiles(ctx, id)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		fmt.Println("\nFiles:")
		for _, file := range files {
			fmt.Printf("  %-6d %s", file.ID, file.TargetFile)
			if file.Quality != "" {
				fmt.Printf(" [%s]", file.Quality)
			}
			fmt.Println()
		}
	}
	return nil
}

func runMediaList(cmd *cobra.Command, args []string) error {
	libraryID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid library id %q", args[0])
	}

	items, err := client.LibraryItems(context.Background(), libraryID)
	if err != nil {
		return err
	}

	expr, err := resolveFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		f, err := filter.Compile(expr)
		if err != nil {
			return err
		}
		items, err = f.Apply(items)
		if err != nil {
			return err
		}
	}

	if len(items) == 0 {
		fmt.Println("No media found matching the criteria.")
		return nil
	}

	fmt.Printf("Found %d items:\n", len(items))
	fmt.Println(strings.Repeat("-", 60))
	for _, item := range items {
		fmt.Printf("%-6d %s", item.ID, item.Name)
		if item.Year > 0 {
			fmt.Printf(" (%d)", item.Year)
		}
		fmt.Println()
	}
	return nil
}

// resolveFilterExpression picks between --filter and --preset.
func resolveFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("--filter and --preset are mutually exclusive")
	}
	if preset != "" {
		expr, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset %q not found in config", preset)
		}
		return expr, nil
	}
	return filterExpr, nil
}

func runMediaDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid media id %q", args[0])
	}

	ok, err := client.DeleteMedia(context.Background(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("failed to delete media %d", id)
	}

	fmt.Printf("Deleted media %d.\n", id)
	return nil
}

func runMediaRematch(cmd *cobra.Command, args []string) error {
	fileID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid file id %q", args[0])
	}

	ok, err := client.RematchMediaFile(context.Background(), fileID, rematchTMDB, dim.MediaType(rematchType))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("failed to rematch file %d", fileID)
	}

	logger.Info().Int("file_id", fileID).Int("tmdb_id", rematchTMDB).Msg("Rematched media file")
	fmt.Printf("Rematched file %d to TMDB %d.\n", fileID, rematchTMDB)
	return nil
}
