package dim

import (
	"context"
	"fmt"
)

// Libraries retrieves every library registered with the server.
func (c *Client) Libraries(ctx context.Context) ([]Library, error) {
	var libraries []Library
	err := c.getInto(ctx, "library", nil, &libraries)
	return libraries, err
}

// LibraryItems retrieves the matched media items of a library.
func (c *Client) LibraryItems(ctx context.Context, libraryID int) ([]MediaItem, error) {
	var items []MediaItem
	err := c.getInto(ctx, fmt.Sprintf("library/%d/media", libraryID), nil, &items)
	return items, err
}

// UnmatchedItems retrieves files the scanner could not match to any media,
// grouped by directory.
func (c *Client) UnmatchedItems(ctx context.Context, libraryID int) (map[string][]MediaFile, error) {
	unmatched := make(map[string][]MediaFile)
	err := c.getInto(ctx, fmt.Sprintf("library/%d/unmatched", libraryID), nil, &unmatched)
	return unmatched, err
}

type addLibraryRequest struct {
	Name      string    `json:"name"`
	MediaType MediaType `json:"media_type"`
	Locations []string  `json:"locations"`
}

// AddLibrary registers a new library and kicks off a scan of its locations.
func (c *Client) AddLibrary(ctx context.Context, name string, mediaType MediaType, paths []string) (bool, error) {
	if !mediaType.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidMediaType, mediaType)
	}
	return c.postOK(ctx, "library", nil, addLibraryRequest{
		Name:      name,
		MediaType: mediaType,
		Locations: paths,
	})
}

// DeleteLibrary removes a library and all of its media records.
func (c *Client) DeleteLibrary(ctx context.Context, libraryID int) (bool, error) {
	return c.deleteOK(ctx, fmt.Sprintf("library/%d", libraryID), nil)
}
