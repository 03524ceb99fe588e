package dim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TMDBSearch queries the external metadata provider. The media type is
// validated before any request goes out; year is optional and skipped when
// zero.
func (c *Client) TMDBSearch(ctx context.Context, query string, mediaType MediaType, year int) ([]ExternalMedia, error) {
	if !mediaType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaType, mediaType)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("media_type", string(mediaType))
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var results []ExternalMedia
	err := c.getInto(ctx, "tmdb_search", params, &results)
	return results, err
}

// Search queries the server's own library index.
func (c *Client) Search(ctx context.Context, query string) ([]MediaItem, error) {
	params := url.Values{}
	params.Set("query", query)

	var results []MediaItem
	err := c.getInto(ctx, "search", params, &results)
	return results, err
}

// FileBrowser lists the server-side directories under path. An empty path
// lists the filesystem roots the server exposes.
func (c *Client) FileBrowser(ctx context.Context, path string) ([]string, error) {
	command := "filebrowser"
	if path != "" {
		command += "/" + strings.TrimPrefix(path, "/")
	}

	var entries []string
	err := c.getInto(ctx, command, nil, &entries)
	return entries, err
}
