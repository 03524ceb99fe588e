package dim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Media retrieves the metadata of a single media item.
func (c *Client) Media(ctx context.Context, mediaID int) (MediaItem, error) {
	var item MediaItem
	err := c.getInto(ctx, fmt.Sprintf("media/%d", mediaID), nil, &item)
	return item, err
}

// MediaFiles retrieves the files on disk backing a media item.
func (c *Client) MediaFiles(ctx context.Context, mediaID int) ([]MediaFile, error) {
	var files []MediaFile
	err := c.getInto(ctx, fmt.Sprintf("media/%d/files", mediaID), nil, &files)
	return files, err
}

// UpdateMedia patches metadata fields of a media item.
func (c *Client) UpdateMedia(ctx context.Context, mediaID int, fields map[string]any) (bool, error) {
	return c.patchOK(ctx, fmt.Sprintf("media/%d", mediaID), nil, fields)
}

// DeleteMedia removes a media item and its file records.
func (c *Client) DeleteMedia(ctx context.Context, mediaID int) (bool, error) {
	return c.deleteOK(ctx, fmt.Sprintf("media/%d", mediaID), nil)
}

// MapProgress records the playback position, in seconds, for a media item.
func (c *Client) MapProgress(ctx context.Context, mediaID, offset int) (bool, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	return c.postOK(ctx, fmt.Sprintf("media/%d/progress", mediaID), params, nil)
}

// MediaFileInfo retrieves the details of a single media file.
func (c *Client) MediaFileInfo(ctx context.Context, fileID int) (MediaFile, error) {
	var file MediaFile
	err := c.getInto(ctx, fmt.Sprintf("mediafile/%d", fileID), nil, &file)
	return file, err
}

type rematchRequest struct {
	TMDBID    int       `json:"tmdb_id"`
	MediaType MediaType `json:"media_type"`
}

// RematchMediaFile re-links a media file to a different TMDB entry. The
// media type is validated before any request goes out.
func (c *Client) RematchMediaFile(ctx context.Context, fileID, tmdbID int, mediaType MediaType) (bool, error) {
	if !mediaType.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidMediaType, mediaType)
	}
	return c.patchOK(ctx, fmt.Sprintf("mediafile/%d/match", fileID), nil, rematchRequest{
		TMDBID:    tmdbID,
		MediaType: mediaType,
	})
}
