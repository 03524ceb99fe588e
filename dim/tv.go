package dim

import (
	"context"
	"fmt"
)

// Season retrieves one season of a TV show, episodes included.
func (c *Client) Season(ctx context.Context, tvID, seasonNumber int) (Season, error) {
	var season Season
	err := c.getInto(ctx, fmt.Sprintf("tv/%d/season/%d", tvID, seasonNumber), nil, &season)
	return season, err
}

// UpdateSeason patches metadata fields of a season.
func (c *Client) UpdateSeason(ctx context.Context, tvID, seasonNumber int, fields map[string]any) (bool, error) {
	return c.patchOK(ctx, fmt.Sprintf("tv/%d/season/%d", tvID, seasonNumber), nil, fields)
}

// DeleteSeason removes a season and its episodes.
func (c *Client) DeleteSeason(ctx context.Context, tvID, seasonNumber int) (bool, error) {
	return c.deleteOK(ctx, fmt.Sprintf("tv/%d/season/%d", tvID, seasonNumber), nil)
}

// Episode retrieves a single episode.
func (c *Client) Episode(ctx context.Context, episodeID int) (Episode, error) {
	var episode Episode
	err := c.getInto(ctx, fmt.Sprintf("episode/%d", episodeID), nil, &episode)
	return episode, err
}

// UpdateEpisode patches metadata fields of an episode.
func (c *Client) UpdateEpisode(ctx context.Context, episodeID int, fields map[string]any) (bool, error) {
	return c.patchOK(ctx, fmt.Sprintf("episode/%d", episodeID), nil, fields)
}

// DeleteEpisode removes a single episode.
func (c *Client) DeleteEpisode(ctx context.Context, episodeID int) (bool, error) {
	return c.deleteOK(ctx, fmt.Sprintf("episode/%d", episodeID), nil)
}
