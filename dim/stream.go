package dim

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// VirtualManifest retrieves the track listing the transcoder offers for a
// stream.
func (c *Client) VirtualManifest(ctx context.Context, streamID, manifestGUID string) (VirtualManifest, error) {
	var manifest VirtualManifest
	if streamID == "" {
		return manifest, nil
	}

	params := url.Values{}
	if manifestGUID != "" {
		params.Set("gid", manifestGUID)
	}

	err := c.getInto(ctx, "stream/"+streamID+"/manifest", params, &manifest)
	return manifest, err
}

// Manifest retrieves the raw DASH manifest for a stream. The body is MPD
// XML, not JSON, so it comes back as text; a failed call yields the empty
// string.
func (c *Client) Manifest(ctx context.Context, streamID string, startNum int, shouldKill bool, includes []int) (string, error) {
	if streamID == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("start_num", strconv.Itoa(startNum))
	params.Set("should_kill", strconv.FormatBool(shouldKill))
	if len(includes) > 0 {
		params.Set("includes", joinInts(includes))
	}

	resp, err := c.get(ctx, "stream/"+streamID+"/manifest.mpd", params)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Dim API request failed")
		if c.strict {
			return "", err
		}
		return "", nil
	}
	if !resp.ok() {
		c.logger.Debug().Int("status", resp.status).Msg("Dim API returned non-success status")
		if c.strict {
			return "", &APIError{StatusCode: resp.status, Body: string(resp.body)}
		}
		return "", nil
	}

	return string(resp.body), nil
}

// joinInts renders a track id list as the comma-separated form the
// transcoder expects.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
