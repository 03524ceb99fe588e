package dim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// unwrapData strips the {"data": ...} envelope some endpoints wrap their
// payload in. Bodies without the envelope pass through unchanged.
func unwrapData(body json.RawMessage) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Data != nil {
		return probe.Data
	}
	return body
}

// decodeInto normalizes a response body and decodes it into target. An empty
// body leaves target at its zero value, which is how failed calls degrade to
// the empty result in the compatible mode. A malformed 2xx body is always an
// error.
func decodeInto(body json.RawMessage, target any) error {
	body = unwrapData(body)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// The helpers below pair a verb primitive with a shaping rule. Endpoint
// methods build a command and parameters, then pick one of these. An empty
// command short-circuits without touching the network.

func (c *Client) getInto(ctx context.Context, command string, params url.Values, target any) error {
	if command == "" {
		return nil
	}
	body, err := c.getJSON(ctx, command, params)
	if err != nil {
		return err
	}
	return decodeInto(body, target)
}

func (c *Client) postOK(ctx context.Context, command string, params url.Values, body any) (bool, error) {
	if command == "" {
		return false, nil
	}
	return c.asBool(c.post(ctx, command, params, body))
}

func (c *Client) patchOK(ctx context.Context, command string, params url.Values, body any) (bool, error) {
	if command == "" {
		return false, nil
	}
	return c.asBool(c.patch(ctx, command, params, body))
}

func (c *Client) deleteOK(ctx context.Context, command string, params url.Values) (bool, error) {
	if command == "" {
		return false, nil
	}
	return c.asBool(c.delete(ctx, command, params))
}
