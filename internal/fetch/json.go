package fetch

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSONInto télécharge rawURL et décode le JSON dans dst (pointeur).
func (c *Client) GetJSONInto(ctx context.Context, rawURL string, dst any, opts ...RequestOption) error {
	data, err := c.GetBytes(ctx, rawURL, opts...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("fetch json: decode: %w", err)
	}
	return nil
}

// PostJSON encode payload, l'envoie en POST et décode la réponse dans dst.
func (c *Client) PostJSON(ctx context.Context, rawURL string, payload, dst any, opts ...RequestOption) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("fetch json: encode: %w", err)
	}
	opts = append([]RequestOption{WithHeader("Content-Type", "application/json")}, opts...)
	data, err := c.PostBytes(ctx, rawURL, body, opts...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("fetch json: decode: %w", err)
	}
	return nil
}

// GetJSON générique : fetch + unmarshal dans une valeur typée.
func GetJSON[T any](ctx context.Context, c *Client, rawURL string, opts ...RequestOption) (T, error) {
	var v T
	if err := c.GetJSONInto(ctx, rawURL, &v, opts...); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
