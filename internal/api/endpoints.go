package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// GetRecipe fetches full detail for a single recipe.
func (c *Client) GetRecipe(ctx context.Context, id string) (*RecipeResponse, error) {
	path := fmt.Sprintf("/api/recipe/%s", url.PathEscape(id))
	var result RecipeResponse
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search runs a recipe search with the given parameters.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*SearchResponse, error) {
	var result SearchResponse
	if err := c.get(ctx, "/api/recipes", params.Values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMetadata fetches one of the fixed metadata dictionaries. The backend
// serves metadata as a JSONP callback, so the payload is unwrapped before
// decoding.
func (c *Client) GetMetadata(ctx context.Context, kind string) ([]MetadataEntryResponse, error) {
	path := fmt.Sprintf("/api/metadata/%s", url.PathEscape(kind))

	body, err := c.getRaw(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	payload, err := unwrapJSONP(body)
	if err != nil {
		return nil, err
	}

	var result []MetadataEntryResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return result, nil
}

// unwrapJSONP extracts the JSON array from a set_metadata('<kind>', [...]);
// wrapper. A payload that is already plain JSON passes through untouched.
func unwrapJSONP(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return trimmed, nil
	}

	start := bytes.IndexByte(trimmed, '[')
	end := bytes.LastIndexByte(trimmed, ']')
	if start == -1 || end < start {
		return nil, fmt.Errorf("malformed metadata payload")
	}
	return trimmed[start : end+1], nil
}
