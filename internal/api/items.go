package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gravitrone/vlist/internal/items"
)

// FetchItems loads an item list from path. The response may be an envelope
// ({"data": [...]}) or a bare JSON array.
func (c *Client) FetchItems(path string, params QueryParams) ([]items.Item, error) {
	data, err := c.get(buildQuery(path, params))
	if err != nil {
		return nil, err
	}
	return decodeItems(data)
}

func decodeItems(data []byte) ([]items.Item, error) {
	trimmed := bytes.TrimSpace(data)
	var payload []itemPayload
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	} else {
		var resp apiResponse[[]itemPayload]
		if err := json.Unmarshal(trimmed, &resp); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		payload = resp.Data
	}

	list := make([]items.Item, len(payload))
	for i, p := range payload {
		id := string(p.ID)
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		title := p.Title
		if title == "" {
			title = p.Name
		}
		if title == "" {
			return nil, fmt.Errorf("item %s has no title", id)
		}
		list[i] = items.Item{
			ID:    id,
			Title: title,
			Body:  p.Body,
			Tags:  p.Tags,
			Meta:  p.Meta,
		}
	}
	return list, nil
}
