package api

import (
	"bytes"
	"encoding/json"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSONMap handles object fields that some backends return as JSON strings.
type JSONMap map[string]any

func (j *JSONMap) UnmarshalJSON(data []byte) error {
	// Try as object first
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		*j = m
		return nil
	}
	// Try as string containing JSON
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "null" {
			*j = make(map[string]any)
			return nil
		}
		return json.Unmarshal([]byte(s), (*map[string]any)(j))
	}
	*j = make(map[string]any)
	return nil
}

// flexID accepts both string and numeric identifiers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// --- Items ---

// itemPayload is the wire shape of a list item.
type itemPayload struct {
	ID    flexID   `json:"id"`
	Title string   `json:"title"`
	Name  string   `json:"name,omitempty"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
	Meta  JSONMap  `json:"meta"`
}

// --- Query ---

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string
