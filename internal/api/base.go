package api

import "time"

// DefaultBaseURL is used when the config does not name a server.
const DefaultBaseURL = "http://localhost:8080"

// NewDefaultClient builds a client for baseURL, falling back to DefaultBaseURL.
func NewDefaultClient(baseURL, apiKey string, timeout ...time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return NewClient(baseURL, apiKey, timeout...)
}
