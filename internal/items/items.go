package items

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one row of the list viewer.
type Item struct {
	ID    string         `yaml:"id" json:"id"`
	Title string         `yaml:"title" json:"title"`
	Body  string         `yaml:"body,omitempty" json:"body,omitempty"`
	Tags  []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Meta  map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// LoadFile reads items from path.
//
// .yaml, .yml and .json files must hold a list of items. Any other file is
// read line by line, one item per non-empty line.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var list []Item
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parse items: %w", err)
		}
		return normalize(list)
	case ".yaml", ".yml":
		var list []Item
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parse items: %w", err)
		}
		return normalize(list)
	default:
		return decodeLines(data)
	}
}

// normalize fills missing ids with the 1-based position and rejects
// untitled items.
func normalize(list []Item) ([]Item, error) {
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = fmt.Sprintf("%d", i+1)
		}
		if list[i].Title == "" {
			return nil, fmt.Errorf("parse items: item %s has no title", list[i].ID)
		}
	}
	return list, nil
}

func decodeLines(data []byte) ([]Item, error) {
	var list []Item
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		list = append(list, Item{
			ID:    fmt.Sprintf("%d", line),
			Title: text,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return list, nil
}

// Filter returns the items whose title, body or tags contain query,
// case-insensitively. An empty query returns list unchanged.
func Filter(list []Item, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	out := make([]Item, 0, len(list))
	for _, it := range list {
		if matches(it, query) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it Item, query string) bool {
	if strings.Contains(strings.ToLower(it.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Body), query) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
