package items

import (
	"fmt"
	"strings"
)

var (
	adjectives = []string{"Compact", "Rugged", "Vintage", "Modular", "Quiet", "Polished", "Wireless", "Folding"}
	nouns      = []string{"Lamp", "Backpack", "Kettle", "Keyboard", "Chair", "Speaker", "Tent", "Monitor", "Drone"}
	tagPool    = []string{"new", "sale", "outdoor", "office", "kitchen", "audio", "travel"}
)

// Generate returns n deterministic catalog items. Body length varies with
// the index so rendered heights differ between items.
func Generate(n int) []Item {
	if n <= 0 {
		return nil
	}
	out := make([]Item, n)
	for i := range out {
		adj := adjectives[i%len(adjectives)]
		noun := nouns[(i/len(adjectives))%len(nouns)]

		paragraphs := 1 + i%3
		body := make([]string, 0, paragraphs)
		for p := 0; p < paragraphs; p++ {
			body = append(body, fmt.Sprintf("The %s %s, revision %d. Part %d of the description.",
				strings.ToLower(adj), strings.ToLower(noun), i/len(adjectives)/len(nouns)+1, p+1))
		}

		out[i] = Item{
			ID:    fmt.Sprintf("item-%05d", i+1),
			Title: fmt.Sprintf("%s %s #%d", adj, noun, i+1),
			Body:  strings.Join(body, "\n\n"),
			Tags:  []string{tagPool[i%len(tagPool)], tagPool[(i*3+1)%len(tagPool)]},
			Meta: map[string]any{
				"price": fmt.Sprintf("%d.%02d", 5+i%200, (i*37)%100),
				"stock": (i * 13) % 50,
			},
		}
	}
	return out
}
