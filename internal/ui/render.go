package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/vlist/internal/items"
	"github.com/gravitrone/vlist/internal/ui/components"
)

const cardIndent = 4

// itemRenderer draws items for the virtual list. With rows == 1 every item is
// a single row; otherwise items are cards (title, body, tags), padded or cut
// to rows lines when rows > 1 and measured when rows == 0.
type itemRenderer struct {
	rows     int
	markdown bool
	theme    string
	logger   *slog.Logger

	md      *glamour.TermRenderer
	mdWidth int
	mdCache map[string]string
}

func newItemRenderer(rows int, markdown bool, theme string, logger *slog.Logger) *itemRenderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &itemRenderer{
		rows:     rows,
		markdown: markdown,
		theme:    theme,
		logger:   logger,
		mdCache:  make(map[string]string),
	}
}

// Render matches components.RenderFunc. Selection only changes colors so the
// measured height does not depend on it.
func (r *itemRenderer) Render(it items.Item, index, width int, selected bool) string {
	if r.rows == 1 {
		return r.row(it, index, selected)
	}
	card := r.card(it, index, width, selected)
	if r.rows > 1 {
		return fitLines(card, r.rows)
	}
	return card
}

func (r *itemRenderer) row(it items.Item, index int, selected bool) string {
	line := r.titleLine(it, index, selected)
	if len(it.Tags) > 0 {
		line += "  " + renderTags(it.Tags)
	}
	return line
}

func (r *itemRenderer) card(it items.Item, index, width int, selected bool) string {
	lines := []string{r.titleLine(it, index, selected)}
	pad := strings.Repeat(" ", cardIndent)

	if body := r.body(it.Body, max(1, width-cardIndent)); body != "" {
		for _, l := range strings.Split(body, "\n") {
			lines = append(lines, pad+l)
		}
	}
	if len(it.Tags) > 0 {
		lines = append(lines, pad+renderTags(it.Tags))
	}
	return strings.Join(lines, "\n")
}

func (r *itemRenderer) titleLine(it items.Item, index int, selected bool) string {
	marker := "  "
	title := NormalStyle.Render(components.SanitizeOneLine(it.Title))
	if selected {
		marker = SelectedStyle.Render("▌ ")
		title = SelectedStyle.Render(components.SanitizeOneLine(it.Title))
	}
	return marker + MutedStyle.Render(fmt.Sprintf("%d.", index+1)) + " " + title
}

func (r *itemRenderer) body(body string, width int) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if r.markdown {
		if out, ok := r.markdownBody(body, width); ok {
			return out
		}
	}
	return lipgloss.NewStyle().Width(width).Render(components.SanitizeText(body))
}

// markdownBody renders body through glamour, keeping one renderer per width.
func (r *itemRenderer) markdownBody(body string, width int) (string, bool) {
	if r.md == nil || r.mdWidth != width {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.theme),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			r.logger.Warn("markdown renderer unavailable", "theme", r.theme, "err", err)
			r.markdown = false
			return "", false
		}
		r.md = md
		r.mdWidth = width
		clear(r.mdCache)
	}

	if out, ok := r.mdCache[body]; ok {
		return out, true
	}
	out, err := r.md.Render(body)
	if err != nil {
		r.logger.Warn("render markdown", "err", err)
		return "", false
	}
	out = strings.Trim(out, "\n")
	r.mdCache[body] = out
	return out, true
}

func renderTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = components.SanitizeOneLine(tag); tag != "" {
			parts = append(parts, "#"+tag)
		}
	}
	return TagStyle.Render(strings.Join(parts, " "))
}

// fitLines pads or cuts s to exactly n lines.
func fitLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
