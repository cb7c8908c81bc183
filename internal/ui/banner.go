package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/gravitrone/vlist/internal/ui/components"
)

const bannerTitle = "▌vlist"

// RenderBanner returns the one-line title bar: name, item source and counts.
// The line never exceeds width cells.
func RenderBanner(source string, shown, total, width int) string {
	line := BannerStyle.Render(bannerTitle)
	if source != "" {
		line += " " + BannerAccentStyle.Render(components.SanitizeOneLine(source))
	}

	count := fmt.Sprintf("%d items", total)
	if shown != total {
		count = fmt.Sprintf("%d of %d items", shown, total)
	}
	line += MutedStyle.Render("  " + count)

	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
