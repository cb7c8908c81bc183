package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2).
			Width(40)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
)

// InputDialog renders a prompt around an already rendered input field,
// such as a bubbles textinput view.
func InputDialog(title, field, hint string) string {
	body := dialogTitleStyle.Render(title) + "\n\n" + field
	if hint != "" {
		body += "\n" + dialogHintStyle.Render(hint)
	}
	return dialogStyle.Render(body)
}
