package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg, vim bool) bool {
	return isKey(msg, "up") || (vim && isKey(msg, "k"))
}

func isDown(msg tea.KeyMsg, vim bool) bool {
	return isKey(msg, "down") || (vim && isKey(msg, "j"))
}

func isPageUp(msg tea.KeyMsg, vim bool) bool {
	return isKey(msg, "pgup") || (vim && isKey(msg, "ctrl+b"))
}

func isPageDown(msg tea.KeyMsg, vim bool) bool {
	return isKey(msg, "pgdown", " ") || (vim && isKey(msg, "ctrl+f"))
}

func isTop(msg tea.KeyMsg, vim bool) bool {
	return isKey(msg, "home") || (vim && isKey(msg, "g"))
}

func isBottom(msg tea.KeyMsg, vim bool) bool {
	return isKey(msg, "end") || (vim && isKey(msg, "G"))
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}
