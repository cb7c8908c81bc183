package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg fires once per frame while scroll input is pending.
type frameMsg struct{}

func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// requestFrame schedules the next frame. Input that arrives while a frame is
// already pending only updates list state, so any number of events per frame
// cost a single window resolution.
func (a *App) requestFrame() tea.Cmd {
	if a.framePending {
		return nil
	}
	a.framePending = true
	return tea.Tick(a.frameEvery, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// resolveNow lays out the screen and resolves the list window immediately.
func (a *App) resolveNow() {
	if a.width <= 0 || a.height <= 0 {
		return
	}
	a.layout()
	if !a.list.Dirty() {
		return
	}
	if err := a.list.Resolve(); err != nil {
		a.logger.Error("resolve window", "err", err)
		return
	}
	a.resolves++
	win := a.list.Window()
	a.logger.Debug("frame",
		"visible", win.Visible.String(),
		"render", win.Render.String(),
		"offset", a.list.Offset(),
	)
}
