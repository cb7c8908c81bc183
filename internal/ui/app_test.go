package ui

import (
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/items"
)

func newTestApp(t *testing.T, n int, mutate func(*config.Config)) App {
	t.Helper()
	cfg := config.Default()
	cfg.ItemHeight = 1
	if mutate != nil {
		mutate(cfg)
	}
	app := NewApp(Options{
		Config: cfg,
		Source: "test",
		Load: func() ([]items.Item, error) {
			return items.Generate(n), nil
		},
		Logger: slog.New(slog.DiscardHandler),
	})
	app = updateApp(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
	return updateApp(t, app, app.Init()())
}

func updateApp(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	out, _ := updateAppCmd(t, a, msg)
	return out
}

func updateAppCmd(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	out, ok := model.(App)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, a App, text string) App {
	t.Helper()
	return updateApp(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestAppLoadsAndRendersOnlyTheWindow(t *testing.T) {
	app := newTestApp(t, 1000, nil)

	require.False(t, app.loading)
	require.Equal(t, 1000, app.list.Len())
	require.Greater(t, app.listHeight, 0)
	assert.False(t, app.list.Dirty())

	view := app.View()
	assert.Equal(t, 30, lipgloss.Height(view))

	clean := ansi.Strip(view)
	assert.Contains(t, clean, "Compact Lamp #1")
	assert.Contains(t, clean, "1000 items")
	assert.Contains(t, clean, "of 1000")
	assert.NotContains(t, clean, "#500 ")
	assert.LessOrEqual(t, app.list.Materialized(), app.listHeight+1+3)
}

func TestAppScrollInputWaitsForFrame(t *testing.T) {
	app := newTestApp(t, 1000, func(c *config.Config) { c.VimKeys = true })
	resolves := app.resolves

	app, cmd := updateAppCmd(t, app, tea.KeyMsg{Type: tea.KeyPgDown})
	require.NotNil(t, cmd)
	assert.True(t, app.framePending)
	assert.True(t, app.list.Dirty())

	// A second event in the same frame does not schedule another tick.
	app, cmd = updateAppCmd(t, app, runeKey('j'))
	assert.Nil(t, cmd)
	assert.Equal(t, resolves, app.resolves)

	app = updateApp(t, app, frameMsg{})
	assert.False(t, app.framePending)
	assert.False(t, app.list.Dirty())
	assert.Equal(t, resolves+1, app.resolves)
	assert.Equal(t, app.listHeight+1, app.list.Cursor())
	assert.True(t, app.list.Window().Visible.Contains(app.list.Cursor()))
}

func TestAppMouseWheelScrollsWithoutMovingCursor(t *testing.T) {
	app := newTestApp(t, 1000, nil)
	wheel := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}

	app, cmd := updateAppCmd(t, app, wheel)
	require.NotNil(t, cmd)
	app, cmd = updateAppCmd(t, app, wheel)
	assert.Nil(t, cmd)

	app = updateApp(t, app, frameMsg{})
	assert.Equal(t, 2*wheelStep, app.list.Offset())
	assert.Equal(t, 0, app.list.Cursor())
	assert.Equal(t, 2*wheelStep, app.list.Window().Visible.Start)

	app = updateApp(t, app, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	app = updateApp(t, app, frameMsg{})
	assert.Equal(t, wheelStep, app.list.Offset())
}

func TestAppFilterRebuildsImmediately(t *testing.T) {
	app := newTestApp(t, 1000, nil)
	want := len(items.Filter(items.Generate(1000), "lamp"))
	require.Greater(t, want, 0)
	require.Less(t, want, 1000)

	app = updateApp(t, app, runeKey('/'))
	require.True(t, app.filtering)

	app = typeText(t, app, "lamp")
	assert.Equal(t, "lamp", app.filter.Value())
	assert.Equal(t, want, app.list.Len())
	assert.False(t, app.list.Dirty())
	assert.Contains(t, ansi.Strip(app.View()), "of 1000 items")

	// q is text while filtering.
	app, cmd := updateAppCmd(t, app, runeKey('q'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, app.list.Len())
	assert.Contains(t, ansi.Strip(app.View()), "no items")
	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, want, app.list.Len())

	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, app.filtering)
	assert.Equal(t, want, app.list.Len())

	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", app.filter.Value())
	assert.Equal(t, 1000, app.list.Len())
}

func TestAppJumpToItem(t *testing.T) {
	app := newTestApp(t, 1000, nil)

	app = updateApp(t, app, runeKey(':'))
	require.True(t, app.jumping)
	assert.Contains(t, ansi.Strip(app.View()), "Jump to item")

	app = typeText(t, app, "250")
	app, cmd := updateAppCmd(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, app.jumping)

	app = updateApp(t, app, frameMsg{})
	assert.Equal(t, 249, app.list.Cursor())
	assert.True(t, app.list.Window().Visible.Contains(249))
	assert.Contains(t, ansi.Strip(app.View()), "#250")

	app = updateApp(t, app, runeKey(':'))
	app = typeText(t, app, "5000")
	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 249, app.list.Cursor())
	assert.Contains(t, app.notice, "no item")
}

func TestAppDetailPaneKeepsScreenHeight(t *testing.T) {
	app := newTestApp(t, 1000, nil)
	before := app.listHeight

	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, app.detailOpen)
	assert.Less(t, app.listHeight, before)

	view := app.View()
	assert.Equal(t, 30, lipgloss.Height(view))
	clean := ansi.Strip(view)
	assert.Contains(t, clean, "item-00001")
	assert.Contains(t, clean, "price")

	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.detailOpen)
	assert.Equal(t, before, app.listHeight)
}

func TestAppHelpOverlay(t *testing.T) {
	app := newTestApp(t, 10, nil)

	app = updateApp(t, app, runeKey('?'))
	require.True(t, app.helpOpen)
	assert.Contains(t, ansi.Strip(app.View()), "jump to item number")

	// Keys do not reach the list while help is open.
	app, cmd := updateAppCmd(t, app, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, app.list.Cursor())

	app = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.helpOpen)
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t, 10, nil)
	_, cmd := updateAppCmd(t, app, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppLoadErrorIsShown(t *testing.T) {
	app := NewApp(Options{
		Load: func() ([]items.Item, error) {
			return nil, errors.New("HTTP 503: maintenance")
		},
	})
	app = updateApp(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, ansi.Strip(app.View()), "loading items")

	app = updateApp(t, app, app.Init()())
	assert.False(t, app.loading)
	assert.Contains(t, ansi.Strip(app.View()), "HTTP 503: maintenance")
}

func TestAppReload(t *testing.T) {
	calls := 0
	app := NewApp(Options{
		Load: func() ([]items.Item, error) {
			calls++
			return items.Generate(calls * 5), nil
		},
	})
	app = updateApp(t, app, tea.WindowSizeMsg{Width: 80, Height: 24})
	app = updateApp(t, app, app.Init()())
	require.Equal(t, 5, app.list.Len())

	app, cmd := updateAppCmd(t, app, runeKey('r'))
	require.NotNil(t, cmd)
	assert.True(t, app.loading)
	app = updateApp(t, app, cmd())
	assert.Equal(t, 10, app.list.Len())
}

func TestAppMeasuredCards(t *testing.T) {
	app := newTestApp(t, 30, func(c *config.Config) { c.ItemHeight = 0 })

	// Every card has a title, a wrapped body and a tag line.
	assert.GreaterOrEqual(t, app.list.TotalHeight(), 3*30)
	assert.Equal(t, 30, lipgloss.Height(app.View()))
	assert.Less(t, app.list.Window().Render.End, 29)
}

func TestAppResizeReflowsMeasuredHeights(t *testing.T) {
	app := newTestApp(t, 30, func(c *config.Config) { c.ItemHeight = 0 })
	wide := app.list.TotalHeight()

	app = updateApp(t, app, tea.WindowSizeMsg{Width: 30, Height: 30})
	assert.Greater(t, app.list.TotalHeight(), wide)
	assert.False(t, app.list.Dirty())
}
