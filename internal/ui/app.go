package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/items"
	"github.com/gravitrone/vlist/internal/ui/components"
)

const (
	wheelStep       = 3
	detailBodyLines = 6
	// banner, filter line and position line
	chromeLines = 3
)

// --- Messages ---

type errMsg struct{ err error }

type itemsLoadedMsg struct {
	items []items.Item
}

// Loader produces the items to display. It runs off the UI goroutine.
type Loader func() ([]items.Item, error)

// Options configures NewApp.
type Options struct {
	Config *config.Config
	// Source labels where items came from, shown in the banner.
	Source string
	Load   Loader
	Logger *slog.Logger
}

// --- App Model ---

// App is the root TUI model: a filterable virtual list with a detail pane.
type App struct {
	config   *config.Config
	source   string
	load     Loader
	logger   *slog.Logger
	renderer *itemRenderer
	list     *components.VirtualList[items.Item]
	all      []items.Item

	filter    textinput.Model
	filtering bool
	jump      textinput.Model
	jumping   bool

	detailOpen bool
	helpOpen   bool
	loading    bool
	err        string
	notice     string

	width      int
	height     int
	listHeight int

	framePending bool
	frameEvery   time.Duration
	resolves     int
}

// NewApp creates the root application model.
func NewApp(opts Options) App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	renderer := newItemRenderer(cfg.ItemHeight, cfg.Markdown, cfg.Theme, logger)
	list := components.NewVirtualList[items.Item](renderer.Render)
	list.SetItemHeight(cfg.ItemHeight)
	list.SetGap(cfg.Gap)
	list.SetOverscan(cfg.Overscan)

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by title, body or tag"

	jump := textinput.New()
	jump.Prompt = "# "
	jump.Placeholder = "item number"
	jump.CharLimit = 9

	return App{
		config:     cfg,
		source:     opts.Source,
		load:       opts.Load,
		logger:     logger,
		renderer:   renderer,
		list:       list,
		filter:     filter,
		jump:       jump,
		loading:    opts.Load != nil,
		frameEvery: frameInterval(cfg.FrameRate),
	}
}

func (a App) Init() tea.Cmd {
	return a.loadCmd()
}

func (a App) loadCmd() tea.Cmd {
	if a.load == nil {
		return nil
	}
	load := a.load
	return func() tea.Msg {
		list, err := load()
		if err != nil {
			return errMsg{err}
		}
		return itemsLoadedMsg{items: list}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.filter.Width = max(0, msg.Width-4)
		a.resolveNow()
		return a, nil

	case itemsLoadedMsg:
		a.loading = false
		a.err = ""
		a.all = msg.items
		a.logger.Info("items loaded", "count", len(msg.items), "source", a.source)
		a.applyFilter()
		return a, nil

	case errMsg:
		a.loading = false
		a.err = msg.err.Error()
		a.logger.Error("load items", "err", msg.err)
		return a, nil

	case frameMsg:
		a.framePending = false
		a.resolveNow()
		return a, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.list.ScrollBy(-wheelStep)
			cmd := a.requestFrame()
			return a, cmd
		case tea.MouseButtonWheelDown:
			a.list.ScrollBy(wheelStep)
			cmd := a.requestFrame()
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case a.filtering:
			return a.handleFilterKeys(msg)
		case a.jumping:
			return a.handleJumpKeys(msg)
		case a.helpOpen:
			if isBack(msg) || isKey(msg, "?", "q") {
				a.helpOpen = false
			}
			return a, nil
		}
		return a.handleKeys(msg)
	}

	if a.filtering {
		var cmd tea.Cmd
		a.filter, cmd = a.filter.Update(msg)
		return a, cmd
	}
	if a.jumping {
		var cmd tea.Cmd
		a.jump, cmd = a.jump.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vim := a.config.VimKeys
	a.notice = ""

	switch {
	case isQuit(msg):
		return a, tea.Quit
	case isKey(msg, "?"):
		a.helpOpen = true
		return a, nil
	case isKey(msg, "/"):
		a.filtering = true
		cmd := a.filter.Focus()
		return a, cmd
	case isKey(msg, ":"):
		a.jumping = true
		a.jump.SetValue("")
		cmd := a.jump.Focus()
		return a, cmd
	case isKey(msg, "r"):
		if a.load == nil || a.loading {
			return a, nil
		}
		a.loading = true
		return a, a.loadCmd()
	case isEnter(msg):
		a.detailOpen = !a.detailOpen
		a.resolveNow()
		return a, nil
	case isBack(msg):
		if a.filter.Value() != "" {
			a.filter.SetValue("")
			a.applyFilter()
		} else if a.detailOpen {
			a.detailOpen = false
			a.resolveNow()
		}
		return a, nil
	case isUp(msg, vim):
		a.list.Up()
	case isDown(msg, vim):
		a.list.Down()
	case isPageUp(msg, vim):
		a.list.PageUp()
	case isPageDown(msg, vim):
		a.list.PageDown()
	case isTop(msg, vim):
		a.list.Top()
	case isBottom(msg, vim):
		a.list.Bottom()
	default:
		return a, nil
	}
	cmd := a.requestFrame()
	return a, cmd
}

func (a App) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "ctrl+c"):
		return a, tea.Quit
	case isBack(msg):
		a.filtering = false
		a.filter.Blur()
		a.filter.SetValue("")
		a.applyFilter()
		return a, nil
	case isEnter(msg):
		a.filtering = false
		a.filter.Blur()
		a.resolveNow()
		return a, nil
	case isKey(msg, "up"):
		a.list.Up()
		cmd := a.requestFrame()
		return a, cmd
	case isKey(msg, "down"):
		a.list.Down()
		cmd := a.requestFrame()
		return a, cmd
	}

	before := a.filter.Value()
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	if a.filter.Value() != before {
		a.applyFilter()
	}
	return a, cmd
}

func (a App) handleJumpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "ctrl+c"):
		return a, tea.Quit
	case isBack(msg):
		a.jumping = false
		a.jump.Blur()
		return a, nil
	case isEnter(msg):
		a.jumping = false
		a.jump.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(a.jump.Value()))
		if err != nil || n < 1 || n > a.list.Len() {
			a.notice = fmt.Sprintf("no item %q", a.jump.Value())
			return a, nil
		}
		a.list.Select(n - 1)
		cmd := a.requestFrame()
		return a, cmd
	}

	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(msg)
	return a, cmd
}

// applyFilter changes the list length, which forces a table rebuild, so the
// window is resolved right away instead of on the next frame.
func (a *App) applyFilter() {
	shown := items.Filter(a.all, a.filter.Value())
	a.list.SetItems(shown)
	a.logger.Debug("filter", "query", a.filter.Value(), "shown", len(shown))
	a.resolveNow()
}

// layout sizes the list to whatever the surrounding chrome leaves.
func (a *App) layout() {
	if a.width <= 0 || a.height <= 0 {
		return
	}
	used := chromeLines + lipgloss.Height(a.renderHints())
	if a.detailOpen {
		used += lipgloss.Height(a.renderDetail())
	}
	a.listHeight = max(1, a.height-used)
	a.list.SetSize(a.width, a.listHeight)
}

func (a App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}

	filterLine := MutedStyle.Render("press / to filter")
	if a.filtering || a.filter.Value() != "" {
		filterLine = a.filter.View()
	}

	var body string
	switch {
	case a.helpOpen:
		body = a.renderHelp()
	case a.jumping:
		body = components.InputDialog("Jump to item", a.jump.View(),
			fmt.Sprintf("1-%d · enter to go · esc to cancel", a.list.Len()))
	case a.err != "":
		body = components.ErrorBox("Error", a.err, a.width)
	case a.list.Err() != nil:
		body = components.ErrorBox("Layout error", a.list.Err().Error(), a.width)
	case a.loading:
		body = MutedStyle.Render("loading items…")
	case a.list.Len() == 0:
		body = MutedStyle.Render("no items")
	default:
		body = a.list.View()
	}

	sections := []string{
		RenderBanner(a.source, a.list.Len(), len(a.all), a.width),
		ansi.Truncate(filterLine, a.width, ""),
		fitLines(body, a.listHeight),
	}
	if a.detailOpen {
		sections = append(sections, a.renderDetail())
	}
	sections = append(sections, ansi.Truncate(a.renderPosition(), a.width, ""), a.renderHints())
	return strings.Join(sections, "\n")
}

func (a App) renderPosition() string {
	maxOffset := max(0, a.list.TotalHeight()-a.listHeight)
	pos := components.Position(a.list.Window().Visible, a.list.Len(), a.list.Offset(), maxOffset)
	if a.notice != "" {
		pos += "  " + ErrorStyle.Render(components.SanitizeOneLine(a.notice))
	}
	return "  " + pos
}

func (a App) renderDetail() string {
	contentWidth := components.BoxContentWidth(a.width)
	var lines []string
	title := "Details"

	it, ok := a.list.SelectedItem()
	if !ok {
		lines = append(lines, MutedStyle.Render("no item selected"))
	} else {
		title = it.Title
		lines = append(lines, components.InfoRow("id", it.ID))
		if len(it.Tags) > 0 {
			lines = append(lines, components.InfoRow("tags", strings.Join(it.Tags, ", ")))
		}
		lines = append(lines, components.MetadataLines(it.Meta)...)
		if body := strings.TrimSpace(it.Body); body != "" {
			lines = append(lines, "")
			lines = append(lines, strings.Split(components.SanitizeText(body), "\n")...)
		}
	}

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, contentWidth, "…")
	}
	return components.TitledBox(title, fitLines(strings.Join(lines, "\n"), detailBodyLines), a.width)
}

func (a App) statusHints() []string {
	switch {
	case a.filtering:
		return []string{
			components.Hint("enter", "Apply"),
			components.Hint("esc", "Clear"),
		}
	case a.jumping:
		return []string{
			components.Hint("enter", "Go"),
			components.Hint("esc", "Cancel"),
		}
	case a.helpOpen:
		return []string{components.Hint("esc", "Close")}
	}
	scroll := "↑/↓"
	if a.config.VimKeys {
		scroll = "j/k"
	}
	return []string{
		components.Hint(scroll, "Scroll"),
		components.Hint("/", "Filter"),
		components.Hint("enter", "Details"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}
}

func (a App) renderHints() string {
	return components.StatusBar(a.statusHints(), a.width)
}

type keyHelp struct{ key, desc string }

func (a App) helpKeys() []keyHelp {
	if a.config.VimKeys {
		return []keyHelp{
			{"↑/↓ j/k", "move selection"},
			{"pgup/pgdn", "page up / down (ctrl+b / ctrl+f)"},
			{"home/end g/G", "first / last item"},
			{"wheel", "scroll without moving selection"},
			{"/", "filter items"},
			{":", "jump to item number"},
			{"enter", "toggle details"},
			{"r", "reload items"},
			{"esc", "clear filter / close details"},
			{"q", "quit"},
		}
	}
	return []keyHelp{
		{"↑/↓", "move selection"},
		{"pgup/pgdn", "page up / down"},
		{"home/end", "first / last item"},
		{"wheel", "scroll without moving selection"},
		{"/", "filter items"},
		{":", "jump to item number"},
		{"enter", "toggle details"},
		{"r", "reload items"},
		{"esc", "clear filter / close details"},
		{"q", "quit"},
	}
}

func (a App) renderHelp() string {
	keys := a.helpKeys()
	lines := make([]string, 0, len(keys)+2)
	lines = append(lines, MutedStyle.Render("esc to close"), "")
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-13s %s", k.key, MutedStyle.Render(k.desc)))
	}
	return components.TitledBox("Help", strings.Join(lines, "\n"), a.width)
}
