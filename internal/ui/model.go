package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"FoodTechScanner/internal/browse"
	"FoodTechScanner/internal/curation"
	"FoodTechScanner/internal/domain"
	"FoodTechScanner/internal/ports"
	"FoodTechScanner/internal/session"
)

type viewMode int

const (
	modeBrowse viewMode = iota
	modePrompt
	modeCuration
)

// fetchDoneMsg carries a finished fetch run back onto the event loop.
type fetchDoneMsg struct {
	collection domain.Collection
	stats      domain.Stats
}

// curationDoneMsg carries the completion reply (or its error string).
type curationDoneMsg struct {
	text string
}

// Deps is everything the surface needs from the application.
type Deps struct {
	Collector    ports.Collector
	Curator      ports.Curator
	Store        ports.SessionStore
	PageSize     int
	DefaultLabel domain.Label
	Logger       *slog.Logger
}

// Model is the bubbletea root: one screen, three modes (browse, prompt
// editor, curation reply). All session mutations happen here, on the event
// loop, through pure state transitions.
type Model struct {
	deps  Deps
	state session.State
	mode  viewMode

	prompt textarea.Model
	result viewport.Model
	spin   spinner.Model

	fetching bool
	curating bool
	status   string

	width  int
	height int
}

// New builds the surface and bootstraps session state from the store.
func New(deps Deps) Model {
	if deps.PageSize < 1 {
		deps.PageSize = 10
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(76)
	ta.SetHeight(16)
	ta.SetValue(curation.DefaultPrompt)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		deps:   deps,
		state:  session.Load(deps.Store, deps.DefaultLabel),
		prompt: ta,
		result: viewport.New(76, 20),
		spin:   sp,
	}
}

// Init starts the spinner's tick loop.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update routes terminal events and finished work back into the state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.prompt.SetWidth(msg.Width - 4)
		m.prompt.SetHeight(max(6, msg.Height-10))
		m.result.Width = msg.Width - 4
		m.result.Height = max(6, msg.Height-7)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		m.fetching = false
		m.state = m.state.ApplyFetch(msg.collection, msg.stats)
		session.Save(m.deps.Store, m.state)
		m.status = "✅ Articles fetched successfully!"
		m.info("fetch rendered", "articles", msg.stats.Total, "domain", string(m.state.Domain))
		return m, nil

	case curationDoneMsg:
		m.curating = false
		m.mode = modeCuration
		m.result.SetContent(wrapStyle.Width(m.result.Width).Render(msg.text))
		m.result.GotoTop()
		m.info("curation rendered", "chars", len(msg.text))
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modePrompt:
		if msg.String() == "esc" {
			m.mode = modeBrowse
			m.prompt.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd

	case modeCuration:
		switch msg.String() {
		case "esc", "q":
			m.mode = modeBrowse
			return m, nil
		}
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "f":
		if m.fetching {
			return m, nil
		}
		m.fetching = true
		m.status = ""
		return m, tea.Batch(m.spin.Tick, m.fetchCmd())

	case "e":
		if !m.state.Fetched {
			return m, nil
		}
		m.mode = modePrompt
		return m, m.prompt.Focus()

	case "g":
		if m.curating || !m.state.Fetched {
			return m, nil
		}
		m.curating = true
		return m, tea.Batch(m.spin.Tick, m.curateCmd())

	case "tab":
		return m.cycleDomain(1), nil
	case "shift+tab":
		return m.cycleDomain(-1), nil

	case "left", "h":
		return m.turnPage(-1), nil
	case "right", "l":
		return m.turnPage(1), nil
	}

	return m, nil
}

func (m Model) cycleDomain(step int) Model {
	labels := m.state.Articles.Labels()
	if len(labels) == 0 {
		return m
	}

	idx := 0
	for i, l := range labels {
		if l == m.state.Domain {
			idx = i
			break
		}
	}

	next := labels[(idx+step+len(labels))%len(labels)]
	m.state = m.state.ApplyDomain(next)
	session.Save(m.deps.Store, m.state)
	return m
}

func (m Model) turnPage(step int) Model {
	if !m.state.Fetched {
		return m
	}

	articles := m.state.Articles.Articles(m.state.Domain)
	total := browse.TotalPages(len(articles), m.deps.PageSize)
	m.state = m.state.ApplyPage(m.state.Page+step, total)
	session.Save(m.deps.Store, m.state)
	return m
}

// fetchCmd runs the aggregator off the event loop and reports back.
func (m Model) fetchCmd() tea.Cmd {
	collector := m.deps.Collector
	return func() tea.Msg {
		coll, stats := collector.Collect(context.Background())
		return fetchDoneMsg{collection: coll, stats: stats}
	}
}

// curateCmd snapshots the collection and prompt, then dispatches curation.
func (m Model) curateCmd() tea.Cmd {
	curator := m.deps.Curator
	articles := m.state.Articles
	prompt := m.prompt.Value()
	return func() tea.Msg {
		return curationDoneMsg{text: curator.TopArticles(context.Background(), articles, prompt)}
	}
}

func (m Model) info(msg string, args ...any) {
	if m.deps.Logger != nil {
		m.deps.Logger.Info(msg, args...)
	}
}
