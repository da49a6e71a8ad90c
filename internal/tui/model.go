package tui

import (
	"time"

	"github.com/Mr-Dark-debug/termwallet/internal/logging"
	"github.com/Mr-Dark-debug/termwallet/internal/navigation"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// DefaultPollInterval is how long the UI waits for input before drawing
// the frame again.
const DefaultPollInterval = 100 * time.Millisecond

// Config tunes a Model.
type Config struct {
	StartPage    navigation.Page
	PollInterval time.Duration
	Logger       *log.Logger
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The only state it keeps beyond the
// window size is which page is shown.
type Model struct {
	nav          navigation.State
	pollInterval time.Duration
	log          *log.Logger

	width  int
	height int
}

// NewModel creates a model positioned on cfg.StartPage.
func NewModel(cfg Config) Model {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return Model{
		nav:          navigation.NewState(cfg.StartPage),
		pollInterval: interval,
		log:          logger,
	}
}

// Page returns the page currently shown.
func (m Model) Page() navigation.Page {
	return m.nav.Current
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// pollMsg fires when a poll interval passes, with or without input.
type pollMsg time.Time

func (m Model) poll() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// ────────────────────────────────────────────────────────────
// Init / Update
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.poll()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pollMsg:
		return m, m.poll()
	}

	return m, nil
}

// handleKey maps q to quit and h/w to a page. Every other key is ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Input read in one burst arrives as a single multi-rune message.
	// Replay it key by key; nothing after a quit is applied.
	if msg.Type == tea.KeyRunes && !msg.Paste && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
			m = next.(Model)
			if cmd != nil {
				return m, cmd
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.log.Info("quit requested", "key", msg.String(), "page", m.nav.Current)
		return m, tea.Quit

	case key.Matches(msg, keys.Home):
		m.navigate(navigation.Home)

	case key.Matches(msg, keys.Welcome):
		m.navigate(navigation.Welcome)
	}

	return m, nil
}

func (m *Model) navigate(p navigation.Page) {
	from := m.nav.Current
	if m.nav.Go(p) {
		m.log.Debug("page changed", "from", from, "to", p)
	}
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return renderFrame(m.nav.Current, m.width, m.height)
}
