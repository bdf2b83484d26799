package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/parkcraft/internal/game"
	newsview "github.com/zappabad/parkcraft/internal/news/view"
	"github.com/zappabad/parkcraft/internal/ui"
	"github.com/zappabad/parkcraft/tui/panels"
	"github.com/zappabad/parkcraft/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusTicker   PanelFocus = 0
	FocusMessages PanelFocus = 1
)

const panelCount = 2

type keyMap struct {
	Dismiss key.Binding
	Open    key.Binding
	Remove  key.Binding
	Locate  key.Binding
	Focus   key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Open, k.Remove, k.Locate, k.Focus, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
	Locate:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "locate")),
	Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the main TUI application model.
type Model struct {
	game *game.Game

	tickerPanel   *panels.TickerPanel
	messagesPanel *panels.MessagesPanel
	help          help.Model

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg   string
	statusAlert bool
	ready       bool
}

// NewModel creates a new TUI model over a running game.
func NewModel(g *game.Game) *Model {
	return &Model{
		game:          g,
		tickerPanel:   panels.NewTickerPanel(),
		messagesPanel: panels.NewMessagesPanel(),
		help:          help.New(),
		focusedPanel:  FocusMessages,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	m.refresh()
	return tea.Batch(
		m.tickerPanel.Init(),
		m.messagesPanel.Init(),
		m.listenEvents(),
		m.tickRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Focus):
			m.focusedPanel = (m.focusedPanel + 1) % panelCount
		case key.Matches(msg, keys.Dismiss):
			m.game.Dismiss()
			m.refresh()
		case key.Matches(msg, keys.Open):
			if e, ok := m.selectedEntry(); ok {
				m.setError(m.game.OpenSubject(e))
			}
		case key.Matches(msg, keys.Remove):
			if e, ok := m.selectedEntry(); ok {
				m.setError(m.game.Remove(e))
				m.refresh()
			}
		case key.Matches(msg, keys.Locate):
			m.locateSelected()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case eventMsg:
		m.handleEvent(ui.Event(msg))
		cmds = append(cmds, m.listenEvents())

	case tickMsg:
		m.refresh()
		cmds = append(cmds, m.tickRefresh())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusTicker:
		m.tickerPanel, cmd = m.tickerPanel.Update(msg)
	case FocusMessages:
		m.messagesPanel, cmd = m.messagesPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// selectedEntry returns the message the key actions apply to: the current
// message in the ticker, the highlighted one in the message list.
func (m *Model) selectedEntry() (newsview.Entry, bool) {
	if m.focusedPanel == FocusTicker {
		return m.tickerPanel.Current()
	}
	return m.messagesPanel.Selected()
}

func (m *Model) locateSelected() {
	e, ok := m.selectedEntry()
	if !ok {
		return
	}
	loc, err := m.game.Locate(e)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Scrolled to %d, %d (height %d)", loc.X, loc.Y, loc.Z))
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusAlert = false
}

// setError shows err in the status bar. A nil err leaves it unchanged.
func (m *Model) setError(err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, game.ErrMessageMoved):
		m.statusMsg = "Message moved"
	case errors.Is(err, game.ErrNoSubject):
		m.statusMsg = "Nothing to open"
	case errors.Is(err, game.ErrNoLocation):
		m.statusMsg = "No location"
	default:
		m.statusMsg = err.Error()
	}
	m.statusAlert = true
}

func (m *Model) handleEvent(ev ui.Event) {
	switch ev.Intent {
	case ui.IntentInvalidateTicker, ui.IntentInvalidateRecentNews:
		m.refresh()
	default:
		m.setStatus(describeWindow(ev))
	}
}

func describeWindow(ev ui.Event) string {
	switch ev.Intent {
	case ui.IntentOpenRide:
		return fmt.Sprintf("Opened ride #%d", ev.RideID)
	case ui.IntentOpenPeep:
		return fmt.Sprintf("Opened guest #%d", ev.PeepID)
	case ui.IntentOpenFinances:
		return "Opened finances"
	case ui.IntentOpenParkView:
		if ev.View == ui.ParkViewAwards {
			return "Opened park awards"
		}
		return "Opened park rating"
	case ui.IntentOpenGuestList:
		return fmt.Sprintf("Opened guest list (thought %d)", ev.Subject)
	case ui.IntentNewRideOfType:
		return fmt.Sprintf("Opened new ride type %d/%d", ev.RideType, ev.EntryIndex)
	case ui.IntentOpenSceneryTab:
		return fmt.Sprintf("Opened scenery tab %d", ev.Tab)
	}
	return ev.Type()
}

func (m *Model) refresh() {
	st := m.game.Snapshot()
	m.tickerPanel.SetStatus(st.ParkName, st.Date, st.Cash, st.News)
	m.messagesPanel.SetEntries(st.News.Latest(len(st.News.Archived)))
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.tickerPanel.SetFocus(m.focusedPanel == FocusTicker)
	m.messagesPanel.SetFocus(m.focusedPanel == FocusMessages)

	// Layout:
	// ┌──────────────────────────────┐
	// │ Ticker                       │
	// ├──────────────────────────────┤
	// │ Recent Messages              │
	// └──────────────────────────────┘
	tickerHeight := 7
	messagesHeight := max(m.height-tickerHeight-1, 3)

	m.tickerPanel.SetSize(m.width, tickerHeight)
	m.messagesPanel.SetSize(m.width, messagesHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tickerPanel.View(),
		m.messagesPanel.View(),
		m.renderStatusBar(),
	)
}

func (m *Model) renderStatusBar() string {
	focus := "Messages"
	if m.focusedPanel == FocusTicker {
		focus = "Ticker"
	}
	bar := styles.StatusBarKeyStyle.Render(focus) + " " + m.help.View(keys)
	if m.statusMsg != "" {
		style := styles.StatusBarDescStyle
		if m.statusAlert {
			style = styles.StatusBarAlertStyle
		}
		bar += " │ " + style.Render(m.statusMsg)
	}
	return styles.StatusBarStyle.Width(m.width).Render(bar)
}

// eventMsg carries a UI intent from the game.
type eventMsg ui.Event

func (m *Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.game.Events()
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// tickMsg is sent periodically to refresh data.
type tickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}
