package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	newsview "github.com/zappabad/parkcraft/internal/news/view"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/tui/styles"
)

// TickerPanel shows the current message and how long it has left on screen.
type TickerPanel struct {
	parkName string
	date     park.Date
	cash     int64
	current  newsview.Entry
	has      bool
	waiting  int
	limit    int
	focused  bool
	width    int
	height   int
}

// NewTickerPanel creates a new ticker panel.
func NewTickerPanel() *TickerPanel {
	return &TickerPanel{}
}

// Init initializes the panel.
func (p *TickerPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel. The ticker has no keys of its own.
func (p *TickerPanel) Update(msg tea.Msg) (*TickerPanel, tea.Cmd) {
	return p, nil
}

// SetStatus updates the park header and the current message.
func (p *TickerPanel) SetStatus(parkName string, date park.Date, cash int64, snap newsview.Snapshot) {
	p.parkName = parkName
	p.date = date
	p.cash = cash
	p.current, p.has = snap.Current()
	p.waiting = len(snap.Upcoming())
	p.limit = snap.RemoveTime
}

// Current returns the current message, if any.
func (p *TickerPanel) Current() (newsview.Entry, bool) {
	return p.current, p.has
}

// View renders the panel.
func (p *TickerPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%s  %s  %s", p.parkName, p.date, styles.FormatMoney(p.cash))
	content.WriteString(styles.DateStyle.Render(header))
	content.WriteString("\n\n")

	if !p.has {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No messages"))
	} else {
		rec := p.current.Record
		textStyle := styles.MessageStyle
		if rec.HasButton() {
			textStyle = styles.DisabledStyle
		}
		text := styles.Truncate(rec.Text, p.width-8)
		content.WriteString(styles.KindIcon(rec.Kind) + " " + textStyle.Render(text))
		content.WriteString("\n")

		barWidth := max(p.width-20, 0)
		bar := styles.AgeBar(int(rec.Ticks), p.limit, barWidth)
		info := fmt.Sprintf(" %d/%d", rec.Ticks, p.limit)
		if p.waiting > 0 {
			info += fmt.Sprintf("  +%d", p.waiting)
		}
		content.WriteString(bar + styles.DateStyle.Render(info))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Ticker", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(max(p.width-2, 0)).Height(max(p.height-2, 0)).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *TickerPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *TickerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
