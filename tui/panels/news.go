package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	newsview "github.com/zappabad/parkcraft/internal/news/view"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/tui/styles"
)

// MessagesPanel lists archived messages, newest first.
type MessagesPanel struct {
	entries       []newsview.Entry
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewMessagesPanel creates a new recent messages panel.
func NewMessagesPanel() *MessagesPanel {
	return &MessagesPanel{}
}

// Init initializes the panel.
func (p *MessagesPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MessagesPanel) Update(msg tea.Msg) (*MessagesPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.entries)-1 {
				p.selectedIndex++
				visible := p.visibleItems()
				if p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		}
	}
	return p, nil
}

func (p *MessagesPanel) visibleItems() int {
	return max(p.height-4, 1)
}

// View renders the panel.
func (p *MessagesPanel) View() string {
	var content strings.Builder

	if len(p.entries) == 0 {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No recent messages"))
	} else {
		visible := p.visibleItems()
		start := p.scrollOffset
		end := min(start+visible, len(p.entries))

		for i := start; i < end; i++ {
			rec := p.entries[i].Record

			date := styles.DateStyle.Render(fmt.Sprintf("%-22s", park.FormatDate(rec.MonthYear, rec.Day)))
			textStyle := styles.MessageStyle
			if rec.HasButton() {
				textStyle = styles.DisabledStyle
			}
			text := textStyle.Render(styles.Truncate(rec.Text, p.width-32))

			line := fmt.Sprintf("%s %s %s", styles.KindIcon(rec.Kind), date, text)
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			} else {
				line = styles.RowStyle.Render(line)
			}

			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.entries) > visible {
			scrollInfo := fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.entries))
			content.WriteString("\n")
			content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(scrollInfo))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Recent Messages", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(max(p.width-2, 0)).Height(max(p.height-2, 0)).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MessagesPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MessagesPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetEntries replaces the listed messages.
func (p *MessagesPanel) SetEntries(entries []newsview.Entry) {
	p.entries = entries
	if p.selectedIndex >= len(p.entries) {
		p.selectedIndex = max(len(p.entries)-1, 0)
	}
	if p.scrollOffset > p.selectedIndex {
		p.scrollOffset = p.selectedIndex
	}
}

// Selected returns the selected message.
func (p *MessagesPanel) Selected() (newsview.Entry, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.entries) {
		return p.entries[p.selectedIndex], true
	}
	return newsview.Entry{}, false
}
