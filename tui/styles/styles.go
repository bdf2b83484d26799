package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/parkcraft/internal/news"
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	AlertColor     = lipgloss.Color("#EF4444") // Red
	InfoColor      = lipgloss.Color("#3B82F6") // Blue

	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Message styles
var (
	DateStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	MessageStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// DisabledStyle marks messages whose subject button is disabled.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Italic(true)

	AgeBarFullStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	AgeBarEmptyStyle = lipgloss.NewStyle().
				Foreground(BorderColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)

	StatusBarAlertStyle = lipgloss.NewStyle().
				Foreground(AlertColor).
				Bold(true)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// KindColor picks the icon colour of a message kind.
func KindColor(k news.Kind) lipgloss.Color {
	switch k {
	case news.KindMoney:
		return SecondaryColor
	case news.KindRide, news.KindPeepOnRide:
		return AccentColor
	case news.KindPeep, news.KindPeeps:
		return InfoColor
	case news.KindAward, news.KindGraph, news.KindResearch:
		return PrimaryColor
	default:
		return TextSecondaryColor
	}
}

var kindIcons = map[news.Kind]string{
	news.KindRide:       "🎢",
	news.KindPeepOnRide: "🎟",
	news.KindPeep:       "🙂",
	news.KindMoney:      "💰",
	news.KindBlank:      "📍",
	news.KindResearch:   "🔬",
	news.KindPeeps:      "👥",
	news.KindAward:      "🏆",
	news.KindGraph:      "📈",
}

// KindIcon renders the coloured icon of a message kind.
func KindIcon(k news.Kind) string {
	icon, ok := kindIcons[k]
	if !ok {
		icon = "•"
	}
	return lipgloss.NewStyle().Foreground(KindColor(k)).Render(icon)
}

// AgeBar renders how far ticks has progressed toward limit in width cells.
func AgeBar(ticks, limit, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if limit > 0 {
		filled = min(ticks*width/limit, width)
	}
	return AgeBarFullStyle.Render(strings.Repeat("█", filled)) +
		AgeBarEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// FormatMoney formats a whole-pound amount.
func FormatMoney(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "£" + b.String()
}

// Truncate shortens s to at most width cells, ending with "...".
func Truncate(s string, width int) string {
	if width <= 3 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
