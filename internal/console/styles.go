package console

import "github.com/charmbracelet/lipgloss"

// Color palette for the menu.
const (
	ColorHeader  = lipgloss.Color("39")
	ColorKey     = lipgloss.Color("214")
	ColorMuted   = lipgloss.Color("245")
	ColorSuccess = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("220")
	ColorError   = lipgloss.Color("196")
)

// titleWidth matches the rule width of the classic menu banner.
const titleWidth = 50

// columnGap separates the two list columns.
const columnGap = 4

// Styles groups every style the console renders with.
type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Item    lipgloss.Style
	Muted   lipgloss.Style
	Notice  lipgloss.Style
	Success lipgloss.Style
	Tip     lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
	Column  lipgloss.Style
}

// NewStyles builds styles bound to r. Without color only layout
// attributes are kept.
func NewStyles(r *lipgloss.Renderer, color bool) Styles {
	s := Styles{
		Title: r.NewStyle().
			Bold(true).
			Width(titleWidth).
			Align(lipgloss.Center).
			Border(lipgloss.DoubleBorder(), true, false),
		Key:     r.NewStyle().Bold(true),
		Item:    r.NewStyle(),
		Muted:   r.NewStyle().Italic(true),
		Notice:  r.NewStyle(),
		Success: r.NewStyle().Bold(true),
		Tip:     r.NewStyle(),
		Error:   r.NewStyle().Bold(true),
		Prompt:  r.NewStyle().Bold(true),
		Column:  r.NewStyle().PaddingRight(columnGap),
	}
	if !color {
		return s
	}

	s.Title = s.Title.Foreground(ColorHeader).BorderForeground(ColorHeader)
	s.Key = s.Key.Foreground(ColorKey)
	s.Muted = s.Muted.Foreground(ColorMuted)
	s.Notice = s.Notice.Foreground(ColorWarning)
	s.Success = s.Success.Foreground(ColorSuccess)
	s.Tip = s.Tip.Foreground(ColorWarning)
	s.Error = s.Error.Foreground(ColorError)
	return s
}
