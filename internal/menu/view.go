package menu

import (
	"context"

	"github.com/rshade/vpnmenu/internal/pagination"
)

// Option is one entry of a fixed menu.
type Option struct {
	Key   string
	Label string
}

// View describes the current screen for rendering.
type View struct {
	Screen  Screen
	Title   string
	Options []Option

	// List is set on selection screens.
	List        *pagination.Plan
	Filter      string
	NoMatches   bool
	Suggestions []string

	// Notice is shown above the list, e.g. when a stale list is displayed.
	Notice string
	Prompt string
}

//nolint:gochecknoglobals // Fixed menu definitions.
var (
	mainOptions = []Option{
		{Key: "1", Label: "Quick connect"},
		{Key: "2", Label: "Connect to a country"},
		{Key: "3", Label: "Connect to a server group"},
		{Key: "4", Label: "Auto-connect settings"},
		{Key: "5", Label: "Disconnect"},
		{Key: "6", Label: "Show status"},
		{Key: "a", Label: "Account information"},
		{Key: "r", Label: "Refresh country and group lists"},
		{Key: "0", Label: "Exit"},
	}
	autoConnectOptions = []Option{
		{Key: "1", Label: "Enable auto-connect to the best server"},
		{Key: "2", Label: "Enable auto-connect to a country"},
		{Key: "3", Label: "Enable auto-connect to a server group"},
		{Key: "4", Label: "Disable auto-connect"},
		{Key: "0", Label: "Back to main menu"},
	}
)

// View describes the screen for the current state.
func (c *Controller) View(_ context.Context) View {
	switch c.state.Screen {
	case ScreenAutoConnect:
		return View{
			Screen:  ScreenAutoConnect,
			Title:   "Auto-Connect Settings",
			Options: autoConnectOptions,
			Prompt:  "Enter your choice",
		}
	case ScreenCountrySelect, ScreenGroupSelect:
		return c.selectionView()
	default:
		return View{
			Screen:  ScreenMain,
			Title:   "NordVPN Menu",
			Options: mainOptions,
			Prompt:  "Enter your choice",
		}
	}
}

func (c *Controller) selectionView() View {
	plan := c.list.Plan()
	v := View{
		Screen:      c.state.Screen,
		Title:       selectionTitle(c.state),
		List:        &plan,
		Filter:      c.state.Filter,
		NoMatches:   c.list.NoMatches(),
		Suggestions: c.list.Suggestions(c.opts.MaxSuggestions),
		Notice:      c.notice,
		Options: []Option{
			{Key: "f", Label: "Filter"},
			{Key: "0", Label: "Back to main menu"},
		},
		Prompt: "Enter a number",
	}
	if c.state.Filter != "" {
		v.Options = []Option{
			{Key: "f", Label: "New filter"},
			{Key: "c", Label: "Clear filter"},
			{Key: "0", Label: "Back to main menu"},
		}
	}
	if c.state.AwaitingFilter {
		v.Prompt = "Filter term"
	}
	return v
}

func selectionTitle(s State) string {
	switch {
	case s.Purpose == PurposeAutoConnect && s.Screen == ScreenGroupSelect:
		return "Select a Server Group for Auto-Connect"
	case s.Purpose == PurposeAutoConnect:
		return "Select a Country for Auto-Connect"
	case s.Screen == ScreenGroupSelect:
		return "Select a Server Group"
	default:
		return "Select a Country"
	}
}
