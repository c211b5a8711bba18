package menu

// Screen identifies the menu currently shown.
type Screen int

const (
	// ScreenMain is the top-level menu.
	ScreenMain Screen = iota
	// ScreenAutoConnect is the auto-connect settings submenu.
	ScreenAutoConnect
	// ScreenCountrySelect lists countries to pick from.
	ScreenCountrySelect
	// ScreenGroupSelect lists server groups to pick from.
	ScreenGroupSelect
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenAutoConnect:
		return "autoconnect"
	case ScreenCountrySelect:
		return "country_select"
	case ScreenGroupSelect:
		return "group_select"
	default:
		return "unknown"
	}
}

// Selecting reports whether s is a list selection screen.
func (s Screen) Selecting() bool {
	return s == ScreenCountrySelect || s == ScreenGroupSelect
}

// Purpose records why a selection screen was opened.
type Purpose int

const (
	// PurposeConnect connects to the chosen entry.
	PurposeConnect Purpose = iota
	// PurposeAutoConnect sets the chosen entry as the auto-connect target.
	PurposeAutoConnect
)

// State is the controller's position in the menu.
type State struct {
	Screen  Screen
	Filter  string
	Purpose Purpose
	// AwaitingFilter is set after "f" until the next line supplies the term.
	AwaitingFilter bool
}
