package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/internal/pagination"
	"github.com/rshade/vpnmenu/internal/runner"
	"github.com/rshade/vpnmenu/internal/vpn"
)

// Client is the set of VPN operations the menu can trigger.
type Client interface {
	QuickConnect(ctx context.Context) runner.Result
	ConnectCountry(ctx context.Context, country string) runner.Result
	ConnectGroup(ctx context.Context, group string) runner.Result
	Disconnect(ctx context.Context) runner.Result
	Status(ctx context.Context) runner.Result
	Account(ctx context.Context) runner.Result
	AutoConnectOn(ctx context.Context, target string) runner.Result
	AutoConnectOff(ctx context.Context) runner.Result
}

// ListCache supplies the country and group lists.
type ListCache interface {
	Get(ctx context.Context, category cache.Category) ([]string, error)
	InvalidateAll()
}

// Options tunes list presentation and tip wording.
type Options struct {
	ColumnsThreshold int
	SortOrder        string
	MaxSuggestions   int
	Hints            Hints
}

// Step is the result of handling one input line.
type Step struct {
	// Outcome is set when an action ran or a list could not be shown.
	// The user should acknowledge it before the next screen.
	Outcome *Outcome
	// Message is short feedback about invalid input.
	Message string
	// Quit asks the caller to end the session.
	Quit bool
}

// Controller drives the menu.
type Controller struct {
	client Client
	lists  ListCache
	opts   Options

	state  State
	list   *pagination.SelectableList
	notice string
}

// NewController creates a Controller positioned at the main menu.
func NewController(client Client, lists ListCache, opts Options) *Controller {
	if opts.ColumnsThreshold <= 0 {
		opts.ColumnsThreshold = pagination.DefaultColumnsThreshold
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = pagination.DefaultMaxSuggestions
	}
	return &Controller{client: client, lists: lists, opts: opts}
}

// State returns the current menu position.
func (c *Controller) State() State {
	return c.state
}

// Reset returns to the main menu and drops any list being shown.
func (c *Controller) Reset() {
	c.state = State{}
	c.list = nil
	c.notice = ""
}

// Handle applies one line of input.
func (c *Controller) Handle(ctx context.Context, input string) Step {
	input = strings.TrimSpace(input)
	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "menu").
		Str("screen", c.state.Screen.String()).
		Str("input", input).
		Msg("handling input")

	switch c.state.Screen {
	case ScreenAutoConnect:
		return c.handleAutoConnect(ctx, input)
	case ScreenCountrySelect, ScreenGroupSelect:
		return c.handleSelection(ctx, input)
	default:
		return c.handleMain(ctx, input)
	}
}

func (c *Controller) handleMain(ctx context.Context, input string) Step {
	switch strings.ToLower(input) {
	case "1":
		return c.act(ctx, "Quick connect", c.client.QuickConnect(ctx), true)
	case "2":
		return c.openList(ctx, ScreenCountrySelect, PurposeConnect)
	case "3":
		return c.openList(ctx, ScreenGroupSelect, PurposeConnect)
	case "4":
		c.state = State{Screen: ScreenAutoConnect}
		return Step{}
	case "5":
		return c.act(ctx, "Disconnect", c.client.Disconnect(ctx), true)
	case "6", "s":
		return c.act(ctx, "Status check", c.client.Status(ctx), false)
	case "a":
		return c.act(ctx, "Account check", c.client.Account(ctx), false)
	case "r":
		c.lists.InvalidateAll()
		return Step{Outcome: &Outcome{
			Kind:    KindSuccess,
			Action:  "Refresh",
			Message: "Country and group lists will be reloaded on next use.",
		}}
	case "0", "q":
		return Step{Quit: true}
	default:
		return invalidChoice(input, "0-6, a, r or q")
	}
}

func (c *Controller) handleAutoConnect(ctx context.Context, input string) Step {
	switch input {
	case "1":
		c.Reset()
		return c.act(ctx, "Enable auto-connect", c.client.AutoConnectOn(ctx, ""), true)
	case "2":
		return c.openList(ctx, ScreenCountrySelect, PurposeAutoConnect)
	case "3":
		return c.openList(ctx, ScreenGroupSelect, PurposeAutoConnect)
	case "4":
		c.Reset()
		return c.act(ctx, "Disable auto-connect", c.client.AutoConnectOff(ctx), true)
	case "0":
		c.Reset()
		return Step{}
	default:
		return invalidChoice(input, "0-4")
	}
}

func (c *Controller) handleSelection(ctx context.Context, input string) Step {
	if c.state.AwaitingFilter {
		c.state.AwaitingFilter = false
		c.applyFilter(input)
		return Step{}
	}

	plan := c.list.Plan()
	sel, err := pagination.ParseSelection(input, plan.Len())
	if err != nil {
		if errors.Is(err, pagination.ErrOutOfRange) {
			return Step{Message: fmt.Sprintf("Please enter a number between 0 and %d.", plan.Len())}
		}
		return invalidChoice(input, "a number, f, c or 0")
	}

	switch sel.Kind {
	case pagination.SelectBack:
		c.Reset()
		return Step{}
	case pagination.SelectFilter:
		if sel.Term == "" {
			c.state.AwaitingFilter = true
			return Step{}
		}
		c.applyFilter(sel.Term)
		return Step{}
	case pagination.SelectClearFilter:
		c.applyFilter("")
		return Step{}
	default:
		item, _ := plan.Resolve(sel.Index)
		return c.choose(ctx, item)
	}
}

func (c *Controller) applyFilter(term string) {
	term = vpn.NormalizeTerm(term)
	c.state.Filter = term
	c.list.SetFilter(term)
}

// choose performs the action the selection screen was opened for.
func (c *Controller) choose(ctx context.Context, item string) Step {
	screen, purpose := c.state.Screen, c.state.Purpose
	name := vpn.DisplayName(item)
	c.Reset()

	switch {
	case purpose == PurposeAutoConnect:
		return c.act(ctx, "Enable auto-connect to "+name, c.client.AutoConnectOn(ctx, item), true)
	case screen == ScreenGroupSelect:
		return c.act(ctx, "Connect to group "+name, c.client.ConnectGroup(ctx, item), true)
	default:
		return c.act(ctx, "Connect to "+name, c.client.ConnectCountry(ctx, item), true)
	}
}

// openList fetches a list and, if anything can be shown, switches to its
// selection screen.
func (c *Controller) openList(ctx context.Context, screen Screen, purpose Purpose) Step {
	category := cache.Countries
	if screen == ScreenGroupSelect {
		category = cache.ServerGroups
	}

	items, err := c.lists.Get(ctx, category)
	notice := ""
	if err != nil {
		var stale *cache.StaleError
		if errors.Is(err, runner.ErrCancelled) || !errors.As(err, &stale) || len(items) == 0 {
			c.Reset()
			outcome := ClassifyError(fmt.Sprintf("Fetching the %s list", category), err, c.opts.Hints)
			return Step{Outcome: &outcome}
		}
		reason := ClassifyError("refresh", stale.Err, c.opts.Hints)
		notice = fmt.Sprintf("Could not refresh the %s list; showing the copy from %s ago. %s",
			category, cache.FormatDuration(stale.Age), strings.TrimSpace(reason.Tip))
	}

	c.state = State{Screen: screen, Purpose: purpose}
	c.list = pagination.NewSelectableList(items, c.opts.ColumnsThreshold, c.opts.SortOrder)
	c.notice = strings.TrimSpace(notice)
	return Step{}
}

// act classifies res and, for a successful state change, invalidates the
// cached lists.
func (c *Controller) act(ctx context.Context, action string, res runner.Result, changesState bool) Step {
	outcome := Classify(action, res, c.opts.Hints)
	if changesState && res.OK() {
		c.lists.InvalidateAll()
	}

	logging.FromContext(ctx).Info().
		Ctx(ctx).
		Str("component", "menu").
		Str("action", action).
		Str("status", res.Status.String()).
		Str("outcome", outcome.Kind.String()).
		Dur("duration", res.Duration).
		Msg("action finished")

	return Step{Outcome: &outcome}
}

func invalidChoice(input, valid string) Step {
	if input == "" {
		return Step{Message: "Please enter a choice (" + valid + ")."}
	}
	return Step{Message: fmt.Sprintf("Invalid choice %q. Please enter %s.", input, valid)}
}
