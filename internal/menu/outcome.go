package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/vpnmenu/internal/cache"
	"github.com/rshade/vpnmenu/internal/runner"
)

// Kind classifies how an action turned out from the user's point of view.
type Kind int

const (
	// KindSuccess means the action completed.
	KindSuccess Kind = iota
	// KindTip means the action failed for a recognized reason with a known fix.
	KindTip
	// KindFailure means the action failed for an unrecognized reason.
	KindFailure
	// KindCancelled means the user aborted the action.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindTip:
		return "tip"
	case KindFailure:
		return "failure"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Hints carries the installation-specific text used in tips.
type Hints struct {
	Binary       string
	LoginCommand string
	InstallURL   string
}

// Outcome is what the user is told after an action.
type Outcome struct {
	Kind    Kind
	Action  string
	Message string
	Tip     string
	// Detail is the client's own output: stdout on success, stderr
	// (or stdout when stderr is empty) on failure.
	Detail string
}

type tipRule struct {
	needles []string
	tip     func(Hints) string
}

// tipRules are checked in order against the lowercased client output.
//
//nolint:gochecknoglobals // Lookup table.
var tipRules = []tipRule{
	{
		needles: []string{"not logged in", "log in first", "please log in"},
		tip: func(h Hints) string {
			return fmt.Sprintf("You are not logged in. Run '%s' in another terminal, then try again.", h.LoginCommand)
		},
	},
	{
		needles: []string{"already connected"},
		tip: func(Hints) string {
			return "You are already connected. Disconnect first to switch servers."
		},
	},
	{
		needles: []string{"permission denied", "nordvpn group"},
		tip: func(Hints) string {
			return "Your user cannot talk to the VPN daemon. Add it to the 'nordvpn' group " +
				"(sudo usermod -aG nordvpn $USER), then log out and back in."
		},
	},
	{
		needles: []string{"daemon", ".sock"},
		tip: func(Hints) string {
			return "The VPN daemon is not running. Start it (sudo systemctl start nordvpnd) and try again."
		},
	},
	{
		needles: []string{"internet connection", "network"},
		tip: func(Hints) string {
			return "Check your internet connection and try again."
		},
	},
}

func installTip(h Hints) string {
	tip := fmt.Sprintf("Make sure '%s' is installed and on your PATH.", h.Binary)
	if h.InstallURL != "" {
		tip += " Installation guide: " + h.InstallURL
	}
	return tip
}

func matchTip(text string, h Hints) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range tipRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				return rule.tip(h), true
			}
		}
	}
	return "", false
}

func failureDetail(res runner.Result) string {
	if s := strings.TrimSpace(res.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(res.Stdout)
}

// Classify turns a client result into what the user should be told.
func Classify(action string, res runner.Result, h Hints) Outcome {
	out := Outcome{Action: action}

	switch res.Status {
	case runner.StatusSuccess:
		out.Kind = KindSuccess
		out.Message = action + " completed."
		out.Detail = res.Output()
		return out
	case runner.StatusCancelled:
		out.Kind = KindCancelled
		out.Message = action + " cancelled."
		return out
	case runner.StatusNotFound:
		out.Kind = KindTip
		out.Message = fmt.Sprintf("Could not run '%s'.", h.Binary)
		out.Tip = installTip(h)
		return out
	case runner.StatusTimeout:
		out.Kind = KindTip
		out.Message = fmt.Sprintf("%s did not finish within %s.", action, cache.FormatDuration(res.Timeout))
		out.Tip = "The VPN service may be slow or unreachable. Check your network connection and try again."
		return out
	}

	out.Detail = failureDetail(res)
	if tip, ok := matchTip(res.Stderr+"\n"+res.Stdout, h); ok {
		out.Kind = KindTip
		out.Message = action + " failed."
		out.Tip = tip
		return out
	}
	out.Kind = KindFailure
	out.Message = fmt.Sprintf("%s failed (exit code %d).", action, res.ExitCode)
	return out
}

// ClassifyError is Classify for operations that report an error rather
// than a Result, such as list fetches.
func ClassifyError(action string, err error, h Hints) Outcome {
	var rerr *runner.Error
	if errors.As(err, &rerr) {
		return Classify(action, runner.Result{
			Command:  rerr.Command,
			Args:     rerr.Args,
			Status:   rerr.Status,
			ExitCode: rerr.ExitCode,
			Stderr:   rerr.Detail,
			Timeout:  rerr.Timeout,
		}, h)
	}

	out := Outcome{Kind: KindFailure, Action: action, Detail: err.Error()}
	if errors.Is(err, runner.ErrParse) {
		out.Message = action + " failed: the client returned output that could not be understood."
		return out
	}
	out.Message = action + " failed."
	return out
}
