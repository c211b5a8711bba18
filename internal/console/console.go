package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/rshade/vpnmenu/internal/logging"
	"github.com/rshade/vpnmenu/internal/menu"
)

// LineReader reads one line of user input at a time. Ctrl+C is reported
// as readline.ErrInterrupt and Ctrl+D as io.EOF.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Controller is the menu state machine the console drives.
type Controller interface {
	View(ctx context.Context) menu.View
	Handle(ctx context.Context, input string) menu.Step
	Reset()
}

// Options configures a Console.
type Options struct {
	// Out receives all rendered output; os.Stdout when nil.
	Out io.Writer
	// Reader supplies input; a readline instance on the terminal when nil.
	Reader LineReader
	// Color enables colored output.
	Color bool
	// Width fixes the terminal width; detected from Out when zero.
	Width int
	// Signals cancels a running action; SIGINT when nil.
	Signals <-chan os.Signal
	// DisplayName renders item names; identity when nil.
	DisplayName func(string) string
}

// Console runs the interactive loop on a terminal.
type Console struct {
	ctrl    Controller
	out     io.Writer
	reader  LineReader
	styles  Styles
	width   func() int
	signals <-chan os.Signal
	name    func(string) string
}

// New creates a Console for ctrl.
func New(ctrl Controller, opts Options) (*Console, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	reader := opts.Reader
	if reader == nil {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryLimit:    -1,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
			Stdout:          out,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing terminal input: %w", err)
		}
		reader = rl
	}

	name := opts.DisplayName
	if name == nil {
		name = func(s string) string { return s }
	}

	c := &Console{
		ctrl:    ctrl,
		out:     out,
		reader:  reader,
		styles:  NewStyles(lipgloss.NewRenderer(out), opts.Color),
		signals: opts.Signals,
		name:    name,
	}
	if opts.Width > 0 {
		w := opts.Width
		c.width = func() int { return w }
	} else {
		c.width = func() int { return terminalWidth(out) }
	}
	return c, nil
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// Run shows menus and handles input until the user exits, input ends, or
// ctx is cancelled.
//
// Ctrl+C at the main menu exits; on any other screen it returns to the
// main menu. Ctrl+C while an action runs cancels that action only.
func (c *Console) Run(ctx context.Context) error {
	defer c.reader.Close()
	log := logging.FromContext(ctx)

	sigs, stop := c.notify()
	defer stop()

	for ctx.Err() == nil {
		view := c.ctrl.View(ctx)
		c.print(c.renderView(view, c.width()))
		c.reader.SetPrompt(c.styles.Prompt.Render(view.Prompt + ": "))

		line, err := c.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if view.Screen == menu.ScreenMain {
				c.print("Exiting...\n")
				return nil
			}
			log.Debug().Ctx(ctx).Str("component", "console").Msg("interrupt, returning to main menu")
			c.ctrl.Reset()
			continue
		case errors.Is(err, io.EOF):
			c.print("Exiting...\n")
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		step := c.handle(ctx, sigs, line)
		if step.Message != "" {
			c.print(c.styles.Notice.Render(step.Message) + "\n")
		}
		if step.Outcome != nil {
			c.print(c.renderOutcome(*step.Outcome))
			c.pause()
		}
		if step.Quit {
			c.print("Exiting...\n")
			return nil
		}
	}
	return nil
}

// handle runs one input through the controller with a context that a
// signal cancels.
func (c *Console) handle(ctx context.Context, sigs <-chan os.Signal, line string) menu.Step {
	drain(sigs)

	actx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-done:
		}
	}()

	return c.ctrl.Handle(actx, line)
}

func (c *Console) notify() (<-chan os.Signal, func()) {
	if c.signals != nil {
		return c.signals, func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch, func() { signal.Stop(ch) }
}

func drain(sigs <-chan os.Signal) {
	for {
		select {
		case <-sigs:
		default:
			return
		}
	}
}

func (c *Console) pause() {
	c.reader.SetPrompt(c.styles.Muted.Render("Press Enter to continue..."))
	_, _ = c.reader.Readline()
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}
