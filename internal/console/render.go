package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/vpnmenu/internal/menu"
	"github.com/rshade/vpnmenu/internal/pagination"
)

// renderView draws a full screen. width is the terminal width, or 0 when unknown.
func (c *Console) renderView(v menu.View, width int) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(c.styles.Title.Render(v.Title))
	sb.WriteString("\n")

	if v.Notice != "" {
		sb.WriteString(c.styles.Notice.Render(v.Notice))
		sb.WriteString("\n")
	}

	if v.List != nil {
		sb.WriteString(c.renderList(v, width))
		sb.WriteString("\n")
	}

	for _, opt := range v.Options {
		fmt.Fprintf(&sb, "%s. %s\n", c.styles.Key.Render(opt.Key), c.styles.Item.Render(opt.Label))
	}
	return sb.String()
}

func (c *Console) renderList(v menu.View, width int) string {
	var sb strings.Builder
	if v.Filter != "" {
		fmt.Fprintf(&sb, "%s\n", c.styles.Muted.Render("Filter: "+c.name(v.Filter)))
	}

	if v.NoMatches {
		fmt.Fprintf(&sb, "%s\n", c.styles.Notice.Render(fmt.Sprintf("No matches for %q.", c.name(v.Filter))))
		if len(v.Suggestions) > 0 {
			names := make([]string, len(v.Suggestions))
			for i, s := range v.Suggestions {
				names[i] = c.name(s)
			}
			fmt.Fprintf(&sb, "%s\n", c.styles.Muted.Render("Did you mean: "+strings.Join(names, ", ")+"?"))
		}
		return sb.String()
	}

	if v.List.Len() == 0 {
		fmt.Fprintf(&sb, "%s\n", c.styles.Muted.Render("Nothing to show."))
		return sb.String()
	}

	sb.WriteString(c.renderPlan(*v.List, width))
	sb.WriteString("\n")
	return sb.String()
}

// renderPlan lays the plan out as planned, or in a single column when two
// columns would not fit in width. Numbering is the same either way.
func (c *Console) renderPlan(plan pagination.Plan, width int) string {
	digits := len(strconv.Itoa(plan.Len()))
	label := func(e pagination.Entry) string {
		return fmt.Sprintf("%s. %s",
			c.styles.Key.Render(fmt.Sprintf("%*d", digits, e.Index)),
			c.styles.Item.Render(c.name(e.Item)))
	}

	columns := make([][]string, len(plan.Columns))
	for i, col := range plan.Columns {
		for _, e := range col {
			columns[i] = append(columns[i], label(e))
		}
	}

	if len(columns) == 2 && width > 0 {
		total := maxWidth(columns[0]) + columnGap + maxWidth(columns[1])
		if total > width {
			columns = [][]string{append(columns[0], columns[1]...)}
		}
	}

	if len(columns) == 1 {
		return strings.Join(columns[0], "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		c.styles.Column.Render(strings.Join(columns[0], "\n")),
		strings.Join(columns[1], "\n"),
	)
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

func (c *Console) renderOutcome(o menu.Outcome) string {
	var sb strings.Builder
	sb.WriteString("\n")
	switch o.Kind {
	case menu.KindSuccess:
		sb.WriteString(c.styles.Success.Render("✓ " + o.Message))
	case menu.KindCancelled:
		sb.WriteString(c.styles.Muted.Render(o.Message))
	default:
		sb.WriteString(c.styles.Error.Render("✗ " + o.Message))
	}
	sb.WriteString("\n")

	if o.Detail != "" {
		sb.WriteString(c.styles.Item.Render(o.Detail))
		sb.WriteString("\n")
	}
	if o.Tip != "" {
		sb.WriteString(c.styles.Tip.Render("Tip: " + o.Tip))
		sb.WriteString("\n")
	}
	return sb.String()
}
