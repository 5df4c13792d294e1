package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// renderTerminal prints the report with lipgloss styles
func renderTerminal(w io.Writer, r Report) error {
	styles, err := loadStyles(lipgloss.NewRenderer(w))
	if err != nil {
		return err
	}

	var blocks []string

	if len(r.Entries) > 0 {
		blocks = append(blocks, styles.get("Title").Render("Load order"))
		lines := make([]string, 0, len(r.Entries))
		for i, e := range r.Entries {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				styles.get("Index").Render(fmt.Sprintf("%d", i+1)),
				entryLine(styles, e),
			))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if r.Result != nil {
		blocks = append(blocks, summary(styles, r))
	}

	if names := r.MessageNames(); len(names) > 0 {
		blocks = append(blocks, styles.get("Heading").Render("Messages"))
		for _, name := range names {
			blocks = append(blocks, messageBlock(styles, name, r))
		}
	}

	_, err = fmt.Fprintln(w, strings.Join(blocks, "\n"))
	return err
}

func entryLine(styles styleSet, e types.ContentEntry) string {
	name := styles.get("Plugin")
	if strings.HasSuffix(e.Key(), ".esm") {
		name = styles.get("Master")
	}
	if !e.Enabled {
		name = styles.get("Disabled")
	}

	line := name.Render(e.Name)
	if e.IsNew {
		line += " " + styles.get("New").Render("new")
	}
	if e.Source != "" {
		line += " " + styles.get("Source").Render("("+e.Source+")")
	}
	return line
}

func summary(styles styleSet, r Report) string {
	res := r.Result
	if res.Skipped {
		return styles.get("Warning").Render("No rules loaded, order unchanged")
	}

	lines := []string{styles.get("Summary").Render(fmt.Sprintf(
		"%d plugins, %d passes, %d swaps", len(r.Entries), res.Passes, res.Swaps))}
	if !res.Converged {
		lines = append(lines, styles.get("Warning").Render("Constraints did not settle, order is best effort"))
	}
	if res.Cycle {
		lines = append(lines, styles.get("Warning").Render("Masters and rules contradict each other"))
	}
	return strings.Join(lines, "\n")
}

func messageBlock(styles styleSet, name string, r Report) string {
	lines := []string{styles.get("MessagePlugin").Render(name)}
	for _, m := range r.Messages[name] {
		header := styles.get(string(m.Kind)).Render(string(m.Kind))
		if len(m.Related) > 0 {
			header += " " + strings.Join(m.Related, ", ")
		}
		lines = append(lines, header)
		for _, text := range m.Lines {
			lines = append(lines, styles.get("Line").Render(text))
		}
	}
	return strings.Join(lines, "\n")
}
