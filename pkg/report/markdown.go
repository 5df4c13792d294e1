package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown writes the report as markdown. On a terminal the markdown
// is rendered with glamour; if that fails the raw markdown is printed.
func renderMarkdown(w io.Writer, r Report, styled bool) error {
	md := Markdown(r)
	if styled {
		md = renderGlamour(md)
	}
	_, err := io.WriteString(w, md)
	return err
}

// Markdown formats the report as a markdown document
func Markdown(r Report) string {
	var b strings.Builder

	if len(r.Entries) > 0 {
		b.WriteString("# Load order\n\n")
		b.WriteString("| # | Plugin | Enabled | Source |\n")
		b.WriteString("|---:|---|:---:|---|\n")
		for i, e := range r.Entries {
			enabled := "yes"
			if !e.Enabled {
				enabled = "no"
			}
			name := escapeCell(e.Name)
			if e.IsNew {
				name += " *(new)*"
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, name, enabled, escapeCell(e.Source))
		}
		b.WriteString("\n")
	}

	if res := r.Result; res != nil {
		if res.Skipped {
			b.WriteString("> No rules loaded, order unchanged.\n\n")
		} else {
			fmt.Fprintf(&b, "Sorted in %d passes with %d swaps.\n\n", res.Passes, res.Swaps)
			if !res.Converged {
				b.WriteString("> **Warning:** constraints did not settle, the order is best effort.\n\n")
			}
			if res.Cycle {
				b.WriteString("> **Warning:** masters and rules contradict each other.\n\n")
			}
		}
	}

	if names := r.MessageNames(); len(names) > 0 {
		b.WriteString("## Messages\n\n")
		for _, name := range names {
			fmt.Fprintf(&b, "### %s\n\n", name)
			for _, m := range r.Messages[name] {
				fmt.Fprintf(&b, "- **%s**", m.Kind)
				if len(m.Related) > 0 {
					fmt.Fprintf(&b, " with %s", strings.Join(m.Related, ", "))
				}
				b.WriteString("\n")
				for _, line := range m.Lines {
					fmt.Fprintf(&b, "  %s\n", line)
				}
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderGlamour(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
