package report

import (
	"fmt"
	"io"
	"strings"
)

// renderText prints a content list, disabled entries prefixed with -.
// Everything else is written as # comments.
func renderText(w io.Writer, r Report) error {
	var b strings.Builder

	if r.Result != nil {
		writeResultComment(&b, r)
	}

	for _, e := range r.Entries {
		if !e.Enabled {
			b.WriteString("-")
		}
		b.WriteString(e.Name)
		b.WriteString("\n")
	}

	names := r.MessageNames()
	if len(names) > 0 && len(r.Entries) > 0 {
		b.WriteString("\n")
	}
	for _, name := range names {
		fmt.Fprintf(&b, "# %s\n", name)
		for _, m := range r.Messages[name] {
			header := fmt.Sprintf("#   [%s]", m.Kind)
			if len(m.Related) > 0 {
				header += " with " + strings.Join(m.Related, ", ")
			}
			b.WriteString(header + "\n")
			for _, line := range m.Lines {
				fmt.Fprintf(&b, "#     %s\n", line)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeResultComment(b *strings.Builder, r Report) {
	res := r.Result
	if res.Skipped {
		b.WriteString("# no rules loaded, order unchanged\n")
		return
	}
	fmt.Fprintf(b, "# sorted %d plugins: %d passes, %d swaps\n", len(r.Entries), res.Passes, res.Swaps)
	if !res.Converged {
		b.WriteString("# warning: constraints did not settle, order is best effort\n")
	}
	if res.Cycle {
		b.WriteString("# warning: masters and rules contradict each other\n")
	}
}
