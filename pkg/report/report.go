package report

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/rules"
	"github.com/arthur-debert/loadorder/pkg/sorter"
	"github.com/arthur-debert/loadorder/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Report is everything a command prints
type Report struct {
	Entries []types.ContentEntry `json:"entries,omitempty" yaml:"entries,omitempty" toml:"entries,omitempty"`
	// Result is nil when no sort ran
	Result *sorter.Result `json:"result,omitempty" yaml:"result,omitempty" toml:"result,omitempty"`
	// Messages maps plugin names to their advisory messages
	Messages map[string][]rules.Message `json:"messages,omitempty" yaml:"messages,omitempty" toml:"messages,omitempty"`
}

// MessageNames returns the plugins that have messages, in load order for
// entries of the report and alphabetically for the rest
func (r Report) MessageNames() []string {
	seen := make(map[string]bool, len(r.Messages))
	var names []string
	for _, e := range r.Entries {
		if _, ok := r.Messages[e.Name]; ok && !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}

	var rest []string
	for name := range r.Messages {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Render writes r to w in the given format
func Render(w io.Writer, format Format, r Report) error {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	var err error
	switch format {
	case FormatTerminal:
		err = renderTerminal(w, r)
	case FormatText:
		err = renderText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(r)
	case FormatMarkdown:
		err = renderMarkdown(w, r, DetectFormat(w) == FormatTerminal)
	default:
		return errors.Newf(errors.ErrOutputFormat, "cannot render format %s", format)
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputFormat, "failed to render %s output", format)
	}
	return nil
}
