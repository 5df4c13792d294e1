package rules

import (
	"strings"

	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Load reads the rule files in order and parses their concatenated
// contents. Files that cannot be read are skipped. When none can be read,
// Load returns an empty RuleSet together with an ErrRulesNotFound error;
// callers may report it, and sorting with the empty set changes nothing.
func Load(fsys afero.Fs, paths []string, logger zerolog.Logger) (*RuleSet, error) {
	var text strings.Builder
	opened := 0

	for _, path := range paths {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable rule file")
			continue
		}

		opened++
		logger.Info().Str("path", path).Int("bytes", len(data)).Msg("Loading rules")
		text.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			text.WriteByte('\n')
		}
	}

	if opened == 0 {
		return &RuleSet{}, errors.New(errors.ErrRulesNotFound, "no rule file could be opened").
			WithDetail("paths", paths)
	}

	return LoadString(text.String(), logger), nil
}

// LoadString parses rules from in-memory text
func LoadString(text string, logger zerolog.Logger) *RuleSet {
	set := Parse(Lex(text), logger)

	stats := set.Stats()
	logger.Info().
		Int("order", stats.Order).
		Int("nearStart", stats.NearStart).
		Int("nearEnd", stats.NearEnd).
		Int("messages", stats.Messages).
		Msg("Rules loaded")
	return set
}
