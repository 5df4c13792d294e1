package sorter

import (
	"strings"

	"github.com/arthur-debert/loadorder/pkg/pattern"
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/rs/zerolog"
)

// applyNearEnd moves the entries matched by each NEAREND rule behind all
// others. Rules run in registration order, so the last matching rule
// decides the final placement.
func (s *Sorter) applyNearEnd(entries []types.ContentEntry, logger zerolog.Logger) {
	for _, rule := range s.rules.NearEnd {
		if moved := partition(entries, rule.Pattern.Match, false); moved > 0 {
			logPriority(logger, "NEAREND", rule.Pattern, rule.Line, moved)
		}
	}
}

// applyNearStart moves the entries matched by each NEARSTART rule ahead of
// all others
func (s *Sorter) applyNearStart(entries []types.ContentEntry, logger zerolog.Logger) {
	for _, rule := range s.rules.NearStart {
		if moved := partition(entries, rule.Pattern.Match, true); moved > 0 {
			logPriority(logger, "NEARSTART", rule.Pattern, rule.Line, moved)
		}
	}
}

// applyMasterHeuristic moves master files ahead of plugins
func (s *Sorter) applyMasterHeuristic(entries []types.ContentEntry, logger zerolog.Logger) {
	isMaster := func(name string) bool {
		lower := types.NormalizeName(name)
		for _, suffix := range s.masterSuffixes {
			if strings.HasSuffix(lower, suffix) {
				return true
			}
		}
		return false
	}

	if matched := partition(entries, isMaster, true); matched > 0 {
		logger.Debug().Int("masters", matched).Msg("Masters moved ahead of plugins")
	}
}

func logPriority(logger zerolog.Logger, kind string, p pattern.Matcher, line, matched int) {
	logger.Debug().
		Str("rule", kind).
		Str("pattern", p.String()).
		Int("line", line).
		Int("matched", matched).
		Msg("Priority rule applied")
}

// partition stably moves entries whose name satisfies match to the front
// (or the back) of the slice. It returns the number of matching entries.
func partition(entries []types.ContentEntry, match func(string) bool, front bool) int {
	matched := make([]types.ContentEntry, 0, len(entries))
	rest := make([]types.ContentEntry, 0, len(entries))
	for _, e := range entries {
		if match(e.Name) {
			matched = append(matched, e)
		} else {
			rest = append(rest, e)
		}
	}

	if len(matched) == 0 {
		return 0
	}

	if front {
		copy(entries, matched)
		copy(entries[len(matched):], rest)
	} else {
		copy(entries, rest)
		copy(entries[len(rest):], matched)
	}
	return len(matched)
}
