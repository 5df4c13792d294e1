package sorter

import (
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/gammazero/toposort"
	"github.com/rs/zerolog"
)

// constraints holds the "must load after" relations between the entries of
// one content list, keyed by normalised names
type constraints struct {
	// masters[a] lists the entries a declares as masters
	masters map[string]map[string]bool
	// ordered[a][b] is the line of the ORDER rule placing a after b
	ordered map[string]map[string]int
}

// buildConstraints resolves ORDER rule patterns against the concrete
// entries once, so the passes only do map lookups
func (s *Sorter) buildConstraints(entries []types.ContentEntry, deps map[string][]string, logger zerolog.Logger) constraints {
	c := constraints{
		masters: make(map[string]map[string]bool, len(deps)),
		ordered: make(map[string]map[string]int),
	}

	for plugin, masters := range deps {
		set := make(map[string]bool, len(masters))
		for _, m := range masters {
			set[m] = true
		}
		c.masters[plugin] = set
	}

	if s.rules == nil {
		return c
	}

	for _, rule := range s.rules.Order {
		var plugins, afters []string
		for _, entry := range entries {
			if rule.Plugin.Match(entry.Name) {
				plugins = append(plugins, entry.Key())
			}
			if rule.After.Match(entry.Name) {
				afters = append(afters, entry.Key())
			}
		}

		for _, p := range plugins {
			for _, a := range afters {
				if p == a {
					continue
				}
				if c.ordered[p] == nil {
					c.ordered[p] = make(map[string]int)
				}
				if _, exists := c.ordered[p][a]; !exists {
					c.ordered[p][a] = rule.Line
				}
			}
		}
	}

	logger.Debug().
		Int("headerPlugins", len(c.masters)).
		Int("rulePlugins", len(c.ordered)).
		Msg("Constraints resolved")
	return c
}

// hasCycle reports whether the constraints contradict each other. The
// result is diagnostic only.
func (c constraints) hasCycle(logger zerolog.Logger) bool {
	var edges []toposort.Edge
	for plugin, masters := range c.masters {
		for m := range masters {
			edges = append(edges, toposort.Edge{m, plugin})
		}
	}
	for plugin, afters := range c.ordered {
		for a := range afters {
			edges = append(edges, toposort.Edge{a, plugin})
		}
	}
	if len(edges) == 0 {
		return false
	}

	if _, err := toposort.Toposort(edges); err != nil {
		logger.Warn().Err(err).Int("edges", len(edges)).Msg("Load order constraints contain a cycle")
		return true
	}
	return false
}

// violation reports why earlier must move behind later, if it must.
// Header masters are checked before rules.
func (c constraints) violation(earlier, later string) (string, int, bool) {
	if c.masters[earlier][later] {
		return "master", 0, true
	}
	if line, ok := c.ordered[earlier][later]; ok {
		return "order", line, true
	}
	return "", 0, false
}

// satisfyConstraints runs swap passes until one pass changes nothing or the
// ceiling is reached. It returns the passes run, the total swaps and
// whether the list settled.
func (s *Sorter) satisfyConstraints(entries []types.ContentEntry, c constraints, logger zerolog.Logger) (int, int, bool) {
	total := 0

	for pass := 1; pass <= s.maxPasses; pass++ {
		swaps := 0
		for k := 0; k < len(entries); k++ {
			for j := k + 1; j < len(entries); j++ {
				reason, line, ok := c.violation(entries[k].Key(), entries[j].Key())
				logger.Trace().
					Str("earlier", entries[k].Name).
					Str("later", entries[j].Name).
					Bool("violation", ok).
					Msg("Pair evaluated")
				if !ok {
					continue
				}

				event := logger.Debug().
					Int("pass", pass).
					Str("reason", reason).
					Str("plugin", entries[k].Name).
					Str("after", entries[j].Name)
				if line > 0 {
					event = event.Int("line", line)
				}
				event.Msg("Swapping to satisfy constraint")

				entries[k], entries[j] = entries[j], entries[k]
				swaps++
			}
		}

		total += swaps
		if swaps == 0 {
			logger.Debug().Int("passes", pass).Msg("Order stable")
			return pass, total, true
		}
	}

	logger.Warn().
		Int("maxPasses", s.maxPasses).
		Int("swaps", total).
		Msg("Constraints did not settle, keeping partial order")
	return s.maxPasses, total, false
}
