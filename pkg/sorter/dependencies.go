package sorter

import (
	"github.com/arthur-debert/loadorder/pkg/plugin"
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/rs/zerolog"
)

// discoverDependencies reads the header of every entry that can be located
// and keeps the masters that are part of the content list. Keys and values
// are normalised names; duplicates are dropped.
func (s *Sorter) discoverDependencies(entries []types.ContentEntry, searchPaths []string, logger zerolog.Logger) map[string][]string {
	present := types.NameSet(entries)
	locator := plugin.NewLocator(s.fs, searchPaths)
	deps := make(map[string][]string)

	for _, entry := range entries {
		path, ok := locator.Locate(entry.Name)
		if !ok {
			logger.Debug().Str("plugin", entry.Name).Msg("Plugin file not found, no header dependencies")
			continue
		}

		key := entry.Key()
		seen := make(map[string]bool)
		for _, master := range plugin.ReadMasters(s.fs, path, logger) {
			name := types.NormalizeName(master)
			if !present[name] || name == key || seen[name] {
				continue
			}
			seen[name] = true
			deps[key] = append(deps[key], name)
		}

		if len(deps[key]) > 0 {
			logger.Debug().
				Str("plugin", entry.Name).
				Strs("masters", deps[key]).
				Msg("Header dependencies")
		}
	}

	return deps
}
