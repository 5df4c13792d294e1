package sorter

import (
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/rs/zerolog"
)

// applyPinned moves the pinned files to the top. Inserting them one at a
// time in reverse leaves them at the front in their configured order.
func (s *Sorter) applyPinned(entries []types.ContentEntry, logger zerolog.Logger) {
	for i := len(s.pinned) - 1; i >= 0; i-- {
		name := types.NormalizeName(s.pinned[i])
		if moveToFront(entries, name) {
			logger.Debug().Str("plugin", s.pinned[i]).Msg("Pinned to top")
		}
	}
}

// moveToFront shifts the first entry with the given key to index 0,
// keeping the order of everything before it
func moveToFront(entries []types.ContentEntry, key string) bool {
	for i, e := range entries {
		if e.Key() != key {
			continue
		}
		copy(entries[1:i+1], entries[:i])
		entries[0] = e
		return true
	}
	return false
}
