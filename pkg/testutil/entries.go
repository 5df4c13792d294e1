package testutil

import "github.com/arthur-debert/loadorder/pkg/types"

// Entries builds enabled content entries for the given names
func Entries(names ...string) []types.ContentEntry {
	entries := make([]types.ContentEntry, len(names))
	for i, n := range names {
		entries[i] = types.ContentEntry{Name: n, Enabled: true, Source: "test"}
	}
	return entries
}

// Names returns the names of entries in order
func Names(entries []types.ContentEntry) []string {
	return types.Names(entries)
}
