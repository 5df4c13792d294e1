package types

import "strings"

// ContentEntry is one content file (plugin) in a load order.
// Identity is the bare filename; no path is stored.
type ContentEntry struct {
	// Name is the plugin filename, e.g. "Morrowind.esm"
	Name string `json:"name" yaml:"name" toml:"name"`

	// Enabled reports whether the plugin is active in the game config
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`

	// Source labels where the entry came from (mod name, config file)
	Source string `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`

	// IsNew flags entries discovered since the last saved load order
	IsNew bool `json:"is_new,omitempty" yaml:"is_new,omitempty" toml:"is_new,omitempty"`
}

// Key returns the case-folded identity of the entry.
func (c ContentEntry) Key() string {
	return NormalizeName(c.Name)
}

// NormalizeName folds a plugin name for case-insensitive comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Names returns the entry names in order.
func Names(entries []ContentEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// NameSet returns the case-folded names of all entries.
func NameSet(entries []ContentEntry) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[e.Key()] = true
	}
	return set
}
