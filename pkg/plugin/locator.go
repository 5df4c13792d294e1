package plugin

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Locator finds plugin files across data directories. Later directories
// override earlier ones, matching how the game layers its virtual
// filesystem, so they are searched first.
type Locator struct {
	Fs          afero.Fs
	SearchPaths []string

	// listings caches case-insensitive directory lookups per directory
	listings map[string]map[string]string
}

// NewLocator creates a locator over the given search paths
func NewLocator(fsys afero.Fs, searchPaths []string) *Locator {
	return &Locator{
		Fs:          fsys,
		SearchPaths: searchPaths,
		listings:    make(map[string]map[string]string),
	}
}

// Locate returns the path of the named plugin in the highest-precedence
// directory that contains it. Names are matched case-insensitively when no
// exact match exists.
func (l *Locator) Locate(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", false
	}

	for i := len(l.SearchPaths) - 1; i >= 0; i-- {
		dir := l.SearchPaths[i]

		candidate := filepath.Join(dir, name)
		if info, err := l.Fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		if actual, ok := l.lookupFold(dir, name); ok {
			return filepath.Join(dir, actual), true
		}
	}
	return "", false
}

func (l *Locator) lookupFold(dir, name string) (string, bool) {
	if l.listings == nil {
		l.listings = make(map[string]map[string]string)
	}

	listing, ok := l.listings[dir]
	if !ok {
		listing = make(map[string]string)
		entries, err := afero.ReadDir(l.Fs, dir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				listing[strings.ToLower(entry.Name())] = entry.Name()
			}
		}
		l.listings[dir] = listing
	}

	actual, ok := listing[strings.ToLower(name)]
	return actual, ok
}
