package gamecfg

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/spf13/afero"
)

// SourceOpenMW labels entries read from openmw.cfg
const SourceOpenMW = "openmw.cfg"

const (
	keyData            = "data="
	keyContent         = "content="
	keyDisabledContent = "#content="
)

// GameConfig is the part of openmw.cfg the sorter needs
type GameConfig struct {
	Path string
	// DataPaths in file order; later directories take precedence
	DataPaths []string
	// Content lists enabled entries first, then disabled ones, each in
	// file order
	Content []types.ContentEntry
}

// DefaultOpenMWConfigPath returns where OpenMW keeps its user config
func DefaultOpenMWConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "openmw", "openmw.cfg")
}

// ReadOpenMWConfig reads data directories and content entries from an
// openmw.cfg file
func ReadOpenMWConfig(fsys afero.Fs, path string) (*GameConfig, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentRead, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	cfg := &GameConfig{Path: path}
	var enabled, disabled []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, keyData):
			if v := cleanValue(line[len(keyData):]); v != "" {
				cfg.DataPaths = append(cfg.DataPaths, v)
			}
		case strings.HasPrefix(line, keyContent):
			if v := cleanValue(line[len(keyContent):]); v != "" {
				enabled = append(enabled, v)
			}
		case strings.HasPrefix(line, keyDisabledContent):
			if v := cleanValue(line[len(keyDisabledContent):]); v != "" {
				disabled = append(disabled, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	for _, name := range enabled {
		cfg.Content = append(cfg.Content, types.ContentEntry{Name: name, Enabled: true, Source: SourceOpenMW})
	}
	for _, name := range disabled {
		cfg.Content = append(cfg.Content, types.ContentEntry{Name: name, Enabled: false, Source: SourceOpenMW})
	}
	return cfg, nil
}

// cleanValue drops a trailing # comment and surrounding whitespace. A
// quoted value has its quotes removed and OpenMW's & escapes resolved;
// a # inside quotes is kept.
func cleanValue(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.HasPrefix(value, `"`) {
		if unquoted, ok := unquote(value[1:]); ok {
			return unquoted
		}
	}
	if i := strings.IndexByte(value, '#'); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

// unquote reads up to the closing quote. && stands for & and &" for a
// literal quote.
func unquote(s string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&' && i+1 < len(s) && (s[i+1] == '&' || s[i+1] == '"'):
			b.WriteByte(s[i+1])
			i++
		case c == '"':
			return b.String(), true
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}
