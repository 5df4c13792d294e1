package gamecfg

import (
	"bufio"
	"strings"

	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/spf13/afero"
)

// SourceList labels entries read from a plain content list
const SourceList = "list"

// ReadContentList reads a plain content list: one plugin per line, blank
// lines and # comments ignored, a leading - marking a disabled plugin.
// Entries keep the file order.
func ReadContentList(fsys afero.Fs, path string) ([]types.ContentEntry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentRead, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	var entries []types.ContentEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := types.ContentEntry{Name: line, Enabled: true, Source: SourceList}
		if strings.HasPrefix(line, "-") {
			entry.Name = strings.TrimSpace(line[1:])
			entry.Enabled = false
		}
		if entry.Name != "" {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentRead, "cannot read %s", path).
			WithDetail("path", path)
	}
	return entries, nil
}
