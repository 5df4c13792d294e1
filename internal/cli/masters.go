package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/logging"
	"github.com/arthur-debert/loadorder/pkg/plugin"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newMastersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "masters <file>...",
		Short:   MsgMastersShort,
		Long:    MsgMastersLong,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMasters(cmd, afero.NewOsFs(), args)
		},
	}
}

func runMasters(cmd *cobra.Command, fsys afero.Fs, files []string) error {
	logger := logging.GetLogger("cli.masters")

	data := pterm.TableData{{"Plugin", "Master", "Size"}}
	failed := 0
	for _, path := range files {
		name := filepath.Base(path)
		header, ok := plugin.ReadHeader(fsys, path, logger)
		switch {
		case !ok:
			failed++
			data = append(data, []string{name, MsgNotAPlugin, ""})
		case len(header.Masters) == 0:
			data = append(data, []string{name, MsgNoMasters, ""})
		default:
			for _, m := range header.Masters {
				data = append(data, []string{name, m.Name, sizeCell(m.Size)})
			}
		}
	}

	if err := renderTable(cmd.OutOrStdout(), data); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Newf(errors.ErrFileAccess, MsgErrUnreadable, failed, len(files))
	}
	return nil
}

func sizeCell(size uint64) string {
	if size == 0 {
		return ""
	}
	return fmt.Sprintf("%d", size)
}
