package cli

import (
	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/pattern"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "match <pattern> <plugin>...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := pattern.Compile(args[0])
			if err := m.Err(); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", args[0])
			}

			data := pterm.TableData{{"Plugin", "Match", "Version"}}
			for _, name := range args[1:] {
				matched := "no"
				if m.Match(name) {
					matched = "yes"
				}
				ver, _ := m.Version(name)
				data = append(data, []string{name, matched, ver})
			}

			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}
