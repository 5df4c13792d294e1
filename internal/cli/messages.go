package cli

import (
	"github.com/arthur-debert/loadorder/pkg/report"
	"github.com/spf13/cobra"
)

func newMessagesCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "messages <plugin>...",
		Short:   MsgMessagesShort,
		Long:    MsgMessagesLong,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}

			s, err := newSession(root, overrides)
			if err != nil {
				return err
			}
			f, err := s.format()
			if err != nil {
				return err
			}

			return report.Render(cmd.OutOrStdout(), f, report.Report{
				Messages: s.rules.MessageMap(args),
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}
