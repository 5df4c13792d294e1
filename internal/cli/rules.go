package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRulesCmd(root *rootOptions) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("rules") {
				overrides["rules.files"] = absPaths(files)
			}

			s, err := newSession(root, overrides)
			if err != nil {
				return err
			}

			stats := s.rules.Stats()
			data := pterm.TableData{
				{"Rule", "Count"},
				{"Order", fmt.Sprint(stats.Order)},
				{"NearStart", fmt.Sprint(stats.NearStart)},
				{"NearEnd", fmt.Sprint(stats.NearEnd)},
				{"Messages", fmt.Sprint(stats.Messages)},
			}

			out := cmd.OutOrStdout()
			if err := renderTable(out, data); err != nil {
				return err
			}

			fmt.Fprintln(out, "Rule files:")
			for _, path := range s.cfg.RuleFiles() {
				mark := "-"
				if ok, _ := afero.Exists(s.fs, path); ok {
					mark = "+"
				}
				fmt.Fprintf(out, MsgRuleFileFormat, mark, path)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "rules", "r", nil, MsgFlagRules)

	return cmd
}
