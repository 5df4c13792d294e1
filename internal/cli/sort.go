package cli

import (
	"path/filepath"

	"github.com/arthur-debert/loadorder/pkg/gamecfg"
	"github.com/arthur-debert/loadorder/pkg/logging"
	"github.com/arthur-debert/loadorder/pkg/report"
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type sortOptions struct {
	openmwCfg string
	list      string
	data      []string
	rules     []string
	format    string
	maxPasses int
	noHeaders bool
}

func newSortCmd(root *rootOptions) *cobra.Command {
	opts := &sortOptions{}

	cmd := &cobra.Command{
		Use:     "sort [plugins...]",
		Short:   MsgSortShort,
		Long:    MsgSortLong,
		Example: MsgSortExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.openmwCfg, "openmw-cfg", "", MsgFlagOpenMWCfg)
	cmd.Flags().StringVarP(&opts.list, "list", "l", "", MsgFlagList)
	cmd.Flags().StringSliceVarP(&opts.data, "data", "d", nil, MsgFlagData)
	cmd.Flags().StringSliceVarP(&opts.rules, "rules", "r", nil, MsgFlagRules)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().IntVar(&opts.maxPasses, "max-passes", 0, MsgFlagMaxPasses)
	cmd.Flags().BoolVar(&opts.noHeaders, "no-headers", false, MsgFlagNoHeaders)
	cmd.MarkFlagsMutuallyExclusive("openmw-cfg", "list")

	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	return cmd
}

// overrides turns the flags the user set into config keys
func (o *sortOptions) overrides(flags *pflag.FlagSet) map[string]interface{} {
	out := make(map[string]interface{})
	if flags.Changed("openmw-cfg") {
		out["game.openmw_cfg"] = o.openmwCfg
	}
	if flags.Changed("data") {
		out["data.paths"] = absPaths(o.data)
	}
	if flags.Changed("rules") {
		out["rules.files"] = absPaths(o.rules)
	}
	if flags.Changed("format") {
		out["output.format"] = o.format
	}
	if flags.Changed("max-passes") {
		out["sort.max_passes"] = o.maxPasses
	}
	if flags.Changed("no-headers") {
		out["sort.header_dependencies"] = !o.noHeaders
	}
	return out
}

func runSort(cmd *cobra.Command, root *rootOptions, opts *sortOptions, args []string) error {
	logger := logging.GetLogger("cli.sort")

	s, err := newSession(root, opts.overrides(cmd.Flags()))
	if err != nil {
		return err
	}
	format, err := s.format()
	if err != nil {
		return err
	}

	entries, dataPaths, err := readContent(s, opts.list, args)
	if err != nil {
		return err
	}
	logger.Info().
		Int("plugins", len(entries)).
		Strs("dataPaths", dataPaths).
		Msg("Sorting load order")

	result := s.sorter().Sort(entries, dataPaths)

	return report.Render(cmd.OutOrStdout(), format, report.Report{
		Entries:  entries,
		Result:   &result,
		Messages: s.rules.MessageMap(types.Names(entries)),
	})
}

// readContent picks the content source: arguments, a plain list, or
// openmw.cfg. Configured data paths are searched after the game's own.
func readContent(s *session, list string, args []string) ([]types.ContentEntry, []string, error) {
	dataPaths := append([]string(nil), s.cfg.Data.Paths...)

	switch {
	case len(args) > 0:
		entries := make([]types.ContentEntry, len(args))
		for i, name := range args {
			entries[i] = types.ContentEntry{Name: name, Enabled: true, Source: "args"}
		}
		return entries, dataPaths, nil

	case list != "":
		entries, err := gamecfg.ReadContentList(s.fs, list)
		return entries, dataPaths, err

	default:
		path := s.cfg.Game.OpenMWConfig
		if path == "" {
			path = gamecfg.DefaultOpenMWConfigPath()
		}
		gc, err := gamecfg.ReadOpenMWConfig(s.fs, path)
		if err != nil {
			return nil, nil, err
		}
		return gc.Content, append(gc.DataPaths, dataPaths...), nil
	}
}

func absPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			out[i] = abs
		} else {
			out[i] = p
		}
	}
	return out
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return report.Formats, cobra.ShellCompDirectiveNoFileComp
}
