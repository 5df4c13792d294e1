package cli

import (
	"github.com/arthur-debert/loadorder/pkg/config"
	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/logging"
	"github.com/arthur-debert/loadorder/pkg/report"
	"github.com/arthur-debert/loadorder/pkg/rules"
	"github.com/arthur-debert/loadorder/pkg/sorter"
	"github.com/spf13/afero"
)

// session bundles what a command needs once flags are parsed
type session struct {
	fs    afero.Fs
	cfg   *config.Config
	rules *rules.RuleSet
}

func loadConfig(opts *rootOptions, overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		Path:      opts.configPath,
		Overrides: overrides,
	})
}

// newSession loads configuration and rules. Missing rule files are not an
// error: the sorter treats an empty rule set as a no-op.
func newSession(opts *rootOptions, overrides map[string]interface{}) (*session, error) {
	cfg, err := loadConfig(opts, overrides)
	if err != nil {
		return nil, err
	}

	s := &session{fs: afero.NewOsFs(), cfg: cfg}

	logger := logging.GetLogger("rules")
	s.rules, err = rules.Load(s.fs, cfg.RuleFiles(), logger)
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrRulesNotFound) {
			return nil, err
		}
		logger.Warn().Err(err).Strs("files", cfg.RuleFiles()).Msg(MsgRulesMissing)
	}

	return s, nil
}

func (s *session) sorter() *sorter.Sorter {
	return sorter.New(s.rules,
		sorter.WithFs(s.fs),
		sorter.WithLogger(logging.GetLogger("sorter")),
		sorter.WithMaxPasses(s.cfg.Sort.MaxPasses),
		sorter.WithPinned(s.cfg.Sort.Pinned),
		sorter.WithMasterSuffixes(s.cfg.Sort.MasterSuffixes),
		sorter.WithHeaderDependencies(s.cfg.Sort.HeaderDependencies),
	)
}

func (s *session) format() (report.Format, error) {
	return report.ParseFormat(s.cfg.Output.Format)
}
