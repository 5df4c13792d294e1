package sorter

import (
	"github.com/arthur-debert/loadorder/pkg/logging"
	"github.com/arthur-debert/loadorder/pkg/rules"
	"github.com/arthur-debert/loadorder/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// DefaultMaxPasses bounds the constraint satisfaction stage
	DefaultMaxPasses = 100
)

// DefaultPinned lists the base game masters in their required order
var DefaultPinned = []string{"Morrowind.esm", "Tribunal.esm", "Bloodmoon.esm"}

// DefaultMasterSuffixes identify master-type content files
var DefaultMasterSuffixes = []string{".esm"}

// Option configures a Sorter
type Option func(*Sorter)

// WithFs sets the filesystem plugin headers are read from
func WithFs(fsys afero.Fs) Option {
	return func(s *Sorter) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithLogger sets the logger used for stage and rule tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sorter) {
		s.logger = logger
	}
}

// WithMaxPasses sets the pass ceiling of the constraint stage. Values
// below one are ignored.
func WithMaxPasses(n int) Option {
	return func(s *Sorter) {
		if n > 0 {
			s.maxPasses = n
		}
	}
}

// WithPinned sets the files forced to the top of the list, in order
func WithPinned(names []string) Option {
	return func(s *Sorter) {
		s.pinned = append([]string(nil), names...)
	}
}

// WithMasterSuffixes sets the file suffixes treated as masters by the type
// heuristic
func WithMasterSuffixes(suffixes []string) Option {
	return func(s *Sorter) {
		s.masterSuffixes = make([]string, 0, len(suffixes))
		for _, suffix := range suffixes {
			s.masterSuffixes = append(s.masterSuffixes, types.NormalizeName(suffix))
		}
	}
}

// WithHeaderDependencies toggles reading plugin headers for masters
func WithHeaderDependencies(enabled bool) Option {
	return func(s *Sorter) {
		s.headerDeps = enabled
	}
}

// Sorter applies a RuleSet to content lists. Its configuration is fixed at
// construction, so one Sorter may serve any number of sorts.
type Sorter struct {
	rules          *rules.RuleSet
	fs             afero.Fs
	logger         zerolog.Logger
	maxPasses      int
	pinned         []string
	masterSuffixes []string
	headerDeps     bool
}

// New creates a Sorter for the given rules
func New(ruleSet *rules.RuleSet, opts ...Option) *Sorter {
	s := &Sorter{
		rules:          ruleSet,
		fs:             afero.NewOsFs(),
		logger:         zerolog.Nop(),
		maxPasses:      DefaultMaxPasses,
		pinned:         append([]string(nil), DefaultPinned...),
		masterSuffixes: append([]string(nil), DefaultMasterSuffixes...),
		headerDeps:     true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result describes what a sort did
type Result struct {
	RunID   string `json:"run_id" yaml:"run_id" toml:"run_id"`
	Skipped bool   `json:"skipped" yaml:"skipped" toml:"skipped"`
	Passes  int    `json:"passes" yaml:"passes" toml:"passes"`
	Swaps   int    `json:"swaps" yaml:"swaps" toml:"swaps"`
	// Converged is false when the constraint stage hit the pass ceiling
	Converged bool `json:"converged" yaml:"converged" toml:"converged"`
	// Cycle is set when masters and ORDER rules contradict each other for
	// the entries present
	Cycle bool `json:"cycle" yaml:"cycle" toml:"cycle"`
	// Dependencies maps lower-cased entry names to the lower-cased masters
	// they declare that are part of the content list
	Dependencies map[string][]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

// Sort reorders entries in place. searchPaths are data directories used
// to locate plugin files; later paths take precedence.
//
// With no rules loaded the list is left untouched and the result is
// marked Skipped.
func (s *Sorter) Sort(entries []types.ContentEntry, searchPaths []string) Result {
	result := Result{RunID: uuid.NewString()}
	logger := s.logger.With().Str("run_id", result.RunID).Logger()

	if s.rules.IsEmpty() {
		logger.Warn().Msg("No rules loaded, skipping sort")
		result.Skipped = true
		return result
	}

	logger.Info().
		Int("entries", len(entries)).
		Int("searchPaths", len(searchPaths)).
		Msg("Starting sort")
	logger.Debug().Strs("order", types.Names(entries)).Msg("Initial order")

	done := logging.LogOperationStart(logger, "dependencies")
	if s.headerDeps {
		result.Dependencies = s.discoverDependencies(entries, searchPaths, logger)
	}
	done()

	done = logging.LogOperationStart(logger, "constraints")
	graph := s.buildConstraints(entries, result.Dependencies, logger)
	result.Cycle = graph.hasCycle(logger)
	result.Passes, result.Swaps, result.Converged = s.satisfyConstraints(entries, graph, logger)
	done()

	done = logging.LogOperationStart(logger, "priority")
	s.applyNearEnd(entries, logger)
	s.applyNearStart(entries, logger)
	done()

	s.applyMasterHeuristic(entries, logger)
	s.applyPinned(entries, logger)

	logger.Info().
		Int("passes", result.Passes).
		Int("swaps", result.Swaps).
		Bool("converged", result.Converged).
		Bool("cycle", result.Cycle).
		Msg("Sort complete")
	logger.Debug().Strs("order", types.Names(entries)).Msg("Final order")

	return result
}
