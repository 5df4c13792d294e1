// Test Type: Unit Test
// Description: Tests for the load order sorter stages

package sorter_test

import (
	"testing"

	"github.com/arthur-debert/loadorder/pkg/rules"
	"github.com/arthur-debert/loadorder/pkg/sorter"
	"github.com/arthur-debert/loadorder/pkg/testutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeholder keeps a rule set non-empty without affecting the entries
const placeholder = "[NearStart]\nNot Installed.esp\n"

func newSorter(t *testing.T, fs afero.Fs, text string, opts ...sorter.Option) *sorter.Sorter {
	t.Helper()
	set := rules.LoadString(text, zerolog.Nop())
	require.False(t, set.IsEmpty())
	opts = append([]sorter.Option{sorter.WithFs(fs)}, opts...)
	return sorter.New(set, opts...)
}

func TestSort_EmptyRulesLeaveListUntouched(t *testing.T) {
	for name, set := range map[string]*rules.RuleSet{
		"nil":   nil,
		"empty": {},
		"blank": rules.LoadString("; nothing here\n\n", zerolog.Nop()),
	} {
		t.Run(name, func(t *testing.T) {
			entries := testutil.Entries("Bloodmoon.esm", "Mod.esp", "Morrowind.esm")

			result := sorter.New(set, sorter.WithFs(afero.NewMemMapFs())).Sort(entries, nil)

			assert.True(t, result.Skipped)
			assert.NotEmpty(t, result.RunID)
			assert.Equal(t, []string{"Bloodmoon.esm", "Mod.esp", "Morrowind.esm"}, testutil.Names(entries))
		})
	}
}

func TestSort_OrderRuleSwap(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nA.esp\nB.esp\n")
	entries := testutil.Entries("B.esp", "A.esp")

	result := s.Sort(entries, nil)

	assert.Equal(t, []string{"A.esp", "B.esp"}, testutil.Names(entries))
	assert.False(t, result.Skipped)
	assert.True(t, result.Converged)
	assert.False(t, result.Cycle)
	assert.Equal(t, 1, result.Swaps)
	assert.Equal(t, 2, result.Passes)
}

func TestSort_OrderRuleChain(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nA.esp\nB.esp\nC.esp\n")
	entries := testutil.Entries("C.esp", "Other.esp", "B.esp", "A.esp")

	result := s.Sort(entries, nil)

	assert.True(t, result.Converged)
	names := testutil.Names(entries)
	assert.Less(t, indexOf(names, "A.esp"), indexOf(names, "B.esp"))
	assert.Less(t, indexOf(names, "B.esp"), indexOf(names, "C.esp"))
}

func TestSort_OrderRuleWildcard(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nBase.esp\nPatch*.esp\n")
	entries := testutil.Entries("PatchOne.esp", "Base.esp", "PatchTwo.esp")

	s.Sort(entries, nil)

	assert.Equal(t, []string{"Base.esp", "PatchOne.esp", "PatchTwo.esp"}, testutil.Names(entries))
}

func TestSort_OrderRuleCaseInsensitive(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nbase.ESP\npatch.esp\n")
	entries := testutil.Entries("Patch.esp", "Base.esp")

	s.Sort(entries, nil)

	assert.Equal(t, []string{"Base.esp", "Patch.esp"}, testutil.Names(entries))
}

func TestSort_HeaderMasterSwap(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WritePlugin(t, fs, "/data", "Addon.esp", "LIBRARY.ESP", "Missing.esm")
	testutil.WritePlugin(t, fs, "/data", "Library.esp")

	s := newSorter(t, fs, placeholder)
	entries := testutil.Entries("Addon.esp", "Library.esp")

	result := s.Sort(entries, []string{"/data"})

	assert.Equal(t, []string{"Library.esp", "Addon.esp"}, testutil.Names(entries))
	assert.Equal(t, map[string][]string{"addon.esp": {"library.esp"}}, result.Dependencies)
	assert.Equal(t, 1, result.Swaps)
}

func TestSort_HeaderDependenciesDisabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WritePlugin(t, fs, "/data", "Addon.esp", "Library.esp")

	s := newSorter(t, fs, placeholder, sorter.WithHeaderDependencies(false))
	entries := testutil.Entries("Addon.esp", "Library.esp")

	result := s.Sort(entries, []string{"/data"})

	assert.Equal(t, []string{"Addon.esp", "Library.esp"}, testutil.Names(entries))
	assert.Empty(t, result.Dependencies)
}

func TestSort_UnlocatedOrCorruptPlugins(t *testing.T) {
	fs := afero.NewMemMapFs()
	bad := testutil.NewPlugin().WithMagic("TES4").Master("Library.esp", 1).Bytes()
	require.NoError(t, fs.MkdirAll("/data", 0755))
	require.NoError(t, afero.WriteFile(fs, "/data/Corrupt.esp", bad, 0644))

	s := newSorter(t, fs, placeholder)
	entries := testutil.Entries("Corrupt.esp", "Unlocated.esp", "Library.esp")

	result := s.Sort(entries, []string{"/data", "/does/not/exist"})

	assert.Equal(t, []string{"Corrupt.esp", "Unlocated.esp", "Library.esp"}, testutil.Names(entries))
	assert.Empty(t, result.Dependencies)
	assert.Zero(t, result.Swaps)
}

func TestSort_LaterSearchPathWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WritePlugin(t, fs, "/base", "Addon.esp")
	testutil.WritePlugin(t, fs, "/mods", "Addon.esp", "Library.esp")

	t.Run("mods_last", func(t *testing.T) {
		entries := testutil.Entries("Addon.esp", "Library.esp")
		newSorter(t, fs, placeholder).Sort(entries, []string{"/base", "/mods"})
		assert.Equal(t, []string{"Library.esp", "Addon.esp"}, testutil.Names(entries))
	})

	t.Run("base_last", func(t *testing.T) {
		entries := testutil.Entries("Addon.esp", "Library.esp")
		newSorter(t, fs, placeholder).Sort(entries, []string{"/mods", "/base"})
		assert.Equal(t, []string{"Addon.esp", "Library.esp"}, testutil.Names(entries))
	})
}

func TestSort_PinnedMasters(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[NearEnd]\nMorrowind.esm\n\n[NearStart]\nSome.esp\n")
	entries := testutil.Entries("Bloodmoon.esm", "Some.esp", "tribunal.ESM", "Other.esm", "Morrowind.esm")

	s.Sort(entries, nil)

	assert.Equal(t,
		[]string{"Morrowind.esm", "tribunal.ESM", "Bloodmoon.esm", "Other.esm", "Some.esp"},
		testutil.Names(entries))
}

func TestSort_PinnedPartialAndCustom(t *testing.T) {
	t.Run("only_some_present", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), placeholder)
		entries := testutil.Entries("A.esm", "Bloodmoon.esm", "Morrowind.esm")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"Morrowind.esm", "Bloodmoon.esm", "A.esm"}, testutil.Names(entries))
	})

	t.Run("custom_pins", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), placeholder, sorter.WithPinned([]string{"Core.esm"}))
		entries := testutil.Entries("Morrowind.esm", "Core.esm")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"Core.esm", "Morrowind.esm"}, testutil.Names(entries))
	})
}

func TestSort_NearStartPartition(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[NearStart]\nEarly*.esp\n")
	entries := testutil.Entries("A.esp", "EarlyOne.esp", "B.esp", "EarlyTwo.esp")

	s.Sort(entries, nil)

	assert.Equal(t, []string{"EarlyOne.esp", "EarlyTwo.esp", "A.esp", "B.esp"}, testutil.Names(entries))
}

func TestSort_NearEndPartition(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[NearEnd]\nLate.esp\n")
	entries := testutil.Entries("Late.esp", "A.esp", "B.esp")

	s.Sort(entries, nil)

	assert.Equal(t, []string{"A.esp", "B.esp", "Late.esp"}, testutil.Names(entries))
}

func TestSort_PriorityRegistrationOrder(t *testing.T) {
	t.Run("later_nearstart_dominates", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), "[NearStart]\nX.esp\nY.esp\n")
		entries := testutil.Entries("A.esp", "X.esp", "Y.esp")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"Y.esp", "X.esp", "A.esp"}, testutil.Names(entries))
	})

	t.Run("later_nearend_dominates", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), "[NearEnd]\nX.esp\nY.esp\n")
		entries := testutil.Entries("X.esp", "Y.esp", "A.esp")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"A.esp", "X.esp", "Y.esp"}, testutil.Names(entries))
	})

	t.Run("nearstart_after_nearend", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), "[NearStart]\nBoth.esp\n\n[NearEnd]\nBoth.esp\n")
		entries := testutil.Entries("A.esp", "Both.esp", "B.esp")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"Both.esp", "A.esp", "B.esp"}, testutil.Names(entries))
	})
}

func TestSort_MasterHeuristic(t *testing.T) {
	t.Run("default_suffix", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), placeholder)
		entries := testutil.Entries("a.esp", "B.ESM", "c.esp", "D.esm")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"B.ESM", "D.esm", "a.esp", "c.esp"}, testutil.Names(entries))
	})

	t.Run("custom_suffixes", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), placeholder,
			sorter.WithMasterSuffixes([]string{".ESM", ".omwgame"}))
		entries := testutil.Entries("a.esp", "Game.omwgame", "B.esm")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"Game.omwgame", "B.esm", "a.esp"}, testutil.Names(entries))
	})

	t.Run("heuristic_overrides_order_rule", func(t *testing.T) {
		s := newSorter(t, afero.NewMemMapFs(), "[Order]\nPlugin.esp\nMaster.esm\n")
		entries := testutil.Entries("Master.esm", "Plugin.esp")
		s.Sort(entries, nil)
		assert.Equal(t, []string{"Master.esm", "Plugin.esp"}, testutil.Names(entries))
	})
}

func TestSort_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WritePlugin(t, fs, "/data", "Quest.esp", "Library.esp")
	testutil.WritePlugin(t, fs, "/data", "Library.esp", "Morrowind.esm")
	testutil.WritePlugin(t, fs, "/data", "Morrowind.esm")

	s := newSorter(t, fs, "[Order]\nA.esp\nB.esp\nC.esp\n\n[NearEnd]\nZ.esp\n")
	entries := testutil.Entries("Z.esp", "C.esp", "Quest.esp", "B.esp", "Library.esp", "A.esp", "Morrowind.esm")

	first := s.Sort(entries, []string{"/data"})
	require.True(t, first.Converged)
	assert.Positive(t, first.Swaps)
	sorted := testutil.Names(entries)

	second := s.Sort(entries, []string{"/data"})
	assert.True(t, second.Converged)
	assert.Zero(t, second.Swaps)
	assert.Equal(t, 1, second.Passes)
	assert.Equal(t, sorted, testutil.Names(entries))
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestSort_ContradictionIsBounded(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WritePlugin(t, fs, "/data", "A.esp", "B.esp")
	testutil.WritePlugin(t, fs, "/data", "B.esp")

	// the header puts B before A, the rule puts B after A
	s := newSorter(t, fs, "[Order]\nA.esp\nB.esp\n", sorter.WithMaxPasses(5))
	entries := testutil.Entries("A.esp", "B.esp")

	result := s.Sort(entries, []string{"/data"})

	assert.False(t, result.Converged)
	assert.True(t, result.Cycle)
	assert.Equal(t, 5, result.Passes)
	assert.Equal(t, 5, result.Swaps)
	assert.ElementsMatch(t, []string{"A.esp", "B.esp"}, testutil.Names(entries))
}

func TestSort_RuleCycle(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nA.esp\nB.esp\nA.esp\n")
	entries := testutil.Entries("A.esp", "B.esp", "C.esp")

	result := s.Sort(entries, nil)

	assert.True(t, result.Cycle)
	assert.False(t, result.Converged)
	assert.Equal(t, sorter.DefaultMaxPasses, result.Passes)
	assert.Len(t, entries, 3)
}

func TestSort_UnrelatedEntriesKeepOrder(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nA.esp\nB.esp\n")
	entries := testutil.Entries("One.esp", "Two.esp", "Three.esp")

	result := s.Sort(entries, nil)

	assert.Equal(t, []string{"One.esp", "Two.esp", "Three.esp"}, testutil.Names(entries))
	assert.Equal(t, 1, result.Passes)
	assert.True(t, result.Converged)
}

func TestSort_RunID(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), placeholder)
	result := s.Sort(testutil.Entries("A.esp"), nil)

	_, err := uuid.Parse(result.RunID)
	assert.NoError(t, err)
}

func TestSort_PreservesEntryFields(t *testing.T) {
	s := newSorter(t, afero.NewMemMapFs(), "[Order]\nA.esp\nB.esp\n")
	entries := testutil.Entries("B.esp", "A.esp")
	entries[0].Enabled = false
	entries[0].Source = "Some Mod"
	entries[0].IsNew = true

	s.Sort(entries, nil)

	assert.Equal(t, "B.esp", entries[1].Name)
	assert.False(t, entries[1].Enabled)
	assert.Equal(t, "Some Mod", entries[1].Source)
	assert.True(t, entries[1].IsNew)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
