// Test Type: Unit Test
// Description: Tests for loading rule files from the filesystem

package rules_test

import (
	"testing"

	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/arthur-debert/loadorder/pkg/rules"
	"github.com/arthur-debert/loadorder/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ConcatenatesInOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/rules/mlox_base.txt", "[Order]\nA.esp\nB.esp\n")
	testutil.WriteFile(t, fs, "/rules/mlox_user.txt", "[NearEnd]\nA.esp\n")

	set, err := rules.Load(fs, []string{"/rules/mlox_base.txt", "/rules/mlox_user.txt"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, set.Order, 1)
	require.Len(t, set.NearEnd, 1)
	// user file lines continue the numbering of the base file
	assert.Equal(t, 5, set.NearEnd[0].Line)
}

func TestLoad_MissingTrailingNewline(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/a.txt", "[NearStart]\nFirst.esp")
	testutil.WriteFile(t, fs, "/b.txt", "Second.esp\n")

	set, err := rules.Load(fs, []string{"/a.txt", "/b.txt"}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, set.NearStart, 2)
	assert.Equal(t, "First.esp", set.NearStart[0].Pattern.String())
	assert.Equal(t, "Second.esp", set.NearStart[1].Pattern.String())
}

func TestLoad_SkipsUnreadable(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/rules/mlox_user.txt", "[NearStart]\nMine.esp\n")

	set, err := rules.Load(fs, []string{"/rules/mlox_base.txt", "/rules/mlox_user.txt"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, set.NearStart, 1)
}

func TestLoad_NothingReadable(t *testing.T) {
	fs := afero.NewMemMapFs()

	set, err := rules.Load(fs, []string{"/nope/mlox_base.txt"}, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRulesNotFound))
	require.NotNil(t, set)
	assert.True(t, set.IsEmpty())
}

func TestLoad_EmptyFileIsReadable(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/empty.txt", "")

	set, err := rules.Load(fs, []string{"/empty.txt"}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
}
