package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TestEnvironment is an isolated set of directories for command tests.
// XDG_CONFIG_HOME and XDG_STATE_HOME point into a temp dir, so config,
// rules and logs never touch the real user directories.
type TestEnvironment struct {
	Root string
	// ConfigDir is $XDG_CONFIG_HOME/loadorder, where rule files live
	ConfigDir string
	// DataDir is a data directory for plugin files
	DataDir string

	fs afero.Fs
	t  *testing.T
}

// NewTestEnvironment creates the directories and points the environment
// at them for the duration of the test
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:      root,
		ConfigDir: filepath.Join(root, "config", "loadorder"),
		DataDir:   filepath.Join(root, "Data Files"),
		fs:        afero.NewOsFs(),
		t:         t,
	}

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("LOADORDER_CONFIG", "")
	t.Setenv("NO_COLOR", "1")

	for _, dir := range []string{env.ConfigDir, env.DataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	return env
}

// WriteRules writes a rule file into ConfigDir and returns its path
func (env *TestEnvironment) WriteRules(name, content string) string {
	env.t.Helper()
	path := filepath.Join(env.ConfigDir, name)
	WriteFile(env.t, env.fs, path, content)
	return path
}

// WritePlugin writes a synthetic plugin into DataDir
func (env *TestEnvironment) WritePlugin(name string, masters ...string) string {
	env.t.Helper()
	return WritePlugin(env.t, env.fs, env.DataDir, name, masters...)
}

// WriteFile writes content to a path relative to Root
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := filepath.Join(env.Root, rel)
	WriteFile(env.t, env.fs, path, content)
	return path
}
