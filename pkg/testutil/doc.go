// Package testutil provides fixtures for testing load order components.
//
// Key components:
//   - PluginBuilder: synthesises TES3 plugin headers byte by byte
//   - WritePlugin: writes a synthetic plugin into an afero filesystem
//   - Entries / Names: build and inspect content entry slices
//   - TestEnvironment: temp XDG directories for command tests
//
// Usage guidelines:
//   - Package tests run against afero.NewMemMapFs(); command, logging and
//     config tests use a TestEnvironment or t.TempDir instead
//   - All test data should be defined inline, not in external files
package testutil
