package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the configuration directory
const AppName = "loadorder"

// Config is the complete loadorder configuration
type Config struct {
	Rules  RulesConfig  `koanf:"rules" toml:"rules"`
	Sort   SortConfig   `koanf:"sort" toml:"sort"`
	Data   DataConfig   `koanf:"data" toml:"data"`
	Game   GameConfig   `koanf:"game" toml:"game"`
	Output OutputConfig `koanf:"output" toml:"output"`

	// Path is the user config file that was loaded, if any
	Path string `koanf:"-" toml:"-"`
}

// RulesConfig locates the mlox rule files
type RulesConfig struct {
	Files []string `koanf:"files" toml:"files"`
	Dir   string   `koanf:"dir" toml:"dir"`
}

// SortConfig tunes the sorter
type SortConfig struct {
	MaxPasses          int      `koanf:"max_passes" toml:"max_passes"`
	Pinned             []string `koanf:"pinned" toml:"pinned"`
	MasterSuffixes     []string `koanf:"master_suffixes" toml:"master_suffixes"`
	HeaderDependencies bool     `koanf:"header_dependencies" toml:"header_dependencies"`
}

// DataConfig lists the data directories searched for plugin files
type DataConfig struct {
	Paths []string `koanf:"paths" toml:"paths"`
}

// GameConfig points at the game's own configuration
type GameConfig struct {
	OpenMWConfig string `koanf:"openmw_cfg" toml:"openmw_cfg"`
}

// OutputConfig selects how results are printed
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// RulesDir returns the directory relative rule files are resolved against
func (c *Config) RulesDir() string {
	if c.Rules.Dir != "" {
		return c.Rules.Dir
	}
	return filepath.Join(configHome(), AppName)
}

// RuleFiles returns the rule file paths in load order
func (c *Config) RuleFiles() []string {
	dir := c.RulesDir()
	paths := make([]string, 0, len(c.Rules.Files))
	for _, f := range c.Rules.Files {
		if f == "" {
			continue
		}
		if filepath.IsAbs(f) {
			paths = append(paths, f)
		} else {
			paths = append(paths, filepath.Join(dir, f))
		}
	}
	return paths
}

// DefaultConfigPath returns the user config file location
func DefaultConfigPath() string {
	return filepath.Join(configHome(), AppName, "config.toml")
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}
