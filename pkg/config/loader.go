package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/loadorder/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. LOADORDER_SORT_MAX_PASSES
	EnvPrefix = "LOADORDER_"
	// EnvConfigPath names an alternative user config file
	EnvConfigPath = "LOADORDER_CONFIG"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Path is an explicit config file. Unlike the default location it must
	// exist.
	Path string
	// Overrides are applied after every other layer, keyed by dotted path
	// such as "sort.max_passes"
	Overrides map[string]interface{}
}

// Load builds the configuration from defaults, the user file, the
// environment and overrides, in that order
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, explicit := configPath(opts.Path)
	loaded := ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		loaded = path
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Path = loaded

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// configPath picks the user config file and reports whether it was asked
// for explicitly
func configPath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if path = os.Getenv(EnvConfigPath); path != "" {
		return path, true
	}
	return DefaultConfigPath(), false
}

// parserFor picks the parser by file extension. TOML is the default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps LOADORDER_SECTION_SOME_KEY to section.some_key. Variables
// without a section are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "" || field == "" {
		return ""
	}
	return section + "." + field
}

func validate(cfg *Config) error {
	if cfg.Sort.MaxPasses < 1 {
		return errors.Newf(errors.ErrConfigParse, "sort.max_passes must be at least 1, got %d", cfg.Sort.MaxPasses).
			WithDetail("max_passes", cfg.Sort.MaxPasses)
	}
	return nil
}
