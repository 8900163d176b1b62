package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/modcontent/pkg/errors"
	"github.com/arthur-debert/modcontent/pkg/logging"
	"github.com/arthur-debert/modcontent/pkg/utils"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MODCONTENT_"

// configNames are tried in order inside the XDG config directory
var configNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// Path is an explicit config file. When empty the XDG location is searched.
	Path string

	// Overrides are applied last, keyed by dotted path ("scan.concurrency")
	Overrides map[string]interface{}

	// SkipUserFile disables the XDG config file search
	SkipUserFile bool

	// SkipEnv disables MODCONTENT_* environment overrides
	SkipEnv bool
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path := utils.ExpandPath(opts.Path)
	switch {
	case path != "":
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
	case !opts.SkipUserFile:
		path = findUserConfig()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// anything below one serializes scans
	if cfg.Scan.Concurrency < 1 {
		cfg.Scan.Concurrency = 1
	}

	logger.Debug().
		Int("concurrency", cfg.Scan.Concurrency).
		Int("batchSize", cfg.Scan.BatchSize).
		Int("rules", len(cfg.Rules)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded defaults alone
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserFile: true, SkipEnv: true})
	if err != nil {
		// embedded defaults are part of the binary
		panic(err.Error())
	}
	return cfg
}

// Validate checks value ranges and rule shapes. Category names are checked
// when the rule table is built.
func (c *Config) Validate() error {
	if c.Scan.BatchSize <= 0 {
		return errors.Newf(errors.ErrConfigValid, "scan.batch_size must be > 0, got %d", c.Scan.BatchSize)
	}
	if c.Tracker.Capacity <= 0 {
		return errors.Newf(errors.ErrConfigValid, "tracker.capacity must be > 0, got %d", c.Tracker.Capacity)
	}
	for i, r := range c.Rules {
		if strings.TrimSpace(r.Extension) == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %d has empty extension", i)
		}
		if strings.TrimSpace(r.Category) == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %d (%s) has empty category", i, r.Extension)
		}
	}
	return nil
}

// UserConfigDir is where the user config file lives
func UserConfigDir() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName)
}

func findUserConfig() string {
	for _, name := range configNames {
		path := filepath.Join(UserConfigDir(), name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
