package config

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "AIASSISTED_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Options controls which layers Load reads.
type Options struct {
	// File is an explicit configuration file. It must exist when set.
	// Empty selects $XDG_CONFIG_HOME/aiassisted/config.toml, which is
	// optional.
	File string

	// Overrides are applied last, keyed by dotted configuration key.
	Overrides map[string]interface{}

	// SkipEnv disables the environment layer.
	SkipEnv bool

	// SkipUserFile disables the default user file. An explicit File is
	// still read.
	SkipUserFile bool
}

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := Load(Options{SkipEnv: true, SkipUserFile: true})
	if err != nil {
		// The embedded defaults are validated by tests
		panic(fmt.Sprintf("invalid embedded configuration: %v", err))
	}
	return cfg
}

// Load resolves configuration from defaults < user file < env < overrides.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	configFile := opts.File
	explicit := configFile != ""
	if !explicit {
		configFile = paths.ConfigFilePath()
	} else {
		configFile = paths.ExpandHome(configFile)
	}
	if explicit || !opts.SkipUserFile {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, apperrors.Wrapf(err, apperrors.ErrConfigParse, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
		} else if explicit {
			return nil, apperrors.Wrapf(err, apperrors.ErrConfigLoad, "config file %s is not readable", configFile).
				WithDetail("path", configFile)
		}
	}

	// 3. Environment, restricted to keys the defaults declare
	if !opts.SkipEnv {
		known := make(map[string]bool)
		for _, key := range k.Keys() {
			known[key] = true
		}
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
			if !known[key] {
				return ""
			}
			return key
		}), nil)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	cfg := Config{k: k, file: configFile}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.Newf(apperrors.ErrConfigValid, "source.url %q is not an absolute URL", c.Source.URL).
			WithDetail("key", "source.url")
	}
	if c.HTTP.Timeout <= 0 {
		return apperrors.Newf(apperrors.ErrConfigValid, "http.timeout must be positive, got %s", c.HTTP.Timeout).
			WithDetail("key", "http.timeout")
	}
	if c.HTTP.MaxBytes <= 0 {
		return apperrors.Newf(apperrors.ErrConfigValid, "http.maxbytes must be positive, got %d", c.HTTP.MaxBytes).
			WithDetail("key", "http.maxbytes")
	}
	if c.Preview.Lines < 0 {
		return apperrors.Newf(apperrors.ErrConfigValid, "preview.lines must not be negative, got %d", c.Preview.Lines).
			WithDetail("key", "preview.lines")
	}
	if !c.HasRuntime(c.Runtime.Default) {
		return apperrors.Newf(apperrors.ErrConfigValid, "runtime.default %q is not in runtime.available %v",
			c.Runtime.Default, c.Runtime.Available).
			WithDetail("key", "runtime.default")
	}
	return nil
}
