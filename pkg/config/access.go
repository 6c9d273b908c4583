package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"

	apperrors "github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

// Keys returns every leaf key in the merged configuration, sorted
func (c *Config) Keys() []string {
	keys := c.k.Keys()
	sort.Strings(keys)
	return keys
}

// Get returns the value at a dotted key. Sections are returned as maps.
func (c *Config) Get(key string) (interface{}, bool) {
	if !c.k.Exists(key) {
		return nil, false
	}
	return c.k.Get(key), true
}

// GetString returns a display form of the value at key: scalars verbatim,
// lists comma-joined and sections as TOML.
func (c *Config) GetString(key string) (string, error) {
	v, ok := c.Get(key)
	if !ok {
		return "", apperrors.Newf(apperrors.ErrNotFound, "unknown configuration key %q", key).
			WithDetail("key", key)
	}

	switch val := v.(type) {
	case map[string]interface{}:
		out, err := toml.Marshal(val)
		if err != nil {
			return "", apperrors.Wrapf(err, apperrors.ErrInternal, "failed to render %s", key)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ","), nil
	case []string:
		return strings.Join(val, ","), nil
	default:
		return fmt.Sprint(val), nil
	}
}

// Render returns the merged configuration as TOML
func (c *Config) Render() (string, error) {
	out, err := toml.Marshal(c.k.Raw())
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}

// Reset overwrites path with the embedded defaults, creating parent
// directories as needed.
func Reset(fsys filesystem.FS, path string) error {
	if err := filesystem.WriteFileAtomic(fsys, path, defaultConfig, 0644); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrIO, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// SetValue writes key = value into the TOML file at path, keeping every
// other key the file holds. Only keys declared by the defaults are accepted.
func SetValue(fsys filesystem.FS, path, key string, value interface{}) error {
	if !isLeafKey(key) {
		return apperrors.Newf(apperrors.ErrNotFound, "unknown configuration key %q", key).
			WithDetail("key", key)
	}

	k := koanf.New(".")
	data, err := fsys.ReadFile(path)
	switch {
	case err == nil:
		if err := k.Load(&rawBytesProvider{bytes: data}, koanftoml.Parser()); err != nil {
			return apperrors.Wrapf(err, apperrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return apperrors.Wrapf(err, apperrors.ErrConfigLoad, "config file %s is not readable", path).
			WithDetail("path", path)
	}

	if err := k.Set(key, value); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrInternal, "failed to set %s", key)
	}
	out, err := toml.Marshal(k.Raw())
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal, "failed to render configuration")
	}
	if err := filesystem.WriteFileAtomic(fsys, path, out, 0644); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrIO, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

func isLeafKey(key string) bool {
	for _, k := range Default().Keys() {
		if k == key {
			return true
		}
	}
	return false
}
