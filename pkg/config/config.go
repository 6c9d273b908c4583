package config

import (
	"time"

	"github.com/knadh/koanf/v2"
)

// Config is the resolved aiassisted configuration.
type Config struct {
	Source  Source  `koanf:"source"`
	HTTP    HTTP    `koanf:"http"`
	Preview Preview `koanf:"preview"`
	Runtime Runtime `koanf:"runtime"`
	Log     Log     `koanf:"log"`

	// k keeps the merged key space for `config get` and `config show`
	k *koanf.Koanf
	// file is the user file that was consulted, whether or not it existed
	file string
}

// Source locates the remote tree
type Source struct {
	URL string `koanf:"url"`
}

// HTTP tunes the fetcher
type HTTP struct {
	Timeout   time.Duration `koanf:"timeout"`
	UserAgent string        `koanf:"useragent"`
	MaxBytes  int64         `koanf:"maxbytes"`
}

// Preview controls the diff shown before applying an update
type Preview struct {
	Lines int `koanf:"lines"`
}

// Runtime selects the implementation that executes commands
type Runtime struct {
	Default   string   `koanf:"default"`
	Available []string `koanf:"available"`
}

// Log controls the log file location
type Log struct {
	File string `koanf:"file"`
}

// File returns the user configuration file this Config was loaded against
func (c *Config) File() string {
	return c.file
}

// HasRuntime reports whether name is listed in runtime.available
func (c *Config) HasRuntime(name string) bool {
	for _, r := range c.Runtime.Available {
		if r == name {
			return true
		}
	}
	return false
}
