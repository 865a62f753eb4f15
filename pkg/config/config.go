// Package config loads termsys settings: embedded defaults merged with an
// optional user file under the XDG config directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/orcnighte/terminal-system/pkg/errors"
)

// Config holds the presentation settings of the shell. The simulated tree
// itself has no configuration; everything here is about rendering.
type Config struct {
	Prompt PromptConfig `koanf:"prompt"`
	LS     LSConfig     `koanf:"ls"`
	Banner BannerConfig `koanf:"banner"`
}

// PromptConfig controls the interactive prompt.
type PromptConfig struct {
	Format string `koanf:"format"`
	Color  bool   `koanf:"color"`
}

// LSConfig controls directory listing output.
type LSConfig struct {
	Classify bool `koanf:"classify"`
}

// BannerConfig controls the startup banner.
type BannerConfig struct {
	Enabled bool   `koanf:"enabled"`
	Text    string `koanf:"text"`
}

// Load reads configuration in two layers: the embedded defaults, then the
// user file at path. An empty path means the default user location
// ($XDG_CONFIG_HOME/termsys/termsys.toml); a missing user file is fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(xdg.ConfigHome, "termsys", "termsys.toml")
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	} else if explicit {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %s not found", path)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Default returns the embedded defaults without touching the file system.
func Default() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err == nil {
		_ = k.Unmarshal("", &cfg)
	}
	return &cfg
}
