package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type PagerOptions struct {
	TabWidth int `toml:"tab-width"`
	// Debug switches the log file to debug level.
	Debug bool `toml:"debug"`
}

type StatusBarOptions struct {
	ShowFile     bool `toml:"show-file"`
	ShowPosition bool `toml:"show-position"`
	ShowHint     bool `toml:"show-hint"`
}

type Config struct {
	Pager     PagerOptions     `toml:"pager"`
	StatusBar StatusBarOptions `toml:"status-bar"`
}

func Default() Config {
	return Config{
		Pager: PagerOptions{
			TabWidth: 4,
		},
		StatusBar: StatusBarOptions{
			ShowFile:     true,
			ShowPosition: true,
			ShowHint:     true,
		},
	}
}

// Load reads the user config file when present and merges it over the
// defaults. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Pager.TabWidth < 0 {
		cfg.Pager.TabWidth = 0
	}
	return cfg, nil
}

func configPath() (string, error) {
	if v := os.Getenv("YOMU_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "config.toml"), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "yomu", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "yomu", "config.toml"), nil
}
