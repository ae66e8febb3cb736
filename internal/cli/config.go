package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional config file (~/.config/versewall/config.toml).
// Flags override config values; config values override defaults.
type Config struct {
	DBPath        string      `toml:"db_path"`
	Mode          string      `toml:"mode"`
	PaletteFile   string      `toml:"palette_file"`
	Palette       string      `toml:"palette"`
	Dark          bool        `toml:"dark"`
	TopN          int         `toml:"top_n"`
	IncludeCommon bool        `toml:"include_common"`
	Treemap       string      `toml:"treemap"`
	Out           string      `toml:"out"`
	Cache         CacheConfig `toml:"cache"`
	Serve         ServeConfig `toml:"serve"`
}

type CacheConfig struct {
	Backend string      `toml:"backend"` // file, redis, or none
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig holds the values used when neither the file nor flags
// set an option.
func defaultConfig() Config {
	return Config{
		Mode:    "chapter",
		Palette: "Default",
		TopN:    50,
		Treemap: "squarified",
		Cache:   CacheConfig{Backend: "file", Redis: RedisConfig{Addr: "localhost:6379"}},
		Serve:   ServeConfig{Addr: ":8972"},
	}
}

// loadConfig reads the config file at path, or the default location
// when path is empty. A missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TopN < 1 {
		return Config{}, fmt.Errorf("config %s: top_n must be positive", path)
	}
	return cfg, nil
}

// paletteSearchPaths lists where palette files are looked for when the
// config names none.
func paletteSearchPaths() []string {
	var paths []string
	if dir, err := configDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "palettes.json"))
	}
	paths = append(paths, "palettes.json")
	return paths
}
