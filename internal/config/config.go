// Package config resolves settings from defaults, a TOML file and the
// environment. Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todomvc/internal/logging"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/router"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/ui"
)

const (
	appName        = "todo"
	configFileName = "config.toml"
	LogFileName    = "todo.log"
)

// Environment variables, highest precedence below flags.
const (
	EnvStore    = "TODO_STORE"
	EnvDataDir  = "TODO_DATA_DIR"
	EnvRoute    = "TODO_ROUTE"
	EnvTheme    = "TODO_THEME"
	EnvLogLevel = "TODO_LOG_LEVEL"
	EnvConfig   = "TODO_CONFIG"
)

type Config struct {
	Store    string `toml:"store"`
	DataDir  string `toml:"data_dir"`
	Route    string `toml:"route"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Store:    store.BackendJSON,
		DataDir:  defaultDataDir(),
		Route:    model.RouteAll,
		Theme:    "classic",
		LogLevel: "info",
	}
}

func defaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", appName)
	}
	return "." + appName
}

// DefaultPath is $XDG_CONFIG_HOME/todo/config.toml, or the OS config dir.
func DefaultPath() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, appName, configFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// Load layers defaults < file < environment. path "" means DefaultPath
// (or $TODO_CONFIG); a missing default file is fine, a missing explicit one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := strings.TrimSpace(os.Getenv(EnvConfig)); env != "" {
			path, explicit = env, true
		} else if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func applyEnv(cfg *Config) {
	set := func(dst *string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	set(&cfg.Store, EnvStore)
	set(&cfg.DataDir, EnvDataDir)
	set(&cfg.Route, EnvRoute)
	set(&cfg.Theme, EnvTheme)
	set(&cfg.LogLevel, EnvLogLevel)
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	var errs []error
	if !store.ValidBackend(c.Store) {
		errs = append(errs, fmt.Errorf("store %q: want one of %s", c.Store, strings.Join(store.Backends, ", ")))
	}
	if strings.TrimSpace(c.DataDir) == "" && !strings.EqualFold(c.Store, store.BackendMemory) {
		errs = append(errs, errors.New("data_dir is empty"))
	}
	if _, ok := model.FilterForRoute(router.Normalize(c.Route)); !ok {
		errs = append(errs, fmt.Errorf("route %q: want /, /active or /completed", c.Route))
	}
	if !ui.ValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q: want one of %s", c.Theme, strings.Join(ui.ThemeNames(), ", ")))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogPath is where interactive sessions write their log.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}

// Encode renders cfg as TOML, for `todo config`.
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}
