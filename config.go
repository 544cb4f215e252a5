package sdl2

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/sdl2/internal/provider"
)

// DefaultConfigFile is read by LoadConfig when no path is given.
const DefaultConfigFile = "sdl2.toml"

// Environment overrides, applied after the config file.
const (
	EnvLibraryPath = "SDL2_LIB_PATH"
	EnvLogLevel    = "SDL2_LOG_LEVEL"
)

// Provider names accepted in LibraryConfig.Providers.
const (
	ProviderExplicit = "explicit"
	ProviderSearch   = "search"
	ProviderLinked   = "linked"
	ProviderSystem   = "system"
)

// Config configures library discovery and logging.
type Config struct {
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`

	// Logger overrides the logger built from Log.
	Logger *log.Logger `toml:"-"`
}

// LibraryConfig controls where the native library is looked for.
type LibraryConfig struct {
	// Explicit path to the shared library
	Path string `toml:"path"`
	// File names to look for; empty means the platform defaults
	Names []string `toml:"names,omitempty"`
	// Extra directories searched before the built-in locations
	SearchDirs []string `toml:"search_dirs,omitempty"`
	// Provider order
	Providers []string `toml:"providers"`
	// Name of the in-process binding used by the linked provider
	Linked string `toml:"linked"`
	// Oldest acceptable SDL version, e.g. "2.0.10"
	MinVersion string `toml:"min_version"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// debug, info, warn, error
	Level string `toml:"level"`
	// Log each renamed key during Remap
	Remap bool `toml:"remap"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Library: LibraryConfig{
			Providers: []string{ProviderExplicit, ProviderSearch, ProviderLinked, ProviderSystem},
			Linked:    "sdl2",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads the configuration from path, or from DefaultConfigFile
// when path is empty. A missing default file yields the defaults; a missing
// explicit file is an error. Environment overrides are applied last.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	config.applyEnv()
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if path := os.Getenv(EnvLibraryPath); path != "" {
		c.Library.Path = path
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
}

// Validate checks provider names and the log level.
func (c Config) Validate() error {
	for _, name := range c.Library.Providers {
		switch name {
		case ProviderExplicit, ProviderSearch, ProviderLinked, ProviderSystem:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}
	if c.Library.MinVersion != "" {
		if _, err := canonicalVersion(c.Library.MinVersion); err != nil {
			return fmt.Errorf("min_version: %w", err)
		}
	}
	return nil
}

// logger returns Config.Logger or one built from the Log section.
func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NewLogger(os.Stderr, c.Log.Level)
}

// NewLogger creates the package's prefixed logger writing to w.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "sdl2",
	})
	if lvl, err := log.ParseLevel(strings.ToLower(level)); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// providers builds the provider chain in configured order.
func (c Config) providers(logger *log.Logger) ([]provider.Provider, error) {
	order := c.Library.Providers
	if len(order) == 0 {
		order = DefaultConfig().Library.Providers
	}

	out := make([]provider.Provider, 0, len(order))
	for _, name := range order {
		switch name {
		case ProviderExplicit:
			out = append(out, &provider.Explicit{Path: c.Library.Path, Logger: logger})
		case ProviderSearch:
			out = append(out, &provider.Search{Names: c.Library.Names, Dirs: c.Library.SearchDirs, Logger: logger})
		case ProviderLinked:
			out = append(out, &provider.Linked{Binding: c.Library.Linked})
		case ProviderSystem:
			out = append(out, &provider.System{Names: c.Library.Names, Logger: logger})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
	}
	return out, nil
}
