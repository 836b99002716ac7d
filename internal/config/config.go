// Package config resolves runtime settings from defaults, the environment
// (optionally seeded from a .env file) and command-line arguments, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	EnvCatalog  = "COOKIEBOX_CATALOG"
	EnvTheme    = "COOKIEBOX_THEME"
	EnvLogFile  = "COOKIEBOX_LOG_FILE"
	EnvLogLevel = "COOKIEBOX_LOG_LEVEL"

	ThemeDark  = "dark"
	ThemeLight = "light"

	defaultLogLevel = "info"
)

var (
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrMissingValue    = errors.New("missing flag value")
	ErrUnknownFlag     = errors.New("unknown flag")
)

// Config is the resolved runtime configuration.
type Config struct {
	CatalogPath string // empty means the embedded seed
	Theme       string
	LogFile     string // empty disables logging
	LogLevel    string
	Search      string
	Dump        bool
	ShowHelp    bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Theme:    ThemeDark,
		LogLevel: defaultLogLevel,
	}
}

// LoadDotEnv loads .env files into the process environment. A missing file
// is not an error; variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// Parse builds a Config from args (without the program name) layered over
// the environment read through getenv.
func Parse(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if getenv != nil {
		applyEnv(&cfg, getenv)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%w: %s", ErrMissingValue, name)
			}
			i++
			return args[i], nil
		}

		var err error
		switch name {
		case "-h", "--help":
			cfg.ShowHelp = true
		case "-c", "--catalog":
			cfg.CatalogPath, err = next()
		case "-t", "--theme":
			cfg.Theme, err = next()
		case "--log-file":
			cfg.LogFile, err = next()
		case "--log-level":
			cfg.LogLevel, err = next()
		case "-s", "--search":
			cfg.Search, err = next()
		case "-d", "--dump":
			cfg.Dump = true
		default:
			return cfg, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
		}
		if err != nil {
			return cfg, err
		}
	}

	theme, err := normalizeTheme(cfg.Theme)
	if err != nil {
		return cfg, err
	}
	cfg.Theme = theme

	level, err := normalizeLogLevel(cfg.LogLevel)
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = level
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvCatalog)); v != "" {
		cfg.CatalogPath = v
	}
	if v := strings.TrimSpace(getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}

func normalizeTheme(theme string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "", ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidTheme, theme, ThemeDark, ThemeLight)
	}
}

func normalizeLogLevel(level string) (string, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return defaultLogLevel, nil
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
	return parsed.String(), nil
}
