package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/jask/showcase/internal/directory"
)

// Dataset sources.
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceSQLite  = "sqlite"
)

// Start views.
const (
	ViewInput = "input"
	ViewTable = "table"
)

var (
	ErrUnknownSource = errors.New("unknown dataset source")
	ErrUnknownView   = errors.New("unknown start view")
	ErrMissingPath   = errors.New("dataset path required")
)

// Config holds application configuration.
type Config struct {
	Dataset  DatasetConfig  `mapstructure:"dataset" toml:"dataset"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	UI       UIConfig       `mapstructure:"ui" toml:"ui"`
	Form     FormConfig     `mapstructure:"form" toml:"form"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
	Export   ExportConfig   `mapstructure:"export" toml:"export"`
}

// DatasetConfig selects where employee records come from.
type DatasetConfig struct {
	Source string `mapstructure:"source" toml:"source"`
	Path   string `mapstructure:"path" toml:"path"` // yaml file for the yaml source
}

// DatabaseConfig holds sqlite settings for the sqlite source.
type DatabaseConfig struct {
	Path       string `mapstructure:"path" toml:"path"`
	Migrations string `mapstructure:"migrations" toml:"migrations"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartView      string `mapstructure:"start_view" toml:"start_view"`
	PageSize       int    `mapstructure:"page_size" toml:"page_size"`
	Locale         string `mapstructure:"locale" toml:"locale"`
	CurrencySymbol string `mapstructure:"currency_symbol" toml:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format" toml:"date_format"`
}

// FormConfig holds the simulated submission timings.
type FormConfig struct {
	SubmitDelay time.Duration `mapstructure:"submit_delay" toml:"submit_delay"`
	ResetDelay  time.Duration `mapstructure:"reset_delay" toml:"reset_delay"`
}

// LogConfig configures the file logger. An empty path discards logs.
type LogConfig struct {
	Path   string `mapstructure:"path" toml:"path"`
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "showcase")
}

// Path returns the config file location: SHOWCASE_CONFIG or the default under
// ~/.config/showcase.
func Path() string {
	if p := os.Getenv("SHOWCASE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "showcase", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.source", SourceBuiltin)
	v.SetDefault("dataset.path", "")
	v.SetDefault("database.path", filepath.Join(dataDir(), "showcase.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("ui.start_view", ViewInput)
	v.SetDefault("ui.page_size", directory.DefaultPageSize)
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.date_format", "Jan 2, 2006")
	v.SetDefault("form.submit_delay", 2*time.Second)
	v.SetDefault("form.reset_delay", 3*time.Second)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("export.dir", ".")
}

// Load reads configuration from .env, the config file and the environment.
// Env var overrides use prefix SHOWCASE_.
func Load() (Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("SHOWCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Dataset.Source {
	case SourceBuiltin:
	case SourceYAML:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("dataset.source=yaml: %w", ErrMissingPath)
		}
	case SourceSQLite:
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("dataset.source=sqlite: %w", ErrMissingPath)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Dataset.Source)
	}
	switch c.UI.StartView {
	case ViewInput, ViewTable:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownView, c.UI.StartView)
	}
	if !directory.ValidPageSize(c.UI.PageSize) {
		return fmt.Errorf("ui.page_size: %w: %d", directory.ErrInvalidPageSize, c.UI.PageSize)
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("ui.locale %q: %w", c.UI.Locale, err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// WriteDefault writes the default configuration to path unless a file is
// already there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s: %w", path, os.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	c := Default()
	if err := toml.NewEncoder(f).Encode(fileConfig(c)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

type fileFormConfig struct {
	SubmitDelay string `toml:"submit_delay"`
	ResetDelay  string `toml:"reset_delay"`
}

// fileConfigShape mirrors Config with durations as strings, the form viper
// reads back.
type fileConfigShape struct {
	Dataset  DatasetConfig  `toml:"dataset"`
	Database DatabaseConfig `toml:"database"`
	UI       UIConfig       `toml:"ui"`
	Form     fileFormConfig `toml:"form"`
	Log      LogConfig      `toml:"log"`
	Export   ExportConfig   `toml:"export"`
}

func fileConfig(c Config) fileConfigShape {
	return fileConfigShape{
		Dataset:  c.Dataset,
		Database: c.Database,
		UI:       c.UI,
		Form: fileFormConfig{
			SubmitDelay: c.Form.SubmitDelay.String(),
			ResetDelay:  c.Form.ResetDelay.String(),
		},
		Log:    c.Log,
		Export: c.Export,
	}
}
