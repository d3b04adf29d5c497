package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds application configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig holds entry and rounding limits.
type EngineConfig struct {
	MaxDigits int `mapstructure:"max_digits"`
	Precision int `mapstructure:"precision"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language           string `mapstructure:"language"`
	ErrorText          string `mapstructure:"error_text"`
	DivisionByZeroText string `mapstructure:"division_by_zero_text"`
	Theme              string `mapstructure:"theme"`
}

// LogConfig holds the debug log target. An empty path disables logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

const (
	ThemeMocha = "mocha"
	ThemePlain = "plain"

	maxPrecision = 15
)

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("engine.max_digits", 10)
	v.SetDefault("engine.precision", 8)
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.error_text", "Error")
	v.SetDefault("ui.division_by_zero_text", "Cannot divide by zero")
	v.SetDefault("ui.theme", ThemeMocha)
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects settings the engine or formatter cannot honour.
func (c Config) Validate() error {
	if c.Engine.MaxDigits < 1 {
		return fmt.Errorf("engine.max_digits must be at least 1, got %d", c.Engine.MaxDigits)
	}
	if c.Engine.Precision < 0 || c.Engine.Precision > maxPrecision {
		return fmt.Errorf("engine.precision must be between 0 and %d, got %d", maxPrecision, c.Engine.Precision)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case ThemeMocha, ThemePlain, "":
	default:
		return fmt.Errorf("ui.theme %q is not one of %q, %q", c.UI.Theme, ThemeMocha, ThemePlain)
	}
	return nil
}

// Language parses ui.language as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(c.UI.Language))
	if err != nil {
		return language.Und, fmt.Errorf("ui.language %q: %w", c.UI.Language, err)
	}
	return tag, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("JASKCALC_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("engine.max_digits", cfg.Engine.MaxDigits)
	v.Set("engine.precision", cfg.Engine.Precision)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.error_text", cfg.UI.ErrorText)
	v.Set("ui.division_by_zero_text", cfg.UI.DivisionByZeroText)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
