package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/viper"

	"github.com/mmcdole/squeeze/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	UI       UIConfig       `mapstructure:"ui"`
	Store    StoreConfig    `mapstructure:"store"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DefaultsConfig holds the settings used when nothing has been persisted
type DefaultsConfig struct {
	Quality float64 `mapstructure:"quality"`
	Format  string  `mapstructure:"format"` // jpeg, png, webp
}

// UIConfig holds UI configuration
type UIConfig struct {
	Language string `mapstructure:"language"`  // empty = detect from environment
	ReadOnly bool   `mapstructure:"read_only"` // disables the settings panel
}

// StoreConfig holds local persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty = memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Quality: domain.DefaultSettings().Quality,
			Format:  "jpeg",
		},
		UI: UIConfig{
			Language: "",
			ReadOnly: false,
		},
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "squeeze", "squeeze.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "squeeze", "squeeze.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "squeeze")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "squeeze")
	}
}

// defaultStorePath returns the default preference store directory for the current OS
func defaultStorePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "squeeze")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "squeeze")
	}
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(cfg *Config) {
	viper.SetDefault("defaults.quality", cfg.Defaults.Quality)
	viper.SetDefault("defaults.format", cfg.Defaults.Format)
	viper.SetDefault("ui.language", cfg.UI.Language)
	viper.SetDefault("ui.read_only", cfg.UI.ReadOnly)
	viper.SetDefault("store.path", cfg.Store.Path)
	viper.SetDefault("logging.file", cfg.Logging.File)
	viper.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise the default locations are searched.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(cfg)

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(defaultConfigPath())
		viper.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. SQUEEZE_DEFAULTS_QUALITY
	viper.SetEnvPrefix("SQUEEZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to the default config file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("defaults.quality", cfg.Defaults.Quality)
	viper.Set("defaults.format", cfg.Defaults.Format)
	viper.Set("ui.language", cfg.UI.Language)
	viper.Set("ui.read_only", cfg.UI.ReadOnly)
	viper.Set("store.path", cfg.Store.Path)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// InitialSettings returns the configured default settings, with quality clamped
func (c *Config) InitialSettings() (domain.CompressionSettings, error) {
	format, err := domain.ParseFormat(c.Defaults.Format)
	if err != nil {
		return domain.CompressionSettings{}, fmt.Errorf("defaults.format: %w%s", err,
			suggest(c.Defaults.Format, formatNames))
	}
	s := domain.SetFormat(domain.DefaultSettings(), format)
	return domain.SetQuality(s, c.Defaults.Quality), nil
}

// LanguageOverride returns the configured language, or false when it should be detected
func (c *Config) LanguageOverride() (domain.LanguageCode, bool, error) {
	if strings.TrimSpace(c.UI.Language) == "" {
		return "", false, nil
	}
	code, err := domain.ParseLanguage(c.UI.Language)
	if err != nil {
		return "", false, fmt.Errorf("ui.language: %w%s", err, suggest(c.UI.Language, languageNames()))
	}
	return code, true, nil
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	if _, err := c.InitialSettings(); err != nil {
		return err
	}
	if _, _, err := c.LanguageOverride(); err != nil {
		return err
	}
	return nil
}

// Accepted spellings offered as suggestions
var formatNames = []string{"jpeg", "png", "webp"}

func languageNames() []string {
	var names []string
	for _, opt := range domain.Languages() {
		names = append(names, string(opt.Code))
	}
	return names
}

// suggest returns a "did you mean" hint for the closest accepted value, or ""
func suggest(input string, options []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, options)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
}
