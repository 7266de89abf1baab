package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mmcdole/squeeze/internal/config"
	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/i18n"
	"github.com/mmcdole/squeeze/internal/log"
	"github.com/mmcdole/squeeze/internal/service"
	"github.com/mmcdole/squeeze/internal/store"
	"github.com/mmcdole/squeeze/internal/tui"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	version = "dev"
)

// errNotTerminal is returned when the TUI is started without a terminal
var errNotTerminal = errors.New("squeeze needs an interactive terminal; use `squeeze show` in scripts")

var rootCmd = &cobra.Command{
	Use:   "squeeze",
	Short: "Image compression settings in your terminal",
	Long: `squeeze lets you pick the output quality and format used to compress images.

Drag the quality slider with the mouse or use the arrow keys, and click a
format button or press 1, 2 or 3. Settings are saved as you change them.

Example usage:
  squeeze                      # Open the settings panel
  squeeze --lang zh-hk         # Open it in Traditional Chinese
  squeeze --read-only          # Look without changing anything
  squeeze show --json          # Print the saved settings
  squeeze reset                # Forget saved settings`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	RunE: runTUI,
}

func setVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/squeeze/config.yaml)")
	rootCmd.PersistentFlags().Float64("quality", domain.DefaultSettings().Quality, "start with this quality, 0.1 to 1.0")
	rootCmd.PersistentFlags().String("format", "jpeg", "start with this output format: jpeg, png or webp")
	rootCmd.PersistentFlags().String("lang", "", "display language: en, zh or zh-hk (default: from $LANG)")
	rootCmd.Flags().Bool("read-only", false, "show the settings without allowing changes")
}

// bindFlags connects flags to config keys. Runs on every invocation so a
// viper.Reset between runs does not lose the bindings.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	_ = viper.BindPFlag("defaults.quality", flags.Lookup("quality"))
	_ = viper.BindPFlag("defaults.format", flags.Lookup("format"))
	_ = viper.BindPFlag("ui.language", flags.Lookup("lang"))
	if f := flags.Lookup("read-only"); f != nil {
		_ = viper.BindPFlag("ui.read_only", f)
	}
}

// initConfig loads configuration and sets up file logging
func initConfig(cmd *cobra.Command) error {
	bindFlags(cmd)

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err = log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"store", cfg.Store.Path,
		"language", cfg.UI.Language,
		"read_only", cfg.UI.ReadOnly,
	)
	return nil
}

// app holds the wired services shared by every command
type app struct {
	prefs  domain.PreferenceStore
	locale *i18n.Store
	svc    *service.SettingsService
}

func (a *app) Close() error {
	return a.prefs.Close()
}

// openApp opens the preference store and restores saved state.
// Explicit --quality and --format flags win over what was saved.
func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	initial, err := cfg.InitialSettings()
	if err != nil {
		return nil, err
	}

	prefs, err := store.NewPreferenceStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}

	locale, err := i18n.NewStore(domain.DefaultLanguage, logger)
	if err != nil {
		prefs.Close()
		return nil, err
	}

	svc := service.NewSettingsService(prefs, locale, initial, logger)

	opts := service.BootstrapOptions{Detected: i18n.DetectLanguage(os.Getenv)}
	if code, ok, _ := cfg.LanguageOverride(); ok {
		opts.Language = code
	}
	if err := svc.Bootstrap(ctx, opts); err != nil {
		prefs.Close()
		return nil, err
	}

	current := svc.Current()
	if cmd.Flags().Changed("quality") {
		current = domain.SetQuality(current, initial.Quality)
	}
	if cmd.Flags().Changed("format") {
		current = domain.SetFormat(current, initial.Format)
	}
	svc.Apply(current)

	return &app{prefs: prefs, locale: locale, svc: svc}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	a, err := openApp(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("starting squeeze", "version", version, "language", a.locale.CurrentLanguage())

	model := tui.NewModel(a.svc, a.locale, tui.Options{ReadOnly: cfg.UI.ReadOnly})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
