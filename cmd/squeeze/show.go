package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/tui/components"
	"github.com/mmcdole/squeeze/internal/tui/styles"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Long: `Print the settings the panel would open with: saved preferences, or the
configured defaults when nothing has been saved.

Examples:
  squeeze show                 # Human readable, in the display language
  squeeze show --json          # Output as JSON`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("json", false, "output as JSON")
}

// showOutput is the JSON shape printed by `squeeze show --json`
type showOutput struct {
	Quality  float64             `json:"quality"`
	Percent  int                 `json:"percent"`
	Tier     string              `json:"tier"`
	Format   domain.Format       `json:"format"`
	Language domain.LanguageCode `json:"language"`
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	s := a.svc.Current()
	tier := domain.TierOf(s.Quality)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(showOutput{
			Quality:  s.Quality,
			Percent:  domain.DisplayPercent(s.Quality),
			Tier:     tier.String(),
			Format:   s.Format,
			Language: a.locale.CurrentLanguage(),
		})
	}

	t := a.locale.Translate
	label := styles.LabelStyle.Width(16)
	badge := lipgloss.NewStyle().Bold(true).Foreground(components.TierGradient(tier).From)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, styles.TitleStyle.Render(t(domain.MsgSettingsTitle)))
	fmt.Fprintln(w, label.Render(t(domain.MsgQualityLabel))+
		badge.Render(fmt.Sprintf("%d%% (%s)", domain.DisplayPercent(s.Quality), t(domain.LabelFor(tier)))))
	fmt.Fprintln(w, label.Render(t(domain.MsgOutputFormat))+s.Format.Label())
	fmt.Fprintln(w, label.Render("")+styles.DimStyle.Render(t(s.Format.DescriptionKey())))
	fmt.Fprintln(w, label.Render(t(domain.MsgLanguage))+a.locale.CurrentLanguage().Option().Label)
	return nil
}
