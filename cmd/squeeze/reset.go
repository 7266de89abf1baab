package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/squeeze/internal/domain"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved settings",
	Long: `Remove the saved quality, format and language. The next start uses the
configured defaults and the language detected from the environment.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.svc.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("resetting preferences: %w", err)
	}

	d := a.svc.Current()
	fmt.Fprintf(cmd.OutOrStdout(), "Preferences cleared; defaults are %d%% %s\n",
		domain.DisplayPercent(d.Quality), d.Format.Label())
	return nil
}
