package cmd

import (
	"github.com/spf13/cobra"

	"symposium/internal/config"
)

var dineCmd = &cobra.Command{
	Use:   "dine",
	Short: "Run only the dining philosophers scenario",
	Args:  cobra.NoArgs,
	RunE:  runDine,
}

func init() {
	rootCmd.AddCommand(dineCmd)
}

func runDine(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	banner("Dining philosophers")
	runDining(cfg, newDiagnostics(cfg))
	return nil
}
