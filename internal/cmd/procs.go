package cmd

import (
	"github.com/spf13/cobra"

	"symposium/internal/config"
	"symposium/internal/procsim"
)

var procsCmd = &cobra.Command{
	Use:   "procs [processes-file]",
	Short: "Run only the process fan-out scenario",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProcsCmd,
}

func init() {
	rootCmd.AddCommand(procsCmd)
}

func runProcsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.Procs.File
	if len(args) > 0 {
		path = args[0]
	}

	procs, err := procsim.LoadFile(path)
	if err != nil {
		return err
	}

	banner("Process simulation")
	runProcs(cfg, newDiagnostics(cfg), procs)
	return nil
}
