package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"symposium/internal/config"
	"symposium/internal/dining"
	"symposium/internal/logging"
	"symposium/internal/procsim"
	"symposium/internal/simlog"
)

var runCmd = &cobra.Command{
	Use:   "run [processes-file]",
	Short: "Run the process fan-out, then the dining philosophers",
	Long: `Run both scenarios back to back: first the process fan-out read from
the given file (default from config), then the dining philosophers. A bad
process file aborts the whole run before any worker starts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cfg.Procs.File
	if len(args) > 0 {
		path = args[0]
	}

	// The whole load happens before any worker exists: a bad task file
	// aborts the run with nothing spawned.
	procs, err := procsim.LoadFile(path)
	if err != nil {
		return err
	}

	diag := newDiagnostics(cfg)

	banner("Process simulation")
	runProcs(cfg, diag, procs)

	banner("Dining philosophers")
	runDining(cfg, diag)

	return nil
}

// newDiagnostics builds the stderr diagnostic logger from config.
func newDiagnostics(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.Nop()
	}
	return logging.New(os.Stderr, cfg.Logging.Level)
}

// runProcs executes the fan-out scenario on a fresh event log, so its
// timestamps start at zero.
func runProcs(cfg *config.Config, diag *logging.Logger, procs []procsim.Process) {
	exec := procsim.NewExecutor(newEventLog(os.Stdout),
		procsim.WithUnit(cfg.Procs.BurstUnit()),
		procsim.WithDiagnostics(diag.WithScenario("procs")),
	)
	exec.Run(procs)
}

// runDining executes the dining scenario on a fresh event log.
func runDining(cfg *config.Config, diag *logging.Logger) {
	sim := dining.New(newEventLog(os.Stdout),
		dining.WithPhilosophers(cfg.Dining.Philosophers),
		dining.WithIterations(cfg.Dining.Iterations),
		dining.WithThinkRange(cfg.Dining.ThinkMin(), cfg.Dining.ThinkMax()),
		dining.WithEat(cfg.Dining.Eat()),
		dining.WithSeed(cfg.Dining.Seed),
		dining.WithDiagnostics(diag.WithScenario("dining")),
	)
	sim.Run()
}

func newEventLog(w io.Writer) *simlog.Log {
	return simlog.New(w)
}
