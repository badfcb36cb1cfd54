package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"symposium/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "symposium",
	Short: "Classic concurrency scenarios on one shared, timestamped log",
	Long: `Symposium runs two classroom concurrency scenarios: a fan-out of
independent timed processes, and the dining philosophers with ordered fork
acquisition to avoid deadlock. Both report through a timestamped log that
keeps concurrent output attributable, line by line.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/symposium/config.yaml)")
	defaults := config.Default()
	rootCmd.PersistentFlags().Int("philosophers", defaults.Dining.Philosophers, "philosophers (and forks) at the table")
	rootCmd.PersistentFlags().Int("iterations", defaults.Dining.Iterations, "think/eat cycles per philosopher")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for the think-time random sources (0 = time-based)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("dining.philosophers", rootCmd.PersistentFlags().Lookup("philosophers"))
	_ = viper.BindPFlag("dining.iterations", rootCmd.PersistentFlags().Lookup("iterations"))
	_ = viper.BindPFlag("dining.seed", rootCmd.PersistentFlags().Lookup("seed"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/symposium")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SYMPOSIUM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SYMPOSIUM_DINING_ITERATIONS for dining.iterations
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
