package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete symposium configuration.
type Config struct {
	Dining  DiningConfig  `mapstructure:"dining"`
	Procs   ProcsConfig   `mapstructure:"procs"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DiningConfig controls the dining-philosophers scenario.
type DiningConfig struct {
	// Philosophers is the number of agents around the table; the table has
	// one fork per philosopher. The ring needs at least 2.
	Philosophers int `mapstructure:"philosophers"`
	// Iterations is how many think/eat cycles each philosopher runs.
	Iterations int `mapstructure:"iterations"`
	// ThinkMinMs and ThinkMaxMs bound the random thinking interval.
	ThinkMinMs int `mapstructure:"think_min_ms"`
	ThinkMaxMs int `mapstructure:"think_max_ms"`
	// EatMs is the fixed duration a philosopher holds both forks.
	EatMs int `mapstructure:"eat_ms"`
	// Seed seeds the per-philosopher random sources. 0 derives a seed from
	// the current time.
	Seed int64 `mapstructure:"seed"`
}

// ThinkMin returns the lower thinking bound as a time.Duration.
func (c *DiningConfig) ThinkMin() time.Duration {
	return time.Duration(c.ThinkMinMs) * time.Millisecond
}

// ThinkMax returns the upper thinking bound as a time.Duration.
func (c *DiningConfig) ThinkMax() time.Duration {
	return time.Duration(c.ThinkMaxMs) * time.Millisecond
}

// Eat returns the eating duration as a time.Duration.
func (c *DiningConfig) Eat() time.Duration {
	return time.Duration(c.EatMs) * time.Millisecond
}

// ProcsConfig controls the process fan-out scenario.
type ProcsConfig struct {
	// File is the default process list read by the run and procs commands.
	File string `mapstructure:"file"`
	// BurstUnitMs is the real duration of one burst unit.
	BurstUnitMs int `mapstructure:"burst_unit_ms"`
}

// BurstUnit returns the burst unit as a time.Duration.
func (c *ProcsConfig) BurstUnit() time.Duration {
	return time.Duration(c.BurstUnitMs) * time.Millisecond
}

// LoggingConfig controls diagnostic output on stderr.
type LoggingConfig struct {
	// Enabled turns diagnostic logging on. The simulation event stream on
	// stdout is unaffected either way.
	Enabled bool `mapstructure:"enabled"`
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no file, flag, or environment
// override is present.
func Default() *Config {
	return &Config{
		Dining: DiningConfig{
			Philosophers: 5,
			Iterations:   3,
			ThinkMinMs:   1000,
			ThinkMaxMs:   3000,
			EatMs:        2000,
			Seed:         0,
		},
		Procs: ProcsConfig{
			File:        "processes.txt",
			BurstUnitMs: 1000,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("dining.philosophers", defaults.Dining.Philosophers)
	viper.SetDefault("dining.iterations", defaults.Dining.Iterations)
	viper.SetDefault("dining.think_min_ms", defaults.Dining.ThinkMinMs)
	viper.SetDefault("dining.think_max_ms", defaults.Dining.ThinkMaxMs)
	viper.SetDefault("dining.eat_ms", defaults.Dining.EatMs)
	viper.SetDefault("dining.seed", defaults.Dining.Seed)

	viper.SetDefault("procs.file", defaults.Procs.File)
	viper.SetDefault("procs.burst_unit_ms", defaults.Procs.BurstUnitMs)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and
// validates it. Validation happens eagerly, before either scenario spawns a
// worker: a bad value fails the whole run.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}
