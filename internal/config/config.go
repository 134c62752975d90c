// Package config loads hexpath run settings from defaults, an optional
// config file (YAML, JSON or TOML), HEXPATH_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hexpath/cost"
)

// EnvPrefix prefixes every environment override, e.g. HEXPATH_SEARCH_BUDGET.
const EnvPrefix = "HEXPATH"

var (
	// ErrRead indicates the config file could not be read or decoded.
	ErrRead = errors.New("config: cannot read configuration")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Point addresses a grid cell. Negative values count back from the last
// row/column, so -1 is the last one.
type Point struct {
	Row int `mapstructure:"row"`
	Col int `mapstructure:"col"`
}

// Resolve maps negative coordinates onto a rows×cols grid.
func (p Point) Resolve(rows, cols int) (row, col int) {
	row, col = p.Row, p.Col
	if row < 0 {
		row += rows
	}
	if col < 0 {
		col += cols
	}

	return row, col
}

// SearchConfig selects the cost model and the slice budget.
type SearchConfig struct {
	Mode      string  `mapstructure:"mode" validate:"oneof=uniform greedy astar weighted"`
	Heuristic string  `mapstructure:"heuristic" validate:"oneof=euclidean manhattan hex hexsteps"`
	Weight    float64 `mapstructure:"weight" validate:"gte=0"`
	MinStep   float64 `mapstructure:"min_step" validate:"gte=0"`
	Budget    int     `mapstructure:"budget" validate:"gte=1"`
	Start     Point   `mapstructure:"start"`
	Goal      Point   `mapstructure:"goal"`
}

// BatchConfig drives the batch command.
type BatchConfig struct {
	Searches int   `mapstructure:"searches" validate:"gte=1"`
	Workers  int   `mapstructure:"workers" validate:"gte=1,lte=256"`
	Seed     int64 `mapstructure:"seed"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Config is the complete hexpath configuration.
type Config struct {
	Grid        string       `mapstructure:"grid" validate:"required"`
	Spacing     float64      `mapstructure:"spacing" validate:"gte=0"` // 0 keeps the map file's spacing
	Search      SearchConfig `mapstructure:"search"`
	Batch       BatchConfig  `mapstructure:"batch"`
	Log         LogConfig    `mapstructure:"log"`
	MetricsAddr string       `mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"grid":         "grid",
	"spacing":      "spacing",
	"mode":         "search.mode",
	"heuristic":    "search.heuristic",
	"weight":       "search.weight",
	"budget":       "search.budget",
	"start-row":    "search.start.row",
	"start-col":    "search.start.col",
	"goal-row":     "search.goal.row",
	"goal-col":     "search.goal.col",
	"searches":     "batch.searches",
	"workers":      "batch.workers",
	"seed":         "batch.seed",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-addr": "metrics_addr",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid", "")
	v.SetDefault("spacing", 0.0)
	v.SetDefault("search.mode", string(cost.ModeAStar))
	v.SetDefault("search.heuristic", cost.Euclidean.String())
	v.SetDefault("search.weight", 1.0)
	v.SetDefault("search.min_step", 1.0)
	v.SetDefault("search.budget", 64)
	v.SetDefault("search.start.row", 0)
	v.SetDefault("search.start.col", 0)
	v.SetDefault("search.goal.row", -1)
	v.SetDefault("search.goal.col", -1)
	v.SetDefault("batch.searches", 100)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.seed", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics_addr", "")
}

// Load builds a Config. path may be empty (no file); flags may be nil.
// Only flags the user actually set override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("%w: flag %s: %v", ErrRead, name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct constraints and wraps failures in ErrInvalid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// CostModel builds the cost model named by the search section.
func (c *Config) CostModel() (cost.Model, error) {
	mode, err := cost.ParseMode(c.Search.Mode)
	if err != nil {
		return cost.Model{}, err
	}
	h, err := cost.ParseHeuristic(c.Search.Heuristic)
	if err != nil {
		return cost.Model{}, err
	}

	return cost.New(
		cost.WithWeight(c.Search.Weight),
		cost.WithMode(mode),
		cost.WithHeuristic(h),
		cost.WithMinStepCost(c.Search.MinStep),
	), nil
}
