package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/internal/config"
	"github.com/katalvlaran/hexpath/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

// rootFlags are the persistent flags that are not config keys.
type rootFlags struct {
	configPath string
	verbose    int
	quiet      bool
}

func newRootCmd() *cobra.Command {
	var (
		rf rootFlags
		a  app
	)
	root := &cobra.Command{
		Use:   "hexpath",
		Short: "Time-sliced path search over hex tile maps",
		Long: `hexpath builds a search graph from a hex tile map and finds the cheapest
path between two cells, stepping the search in bounded slices.

Settings come from --config, HEXPATH_* environment variables and flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rf.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd, cfg, rf)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "config file (yaml, json or toml)")
	pf.CountVarP(&rf.verbose, "verbose", "v", "raise log verbosity (-v info, -vv debug)")
	pf.BoolVarP(&rf.quiet, "quiet", "q", false, "silence all logging")
	pf.String("grid", "", "tile map file (.txt or .yaml)")
	pf.Float64("spacing", 0, "centre-to-centre cell spacing (0 keeps the map's)")
	pf.String("mode", "astar", "search mode: uniform, greedy, astar or weighted")
	pf.String("heuristic", "euclidean", "heuristic: euclidean, manhattan or hex")
	pf.Float64("weight", 1, "heuristic weight for the weighted mode")
	pf.Int("budget", 64, "expansions per slice")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("metrics-addr", "", "serve Prometheus metrics on host:port while running")

	root.AddCommand(
		newRunCmd(&a),
		newGraphCmd(&a),
		newBatchCmd(&a),
	)

	return root
}

// newLogger honours -v/-q when given, and the configured level otherwise.
func newLogger(cmd *cobra.Command, cfg *config.Config, rf rootFlags) *slog.Logger {
	level := logging.LevelFromString(cfg.Log.Level)
	if rf.quiet || cmd.Flags().Changed("verbose") {
		level = logging.LevelFromVerbosity(rf.verbose, rf.quiet)
	}

	return logging.New(cmd.ErrOrStderr(), level, logging.Format(cfg.Log.Format))
}

// loadGrid reads the configured tile map.
func (a *app) loadGrid() (*hexgrid.TileMap, error) {
	var opts []hexgrid.Option
	if a.cfg.Spacing > 0 {
		opts = append(opts, hexgrid.WithSpacing(a.cfg.Spacing))
	}
	tiles, err := hexgrid.LoadFile(a.cfg.Grid, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.cfg.Grid, err)
	}
	a.log.Debug("grid loaded", "path", a.cfg.Grid, "rows", tiles.Rows(), "cols", tiles.Cols())

	return tiles, nil
}
