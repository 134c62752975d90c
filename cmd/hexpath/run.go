package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/internal/metrics"
	"github.com/katalvlaran/hexpath/pathsearch"
)

func newRunCmd(a *app) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search one path and print it",
		Long: `run loads the tile map, enters a search from the start to the goal cell and
steps it in slices of --budget expansions until it completes.

Negative coordinates count back from the last row/column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), show)
		},
	}
	f := cmd.Flags()
	f.Int("start-row", 0, "start row")
	f.Int("start-col", 0, "start column")
	f.Int("goal-row", -1, "goal row")
	f.Int("goal-col", -1, "goal column")
	f.BoolVar(&show, "show", false, "draw the map with the search state")

	return cmd
}

func (a *app) run(ctx context.Context, out io.Writer, show bool) error {
	tiles, err := a.loadGrid()
	if err != nil {
		return err
	}
	model, err := a.cfg.CostModel()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	if a.cfg.MetricsAddr != "" {
		stop := serveMetrics(a.cfg.MetricsAddr, reg, a.log)
		defer stop()
	}

	mode := a.cfg.Search.Mode
	log := a.log.With("session", uuid.NewString(), "mode", mode)
	opts := append(rec.Options(mode),
		pathsearch.WithCostModel(model),
		pathsearch.WithLogger(log))
	c := pathsearch.New(opts...)
	defer c.Shutdown()
	c.Build(tiles)

	sr, sc := a.cfg.Search.Start.Resolve(tiles.Rows(), tiles.Cols())
	gr, gc := a.cfg.Search.Goal.Resolve(tiles.Rows(), tiles.Cols())
	if err := c.Enter(sr, sc, gr, gc); err != nil {
		return err
	}

	began := time.Now()
	slices, err := drive(ctx, c, a.cfg.Search.Budget)
	if err != nil {
		return err
	}
	rec.ObserveSearch(mode, time.Since(began))
	log.Info("search finished",
		"found", c.Found(),
		"expanded", c.Expanded(),
		"slices", slices,
		"cost", c.Cost())

	if show {
		render(out, tiles, c, sr, sc, gr, gc)
	}
	if !c.Found() {
		fmt.Fprintf(out, "no path from (%d,%d) to (%d,%d); %d cells expanded\n", sr, sc, gr, gc, c.Expanded())
		return nil
	}
	path := c.Path()
	fmt.Fprintf(out, "path cost=%g cells=%d expanded=%d slices=%d\n",
		c.Cost(), len(path), c.Expanded(), slices)
	fmt.Fprintln(out, joinCells(path))

	return nil
}

// drive is the host loop: one Step per slice until the session is done.
// Cancellation is checked between slices; a cancelled session is exited.
func drive(ctx context.Context, c *pathsearch.Controller, budget int) (slices int, err error) {
	for !c.IsDone() {
		if err := ctx.Err(); err != nil {
			c.Exit()
			return slices, err
		}
		if err := c.Step(budget); err != nil {
			return slices, err
		}
		slices++
	}

	return slices, nil
}

func joinCells(cells []hexgrid.Cell) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell.String()
	}

	return strings.Join(parts, " ")
}
