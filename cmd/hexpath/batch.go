package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexpath/cost"
	"github.com/katalvlaran/hexpath/internal/metrics"
	"github.com/katalvlaran/hexpath/pathsearch"
	"github.com/katalvlaran/hexpath/searchgraph"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run many random searches concurrently over one shared graph",
		Long: `batch builds the search graph once, draws --searches random start/goal
pairs from its nodes (seeded by --seed) and runs them on --workers goroutines,
each search with its own controller.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.batch(cmd.Context(), cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Int("searches", 100, "number of searches")
	f.Int("workers", 4, "concurrent searches")
	f.Int64("seed", 1, "random seed for start/goal pairs")

	return cmd
}

// outcome is the result of one batch search.
type outcome struct {
	found    bool
	expanded int
	slices   int
	cost     float64
}

func (a *app) batch(ctx context.Context, out io.Writer) error {
	tiles, err := a.loadGrid()
	if err != nil {
		return err
	}
	model, err := a.cfg.CostModel()
	if err != nil {
		return err
	}
	g := searchgraph.Build(tiles)
	if g.Len() == 0 {
		return fmt.Errorf("%s has no traversable cells", a.cfg.Grid)
	}

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	if a.cfg.MetricsAddr != "" {
		stop := serveMetrics(a.cfg.MetricsAddr, reg, a.log)
		defer stop()
	}

	pairs := randomPairs(g, a.cfg.Batch.Searches, a.cfg.Batch.Seed)
	results := make([]outcome, len(pairs))
	mode := a.cfg.Search.Mode
	began := time.Now()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.Batch.Workers)
	for i, p := range pairs {
		eg.Go(func() error {
			res, err := a.searchOne(ctx, g, model, rec, p)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var found, expanded, slices int
	var total float64
	for _, r := range results {
		expanded += r.expanded
		slices += r.slices
		if r.found {
			found++
			total += r.cost
		}
	}
	a.log.Info("batch finished",
		"mode", mode,
		"searches", len(pairs),
		"elapsed", time.Since(began))
	fmt.Fprintf(out, "searches=%d found=%d unreachable=%d expanded=%d slices=%d\n",
		len(pairs), found, len(pairs)-found, expanded, slices)
	if found > 0 {
		fmt.Fprintf(out, "mean cost=%.2f mean expanded=%.1f\n",
			total/float64(found), float64(expanded)/float64(len(pairs)))
	}

	return nil
}

// pair is one start/goal assignment.
type pair struct {
	start, goal searchgraph.NodeID
}

// randomPairs draws n start/goal pairs from g's nodes; the same seed always
// yields the same pairs.
func randomPairs(g *searchgraph.Graph, n int, seed int64) []pair {
	nodes := g.Nodes()
	rng := rand.New(rand.NewSource(seed))
	out := make([]pair, n)
	for i := range out {
		out[i] = pair{
			start: nodes[rng.Intn(len(nodes))],
			goal:  nodes[rng.Intn(len(nodes))],
		}
	}

	return out
}

// searchOne runs a single search to completion on its own controller.
func (a *app) searchOne(ctx context.Context, g *searchgraph.Graph, model cost.Model, rec *metrics.Recorder, p pair) (outcome, error) {
	mode := a.cfg.Search.Mode
	log := a.log.With("session", uuid.NewString(), "mode", mode)
	opts := append(rec.Options(mode),
		pathsearch.WithCostModel(model),
		pathsearch.WithLogger(log))
	c := pathsearch.New(opts...)
	c.UseGraph(g)
	defer c.Shutdown()

	s, t := g.Cell(p.start), g.Cell(p.goal)
	if err := c.Enter(s.Row, s.Col, t.Row, t.Col); err != nil {
		return outcome{}, err
	}
	began := time.Now()
	slices, err := drive(ctx, c, a.cfg.Search.Budget)
	if err != nil {
		return outcome{}, err
	}
	rec.ObserveSearch(mode, time.Since(began))
	log.Debug("search finished", "start", s.String(), "goal", t.String(), "found", c.Found(), "expanded", c.Expanded())

	return outcome{found: c.Found(), expanded: c.Expanded(), slices: slices, cost: c.Cost()}, nil
}
