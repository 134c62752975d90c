package pathsearch_test

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/cost"
	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/pathsearch"
	"github.com/katalvlaran/hexpath/searchgraph"
)

func TestHooks_FireAndCompose(t *testing.T) {
	var (
		enq, exp, exp2, slices int
		dones                  []bool
		doneExpanded           int
	)
	c := pathsearch.New(
		pathsearch.WithOnEnqueue(func(hexgrid.Cell, float64) { enq++ }),
		pathsearch.WithOnExpand(func(hexgrid.Cell, float64) { exp++ }),
		pathsearch.WithOnExpand(func(hexgrid.Cell, float64) { exp2++ }),
		pathsearch.WithOnSlice(func(n int) { slices += n }),
		pathsearch.WithOnDone(func(found bool, n int) {
			dones = append(dones, found)
			doneExpanded = n
		}),
		pathsearch.WithOnExpand(nil),
	)
	c.Build(mustGrid(t, uniform(5, 5)))
	require.NoError(t, c.Enter(0, 0, 4, 4))
	for !c.IsDone() {
		require.NoError(t, c.Step(2))
	}
	require.NoError(t, c.Step(2))

	visited := 0
	c.Visited(func(hexgrid.Cell, float64) bool { visited++; return true })
	assert.Equal(t, visited, enq, "every reached cell is enqueued once")
	assert.Equal(t, c.Expanded(), exp)
	assert.Equal(t, exp, exp2, "both expand hooks run")
	assert.Equal(t, c.Expanded(), slices)
	assert.Equal(t, []bool{true}, dones)
	assert.Equal(t, c.Expanded(), doneExpanded)
}

func TestHooks_Relax(t *testing.T) {
	// Greedy search reaches cells through expensive detours first and
	// repairs them later, so relaxations show up on weighted grids.
	total := 0
	for seed := int64(1); seed <= 20; seed++ {
		w := randomWeights(seed, 12, 12)
		cells := passable(w)
		s, g := cells[0], cells[len(cells)-1]

		c := pathsearch.New(
			pathsearch.WithCostModel(cost.Greedy()),
			pathsearch.WithOnRelax(func(_ hexgrid.Cell, o, n float64) {
				total++
				require.Less(t, n, o)
			}),
		)
		c.Build(mustGrid(t, w))
		run(t, c, s.Row, s.Col, g.Row, g.Col)
		if c.Found() {
			requireChain(t, c.Path(), s.Row, s.Col, g.Row, g.Col, c.Cost())
		}
	}
	assert.Positive(t, total)
}

func TestIntrospection(t *testing.T) {
	c := pathsearch.New()
	c.Build(mustGrid(t, uniform(3, 3)))
	require.NoError(t, c.Enter(0, 0, 2, 2))
	require.NoError(t, c.Step(1))

	open := map[string]float64{}
	c.Open(func(cell hexgrid.Cell, p float64) bool {
		open[cell.String()] = p
		return true
	})
	assert.Len(t, open, 2)
	assert.Contains(t, open, "(0,1)")
	assert.Contains(t, open, "(1,0)")

	var visited []string
	c.Visited(func(cell hexgrid.Cell, _ float64) bool {
		visited = append(visited, cell.String())
		return true
	})
	assert.Equal(t, []string{"(0,0)", "(0,1)", "(1,0)"}, visited)

	stopped := 0
	c.Visited(func(hexgrid.Cell, float64) bool { stopped++; return false })
	assert.Equal(t, 1, stopped)

	assert.Len(t, c.Neighbors(1, 1), 6)
	assert.Len(t, c.Neighbors(0, 0), 2)
	assert.Nil(t, c.Neighbors(5, 5))

	var chain []string
	c.BestChain(func(cell hexgrid.Cell, _ float64) bool {
		chain = append(chain, cell.String())
		return true
	})
	assert.Equal(t, []string{"(0,0)"}, chain)

	c.Exit()
	chain = chain[:0]
	c.BestChain(func(cell hexgrid.Cell, _ float64) bool {
		chain = append(chain, cell.String())
		return true
	})
	assert.Empty(t, chain)
}

func TestUseGraph_SharedAcrossControllers(t *testing.T) {
	w := randomWeights(3, 16, 16)
	g := searchgraph.Build(mustGrid(t, w))
	cells := passable(w)
	s, goal := cells[0], cells[len(cells)-1]

	const workers = 4
	results := make([][]hexgrid.Cell, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := pathsearch.New()
			c.UseGraph(g)
			if err := c.Enter(s.Row, s.Col, goal.Row, goal.Col); err != nil {
				return
			}
			for !c.IsDone() {
				_ = c.Step(4)
			}
			results[i] = c.Path()
		}(i)
	}
	wg.Wait()
	for i := 1; i < workers; i++ {
		assert.Equal(t, results[0], results[i])
	}

	// Building on a controller that borrowed g leaves g untouched.
	before := g.Len()
	c := pathsearch.New()
	c.UseGraph(g)
	c.Build(mustGrid(t, uniform(2, 2)))
	assert.Equal(t, 4, c.Graph().Len())
	assert.Equal(t, before, g.Len())
}

func TestWithLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := pathsearch.New(pathsearch.WithLogger(log), pathsearch.WithLogger(nil))
	c.Build(mustGrid(t, uniform(2, 3)))
	run(t, c, 0, 0, 1, 2)

	out := buf.String()
	assert.Contains(t, out, "graph built")
	assert.Contains(t, out, "search entered")
	assert.Contains(t, out, "search done")
	assert.Contains(t, out, "found=true")
	assert.False(t, math.IsNaN(c.Cost()))
}
