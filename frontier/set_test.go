package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hexpath/frontier"
	"github.com/katalvlaran/hexpath/searchgraph"
)

// SetSuite exercises the candidate arena, visited map and open heap.
type SetSuite struct {
	suite.Suite
	s *frontier.Set
}

func (s *SetSuite) SetupTest() {
	s.s = frontier.New(8)
}

// add pushes a root candidate for node with the given priority.
func (s *SetSuite) add(node int, priority float64) frontier.Handle {
	return s.s.Add(frontier.Candidate{
		Node:     searchgraph.NodeID(node),
		Parent:   frontier.None,
		Priority: priority,
	})
}

// drain pops everything and returns the node order.
func (s *SetSuite) drain() []searchgraph.NodeID {
	var out []searchgraph.NodeID
	for {
		h, ok := s.s.Pop()
		if !ok {
			return out
		}
		out = append(out, s.s.Get(h).Node)
	}
}

// TestPopOrder verifies ascending priority order.
func (s *SetSuite) TestPopOrder() {
	s.add(1, 5)
	s.add(2, 1)
	s.add(3, 3)
	s.add(4, 0.5)
	s.Require().Equal(4, s.s.Len())
	s.Require().Equal([]searchgraph.NodeID{4, 2, 3, 1}, s.drain())
	s.Require().Equal(0, s.s.Len())
	s.Require().Equal(4, s.s.VisitedLen(), "popping never removes candidates")
}

// TestTieBreakFIFO verifies equal priorities leave in insertion order.
func (s *SetSuite) TestTieBreakFIFO() {
	for n := 10; n < 20; n++ {
		s.add(n, 2)
	}
	s.add(5, 1)
	want := []searchgraph.NodeID{5, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	s.Require().Equal(want, s.drain())
}

// TestUpdate_DecreaseKey moves an open candidate to the front.
func (s *SetSuite) TestUpdate_DecreaseKey() {
	root := s.add(1, 0)
	s.add(2, 4)
	h3 := s.add(3, 9)

	reopened := s.s.Update(h3, root, 1, 1)
	s.Require().False(reopened)
	c := s.s.Get(h3)
	s.Require().Equal(root, c.Parent)
	s.Require().Equal(1.0, c.Given)
	s.Require().Equal([]searchgraph.NodeID{1, 3, 2}, s.drain())
}

// TestUpdate_TieAfterRelax checks that a relaxed candidate queues behind
// earlier candidates of the same priority.
func (s *SetSuite) TestUpdate_TieAfterRelax() {
	h1 := s.add(1, 7)
	s.add(2, 3)
	s.s.Update(h1, frontier.None, 3, 3)
	s.Require().Equal([]searchgraph.NodeID{2, 1}, s.drain())
}

// TestUpdate_Reopen reinserts an already expanded candidate.
func (s *SetSuite) TestUpdate_Reopen() {
	h := s.add(1, 2)
	got, ok := s.s.Pop()
	s.Require().True(ok)
	s.Require().Equal(h, got)
	s.Require().False(s.s.IsOpen(h))

	s.Require().True(s.s.Update(h, frontier.None, 1, 1))
	s.Require().True(s.s.IsOpen(h))
	s.Require().Equal(1, s.s.Len())
}

// TestLookupAndDuplicate covers the visited map and the duplicate guard.
func (s *SetSuite) TestLookupAndDuplicate() {
	h := s.add(42, 1)
	got, ok := s.s.Lookup(42)
	s.Require().True(ok)
	s.Require().Equal(h, got)
	_, ok = s.s.Lookup(7)
	s.Require().False(ok)

	s.Require().Panics(func() { s.add(42, 0) })
	s.Require().Panics(func() { s.s.Get(99) })
	s.Require().Panics(func() { s.s.Get(frontier.None) })
}

// TestChain walks parent links back to the root.
func (s *SetSuite) TestChain() {
	a := s.add(1, 0)
	b := s.s.Add(frontier.Candidate{Node: 2, Parent: a})
	c := s.s.Add(frontier.Candidate{Node: 3, Parent: b})

	var nodes []searchgraph.NodeID
	s.s.Chain(c, func(_ frontier.Handle, cd frontier.Candidate) bool {
		nodes = append(nodes, cd.Node)
		return true
	})
	s.Require().Equal([]searchgraph.NodeID{3, 2, 1}, nodes)

	nodes = nodes[:0]
	s.s.Chain(c, func(_ frontier.Handle, cd frontier.Candidate) bool {
		nodes = append(nodes, cd.Node)
		return false
	})
	s.Require().Len(nodes, 1)
}

// TestEachAndReset covers enumeration and wholesale clearing.
func (s *SetSuite) TestEachAndReset() {
	s.add(1, 3)
	s.add(2, 1)
	s.add(3, 2)
	s.s.Pop()

	open := map[searchgraph.NodeID]float64{}
	s.s.EachOpen(func(_ frontier.Handle, c frontier.Candidate) bool {
		open[c.Node] = c.Priority
		return true
	})
	s.Require().Equal(map[searchgraph.NodeID]float64{1: 3, 3: 2}, open)

	first, ok := s.s.Peek()
	s.Require().True(ok)
	s.Require().Equal(searchgraph.NodeID(3), s.s.Get(first).Node)

	var visited []searchgraph.NodeID
	s.s.EachVisited(func(_ frontier.Handle, c frontier.Candidate) bool {
		visited = append(visited, c.Node)
		return true
	})
	s.Require().Equal([]searchgraph.NodeID{1, 2, 3}, visited)

	s.s.Reset()
	s.Require().Equal(0, s.s.Len())
	s.Require().Equal(0, s.s.VisitedLen())
	_, ok = s.s.Lookup(1)
	s.Require().False(ok)
	_, ok = s.s.Peek()
	s.Require().False(ok)

	// Nodes may be added again after a reset.
	s.add(1, 0)
	s.Require().Equal(1, s.s.Len())
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}

// TestHeap_RandomizedAgainstSort cross-checks the heap against a sort by
// (priority, stamp) under random priorities and decrease-key operations.
func TestHeap_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := frontier.New(0)
	type entry struct {
		node  searchgraph.NodeID
		prio  float64
		stamp int
	}
	var entries []entry
	handles := map[searchgraph.NodeID]frontier.Handle{}
	stamp := 0
	for i := 0; i < 300; i++ {
		stamp++
		p := float64(rng.Intn(20))
		node := searchgraph.NodeID(i)
		handles[node] = s.Add(frontier.Candidate{Node: node, Parent: frontier.None, Priority: p})
		entries = append(entries, entry{node, p, stamp})
	}
	for i := 0; i < 100; i++ {
		stamp++
		idx := rng.Intn(len(entries))
		e := &entries[idx]
		e.prio = e.prio - float64(rng.Intn(5)) - 0.5
		e.stamp = stamp
		s.Update(handles[e.node], frontier.None, 0, e.prio)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].prio != entries[j].prio {
			return entries[i].prio < entries[j].prio
		}
		return entries[i].stamp < entries[j].stamp
	})
	for _, e := range entries {
		h, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, e.node, s.Get(h).Node)
	}
	_, ok := s.Pop()
	require.False(t, ok)
}
