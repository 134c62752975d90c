package frontier

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hexpath/searchgraph"
)

// New returns an empty Set with room for sizeHint candidates.
func New(sizeHint int) *Set {
	if sizeHint < 0 {
		sizeHint = 0
	}
	s := &Set{
		arena:   make([]Candidate, 0, sizeHint),
		pos:     make([]int, 0, sizeHint),
		seq:     make([]uint64, 0, sizeHint),
		visited: make(map[searchgraph.NodeID]Handle, sizeHint),
	}
	s.open = openHeap{s: s, items: make([]Handle, 0, sizeHint)}

	return s
}

// Add records c as the candidate of c.Node, marks the node visited and
// pushes it onto the open heap. Panics with ErrDuplicateNode if the node
// already has a candidate.
func (s *Set) Add(c Candidate) Handle {
	if _, dup := s.visited[c.Node]; dup {
		panic(fmt.Sprintf("%s: node=%d", ErrDuplicateNode, c.Node))
	}
	h := Handle(len(s.arena))
	s.arena = append(s.arena, c)
	s.pos = append(s.pos, -1)
	s.seq = append(s.seq, s.nextStamp())
	s.visited[c.Node] = h
	heap.Push(&s.open, h)

	return h
}

// Update relaxes candidate h onto a cheaper path: new parent, given cost and
// priority (the heuristic is unchanged). If h is still open it is moved
// within the heap (decrease-key); if it was already expanded it is reopened.
// Reports whether h was reopened.
func (s *Set) Update(h Handle, parent Handle, given, priority float64) bool {
	s.check(h)
	c := &s.arena[h]
	c.Parent = parent
	c.Given = given
	c.Priority = priority
	s.seq[h] = s.nextStamp()

	if p := s.pos[h]; p >= 0 {
		heap.Fix(&s.open, p)
		return false
	}
	heap.Push(&s.open, h)

	return true
}

// Pop removes and returns the open candidate with the lowest priority.
// Returns (None, false) when the open set is empty.
func (s *Set) Pop() (Handle, bool) {
	if s.open.Len() == 0 {
		return None, false
	}

	return heap.Pop(&s.open).(Handle), true
}

// Peek returns the next handle Pop would return without removing it.
func (s *Set) Peek() (Handle, bool) {
	if s.open.Len() == 0 {
		return None, false
	}

	return s.open.items[0], true
}

// Get returns a copy of candidate h. Panics with ErrBadHandle for unknown handles.
func (s *Set) Get(h Handle) Candidate {
	s.check(h)
	return s.arena[h]
}

// Lookup returns the candidate handle of node, if the node was reached.
func (s *Set) Lookup(node searchgraph.NodeID) (Handle, bool) {
	h, ok := s.visited[node]
	return h, ok
}

// IsOpen reports whether h is waiting in the open heap.
func (s *Set) IsOpen(h Handle) bool {
	s.check(h)
	return s.pos[h] >= 0
}

// Len returns the number of open candidates.
func (s *Set) Len() int { return s.open.Len() }

// VisitedLen returns the number of candidates created this session.
func (s *Set) VisitedLen() int { return len(s.arena) }

// EachOpen calls fn for every open candidate in heap order (the first call is
// the current minimum; the rest are not sorted). Stops when fn returns false.
func (s *Set) EachOpen(fn func(Handle, Candidate) bool) {
	for _, h := range s.open.items {
		if !fn(h, s.arena[h]) {
			return
		}
	}
}

// EachVisited calls fn for every candidate in creation order.
// Stops when fn returns false.
func (s *Set) EachVisited(fn func(Handle, Candidate) bool) {
	for i := range s.arena {
		if !fn(Handle(i), s.arena[i]) {
			return
		}
	}
}

// Chain calls fn for h and each of its ancestors, ending at the candidate
// whose parent is None. Stops when fn returns false.
func (s *Set) Chain(h Handle, fn func(Handle, Candidate) bool) {
	for steps := 0; h != None; steps++ {
		if steps > len(s.arena) {
			panic("frontier: parent chain contains a cycle")
		}
		c := s.Get(h)
		if !fn(h, c) {
			return
		}
		h = c.Parent
	}
}

// Reset discards every candidate, keeping allocated storage for reuse.
func (s *Set) Reset() {
	s.arena = s.arena[:0]
	s.pos = s.pos[:0]
	s.seq = s.seq[:0]
	s.open.items = s.open.items[:0]
	clear(s.visited)
	s.stamp = 0
}

func (s *Set) nextStamp() uint64 {
	s.stamp++
	return s.stamp
}

func (s *Set) check(h Handle) {
	if h < 0 || int(h) >= len(s.arena) {
		panic(fmt.Sprintf("%s: handle=%d len=%d", ErrBadHandle, h, len(s.arena)))
	}
}
