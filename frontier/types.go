// Package frontier holds the per-search candidate state of a path search:
// an arena of Candidates, the visited map from graph node to Candidate, and
// the open set ordered by priority.
//
// Ordering:
//
// The open set is a binary min-heap over candidate handles augmented with a
// handle → heap-position index, so decrease-key is O(log n) via heap.Fix
// instead of a linear scan. Candidates with equal priority leave the heap in
// FIFO order: each push or re-prioritisation stamps the candidate with an
// increasing sequence number and the lower stamp wins ties. Identical inputs
// therefore always produce identical expansion orders.
//
// Lifetime:
//
// Candidates are never removed one by one. Reset clears the arena, the
// visited map and the heap wholesale at the end of a search session; handles
// from before a Reset must not be used afterwards.
//
// Complexity:
//
//   - Add, Pop, Update: O(log n).
//   - Lookup, Get:      O(1).
//   - Reset:            O(1) amortized (storage is reused).
package frontier

import (
	"errors"

	"github.com/katalvlaran/hexpath/searchgraph"
)

// Sentinel errors, used as panic messages for invariant violations.
var (
	// ErrDuplicateNode indicates Add was called for a node that already has a Candidate.
	ErrDuplicateNode = errors.New("frontier: node already visited")

	// ErrBadHandle indicates a handle outside the candidate arena.
	ErrBadHandle = errors.New("frontier: unknown candidate handle")
)

// Handle is a stable index into the candidate arena of a Set.
type Handle int32

// None marks the absence of a candidate (e.g. the start's parent).
const None Handle = -1

// Candidate is one graph node's state within a single search.
type Candidate struct {
	Node      searchgraph.NodeID // graph node this candidate stands for
	Parent    Handle             // predecessor on the best known path; None for the start
	Given     float64            // accumulated cost from the start
	Heuristic float64            // estimated remaining cost to the goal
	Priority  float64            // ordering key in the open set
}

// Set is the combined candidate arena, visited map and open heap of one
// search session. It is not safe for concurrent use.
type Set struct {
	arena   []Candidate
	pos     []int    // handle → heap position; -1 when not open
	seq     []uint64 // handle → FIFO tie-break stamp
	visited map[searchgraph.NodeID]Handle
	open    openHeap
	stamp   uint64
}
