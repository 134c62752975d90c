// Package pathsearch implements a time-sliced, resumable best-first search
// over a hex-grid search graph.
//
// A Controller owns one search session at a time. The host builds (or
// shares) a graph once, enters a session with a start and a goal cell, and
// then calls Step with a budget as often as it likes until IsDone reports
// true. Budget is counted in expanded candidates, never in wall-clock time,
// so a host loop can spread one search across many frames:
//
//	c := pathsearch.New(pathsearch.WithCostModel(cost.AStar()))
//	c.Build(tiles)
//	if err := c.Enter(0, 0, 7, 9); err != nil {
//	    return err
//	}
//	for !c.IsDone() {
//	    _ = c.Step(32)
//	    // ... other per-frame work ...
//	}
//	path := c.Path() // start → goal
//
// Lifecycle:
//
//	Unentered --Enter--> Searching --Step--> Done
//	    ^                    |                |
//	    +-------- Exit ------+----------------+
//
// Enter while Searching or Done performs an implicit Exit. An Enter that
// fails with ErrInvalidLocation changes nothing. Step outside
// Searching, or with budget ≤ 0, changes nothing. Shutdown releases the
// graph; Enter and Step then return ErrNoGraph until the next Build.
//
// Ordering:
//
// Candidates are expanded by ascending priority = given + w·heuristic (see
// package cost). Equal priorities expand in FIFO order, so a search is fully
// deterministic: identical inputs give identical expansion orders and paths,
// regardless of how the work is sliced across Step calls.
//
// Cost semantics:
//
// The start costs nothing; entering any other cell costs that cell's weight.
// With w = 1 and an admissible heuristic the first time the goal is popped
// its given cost is minimal. A goal that cannot be reached is a normal
// outcome: the session becomes Done with Found() false.
//
// Concurrency:
//
// A Controller is not safe for concurrent use. Several controllers may share
// one built graph through UseGraph, since the graph is never mutated by a
// search.
package pathsearch
