package frontier

// openHeap is a min-heap of handles ordered by (Priority, seq) ascending.
// It keeps Set.pos in sync on every move so any open handle can be located
// in O(1) for heap.Fix.
type openHeap struct {
	s     *Set
	items []Handle
}

// Len returns the number of open candidates.
func (h *openHeap) Len() int { return len(h.items) }

// Less orders by priority, then by FIFO stamp.
func (h *openHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	pa, pb := h.s.arena[a].Priority, h.s.arena[b].Priority
	if pa != pb {
		return pa < pb
	}

	return h.s.seq[a] < h.s.seq[b]
}

// Swap swaps two elements and updates their recorded positions.
func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.s.pos[h.items[i]] = i
	h.s.pos[h.items[j]] = j
}

// Push appends x; heap.Push then sifts it up.
func (h *openHeap) Push(x interface{}) {
	hd := x.(Handle)
	h.s.pos[hd] = len(h.items)
	h.items = append(h.items, hd)
}

// Pop removes the last element; heap.Pop has already moved the minimum there.
func (h *openHeap) Pop() interface{} {
	n := len(h.items)
	hd := h.items[n-1]
	h.items = h.items[:n-1]
	h.s.pos[hd] = -1

	return hd
}
