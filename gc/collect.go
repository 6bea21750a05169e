package gc

// Collect runs one synchronous mark-and-sweep cycle: everything reachable
// from the registered roots is marked, then the allocated list is swept and
// every unmarked block moves to the free list. The cycle consumes the root
// set; survivors come out with their mark bits clear, ready for the next
// cycle.
//
// The caller must not allocate, release, or mutate reference slots while
// Collect runs (single-threaded, stop-the-world by construction).
func (h *Heap) Collect() {
	h.ensureInit()

	marked := h.mark()
	swept := h.sweep()

	if !h.roots.empty() {
		fatal("collect", NullRef, ErrRootsNotDrained)
	}

	h.stats.Collections++
	h.stats.LastMarked = marked
	h.stats.LastSwept = swept
	h.log.Debug("collection complete", "marked", marked, "swept", swept)
}
