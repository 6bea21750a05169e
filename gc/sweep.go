package gc

// sweep walks the allocated list exactly once. Marked blocks survive with
// their mark cleared for the next cycle; unmarked blocks are moved to the
// free list. The successor is captured before any mutation, because
// releasing the current block rewrites its links - iteration always resumes
// from the captured index, so no block is skipped by the in-place splicing.
//
// Returns the number of blocks reclaimed.
func (h *Heap) sweep() int {
	swept := 0
	for id := h.allocHead; id != noBlock; {
		next := h.blocks[id].next
		if h.blocks[id].marked {
			h.blocks[id].marked = false
		} else {
			h.releaseBlock(id)
			swept++
		}
		id = next
	}
	return swept
}
