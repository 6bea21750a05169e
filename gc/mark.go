package gc

import "github.com/IQ01660/garbage-collector/internal/format"

// mark performs the reachability traversal: iterative depth-first over the
// root stack, which doubles as the worklist. Each reachable block is marked
// exactly once; already-marked blocks popped again (cycles, shared
// sub-objects) are discarded in O(1), so the traversal is O(V+E) over the
// live subgraph and terminates on any graph shape.
//
// Returns the number of blocks marked.
func (h *Heap) mark() int {
	marked := 0
	for {
		ref, ok := h.roots.pop()
		if !ok {
			return marked
		}
		// Null slots in partially-linked objects are legal; skip them.
		if ref == NullRef {
			continue
		}
		id, ok := h.lookup(ref)
		if !ok {
			fatal("mark", ref, ErrBadRef)
		}
		blk := &h.blocks[id]
		// A reference that resolves to a block on the free list is a dangling
		// pointer: the block was released (or swept) while something still
		// named it. Marking it would smuggle a stale mark bit into the free
		// list, so treat it like any other bad reference.
		if blk.list != listAllocated {
			fatal("mark", ref, ErrBadRef)
		}
		if blk.marked {
			continue
		}
		blk.marked = true
		marked++

		// Plain allocations carry no layout and are opaque leaves:
		// reachable, but with zero outgoing references.
		if blk.layout == nil {
			continue
		}
		payload := h.region.Slice(blk.off, blk.size)
		for _, off := range blk.layout.PtrOffsets {
			h.roots.push(Ref(format.ReadRef(payload, off)))
		}
	}
}
