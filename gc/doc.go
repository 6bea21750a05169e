// Package gc implements a hybrid memory manager: a best-fit/bump-pointer
// allocator layered with a precise mark-and-sweep garbage collector.
//
// # Overview
//
// A Heap reserves one large contiguous span of anonymous virtual memory and
// carves client blocks out of it. Blocks released by the client (manually or
// by the collector) go onto a free list and are reused by best-fit search;
// when nothing on the free list fits, a new block is carved from the bump
// frontier. Collectible objects additionally carry a Layout describing where
// their embedded references live, which lets the collector trace the object
// graph precisely - no conservative scanning.
//
// # Usage Example
//
//	h := gc.New(gc.Options{})
//
//	node := &gc.Layout{Size: 16, PtrOffsets: []uint64{8}}
//
//	a, _, err := h.AllocObject(node)
//	if err != nil {
//	    return err
//	}
//	b, _, _ := h.AllocObject(node)
//	h.SetRef(a, 8, b) // a.next = b
//
//	h.RegisterRoot(a)
//	h.Collect() // a and b survive; anything unreachable is reclaimed
//
// # References
//
// The client-visible pointer type is Ref, a stable byte offset of a payload
// within the reserved span. NullRef (zero) is the null reference. Objects
// store Refs to one another in 8-byte little-endian slots inside their
// payloads, written with SetRef or read with GetRef.
//
// # Roots and collection
//
// Before calling Collect, the client must register every Ref that is
// directly live and not reachable from another registered root. Collection
// is synchronous: it marks everything reachable from the registered roots,
// then sweeps the allocated list, moving every unmarked block to the free
// list. The root set is consumed by the cycle and must be re-registered
// before the next one.
//
// # Failure model
//
// Heap exhaustion is recoverable and reported as ErrOutOfMemory; the caller
// may collect and retry. Client logic errors (double free, releasing a
// reference that was never allocated) and internal invariant violations are
// unrecoverable and raised as a panic carrying a *FatalError.
//
// # Thread safety
//
// A Heap is not thread-safe. A single logical thread of control must drive
// allocation, release, root registration, and collection, and must not
// mutate the object graph while Collect runs.
package gc
