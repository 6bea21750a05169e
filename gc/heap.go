package gc

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/IQ01660/garbage-collector/internal/format"
	"github.com/IQ01660/garbage-collector/internal/region"
)

// Ref is the client-visible reference to a block: the byte offset of its
// payload within the heap's reserved span. Refs are stable for the lifetime
// of the heap.
type Ref uint64

// NullRef is the null reference. The first bytes of the span are reserved,
// so no payload ever sits at offset zero.
const NullRef Ref = 0

// DefaultHeapSize is the span reserved when Options.Size is zero. The
// reservation is anonymous and uncommitted, so the default costs only
// address space until blocks are actually carved.
const DefaultHeapSize = 2 << 30 // 2 GiB

// Options configures a Heap.
type Options struct {
	// Size is the length of the reserved span in bytes.
	// Zero means DefaultHeapSize.
	Size uint64

	// Logger receives Debug-level allocation and collection events.
	// Nil discards all output.
	Logger *slog.Logger
}

// Heap is a single allocator/collector instance. All state is owned by the
// instance; independent heaps do not share anything.
type Heap struct {
	opts Options
	log  *slog.Logger

	// region is nil until the first allocation (or an explicit Init).
	region *region.Region

	blocks []header           // header arena, indexed by blockID
	byOff  map[uint64]blockID // payload offset -> block

	freeHead  blockID
	allocHead blockID

	roots rootStack
	stats Stats
}

// New creates a heap. The backing span is not reserved until the first
// allocation; call Init to reserve it eagerly and observe any failure as an
// error.
func New(opts Options) *Heap {
	if opts.Size == 0 {
		opts.Size = DefaultHeapSize
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Heap{
		opts:      opts,
		log:       log,
		byOff:     make(map[uint64]blockID),
		freeHead:  noBlock,
		allocHead: noBlock,
	}
}

// Init reserves the backing span. Safe to call multiple times; only the
// first call has any effect. Alloc calls Init implicitly, but there a
// reservation failure is fatal - calling Init directly is the way to handle
// it as an ordinary error.
func (h *Heap) Init() error {
	if h.region != nil {
		return nil
	}
	r, err := region.Reserve(h.opts.Size)
	if err != nil {
		return fmt.Errorf("gc: reserve heap: %w", err)
	}
	h.region = r
	h.log.Debug("heap initialized", "size", h.opts.Size)
	return nil
}

func (h *Heap) ensureInit() {
	if h.region == nil {
		if err := h.Init(); err != nil {
			fatal("init", NullRef, err)
		}
	}
}

// Alloc hands out a block of at least size usable bytes and returns its
// reference and payload. The free list is searched for the best fit (the
// smallest free block large enough); when nothing fits, a fresh block is
// carved from the bump frontier with its payload aligned to 16 bytes.
//
// Alloc(0) returns NullRef with no side effects. ErrOutOfMemory is returned
// when the reserved span is exhausted; the frontier is left unchanged so a
// smaller or post-collection retry can still succeed.
//
// Blocks from Alloc are opaque to the collector: they are never scanned for
// embedded references. Use AllocObject for collectible objects.
func (h *Heap) Alloc(size uint64) (Ref, []byte, error) {
	h.ensureInit()
	if size == 0 {
		return NullRef, nil, nil
	}
	h.stats.AllocCalls++

	if id := h.bestFit(size); id != noBlock {
		h.unlink(&h.freeHead, id)
		blk := &h.blocks[id]
		blk.marked = false
		blk.layout = nil
		h.pushHead(&h.allocHead, id, listAllocated)
		h.stats.BestFitHits++
		payload := h.region.Slice(blk.off, blk.size)
		// Fresh carves come back zeroed from the OS; reused blocks must not
		// leak a previous object's reference bytes into the next trace.
		clear(payload)
		return Ref(blk.off), payload, nil
	}

	// Bump path. Pad so the payload lands on a 16-byte boundary; the pad is
	// zero when the frontier is already aligned.
	pad := format.Pad16(h.region.Frontier())
	off, ok := h.region.Carve(pad, size)
	if !ok {
		return NullRef, nil, ErrOutOfMemory
	}
	h.stats.BumpCarves++
	h.stats.BytesCarved += size

	id := blockID(len(h.blocks))
	h.blocks = append(h.blocks, header{
		off:  off,
		size: size,
		next: noBlock,
		prev: noBlock,
	})
	h.byOff[off] = id
	h.pushHead(&h.allocHead, id, listAllocated)

	h.log.Debug("carved block", "off", off, "size", size, "frontier", h.region.Frontier())
	return Ref(off), h.region.Slice(off, size), nil
}

// bestFit scans the entire free list for the smallest block whose size is at
// least size, stopping early on an exact match. A block on the free list
// that claims allocated membership means the lists are corrupted, which is
// fatal.
func (h *Heap) bestFit(size uint64) blockID {
	best := noBlock
	for id := h.freeHead; id != noBlock; id = h.blocks[id].next {
		blk := &h.blocks[id]
		if blk.list != listFree {
			fatal("alloc", Ref(blk.off), ErrListCorruption)
		}
		if blk.size >= size && (best == noBlock || blk.size < h.blocks[best].size) {
			best = id
		}
		if best != noBlock && h.blocks[best].size == size {
			break
		}
	}
	return best
}

// AllocObject allocates a collectible object of layout.Size bytes and
// attaches the layout so the collector can trace the object's reference
// slots. The layout must outlive the object.
func (h *Heap) AllocObject(layout *Layout) (Ref, []byte, error) {
	if err := layout.validate(); err != nil {
		return NullRef, nil, err
	}
	ref, payload, err := h.Alloc(layout.Size)
	if err != nil || ref == NullRef {
		return ref, payload, err
	}
	id, _ := h.lookup(ref)
	h.blocks[id].layout = layout
	return ref, payload, nil
}

// Release returns a block to the free list. Releasing NullRef is a no-op.
// Releasing a block that is already free is a double free, and releasing a
// reference that was never allocated from this heap is a bad reference;
// both are fatal.
//
// Release does not touch the block's mark bit or layout; those are
// reinitialized when the block is reallocated.
func (h *Heap) Release(ref Ref) {
	if ref == NullRef {
		return
	}
	id, ok := h.lookup(ref)
	if !ok {
		fatal("release", ref, ErrBadRef)
	}
	if h.blocks[id].list != listAllocated {
		fatal("release", ref, ErrDoubleFree)
	}
	h.stats.ReleaseCalls++
	h.releaseBlock(id)
}

// releaseBlock moves a block from the allocated list to the free list.
// Shared by Release and the sweep phase.
func (h *Heap) releaseBlock(id blockID) {
	h.unlink(&h.allocHead, id)
	h.pushHead(&h.freeHead, id, listFree)
}

// Payload returns the usable bytes of a block.
func (h *Heap) Payload(ref Ref) []byte {
	id, ok := h.lookup(ref)
	if !ok {
		fatal("payload", ref, ErrBadRef)
	}
	blk := &h.blocks[id]
	return h.region.Slice(blk.off, blk.size)
}

// SetRef stores target into the reference slot at fieldOff within obj's
// payload.
func (h *Heap) SetRef(obj Ref, fieldOff uint64, target Ref) {
	format.PutRef(h.Payload(obj), fieldOff, uint64(target))
}

// GetRef loads the reference slot at fieldOff within obj's payload.
func (h *Heap) GetRef(obj Ref, fieldOff uint64) Ref {
	return Ref(format.ReadRef(h.Payload(obj), fieldOff))
}

// RegisterRoot declares ref as a traversal entry point for the next
// collection cycle. The client must register every reference that is
// directly live at the moment of collection and not otherwise reachable
// from another registered root; anything unreachable from the root set is
// reclaimed.
func (h *Heap) RegisterRoot(ref Ref) {
	h.roots.push(ref)
}

// Stats returns a snapshot of the heap's counters.
func (h *Heap) Stats() Stats {
	return h.stats
}

// DumpBlocks writes a human-readable listing of both block lists, for
// debugging.
func (h *Heap) DumpBlocks(w io.Writer) {
	dumpList := func(name string, head blockID) {
		n := 0
		fmt.Fprintf(w, "%s:\n", name)
		for id := head; id != noBlock; id = h.blocks[id].next {
			blk := &h.blocks[id]
			fmt.Fprintf(w, "  [%d] off=0x%x size=%d marked=%v object=%v\n",
				id, blk.off, blk.size, blk.marked, blk.layout != nil)
			n++
		}
		fmt.Fprintf(w, "  (%d blocks)\n", n)
	}
	dumpList("allocated", h.allocHead)
	dumpList("free", h.freeHead)
}
