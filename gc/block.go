package gc

// Block bookkeeping.
//
// Headers live in a Go-side arena indexed by blockID rather than inside the
// reserved span, so list splicing can never scribble over payload bytes. A
// block is carved once and its header exists forever after at the same
// index; "freeing" only changes list membership.

// blockID is a stable index into the heap's header arena.
type blockID int32

// noBlock terminates list links.
const noBlock blockID = -1

// listID records which of the two lists currently holds a block. The lists
// are disjoint and exhaustive: every carved block is on exactly one.
type listID uint8

const (
	listFree listID = iota
	listAllocated
)

// header is the per-block metadata.
type header struct {
	off  uint64 // payload offset within the region
	size uint64 // usable payload length, excludes any alignment padding

	list   listID
	marked bool

	// layout is non-nil only for blocks created via AllocObject. A nil
	// layout makes the block an opaque leaf during marking.
	layout *Layout

	// Intrusive links, meaningful only within the list that holds the block.
	next, prev blockID
}

// pushHead prepends id onto the list whose head index is at *head and stamps
// the block's membership.
func (h *Heap) pushHead(head *blockID, id blockID, list listID) {
	blk := &h.blocks[id]
	blk.list = list
	blk.prev = noBlock
	blk.next = *head
	if *head != noBlock {
		h.blocks[*head].prev = id
	}
	*head = id
}

// unlink splices id out of the list whose head index is at *head, fixing up
// neighbor links, and clears the block's own links.
func (h *Heap) unlink(head *blockID, id blockID) {
	blk := &h.blocks[id]
	if blk.prev == noBlock {
		*head = blk.next
	} else {
		h.blocks[blk.prev].next = blk.next
	}
	if blk.next != noBlock {
		h.blocks[blk.next].prev = blk.prev
	}
	blk.next = noBlock
	blk.prev = noBlock
}

// lookup resolves a reference to its block, or reports that the reference
// was never carved from this heap.
func (h *Heap) lookup(ref Ref) (blockID, bool) {
	id, ok := h.byOff[uint64(ref)]
	return id, ok
}
