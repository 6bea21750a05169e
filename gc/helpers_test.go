package gc

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IQ01660/garbage-collector/internal/format"
)

// testHeapSize keeps test heaps small; the reservation is lazy either way.
const testHeapSize = 1 << 20 // 1 MiB

func newTestHeap(t *testing.T) *Heap {
	t.Helper()
	h := New(Options{Size: testHeapSize})
	require.NoError(t, h.Init())
	return h
}

// requireFatal asserts that fn panics with a *FatalError wrapping want.
func requireFatal(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a fatal panic")
		ferr, ok := r.(*FatalError)
		require.True(t, ok, "panic value should be *FatalError, got %T", r)
		require.True(t, errors.Is(ferr, want), "fatal error %v should wrap %v", ferr, want)
	}()
	fn()
}

// assertHeapInvariants validates the structural invariants that must hold
// between operations: the two lists are disjoint and exhaustive over all
// carved blocks, linkage is symmetric, payloads are 16-byte aligned and
// never overlap, and no mark bit is set outside an active mark phase.
func assertHeapInvariants(t *testing.T, h *Heap) {
	t.Helper()

	seen := make(map[blockID]listID)
	walk := func(head blockID, list listID) {
		prev := noBlock
		for id := head; id != noBlock; id = h.blocks[id].next {
			blk := &h.blocks[id]
			_, dup := seen[id]
			require.False(t, dup, "block %d appears on more than one list", id)
			seen[id] = list
			require.Equal(t, list, blk.list, "block %d membership tag disagrees with list", id)
			require.Equal(t, prev, blk.prev, "block %d back-link asymmetric", id)
			require.False(t, blk.marked, "block %d marked outside a mark phase", id)
			require.Zero(t, blk.off%format.PayloadAlignment, "block %d payload misaligned", id)
			prev = id
		}
	}
	walk(h.freeHead, listFree)
	walk(h.allocHead, listAllocated)

	require.Len(t, seen, len(h.blocks), "lists are not exhaustive over carved blocks")
	require.Len(t, h.byOff, len(h.blocks), "offset index out of sync with arena")

	// Live ranges must be pairwise disjoint.
	type span struct{ off, end uint64 }
	spans := make([]span, 0, len(h.blocks))
	for i := range h.blocks {
		blk := &h.blocks[i]
		spans = append(spans, span{blk.off, blk.off + blk.size})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].off < spans[j].off })
	for i := 1; i < len(spans); i++ {
		require.LessOrEqual(t, spans[i-1].end, spans[i].off,
			"blocks overlap: [0x%x,0x%x) and [0x%x,0x%x)",
			spans[i-1].off, spans[i-1].end, spans[i].off, spans[i].end)
	}
}

// listMembership reports which list holds ref.
func listMembership(t *testing.T, h *Heap, ref Ref) listID {
	t.Helper()
	id, ok := h.lookup(ref)
	require.True(t, ok, "ref 0x%x not carved from this heap", uint64(ref))
	return h.blocks[id].list
}
