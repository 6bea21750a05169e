package gc

// Stats holds heap counters, for tests and instrumentation.
type Stats struct {
	AllocCalls   int // Alloc/AllocObject requests with size > 0
	ReleaseCalls int // client Release calls (sweep reclamation not included)
	BestFitHits  int // allocations satisfied from the free list
	BumpCarves   int // allocations satisfied from the bump frontier
	BytesCarved  uint64
	Collections  int
	LastMarked   int // blocks marked by the most recent Collect
	LastSwept    int // blocks reclaimed by the most recent Collect
}
