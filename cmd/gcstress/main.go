// Command gcstress drives a seeded random workload against a heap: plain
// allocations, object allocations with random link rewiring, manual
// releases, and periodic collections. It is a shake-out tool for the
// allocator and collector under interleaved mutation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/IQ01660/garbage-collector/gc"
)

func main() {
	var (
		ops      = flag.Int("ops", 10000, "number of operations to run")
		seed     = flag.Int64("seed", 1, "rng seed")
		heapSize = flag.Uint64("heap", 64<<20, "reserved heap size in bytes")
		every    = flag.Int("collect-every", 500, "collect after this many operations")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	h := gc.New(gc.Options{Size: *heapSize, Logger: log})
	if err := h.Init(); err != nil {
		log.Error("heap init failed", "error", err)
		os.Exit(1)
	}

	layout := &gc.Layout{Size: 64, PtrOffsets: []uint64{0, 8, 16}}
	rng := rand.New(rand.NewSource(*seed))

	var (
		live    []gc.Ref // plain blocks, released manually
		objects []gc.Ref // collectible objects, reclaimed by cycles
	)

	for i := range *ops {
		switch rng.Intn(4) {
		case 0: // plain allocation
			ref, _, err := h.Alloc(uint64(1 + rng.Intn(1024)))
			if err != nil {
				log.Error("alloc failed", "op", i, "error", err)
				os.Exit(1)
			}
			live = append(live, ref)
		case 1: // object allocation
			ref, _, err := h.AllocObject(layout)
			if err != nil {
				log.Error("alloc object failed", "op", i, "error", err)
				os.Exit(1)
			}
			objects = append(objects, ref)
		case 2: // rewire a random edge
			if len(objects) > 1 {
				from := objects[rng.Intn(len(objects))]
				to := objects[rng.Intn(len(objects))]
				h.SetRef(from, uint64(8*rng.Intn(3)), to)
			}
		case 3: // manual release of a plain block
			if len(live) > 0 {
				j := rng.Intn(len(live))
				h.Release(live[j])
				live[j] = live[len(live)-1]
				live = live[:len(live)-1]
			}
		}

		if (i+1)%*every == 0 {
			// Plain blocks are owned by the manual-release path, so they
			// must all be rooted or the sweep would reclaim them and turn
			// the later Release into a double free.
			for _, ref := range live {
				h.RegisterRoot(ref)
			}
			// Keep a random half of the objects rooted; the rest may die.
			survivors := objects[:0]
			for _, ref := range objects {
				if rng.Intn(2) == 0 {
					h.RegisterRoot(ref)
					survivors = append(survivors, ref)
				}
			}
			h.Collect()
			st := h.Stats()
			log.Info("collected",
				"op", i+1, "marked", st.LastMarked, "swept", st.LastSwept,
				"objects", len(survivors), "plain", len(live))
			objects = survivors
		}
	}

	fmt.Printf("done: %+v\n", h.Stats())
}
