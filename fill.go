package argon2

import "sync"

// fillMemory runs the full passes x slices x lanes schedule of spec §4.H.
//
// Within one (pass, slice), up to inst.threads segment fillers run
// concurrently — one goroutine per lane, capped by a buffered channel
// semaphore — and a sync.WaitGroup barrier joins all of them before the next
// slice starts. This follows the same goroutine+WaitGroup shape as
// dataset.go's parallel item generation (this repo's teacher), generalized
// with a semaphore to cap concurrency at inst.threads the way
// original_source/src/core.c's fill_memory_blocks caps it via a rolling
// pthread_join(thread[l-threads]) — a semaphore of size inst.threads achieves the
// same bound without replicating the rolling-join bookkeeping (spec §9
// "Design notes" explicitly allows either shape).
//
// The barrier is what makes Argon2's parallelism guarantee hold (spec §4.H
// point 3): no worker for (pass, slice+1) starts before every worker for
// (pass, slice) has returned, so no lane ever reads a block of another
// lane's current slice while it is still being written.
func fillMemory(inst *instance) {
	sem := make(chan struct{}, inst.threads)

	for pass := uint32(0); pass < inst.passes; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < inst.lanes; lane++ {
				wg.Add(1)
				sem <- struct{}{}
				go func(lane uint32) {
					defer wg.Done()
					defer func() { <-sem }()
					fillSegment(inst.memory, inst.typ, pass, lane, slice,
						inst.segmentLength, inst.laneLength, inst.lanes,
						inst.memoryBlocks, inst.passes)
				}(lane)
			}
			wg.Wait()
		}
	}
}
