package argon2

import "testing"

func TestFillMemoryFillsEveryBlock(t *testing.T) {
	ctx := &Context{Config: Config{Type: TypeArgon2d, TimeCost: 2, MemoryCost: 32, Lanes: 2, Threads: 2}}
	inst, err := newInstance(ctx)
	if err != nil {
		t.Fatalf("newInstance: %v", err)
	}
	var h0 [prehashDigestLength]byte
	for i := range h0 {
		h0[i] = byte(i)
	}
	fillFirstBlocks(inst.memory, inst.laneLength, inst.lanes, h0)

	fillMemory(inst)

	for i, b := range inst.memory {
		if b == (block{}) {
			t.Fatalf("block %d left unfilled after fillMemory", i)
		}
	}
}

func TestFillMemoryCompletesForVariousThreadCounts(t *testing.T) {
	for _, threads := range []uint32{1, 2, 4} {
		ctx := &Context{Config: Config{Type: TypeArgon2d, TimeCost: 2, MemoryCost: 32, Lanes: 4, Threads: threads}}
		inst, err := newInstance(ctx)
		if err != nil {
			t.Fatalf("newInstance(threads=%d): %v", threads, err)
		}
		var h0 [prehashDigestLength]byte
		for i := range h0 {
			h0[i] = byte(i + 1)
		}
		fillFirstBlocks(inst.memory, inst.laneLength, inst.lanes, h0)
		fillMemory(inst)

		for i, b := range inst.memory {
			if b == (block{}) {
				t.Fatalf("threads=%d: block %d left unfilled", threads, i)
			}
		}
	}
	// Full output-equivalence across thread counts (not just "every block
	// got written to") is exercised end-to-end in argon2_test.go's
	// TestHashThreadsInvariant, which compares actual tags.
}
