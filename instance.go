package argon2

import "unsafe"

// instance is the immutable-after-construction configuration plus memory
// matrix (spec §3 "Instance"). It is built once per Hash call by
// newInstance and lives from initialize through finalize.
type instance struct {
	typ           Type
	passes        uint32
	lanes         uint32
	threads       uint32
	segmentLength uint32
	laneLength    uint32
	memoryBlocks  uint32
	memory        []block

	// rawBuf is the buffer returned by a caller-supplied AllocateFunc, when
	// one is configured. memory is a []block view directly over rawBuf's
	// backing array (allocateMemory below) — the same raw-pointer-cast
	// relationship original_source/src/core.c's argon2_core has between its
	// malloc'd buffer and the `block *memory` it casts that buffer to —
	// so that data actually written into memory during fill is the data a
	// caller-supplied allocator's buffer holds, not a copy of it.
	rawBuf []byte

	allocate AllocateFunc
	free     FreeFunc
}

// newInstance aligns memoryBlocks and constructs the instance, following
// original_source/src/core.c's argon2_core step 2 exactly: align up to
// max(m_cost, 2*SYNC_POINTS*lanes) first, then round down to a multiple of
// lanes*SYNC_POINTS. The two steps are kept in this order (not combined into
// a single formula) because they round in opposite directions and rounding
// down before the minimum clamp can under-align for small m_cost values
// (spec SUPPLEMENTED FEATURES note on this).
func newInstance(ctx *Context) (*instance, error) {
	memoryBlocks := ctx.MemoryCost
	minBlocks := 2 * syncPoints * ctx.Lanes
	if memoryBlocks < minBlocks {
		memoryBlocks = minBlocks
	}

	segmentLength := memoryBlocks / (ctx.Lanes * syncPoints)
	memoryBlocks = segmentLength * ctx.Lanes * syncPoints

	inst := &instance{
		typ:           ctx.Type,
		passes:        ctx.TimeCost,
		lanes:         ctx.Lanes,
		threads:       ctx.Threads,
		segmentLength: segmentLength,
		laneLength:    segmentLength * syncPoints,
		memoryBlocks:  memoryBlocks,
		allocate:      ctx.Allocate,
		free:          ctx.Free,
	}

	if err := inst.allocateMemory(); err != nil {
		return nil, err
	}

	return inst, nil
}

func (inst *instance) allocateMemory() error {
	if inst.allocate == nil {
		inst.memory = make([]block, inst.memoryBlocks)
		return nil
	}

	buf, err := inst.allocate(int(inst.memoryBlocks) * blockSize)
	if err != nil {
		return &ValidationError{Code: ErrMemoryAllocation}
	}
	if len(buf) < int(inst.memoryBlocks)*blockSize {
		return &ValidationError{Code: ErrMemoryAllocation}
	}

	inst.rawBuf = buf
	inst.memory = unsafe.Slice((*block)(unsafe.Pointer(&buf[0])), inst.memoryBlocks)
	return nil
}

// release wipes (if requested) and frees the memory matrix via the caller's
// FreeFunc when present, else lets the garbage collector reclaim it (spec
// §4.I). memory is wiped directly; when a caller-supplied allocator is in
// play, rawBuf aliases the same backing array (allocateMemory above), so
// wiping memory wipes the buffer the Free callback receives too.
func (inst *instance) release(clear bool) {
	if clear {
		secureWipeBlocks(inst.memory)
	}
	if inst.free != nil && inst.rawBuf != nil {
		inst.free(inst.rawBuf)
	}
	inst.memory = nil
	inst.rawBuf = nil
}
