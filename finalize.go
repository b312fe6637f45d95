package argon2

// finalize computes the tag from a fully-filled instance (spec §4.I): XOR
// the last block of every lane into an accumulator, hash it with the
// variable-length hash H, wipe the accumulator, then — independent of
// whether ClearMemory is set — hand the matrix to instance.release, which
// performs the (conditional) memory wipe and frees via the caller's
// FreeFunc when present. Mirrors original_source/src/core.c's finalize().
func finalize(ctx *Context, inst *instance) {
	var acc block
	acc.copyFrom(&inst.memory[inst.laneLength-1])

	for lane := uint32(1); lane < inst.lanes; lane++ {
		lastInLane := lane*inst.laneLength + (inst.laneLength - 1)
		acc.xor(&inst.memory[lastInLane])
	}

	tag := blake2bLong(acc.toBytes(), ctx.OutLen)
	copy(ctx.Out, tag)
	secureWipeBlock(&acc)

	inst.release(ctx.ClearMemory)
}
