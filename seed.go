package argon2

import "encoding/binary"

// fillFirstBlocks fills columns 0 and 1 of every lane from H0 (spec §4.E),
// following original_source/src/core.c's fill_first_blocks: extend H0 to 72
// bytes by appending little-endian (blockIndex, laneIndex), then hash that
// 72-byte seed with the variable-length hash H into a 1024-byte block.
//
// The 72-byte seed buffer is securely wiped after use, matching core.c's
// secure_wipe_memory(blockhash, ARGON2_PREHASH_SEED_LENGTH) call at the end
// of initialize().
func fillFirstBlocks(memory []block, laneLength uint32, lanes uint32, h0 [prehashDigestLength]byte) {
	seed := make([]byte, prehashSeedLength)
	copy(seed, h0[:])
	defer secureWipe(seed)

	for lane := uint32(0); lane < lanes; lane++ {
		binary.LittleEndian.PutUint32(seed[prehashDigestLength:], 0)
		binary.LittleEndian.PutUint32(seed[prehashDigestLength+4:], lane)
		b0 := blake2bLong(seed, blockSize)
		memory[lane*laneLength].fromBytes(b0)

		binary.LittleEndian.PutUint32(seed[prehashDigestLength:], 1)
		b1 := blake2bLong(seed, blockSize)
		memory[lane*laneLength+1].fromBytes(b1)
	}
}
