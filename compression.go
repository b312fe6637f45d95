package argon2

// G is the Argon2 compression permutation (spec §6: "a fixed, keyless
// permutation built from BLAKE2b round transformations applied over rows and
// columns of the block treated as an 8x8 matrix of 128-bit words"). Its
// internals are an external collaborator per spec §1/§6 — only the I/O shape
// (two blocks in, one block out) is part of this core's contract — but a
// concrete implementation is needed to produce any output at all, so this
// file ports the teacher's BLAKE2b-round-based permutation verbatim in
// shape: fBlaMka mixing (gMix) applied in the standard BLAKE2b column-then-
// diagonal pattern (gRound), run once over R = ref XOR prev as a row pass
// followed by a column pass (applyPermutation), with a feed-forward XOR
// back to the pre-permutation value.
//
// compressBlock computes dst = G(prev, ref) with no feed-in from dst's prior
// contents; fillBlock additionally XORs in dst's existing value, which
// segment.go uses for pass >= 1 (spec §4.G step 6).
func compressBlock(prev, ref, dst *block) {
	var r, q block
	r = *ref
	r.xor(prev)
	q = r

	applyPermutation(&r)

	r.xor(&q)
	*dst = r
}

// fillBlock computes dst = G(prev, ref) XOR dst (spec §4.G step 6, pass>=1).
func fillBlock(prev, ref, dst *block) {
	var r, q, old block
	old = *dst
	r = *ref
	r.xor(prev)
	q = r

	applyPermutation(&r)

	r.xor(&q)
	r.xor(&old)
	*dst = r
}

// applyPermutation is Argon2's P permutation over the 1024-byte block
// treated as an 8x8 matrix of 128-bit (2-word) registers: one pass of 8
// independent BLAKE2b rounds over the matrix's rows, followed by one pass
// of 8 independent rounds over its columns. This is the two-pass shape of
// original_source/src/blake2/blake2b-round.h's BLAKE2_ROUND_NOMSG call
// sites in core.c's fill_block — a single row pass then a single column
// pass, not the row pass repeated eight times.
func applyPermutation(b *block) {
	for i := 0; i < 8; i++ {
		gRound(b[16*i : 16*i+16])
	}

	var v [16]uint64
	for i := 0; i < 8; i++ {
		for k := 0; k < 8; k++ {
			v[2*k] = b[2*i+16*k]
			v[2*k+1] = b[2*i+16*k+1]
		}
		gRound(v[:])
		for k := 0; k < 8; k++ {
			b[2*i+16*k] = v[2*k]
			b[2*i+16*k+1] = v[2*k+1]
		}
	}
}

// gRound applies the BLAKE2b G mixing function to a 16-word group in the
// standard column-then-diagonal pattern.
func gRound(v []uint64) {
	v[0], v[4], v[8], v[12] = gMix(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = gMix(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = gMix(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = gMix(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = gMix(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = gMix(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = gMix(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = gMix(v[3], v[4], v[9], v[14])
}

// gMix is Argon2's fBlaMka-mixed variant of the BLAKE2b G function:
// fBlaMka(a, b) = a + b + 2*(lower32(a) * lower32(b)), which adds diffusion
// beyond plain addition. An all-zero input still maps to all zeros.
func gMix(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 32)
	c = c + d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 24)

	a = a + b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 16)
	c = c + d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// rotr64 right-rotates x by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
