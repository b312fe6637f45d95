package argon2

// position tracks where a segment filler is working in the memory matrix
// (spec §3 "Position"), mirroring original_source/src/core.c's
// Argon2_position_t.
type position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// indexAlpha maps the current position and a pseudo-random word J1 to the
// column (within the reference lane) of the block that fillBlock should read
// as its second input. This is §4.F verbatim, ported from
// original_source/src/core.c's index_alpha, generalized to the full
// same-lane/other-lane table that the teacher's single-lane RandomX port
// collapsed away.
//
// All arithmetic here is carried out in uint64, and the reference's
// `(index == 0) ? -1 : 0` terms are written as an explicit decrement. For
// every position fillSegment produces (index >= 2 in pass 0 slice 0, and
// segmentLength >= 2 because memory is at least 8 blocks per lane),
// reference_area_size stays at least 1, so nothing underflows and the
// `* y >> 32` step sees the same value as the reference's 32-bit
// computation widened to 64 bits.
func indexAlpha(pos position, segmentLength, laneLength uint32, j1 uint32, sameLane bool) uint32 {
	var referenceAreaSize uint64

	switch {
	case pos.Pass == 0 && pos.Slice == 0:
		// Only the just-written predecessor, exclusive.
		referenceAreaSize = uint64(pos.Index) - 1

	case pos.Pass == 0 && sameLane:
		referenceAreaSize = uint64(pos.Slice)*uint64(segmentLength) + uint64(pos.Index) - 1

	case pos.Pass == 0 && !sameLane:
		referenceAreaSize = uint64(pos.Slice) * uint64(segmentLength)
		if pos.Index == 0 {
			referenceAreaSize--
		}

	case pos.Pass >= 1 && sameLane:
		referenceAreaSize = uint64(laneLength) - uint64(segmentLength) + uint64(pos.Index) - 1

	default: // pass >= 1, other lane
		referenceAreaSize = uint64(laneLength) - uint64(segmentLength)
		if pos.Index == 0 {
			referenceAreaSize--
		}
	}

	// Non-uniform mapping biasing toward recent blocks (spec §4.F step 2).
	x := uint64(j1)
	y := (x * x) >> 32
	z := (referenceAreaSize * y) >> 32
	rel := referenceAreaSize - 1 - z

	// Start offset (spec §4.F step 3).
	var start uint32
	if pos.Pass != 0 {
		if pos.Slice == syncPoints-1 {
			start = 0
		} else {
			start = (pos.Slice + 1) * segmentLength
		}
	}

	return uint32((uint64(start) + rel) % uint64(laneLength))
}
