package argon2

import "testing"

func freshMemory(lanes, laneLength uint32) []block {
	memory := make([]block, lanes*laneLength)
	var h0 [prehashDigestLength]byte
	for i := range h0 {
		h0[i] = byte(i + 1)
	}
	fillFirstBlocks(memory, laneLength, lanes, h0)
	return memory
}

func TestFillSegmentArgon2dFillsWholeSegment(t *testing.T) {
	lanes, segLen := uint32(1), uint32(8)
	laneLength := segLen * syncPoints
	memory := freshMemory(lanes, laneLength)

	fillSegment(memory, TypeArgon2d, 0, 0, 0, segLen, laneLength, lanes, lanes*laneLength, 1)

	for i := uint32(2); i < segLen; i++ {
		if memory[i] == (block{}) {
			t.Fatalf("block at column %d was left zero", i)
		}
	}
}

func TestFillSegmentArgon2iFillsWholeSegment(t *testing.T) {
	lanes, segLen := uint32(1), uint32(8)
	laneLength := segLen * syncPoints
	memory := freshMemory(lanes, laneLength)

	fillSegment(memory, TypeArgon2i, 0, 0, 0, segLen, laneLength, lanes, lanes*laneLength, 1)

	for i := uint32(2); i < segLen; i++ {
		if memory[i] == (block{}) {
			t.Fatalf("block at column %d was left zero", i)
		}
	}
}

func TestFillSegmentDeterministic(t *testing.T) {
	lanes, segLen := uint32(2), uint32(8)
	laneLength := segLen * syncPoints

	m1 := freshMemory(lanes, laneLength)
	m2 := freshMemory(lanes, laneLength)

	fillSegment(m1, TypeArgon2d, 0, 1, 0, segLen, laneLength, lanes, lanes*laneLength, 1)
	fillSegment(m2, TypeArgon2d, 0, 1, 0, segLen, laneLength, lanes, lanes*laneLength, 1)

	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("block %d diverged between identical runs", i)
		}
	}
}

func TestPrevColumnWraps(t *testing.T) {
	if got := prevColumn(0, 32); got != 31 {
		t.Fatalf("prevColumn(0, 32) = %d, want 31", got)
	}
	if got := prevColumn(5, 32); got != 4 {
		t.Fatalf("prevColumn(5, 32) = %d, want 4", got)
	}
}
