package argon2

import "testing"

func TestSecureWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	secureWipe(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, v)
		}
	}
}

func TestSecureWipeBlock(t *testing.T) {
	var b block
	for i := range b {
		b[i] = uint64(i + 1)
	}
	secureWipeBlock(&b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("b[%d] = %d, want 0", i, v)
		}
	}
}

func TestSecureWipeBlocks(t *testing.T) {
	blocks := make([]block, 4)
	for i := range blocks {
		for j := range blocks[i] {
			blocks[i][j] = uint64(i*1000 + j + 1)
		}
	}
	secureWipeBlocks(blocks)
	for i := range blocks {
		for j, v := range blocks[i] {
			if v != 0 {
				t.Fatalf("blocks[%d][%d] = %d, want 0", i, j, v)
			}
		}
	}
}
