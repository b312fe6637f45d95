package argon2

import "encoding/binary"

// Block size constants from the Argon2 specification.
const (
	// blockSize is the size of an Argon2 memory block in bytes.
	blockSize = 1024

	// qwordsInBlock is the number of 64-bit words in a block (1024 / 8).
	qwordsInBlock = 128
)

// block is a single 1024-byte Argon2 memory block, viewed as 128 little-endian
// 64-bit words. The memory matrix (see instance.go) is a flat slice of these.
type block [qwordsInBlock]uint64

// xor performs in-place XOR of this block with other: b[i] ^= other[i].
func (b *block) xor(other *block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// copyFrom overwrites this block with other's contents.
func (b *block) copyFrom(other *block) {
	*b = *other
}

// fromBytes loads a block from exactly blockSize bytes of little-endian data.
func (b *block) fromBytes(data []byte) error {
	if len(data) != blockSize {
		return &blockSizeError{got: len(data), want: blockSize}
	}
	for i := 0; i < qwordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
	}
	return nil
}

// toBytes renders the block as blockSize little-endian bytes.
func (b *block) toBytes() []byte {
	data := make([]byte, blockSize)
	for i := 0; i < qwordsInBlock; i++ {
		binary.LittleEndian.PutUint64(data[i*8:(i+1)*8], b[i])
	}
	return data
}
