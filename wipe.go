package argon2

import "runtime"

// secureWipe zeros buf and defeats dead-store elimination.
//
// The original core.c (original_source/src/core.c: secure_wipe_memory) reaches
// for a platform primitive — SecureZeroMemory on Windows, explicit_bzero on
// OpenBSD, an indirect-through-volatile-function-pointer memset elsewhere —
// because a plain memset right before a free is a classic dead store the
// optimizer is entitled to remove. Go has no explicit_bzero equivalent in the
// standard library. The zeroing loop mirrors
// r2unit-openpasswd/pkg/crypto/securemem.go's WipeMemory; the
// runtime.KeepAlive that follows it is added here so the compiler cannot
// prove the writes are dead and elide them.
func secureWipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// secureWipeBlock zeros a single block in place.
func secureWipeBlock(b *block) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// secureWipeBlocks zeros every block of a memory matrix in place.
func secureWipeBlocks(blocks []block) {
	for i := range blocks {
		for j := range blocks[i] {
			blocks[i][j] = 0
		}
	}
	runtime.KeepAlive(blocks)
}
