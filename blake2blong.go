package argon2

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// blake2bLong is the external hash primitive H from spec §6: BLAKE2b with a
// variable output length, via the standard Argon2 extension for outputs
// longer than BLAKE2b's native 64 bytes.
//
//   - outlen <= 64: H(out, in) = BLAKE2b-outlen(len32(outlen) || in)
//   - outlen  > 64: chain 64-byte BLAKE2b digests, taking the first 32 bytes
//     of each as output except the last, which is sized to exactly fill the
//     remainder.
//
// Used for the first-block seeder (seed.go, 72 bytes -> 1024) and the
// finalizer (finalize.go, 1024 bytes -> outlen).
func blake2bLong(in []byte, outlen uint32) []byte {
	if outlen == 0 {
		return nil
	}

	prefixed := make([]byte, 4+len(in))
	binary.LittleEndian.PutUint32(prefixed[0:4], outlen)
	copy(prefixed[4:], in)

	if outlen <= 64 {
		h, err := blake2b.New(int(outlen), nil)
		if err != nil {
			panic("argon2: blake2b.New failed for length " + itoa32(outlen) + ": " + err.Error())
		}
		h.Write(prefixed)
		return h.Sum(nil)
	}

	out := make([]byte, outlen)

	h, _ := blake2b.New512(nil)
	h.Write(prefixed)
	v := h.Sum(nil)

	copied := copy(out, v[:32])

	for copied < int(outlen) {
		remaining := int(outlen) - copied

		outSize, toCopy := 64, 32
		if remaining <= 64 {
			outSize, toCopy = remaining, remaining
		}

		h2, _ := blake2b.New(outSize, nil)
		h2.Write(v)
		v = h2.Sum(nil)

		copy(out[copied:], v[:toCopy])
		copied += toCopy
	}

	return out
}

func itoa32(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
