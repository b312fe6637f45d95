package argon2

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// prehashDigestLength is the size of H0 in bytes.
const prehashDigestLength = 64

// prehashSeedLength is H0 plus the 8 extra bytes (i, lane) appended by
// fillFirstBlocks (seed.go) before hashing into the first two blocks of a
// lane.
const prehashSeedLength = prehashDigestLength + 8

// initialHash absorbs every Context input, in the order fixed by spec §4.D,
// into a 64-byte BLAKE2b digest H0:
//
//	lanes || outlen || m_cost || t_cost || version || type ||
//	pwdlen || pwd || saltlen || salt || secretlen || secret || adlen || ad
//
// If Config.ClearPassword (resp. ClearSecret) is set, the corresponding
// Context buffer is wiped and its declared length zeroed immediately after
// being absorbed — an observable side effect on the caller's Context, per
// spec §4.D. This mirrors original_source/src/core.c's initial_hash, which
// performs the wipe inline between absorbing each buffer and moving to the
// next field, rather than deferring it to the end.
func initialHash(ctx *Context) [prehashDigestLength]byte {
	h, err := blake2b.New(prehashDigestLength, nil)
	if err != nil {
		// prehashDigestLength (64) is always a valid blake2b output size.
		panic("argon2: blake2b.New failed for a fixed valid size: " + err.Error())
	}

	var u32 [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}

	putU32(ctx.Lanes)
	putU32(ctx.OutLen)
	putU32(ctx.MemoryCost)
	putU32(ctx.TimeCost)
	putU32(Version)
	putU32(uint32(ctx.Type))

	putU32(ctx.PasswordLen)
	if ctx.Password != nil {
		h.Write(ctx.Password)
		if ctx.ClearPassword {
			secureWipe(ctx.Password)
			ctx.PasswordLen = 0
		}
	}

	putU32(ctx.SaltLen)
	if ctx.Salt != nil {
		h.Write(ctx.Salt)
	}

	putU32(ctx.SecretLen)
	if ctx.Secret != nil {
		h.Write(ctx.Secret)
		if ctx.ClearSecret {
			secureWipe(ctx.Secret)
			ctx.SecretLen = 0
		}
	}

	putU32(ctx.ADLen)
	if ctx.AD != nil {
		h.Write(ctx.AD)
	}

	var out [prehashDigestLength]byte
	h.Sum(out[:0])
	return out
}
