// Package argon2 implements the core of the Argon2 memory-hard
// password-hashing function (version 0x10), covering both the
// data-dependent (Argon2d) and data-independent (Argon2i) addressing modes.
//
// This is a port of the memory-fill engine in
// github.com/opd-ai/go-randomx's internal/argon2d package, generalized from
// its single-lane RandomX-specific form back to the full multi-lane,
// multi-threaded algorithm described by the original Argon2 reference
// implementation (see original_source/src/core.c), with the validation,
// secure-wiping, and allocator-callback contract that implies.
//
// The underlying BLAKE2b-family hash (both fixed- and variable-length output
// modes) and the per-block compression function G are treated as external
// collaborators: their I/O contracts are implemented (via
// golang.org/x/crypto/blake2b and compression.go respectively) but their
// cryptographic internals are not re-derived from first principles here —
// see compression.go's doc comment.
//
// This package does not implement PHC string encoding, a CLI, or
// test-vector (KAT) printing; it is the raw (inputs) -> tag transformation
// only.
package argon2

// Hash computes ctx.Out from ctx's other fields, following the pipeline in
// spec §4.J (and original_source/src/core.c's argon2_core): validate, align
// memory and construct the instance, initialize (H0 + first blocks), fill,
// finalize. It returns the first validation or allocation error encountered;
// memory is always released (wiped if requested, freed via the configured
// callback) once allocated, even on an error path after allocation.
func Hash(ctx *Context) error {
	if err := validateInputs(ctx); err != nil {
		return err
	}

	inst, err := newInstance(ctx)
	if err != nil {
		return err
	}

	h0 := initialHash(ctx)
	fillFirstBlocks(inst.memory, inst.laneLength, inst.lanes, h0)
	secureWipe(h0[:])

	fillMemory(inst)

	finalize(ctx, inst)
	return nil
}

// Key derives keyLen bytes from password and salt using Argon2i — the
// side-channel-resistant, data-independent-addressing variant recommended
// for password hashing (spec §1). Named after duggavo-argon3's Key/DKey
// pair, minus the Argon2id hybrid mode this core does not implement.
func Key(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return deriveKey(TypeArgon2i, password, salt, time, memory, threads, keyLen)
}

// DKey derives keyLen bytes using Argon2d, the faster but data-dependent
// (and therefore not side-channel resistant) variant. Suitable for
// applications without a plausible local-attacker side-channel threat model,
// e.g. proof-of-work style puzzles — not recommended for password storage.
func DKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	return deriveKey(TypeArgon2d, password, salt, time, memory, threads, keyLen)
}

func deriveKey(typ Type, password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) ([]byte, error) {
	out := make([]byte, keyLen)
	ctx := &Context{
		Config: Config{
			Type:       typ,
			TimeCost:   time,
			MemoryCost: memory,
			Lanes:      uint32(threads),
			Threads:    uint32(threads),
		},
		Out:         out,
		OutLen:      keyLen,
		Password:    password,
		PasswordLen: uint32(len(password)),
		Salt:        salt,
		SaltLen:     uint32(len(salt)),
	}
	if err := Hash(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
