package argon2

// addressBlockWords is the number of pseudo-random 64-bit words produced by
// one counter-mode invocation of G (one per block, spec §4.G: "yields 128
// words per invocation"). Each word is split into a (J1, J2) pair: J1 is its
// low 32 bits, J2 its high 32 bits — the same convention Argon2d uses to
// split a data block's first word (segment.go).
const addressBlockWords = qwordsInBlock

// addressGenerator produces the Argon2i pseudo-random address stream for one
// (pass, lane, slice) segment, refilling every addressBlockWords = 128
// pairs (one word per pair, spec §4.G).
//
// Grounded on duggavo-argon3/argon3.go's processSegment, which builds the
// same six-field input block (pass, lane, slice, memory, time, mode) plus an
// incrementing counter and runs it through two chained compressions —
// processBlock(&addresses, &in, &zero) followed by
// processBlock(&addresses, &addresses, &zero) — which is the standard
// Argon2 counter-mode construction: Z = G(G(zero, input), zero). This core
// uses compressBlock (compression.go) for both steps since neither is
// XORed with a pre-existing destination.
type addressGenerator struct {
	input   block
	address block
	counter uint64
	pos     int // index of the next unconsumed word (one J1/J2 pair) in address
}

func newAddressGenerator(pass, lane, slice, memoryBlocks, passes uint32, typ Type) *addressGenerator {
	ag := &addressGenerator{}
	ag.input[0] = uint64(pass)
	ag.input[1] = uint64(lane)
	ag.input[2] = uint64(slice)
	ag.input[3] = uint64(memoryBlocks)
	ag.input[4] = uint64(passes)
	ag.input[5] = uint64(typ)
	ag.pos = addressBlockWords // force a refill before the first pair
	return ag
}

func (ag *addressGenerator) refill() {
	ag.counter++
	ag.input[6] = ag.counter

	var zero, tmp block
	tmp = ag.input
	compressBlock(&zero, &tmp, &tmp)
	compressBlock(&zero, &tmp, &ag.address)
	ag.pos = 0
}

// next returns the next (J1, J2) pair from the address stream, refilling it
// transparently every 128 words.
func (ag *addressGenerator) next() (j1, j2 uint32) {
	if ag.pos >= addressBlockWords {
		ag.refill()
	}
	w := ag.address[ag.pos]
	ag.pos++
	return uint32(w), uint32(w >> 32)
}
