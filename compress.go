package lzframe

// minMatch is the shortest back-reference run worth emitting. Shorter
// matches cost more in VLQ-encoded offset and run bits than they save
// over the equivalent literal bytes, so the driver never considers
// them.
const minMatch = 4

// tailBytes is how many trailing bytes of input are never matched
// against: both prefix hashes need 6 bytes to compute, so once fewer
// than that remain, every remaining byte is emitted as a literal.
const tailBytes = 6

// Compress compresses data into a single self-delimited frame. A nil
// Options uses DefaultOptions. Compress cannot fail: it is a pure
// function of (data, SearchLen, BlockSize).
func Compress(data []byte, opts *Options) []byte {
	if opts == nil {
		opts = DefaultOptions()
	}
	searchLen, blockSize := opts.normalize()

	out := appendVLQ(make([]byte, 0, len(data)), uint64(len(data)))
	if len(data) == 0 {
		return out
	}

	finder := newMatchFinder(searchLen, blockSize)
	var literals []byte

	e := len(data)
	i := 0
	for i < e {
		if i > e-tailBytes {
			literals = append(literals, data[i])
			i++
			continue
		}

		best := finder.best(data, i, e)
		if best.run < minMatch {
			literals = append(literals, data[i])
			i++
			continue
		}

		if len(literals) > 0 {
			out = emitLiteral(out, literals)
			literals = literals[:0]
		}
		out = emitBackref(out, best.run, best.offset)
		i += best.run
	}

	if len(literals) > 0 {
		out = emitLiteral(out, literals)
	}
	return out
}

// emitLiteral writes a literal-run token: vlq((n<<1)|1) followed by
// the n raw bytes.
func emitLiteral(out []byte, literal []byte) []byte {
	out = appendVLQ(out, uint64(len(literal))<<1|1)
	return append(out, literal...)
}

// runBias is subtracted from every back-reference run before encoding
// and added back by the decoder, so it never appears on the wire. Runs
// are always at least minMatch, so the encoded value is at least 1.
const runBias = 3

// emitBackref writes a back-reference token. Short runs (run-3 < 16)
// piggyback their length on the low 4 bits of the header VLQ; longer
// runs leave those bits zero (signaling the decoder to read a second
// VLQ) and encode the full run-3 value there instead.
//
// offset<<5 for the long form is bit-for-bit the same value as
// (offset<<4)<<1, so both forms share one header-VLQ computation.
func emitBackref(out []byte, run, offset int) []byte {
	run4 := run - runBias
	header := uint64(offset) << 4
	if run4 < 16 {
		header |= uint64(run4)
		return appendVLQ(out, header<<1)
	}
	out = appendVLQ(out, header<<1)
	return appendVLQ(out, uint64(run4))
}
