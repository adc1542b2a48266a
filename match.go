package lzframe

// matchFinder holds the two offset dictionaries the compressor probes
// at every position: one keyed by a 3-byte prefix hash, one by a
// 6-byte prefix hash. Using both catches both short, common runs and
// longer, more specific ones without having to pick a single prefix
// length.
type matchFinder struct {
	d3, d6    *dictionary
	blockSize int
}

func newMatchFinder(searchLen, blockSize int) *matchFinder {
	return &matchFinder{
		d3:        newDictionary(blockSize, searchLen),
		d6:        newDictionary(blockSize, searchLen),
		blockSize: blockSize,
	}
}

// best returns the most profitable back-reference candidate at
// position i, probing the 6-byte dictionary before the 3-byte one.
// Since the candidate is only replaced on a strictly greater gain, a
// tie between the two dictionaries goes to the 6-byte dictionary's
// candidate. data[i:i+6] must be in range; the caller guarantees at
// least 6 bytes remain before calling.
func (m *matchFinder) best(data []byte, i, e int) candidate {
	p3, p6 := packBytes(data[i:i+6], m.blockSize)
	var c candidate
	m.d6.probe(p6, data, i, e, &c)
	m.d3.probe(p3, data, i, e, &c)
	return c
}
