package lzframe

// candidate is the best (run, offset) pair found so far while probing
// the offset dictionaries at a given position, along with the profit
// that pair yields. Probing only ever replaces it on a strictly
// greater gain, so among equally profitable candidates the first one
// found (the newest position in whichever ring is probed first) wins.
type candidate struct {
	run    int
	offset int
	gain   int
}

// dictionary maps a 16-bit prefix hash to a ring of source positions
// that have hashed to it. Per the design notes on the "no-hash trick",
// this is a plain slice indexed directly by the key rather than a hash
// map with a hash function wrapped around an already-well-distributed
// key — there's nothing left for a hash function to do.
type dictionary struct {
	rings []ring
}

func newDictionary(blockSize, searchLen int) *dictionary {
	d := &dictionary{rings: make([]ring, blockSize)}
	for i := range d.rings {
		d.rings[i] = newRing(searchLen)
	}
	return d
}

// probe scans the ring at key newest-first, updating best with any
// candidate whose profit strictly exceeds best.gain, then
// unconditionally inserts the current position i into the ring. The
// insertion happens regardless of whether a match was found — that is
// what lets later positions find this one.
func (d *dictionary) probe(key uint16, data []byte, i, e int, best *candidate) {
	r := &d.rings[key]
	r.visit(func(p int) {
		offset := i - p
		run := commonPrefixLen(data[i:e], data[p:e])
		gain := profit(run, offset)
		if gain > best.gain {
			best.run, best.offset, best.gain = run, offset, gain
		}
	})
	r.push(i)
}

// commonPrefixLen returns how many leading bytes a and b share.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// packBytes hashes the 3-byte and 6-byte prefixes of b into 16-bit
// keys reduced modulo blockSize. b must have at least 6 bytes. Byte
// offset 3 is intentionally skipped in packed6 — empirically this
// combination of bytes gives better compression than including it;
// see the design notes for the rest of the reasoning (or lack of it).
func packBytes(b []byte, blockSize int) (packed3, packed6 uint16) {
	p3 := (uint32(b[0]) | uint32(b[1])<<8) ^ uint32(b[2])
	p6 := p3 + (uint32(b[4])<<8 | uint32(b[5]))
	bs := uint32(blockSize)
	return uint16(p3 % bs), uint16(p6 % bs)
}
