package lzframe

// appendVLQ appends n to dst as a variable-length quantity: groups of 7
// data bits, least-significant first, with the high bit of every byte
// except the last set as a continuation flag. Zero encodes as a single
// 0x00 byte.
func appendVLQ(dst []byte, n uint64) []byte {
	for {
		c := byte(n & 0x7F)
		n >>= 7
		if n == 0 {
			return append(dst, c)
		}
		dst = append(dst, c|0x80)
	}
}

// vlqDecoder accumulates a variable-length quantity across any number of
// calls to step, so a VLQ split across chunk boundaries resumes without
// re-reading consumed bytes.
type vlqDecoder struct {
	acc   uint64
	shift uint
}

// step consumes as many bytes of b as are available, continuing from
// whatever partial state acc/shift already hold. It returns the decoded
// value and the number of bytes consumed once a terminating byte (high
// bit clear) is seen. If b is exhausted first, ok is false and the
// caller should feed more bytes on the next call.
//
// A shift past 63 means the VLQ has gone on far longer than any value
// this format needs to represent; that can only happen on corrupted
// input, so it is reported as malformed rather than looped on forever.
func (v *vlqDecoder) step(b []byte) (n uint64, consumed int, ok bool, err error) {
	for i, c := range b {
		if v.shift >= 64 {
			return 0, i, false, errMalformed("vlq overflow")
		}
		v.acc |= uint64(c&0x7F) << v.shift
		v.shift += 7
		if c&0x80 == 0 {
			n = v.acc
			v.acc, v.shift = 0, 0
			return n, i + 1, true, nil
		}
	}
	return 0, len(b), false, nil
}
