package lzframe

// phase is the decoder's current position in the per-frame state
// machine described in the wire-format documentation.
type phase uint8

const (
	// phaseInit expects a new frame: the next bytes fed in are the
	// frame's length header.
	phaseInit phase = iota
	// phaseStart expects a token header: either a literal-run length or
	// a back-reference's offset and (possibly) short run.
	phaseStart
	// phaseLiteral is mid-copy on a literal-run token.
	phaseLiteral
	// phaseRunExtra has decoded a back-reference's offset and is
	// waiting on the second VLQ that carries its run length.
	phaseRunExtra
)

// Decoder reconstructs a frame's original bytes from a Compress
// stream fed in arbitrarily sized chunks. It is not reentrant: Feed
// must not be called concurrently on the same Decoder.
type Decoder struct {
	ph  phase
	vlq vlqDecoder

	out    []byte
	cursor int
	length int

	literalRemaining int
	pendingOffset    int

	result []byte
	ready  bool
}

// NewDecoder returns a Decoder ready to decode a frame from the start.
func NewDecoder() *Decoder {
	return &Decoder{ph: phaseInit}
}

// Feed appends chunk to the decoder's logical input. It returns true
// once a full frame has been decoded; at that point remaining holds
// whatever bytes of chunk came after the frame (empty if chunk was
// fully consumed), and Result returns the decoded payload. It returns
// false if chunk was exhausted before the frame completed, in which
// case all partial state (including a VLQ mid-decode or a literal
// copy mid-flight) persists for the next Feed call.
func (d *Decoder) Feed(chunk []byte) (done bool, remaining []byte, err error) {
	i := 0
	n := len(chunk)

	if d.ph == phaseInit {
		length, consumed, ok, err := d.vlq.step(chunk[i:])
		i += consumed
		if err != nil {
			return false, nil, err
		}
		if !ok {
			// The header VLQ hasn't completed yet; come back once more
			// bytes are available. See SPEC_FULL.md's Open Question note
			// on why this does not report "done" the way the reference
			// implementation's INIT phase does.
			return false, nil, nil
		}
		d.length = int(length)
		d.out = make([]byte, d.length)
		d.cursor = 0
		d.ph = phaseStart
	}

	for i < n {
		if d.cursor == d.length {
			return d.completeFrame(chunk[i:])
		}

		switch d.ph {
		case phaseStart:
			msg, consumed, ok, err := d.vlq.step(chunk[i:])
			i += consumed
			if err != nil {
				return false, nil, err
			}
			if !ok {
				return false, nil, nil
			}
			if msg&1 == 1 {
				d.literalRemaining = int(msg >> 1)
				d.ph = phaseLiteral
				continue
			}
			combined := msg >> 1
			shortRun := combined & 0xF
			offset := int(combined >> 4)
			if shortRun != 0 {
				if err := d.applyBackref(offset, int(shortRun)+runBias); err != nil {
					return false, nil, err
				}
				d.ph = phaseStart
				continue
			}
			d.pendingOffset = offset
			d.ph = phaseRunExtra

		case phaseLiteral:
			take := d.literalRemaining
			if avail := n - i; take > avail {
				take = avail
			}
			if d.literalRemaining > d.length-d.cursor {
				return false, nil, errMalformed("literal run exceeds frame length")
			}
			copy(d.out[d.cursor:d.cursor+take], chunk[i:i+take])
			d.cursor += take
			i += take
			d.literalRemaining -= take
			if d.literalRemaining > 0 {
				return false, nil, nil
			}
			d.ph = phaseStart

		case phaseRunExtra:
			extra, consumed, ok, err := d.vlq.step(chunk[i:])
			i += consumed
			if err != nil {
				return false, nil, err
			}
			if !ok {
				return false, nil, nil
			}
			if extra > uint64(d.length-d.cursor) {
				return false, nil, errMalformed("back-reference out of range")
			}
			if err := d.applyBackref(d.pendingOffset, int(extra)+runBias); err != nil {
				return false, nil, err
			}
			d.ph = phaseStart
		}
	}

	if d.cursor == d.length {
		return d.completeFrame(nil)
	}
	return false, nil, nil
}

// completeFrame finalizes the current frame: it stashes the decoded
// bytes where Result can find them, hands back whatever of the
// caller's buffer wasn't part of this frame, and resets to phaseInit
// so the next Feed call can start a new frame.
func (d *Decoder) completeFrame(tail []byte) (bool, []byte, error) {
	d.result = d.out
	d.ready = true
	d.ph = phaseInit
	d.out = nil
	if len(tail) == 0 {
		return true, nil, nil
	}
	remaining := make([]byte, len(tail))
	copy(remaining, tail)
	return true, remaining, nil
}

// applyBackref validates and executes a back-reference copy of
// length bytes from offset bytes before the write cursor. Overlapping
// copies (offset < length) must proceed byte by byte left to right so
// that each newly written byte is visible to the read that follows it
// — that is how a single prior byte or short pair extends into a long
// run. Non-overlapping copies use the bulk copy builtin.
func (d *Decoder) applyBackref(offset, length int) error {
	if offset <= 0 || offset > d.cursor || d.cursor+length > d.length {
		return errMalformed("back-reference out of range")
	}
	src := d.cursor - offset
	if offset >= length {
		copy(d.out[d.cursor:d.cursor+length], d.out[src:src+length])
	} else {
		for k := 0; k < length; k++ {
			d.out[d.cursor+k] = d.out[src+k]
		}
	}
	d.cursor += length
	return nil
}

// Result returns the most recently completed frame's decoded bytes.
// It returns ErrNotReady if Feed has never returned true.
func (d *Decoder) Result() ([]byte, error) {
	if !d.ready {
		return nil, ErrNotReady
	}
	return d.result, nil
}
