/*
Package lzframe implements a self-contained LZ77-family byte-stream
compressor and decompressor.

Compress takes a finite byte slice and returns a compressed frame: a
VLQ-encoded length header followed by a sequence of literal-run and
back-reference tokens. Decoder accepts that frame in arbitrarily sized
chunks through Feed and reconstructs the original bytes exactly,
resuming mid-token across chunk boundaries.

The wire format carries its own length prefix, so a Decoder can be fed
a buffer that contains a complete frame followed by unrelated trailing
bytes (from a larger transport buffer, or the start of the next frame)
and will report exactly how much of the buffer it consumed.

# Examples

Round-trip compress and decompress:

	enc := lzframe.Compress(data, nil)
	dec := lzframe.NewDecoder()
	done, _, err := dec.Feed(enc)
	if err != nil {
		return err
	}
	if !done {
		return fmt.Errorf("frame incomplete")
	}
	out, _ := dec.Result()
	// out equals data

Feed a frame in arbitrary chunks:

	dec := lzframe.NewDecoder()
	var done bool
	for _, chunk := range chunks {
		var err error
		done, _, err = dec.Feed(chunk)
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

Detect a frame boundary inside a larger buffer:

	done, remaining, err := dec.Feed(frameFollowedByTrailer)
	// done == true, remaining holds the bytes after the frame
*/
package lzframe
