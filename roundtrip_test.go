package lzframe

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

// roundTrip compresses data, decodes it back in a single Feed call, and
// returns the decoded bytes (or fails the test on any error).
func roundTrip(t *testing.T, data []byte, opts *Options) []byte {
	t.Helper()
	enc := Compress(data, opts)
	d := NewDecoder()
	done, remaining, err := d.Feed(enc)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if !done {
		t.Fatalf("frame did not complete")
	}
	if len(remaining) != 0 {
		t.Fatalf("unexpected remaining bytes: %q", remaining)
	}
	out, err := d.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	return out
}

// E1: empty input.
func TestScenarioE1EmptyInput(t *testing.T) {
	enc := Compress(nil, nil)
	if !bytes.Equal(enc, []byte{0x00}) {
		t.Fatalf("Compress(nil) = %x, want [00]", enc)
	}
	out := roundTrip(t, nil, nil)
	if len(out) != 0 {
		t.Fatalf("round trip of empty input produced %q", out)
	}
}

// E2: an input too short to match against.
func TestScenarioE2ShortInput(t *testing.T) {
	data := []byte("hello")
	enc := Compress(data, nil)
	if enc[0] != 0x05 {
		t.Fatalf("header byte = %x, want 0x05", enc[0])
	}
	out := roundTrip(t, data, nil)
	if string(out) != "hello" {
		t.Fatalf("got %q", out)
	}
}

// E3: a clean repeated 6-byte run.
func TestScenarioE3RepeatedRun(t *testing.T) {
	data := []byte("abcdefabcdef")
	out := roundTrip(t, data, nil)
	if string(out) != string(data) {
		t.Fatalf("got %q, want %q", out, data)
	}
}

// E4: overlapping back-reference (run-length style).
func TestScenarioE4RunLengthOverlap(t *testing.T) {
	data := bytes.Repeat([]byte("A"), 10)
	out := roundTrip(t, data, nil)
	if !bytes.Equal(out, data) {
		t.Fatalf("got %q, want %q", out, data)
	}
}

// E5: a large chunk of random data. Round trip must be exact, and the
// compressed size should not blow up by more than a small fraction.
func TestScenarioE5RandomData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large random round trip in -short mode")
	}
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 1<<20)
	rng.Read(data)

	enc := Compress(data, nil)
	if len(enc) > len(data)+len(data)/50+16 {
		t.Fatalf("compressed size %d is far larger than input %d", len(enc), len(data))
	}
	out := roundTrip(t, data, nil)
	if !bytes.Equal(out, data) {
		t.Fatal("round trip mismatch on random data")
	}
}

// E6: a frame immediately followed by an unrelated trailer.
func TestScenarioE6TrailerAfterFrame(t *testing.T) {
	frame := Compress([]byte("foo bar baz"), nil)
	trailer := []byte("XYZ")
	d := NewDecoder()
	done, remaining, err := d.Feed(append(append([]byte{}, frame...), trailer...))
	if err != nil || !done {
		t.Fatalf("done=%v err=%v", done, err)
	}
	out, _ := d.Result()
	if string(out) != "foo bar baz" {
		t.Fatalf("Result() = %q", out)
	}
	if !bytes.Equal(remaining, trailer) {
		t.Fatalf("remaining = %q, want %q", remaining, trailer)
	}
}

// E7: corrupted back-reference offset.
func TestScenarioE7CorruptedOffset(t *testing.T) {
	// "hello world" alone has no repeated 4-byte run and compresses to
	// literals only, so it is repeated: the frame then ends with a
	// back-reference (run 11, offset 12) whose header is the two-byte
	// VLQ 0x90 0x03. The second of those bytes carries offset bits only.
	data := []byte("hello world hello world")
	enc := Compress(data, nil)
	if len(enc) < 2 {
		t.Fatal("frame too short to corrupt")
	}
	corrupt := append([]byte{}, enc...)
	corrupt[len(corrupt)-1] |= 0x40 // push the offset field far out of range
	d := NewDecoder()
	_, _, err := d.Feed(corrupt)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Feed(corrupted frame) err = %v, want ErrMalformed", err)
	}
}

// Invariant 1: round trip for arbitrary bytes and arbitrary parameters.
func TestInvariantRoundTripVariedParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := [][]byte{
		nil,
		[]byte("x"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("The quick brown fox jumps over the lazy dog."),
	}
	for i := 0; i < 20; i++ {
		n := rng.Intn(4000)
		buf := make([]byte, n)
		rng.Read(buf)
		inputs = append(inputs, buf)
	}

	params := []*Options{
		{SearchLen: 1, BlockSize: 1},
		{SearchLen: 1, BlockSize: 64},
		{SearchLen: 8, BlockSize: 65536},
		{SearchLen: 64, BlockSize: 256},
	}

	for pi, opts := range params {
		for ii, in := range inputs {
			out := roundTrip(t, in, opts)
			if !bytes.Equal(out, in) {
				t.Fatalf("params[%d] input[%d]: round trip mismatch (in len %d, out len %d)", pi, ii, len(in), len(out))
			}
		}
	}
}

// Invariant 2: streaming equivalence across arbitrary partitions.
func TestInvariantStreamingEquivalence(t *testing.T) {
	data := bytes.Repeat([]byte("streaming equivalence payload, "), 50)
	enc := Compress(data, DefaultOptions())

	whole := NewDecoder()
	doneWhole, _, err := whole.Feed(enc)
	if err != nil || !doneWhole {
		t.Fatalf("whole-buffer feed failed: done=%v err=%v", doneWhole, err)
	}
	wantOut, _ := whole.Result()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		var parts [][]byte
		rest := enc
		for len(rest) > 0 {
			n := 1 + rng.Intn(len(rest))
			parts = append(parts, rest[:n])
			rest = rest[n:]
		}

		d := NewDecoder()
		var done bool
		for pi, part := range parts {
			var err error
			done, _, err = d.Feed(part)
			if err != nil {
				t.Fatalf("trial %d part %d: %v", trial, pi, err)
			}
			isLast := pi == len(parts)-1
			if done && !isLast {
				t.Fatalf("trial %d: frame completed before the chunk containing its last byte", trial)
			}
			if !done && isLast {
				t.Fatalf("trial %d: frame did not complete on the chunk containing its last byte", trial)
			}
		}
		out, err := d.Result()
		if err != nil {
			t.Fatalf("trial %d: Result: %v", trial, err)
		}
		if !bytes.Equal(out, wantOut) {
			t.Fatalf("trial %d: streaming result differs from whole-buffer result", trial)
		}
	}
}
