package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-lzframe/lzframe"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// runCompare reads all of r, compresses it with lzframe and every
// reference codec below, and prints each codec's name and output size.
// It exists purely to put this package's match finder in context next
// to established codecs; none of these backends touch the wire format.
func runCompare(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	type result struct {
		name string
		size int
		err  error
	}
	results := []result{
		{name: "lzframe", size: len(lzframe.Compress(data, lzframe.DefaultOptions()))},
	}
	for _, backend := range []struct {
		name string
		fn   func([]byte) (int, error)
	}{
		{"snappy", snappySize},
		{"flate", flateSize},
		{"zstd", zstdSize},
		{"lz4", lz4Size},
		{"brotli", brotliSize},
	} {
		size, err := backend.fn(data)
		results = append(results, result{name: backend.name, size: size, err: err})
	}

	fmt.Fprintf(w, "input: %d bytes\n", len(data))
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(w, "%-10s error: %v\n", res.name, res.err)
			continue
		}
		ratio := 0.0
		if len(data) > 0 {
			ratio = float64(res.size) / float64(len(data))
		}
		fmt.Fprintf(w, "%-10s %10d bytes  (%.3fx)\n", res.name, res.size, ratio)
	}
	return nil
}

func snappySize(data []byte) (int, error) {
	return len(snappy.Encode(nil, data)), nil
}

func flateSize(data []byte) (int, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return 0, err
	}
	if _, err := fw.Write(data); err != nil {
		return 0, err
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func zstdSize(data []byte) (int, error) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(data); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func lz4Size(data []byte) (int, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func brotliSize(data []byte) (int, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err := bw.Write(data); err != nil {
		return 0, err
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
