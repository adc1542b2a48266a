// Command lzframe compresses or decompresses stdin to stdout using the
// lzframe wire format, or runs a side-by-side size comparison against
// a handful of reference codecs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-lzframe/lzframe"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzframe: ")

	compressFlag := flag.Bool("c", false, "compress stdin to stdout")
	decompressFlag := flag.Bool("d", false, "decompress stdin to stdout")
	fast := flag.Bool("1", false, "with -c, use FastOptions (speed over ratio)")
	small := flag.Bool("2", false, "with -c, use SmallMemoryOptions (small dictionary)")
	compare := flag.Bool("compare", false, "compress stdin with lzframe and reference codecs, report sizes")
	flag.Usage = usage

	flag.Parse()

	switch {
	case *compare:
		if err := runCompare(os.Stdin, os.Stdout); err != nil {
			log.Println(err)
			os.Exit(1)
		}
	case *compressFlag && !*decompressFlag:
		opts := optionsFor(*fast, *small)
		if err := runCompress(os.Stdin, os.Stdout, opts); err != nil {
			log.Println(err)
			os.Exit(1)
		}
	case *decompressFlag && !*compressFlag:
		if err := runDecompress(os.Stdin, os.Stdout); err != nil {
			log.Println(err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage:
  lzframe -c [-1|-2]   compress stdin to stdout
  lzframe -d           decompress stdin to stdout (one or more frames)
  lzframe -compare     compress stdin with lzframe and reference codecs,
                       print a size comparison
`)
}

func optionsFor(fast, small bool) *lzframe.Options {
	switch {
	case fast:
		return lzframe.FastOptions()
	case small:
		return lzframe.SmallMemoryOptions()
	default:
		return lzframe.DefaultOptions()
	}
}

func runCompress(r io.Reader, w io.Writer, opts *lzframe.Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	_, err = w.Write(lzframe.Compress(data, opts))
	return err
}

// runDecompress decodes as many consecutive frames as stdin holds: each
// frame's leftover trailer becomes the start of the next frame's input,
// exactly as Decoder.Feed's remaining/done contract intends.
func runDecompress(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	for len(data) > 0 {
		d := lzframe.NewDecoder()
		done, remaining, err := d.Feed(data)
		if err != nil {
			return fmt.Errorf("decoding frame: %w", err)
		}
		if !done {
			return fmt.Errorf("decoding frame: truncated input (%d bytes left undecoded)", len(data))
		}
		out, err := d.Result()
		if err != nil {
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
		data = remaining
	}
	return nil
}
