package lzframe

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages, fmt.Errorf with
// %w when a detail needs to travel with the sentinel.
var (
	// ErrMalformed is returned by Decoder.Feed when the input contains a
	// structurally invalid back-reference or literal length: an offset of
	// zero, an offset reaching before the start of the output buffer, or a
	// copy that would run past the frame's declared length. The decoder is
	// left in an unspecified state after this error; callers must discard
	// it rather than continue feeding it.
	ErrMalformed = errors.New("lzframe: malformed frame")

	// ErrNotReady is returned by Decoder.Result when no frame has
	// completed yet. Calling Result before Feed has returned true is a
	// caller-contract violation; ErrNotReady makes that an ordinary Go
	// error instead of undefined behavior.
	ErrNotReady = errors.New("lzframe: decoder has no completed frame")
)

func errMalformed(why string) error {
	return fmt.Errorf("%w: %s", ErrMalformed, why)
}
