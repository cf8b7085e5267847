package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when deserializing an empty buffer.
	// There is no byte to read the padding from, so nothing can be decoded.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidPadding is returned by Validate and UnmarshalBinary when the
	// last-byte padding is outside [0,7] or is nonzero on empty storage.
	//
	// Deserialize and DeserializeView never return it; they accept any
	// padding byte verbatim for compatibility with the upstream decoder.
	ErrInvalidPadding = errors.New("invalid last byte padding")
)

// ErrPaddingOutOfRange reports a padding byte that breaks the container
// invariant: a value above 7, or a nonzero value on empty storage.
//
// It unwraps to ErrInvalidPadding for errors.Is matching.
type ErrPaddingOutOfRange struct {
	Padding uint8
	Bytes   int
}

func (e *ErrPaddingOutOfRange) Error() string {
	return fmt.Sprintf("last byte padding %d out of range for %d data bytes", e.Padding, e.Bytes)
}

func (e *ErrPaddingOutOfRange) Unwrap() error { return ErrInvalidPadding }
