package bitvec

import (
	"bytes"
	"iter"
	"slices"
)

// Sequence is a growable sequence of bits packed MSB-first into bytes.
//
// The final byte may be only partially filled; lastBytePadding counts the
// low-order bits of that byte that carry no meaning. Invariant: empty
// storage has padding 0, and non-empty storage has padding in [0,7].
//
// A Sequence is not safe for concurrent use. Exactly one goroutine may
// mutate it at a time, and no View taken from it may be read concurrently
// with a mutation.
type Sequence struct {
	raw             []byte
	lastBytePadding uint8
}

// New returns an empty Sequence.
func New() *Sequence {
	return &Sequence{}
}

// WithCapacity returns an empty Sequence with backing storage pre-sized to
// hold at least nbits bits without reallocating.
func WithCapacity(nbits int) *Sequence {
	return &Sequence{
		raw: make([]byte, 0, LeastBytesForBits(nbits)),
	}
}

// FromBools builds a Sequence by appending each element of bools in order.
func FromBools(bools []bool) *Sequence {
	s := WithCapacity(len(bools))
	for _, b := range bools {
		s.AppendBit(b)
	}
	return s
}

// Len returns the number of meaningful bits in the sequence.
//
// Due to padding the number of stored bits may be higher; those extra bits
// are ignored by every read operation.
func (s *Sequence) Len() int {
	return len(s.raw)*8 - int(s.lastBytePadding)
}

// LeastLenBytes returns the number of bytes used to store the sequence's
// contents. After append-only growth this equals LeastBytesForBits(Len()).
func (s *Sequence) LeastLenBytes() int {
	return len(s.raw)
}

// AppendBit appends a single bit at the next free MSB-first position.
//
// Appending may reallocate the backing storage, which invalidates any View
// previously taken from the sequence.
func (s *Sequence) AppendBit(bit bool) {
	if s.lastBytePadding == 0 {
		var b byte
		if bit {
			b = 1 << 7
		}
		s.raw = append(s.raw, b)
		s.lastBytePadding = 7
		return
	}

	// The write is an OR into position padding-1 from the LSB end; it never
	// clears a padding bit that is already set, so callers must not assume
	// padding bits are zero before being overwritten.
	if bit {
		s.raw[len(s.raw)-1] |= 1 << (s.lastBytePadding - 1)
	}
	s.lastBytePadding--
}

// ExtendFromBits appends every meaningful bit of v to the sequence,
// preserving order.
//
// When the sequence is byte-aligned (padding 0) this is a wholesale byte
// copy that adopts the view's padding. Otherwise the view's bytes are
// recombined across byte boundaries with shift+OR; the result is
// bit-identical to appending each bit individually.
func (s *Sequence) ExtendFromBits(v View) {
	if s.lastBytePadding == 0 {
		// Aligned: the view's bytes drop straight in.
		s.raw = append(s.raw, v.raw...)
		s.lastBytePadding = v.padding
		return
	}

	n := v.Len()
	if n <= 0 {
		return
	}

	oldLen := s.Len()
	free := s.lastBytePadding // 1..7 bits still open in the last byte

	s.raw = slices.Grow(s.raw, len(v.raw))
	last := len(s.raw) - 1
	for i, b := range v.raw {
		if i == len(v.raw)-1 {
			// Drop the view's padding bits so the OR below streams zeros
			// into positions that end up as this sequence's padding.
			b &= byte(0xFF << v.padding)
		}
		s.raw[last] |= b >> (8 - free)
		s.raw = append(s.raw, b<<free)
		last++
	}

	need := LeastBytesForBits(oldLen + n)
	s.raw = s.raw[:need]
	s.lastBytePadding = uint8(need*8 - (oldLen + n))
}

// AsView returns a View borrowing the sequence's storage.
//
// The view is zero-copy and must not be used after the sequence is next
// mutated.
func (s *Sequence) AsView() View {
	return View{
		raw:     s.raw,
		padding: s.lastBytePadding,
	}
}

// Bits returns an iterator over the meaningful bits.
func (s *Sequence) Bits() *Iterator {
	return &Iterator{bits: s.AsView()}
}

// All returns the meaningful bits as a range-over iterator.
func (s *Sequence) All() iter.Seq[bool] {
	return s.AsView().All()
}

// PaddedBytes returns the sequence's underlying bytes and the padding of the
// last byte. The slice aliases the sequence's storage; it must not be
// modified and is valid until the sequence is next mutated.
func (s *Sequence) PaddedBytes() ([]byte, uint8) {
	return s.raw, s.lastBytePadding
}

// Bools materializes every meaningful bit as an ordered bool slice.
func (s *Sequence) Bools() []bool {
	return s.AsView().Bools()
}

// Equal reports whether two sequences have identical storage and padding.
func (s *Sequence) Equal(other *Sequence) bool {
	return s.lastBytePadding == other.lastBytePadding && bytes.Equal(s.raw, other.raw)
}

// AppendTo appends the sequence's wire representation to buf and returns the
// extended slice: one padding byte followed by the raw bytes. Existing
// contents of buf are preserved. Capacity for 1+LeastLenBytes() bytes is
// reserved ahead of writing as an allocation hint.
func (s *Sequence) AppendTo(buf []byte) []byte {
	buf = slices.Grow(buf, 1+s.LeastLenBytes())
	buf = append(buf, s.lastBytePadding)
	return append(buf, s.raw...)
}

// Deserialize decodes a Sequence from its wire representation: the first
// byte is the padding, the remaining bytes become owned storage.
//
// It fails only on empty input. The padding byte is stored verbatim without
// range checking, matching the upstream decoder; a value above 7 makes Len
// nonsensical downstream. Use Validate to reject such inputs.
func Deserialize(input []byte) (*Sequence, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	raw := make([]byte, len(input)-1)
	copy(raw, input[1:])
	return &Sequence{
		raw:             raw,
		lastBytePadding: input[0],
	}, nil
}
