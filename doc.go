// Package bitvec provides a growable sequence of bits backed by byte storage.
//
// Bits are packed MSB-first within each byte: bit 0 of a sequence maps to the
// most significant bit of byte 0. A partially filled final byte is tracked by
// an explicit padding counter, which also survives serialization, so a
// sequence whose length is not a multiple of 8 round-trips exactly.
//
// # Quick Start
//
//	s := bitvec.New()
//	s.AppendBit(true)
//	s.AppendBit(false)
//	s.AppendBit(true)
//
//	for bit := range s.All() {
//	    fmt.Println(bit)
//	}
//
//	wire := s.AppendTo(nil)          // padding byte + packed bits
//	back, _ := bitvec.Deserialize(wire)
//
// # Owning vs Borrowing
//
// Sequence owns its storage and supports mutation. View is a zero-copy,
// read-only window into bytes owned elsewhere (a Sequence or an external
// buffer). A View taken from a Sequence is valid until the Sequence is next
// mutated; callers that need a longer-lived snapshot should serialize or
// convert to bools instead of holding the view.
//
// # Wire Format
//
// The serialized form is a single padding byte followed by the raw packed
// bytes. There is no length field; the data length is implied by the input.
// Deserialize accepts any non-empty input without validating the padding
// byte, mirroring the upstream decoder; use Validate (or UnmarshalBinary,
// which validates) when stricter guarantees are needed.
package bitvec
