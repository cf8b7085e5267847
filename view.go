package bitvec

import "iter"

// View is a read-only window into a sequence of bits owned elsewhere,
// either a Sequence or an external byte buffer.
//
// A View never copies the underlying bytes. It is a lightweight header
// (slice + padding) that remains valid only as long as the borrowed storage
// is alive and unmutated; mutating the owning Sequence invalidates every
// view previously taken from it.
type View struct {
	raw     []byte
	padding uint8
}

// FromPaddedBytes wraps externally owned raw storage and an explicit
// padding value in a View without copying.
func FromPaddedBytes(b []byte, padding uint8) View {
	return View{
		raw:     b,
		padding: padding,
	}
}

// DeserializeView decodes a View from the wire representation. Unlike
// Deserialize it is zero-copy: the view aliases input[1:], so input must
// outlive the view.
//
// It fails only on empty input; the padding byte is accepted verbatim.
func DeserializeView(input []byte) (View, error) {
	if len(input) == 0 {
		return View{}, ErrEmptyInput
	}
	return View{
		raw:     input[1:],
		padding: input[0],
	}, nil
}

// Len returns the number of meaningful bits in the view.
func (v View) Len() int {
	return len(v.raw)*8 - int(v.padding)
}

// LeastLenBytes returns the number of bytes backing the view's contents.
func (v View) LeastLenBytes() int {
	return len(v.raw)
}

// PaddedBytes returns the view's underlying bytes and the padding of the
// last byte. The slice aliases the borrowed storage; it must not be
// modified.
func (v View) PaddedBytes() ([]byte, uint8) {
	return v.raw, v.padding
}

// Bits returns an iterator over the meaningful bits. The view is immutable,
// so iteration can be restarted at any time by calling Bits again.
func (v View) Bits() *Iterator {
	return &Iterator{bits: v}
}

// All returns the meaningful bits as a range-over iterator.
func (v View) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		it := v.Bits()
		for bit, ok := it.Next(); ok; bit, ok = it.Next() {
			if !yield(bit) {
				return
			}
		}
	}
}

// Bools materializes every meaningful bit as an ordered bool slice.
func (v View) Bools() []bool {
	out := make([]bool, 0, max(v.Len(), 0))
	for bit := range v.All() {
		out = append(out, bit)
	}
	return out
}

// Clone returns a copy of the view sharing the same borrowed storage and
// padding. The underlying bytes are never copied; the clone stays valid as
// long as the storage outlives it, independently of the original view.
func (v View) Clone() View {
	return v
}

// Serialize returns a freshly allocated wire representation: one padding
// byte followed by the raw bytes. Unlike Sequence.AppendTo it does not
// append to caller-supplied storage; a view does not assume a mutable
// destination.
func (v View) Serialize() []byte {
	buf := make([]byte, 0, 1+v.LeastLenBytes())
	buf = append(buf, v.padding)
	return append(buf, v.raw...)
}

// Validate checks the invariants that Deserialize deliberately skips:
// padding must be in [0,7], and empty storage must have padding 0.
func (v View) Validate() error {
	if v.padding > 7 || (len(v.raw) == 0 && v.padding != 0) {
		return &ErrPaddingOutOfRange{Padding: v.padding, Bytes: len(v.raw)}
	}
	return nil
}
