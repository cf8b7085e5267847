package bitvec

import "github.com/RoaringBitmap/roaring/v2"

// OnesBitmap returns the zero-based positions of the view's set bits as a
// roaring bitmap. This is a conversion at the interop boundary; the view's
// own dense MSB-first representation is unchanged.
func (v View) OnesBitmap() *roaring.Bitmap {
	rb := roaring.New()
	pos := uint32(0)
	for bit := range v.All() {
		if bit {
			rb.Add(pos)
		}
		pos++
	}
	return rb
}

// OnesBitmap returns the zero-based positions of the sequence's set bits as
// a roaring bitmap.
func (s *Sequence) OnesBitmap() *roaring.Bitmap {
	return s.AsView().OnesBitmap()
}

// FromBitmap builds a dense Sequence of nbits bits whose set positions are
// the bitmap's members. Members at or beyond nbits are ignored.
func FromBitmap(rb *roaring.Bitmap, nbits int) *Sequence {
	s := WithCapacity(nbits)
	it := rb.Iterator()

	// The roaring iterator yields members in ascending order.
	next := -1
	if it.HasNext() {
		next = int(it.Next())
	}
	for i := 0; i < nbits; i++ {
		if next == i {
			s.AppendBit(true)
			next = -1
			if it.HasNext() {
				next = int(it.Next())
			}
			continue
		}
		s.AppendBit(false)
	}
	return s
}
