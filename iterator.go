package bitvec

// Iterator is a pull-based cursor over the meaningful bits of a View.
//
// It is finite and synchronous: Next reports false once the cursor reaches
// the view's bit length, accounting for the last-byte padding. Because the
// view is immutable, iteration is cheaply restartable by constructing a new
// iterator from the same view.
type Iterator struct {
	bits View
	i    int
}

// Next returns the next bit and whether one was produced. Once it reports
// false it reports false forever.
func (it *Iterator) Next() (bool, bool) {
	byteIdx := it.i / 8
	if byteIdx >= len(it.bits.raw) {
		// Defensive bound; with a well-formed view the padding cutoff below
		// fires first.
		return false, false
	}

	bitInByte := it.i % 8
	if byteIdx == len(it.bits.raw)-1 && bitInByte >= 8-int(it.bits.padding) {
		// Padding cutoff: the remaining bits of the final byte carry no
		// meaning.
		return false, false
	}

	it.i++
	return it.bits.raw[byteIdx]&(1<<(7-bitInByte)) != 0, true
}
