package bitvec

// LeastBytesForBits returns the minimum number of bytes needed to store
// nbits bits.
func LeastBytesForBits(nbits int) int {
	if nbits%8 != 0 {
		return nbits/8 + 1
	}
	return nbits / 8
}
