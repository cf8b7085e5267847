package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBools(rng *rand.Rand, n int) []bool {
	bools := make([]bool, n)
	for i := range bools {
		bools[i] = rng.Intn(2) == 1
	}
	return bools
}

func TestAppendReadRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		bools []bool
	}{
		{name: "empty", bools: []bool{}},
		{name: "single true", bools: []bool{true}},
		{name: "single false", bools: []bool{false}},
		{name: "full byte", bools: []bool{true, true, false, true, false, true, false, true}},
		{name: "crosses byte boundary", bools: []bool{true, false, false, true, false, true, false, false, false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromBools(tt.bools)
			require.Equal(t, tt.bools, s.Bools())
			require.Equal(t, len(tt.bools), s.Len())
		})
	}
}

func TestAppendReadRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n <= 100; n++ {
		bools := randomBools(rng, n)
		s := FromBools(bools)
		require.Equal(t, bools, s.Bools(), "length %d", n)
		require.Equal(t, n, s.Len(), "length %d", n)
		require.Equal(t, LeastBytesForBits(n), s.LeastLenBytes(), "length %d", n)
	}
}

func TestAppendBitLayout(t *testing.T) {
	// Bit 0 must land in the most significant bit of byte 0.
	s := FromBools([]bool{true, true, false, true})

	raw, padding := s.PaddedBytes()
	require.Equal(t, []byte{0b1101_0000}, raw)
	require.Equal(t, uint8(4), padding)
}

func TestLenMatchesAppendCount(t *testing.T) {
	s := New()
	for i := 0; i < 50; i++ {
		require.Equal(t, i, s.Len())
		s.AppendBit(i%3 == 0)
	}
	require.Equal(t, 50, s.Len())
}

func TestLeastLenBytes(t *testing.T) {
	s := FromBools([]bool{false, true, false, true, false, true})
	require.Equal(t, 1, s.LeastLenBytes())
	require.Equal(t, 6, s.Len())
}

func TestWithCapacity(t *testing.T) {
	s := WithCapacity(100)
	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, s.LeastLenBytes())

	raw, padding := s.PaddedBytes()
	require.Empty(t, raw)
	require.Equal(t, uint8(0), padding)
	require.GreaterOrEqual(t, cap(raw), 13)
}

func TestLeastBytesForBits(t *testing.T) {
	tests := []struct {
		nbits int
		want  int
	}{
		{nbits: 0, want: 0},
		{nbits: 1, want: 1},
		{nbits: 7, want: 1},
		{nbits: 8, want: 1},
		{nbits: 9, want: 2},
		{nbits: 16, want: 2},
		{nbits: 17, want: 3},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, LeastBytesForBits(tt.nbits), "nbits %d", tt.nbits)
	}
}

func TestExtendFromBitsAligned(t *testing.T) {
	a := []bool{true, false, false, true, false}
	b := []bool{true, false, false, false, false, true}
	want := []bool{true, false, false, true, false, true, false, false, false, false, true}

	va := FromBools(a)
	vb := FromBools(b)
	require.Equal(t, a, va.Bools())
	require.Equal(t, b, vb.Bools())

	va.ExtendFromBits(vb.AsView())
	require.Equal(t, want, va.Bools())
	require.Equal(t, 11, va.Len())
	require.Equal(t, 2, va.LeastLenBytes())
}

func TestExtendFromBitsByteAlignedFastPath(t *testing.T) {
	// Padding 0 on the receiver: the view's bytes are adopted wholesale
	// along with its padding.
	s := FromBools([]bool{true, false, true, false, true, false, true, false})
	v := FromBools([]bool{true, true, false})

	s.ExtendFromBits(v.AsView())

	raw, padding := s.PaddedBytes()
	require.Equal(t, []byte{0b1010_1010, 0b1100_0000}, raw)
	require.Equal(t, uint8(5), padding)
	require.Equal(t, 11, s.Len())
}

func TestExtendFromBitsMatchesPerBitAppend(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for lenA := 0; lenA <= 20; lenA++ {
		for lenB := 0; lenB <= 20; lenB++ {
			a := randomBools(rng, lenA)
			b := randomBools(rng, lenB)

			got := FromBools(a)
			got.ExtendFromBits(FromBools(b).AsView())

			want := FromBools(a)
			for _, bit := range b {
				want.AppendBit(bit)
			}

			require.True(t, got.Equal(want), "a=%v b=%v", a, b)
			require.Equal(t, append(append([]bool{}, a...), b...), got.Bools(), "a=%v b=%v", a, b)
		}
	}
}

func TestExtendFromBitsExternalViewWithDirtyPadding(t *testing.T) {
	// A view over external storage may carry garbage in its padding bits;
	// extending must only stream the meaningful ones.
	s := FromBools([]bool{true, false, true})
	v := FromPaddedBytes([]byte{0xFF}, 5) // 3 meaningful bits, padding all ones

	s.ExtendFromBits(v)

	require.Equal(t, []bool{true, false, true, true, true, true}, s.Bools())
	raw, padding := s.PaddedBytes()
	require.Equal(t, []byte{0b1011_1100}, raw)
	require.Equal(t, uint8(2), padding)
}

func TestExtendFromBitsEmptyView(t *testing.T) {
	s := FromBools([]bool{true, false, true})
	s.ExtendFromBits(FromPaddedBytes(nil, 0))
	require.Equal(t, []bool{true, false, true}, s.Bools())
}

func TestSerializeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n <= 64; n++ {
		s := FromBools(randomBools(rng, n))

		wire := s.AppendTo(nil)
		require.Len(t, wire, 1+s.LeastLenBytes())

		got, err := Deserialize(wire)
		require.NoError(t, err)
		require.True(t, got.Equal(s), "length %d", n)
	}
}

func TestAppendToPreservesPrefix(t *testing.T) {
	s := FromBools([]bool{true, false, false, true, false, true})

	buf := []byte("header")
	buf = s.AppendTo(buf)

	require.Equal(t, []byte("header"), buf[:6])

	got, err := Deserialize(buf[6:])
	require.NoError(t, err)
	require.True(t, got.Equal(s))
}

func TestDeserializeEmptyFails(t *testing.T) {
	_, err := Deserialize(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Deserialize([]byte{})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = DeserializeView(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestDeserializeOwnsStorage(t *testing.T) {
	wire := []byte{4, 0b1101_0000}
	s, err := Deserialize(wire)
	require.NoError(t, err)

	wire[1] = 0
	require.Equal(t, []bool{true, true, false, true}, s.Bools())
}

func TestDeserializePaddingOnlyInput(t *testing.T) {
	// A lone padding byte is accepted: zero data bytes.
	s, err := Deserialize([]byte{0})
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
	require.True(t, s.Equal(New()))
}

func TestDeserializeIsPermissive(t *testing.T) {
	// The upstream decoder stores any padding byte verbatim; Len may become
	// nonsensical. Validate is the opt-in hardening layer.
	s, err := Deserialize([]byte{9, 0xAB})
	require.NoError(t, err)
	require.Equal(t, -1, s.Len())

	err = s.Validate()
	require.ErrorIs(t, err, ErrInvalidPadding)

	var pe *ErrPaddingOutOfRange
	require.ErrorAs(t, err, &pe)
	require.Equal(t, uint8(9), pe.Padding)
	require.Equal(t, 1, pe.Bytes)
}

func TestEqual(t *testing.T) {
	a := FromBools([]bool{true, false, true})
	b := FromBools([]bool{true, false, true})
	c := FromBools([]bool{true, false})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, New().Equal(New()))
}
