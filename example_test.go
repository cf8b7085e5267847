package bitvec_test

import (
	"fmt"

	bitvec "github.com/nic-obert/bitvec-padded"
)

// Example_appendAndIterate demonstrates building a sequence bit by bit and
// reading it back.
func Example_appendAndIterate() {
	s := bitvec.New()
	s.AppendBit(true)
	s.AppendBit(false)
	s.AppendBit(true)

	fmt.Println(s.Len())
	for bit := range s.All() {
		fmt.Println(bit)
	}
	// Output:
	// 3
	// true
	// false
	// true
}

// Example_serialize demonstrates the wire format round trip: one padding
// byte followed by the packed bits.
func Example_serialize() {
	s := bitvec.FromBools([]bool{true, false, false, true, false})

	wire := s.AppendTo(nil)
	fmt.Printf("%d bytes, padding %d\n", len(wire), wire[0])

	back, err := bitvec.Deserialize(wire)
	if err != nil {
		panic(err)
	}
	fmt.Println(back.Equal(s))
	// Output:
	// 2 bytes, padding 3
	// true
}

// Example_view demonstrates wrapping externally owned bytes without copying.
func Example_view() {
	payload := []byte{0b1100_0000}
	v := bitvec.FromPaddedBytes(payload, 6)

	fmt.Println(v.Len(), v.Bools())
	// Output:
	// 2 [true true]
}
