package bitvec

// MarshalBinary implements encoding.BinaryMarshaler using the wire format:
// one padding byte followed by the raw packed bytes.
func (s *Sequence) MarshalBinary() ([]byte, error) {
	return s.AppendTo(make([]byte, 0, 1+s.LeastLenBytes())), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Unlike Deserialize it validates the decoded padding, because the stdlib
// encoding contract expects a fully checked value: inputs with a padding
// byte above 7, or nonzero padding with no data bytes, are rejected with
// ErrInvalidPadding.
func (s *Sequence) UnmarshalBinary(data []byte) error {
	dec, err := Deserialize(data)
	if err != nil {
		return err
	}
	if err := dec.Validate(); err != nil {
		return err
	}
	*s = *dec
	return nil
}

// Validate checks the invariants that Deserialize deliberately skips; see
// View.Validate.
func (s *Sequence) Validate() error {
	return s.AsView().Validate()
}
