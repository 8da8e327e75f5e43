package blueprint

// Stream is a linear-congruential pseudo-random stream. One Stream is
// constructed per Generate call and advanced once per drawn value, so the draw
// order of the generator is the only thing that decides which value lands in
// which field.
//
// Constants are the classic Numerical Recipes LCG: multiplier 1664525,
// increment 1013904223, modulus 2^32 (uint32 wraparound). These are a
// bit-compatibility contract, not tunables.
type Stream struct {
	state uint32
}

// NewStream returns a stream seeded from an interpretation seed.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Next advances the stream once and returns the new state normalized to [0, 1).
func (s *Stream) Next() float64 {
	s.state = s.state*1664525 + 1013904223
	return float64(s.state) / 4294967296.0
}

// NextUint32 advances the stream once and returns the raw state. Used for the
// per-variant audio seed.
func (s *Stream) NextUint32() uint32 {
	s.state = s.state*1664525 + 1013904223
	return s.state
}

// Range draws the next value scaled into [min, max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}
