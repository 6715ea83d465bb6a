package mathrand

// Scripted is a Source that replays fixed values, for tests.
// Ints are reduced modulo n; Floats are returned as-is. When a script runs
// out it wraps around. An empty script yields zeros.
type Scripted struct {
	Ints   []int
	Floats []float64

	i, f int
}

// IntN implements Source.
func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		panic("mathrand: invalid argument to IntN")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.i%len(s.Ints)]
	s.i++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 implements Source.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.f%len(s.Floats)]
	s.f++
	return v
}
