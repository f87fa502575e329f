package catalog

// SetRandInt replaces the random source, for deterministic tests.
func (s *Service) SetRandInt(f func(n int) int) {
	s.randInt = f
}
