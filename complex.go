package settings

// Complex settings are keys known to require non-trivial coordination to
// override safely, typically because dependent subsystems cache them.
// Overriding one still works; it just emits a warning diagnostic.

// RegisterComplexSetting marks name as risky to override.
func (s *Settings) RegisterComplexSetting(name string) {
	s.complex[name] = struct{}{}
}

// UnregisterComplexSetting removes name from the complex set. No-op when
// absent.
func (s *Settings) UnregisterComplexSetting(name string) {
	delete(s.complex, name)
}

func (s *Settings) isComplexSetting(name string) bool {
	_, ok := s.complex[name]
	return ok
}
