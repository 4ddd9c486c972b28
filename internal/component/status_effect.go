// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// Apply overwrites any running slow: the latest application's duration wins.
func (s *SlowEffect) Apply(factor, duration float64) {
	s.SlowFactor = factor
	s.Timer = duration
}

// Active reports whether the slow still applies.
func (s *SlowEffect) Active() bool {
	return s.Timer > 0
}

// Multiplier — множитель скорости с учетом замедления
func (s *SlowEffect) Multiplier() float64 {
	if !s.Active() {
		return 1
	}
	return s.SlowFactor
}

// Update отсчитывает таймер; по истечении эффект снимается целиком.
func (s *SlowEffect) Update(deltaTime float64) {
	if s.Timer <= 0 {
		return
	}
	s.Timer -= deltaTime
	if s.Timer <= 0 {
		s.Timer = 0
		s.SlowFactor = 1
	}
}
