// internal/component/status_effect.go
package component

// SlowEffect — замедление в тиках. Factor умножает скорость, пока Timer > 0.
type SlowEffect struct {
	Timer  int
	Factor float64
}

// Active сообщает, действует ли замедление.
func (s SlowEffect) Active() bool {
	return s.Timer > 0
}

// Tick уменьшает таймер на один тик.
func (s *SlowEffect) Tick() {
	if s.Timer > 0 {
		s.Timer--
	}
}
