// internal/event/scheduler.go
package event

// TimerID — идентификатор отложенного вызова.
type TimerID uint64

type timer struct {
	id         TimerID
	due        float64
	interval   float64 // 0 — одноразовый
	generation uint64
	fn         func()
	done       bool
}

// Scheduler — очередь отложенных вызовов, которую крутит игровой цикл.
// Каждый вызов помнит поколение, в котором был создан; после NextGeneration
// все старые вызовы отбрасываются, не выполнившись.
type Scheduler struct {
	now        float64
	generation uint64
	nextID     TimerID
	timers     []*timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{generation: 1}
}

// Generation — текущее поколение.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// NextGeneration делает все ожидающие вызовы устаревшими.
func (s *Scheduler) NextGeneration() uint64 {
	s.generation++
	return s.generation
}

// After вызывает fn один раз через delay секунд.
func (s *Scheduler) After(delay float64, fn func()) TimerID {
	return s.add(delay, 0, fn)
}

// Every вызывает fn каждые interval секунд, пока вызов не отменён.
func (s *Scheduler) Every(interval float64, fn func()) TimerID {
	if interval <= 0 {
		interval = 1e-3
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval float64, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:         s.nextID,
		due:        s.now + delay,
		interval:   interval,
		generation: s.generation,
		fn:         fn,
	})
	return s.nextID
}

// Cancel отменяет вызов. Неизвестный id игнорируется.
func (s *Scheduler) Cancel(id TimerID) {
	for _, t := range s.timers {
		if t.id == id {
			t.done = true
		}
	}
}

// Pending — число живых вызовов текущего поколения.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.done && t.generation == s.generation {
			n++
		}
	}
	return n
}

// Update продвигает время на dt секунд и выполняет созревшие вызовы по одному.
// Вызовы, добавленные во время Update, ждут следующего кадра.
func (s *Scheduler) Update(dt float64) {
	s.now += dt
	current := s.timers
	for _, t := range current {
		for !t.done && t.due <= s.now {
			if t.generation != s.generation {
				t.done = true
				break
			}
			if t.interval == 0 {
				t.done = true
			} else {
				t.due += t.interval
			}
			t.fn()
		}
	}

	alive := s.timers[:0]
	for _, t := range s.timers {
		if !t.done && t.generation == s.generation {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = alive
}
