// internal/entity/store.go
package entity

import "go-space-arcade/internal/types"

type entry[T any] struct {
	id    types.EntityID
	value T
}

// Store — упорядоченная коллекция сущностей одного вида.
// Обход идёт в порядке добавления; от него зависят правила «первый найденный».
type Store[T any] struct {
	entries []entry[T]
	index   map[types.EntityID]int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[types.EntityID]int)}
}

// Add добавляет сущность в конец. Повторный id заменяет значение на месте.
func (s *Store[T]) Add(id types.EntityID, v T) {
	if i, ok := s.index[id]; ok {
		s.entries[i].value = v
		return
	}
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, entry[T]{id: id, value: v})
}

// Get ищет сущность по id. Удалённые id не находятся.
func (s *Store[T]) Get(id types.EntityID) (T, bool) {
	if i, ok := s.index[id]; ok {
		return s.entries[i].value, true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove удаляет одну сущность, сохраняя порядок остальных.
func (s *Store[T]) Remove(id types.EntityID) bool {
	if !s.Has(id) {
		return false
	}
	return s.RemoveIf(func(other types.EntityID, _ T) bool { return other == id }) > 0
}

// RemoveIf удаляет все сущности, для которых pred вернул true, и возвращает их количество.
// Каждая сущность проверяется ровно один раз; порядок оставшихся не меняется.
func (s *Store[T]) RemoveIf(pred func(id types.EntityID, v T) bool) int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if pred(e.id, e.value) {
			delete(s.index, e.id)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	var zero entry[T]
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = zero
	}
	s.entries = kept
	if removed > 0 {
		for i, e := range s.entries {
			s.index[e.id] = i
		}
	}
	return removed
}

// Each обходит сущности в порядке добавления. Возврат false прерывает обход.
// Сущности, добавленные во время обхода, в него не попадают.
func (s *Store[T]) Each(fn func(id types.EntityID, v T) bool) {
	n := len(s.entries)
	for i := 0; i < n && i < len(s.entries); i++ {
		if !fn(s.entries[i].id, s.entries[i].value) {
			return
		}
	}
}

// Values возвращает копию значений в порядке добавления.
func (s *Store[T]) Values() []T {
	out := make([]T, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.value
	}
	return out
}

func (s *Store[T]) Len() int {
	return len(s.entries)
}

func (s *Store[T]) Clear() {
	s.entries = nil
	s.index = make(map[types.EntityID]int)
}
