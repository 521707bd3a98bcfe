package selection

// orderedSet is a set that remembers insertion order.
type orderedSet[T comparable] struct {
	index map[T]int
	items []T
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{index: make(map[T]int)}
}

func (s *orderedSet[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet[T]) add(v T) bool {
	if s.has(v) {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet[T]) remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.items = append(s.items[:i], s.items[i+1:]...)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

func (s *orderedSet[T]) clear() {
	clear(s.index)
	s.items = s.items[:0]
}

// retain keeps only the members for which keep returns true.
func (s *orderedSet[T]) retain(keep func(T) bool) {
	kept := s.items[:0]
	for _, v := range s.items {
		if keep(v) {
			kept = append(kept, v)
		} else {
			delete(s.index, v)
		}
	}
	s.items = kept
	for i, v := range s.items {
		s.index[v] = i
	}
}

func (s *orderedSet[T]) len() int {
	return len(s.items)
}

// snapshot returns a copy of the members in insertion order.
func (s *orderedSet[T]) snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
