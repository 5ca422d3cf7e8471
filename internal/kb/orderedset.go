package kb

// OrderedSet keeps the first-seen order of its members.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item unless it is already present and reports whether it was inserted.
func (s *OrderedSet[T]) Add(item T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *OrderedSet[T]) AddAll(items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}

func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy in insertion order.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
