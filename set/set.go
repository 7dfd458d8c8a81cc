package set

// Set is a collection of unique elements that remembers the order in which
// they were first added.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

func New[T comparable]() *Set[T] {
	return &Set[T]{items: make(map[T]struct{})}
}

// FromSlice builds a Set from items, dropping repeats.
func FromSlice[T comparable](items []T) *Set[T] {
	s := New[T]()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add reports whether item was new.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.items[item]; ok {
		return false
	}
	s.items[item] = struct{}{}
	s.order = append(s.order, item)
	return true
}

// ToSlice returns the items in insertion order.
func (s *Set[T]) ToSlice() []T {
	return append([]T(nil), s.order...)
}
