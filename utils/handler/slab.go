package handler

// slab is a free-list-backed store for handler entries. Indices stay valid
// until Pop, so removal is O(1) without shifting.
type slab struct {
	entries []slabEntry
	free    int
}

type slabEntry struct {
	handler *handler
	next    int // next free index, or -1 if the slot is occupied
}

func (s *slab) Put(entry *handler) int {
	if s.free == len(s.entries) {
		i := len(s.entries)
		s.entries = append(s.entries, slabEntry{entry, -1})
		s.free++
		return i
	}

	i := s.free
	s.free = s.entries[i].next
	s.entries[i] = slabEntry{entry, -1}
	return i
}

func (s *slab) Pop(i int) *handler {
	popped := s.entries[i].handler
	s.entries[i] = slabEntry{nil, s.free}
	s.free = i
	return popped
}

// Each iterates over all occupied entries until f returns false.
func (s *slab) Each(f func(*handler) bool) {
	for i := range s.entries {
		if s.entries[i].next == -1 && !f(s.entries[i].handler) {
			return
		}
	}
}
